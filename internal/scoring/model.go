package scoring

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/seyi-adeleke/riskscore/constants"
)

// Model artifacts are pre-fitted and loaded once at startup. Loaded values
// are never mutated; every worker scores against the same immutable handle.

// Interval is one half-open bucket (low, high] of a scoring table.
// A nil bound is unbounded on that side.
type Interval struct {
	Low  *float64 `json:"low"`
	High *float64 `json:"high"`
	Rate float64  `json:"rate"`
}

// Table maps one ratio to a binned rate: an ordered interval list plus the
// rate used when the input is present but not meaningful (NaN / "NM").
type Table struct {
	Intervals   []Interval `json:"intervals"`
	MissingRate float64    `json:"missing_rate"`
}

// LinearScorer combines binned rates into a probability without a link
// function. The annual model was fitted this way; outputs are clamped to
// [0,1] at scoring time.
type LinearScorer struct {
	Intercept float64            `json:"intercept"`
	Weights   map[string]float64 `json:"weights"`
}

// LogisticScorer combines binned rates through a sigmoid.
type LogisticScorer struct {
	Intercept float64            `json:"intercept"`
	Weights   map[string]float64 `json:"weights"`
}

// TreeNode is one node of a regression tree, addressed by index into the
// tree's node slice. Leaf nodes set Leaf and nothing else. NaN feature
// values follow the Default branch.
type TreeNode struct {
	Feature   string   `json:"feature,omitempty"`
	Threshold float64  `json:"threshold,omitempty"`
	Left      int      `json:"left,omitempty"`
	Right     int      `json:"right,omitempty"`
	Default   int      `json:"default,omitempty"`
	Leaf      *float64 `json:"leaf,omitempty"`
}

// Tree is a flat regression tree, root at index 0.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// Score walks the tree over raw feature values.
func (t Tree) Score(features map[string]float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf != nil {
			return *n.Leaf
		}
		v, ok := features[n.Feature]
		switch {
		case !ok || v != v: // NaN
			i = n.Default
		case v <= n.Threshold:
			i = n.Left
		default:
			i = n.Right
		}
	}
}

// GBM is a gradient-boosted ensemble over raw ratio values.
type GBM struct {
	BaseScore float64 `json:"base_score"`
	Trees     []Tree  `json:"trees"`
}

// Margin returns the raw additive score before the sigmoid.
func (g GBM) Margin(features map[string]float64) float64 {
	m := g.BaseScore
	for _, t := range g.Trees {
		m += t.Score(features)
	}
	return m
}

// AnnualModel scores annual filings: five binned ratios through a fitted
// linear scorer.
type AnnualModel struct {
	Version string           `json:"version"`
	Tables  map[string]Table `json:"tables"`
	Scorer  LinearScorer     `json:"scorer"`
}

// QuarterlyModel scores quarterly filings with two independent models
// whose probabilities are ensembled by unweighted mean.
type QuarterlyModel struct {
	Version string           `json:"version"`
	Tables  map[string]Table `json:"tables"`
	Logit   LogisticScorer   `json:"logit"`
	GBM     GBM              `json:"gbm"`
}

// LoadAnnualModel reads and validates an annual artifact.
func LoadAnnualModel(path string) (*AnnualModel, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read annual model: %w", err)
	}
	var m AnnualModel
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode annual model: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("annual model %q: %w", path, err)
	}
	return &m, nil
}

// LoadQuarterlyModel reads and validates a quarterly artifact.
func LoadQuarterlyModel(path string) (*QuarterlyModel, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quarterly model: %w", err)
	}
	var m QuarterlyModel
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode quarterly model: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("quarterly model %q: %w", path, err)
	}
	return &m, nil
}

// Validate checks the artifact covers every ratio the annual contract needs.
func (m *AnnualModel) Validate() error {
	if err := validateTables(m.Tables, constants.AnnualRatios); err != nil {
		return err
	}
	return validateWeights(m.Scorer.Weights, constants.AnnualRatios)
}

// Validate checks the artifact covers every ratio the quarterly contract needs.
func (m *QuarterlyModel) Validate() error {
	if err := validateTables(m.Tables, constants.QuarterlyRatios); err != nil {
		return err
	}
	if err := validateWeights(m.Logit.Weights, constants.QuarterlyRatios); err != nil {
		return err
	}
	if len(m.GBM.Trees) == 0 {
		return fmt.Errorf("gbm has no trees")
	}
	for i, t := range m.GBM.Trees {
		if len(t.Nodes) == 0 {
			return fmt.Errorf("gbm tree %d has no nodes", i)
		}
	}
	return nil
}

func validateTables(tables map[string]Table, required []string) error {
	for _, name := range required {
		t, ok := tables[name]
		if !ok {
			return fmt.Errorf("no scoring table for ratio %q", name)
		}
		if len(t.Intervals) == 0 {
			return fmt.Errorf("scoring table %q has no intervals", name)
		}
	}
	return nil
}

func validateWeights(weights map[string]float64, required []string) error {
	for _, name := range required {
		if _, ok := weights[name]; !ok {
			return fmt.Errorf("no weight for ratio %q", name)
		}
	}
	return nil
}
