package scoring

import (
	"math"

	"github.com/seyi-adeleke/riskscore/constants"
)

// Engine applies the pre-fitted models to parsed ratio values. It is a
// pure function of its inputs: no I/O, no shared mutable state, identical
// inputs always produce identical outputs.
type Engine struct {
	annual    *AnnualModel
	quarterly *QuarterlyModel
}

func NewEngine(annual *AnnualModel, quarterly *QuarterlyModel) *Engine {
	return &Engine{annual: annual, quarterly: quarterly}
}

// AnnualResult is the scored outcome of one annual row.
type AnnualResult struct {
	Probability float64
	RiskLevel   constants.RiskLevel
	Confidence  float64
	Rates       map[string]float64
}

// QuarterlyResult is the scored outcome of one quarterly row.
type QuarterlyResult struct {
	LogitProbability    float64
	GBMProbability      float64
	EnsembleProbability float64
	RiskLevel           constants.RiskLevel
	Confidence          float64
	Rates               map[string]float64
}

// ScoreAnnual bins the five required ratios and combines their rates with
// the fitted linear scorer. Every ratio must be present (NaN counts as
// present); any absent ratio fails the whole row, no partial scoring.
func (e *Engine) ScoreAnnual(ratios map[string]float64) (*AnnualResult, error) {
	if err := requireAll(constants.AnnualRatios, ratios); err != nil {
		return nil, err
	}
	rates, err := e.binAll(e.annual.Tables, constants.AnnualRatios, ratios)
	if err != nil {
		return nil, err
	}
	p := e.annual.Scorer.Intercept
	for _, name := range constants.AnnualRatios {
		p += e.annual.Scorer.Weights[name] * rates[name]
	}
	p = clamp01(p)
	return &AnnualResult{
		Probability: p,
		RiskLevel:   RiskLevelFor(p),
		Confidence:  ConfidenceFor(p),
		Rates:       rates,
	}, nil
}

// ScoreQuarterly runs both quarterly models and ensembles them with an
// unweighted arithmetic mean. The logistic model sees binned rates, the
// GBM sees raw values (NaN routed through per-node defaults).
func (e *Engine) ScoreQuarterly(ratios map[string]float64) (*QuarterlyResult, error) {
	if err := requireAll(constants.QuarterlyRatios, ratios); err != nil {
		return nil, err
	}
	rates, err := e.binAll(e.quarterly.Tables, constants.QuarterlyRatios, ratios)
	if err != nil {
		return nil, err
	}
	z := e.quarterly.Logit.Intercept
	for _, name := range constants.QuarterlyRatios {
		z += e.quarterly.Logit.Weights[name] * rates[name]
	}
	logitP := sigmoid(z)
	gbmP := sigmoid(e.quarterly.GBM.Margin(ratios))
	ensemble := (logitP + gbmP) / 2
	return &QuarterlyResult{
		LogitProbability:    logitP,
		GBMProbability:      gbmP,
		EnsembleProbability: ensemble,
		RiskLevel:           RiskLevelFor(ensemble),
		Confidence:          ConfidenceFor(ensemble),
		Rates:               rates,
	}, nil
}

// binAll resolves rates in the fixed ratio order so float accumulation is
// reproducible across calls.
func (e *Engine) binAll(tables map[string]Table, order []string, ratios map[string]float64) (map[string]float64, error) {
	rates := make(map[string]float64, len(order))
	for _, name := range order {
		rate, err := tables[name].RateFor(name, ratios[name])
		if err != nil {
			return nil, err
		}
		rates[name] = rate
	}
	return rates, nil
}

func requireAll(required []string, ratios map[string]float64) error {
	var missing []string
	for _, name := range required {
		if _, ok := ratios[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingFeaturesError{Missing: missing}
	}
	return nil
}

// RiskLevelFor classifies a probability by its percentage form:
// p100 > 15 CRITICAL, 5 <= p100 <= 15 HIGH, 2 <= p100 < 5 MEDIUM, else LOW.
func RiskLevelFor(probability float64) constants.RiskLevel {
	p100 := probability * 100
	switch {
	case p100 > 15:
		return constants.RiskCritical
	case p100 >= 5:
		return constants.RiskHigh
	case p100 >= 2:
		return constants.RiskMedium
	default:
		return constants.RiskLow
	}
}

// ConfidenceFor is max(|p-0.5|*2, 0.5). The 0.5 floor applies even right
// at the decision boundary; keep as fitted, do not "fix".
func ConfidenceFor(probability float64) float64 {
	c := math.Abs(probability-0.5) * 2
	if c < 0.5 {
		return 0.5
	}
	return c
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
