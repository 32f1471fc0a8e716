package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-adeleke/riskscore/constants"
)

// wideTable bins everything up to zero at lowRate and everything above at
// highRate, with missingRate for NaN.
func wideTable(lowRate, highRate, missingRate float64) Table {
	return Table{
		Intervals: []Interval{
			{High: fp(0), Rate: lowRate},
			{Low: fp(0), Rate: highRate},
		},
		MissingRate: missingRate,
	}
}

func testAnnualModel() *AnnualModel {
	tables := make(map[string]Table, len(constants.AnnualRatios))
	weights := make(map[string]float64, len(constants.AnnualRatios))
	for _, name := range constants.AnnualRatios {
		tables[name] = wideTable(0.08, 0.01, 0.05)
		weights[name] = 0
	}
	// only roa carries weight so tests can predict the output exactly
	weights[constants.RatioROA] = 1
	return &AnnualModel{
		Version: "test",
		Tables:  tables,
		Scorer:  LinearScorer{Intercept: 0, Weights: weights},
	}
}

func testQuarterlyModel(leaf float64) *QuarterlyModel {
	tables := make(map[string]Table, len(constants.QuarterlyRatios))
	weights := make(map[string]float64, len(constants.QuarterlyRatios))
	for _, name := range constants.QuarterlyRatios {
		tables[name] = wideTable(0.08, 0.01, 0.05)
		weights[name] = 0
	}
	return &QuarterlyModel{
		Version: "test",
		Tables:  tables,
		Logit:   LogisticScorer{Intercept: -2, Weights: weights},
		GBM: GBM{
			BaseScore: 0,
			Trees:     []Tree{{Nodes: []TreeNode{{Leaf: fp(leaf)}}}},
		},
	}
}

func annualRatios(roa float64) map[string]float64 {
	r := map[string]float64{}
	for _, name := range constants.AnnualRatios {
		r[name] = 1
	}
	r[constants.RatioROA] = roa
	return r
}

func quarterlyRatios() map[string]float64 {
	r := map[string]float64{}
	for _, name := range constants.QuarterlyRatios {
		r[name] = 1
	}
	return r
}

func TestScoreAnnual(t *testing.T) {
	eng := NewEngine(testAnnualModel(), nil)

	// roa <= 0 bins to 0.08, all other weights are zero
	res, err := eng.ScoreAnnual(annualRatios(-0.3))
	require.NoError(t, err)
	assert.Equal(t, 0.08, res.Probability)
	assert.Equal(t, constants.RiskHigh, res.RiskLevel)
	assert.Equal(t, 0.84, math.Round(res.Confidence*100)/100)

	// roa > 0 bins to 0.01
	res, err = eng.ScoreAnnual(annualRatios(0.2))
	require.NoError(t, err)
	assert.Equal(t, 0.01, res.Probability)
	assert.Equal(t, constants.RiskLow, res.RiskLevel)
}

func TestScoreAnnual_NaNUsesMissingBucket(t *testing.T) {
	eng := NewEngine(testAnnualModel(), nil)
	res, err := eng.ScoreAnnual(annualRatios(math.NaN()))
	require.NoError(t, err)
	assert.Equal(t, 0.05, res.Probability)
}

func TestScoreAnnual_MissingRatioFailsWholeRow(t *testing.T) {
	eng := NewEngine(testAnnualModel(), nil)
	ratios := annualRatios(0.2)
	delete(ratios, constants.RatioInterestCoverage)
	delete(ratios, constants.RatioDebtRatio)

	_, err := eng.ScoreAnnual(ratios)
	var mf *MissingFeaturesError
	require.ErrorAs(t, err, &mf)
	assert.ElementsMatch(t, []string{constants.RatioInterestCoverage, constants.RatioDebtRatio}, mf.Missing)
	assert.Contains(t, err.Error(), "debt_ratio")
}

func TestScoreAnnual_Deterministic(t *testing.T) {
	eng := NewEngine(testAnnualModel(), nil)
	first, err := eng.ScoreAnnual(annualRatios(-0.3))
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		res, err := eng.ScoreAnnual(annualRatios(-0.3))
		require.NoError(t, err)
		assert.Equal(t, first.Probability, res.Probability)
		assert.Equal(t, first.RiskLevel, res.RiskLevel)
		assert.Equal(t, first.Confidence, res.Confidence)
	}
}

func TestScoreQuarterly_EnsembleIsUnweightedMean(t *testing.T) {
	eng := NewEngine(nil, testQuarterlyModel(1.5))

	res, err := eng.ScoreQuarterly(quarterlyRatios())
	require.NoError(t, err)

	wantLogit := 1 / (1 + math.Exp(2))    // sigmoid(-2), weights are all zero
	wantGBM := 1 / (1 + math.Exp(-1.5))   // sigmoid(leaf)
	assert.InDelta(t, wantLogit, res.LogitProbability, 1e-12)
	assert.InDelta(t, wantGBM, res.GBMProbability, 1e-12)
	assert.Equal(t, (res.LogitProbability+res.GBMProbability)/2, res.EnsembleProbability)
	assert.Equal(t, RiskLevelFor(res.EnsembleProbability), res.RiskLevel)
}

func TestScoreQuarterly_MissingRatio(t *testing.T) {
	eng := NewEngine(nil, testQuarterlyModel(0))
	ratios := quarterlyRatios()
	delete(ratios, constants.RatioOperatingMargin)

	_, err := eng.ScoreQuarterly(ratios)
	var mf *MissingFeaturesError
	require.ErrorAs(t, err, &mf)
}

func TestTreeScore_NaNFollowsDefaultBranch(t *testing.T) {
	tree := Tree{Nodes: []TreeNode{
		{Feature: constants.RatioROA, Threshold: 0, Left: 1, Right: 2, Default: 2},
		{Leaf: fp(-1)},
		{Leaf: fp(3)},
	}}
	assert.Equal(t, float64(-1), tree.Score(map[string]float64{constants.RatioROA: -0.5}))
	assert.Equal(t, float64(3), tree.Score(map[string]float64{constants.RatioROA: 0.5}))
	assert.Equal(t, float64(3), tree.Score(map[string]float64{constants.RatioROA: math.NaN()}))
}

func TestRiskLevelFor_Thresholds(t *testing.T) {
	for _, tc := range []struct {
		probability float64
		want        constants.RiskLevel
	}{
		{0.0, constants.RiskLow},
		{0.0199, constants.RiskLow},
		{0.02, constants.RiskMedium},
		{0.0499, constants.RiskMedium},
		{0.05, constants.RiskHigh},
		{0.15, constants.RiskHigh},
		{0.1501, constants.RiskCritical},
		{0.99, constants.RiskCritical},
	} {
		assert.Equal(t, tc.want, RiskLevelFor(tc.probability), "p=%v", tc.probability)
	}
}

func TestConfidenceFor_FlooredAtHalf(t *testing.T) {
	assert.Equal(t, 0.5, ConfidenceFor(0.5))
	assert.Equal(t, 0.5, ConfidenceFor(0.6))  // |0.1|*2 = 0.2, floored
	assert.Equal(t, 0.5, ConfidenceFor(0.75)) // exactly at the floor
	assert.InDelta(t, 0.8, ConfidenceFor(0.9), 1e-12)
	assert.InDelta(t, 0.8, ConfidenceFor(0.1), 1e-12)
	assert.Equal(t, 1.0, ConfidenceFor(0))
	assert.Equal(t, 1.0, ConfidenceFor(1))
}
