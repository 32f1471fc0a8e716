package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-adeleke/riskscore/constants"
)

func TestLoadShippedArtifacts(t *testing.T) {
	annual, err := LoadAnnualModel(filepath.Join("..", "..", "models", "annual_v1.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, annual.Version)
	for _, name := range constants.AnnualRatios {
		assert.Contains(t, annual.Tables, name)
		assert.Contains(t, annual.Scorer.Weights, name)
	}

	quarterly, err := LoadQuarterlyModel(filepath.Join("..", "..", "models", "quarterly_v1.json"))
	require.NoError(t, err)
	assert.NotEmpty(t, quarterly.GBM.Trees)

	// the shipped artifacts must score a fully populated row end to end
	eng := NewEngine(annual, quarterly)
	res, err := eng.ScoreAnnual(map[string]float64{
		constants.RatioROA:              0.04,
		constants.RatioDebtRatio:        0.55,
		constants.RatioCurrentRatio:     1.3,
		constants.RatioInterestCoverage: 4.2,
		constants.RatioOperatingMargin:  0.08,
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Probability, 0.0)
	assert.LessOrEqual(t, res.Probability, 1.0)

	qres, err := eng.ScoreQuarterly(map[string]float64{
		constants.RatioROA:             0.01,
		constants.RatioDebtRatio:       0.6,
		constants.RatioCurrentRatio:    1.1,
		constants.RatioOperatingMargin: 0.05,
	})
	require.NoError(t, err)
	assert.Equal(t, (qres.LogitProbability+qres.GBMProbability)/2, qres.EnsembleProbability)
}

func TestLoadAnnualModel_Invalid(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	_, err := LoadAnnualModel(filepath.Join(dir, "nope.json"))
	assert.Error(t, err)

	_, err = LoadAnnualModel(write("garbage.json", "{not json"))
	assert.Error(t, err)

	// valid JSON, but no table for debt_ratio
	_, err = LoadAnnualModel(write("partial.json", `{
		"version": "x",
		"tables": {"roa": {"intervals": [{"rate": 0.1}], "missing_rate": 0.1}},
		"scorer": {"intercept": 0, "weights": {}}
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scoring table")
}
