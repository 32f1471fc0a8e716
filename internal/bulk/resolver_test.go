package bulk

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-adeleke/riskscore/internal/entity"
)

func TestResolveMemoizesSymbolsWithinChunk(t *testing.T) {
	companies := newMemCompanies()
	r := NewCompanyResolver(companies, systemScope())

	a := annualRow(0, "AAPL", 2019, "0.1")
	b := annualRow(1, "aapl ", 2019, "0.2") // case and whitespace fold to the same symbol
	c := annualRow(2, "MSFT", 2019, "0.1")

	first, err := r.Resolve(context.Background(), &a)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), &b)
	require.NoError(t, err)
	third, err := r.Resolve(context.Background(), &c)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.NotEqual(t, first.ID, third.ID)
	assert.Equal(t, "AAPL", first.Symbol)
	// one upsert per distinct symbol
	assert.Equal(t, 2, companies.calls)
}

func TestResolveErrorIsNotCached(t *testing.T) {
	companies := newMemCompanies()
	companies.err = assert.AnError
	r := NewCompanyResolver(companies, systemScope())

	row := annualRow(0, "AAPL", 2019, "0.1")
	_, err := r.Resolve(context.Background(), &row)
	require.Error(t, err)

	companies.err = nil
	got, err := r.Resolve(context.Background(), &row)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", got.Symbol)
}

func TestGuardDistinguishesPeriods(t *testing.T) {
	predictions := newMemPredictions()
	g := NewPredictionGuard(predictions)

	companyID := seedPrediction(t, predictions)

	exists, err := g.Exists(context.Background(), "ANNUAL", companyID, 2019, 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = g.Exists(context.Background(), "ANNUAL", companyID, 2020, 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func seedPrediction(t *testing.T, predictions *memPredictions) uuid.UUID {
	t.Helper()
	in := &entity.PredictionInput{
		JobType:     "ANNUAL",
		CompanyID:   uuid.New(),
		Year:        2019,
		Probability: 0.05,
		RiskLevel:   "HIGH",
		Confidence:  0.9,
	}
	require.NoError(t, predictions.Create(context.Background(), in))
	return in.CompanyID
}
