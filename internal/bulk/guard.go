package bulk

import (
	"context"

	"github.com/google/uuid"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/repository"
)

// PredictionGuard rejects re-scoring an already-predicted (company,
// period). Bulk upload never overwrites an existing prediction; the DB
// unique indexes backstop this check under insert races.
type PredictionGuard struct {
	predictions repository.PredictionRepository
}

func NewPredictionGuard(predictions repository.PredictionRepository) *PredictionGuard {
	return &PredictionGuard{predictions: predictions}
}

// Exists reports whether a prediction is already stored for the period.
func (g *PredictionGuard) Exists(ctx context.Context, jobType constants.JobType, companyID uuid.UUID, year, quarter int) (bool, error) {
	if jobType == constants.JobTypeQuarterly {
		p, err := g.predictions.FindQuarterly(ctx, companyID, year, quarter)
		return p != nil, err
	}
	p, err := g.predictions.FindAnnual(ctx, companyID, year)
	return p != nil, err
}
