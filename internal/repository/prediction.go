package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/gen/ent"
	"github.com/seyi-adeleke/riskscore/gen/ent/annualprediction"
	"github.com/seyi-adeleke/riskscore/gen/ent/quarterlyprediction"
	"github.com/seyi-adeleke/riskscore/internal/common"
	"github.com/seyi-adeleke/riskscore/internal/entity"
)

// PredictionRepository stores scored rows and answers the duplicate
// guard's period lookups. Find methods return (nil, nil) when no
// prediction exists for the period.
type PredictionRepository interface {
	FindAnnual(ctx context.Context, companyID uuid.UUID, year int) (*entity.Prediction, error)
	FindQuarterly(ctx context.Context, companyID uuid.UUID, year, quarter int) (*entity.Prediction, error)
	// CreateBatch inserts one sub-batch in a single transaction; any
	// failure rolls the whole sub-batch back.
	CreateBatch(ctx context.Context, inputs []*entity.PredictionInput) error
	// Create inserts a single prediction. A uniqueness violation is
	// reported as common.ErrConflict.
	Create(ctx context.Context, input *entity.PredictionInput) error
}

type predictionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPredictionRepository(client *ent.Client, logger *slog.Logger) PredictionRepository {
	return &predictionRepository{client: client, logger: logger}
}

func (r *predictionRepository) FindAnnual(ctx context.Context, companyID uuid.UUID, year int) (*entity.Prediction, error) {
	row, err := r.client.AnnualPrediction.
		Query().
		Where(
			annualprediction.CompanyID(companyID),
			annualprediction.ReportingYear(year),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("annual prediction lookup failed", "company_id", companyID, "year", year, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "query annual prediction")
	}
	return &entity.Prediction{
		ID:          row.ID,
		CompanyID:   row.CompanyID,
		Year:        row.ReportingYear,
		Probability: row.Probability,
		RiskLevel:   constants.RiskLevel(row.RiskLevel),
		Confidence:  row.Confidence,
		JobID:       row.JobID,
		ChunkIndex:  row.ChunkIndex,
		RowIndex:    row.RowIndex,
		CreatedAt:   row.CreatedAt,
	}, nil
}

func (r *predictionRepository) FindQuarterly(ctx context.Context, companyID uuid.UUID, year, quarter int) (*entity.Prediction, error) {
	row, err := r.client.QuarterlyPrediction.
		Query().
		Where(
			quarterlyprediction.CompanyID(companyID),
			quarterlyprediction.ReportingYear(year),
			quarterlyprediction.ReportingQuarter(quarter),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("quarterly prediction lookup failed", "company_id", companyID, "year", year, "quarter", quarter, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "query quarterly prediction")
	}
	return &entity.Prediction{
		ID:                  row.ID,
		CompanyID:           row.CompanyID,
		Year:                row.ReportingYear,
		Quarter:             row.ReportingQuarter,
		Probability:         row.EnsembleProbability,
		LogitProbability:    &row.LogitProbability,
		GBMProbability:      &row.GbmProbability,
		EnsembleProbability: &row.EnsembleProbability,
		RiskLevel:           constants.RiskLevel(row.RiskLevel),
		Confidence:          row.Confidence,
		JobID:               row.JobID,
		ChunkIndex:          row.ChunkIndex,
		RowIndex:            row.RowIndex,
		CreatedAt:           row.CreatedAt,
	}, nil
}

func (r *predictionRepository) CreateBatch(ctx context.Context, inputs []*entity.PredictionInput) error {
	if len(inputs) == 0 {
		return nil
	}
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return common.WrapError(common.ErrDatabase, "begin batch tx")
	}
	for _, in := range inputs {
		if err := r.createInTx(ctx, tx, in); err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				r.logger.Error("batch rollback failed", "job_id", in.JobID, "error", rerr)
			}
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return common.WrapError(common.ErrDatabase, "commit batch tx")
	}
	return nil
}

func (r *predictionRepository) Create(ctx context.Context, input *entity.PredictionInput) error {
	return r.createInTx(ctx, nil, input)
}

func (r *predictionRepository) createInTx(ctx context.Context, tx *ent.Tx, in *entity.PredictionInput) error {
	client := r.client
	if tx != nil {
		client = tx.Client()
	}
	var err error
	if in.JobType == constants.JobTypeQuarterly {
		err = r.createQuarterly(ctx, client, in)
	} else {
		err = r.createAnnual(ctx, client, in)
	}
	if err == nil {
		return nil
	}
	if ent.IsConstraintError(err) {
		return fmt.Errorf("prediction for company %s period %d/%d: %w",
			in.CompanyID, in.Year, in.Quarter, common.ErrConflict)
	}
	return common.WrapError(common.ErrDatabase, "insert prediction")
}

func (r *predictionRepository) createAnnual(ctx context.Context, client *ent.Client, in *entity.PredictionInput) error {
	_, err := client.AnnualPrediction.
		Create().
		SetCompanyID(in.CompanyID).
		SetReportingYear(in.Year).
		SetRatios(in.Ratios).
		SetProbability(in.Probability).
		SetRiskLevel(string(in.RiskLevel)).
		SetConfidence(in.Confidence).
		SetJobID(in.JobID).
		SetChunkIndex(in.ChunkIndex).
		SetRowIndex(in.RowIndex).
		Save(ctx)
	return err
}

func (r *predictionRepository) createQuarterly(ctx context.Context, client *ent.Client, in *entity.PredictionInput) error {
	_, err := client.QuarterlyPrediction.
		Create().
		SetCompanyID(in.CompanyID).
		SetReportingYear(in.Year).
		SetReportingQuarter(in.Quarter).
		SetRatios(in.Ratios).
		SetLogitProbability(derefOrZero(in.LogitProbability)).
		SetGbmProbability(derefOrZero(in.GBMProbability)).
		SetEnsembleProbability(in.Probability).
		SetRiskLevel(string(in.RiskLevel)).
		SetConfidence(in.Confidence).
		SetJobID(in.JobID).
		SetChunkIndex(in.ChunkIndex).
		SetRowIndex(in.RowIndex).
		Save(ctx)
	return err
}

func derefOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
