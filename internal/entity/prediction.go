package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/seyi-adeleke/riskscore/constants"
)

// Prediction represents a stored prediction for data transfer between
// layers. Quarter is zero for annual predictions; the quarterly-only
// probability fields are nil on annual rows.
type Prediction struct {
	ID                  uuid.UUID           `json:"id"`
	CompanyID           uuid.UUID           `json:"company_id"`
	Year                int                 `json:"year"`
	Quarter             int                 `json:"quarter,omitempty"`
	Probability         float64             `json:"probability"`
	LogitProbability    *float64            `json:"logit_probability,omitempty"`
	GBMProbability      *float64            `json:"gbm_probability,omitempty"`
	EnsembleProbability *float64            `json:"ensemble_probability,omitempty"`
	RiskLevel           constants.RiskLevel `json:"risk_level"`
	Confidence          float64             `json:"confidence"`
	JobID               uuid.UUID           `json:"job_id"`
	ChunkIndex          int                 `json:"chunk_index"`
	RowIndex            int                 `json:"row_index"`
	CreatedAt           time.Time           `json:"created_at"`
}

// PredictionInput is everything a chunk executor buffers for one scored
// row before a sub-batch flush. Ratios hold the raw cell snapshot for
// audit, not the parsed values.
type PredictionInput struct {
	JobType             constants.JobType
	CompanyID           uuid.UUID
	Year                int
	Quarter             int
	Ratios              map[string]string
	Probability         float64
	LogitProbability    *float64
	GBMProbability      *float64
	EnsembleProbability *float64
	RiskLevel           constants.RiskLevel
	Confidence          float64
	JobID               uuid.UUID
	ChunkIndex          int
	RowIndex            int
}
