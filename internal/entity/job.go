package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/seyi-adeleke/riskscore/constants"
)

// UploadJob represents a bulk-upload job for data transfer between layers.
type UploadJob struct {
	ID              uuid.UUID           `json:"id"`
	JobType         constants.JobType   `json:"job_type"`
	Status          constants.JobStatus `json:"status"`
	TotalRows       int                 `json:"total_rows"`
	TotalChunks     int                 `json:"total_chunks"`
	CompletedChunks int                 `json:"completed_chunks"`
	ProcessedRows   int                 `json:"processed_rows"`
	SuccessfulRows  int                 `json:"successful_rows"`
	FailedRows      int                 `json:"failed_rows"`
	ErrorMessage    *string             `json:"error_message,omitempty"`
	ErrorDetails    []RowError          `json:"error_details,omitempty"`
	Scope           OwnerScope          `json:"scope"`
	StartedAt       *time.Time          `json:"started_at,omitempty"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// RowError is one bounded error_details entry: which row failed and why.
type RowError struct {
	ChunkIndex int    `json:"chunk_index"`
	RowIndex   int    `json:"row_index"`
	Symbol     string `json:"symbol,omitempty"`
	Reason     string `json:"reason"`
}

// ProgressDelta is one chunk's contribution to job-level counters. The
// aggregator applies it exactly once per (job, chunk).
type ProgressDelta struct {
	ChunkIndex     int
	Processed      int
	Successful     int
	Failed         int
	ChunkCompleted bool
	Errors         []RowError
}

// JobStatusView is the read model returned to job-status callers.
type JobStatusView struct {
	ID                 uuid.UUID           `json:"id"`
	JobType            constants.JobType   `json:"job_type"`
	Status             constants.JobStatus `json:"status"`
	TotalRows          int                 `json:"total_rows"`
	TotalChunks        int                 `json:"total_chunks"`
	CompletedChunks    int                 `json:"completed_chunks"`
	ProcessedRows      int                 `json:"processed_rows"`
	SuccessfulRows     int                 `json:"successful_rows"`
	FailedRows         int                 `json:"failed_rows"`
	ProgressPercentage float64             `json:"progress_percentage"`
	ErrorMessage       *string             `json:"error_message,omitempty"`
	ErrorDetails       []RowError          `json:"error_details,omitempty"`
	StartedAt          *time.Time          `json:"started_at,omitempty"`
	CompletedAt        *time.Time          `json:"completed_at,omitempty"`
}
