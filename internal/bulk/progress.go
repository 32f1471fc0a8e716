package bulk

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/common"
	"github.com/seyi-adeleke/riskscore/internal/entity"
	"github.com/seyi-adeleke/riskscore/internal/repository"
)

// Aggregator merges chunk outcomes into job-level counters. The critical
// section itself lives in JobRepository.MergeProgress; this layer adds
// retry-with-backoff on transient persistence failures and terminal-state
// logging.
type Aggregator struct {
	jobs        repository.JobRepository
	logger      *slog.Logger
	maxAttempts int
	backoff     time.Duration
}

func NewAggregator(jobs repository.JobRepository, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		jobs:        jobs,
		logger:      logger,
		maxAttempts: 3,
		backoff:     200 * time.Millisecond,
	}
}

// Merge applies one chunk's delta. Transient database errors are retried
// with doubling backoff; a missing job is unrecoverable and is not
// retried.
func (a *Aggregator) Merge(ctx context.Context, jobID uuid.UUID, delta entity.ProgressDelta) (*entity.UploadJob, error) {
	var lastErr error
	wait := a.backoff
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		job, err := a.jobs.MergeProgress(ctx, jobID, delta)
		if err == nil {
			if job.Status == constants.JobStatusCompleted && delta.ChunkCompleted {
				a.logger.Info("job completed",
					"job_id", jobID,
					"total_chunks", job.TotalChunks,
					"successful_rows", job.SuccessfulRows,
					"failed_rows", job.FailedRows)
			}
			return job, nil
		}
		lastErr = err
		if !errors.Is(err, common.ErrDatabase) || attempt == a.maxAttempts {
			break
		}
		a.logger.Warn("progress merge failed, retrying",
			"job_id", jobID, "chunk_index", delta.ChunkIndex,
			"attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
	a.logger.Error("progress merge gave up",
		"job_id", jobID, "chunk_index", delta.ChunkIndex, "error", lastErr)
	return nil, lastErr
}

// FailJob drives the job to its terminal FAILED state with a
// human-readable message. Used for unrecoverable chunk-level errors such
// as a corrupt payload or a missing job record.
func (a *Aggregator) FailJob(ctx context.Context, jobID uuid.UUID, message string) {
	if err := a.jobs.MarkFailed(ctx, jobID, message); err != nil {
		a.logger.Error("failed to mark job failed", "job_id", jobID, "error", err)
	}
}
