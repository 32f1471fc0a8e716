package bulk

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/async"
	"github.com/seyi-adeleke/riskscore/internal/common"
	"github.com/seyi-adeleke/riskscore/internal/entity"
	"github.com/seyi-adeleke/riskscore/internal/repository"
)

// Service is the bulk-upload entry point: it validates a parsed upload,
// creates the job record, splits the rows into chunks and hands each
// chunk to the queue. Status reads go through it as well.
type Service struct {
	logger    *slog.Logger
	jobs      repository.JobRepository
	queue     async.Queue
	chunkSize int
	maxRows   int
}

func NewService(logger *slog.Logger, jobs repository.JobRepository, queue async.Queue, chunkSize, maxRows int) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if chunkSize <= 0 {
		chunkSize = constants.DefaultChunkSize
	}
	if maxRows <= 0 {
		maxRows = constants.MaxUploadRows
	}
	return &Service{
		logger:    logger,
		jobs:      jobs,
		queue:     queue,
		chunkSize: chunkSize,
		maxRows:   maxRows,
	}
}

// SubmitJob validates the upload, persists the job in PENDING and
// enqueues every chunk. The job record exists before the first chunk is
// visible to a worker, so progress merges always find their row. If a
// chunk cannot be enqueued the job is marked FAILED immediately rather
// than left to hang with chunks that will never report.
func (s *Service) SubmitJob(ctx context.Context, jobType constants.JobType, scope entity.OwnerScope, rows []entity.UploadRow) (*entity.UploadJob, error) {
	if !constants.ValidJobType(jobType) {
		return nil, fmt.Errorf("%w: unknown job type %q", common.ErrInvalidInput, jobType)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: upload contains no rows", common.ErrValidation)
	}
	if len(rows) > s.maxRows {
		return nil, fmt.Errorf("%w: upload has %d rows, limit is %d", common.ErrSizeLimit, len(rows), s.maxRows)
	}

	totalChunks := (len(rows) + s.chunkSize - 1) / s.chunkSize
	job, err := s.jobs.Create(ctx, &entity.UploadJob{
		ID:          uuid.New(),
		JobType:     jobType,
		Status:      constants.JobStatusPending,
		TotalRows:   len(rows),
		TotalChunks: totalChunks,
		Scope:       scope,
	})
	if err != nil {
		return nil, fmt.Errorf("create upload job: %w", err)
	}

	s.logger.Info("upload job accepted",
		"job_id", job.ID, "job_type", jobType,
		"total_rows", len(rows), "total_chunks", totalChunks)

	for i := 0; i < totalChunks; i++ {
		start := i * s.chunkSize
		end := start + s.chunkSize
		if end > len(rows) {
			end = len(rows)
		}
		payload, err := EncodeChunkPayload(&ChunkPayload{
			JobType: jobType,
			Scope:   scope,
			Rows:    rows[start:end],
		})
		if err != nil {
			return nil, s.abortSubmit(ctx, job, i, fmt.Errorf("encode chunk %d: %w", i, err))
		}
		task := async.ChunkTask{
			JobID:       job.ID,
			ChunkIndex:  i,
			TotalChunks: totalChunks,
			Payload:     payload,
			SubmittedAt: time.Now().UTC(),
		}
		if err := s.queue.Enqueue(ctx, task); err != nil {
			return nil, s.abortSubmit(ctx, job, i, fmt.Errorf("enqueue chunk %d: %w", i, err))
		}
	}
	return job, nil
}

// abortSubmit marks a partially-submitted job failed. Chunks already
// enqueued still run and merge; the terminal status guard keeps them
// from resurrecting the job.
func (s *Service) abortSubmit(ctx context.Context, job *entity.UploadJob, chunkIndex int, cause error) error {
	s.logger.Error("job submission aborted",
		"job_id", job.ID, "chunk_index", chunkIndex, "error", cause)
	msg := fmt.Sprintf("submission failed at chunk %d: %v", chunkIndex, cause)
	if err := s.jobs.MarkFailed(context.WithoutCancel(ctx), job.ID, msg); err != nil {
		s.logger.Error("failed to mark aborted job", "job_id", job.ID, "error", err)
	}
	return cause
}

// GetJobStatus returns the status read model for one job.
func (s *Service) GetJobStatus(ctx context.Context, jobID uuid.UUID) (*entity.JobStatusView, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return statusView(job), nil
}

func statusView(job *entity.UploadJob) *entity.JobStatusView {
	var pct float64
	if job.TotalRows > 0 {
		pct = float64(job.ProcessedRows) / float64(job.TotalRows) * 100
		pct = math.Round(pct*100) / 100
	}
	return &entity.JobStatusView{
		ID:                 job.ID,
		JobType:            job.JobType,
		Status:             job.Status,
		TotalRows:          job.TotalRows,
		TotalChunks:        job.TotalChunks,
		CompletedChunks:    job.CompletedChunks,
		ProcessedRows:      job.ProcessedRows,
		SuccessfulRows:     job.SuccessfulRows,
		FailedRows:         job.FailedRows,
		ProgressPercentage: pct,
		ErrorMessage:       job.ErrorMessage,
		ErrorDetails:       job.ErrorDetails,
		StartedAt:          job.StartedAt,
		CompletedAt:        job.CompletedAt,
	}
}
