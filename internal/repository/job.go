package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/gen/ent"
	"github.com/seyi-adeleke/riskscore/gen/ent/uploadjob"
	"github.com/seyi-adeleke/riskscore/internal/common"
	"github.com/seyi-adeleke/riskscore/internal/entity"
)

// JobRepository owns upload_job rows and the progress-merge critical
// section. MergeProgress is the only write path multiple chunk executors
// share; everything it does happens inside one transaction per call.
type JobRepository interface {
	Create(ctx context.Context, job *entity.UploadJob) (*entity.UploadJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.UploadJob, error)
	MergeProgress(ctx context.Context, jobID uuid.UUID, delta entity.ProgressDelta) (*entity.UploadJob, error)
	MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error
}

type jobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewJobRepository(client *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepository{client: client, logger: logger}
}

func (r *jobRepository) Create(ctx context.Context, job *entity.UploadJob) (*entity.UploadJob, error) {
	row, err := r.client.UploadJob.
		Create().
		SetJobType(string(job.JobType)).
		SetStatus(string(constants.JobStatusPending)).
		SetTotalRows(job.TotalRows).
		SetTotalChunks(job.TotalChunks).
		SetScopeType(string(job.Scope.Type)).
		SetScopeID(job.Scope.ScopeID).
		Save(ctx)
	if err != nil {
		r.logger.Error("upload_job create failed", "job_type", job.JobType, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "create upload_job")
	}
	r.logger.Info("upload_job created",
		"job_id", row.ID, "job_type", row.JobType,
		"total_rows", row.TotalRows, "total_chunks", row.TotalChunks)
	return toUploadJob(row)
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.UploadJob, error) {
	row, err := r.client.UploadJob.Query().Where(uploadjob.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("upload_job %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("upload_job lookup failed", "job_id", id, "error", err)
		return nil, common.WrapError(common.ErrDatabase, "query upload_job")
	}
	return toUploadJob(row)
}

// MergeProgress applies one chunk's delta in a single transaction:
// the chunk_report ledger insert detects redelivered tasks (uniqueness
// conflict means the delta is already counted - skip, never double-count),
// the counter update uses SQL-level increments and its row lock serializes
// concurrent merges, and the status transitions run while that lock is
// held. Counters are never read-then-written.
func (r *jobRepository) MergeProgress(ctx context.Context, jobID uuid.UUID, delta entity.ProgressDelta) (*entity.UploadJob, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "begin merge tx")
	}

	merged, err := r.mergeInTx(ctx, tx, jobID, delta)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("merge rollback failed", "job_id", jobID, "error", rerr)
		}
		if ent.IsConstraintError(err) {
			// redelivered chunk task: the ledger already has this
			// (job, chunk) - return current state unchanged
			r.logger.Warn("duplicate chunk report ignored",
				"job_id", jobID, "chunk_index", delta.ChunkIndex)
			return r.GetByID(ctx, jobID)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, common.WrapError(common.ErrDatabase, "commit merge tx")
	}

	if merged.Status.IsTerminal() {
		r.logger.Info("upload_job reached terminal state",
			"job_id", jobID, "status", merged.Status,
			"processed_rows", merged.ProcessedRows,
			"successful_rows", merged.SuccessfulRows,
			"failed_rows", merged.FailedRows)
	}
	return merged, nil
}

func (r *jobRepository) mergeInTx(ctx context.Context, tx *ent.Tx, jobID uuid.UUID, delta entity.ProgressDelta) (*entity.UploadJob, error) {
	_, err := tx.ChunkReport.
		Create().
		SetJobID(jobID).
		SetChunkIndex(delta.ChunkIndex).
		SetRowsProcessed(delta.Processed).
		SetRowsSuccessful(delta.Successful).
		SetRowsFailed(delta.Failed).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, err
		}
		return nil, common.WrapError(common.ErrDatabase, "insert chunk_report")
	}

	// a straggler chunk reporting after MarkFailed must not move the
	// counters of a FAILED job; its ledger row still commits so a
	// redelivery stays a no-op
	upd := tx.UploadJob.
		Update().
		Where(
			uploadjob.ID(jobID),
			uploadjob.StatusNEQ(string(constants.JobStatusFailed)),
		).
		AddProcessedRows(delta.Processed).
		AddSuccessfulRows(delta.Successful).
		AddFailedRows(delta.Failed)
	if delta.ChunkCompleted {
		upd.AddCompletedChunks(1)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "increment job counters")
	}
	if n == 0 {
		row, qerr := tx.UploadJob.Query().Where(uploadjob.ID(jobID)).Only(ctx)
		if qerr != nil {
			if ent.IsNotFound(qerr) {
				return nil, fmt.Errorf("upload_job %s: %w", jobID, common.ErrNotFound)
			}
			return nil, common.WrapError(common.ErrDatabase, "read job after skipped increment")
		}
		return toUploadJob(row)
	}

	// the counter update above locked the job row; reads below are inside
	// the critical section
	row, err := tx.UploadJob.Query().Where(uploadjob.ID(jobID)).Only(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "read job after increment")
	}

	now := time.Now().UTC()
	if constants.JobStatus(row.Status) == constants.JobStatusPending {
		row, err = tx.UploadJob.
			UpdateOne(row).
			SetStatus(string(constants.JobStatusProcessing)).
			SetStartedAt(now).
			Save(ctx)
		if err != nil {
			return nil, common.WrapError(common.ErrDatabase, "mark job processing")
		}
	}

	if len(delta.Errors) > 0 {
		row, err = r.appendErrors(ctx, tx, row, delta.Errors)
		if err != nil {
			return nil, err
		}
	}

	if row.CompletedChunks >= row.TotalChunks &&
		!constants.JobStatus(row.Status).IsTerminal() {
		row, err = tx.UploadJob.
			UpdateOne(row).
			SetStatus(string(constants.JobStatusCompleted)).
			SetCompletedAt(now).
			Save(ctx)
		if err != nil {
			return nil, common.WrapError(common.ErrDatabase, "mark job completed")
		}
	}

	return toUploadJob(row)
}

// appendErrors keeps at most constants.MaxErrorDetails entries; overflow
// is dropped, the counters stay authoritative.
func (r *jobRepository) appendErrors(ctx context.Context, tx *ent.Tx, row *ent.UploadJob, errs []entity.RowError) (*ent.UploadJob, error) {
	existing, err := decodeErrorDetails(row.ErrorDetails)
	if err != nil {
		r.logger.Warn("resetting undecodable error_details", "job_id", row.ID, "error", err)
		existing = nil
	}
	if len(existing) >= constants.MaxErrorDetails {
		return row, nil
	}
	room := constants.MaxErrorDetails - len(existing)
	if len(errs) > room {
		errs = errs[:room]
	}
	merged := append(existing, errs...)
	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, common.WrapError(err, "encode error_details")
	}
	updated, err := tx.UploadJob.UpdateOne(row).SetErrorDetails(raw).Save(ctx)
	if err != nil {
		return nil, common.WrapError(common.ErrDatabase, "append error_details")
	}
	return updated, nil
}

// MarkFailed drives a job to its terminal FAILED state. No-op when the
// job is already terminal; status is monotonic.
func (r *jobRepository) MarkFailed(ctx context.Context, jobID uuid.UUID, message string) error {
	n, err := r.client.UploadJob.
		Update().
		Where(
			uploadjob.ID(jobID),
			uploadjob.StatusNotIn(
				string(constants.JobStatusCompleted),
				string(constants.JobStatusFailed),
			),
		).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("upload_job mark failed errored", "job_id", jobID, "error", err)
		return common.WrapError(common.ErrDatabase, "mark job failed")
	}
	if n > 0 {
		r.logger.Warn("upload_job failed", "job_id", jobID, "error", message)
	}
	return nil
}

func toUploadJob(row *ent.UploadJob) (*entity.UploadJob, error) {
	details, err := decodeErrorDetails(row.ErrorDetails)
	if err != nil {
		return nil, common.WrapError(err, "decode error_details")
	}
	return &entity.UploadJob{
		ID:              row.ID,
		JobType:         constants.JobType(row.JobType),
		Status:          constants.JobStatus(row.Status),
		TotalRows:       row.TotalRows,
		TotalChunks:     row.TotalChunks,
		CompletedChunks: row.CompletedChunks,
		ProcessedRows:   row.ProcessedRows,
		SuccessfulRows:  row.SuccessfulRows,
		FailedRows:      row.FailedRows,
		ErrorMessage:    row.ErrorMessage,
		ErrorDetails:    details,
		Scope: entity.OwnerScope{
			Type:    constants.ScopeType(row.ScopeType),
			ScopeID: row.ScopeID,
		},
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
		CreatedAt:   row.CreatedAt,
	}, nil
}

func decodeErrorDetails(raw json.RawMessage) ([]entity.RowError, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var details []entity.RowError
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, err
	}
	return details, nil
}
