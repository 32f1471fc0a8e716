package repository

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/entity"
)

func seedJob(t *testing.T, repo JobRepository, totalRows, totalChunks int) *entity.UploadJob {
	t.Helper()
	job, err := repo.Create(context.Background(), &entity.UploadJob{
		JobType:     constants.JobTypeAnnual,
		TotalRows:   totalRows,
		TotalChunks: totalChunks,
		Scope:       systemScope(),
	})
	require.NoError(t, err)
	return job
}

func TestMergeProgressAccumulatesToCompletion(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, slog.New(slog.DiscardHandler))
	ctx := context.Background()
	job := seedJob(t, repo, 50, 2)

	first, err := repo.MergeProgress(ctx, job.ID, entity.ProgressDelta{
		ChunkIndex: 0, Processed: 25, Successful: 20, Failed: 5, ChunkCompleted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusProcessing, first.Status)
	assert.Equal(t, 25, first.ProcessedRows)
	require.NotNil(t, first.StartedAt)

	second, err := repo.MergeProgress(ctx, job.ID, entity.ProgressDelta{
		ChunkIndex: 1, Processed: 25, Successful: 25, ChunkCompleted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, second.Status)
	assert.Equal(t, 50, second.ProcessedRows)
	assert.Equal(t, 45, second.SuccessfulRows)
	assert.Equal(t, 5, second.FailedRows)
	assert.Equal(t, 2, second.CompletedChunks)
	require.NotNil(t, second.CompletedAt)
}

func TestMergeProgressIgnoresRedeliveredChunk(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, slog.New(slog.DiscardHandler))
	ctx := context.Background()
	job := seedJob(t, repo, 50, 2)

	delta := entity.ProgressDelta{
		ChunkIndex: 0, Processed: 25, Successful: 25, ChunkCompleted: true,
	}
	_, err := repo.MergeProgress(ctx, job.ID, delta)
	require.NoError(t, err)

	again, err := repo.MergeProgress(ctx, job.ID, delta)
	require.NoError(t, err)
	assert.Equal(t, 25, again.ProcessedRows, "redelivery must not double-count")
	assert.Equal(t, 1, again.CompletedChunks)
}

func TestMergeProgressAfterFailureKeepsCounters(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, slog.New(slog.DiscardHandler))
	ctx := context.Background()
	job := seedJob(t, repo, 50, 2)

	require.NoError(t, repo.MarkFailed(ctx, job.ID, "chunk 0 payload corrupt"))

	// a straggler chunk reporting after the failure leaves the job as is
	delta := entity.ProgressDelta{
		ChunkIndex: 1, Processed: 25, Successful: 25, ChunkCompleted: true,
	}
	merged, err := repo.MergeProgress(ctx, job.ID, delta)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, merged.Status)
	assert.Equal(t, 0, merged.ProcessedRows)
	assert.Equal(t, 0, merged.SuccessfulRows)
	assert.Equal(t, 0, merged.FailedRows)
	assert.Equal(t, 0, merged.CompletedChunks)

	// the straggler's ledger row still committed, so a redelivery of the
	// same chunk stays a no-op
	again, err := repo.MergeProgress(ctx, job.ID, delta)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, again.Status)
	assert.Equal(t, 0, again.ProcessedRows)
}
