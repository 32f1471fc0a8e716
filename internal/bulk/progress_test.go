package bulk

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/common"
	"github.com/seyi-adeleke/riskscore/internal/entity"
)

func deltaFor(chunkIndex, processed, successful, failed int) entity.ProgressDelta {
	return entity.ProgressDelta{
		ChunkIndex:     chunkIndex,
		Processed:      processed,
		Successful:     successful,
		Failed:         failed,
		ChunkCompleted: true,
	}
}

func seedJob(t *testing.T, jobs *memJobs, totalRows, totalChunks int) *entity.UploadJob {
	t.Helper()
	job, err := jobs.Create(context.Background(), &entity.UploadJob{
		ID:          uuid.New(),
		JobType:     constants.JobTypeAnnual,
		Status:      constants.JobStatusPending,
		TotalRows:   totalRows,
		TotalChunks: totalChunks,
		Scope:       systemScope(),
	})
	require.NoError(t, err)
	return job
}

func TestMergeAccumulatesAcrossChunks(t *testing.T) {
	jobs := newMemJobs()
	agg := NewAggregator(jobs, testLogger())
	job := seedJob(t, jobs, 100, 2)

	got, err := agg.Merge(context.Background(), job.ID, deltaFor(0, 50, 48, 2))
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusProcessing, got.Status)
	assert.NotNil(t, got.StartedAt)
	assert.Equal(t, 50, got.ProcessedRows)

	got, err = agg.Merge(context.Background(), job.ID, deltaFor(1, 50, 50, 0))
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	assert.Equal(t, 100, got.ProcessedRows)
	assert.Equal(t, 98, got.SuccessfulRows)
	assert.Equal(t, 2, got.FailedRows)
	assert.Equal(t, 2, got.CompletedChunks)
	assert.NotNil(t, got.CompletedAt)
}

func TestMergeDuplicateChunkIsIgnored(t *testing.T) {
	jobs := newMemJobs()
	agg := NewAggregator(jobs, testLogger())
	job := seedJob(t, jobs, 100, 2)

	_, err := agg.Merge(context.Background(), job.ID, deltaFor(0, 50, 50, 0))
	require.NoError(t, err)

	// same chunk redelivered: counters must not move
	got, err := agg.Merge(context.Background(), job.ID, deltaFor(0, 50, 50, 0))
	require.NoError(t, err)
	assert.Equal(t, 50, got.ProcessedRows)
	assert.Equal(t, 1, got.CompletedChunks)
	assert.Equal(t, constants.JobStatusProcessing, got.Status)
}

func TestMergeRetriesTransientDatabaseErrors(t *testing.T) {
	jobs := newMemJobs()
	jobs.mergeErrs = []error{
		fmt.Errorf("%w: connection reset", common.ErrDatabase),
		nil,
	}
	agg := NewAggregator(jobs, testLogger())
	agg.backoff = 1 // keep the test fast
	job := seedJob(t, jobs, 50, 1)

	got, err := agg.Merge(context.Background(), job.ID, deltaFor(0, 50, 50, 0))
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	assert.Equal(t, 2, jobs.mergeCalls)
}

func TestMergeDoesNotRetryMissingJob(t *testing.T) {
	jobs := newMemJobs()
	agg := NewAggregator(jobs, testLogger())
	agg.backoff = 1

	_, err := agg.Merge(context.Background(), uuid.New(), deltaFor(0, 10, 10, 0))
	require.ErrorIs(t, err, common.ErrNotFound)
	assert.Equal(t, 1, jobs.mergeCalls)
}

func TestMergeGivesUpAfterMaxAttempts(t *testing.T) {
	dbErr := fmt.Errorf("%w: still down", common.ErrDatabase)
	jobs := newMemJobs()
	jobs.mergeErrs = []error{dbErr, dbErr, dbErr}
	agg := NewAggregator(jobs, testLogger())
	agg.backoff = 1
	job := seedJob(t, jobs, 50, 1)

	_, err := agg.Merge(context.Background(), job.ID, deltaFor(0, 50, 50, 0))
	require.ErrorIs(t, err, common.ErrDatabase)
	assert.Equal(t, 3, jobs.mergeCalls)
}

func TestMergeCapsErrorDetails(t *testing.T) {
	jobs := newMemJobs()
	agg := NewAggregator(jobs, testLogger())
	job := seedJob(t, jobs, 500, 1)

	delta := deltaFor(0, 500, 300, 200)
	for i := 0; i < 200; i++ {
		delta.Errors = append(delta.Errors, entity.RowError{
			RowIndex: i, Reason: "invalid row",
		})
	}
	got, err := agg.Merge(context.Background(), job.ID, delta)
	require.NoError(t, err)
	assert.Equal(t, 200, got.FailedRows)
	assert.Len(t, got.ErrorDetails, constants.MaxErrorDetails)
}

func TestFailJobIsTerminal(t *testing.T) {
	jobs := newMemJobs()
	agg := NewAggregator(jobs, testLogger())
	job := seedJob(t, jobs, 50, 1)

	agg.FailJob(context.Background(), job.ID, "chunk 0 payload corrupt")

	got, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "payload corrupt")

	// a straggler chunk merging afterwards cannot resurrect the job or
	// move its counters past the failure point
	merged, err := agg.Merge(context.Background(), job.ID, deltaFor(0, 50, 50, 0))
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, merged.Status)
	assert.Equal(t, 0, merged.ProcessedRows)
	assert.Equal(t, 0, merged.SuccessfulRows)
	assert.Equal(t, 0, merged.FailedRows)
	assert.Equal(t, 0, merged.CompletedChunks)
}
