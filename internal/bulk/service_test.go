package bulk

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/async"
	"github.com/seyi-adeleke/riskscore/internal/common"
)

// captureQueue records enqueued tasks instead of running them. failAt
// rejects the task with that chunk index, simulating a queue that stops
// accepting work mid-submission.
type captureQueue struct {
	mu     sync.Mutex
	tasks  []async.ChunkTask
	failAt int
}

func newCaptureQueue() *captureQueue {
	return &captureQueue{failAt: -1}
}

func (q *captureQueue) Enqueue(_ context.Context, task async.ChunkTask) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.failAt >= 0 && task.ChunkIndex == q.failAt {
		return fmt.Errorf("queue rejected chunk %d", task.ChunkIndex)
	}
	q.tasks = append(q.tasks, task)
	return nil
}

func (q *captureQueue) Shutdown(context.Context) {}

func TestSubmitJobChunksRows(t *testing.T) {
	jobs := newMemJobs()
	queue := newCaptureQueue()
	svc := NewService(testLogger(), jobs, queue, 50, 0)

	rows := makeAnnualRows(120)
	job, err := svc.SubmitJob(context.Background(), constants.JobTypeAnnual, systemScope(), rows)
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusPending, job.Status)
	assert.Equal(t, 120, job.TotalRows)
	assert.Equal(t, 3, job.TotalChunks)

	require.Len(t, queue.tasks, 3)
	sizes := []int{50, 50, 20}
	for i, task := range queue.tasks {
		assert.Equal(t, job.ID, task.JobID)
		assert.Equal(t, i, task.ChunkIndex)
		assert.Equal(t, 3, task.TotalChunks)

		payload, err := DecodeChunkPayload(task.Payload)
		require.NoError(t, err)
		assert.Equal(t, constants.JobTypeAnnual, payload.JobType)
		assert.Len(t, payload.Rows, sizes[i])
	}
	// row indices survive chunking
	p, err := DecodeChunkPayload(queue.tasks[2].Payload)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Rows[0].RowIndex)
}

func TestSubmitJobExactMultipleOfChunkSize(t *testing.T) {
	jobs := newMemJobs()
	queue := newCaptureQueue()
	svc := NewService(testLogger(), jobs, queue, 50, 0)

	job, err := svc.SubmitJob(context.Background(), constants.JobTypeAnnual, systemScope(), makeAnnualRows(100))
	require.NoError(t, err)
	assert.Equal(t, 2, job.TotalChunks)
	assert.Len(t, queue.tasks, 2)
}

func TestSubmitJobRejectsEmptyUpload(t *testing.T) {
	svc := NewService(testLogger(), newMemJobs(), newCaptureQueue(), 50, 0)

	_, err := svc.SubmitJob(context.Background(), constants.JobTypeAnnual, systemScope(), nil)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestSubmitJobRejectsOversizedUpload(t *testing.T) {
	svc := NewService(testLogger(), newMemJobs(), newCaptureQueue(), 50, 100)

	_, err := svc.SubmitJob(context.Background(), constants.JobTypeAnnual, systemScope(), makeAnnualRows(101))
	require.ErrorIs(t, err, common.ErrSizeLimit)
}

func TestSubmitJobRejectsUnknownJobType(t *testing.T) {
	svc := NewService(testLogger(), newMemJobs(), newCaptureQueue(), 50, 0)

	_, err := svc.SubmitJob(context.Background(), constants.JobType("MONTHLY"), systemScope(), makeAnnualRows(1))
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSubmitJobEnqueueFailureMarksJobFailed(t *testing.T) {
	jobs := newMemJobs()
	queue := newCaptureQueue()
	queue.failAt = 1
	svc := NewService(testLogger(), jobs, queue, 50, 0)

	_, err := svc.SubmitJob(context.Background(), constants.JobTypeAnnual, systemScope(), makeAnnualRows(120))
	require.Error(t, err)

	// the single job we created is failed with the offending chunk named
	require.Len(t, jobs.jobs, 1)
	for id := range jobs.jobs {
		job, err := jobs.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, constants.JobStatusFailed, job.Status)
		require.NotNil(t, job.ErrorMessage)
		assert.Contains(t, *job.ErrorMessage, "chunk 1")
	}
}

func TestGetJobStatusProgressPercentage(t *testing.T) {
	jobs := newMemJobs()
	queue := newCaptureQueue()
	svc := NewService(testLogger(), jobs, queue, 50, 0)

	job, err := svc.SubmitJob(context.Background(), constants.JobTypeAnnual, systemScope(), makeAnnualRows(120))
	require.NoError(t, err)

	view, err := svc.GetJobStatus(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, view.ProgressPercentage)

	_, err = jobs.MergeProgress(context.Background(), job.ID, deltaFor(0, 50, 47, 3))
	require.NoError(t, err)

	view, err = svc.GetJobStatus(context.Background(), job.ID)
	require.NoError(t, err)
	assert.InDelta(t, 41.67, view.ProgressPercentage, 1e-9)
	assert.Equal(t, constants.JobStatusProcessing, view.Status)
	assert.Equal(t, 47, view.SuccessfulRows)
	assert.Equal(t, 3, view.FailedRows)
}

func TestGetJobStatusUnknownJob(t *testing.T) {
	svc := NewService(testLogger(), newMemJobs(), newCaptureQueue(), 50, 0)

	_, err := svc.GetJobStatus(context.Background(), uuid.New())
	require.ErrorIs(t, err, common.ErrNotFound)
}
