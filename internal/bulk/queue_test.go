package bulk

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/entity"
)

// pipeline wires the real queue, executor and service against the
// in-memory stores, the way the daemon does.
func newPipeline(t *testing.T, chunkSize, workers int) (*Service, *memJobs, *ExecutorQueue) {
	t.Helper()
	jobs := newMemJobs()
	agg := NewAggregator(jobs, testLogger())
	exec := NewChunkExecutor(testLogger(), testEngine(), newMemCompanies(), newMemPredictions(), agg, 0)
	queue := NewExecutorQueue(exec, testLogger(),
		WithWorkers(workers),
		WithQueueSize(64),
		WithChunkTimeout(30*time.Second),
	)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		queue.Shutdown(ctx)
	})
	return NewService(testLogger(), jobs, queue, chunkSize, 0), jobs, queue
}

func waitTerminal(t *testing.T, svc *Service, jobID uuid.UUID) *entity.JobStatusView {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		view, err := svc.GetJobStatus(context.Background(), jobID)
		require.NoError(t, err)
		if view.Status.IsTerminal() {
			return view
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s did not reach a terminal state", jobID)
	return nil
}

func TestPipelineCompletesMultiChunkJob(t *testing.T) {
	svc, _, _ := newPipeline(t, 50, 4)

	job, err := svc.SubmitJob(context.Background(), constants.JobTypeAnnual, systemScope(), makeAnnualRows(120))
	require.NoError(t, err)

	view := waitTerminal(t, svc, job.ID)
	assert.Equal(t, constants.JobStatusCompleted, view.Status)
	assert.Equal(t, 3, view.CompletedChunks)
	assert.Equal(t, 120, view.ProcessedRows)
	assert.Equal(t, 120, view.SuccessfulRows)
	assert.Equal(t, 0, view.FailedRows)
	assert.Equal(t, 100.0, view.ProgressPercentage)
}

func TestPipelineManyConcurrentJobs(t *testing.T) {
	svc, _, _ := newPipeline(t, 10, 8)

	var g errgroup.Group
	ids := make([]uuid.UUID, 8)
	for i := range ids {
		i := i
		g.Go(func() error {
			job, err := svc.SubmitJob(context.Background(), constants.JobTypeAnnual, systemScope(), makeAnnualRows(45))
			if err != nil {
				return err
			}
			ids[i] = job.ID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, id := range ids {
		view := waitTerminal(t, svc, id)
		assert.Equal(t, constants.JobStatusCompleted, view.Status)
		assert.Equal(t, 45, view.ProcessedRows)
		assert.Equal(t, 5, view.CompletedChunks)
	}
}

// Counters must converge to the exact totals no matter how chunk reports
// interleave.
func TestConcurrentMergesConverge(t *testing.T) {
	jobs := newMemJobs()
	agg := NewAggregator(jobs, testLogger())

	const chunks = 40
	job := seedJob(t, jobs, chunks*25, chunks)

	var g errgroup.Group
	for i := 0; i < chunks; i++ {
		i := i
		g.Go(func() error {
			time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
			_, err := agg.Merge(context.Background(), job.ID, deltaFor(i, 25, 24, 1))
			return err
		})
	}
	require.NoError(t, g.Wait())

	got, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	assert.Equal(t, chunks, got.CompletedChunks)
	assert.Equal(t, chunks*25, got.ProcessedRows)
	assert.Equal(t, chunks*24, got.SuccessfulRows)
	assert.Equal(t, chunks, got.FailedRows)
}

func TestQueueRefusesAfterShutdown(t *testing.T) {
	jobs := newMemJobs()
	agg := NewAggregator(jobs, testLogger())
	exec := NewChunkExecutor(testLogger(), testEngine(), newMemCompanies(), newMemPredictions(), agg, 0)
	queue := NewExecutorQueue(exec, testLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	queue.Shutdown(ctx)
	queue.Shutdown(ctx) // second shutdown is a no-op

	job := seedJob(t, jobs, 10, 1)
	task := chunkTask(t, &entity.UploadJob{ID: job.ID, JobType: constants.JobTypeAnnual, TotalChunks: 1}, 0, makeAnnualRows(10))
	require.Error(t, queue.Enqueue(context.Background(), task))
}

func TestQueueDrainsPendingTasksOnShutdown(t *testing.T) {
	jobs := newMemJobs()
	predictions := newMemPredictions()
	agg := NewAggregator(jobs, testLogger())
	exec := NewChunkExecutor(testLogger(), testEngine(), newMemCompanies(), predictions, agg, 0)
	queue := NewExecutorQueue(exec, testLogger(), WithWorkers(2), WithQueueSize(16))

	job := seedJob(t, jobs, 40, 4)
	for i := 0; i < 4; i++ {
		rows := makeAnnualRows(40)[i*10 : (i+1)*10]
		require.NoError(t, queue.Enqueue(context.Background(), chunkTask(t, job, i, rows)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	queue.Shutdown(ctx)

	got, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	assert.Equal(t, 40, got.ProcessedRows)
}
