package bulk

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/seyi-adeleke/riskscore/internal/async"
)

// ExecutorQueue fans chunk tasks out to a fixed pool of workers. Each
// task runs under its own timeout so one stuck chunk cannot wedge a
// worker forever; the executor converts a timeout into failed rows and
// still reports, so the job reaches a terminal state either way.
type ExecutorQueue struct {
	exec    *ChunkExecutor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan async.ChunkTask
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ExecutorQueue)

func WithWorkers(n int) Option {
	return func(q *ExecutorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ExecutorQueue) {
		if n > 0 {
			q.ch = make(chan async.ChunkTask, n)
		}
	}
}
func WithChunkTimeout(d time.Duration) Option {
	return func(q *ExecutorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewExecutorQueue(exec *ChunkExecutor, logger *slog.Logger, opts ...Option) *ExecutorQueue {
	q := &ExecutorQueue{
		exec:    exec,
		logger:  logger,
		workers: 4,
		timeout: 2 * time.Minute,
		ch:      make(chan async.ChunkTask, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ExecutorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("chunk worker started", "worker_id", workerID)

				for task := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.exec.Execute(ctx, task)
					cancel()

					if err != nil {
						q.logger.Error("chunk execution failed",
							"worker_id", workerID, "job_id", task.JobID,
							"chunk_index", task.ChunkIndex, "error", err)
					}
				}

				q.logger.Info("chunk worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue hands a task to the pool. When the buffer is full the caller
// blocks rather than dropping the chunk. After Shutdown has begun the
// task is refused; the submitter marks the job failed in that case.
func (q *ExecutorQueue) Enqueue(_ context.Context, task async.ChunkTask) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return fmt.Errorf("queue is shutting down, chunk %d of job %s refused", task.ChunkIndex, task.JobID)
	}
	select {
	case q.ch <- task:
	default:
		q.logger.Warn("queue full, applying backpressure",
			"job_id", task.JobID, "chunk_index", task.ChunkIndex)
		q.ch <- task
	}
	return nil
}

func (q *ExecutorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

var _ async.Queue = (*ExecutorQueue)(nil)
