package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChunkTask is the smallest schedulable unit: one chunk of one upload
// job. Payload is the serialized row slice; delivery is at-least-once, so
// consumers must tolerate redelivery.
type ChunkTask struct {
	JobID       uuid.UUID
	ChunkIndex  int
	TotalChunks int
	Payload     []byte
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, task ChunkTask) error
	Shutdown(ctx context.Context)
}
