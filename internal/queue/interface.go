package queue

import "context"

//go:generate mockgen -destination=mocks/mock_queue.go -package=mocks lda-portal/internal/queue Queue

// Queue holds file deletion jobs waiting for a worker.
type Queue interface {
	// Enqueue adds a job without blocking.
	Enqueue(job FileDeletionJob) error
	// Dequeue blocks until a job is available, ctx is done or the queue closes.
	Dequeue(ctx context.Context) (FileDeletionJob, error)
	// Close stops accepting jobs. Queued jobs can still be dequeued.
	Close()
	// Len returns the current number of jobs in the queue.
	Len() int
	// Capacity returns the queue capacity.
	Capacity() int
}

var _ Queue = (*MemoryQueue)(nil)
