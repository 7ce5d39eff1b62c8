// Package queue runs background removal of stored files after their
// document or media record is deleted.
package queue

import (
	"context"
	"sync"
)

// FileDeletionJob asks a worker to remove one object from storage.
type FileDeletionJob struct {
	// Key is the object key in the bucket.
	Key string
	// Source names the record type that owned the file, for logging.
	Source     string
	RetryCount int
}

// MemoryQueue is a bounded in-process queue.
type MemoryQueue struct {
	jobs     chan FileDeletionJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a queue holding at most capacity jobs.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan FileDeletionJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job. Returns ErrQueueFull or ErrQueueClosed instead of
// blocking. The read lock is held across the send so Close cannot race it.
func (q *MemoryQueue) Enqueue(job FileDeletionJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next job, blocking until one is available.
func (q *MemoryQueue) Dequeue(ctx context.Context) (FileDeletionJob, error) {
	select {
	case <-ctx.Done():
		return FileDeletionJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return FileDeletionJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. It is safe to call more than once.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
