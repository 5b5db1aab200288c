// Package queue removes orphaned club images from object storage in the background.
package queue

import (
	"context"
	"sync"
)

// CleanupJob is an object storage key waiting to be deleted.
type CleanupJob struct {
	Key        string
	RetryCount int
}

// MemoryQueue is an in-memory queue of cleanup jobs.
type MemoryQueue struct {
	jobs     chan CleanupJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan CleanupJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job to the queue. Returns error if queue is full or closed.
// The read lock is held for the whole send so Close cannot race it.
func (q *MemoryQueue) Enqueue(job CleanupJob) error {
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

// ScheduleDelete queues key for deletion.
func (q *MemoryQueue) ScheduleDelete(key string) error {
	return q.Enqueue(CleanupJob{Key: key})
}

// Dequeue returns the next job from the queue, blocking until one is available.
// Returns error if context is cancelled or queue is closed.
func (q *MemoryQueue) Dequeue(ctx context.Context) (CleanupJob, error) {
	select {
	case <-ctx.Done():
		return CleanupJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return CleanupJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. Jobs already queued can still be dequeued.
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
