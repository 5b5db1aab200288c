package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// MaxRetries is the maximum number of attempts for one key.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
	// DeleteTimeout bounds a single delete call.
	DeleteTimeout = 30 * time.Second
)

// ObjectDeleter removes an object from storage.
type ObjectDeleter interface {
	DeleteObject(ctx context.Context, key string) error
}

// Processor deletes queued storage keys with a fixed pool of workers.
type Processor struct {
	queue        *MemoryQueue
	deleter      ObjectDeleter
	log          *zap.Logger
	workerCount  int
	retryDelay   time.Duration
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new cleanup job processor.
func NewProcessor(queue *MemoryQueue, deleter ObjectDeleter, log *zap.Logger, workerCount int) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{
		queue:       queue,
		deleter:     deleter,
		log:         log.Named("cleanup"),
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.log.Info("cleanup processor started", zap.Int("workers", p.workerCount))
}

// Stop closes the queue and waits for workers to drain it.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	p.log.Info("cleanup processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || errors.Is(err, context.Canceled) {
				p.log.Debug("worker shutting down", zap.Int("worker", id))
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job CleanupJob) {
	deleteCtx, cancel := context.WithTimeout(ctx, DeleteTimeout)
	defer cancel()

	if err := p.deleter.DeleteObject(deleteCtx, job.Key); err != nil {
		p.log.Warn("failed to delete object",
			zap.String("key", job.Key),
			zap.Int("attempt", job.RetryCount+1),
			zap.Error(err),
		)
		p.handleFailure(job)
		return
	}

	p.log.Debug("deleted object", zap.String("key", job.Key))
}

func (p *Processor) handleFailure(job CleanupJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		p.log.Error("giving up on object", zap.String("key", job.Key), zap.Int("attempts", job.RetryCount))
		return
	}

	delay := p.retryDelay * time.Duration(1<<uint(job.RetryCount-1))

	// Waits on shutdownCh rather than ctx so shutdown abandons pending retries.
	go func() {
		select {
		case <-p.shutdownCh:
			p.log.Warn("shutdown before retry, object left behind", zap.String("key", job.Key))
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				p.log.Error("failed to re-enqueue cleanup job", zap.String("key", job.Key), zap.Error(err))
			}
		}
	}()
}
