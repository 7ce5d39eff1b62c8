package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"lda-portal/internal/metrics"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// MaxRetries is the number of attempts made for one object.
	MaxRetries = 3
	// RetryDelay is the base delay between attempts; it doubles each time.
	RetryDelay = 2 * time.Second
	// DeleteTimeout bounds a single storage call.
	DeleteTimeout = 30 * time.Second
)

// ObjectDeleter removes objects from storage.
type ObjectDeleter interface {
	DeleteObject(ctx context.Context, key string) error
}

// Processor drains the deletion queue with a fixed pool of workers.
type Processor struct {
	queue        Queue
	deleter      ObjectDeleter
	workerCount  int
	retryDelay   time.Duration
	logger       zerolog.Logger
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a processor with workerCount workers.
func NewProcessor(queue Queue, deleter ObjectDeleter, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		deleter:     deleter,
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		logger:      log.With().Str("component", "file-deletion").Logger(),
		shutdownCh:  make(chan struct{}),
	}
}

// Start launches the workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	p.logger.Info().Int("workers", p.workerCount).Msg("file deletion processor started")
}

// Stop closes the queue and waits for queued jobs to drain. Jobs waiting on
// a retry delay are abandoned and logged.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	p.logger.Info().Msg("file deletion processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || errors.Is(err, context.Canceled) {
				p.logger.Debug().Int("worker", id).Msg("worker shutting down")
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job FileDeletionJob) {
	deleteCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DeleteTimeout)
	defer cancel()

	if err := p.deleter.DeleteObject(deleteCtx, job.Key); err != nil {
		p.logger.Warn().Err(err).
			Str("key", job.Key).
			Str("source", job.Source).
			Int("attempt", job.RetryCount+1).
			Msg("file deletion failed")
		p.handleFailure(job)
		return
	}

	metrics.ObserveFileDeletion(true)
	p.logger.Debug().Str("key", job.Key).Str("source", job.Source).Msg("file deleted")
}

func (p *Processor) handleFailure(job FileDeletionJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		metrics.ObserveFileDeletion(false)
		p.logger.Error().Str("key", job.Key).Str("source", job.Source).Msg("giving up on file deletion")
		return
	}

	delay := p.retryDelay * time.Duration(1<<uint(job.RetryCount-1))

	go func() {
		select {
		case <-p.shutdownCh:
			metrics.ObserveFileDeletion(false)
			p.logger.Error().Str("key", job.Key).Msg("shutdown during retry delay, file left in storage")
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				metrics.ObserveFileDeletion(false)
				p.logger.Error().Err(err).Str("key", job.Key).Msg("failed to re-enqueue file deletion")
			}
		}
	}()
}
