package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/laitim2001/ai-document-extraction/internal/entity"
	"github.com/laitim2001/ai-document-extraction/internal/pipeline"
)

// Processor is the slice of the pipeline the queue drives.
type Processor interface {
	Process(ctx context.Context, raw *entity.RawExtraction) (*pipeline.Result, error)
}

var (
	ErrQueueFull   = errors.New("queue full")
	ErrQueueClosed = errors.New("queue closed")
)

// ProcessorQueue fans documents out to a fixed worker pool. The caller
// owns retry policy; a failed job is logged and dropped.
type ProcessorQueue struct {
	processor Processor
	logger    *slog.Logger

	jobs    chan Job
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
	timeout time.Duration
}

type Option func(*options)

type options struct {
	workers   int
	queueSize int
	timeout   time.Duration
}

func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func NewProcessorQueue(processor Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	o := options{workers: 4, queueSize: 256, timeout: 3 * time.Minute}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.Default()
	}

	q := &ProcessorQueue{
		processor: processor,
		logger:    logger,
		jobs:      make(chan Job, o.queueSize),
		timeout:   o.timeout,
	}
	for i := 0; i < o.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	logger.Info("queue.started", "workers", o.workers, "size", o.queueSize)
	return q
}

func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}

	// the mutex is held across the send so Shutdown cannot close the
	// channel between the closed check and the send; the send never
	// blocks because the full-buffer case falls through to ErrQueueFull
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

func (q *ProcessorQueue) worker(id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		q.run(id, job)
	}
}

func (q *ProcessorQueue) run(worker int, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	start := time.Now()
	result, err := q.processor.Process(ctx, job.Extraction)
	if err != nil {
		q.logger.Error("queue.job.failed",
			"worker", worker, "document_id", job.Extraction.DocumentID,
			"trace_id", job.TraceID, "error", err)
		return
	}
	q.logger.Info("queue.job.done",
		"worker", worker, "document_id", job.Extraction.DocumentID,
		"trace_id", job.TraceID, "status", result.Record.Status,
		"queued_ms", start.Sub(job.SubmittedAt).Milliseconds(),
		"elapsed_ms", time.Since(start).Milliseconds())
}

// Shutdown stops accepting work and waits for in-flight jobs, bounded
// by ctx.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		q.logger.Info("queue.stopped")
	case <-ctx.Done():
		q.logger.Warn("queue.stop.timeout", "error", ctx.Err())
	}
}
