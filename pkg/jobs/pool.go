// Package jobs runs artifact work (Excel export, LLM summary) on a bounded
// in-process worker pool so heavy generation never blocks a request path.
package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bidiq/bidiq/pkg/logging"
)

// ErrQueueFull is returned by Submit when the bounded queue is at capacity.
var ErrQueueFull = errors.New("job queue full")

// ErrStopped is returned by Submit after the pool has been stopped.
var ErrStopped = errors.New("worker pool stopped")

// Job is one unit of background work. TraceID and SearchID re-establish the
// correlation scope inside the job; background work does not inherit the
// request context.
type Job struct {
	Name     string
	TraceID  string
	SearchID string
	Timeout  time.Duration
	Run      func(ctx context.Context) error
}

// Pool is a bounded worker pool.
type Pool struct {
	workers int
	queue   chan Job

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	active  atomic.Int32
	started bool
}

// Health is the pool snapshot surfaced by the health endpoint.
type Health struct {
	Workers    int  `json:"workers"`
	Active     int  `json:"active"`
	QueueDepth int  `json:"queue_depth"`
	Stopped    bool `json:"stopped"`
}

// NewPool creates a pool with the given worker count and queue capacity.
func NewPool(workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 2
	}
	if queueSize <= 0 {
		queueSize = 16
	}
	return &Pool{
		workers: workers,
		queue:   make(chan Job, queueSize),
		stopCh:  make(chan struct{}),
	}
}

// Start spawns the worker goroutines. It is safe to call multiple times;
// subsequent calls are no-ops.
func (p *Pool) Start() {
	if p.started {
		slog.Warn("Job pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true

	slog.Info("Starting job pool", "worker_count", p.workers, "queue_size", cap(p.queue))
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// Stop signals the workers and waits for in-flight jobs to finish. Queued
// jobs that never started are dropped with a warning.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	dropped := len(p.queue)
	if dropped > 0 {
		slog.Warn("Job pool stopped with queued jobs dropped", "dropped", dropped)
	}
	slog.Info("Job pool stopped")
}

// Submit enqueues a job without blocking.
func (p *Pool) Submit(job Job) error {
	select {
	case <-p.stopCh:
		return ErrStopped
	default:
	}

	select {
	case p.queue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Health reports the current pool state.
func (p *Pool) Health() Health {
	stopped := false
	select {
	case <-p.stopCh:
		stopped = true
	default:
	}
	return Health{
		Workers:    p.workers,
		Active:     int(p.active.Load()),
		QueueDepth: len(p.queue),
		Stopped:    stopped,
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopCh:
			return
		case job := <-p.queue:
			p.run(job)
		}
	}
}

func (p *Pool) run(job Job) {
	p.active.Add(1)
	defer p.active.Add(-1)

	ctx := logging.Rescope(context.Background(), job.TraceID, job.SearchID)
	if job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "Job panicked", "job", job.Name, "panic", r)
		}
	}()

	start := time.Now()
	slog.InfoContext(ctx, "Job started", "job", job.Name)
	if err := job.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "Job failed", "job", job.Name,
			"duration_ms", time.Since(start).Milliseconds(), "error", err)
		return
	}
	slog.InfoContext(ctx, "Job finished", "job", job.Name,
		"duration_ms", time.Since(start).Milliseconds())
}
