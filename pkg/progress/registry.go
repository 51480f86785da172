package progress

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultTTL is how long an idle tracker survives before the sweeper
	// removes it.
	DefaultTTL = 10 * time.Minute

	sweepInterval = time.Minute
)

// Registry owns the live trackers and sweeps idle ones on a fixed interval.
type Registry struct {
	ttl    time.Duration
	mirror *Mirror

	mu       sync.Mutex
	trackers map[string]*Tracker

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRegistry creates the registry. rdb may be nil; mirroring is then off.
func NewRegistry(rdb *redis.Client, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		ttl:      ttl,
		mirror:   NewMirror(rdb),
		trackers: make(map[string]*Tracker),
	}
}

// Start launches the background sweep loop.
func (r *Registry) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	r.ctx = ctx
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.sweep()
			}
		}
	}()
	slog.Info("Progress registry started", "ttl", r.ttl, "sweep_interval", sweepInterval)
}

// Stop terminates the sweep loop and waits for it to exit.
func (r *Registry) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	slog.Info("Progress registry stopped")
}

// Create registers a new tracker for a search.
func (r *Registry) Create(searchID string, ufCount int) *Tracker {
	t := newTracker(searchID, ufCount, r.mirror)
	r.mu.Lock()
	r.trackers[searchID] = t
	r.mu.Unlock()
	return t
}

// Get returns the in-process tracker for a search.
func (r *Registry) Get(searchID string) (*Tracker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trackers[searchID]
	return t, ok
}

// Remove drops a tracker.
func (r *Registry) Remove(searchID string) {
	r.mu.Lock()
	delete(r.trackers, searchID)
	r.mu.Unlock()
}

// Len returns the live tracker count.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.trackers)
}

// Reconstruct builds a degraded tracker from the pub/sub mirror metadata for
// a search this process never saw. Returns nil when no metadata exists (the
// SSE handler then answers null).
func (r *Registry) Reconstruct(ctx context.Context, searchID string) *Tracker {
	if r.mirror == nil {
		return nil
	}
	meta, ok := r.mirror.Meta(ctx, searchID)
	if !ok {
		return nil
	}

	t := newTracker(searchID, meta.UFCount, nil)
	t.Degraded = true
	t.Emit(meta.LastStage, meta.LastProgress, "Reconectado (progresso reconstruído)", "")
	if meta.Complete {
		if meta.LastProgress == -1 {
			t.EmitError("Busca finalizada")
		} else {
			t.EmitComplete()
		}
	} else {
		// The listen loop serves every subscriber of this tracker, not just
		// the request that triggered the reconstruction; bind it to the
		// registry lifecycle so a disconnecting first client does not stall
		// the rest.
		r.mirror.Listen(r.lifecycleCtx(ctx), t)
	}

	r.mu.Lock()
	r.trackers[searchID] = t
	r.mu.Unlock()

	slog.Info("Progress tracker reconstructed from mirror",
		"search_id", searchID, "stage", meta.LastStage, "complete", meta.Complete)
	return t
}

// lifecycleCtx returns the registry's own context once Start has run.
func (r *Registry) lifecycleCtx(fallback context.Context) context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return fallback
}

func (r *Registry) sweep() {
	cutoff := time.Now().Add(-r.ttl)

	r.mu.Lock()
	var removed int
	for id, t := range r.trackers {
		if t.CreatedAt.Before(cutoff) {
			delete(r.trackers, id)
			removed++
		}
	}
	remaining := len(r.trackers)
	r.mu.Unlock()

	if removed > 0 {
		slog.Info("Swept idle progress trackers", "removed", removed, "remaining", remaining)
	}
}
