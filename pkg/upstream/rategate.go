package upstream

import (
	"context"
	"sync"
	"time"
)

// RateGate enforces a cooperative minimum inter-request delay per upstream,
// derived from the adapter's declared requests-per-second budget. The gate
// records the last send time and sleeps callers as needed before each
// attempt.
type RateGate struct {
	mu        sync.Mutex
	intervals map[string]time.Duration
	lastSend  map[string]time.Time
}

// NewRateGate creates an empty gate. Upstreams without a configured rate are
// not delayed.
func NewRateGate() *RateGate {
	return &RateGate{
		intervals: make(map[string]time.Duration),
		lastSend:  make(map[string]time.Time),
	}
}

// SetRate configures the budget for an upstream. rps <= 0 removes the limit.
func (g *RateGate) SetRate(upstream string, rps float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if rps <= 0 {
		delete(g.intervals, upstream)
		return
	}
	g.intervals[upstream] = time.Duration(float64(time.Second) / rps)
}

// Wait blocks until the upstream's inter-request interval has elapsed since
// the previous send, or the context is done. It reserves the send slot
// before sleeping so concurrent callers queue rather than stampede.
func (g *RateGate) Wait(ctx context.Context, upstream string) error {
	g.mu.Lock()
	interval, ok := g.intervals[upstream]
	if !ok {
		g.mu.Unlock()
		return nil
	}

	now := time.Now()
	next := g.lastSend[upstream].Add(interval)
	if next.Before(now) {
		next = now
	}
	g.lastSend[upstream] = next
	g.mu.Unlock()

	wait := time.Until(next)
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
