package ratelimit

import "sync"

// DefaultSSECap is the per-user ceiling of concurrently open SSE streams.
const DefaultSSECap = 3

// SSEGuard counts open SSE connections per user.
type SSEGuard struct {
	cap int

	mu   sync.Mutex
	open map[string]int
}

// NewSSEGuard creates the guard; cap ≤ 0 selects the default.
func NewSSEGuard(cap int) *SSEGuard {
	if cap <= 0 {
		cap = DefaultSSECap
	}
	return &SSEGuard{cap: cap, open: make(map[string]int)}
}

// Acquire reserves a connection slot; false means the user is at the cap.
func (g *SSEGuard) Acquire(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.open[userID] >= g.cap {
		return false
	}
	g.open[userID]++
	return true
}

// Release frees a slot. Always called on stream close, so it tolerates an
// unmatched call.
func (g *SSEGuard) Release(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.open[userID] > 0 {
		g.open[userID]--
	}
	if g.open[userID] == 0 {
		delete(g.open, userID)
	}
}

// Open returns the current connection count for a user.
func (g *SSEGuard) Open(userID string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.open[userID]
}
