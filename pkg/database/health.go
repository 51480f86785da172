package database

import (
	"context"
	"fmt"
	"time"
)

// PoolStats is the pool snapshot behind the health endpoint. A saturated
// pool is the early warning that concurrent search fan-outs have outgrown
// DB_MAX_OPEN_CONNS.
type PoolStats struct {
	PingMS  int64 `json:"ping_ms"`
	InUse   int   `json:"in_use"`
	Idle    int   `json:"idle"`
	Waiting int64 `json:"waiting"`
	MaxOpen int   `json:"max_open"`
}

// Saturated reports whether every connection is busy and callers have had to
// queue for one.
func (p PoolStats) Saturated() bool {
	return p.MaxOpen > 0 && p.InUse >= p.MaxOpen && p.Waiting > 0
}

// Health pings the pool under the caller's deadline and snapshots its
// counters.
func (c *Client) Health(ctx context.Context) (PoolStats, error) {
	start := time.Now()
	if err := c.db.PingContext(ctx); err != nil {
		return PoolStats{PingMS: time.Since(start).Milliseconds()},
			fmt.Errorf("database ping failed: %w", err)
	}

	s := c.db.Stats()
	return PoolStats{
		PingMS:  time.Since(start).Milliseconds(),
		InUse:   s.InUse,
		Idle:    s.Idle,
		Waiting: s.WaitCount,
		MaxOpen: s.MaxOpenConnections,
	}, nil
}
