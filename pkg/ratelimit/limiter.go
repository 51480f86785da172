// Package ratelimit implements the per-key sliding-window request limiter
// with a Redis backend (shared across replicas) and an in-process fallback,
// plus the per-user SSE connection cap.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Decision is the outcome of one limiter check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter counts requests per key inside fixed window buckets.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	count       int
	windowStart time.Time
}

// NewLimiter creates a limiter allowing `limit` requests per window. A nil
// Redis client selects the in-process backend.
func NewLimiter(rdb *redis.Client, limit int, window time.Duration) *Limiter {
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		rdb:     rdb,
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
	}
}

// Allow consumes one slot for the key. When the limit is exceeded the
// decision carries how long the caller should wait.
func (l *Limiter) Allow(ctx context.Context, key string) Decision {
	if l.limit <= 0 {
		return Decision{Allowed: true}
	}
	if l.rdb != nil {
		if d, ok := l.allowRedis(ctx, key); ok {
			return d
		}
		// Redis hiccup: fall through to the local backend rather than
		// blocking or waving everything in.
	}
	return l.allowLocal(key)
}

func (l *Limiter) allowRedis(ctx context.Context, key string) (Decision, bool) {
	now := time.Now()
	windowID := now.UnixMilli() / l.window.Milliseconds()
	redisKey := fmt.Sprintf("bidiq:ratelimit:%s:%d", key, windowID)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("Rate limiter Redis backend failed, using in-process fallback", "error", err)
		return Decision{}, false
	}

	if int(incr.Val()) > l.limit {
		return Decision{Allowed: false, RetryAfter: l.retryAfter(now)}, true
	}
	return Decision{Allowed: true}, true
}

func (l *Limiter) allowLocal(key string) Decision {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.windowStart) >= l.window {
		l.buckets[key] = &bucket{count: 1, windowStart: now}
		// Opportunistic cleanup of stale buckets.
		if len(l.buckets) > 10_000 {
			for k, old := range l.buckets {
				if now.Sub(old.windowStart) >= l.window {
					delete(l.buckets, k)
				}
			}
		}
		return Decision{Allowed: true}
	}

	b.count++
	if b.count > l.limit {
		return Decision{Allowed: false, RetryAfter: l.window - now.Sub(b.windowStart)}
	}
	return Decision{Allowed: true}
}

// retryAfter is the time left in the current fixed window.
func (l *Limiter) retryAfter(now time.Time) time.Duration {
	elapsed := time.Duration(now.UnixMilli()%l.window.Milliseconds()) * time.Millisecond
	return l.window - elapsed
}

// RetryAfterSeconds rounds a retry hint up to whole seconds, minimum 1.
func RetryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
