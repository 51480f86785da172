package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestAllowLocal_LimitAndRetryAfter(t *testing.T) {
	l := NewLimiter(nil, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(context.Background(), "u1").Allowed)
	}
	d := l.Allow(context.Background(), "u1")
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, d.RetryAfter, time.Minute)

	// Another key is untouched.
	assert.True(t, l.Allow(context.Background(), "u2").Allowed)
}

func TestAllowLocal_WindowRollover(t *testing.T) {
	l := NewLimiter(nil, 1, 50*time.Millisecond)

	assert.True(t, l.Allow(context.Background(), "u1").Allowed)
	assert.False(t, l.Allow(context.Background(), "u1").Allowed)

	time.Sleep(60 * time.Millisecond)
	assert.True(t, l.Allow(context.Background(), "u1").Allowed)
}

func TestAllowRedis_SharedCounter(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	// Two limiter instances (two replicas) share the Redis counter.
	a := NewLimiter(rdb, 2, time.Minute)
	b := NewLimiter(rdb, 2, time.Minute)

	assert.True(t, a.Allow(context.Background(), "u1").Allowed)
	assert.True(t, b.Allow(context.Background(), "u1").Allowed)

	d := a.Allow(context.Background(), "u1")
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
}

func TestAllow_RedisDownFallsBackLocally(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	l := NewLimiter(rdb, 1, time.Minute)
	assert.True(t, l.Allow(context.Background(), "u1").Allowed)
	assert.False(t, l.Allow(context.Background(), "u1").Allowed, "fallback still enforces the limit")
}

func TestAllow_ZeroLimitDisables(t *testing.T) {
	l := NewLimiter(nil, 0, time.Minute)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow(context.Background(), "u1").Allowed)
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, RetryAfterSeconds(0))
	assert.Equal(t, 1, RetryAfterSeconds(200*time.Millisecond))
	assert.Equal(t, 2, RetryAfterSeconds(1100*time.Millisecond))
	assert.Equal(t, 60, RetryAfterSeconds(time.Minute))
}

func TestSSEGuard_Cap(t *testing.T) {
	g := NewSSEGuard(2)

	assert.True(t, g.Acquire("u1"))
	assert.True(t, g.Acquire("u1"))
	assert.False(t, g.Acquire("u1"))

	g.Release("u1")
	assert.True(t, g.Acquire("u1"))
	assert.Equal(t, 2, g.Open("u1"))

	// Unmatched release is harmless.
	g.Release("u2")
	assert.True(t, g.Acquire("u2"))
}
