package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/logging"
)

func TestPool_RunsJobs(t *testing.T) {
	pool := NewPool(2, 8)
	pool.Start()
	defer pool.Stop()

	var ran atomic.Int32
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		err := pool.Submit(Job{
			Name: "count",
			Run: func(ctx context.Context) error {
				if ran.Add(1) == 5 {
					close(done)
				}
				return nil
			},
		})
		require.NoError(t, err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("jobs did not run")
	}
	assert.Equal(t, int32(5), ran.Load())
}

func TestPool_QueueFull(t *testing.T) {
	// No workers started: the queue fills up.
	pool := NewPool(1, 2)

	require.NoError(t, pool.Submit(Job{Name: "a", Run: func(context.Context) error { return nil }}))
	require.NoError(t, pool.Submit(Job{Name: "b", Run: func(context.Context) error { return nil }}))
	err := pool.Submit(Job{Name: "c", Run: func(context.Context) error { return nil }})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestPool_SubmitAfterStop(t *testing.T) {
	pool := NewPool(1, 2)
	pool.Start()
	pool.Stop()

	err := pool.Submit(Job{Name: "late", Run: func(context.Context) error { return nil }})
	assert.ErrorIs(t, err, ErrStopped)
	assert.True(t, pool.Health().Stopped)
}

func TestPool_RescopesTrace(t *testing.T) {
	pool := NewPool(1, 2)
	pool.Start()
	defer pool.Stop()

	got := make(chan [2]string, 1)
	err := pool.Submit(Job{
		Name:     "trace",
		TraceID:  "trace-1",
		SearchID: "search-1",
		Run: func(ctx context.Context) error {
			got <- [2]string{logging.CorrelationID(ctx), logging.SearchID(ctx)}
			return nil
		},
	})
	require.NoError(t, err)

	select {
	case ids := <-got:
		assert.Equal(t, "trace-1", ids[0])
		assert.Equal(t, "search-1", ids[1])
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestPool_PanicDoesNotKillWorker(t *testing.T) {
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	require.NoError(t, pool.Submit(Job{Name: "boom", Run: func(context.Context) error { panic("boom") }}))

	done := make(chan struct{})
	require.NoError(t, pool.Submit(Job{Name: "after", Run: func(context.Context) error {
		close(done)
		return nil
	}}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker died after panic")
	}
}
