package quota

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/bidiq/bidiq/test/database"
)

// The test schema has no increment_monthly_quota procedure, so these tests
// exercise the upsert fallback end to end.

func TestEntStore_IncrementCountsPerMonth(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewEntStore(client)
	ctx := context.Background()

	allowed, count, err := store.Increment(ctx, "user-1", "2026-08", 3)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, count)

	allowed, count, err = store.Increment(ctx, "user-1", "2026-08", 3)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 2, count)

	// A new month starts from zero.
	allowed, count, err = store.Increment(ctx, "user-1", "2026-09", 3)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, count)

	got, err := store.CurrentCount(ctx, "user-1", "2026-08")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestEntStore_IncrementStopsAtLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewEntStore(client)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, _, err := store.Increment(ctx, "user-1", "2026-08", 2)
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, count, err := store.Increment(ctx, "user-1", "2026-08", 2)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 2, count, "denied calls must not advance the counter")
}

func TestEntStore_IncrementUnlimited(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewEntStore(client)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		allowed, count, err := store.Increment(ctx, "user-1", "2026-08", Unlimited)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, i, count)
	}
}

func TestEntStore_ConcurrentBurstHonorsLimit(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewEntStore(client)
	ctx := context.Background()

	const burst = 20
	const limit = 10

	var wg sync.WaitGroup
	var granted atomic.Int32
	errs := make(chan error, burst)
	for i := 0; i < burst; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _, err := store.Increment(ctx, "user-burst", "2026-08", limit)
			if err != nil {
				errs <- err
				return
			}
			if allowed {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent increment failed: %v", err)
	}

	assert.EqualValues(t, limit, granted.Load())
	count, err := store.CurrentCount(ctx, "user-burst", "2026-08")
	require.NoError(t, err)
	assert.Equal(t, limit, count, "counter must never pass the plan limit")
}
