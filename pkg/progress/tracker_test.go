package progress

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_ClampsProgress(t *testing.T) {
	tr := newTracker("s1", 0, nil)
	tr.Emit("fetching", 150, "", "")
	tr.Emit("fetching", -50, "", "")
	tr.Emit("error", -1, "boom", "")

	events := tr.Snapshot()
	require.Len(t, events, 3)
	assert.Equal(t, 100, events[0].Progress)
	assert.Equal(t, 0, events[1].Progress)
	assert.Equal(t, -1, events[2].Progress, "-1 is the error marker, not clamped")
}

func TestEmitUFComplete_FetchBand(t *testing.T) {
	tr := newTracker("s1", 4, nil)
	tr.EmitUFComplete("SP", 10)
	tr.EmitUFComplete("RJ", 5)
	tr.EmitUFComplete("MG", 0)
	tr.EmitUFComplete("RS", 2)

	events := tr.Snapshot()
	require.Len(t, events, 4)
	assert.Equal(t, 21, events[0].Progress) // 10 + floor(1/4×45)
	assert.Equal(t, 32, events[1].Progress)
	assert.Equal(t, 43, events[2].Progress)
	assert.Equal(t, 55, events[3].Progress)
}

func TestEmitUFComplete_ZeroUFCount(t *testing.T) {
	tr := newTracker("s1", 0, nil)
	tr.EmitUFComplete("SP", 1)

	events := tr.Snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, fetchBandLow, events[0].Progress)
}

func TestTracker_BoundedQueue(t *testing.T) {
	tr := newTracker("s1", 0, nil)
	for i := 0; i < maxQueuedEvents+50; i++ {
		tr.Emit("fetching", i%100, "", "")
	}
	assert.Len(t, tr.Snapshot(), maxQueuedEvents)
}

func TestTracker_NoEventsAfterTerminal(t *testing.T) {
	tr := newTracker("s1", 0, nil)
	tr.EmitComplete()
	tr.Emit("fetching", 50, "late", "")

	events := tr.Snapshot()
	require.Len(t, events, 1)
	assert.True(t, tr.IsComplete())
}

func TestSubscribe_ReplaysThenLive(t *testing.T) {
	tr := newTracker("s1", 0, nil)
	tr.Emit("validating", 5, "", "")

	ch, cancel := tr.Subscribe()
	defer cancel()

	first := <-ch
	assert.Equal(t, "validating", first.Stage)

	tr.Emit("fetching", 30, "", "")
	second := <-ch
	assert.Equal(t, "fetching", second.Stage)

	tr.EmitComplete()
	third := <-ch
	assert.Equal(t, 100, third.Progress)

	_, open := <-ch
	assert.False(t, open, "channel closes after the terminal event")
}

func TestRegistry_CreateGetRemove(t *testing.T) {
	r := NewRegistry(nil, DefaultTTL)
	r.Create("s1", 2)

	_, ok := r.Get("s1")
	assert.True(t, ok)

	r.Remove("s1")
	_, ok = r.Get("s1")
	assert.False(t, ok)
}

func TestRegistry_SweepRemovesIdleTrackers(t *testing.T) {
	r := NewRegistry(nil, time.Minute)
	old := r.Create("old", 1)
	old.CreatedAt = time.Now().Add(-2 * time.Minute)
	r.Create("fresh", 1)

	r.sweep()

	_, ok := r.Get("old")
	assert.False(t, ok)
	_, ok = r.Get("fresh")
	assert.True(t, ok)
}

func newMiniredis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestMirror_PublishWritesMeta(t *testing.T) {
	rdb := newMiniredis(t)
	r := NewRegistry(rdb, DefaultTTL)
	tr := r.Create("s1", 3)

	tr.Emit("fetching", 30, "buscando", "")

	meta, ok := r.mirror.Meta(context.Background(), "s1")
	require.True(t, ok)
	assert.Equal(t, "fetching", meta.LastStage)
	assert.Equal(t, 30, meta.LastProgress)
	assert.Equal(t, 3, meta.UFCount)
	assert.False(t, meta.Complete)
}

func TestRegistry_ReconstructFromMirror(t *testing.T) {
	rdb := newMiniredis(t)

	// One registry publishes; a second (fresh process) reconstructs.
	origin := NewRegistry(rdb, DefaultTTL)
	origin.Create("s1", 2).Emit("filtering", 60, "", "")

	replica := NewRegistry(rdb, DefaultTTL)
	tr := replica.Reconstruct(context.Background(), "s1")
	require.NotNil(t, tr)

	assert.True(t, tr.Degraded)
	events := tr.Snapshot()
	require.NotEmpty(t, events)
	assert.Equal(t, "filtering", events[0].Stage)
	assert.Equal(t, 60, events[0].Progress)
}

func TestRegistry_ReconstructUnknownSearchIsNil(t *testing.T) {
	replica := NewRegistry(newMiniredis(t), DefaultTTL)
	assert.Nil(t, replica.Reconstruct(context.Background(), "missing"))

	noRedis := NewRegistry(nil, DefaultTTL)
	assert.Nil(t, noRedis.Reconstruct(context.Background(), "missing"))
}

func TestRegistry_ReconstructCompleteSearch(t *testing.T) {
	rdb := newMiniredis(t)
	origin := NewRegistry(rdb, DefaultTTL)
	origin.Create("s1", 1).EmitComplete()

	replica := NewRegistry(rdb, DefaultTTL)
	tr := replica.Reconstruct(context.Background(), "s1")
	require.NotNil(t, tr)
	assert.True(t, tr.IsComplete())
}

func TestRegistry_ReconstructListenOutlivesRequestContext(t *testing.T) {
	rdb := newMiniredis(t)
	origin := NewRegistry(rdb, DefaultTTL)
	source := origin.Create("s1", 2)
	source.Emit("fetching", 20, "", "")

	replica := NewRegistry(rdb, DefaultTTL)
	replica.Start(context.Background())
	defer replica.Stop()

	reqCtx, cancelReq := context.WithCancel(context.Background())
	tr := replica.Reconstruct(reqCtx, "s1")
	require.NotNil(t, tr)

	// The client that triggered the reconstruction disconnects; the listen
	// loop must keep forwarding for every later subscriber.
	cancelReq()

	require.Eventually(t, func() bool {
		source.Emit("filtering", 60, "", "")
		for _, ev := range tr.Snapshot() {
			if ev.Stage == "filtering" {
				return true
			}
		}
		return false
	}, 2*time.Second, 20*time.Millisecond)
}

func TestRegistry_StartStop(t *testing.T) {
	r := NewRegistry(nil, DefaultTTL)
	r.Start(context.Background())
	r.Stop()
}
