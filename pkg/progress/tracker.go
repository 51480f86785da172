// Package progress implements the per-search progress tracker behind the SSE
// endpoint: a bounded in-process event queue per search, a TTL-swept
// registry, and an optional Redis pub/sub mirror so a different replica can
// serve a reconnecting client.
package progress

import (
	"math"
	"strconv"
	"sync"
	"time"
)

const (
	// maxQueuedEvents bounds each tracker's replay buffer; the oldest events
	// are dropped first.
	maxQueuedEvents = 256

	// fetchBandLow/High delimit the progress band the per-UF fetch loop
	// advances through.
	fetchBandLow  = 10
	fetchBandHigh = 55
)

// Event is one progress update. Progress -1 signals an error.
type Event struct {
	Stage     string    `json:"stage"`
	Progress  int       `json:"progress"`
	Message   string    `json:"message"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Tracker is one search's event queue. Subscribers get the buffered history
// replayed, then live events until the completion or error event.
type Tracker struct {
	SearchID  string
	CreatedAt time.Time

	// Degraded marks a tracker reconstructed from pub/sub metadata after the
	// in-process one was lost (replica change or sweep).
	Degraded bool

	mirror *Mirror

	mu       sync.Mutex
	ufCount  int
	ufsDone  int
	events   []Event
	complete bool
	subs     map[chan Event]struct{}
}

func newTracker(searchID string, ufCount int, mirror *Mirror) *Tracker {
	return &Tracker{
		SearchID:  searchID,
		CreatedAt: time.Now(),
		mirror:    mirror,
		ufCount:   ufCount,
		subs:      make(map[chan Event]struct{}),
	}
}

// Emit records an event. Progress is clamped to [0, 100]; -1 is passed
// through as the error marker.
func (t *Tracker) Emit(stage string, progress int, message, detail string) {
	if progress != -1 {
		progress = int(math.Min(100, math.Max(0, float64(progress))))
	}
	t.publish(Event{
		Stage:     stage,
		Progress:  progress,
		Message:   message,
		Detail:    detail,
		Timestamp: time.Now(),
	}, false)
}

// EmitUFComplete advances the fetch band linearly with completed UFs.
func (t *Tracker) EmitUFComplete(uf string, itemsCount int) {
	t.mu.Lock()
	t.ufsDone++
	done, total := t.ufsDone, t.ufCount
	t.mu.Unlock()

	progress := fetchBandLow
	if total > 0 {
		progress = fetchBandLow + int(math.Floor(float64(done)/float64(total)*float64(fetchBandHigh-fetchBandLow)))
	}
	t.Emit("fetching", progress, uf+" concluído", itemsDetail(itemsCount))
}

// EmitComplete publishes the terminal success event and closes the queue.
func (t *Tracker) EmitComplete() {
	t.publish(Event{
		Stage:     "completed",
		Progress:  100,
		Message:   "Busca concluída",
		Timestamp: time.Now(),
	}, true)
}

// EmitError publishes the terminal error event and closes the queue.
func (t *Tracker) EmitError(message string) {
	t.publish(Event{
		Stage:     "error",
		Progress:  -1,
		Message:   message,
		Timestamp: time.Now(),
	}, true)
}

// IsComplete reports whether a terminal event has been published.
func (t *Tracker) IsComplete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.complete
}

// Snapshot returns a copy of the buffered events.
func (t *Tracker) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Subscribe returns a channel that replays the buffer and then delivers live
// events in emit order. The channel is closed after the terminal event. The
// returned cancel func must be called when the consumer goes away.
func (t *Tracker) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, maxQueuedEvents)

	t.mu.Lock()
	for _, ev := range t.events {
		ch <- ev
	}
	if t.complete {
		close(ch)
		t.mu.Unlock()
		return ch, func() {}
	}
	t.subs[ch] = struct{}{}
	t.mu.Unlock()

	cancel := func() {
		t.mu.Lock()
		if _, ok := t.subs[ch]; ok {
			delete(t.subs, ch)
			close(ch)
		}
		t.mu.Unlock()
	}
	return ch, cancel
}

func (t *Tracker) publish(ev Event, terminal bool) {
	t.mu.Lock()
	if t.complete {
		t.mu.Unlock()
		return
	}
	t.events = append(t.events, ev)
	if len(t.events) > maxQueuedEvents {
		t.events = t.events[len(t.events)-maxQueuedEvents:]
	}
	for ch := range t.subs {
		select {
		case ch <- ev:
		default: // slow consumer; it still has the snapshot path
		}
	}
	if terminal {
		t.complete = true
		for ch := range t.subs {
			close(ch)
		}
		t.subs = make(map[chan Event]struct{})
	}
	t.mu.Unlock()

	if t.mirror != nil {
		t.mirror.Publish(t.SearchID, t.ufCount, ev, terminal)
	}
}

func itemsDetail(n int) string {
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " itens"
}
