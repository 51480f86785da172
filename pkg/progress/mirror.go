package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	mirrorPublishTimeout = 2 * time.Second
	mirrorMetaTTL        = 15 * time.Minute
)

// Mirror replicates tracker events into Redis so another replica can serve a
// reconnecting SSE client. Every operation is best-effort: failures are
// logged and ignored.
type Mirror struct {
	rdb *redis.Client
}

// NewMirror wraps a Redis client; nil disables mirroring.
func NewMirror(rdb *redis.Client) *Mirror {
	if rdb == nil {
		return nil
	}
	return &Mirror{rdb: rdb}
}

func eventsChannel(searchID string) string {
	return fmt.Sprintf("bidiq:progress:%s:events", searchID)
}

func metaKey(searchID string) string {
	return fmt.Sprintf("bidiq:progress:%s:meta", searchID)
}

type mirrorMeta struct {
	SearchID     string    `json:"search_id"`
	UFCount      int       `json:"uf_count"`
	LastStage    string    `json:"last_stage"`
	LastProgress int       `json:"last_progress"`
	Complete     bool      `json:"complete"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Publish mirrors one event: a pub/sub publish for live listeners plus a
// metadata key for degraded reconstruction.
func (m *Mirror) Publish(searchID string, ufCount int, ev Event, terminal bool) {
	ctx, cancel := context.WithTimeout(context.Background(), mirrorPublishTimeout)
	defer cancel()

	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	if err := m.rdb.Publish(ctx, eventsChannel(searchID), payload).Err(); err != nil {
		slog.Warn("Progress mirror publish failed", "search_id", searchID, "error", err)
	}

	meta, err := json.Marshal(mirrorMeta{
		SearchID:     searchID,
		UFCount:      ufCount,
		LastStage:    ev.Stage,
		LastProgress: ev.Progress,
		Complete:     terminal,
		UpdatedAt:    time.Now(),
	})
	if err != nil {
		return
	}
	if err := m.rdb.Set(ctx, metaKey(searchID), meta, mirrorMetaTTL).Err(); err != nil {
		slog.Warn("Progress mirror meta write failed", "search_id", searchID, "error", err)
	}
}

// Meta fetches the mirrored metadata for a search, if any.
func (m *Mirror) Meta(ctx context.Context, searchID string) (*mirrorMeta, bool) {
	data, err := m.rdb.Get(ctx, metaKey(searchID)).Bytes()
	if err != nil {
		return nil, false
	}
	var meta mirrorMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, false
	}
	return &meta, true
}

// Listen subscribes to a search's mirrored event stream and forwards events
// into the tracker until the context ends or a terminal event arrives.
func (m *Mirror) Listen(ctx context.Context, t *Tracker) {
	sub := m.rdb.Subscribe(ctx, eventsChannel(t.SearchID))
	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					continue
				}
				terminal := ev.Stage == "completed" || ev.Progress == -1
				t.publish(ev, terminal)
				if terminal {
					return
				}
			}
		}
	}()
}
