package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/bidiq/bidiq/ent"
	"github.com/bidiq/bidiq/ent/searchsession"
)

const (
	statsWindow   = 24 * time.Hour
	statsCacheKey = "bidiq:pncp:stats"
	statsCacheTTL = 5 * time.Minute
)

// pncpStatsHandler handles GET /api/pncp-stats: the cached 24h activity
// snapshot. Concurrent misses compute once behind a single-flight lock.
func (s *Server) pncpStatsHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	if cached, ok := s.statsFromCache(ctx); ok {
		return c.JSON(http.StatusOK, cached)
	}

	v, err, _ := s.statsFlight.Do(statsCacheKey, func() (any, error) {
		snap, err := s.computeStats(ctx)
		if err != nil {
			return nil, err
		}
		s.storeStatsCache(ctx, snap)
		return snap, nil
	})
	if err != nil {
		slog.Error("Failed to compute stats snapshot", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "estatísticas indisponíveis")
	}

	return c.JSON(http.StatusOK, v.(*StatsResponse))
}

func (s *Server) computeStats(ctx context.Context) (*StatsResponse, error) {
	since := time.Now().Add(-statsWindow)
	q := func() *ent.SearchSessionQuery {
		return s.dbClient.Client.SearchSession.Query().
			Where(searchsession.StartedAtGTE(since))
	}

	total, err := q().Count(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := q().Where(searchsession.StatusEQ(searchsession.StatusCompleted)).Count(ctx)
	if err != nil {
		return nil, err
	}
	failed, err := q().Where(searchsession.StatusIn(
		searchsession.StatusFailed,
		searchsession.StatusTimedOut,
		searchsession.StatusRateLimited,
	)).Count(ctx)
	if err != nil {
		return nil, err
	}
	records, err := q().Aggregate(ent.Sum(searchsession.FieldTotalRaw)).Int(ctx)
	if err != nil {
		// Sum over zero rows yields NULL on some drivers; treat as zero.
		records = 0
	}

	snap := &StatsResponse{
		GeneratedAt:       time.Now().UTC(),
		WindowHours:       int(statsWindow.Hours()),
		SearchesTotal:     total,
		SearchesCompleted: completed,
		SearchesFailed:    failed,
		RecordsFetched:    records,
		Sources:           make(map[string]string),
	}

	if s.sourceHealth != nil && s.cfg != nil {
		for code, src := range s.cfg.Sources {
			if src.Enabled {
				snap.Sources[code] = string(s.sourceHealth.Status(code))
			}
		}
	}

	return snap, nil
}

func (s *Server) statsFromCache(ctx context.Context) (*StatsResponse, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var snap StatsResponse
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false
	}
	return &snap, true
}

func (s *Server) storeStatsCache(ctx context.Context, snap *StatsResponse) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		slog.Warn("Failed to cache stats snapshot", "error", err)
	}
}
