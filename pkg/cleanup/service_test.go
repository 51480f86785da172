package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/services"
	testdb "github.com/bidiq/bidiq/test/database"
)

func setupSearchService(t *testing.T) *services.SearchService {
	t.Helper()
	client := testdb.NewTestClient(t)
	return services.NewSearchService(client.Client)
}

func createSearch(t *testing.T, svc *services.SearchService, id string) {
	t.Helper()
	_, err := svc.CreateSearch(context.Background(), models.SearchRequest{
		SearchID: id,
		UserID:   "user-1",
		Sectors:  []string{"vestuario"},
		UFs:      []string{"SP"},
	})
	require.NoError(t, err)
}

func complete(t *testing.T, svc *services.SearchService, id string) {
	t.Helper()
	require.NoError(t, svc.UpdateState(context.Background(), id, models.StateCompleted, ""))
	require.NoError(t, svc.RecordTransition(context.Background(), models.SearchTransition{
		SearchID:  id,
		FromState: models.StatePersisting,
		ToState:   models.StateCompleted,
	}))
}

func TestSweep_PurgesOldCompletedSearches(t *testing.T) {
	svc := setupSearchService(t)
	ctx := context.Background()

	createSearch(t, svc, "old-1")
	complete(t, svc, "old-1")

	// MaxAge 0: everything already completed is past the cutoff.
	s := NewService(Config{Enabled: true, MaxAge: 0, Interval: time.Hour}, svc)
	s.sweep(ctx)

	_, err := svc.GetSearch(ctx, "old-1")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSweep_PreservesRecentAndRunningSearches(t *testing.T) {
	svc := setupSearchService(t)
	ctx := context.Background()

	createSearch(t, svc, "recent-done")
	complete(t, svc, "recent-done")

	createSearch(t, svc, "still-running")
	require.NoError(t, svc.UpdateState(ctx, "still-running", models.StateFetching, "fetch"))

	s := NewService(Config{Enabled: true, MaxAge: 24 * time.Hour, Interval: time.Hour}, svc)
	s.sweep(ctx)

	_, err := svc.GetSearch(ctx, "recent-done")
	assert.NoError(t, err)
	_, err = svc.GetSearch(ctx, "still-running")
	assert.NoError(t, err)
}

func TestService_StartDisabledIsNoop(t *testing.T) {
	svc := setupSearchService(t)

	s := NewService(Config{Enabled: false}, svc)
	s.Start(context.Background())
	s.Stop() // must not block or panic

	assert.Nil(t, s.cancel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	for _, key := range []string{"RETENTION_ENABLED", "RETENTION_DAYS", "RETENTION_INTERVAL_HOURS"} {
		t.Setenv(key, "")
	}

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.False(t, cfg.Enabled)
		assert.Equal(t, 90*24*time.Hour, cfg.MaxAge)
		assert.Equal(t, 6*time.Hour, cfg.Interval)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("RETENTION_ENABLED", "true")
		t.Setenv("RETENTION_DAYS", "30")
		t.Setenv("RETENTION_INTERVAL_HOURS", "12")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.Enabled)
		assert.Equal(t, 30*24*time.Hour, cfg.MaxAge)
		assert.Equal(t, 12*time.Hour, cfg.Interval)
	})

	t.Run("invalid days", func(t *testing.T) {
		t.Setenv("RETENTION_DAYS", "zero")
		_, err := LoadConfigFromEnv()
		assert.ErrorContains(t, err, "RETENTION_DAYS")
	})
}
