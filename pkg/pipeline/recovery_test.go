package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/pkg/database"
	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/services"
	testdb "github.com/bidiq/bidiq/test/database"
)

func seedSearchAt(t *testing.T, client *database.Client, svc *services.SearchService,
	id string, status searchsession.Status, startedAt time.Time) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.CreateSearch(ctx, models.SearchRequest{
		SearchID: id,
		UserID:   "user-1",
		UFs:      []string{"SP"},
	})
	require.NoError(t, err)
	require.NoError(t, client.SearchSession.UpdateOneID(id).
		SetStatus(status).
		SetStartedAt(startedAt).
		Exec(ctx))
}

func TestRecoverStaleSearches_SplitsOnCutoff(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSearchService(client.Client)
	ctx := context.Background()

	now := time.Now()
	seedSearchAt(t, client, svc, "rec-old", searchsession.StatusFetching, now.Add(-30*time.Minute))
	seedSearchAt(t, client, svc, "rec-fresh", searchsession.StatusFiltering, now.Add(-1*time.Minute))
	seedSearchAt(t, client, svc, "rec-done", searchsession.StatusCompleted, now.Add(-1*time.Hour))

	n, err := RecoverStaleSearches(ctx, client, svc, 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	old, err := client.SearchSession.Get(ctx, "rec-old")
	require.NoError(t, err)
	assert.Equal(t, searchsession.StatusTimedOut, old.Status)
	require.NotNil(t, old.ErrorCode)
	assert.Equal(t, "timeout", *old.ErrorCode)
	assert.NotNil(t, old.CompletedAt)

	fresh, err := client.SearchSession.Get(ctx, "rec-fresh")
	require.NoError(t, err)
	assert.Equal(t, searchsession.StatusFailed, fresh.Status)
	require.NotNil(t, fresh.ErrorCode)
	assert.Equal(t, "server_restart", *fresh.ErrorCode)

	// Terminal rows are left alone.
	done, err := client.SearchSession.Get(ctx, "rec-done")
	require.NoError(t, err)
	assert.Equal(t, searchsession.StatusCompleted, done.Status)
	assert.Nil(t, done.ErrorCode)
}

func TestRecoverStaleSearches_Idempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewSearchService(client.Client)
	ctx := context.Background()

	seedSearchAt(t, client, svc, "rec-once", searchsession.StatusEnriching,
		time.Now().Add(-20*time.Minute))

	n, err := RecoverStaleSearches(ctx, client, svc, 10*time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	after, err := client.SearchSession.Get(ctx, "rec-once")
	require.NoError(t, err)

	n, err = RecoverStaleSearches(ctx, client, svc, 10*time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n, "already-recovered rows must not be touched again")

	again, err := client.SearchSession.Get(ctx, "rec-once")
	require.NoError(t, err)
	assert.Equal(t, after.Status, again.Status)
	assert.Equal(t, after.ErrorCode, again.ErrorCode)
	assert.Equal(t, after.CompletedAt, again.CompletedAt)
}
