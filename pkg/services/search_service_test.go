package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/models"
	testdb "github.com/bidiq/bidiq/test/database"
)

func newSearchService(t *testing.T) *SearchService {
	client := testdb.NewTestClient(t)
	return NewSearchService(client.Client)
}

func validRequest(id string) models.SearchRequest {
	return models.SearchRequest{
		SearchID: id,
		UserID:   "user-1",
		UFs:      []string{"SP", "RJ"},
		Sectors:  []string{"vestuario"},
	}
}

func TestCreateSearch(t *testing.T) {
	svc := newSearchService(t)
	ctx := context.Background()

	session, err := svc.CreateSearch(ctx, validRequest("search-1"))
	require.NoError(t, err)
	assert.Equal(t, "search-1", session.ID)
	assert.Equal(t, "created", string(session.Status))
	assert.Equal(t, []string{"SP", "RJ"}, session.Ufs)

	// Duplicate IDs are rejected.
	_, err = svc.CreateSearch(ctx, validRequest("search-1"))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCreateSearch_Validation(t *testing.T) {
	svc := newSearchService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		req   models.SearchRequest
		field string
	}{
		{"missing search_id", models.SearchRequest{UserID: "u", UFs: []string{"SP"}}, "search_id"},
		{"missing user_id", models.SearchRequest{SearchID: "s", UFs: []string{"SP"}}, "user_id"},
		{"empty ufs", models.SearchRequest{SearchID: "s", UserID: "u"}, "ufs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSearch(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestUpdateState_TerminalSetsCompletedAt(t *testing.T) {
	svc := newSearchService(t)
	ctx := context.Background()

	_, err := svc.CreateSearch(ctx, validRequest("search-1"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateState(ctx, "search-1", models.StateFetching, "fetch"))
	session, err := svc.GetSearch(ctx, "search-1")
	require.NoError(t, err)
	assert.Equal(t, "fetching", string(session.Status))
	assert.Equal(t, "fetch", session.PipelineStage)
	assert.Nil(t, session.CompletedAt)

	require.NoError(t, svc.UpdateState(ctx, "search-1", models.StateCompleted, ""))
	session, err = svc.GetSearch(ctx, "search-1")
	require.NoError(t, err)
	assert.NotNil(t, session.CompletedAt)
}

func TestUpdateState_NotFound(t *testing.T) {
	svc := newSearchService(t)
	err := svc.UpdateState(context.Background(), "no-such-search", models.StateFetching, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTimelineAndStatus(t *testing.T) {
	svc := newSearchService(t)
	ctx := context.Background()

	_, err := svc.CreateSearch(ctx, validRequest("search-1"))
	require.NoError(t, err)

	transitions := []models.SearchTransition{
		{SearchID: "search-1", FromState: models.StateCreated, ToState: models.StateValidating, Stage: "validate"},
		{SearchID: "search-1", FromState: models.StateValidating, ToState: models.StateFetching, Stage: "fetch",
			Details: map[string]any{"sources": 3}, DurationSincePreviousMS: 42},
	}
	for _, tr := range transitions {
		require.NoError(t, svc.RecordTransition(ctx, tr))
		time.Sleep(5 * time.Millisecond) // created_at ordering
	}
	require.NoError(t, svc.UpdateState(ctx, "search-1", models.StateFetching, "fetch"))
	require.NoError(t, svc.UpdateCounts(ctx, "search-1", 120, 8, 1234567.89))

	timeline, err := svc.GetTimeline(ctx, "search-1")
	require.NoError(t, err)
	require.Len(t, timeline, 2)
	assert.Equal(t, models.StateValidating, timeline[0].ToState)
	assert.Equal(t, models.StateFetching, timeline[1].ToState)
	assert.Equal(t, int64(42), timeline[1].DurationSincePreviousMS)

	status, err := svc.GetStatus(ctx, "search-1")
	require.NoError(t, err)
	assert.Equal(t, models.StateFetching, status.Status)
	assert.Equal(t, 30, status.Progress)
	assert.Equal(t, 120, status.TotalRaw)
	assert.Equal(t, 8, status.TotalFiltered)
	require.NotNil(t, status.LastTransition)
	assert.Equal(t, models.StateFetching, status.LastTransition.ToState)
}

func TestGetTimeline_UnknownSearch(t *testing.T) {
	svc := newSearchService(t)
	_, err := svc.GetTimeline(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetArtifactsAndError(t *testing.T) {
	svc := newSearchService(t)
	ctx := context.Background()

	_, err := svc.CreateSearch(ctx, validRequest("search-1"))
	require.NoError(t, err)

	destaques := []map[string]any{{"objeto": "uniformes escolares", "valor": 250000.0}}
	require.NoError(t, svc.SetArtifacts(ctx, "search-1", "Resumo do período.", destaques, "exports/search-1.xlsx"))
	require.NoError(t, svc.SetError(ctx, "search-1", "SOURCE_TIMEOUT", "PNCP indisponível"))

	session, err := svc.GetSearch(ctx, "search-1")
	require.NoError(t, err)
	require.NotNil(t, session.ResumoExecutivo)
	assert.Equal(t, "Resumo do período.", *session.ResumoExecutivo)
	require.NotNil(t, session.ExcelPath)
	assert.Equal(t, "exports/search-1.xlsx", *session.ExcelPath)
	require.NotNil(t, session.ErrorCode)
	assert.Equal(t, "SOURCE_TIMEOUT", *session.ErrorCode)
}

func TestListByUser(t *testing.T) {
	svc := newSearchService(t)
	ctx := context.Background()

	for _, id := range []string{"s-1", "s-2", "s-3"} {
		_, err := svc.CreateSearch(ctx, validRequest(id))
		require.NoError(t, err)
	}
	other := validRequest("other-1")
	other.UserID = "user-2"
	_, err := svc.CreateSearch(ctx, other)
	require.NoError(t, err)

	sessions, total, err := svc.ListByUser(ctx, "user-1", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, sessions, 2)
}
