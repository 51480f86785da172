package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/models"
)

func createTestSearch(t *testing.T, s *Server, searchID, userID string) {
	t.Helper()
	_, err := s.searchService.CreateSearch(context.Background(), models.SearchRequest{
		SearchID: searchID,
		UserID:   userID,
		Sectors:  []string{"vestuario"},
		UFs:      []string{"SP"},
	})
	require.NoError(t, err)
}

func TestGetStatusHandler(t *testing.T) {
	s, _, verifier := newTestServer(t)
	token := verifier.Sign("user-1")

	createTestSearch(t, s, "st-1", "user-1")
	require.NoError(t, s.searchService.UpdateState(context.Background(), "st-1", models.StateFetching, "fetch"))

	rec := doJSON(t, s, http.MethodGet, "/v1/search/st-1/status", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var status models.SearchStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, models.StateFetching, status.Status)
	assert.Equal(t, 30, status.Progress)
}

func TestGetStatusHandler_NotFound(t *testing.T) {
	s, _, verifier := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/v1/search/missing/status", verifier.Sign("user-1"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "busca não encontrada")
}

func TestGetTimelineHandler(t *testing.T) {
	s, _, verifier := newTestServer(t)
	token := verifier.Sign("user-1")

	createTestSearch(t, s, "tl-1", "user-1")
	require.NoError(t, s.searchService.RecordTransition(context.Background(), models.SearchTransition{
		SearchID:  "tl-1",
		FromState: models.StateCreated,
		ToState:   models.StateValidating,
	}))
	require.NoError(t, s.searchService.RecordTransition(context.Background(), models.SearchTransition{
		SearchID:  "tl-1",
		FromState: models.StateValidating,
		ToState:   models.StateFetching,
	}))

	rec := doJSON(t, s, http.MethodGet, "/v1/search/tl-1/timeline", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var timeline []models.SearchTransition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &timeline))
	require.Len(t, timeline, 2)
	assert.Equal(t, models.StateValidating, timeline[0].ToState)
	assert.Equal(t, models.StateFetching, timeline[1].ToState)
}

func TestGetTimelineHandler_NotFound(t *testing.T) {
	s, _, verifier := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/v1/search/missing/timeline", verifier.Sign("user-1"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
