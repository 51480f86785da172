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

func TestPncpStatsHandler(t *testing.T) {
	s, _, _ := newTestServer(t)
	ctx := context.Background()

	createTestSearch(t, s, "stats-done", "user-1")
	require.NoError(t, s.searchService.UpdateState(ctx, "stats-done", models.StateCompleted, ""))
	require.NoError(t, s.searchService.UpdateCounts(ctx, "stats-done", 40, 12, 150000))

	createTestSearch(t, s, "stats-failed", "user-1")
	require.NoError(t, s.searchService.UpdateState(ctx, "stats-failed", models.StateFailed, ""))

	createTestSearch(t, s, "stats-running", "user-2")

	rec := doJSON(t, s, http.MethodGet, "/api/pncp-stats", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var snap StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 24, snap.WindowHours)
	assert.Equal(t, 3, snap.SearchesTotal)
	assert.Equal(t, 1, snap.SearchesCompleted)
	assert.Equal(t, 1, snap.SearchesFailed)
	assert.Equal(t, 40, snap.RecordsFetched)
}

func TestHealthHandler(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.Equal(t, healthStatusHealthy, resp.Checks["database"].Status)
	assert.NotEmpty(t, resp.Version)
}

func TestSearchTraceHandler_AdminOnly(t *testing.T) {
	s, _, verifier := newTestServer(t)

	createTestSearch(t, s, "trace-1", "user-1")

	rec := doJSON(t, s, http.MethodGet, "/v1/admin/search-trace/trace-1", verifier.Sign("user-1"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/v1/admin/search-trace/trace-1", verifier.Sign("admin-1"), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp TraceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Search)
	assert.Equal(t, "trace-1", resp.Search.SearchID)
}

func TestSearchTraceHandler_IncludesProgressSnapshot(t *testing.T) {
	s, _, verifier := newTestServer(t)

	createTestSearch(t, s, "trace-2", "user-1")
	tracker := s.registry.Create("trace-2", 1)
	tracker.Emit("fetching", 20, "Coletando SP", "")

	rec := doJSON(t, s, http.MethodGet, "/v1/admin/search-trace/trace-2", verifier.Sign("admin-1"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TraceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Progress, 1)
	assert.Equal(t, "Coletando SP", resp.Progress[0].Message)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
