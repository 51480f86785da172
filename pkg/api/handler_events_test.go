package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/ratelimit"
)

func TestEventsHandler_ReplaysTrackerEvents(t *testing.T) {
	s, _, verifier := newTestServer(t)
	token := verifier.Sign("user-1")

	tracker := s.registry.Create("ev-1", 2)
	tracker.Emit("validating", 5, "Validando parâmetros", "")
	tracker.EmitUFComplete("SP", 12)
	tracker.EmitComplete()

	rec := doJSON(t, s, http.MethodGet, "/v1/search/ev-1/events", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "event: progress")
	assert.Contains(t, body, "Validando parâmetros")
	assert.Contains(t, body, "SP concluído")
	assert.Contains(t, body, "Busca concluída")
}

func TestEventsHandler_TerminalSearchWithoutTracker(t *testing.T) {
	s, _, verifier := newTestServer(t)
	token := verifier.Sign("user-1")

	createTestSearch(t, s, "ev-done", "user-1")
	require.NoError(t, s.searchService.UpdateState(context.Background(), "ev-done", models.StateCompleted, ""))

	rec := doJSON(t, s, http.MethodGet, "/v1/search/ev-done/events", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Busca finalizada")
}

func TestEventsHandler_RunningSearchWithoutTracker(t *testing.T) {
	s, _, verifier := newTestServer(t)
	token := verifier.Sign("user-1")

	createTestSearch(t, s, "ev-running", "user-1")
	require.NoError(t, s.searchService.UpdateState(context.Background(), "ev-running", models.StateFetching, "fetch"))

	rec := doJSON(t, s, http.MethodGet, "/v1/search/ev-running/events", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventsHandler_UnknownSearch(t *testing.T) {
	s, _, verifier := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/v1/search/missing/events", verifier.Sign("user-1"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventsHandler_ConnectionCap(t *testing.T) {
	s, _, verifier := newTestServer(t)
	token := verifier.Sign("user-1")

	s.sseGuard = ratelimit.NewSSEGuard(1)
	require.True(t, s.sseGuard.Acquire("user-1"))

	tracker := s.registry.Create("ev-cap", 1)
	tracker.EmitComplete()

	rec := doJSON(t, s, http.MethodGet, "/v1/search/ev-cap/events", token, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	s.sseGuard.Release("user-1")
	rec = doJSON(t, s, http.MethodGet, "/v1/search/ev-cap/events", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, s.sseGuard.Open("user-1"))
}
