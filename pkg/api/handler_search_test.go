package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/config"
	"github.com/bidiq/bidiq/pkg/pipeline"
	"github.com/bidiq/bidiq/pkg/progress"
	"github.com/bidiq/bidiq/pkg/quota"
	"github.com/bidiq/bidiq/pkg/sectors"
	"github.com/bidiq/bidiq/pkg/services"
	testdb "github.com/bidiq/bidiq/test/database"
)

type fakeRunner struct {
	mu   sync.Mutex
	runs []pipeline.Request
}

func (f *fakeRunner) Run(_ context.Context, req pipeline.Request) (*pipeline.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, req)
	return &pipeline.Result{SearchID: req.SearchID}, nil
}

func (f *fakeRunner) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.runs)
}

func (f *fakeRunner) last() pipeline.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs[len(f.runs)-1]
}

// newTestServer wires a Server against a real test database and a fake
// pipeline runner.
func newTestServer(t *testing.T) (*Server, *fakeRunner, *HMACVerifier) {
	t.Helper()

	client := testdb.NewTestClient(t)
	searchSvc := services.NewSearchService(client.Client)
	quotaSvc := quota.New(quota.NewEntStore(client), "admin-1")

	sectorReg, err := sectors.Load("")
	require.NoError(t, err)

	runner := &fakeRunner{}
	registry := progress.NewRegistry(nil, time.Minute)

	s := NewServer(&config.Config{}, client, searchSvc, quotaSvc, runner, registry, sectorReg, nil)

	verifier := NewHMACVerifier("test-secret")
	s.SetTokenVerifier(verifier)
	return s, runner, verifier
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestBuscarHandler_Accepted(t *testing.T) {
	s, runner, verifier := newTestServer(t)
	token := verifier.Sign("user-1")

	body := validBuscar()
	rec := doJSON(t, s, http.MethodPost, "/v1/buscar", token, body)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	var resp BuscarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "search-1", resp.SearchID)
	assert.Equal(t, "created", resp.Status)

	// Session row persisted.
	session, err := s.searchService.GetSearch(context.Background(), "search-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)

	// Pipeline dispatched in the background with the sector resolved.
	require.Eventually(t, func() bool { return runner.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	run := runner.last()
	assert.Equal(t, "search-1", run.SearchID)
	assert.Equal(t, "user-1", run.UserID)
	require.NotNil(t, run.Filter.Sector)
	assert.Equal(t, "vestuario", run.Filter.Sector.ID)
	assert.Equal(t, []string{"SP", "RJ"}, run.Params.UFs)
}

func TestBuscarHandler_GeneratesSearchID(t *testing.T) {
	s, _, verifier := newTestServer(t)

	body := validBuscar()
	body.SearchID = ""
	rec := doJSON(t, s, http.MethodPost, "/v1/buscar", verifier.Sign("user-1"), body)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp BuscarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SearchID)
}

func TestBuscarHandler_Unauthorized(t *testing.T) {
	s, runner, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/v1/buscar", "", validBuscar())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, runner.count())
}

func TestBuscarHandler_ValidationError(t *testing.T) {
	s, runner, verifier := newTestServer(t)

	body := validBuscar()
	body.Ufs = []string{"SAO"}
	rec := doJSON(t, s, http.MethodPost, "/v1/buscar", verifier.Sign("user-1"), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, runner.count())
}

func TestBuscarHandler_UnknownSector(t *testing.T) {
	s, runner, verifier := newTestServer(t)

	body := validBuscar()
	body.SetorID = "nao-existe"
	rec := doJSON(t, s, http.MethodPost, "/v1/buscar", verifier.Sign("user-1"), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "setor desconhecido")
	assert.Zero(t, runner.count())
}

func TestBuscarHandler_DuplicateSearchID(t *testing.T) {
	s, runner, verifier := newTestServer(t)
	token := verifier.Sign("user-1")

	rec := doJSON(t, s, http.MethodPost, "/v1/buscar", token, validBuscar())
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/v1/buscar", token, validBuscar())
	assert.Equal(t, http.StatusConflict, rec.Code)

	require.Eventually(t, func() bool { return runner.count() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestBuscarHandler_LegacyAliasCarriesDeprecationHeaders(t *testing.T) {
	s, _, verifier := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/buscar", verifier.Sign("user-1"), validBuscar())
	require.Equal(t, http.StatusAccepted, rec.Code)

	assert.Equal(t, "true", rec.Header().Get("Deprecation"))
	assert.NotEmpty(t, rec.Header().Get("Sunset"))
	assert.Contains(t, rec.Header().Get("Link"), "/v1/buscar")
}
