package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/consolidate"
	"github.com/bidiq/bidiq/pkg/filter"
	"github.com/bidiq/bidiq/pkg/jobs"
	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/progress"
	"github.com/bidiq/bidiq/pkg/quota"
	"github.com/bidiq/bidiq/pkg/sectors"
	"github.com/bidiq/bidiq/pkg/services"
	"github.com/bidiq/bidiq/pkg/sources"
)

type fakeStore struct {
	mu          sync.Mutex
	states      []models.SearchState
	stages      []string
	transitions []models.SearchTransition
	errorCode   string
	errorMsg    string
	totalRaw    int
	totalFilt   int
	valorTotal  float64
	resumo      string
	excelPath   string
	updateErr   error
}

func (f *fakeStore) UpdateState(_ context.Context, _ string, state models.SearchState, stage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.states = append(f.states, state)
	f.stages = append(f.stages, stage)
	return nil
}

func (f *fakeStore) RecordTransition(_ context.Context, tr models.SearchTransition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transitions = append(f.transitions, tr)
	return nil
}

func (f *fakeStore) UpdateCounts(_ context.Context, _ string, raw, filt int, valor float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.totalRaw, f.totalFilt, f.valorTotal = raw, filt, valor
	return nil
}

func (f *fakeStore) SetError(_ context.Context, _, code, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorCode, f.errorMsg = code, message
	return nil
}

func (f *fakeStore) SetArtifacts(_ context.Context, _, resumo string, _ []map[string]any, excelPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if resumo != "" {
		f.resumo = resumo
	}
	if excelPath != "" {
		f.excelPath = excelPath
	}
	return nil
}

func (f *fakeStore) lastState() models.SearchState {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.states) == 0 {
		return ""
	}
	return f.states[len(f.states)-1]
}

type fakeQuota struct {
	mu         sync.Mutex
	info       *quota.Info
	increments int
	denyIncr   bool
	incrErr    error
}

func (f *fakeQuota) Check(context.Context, string) *quota.Info {
	return f.info
}

func (f *fakeQuota) CheckAndIncrement(_ context.Context, _ string, maxQuota int) (bool, int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incrErr != nil {
		return false, 0, 0, f.incrErr
	}
	if f.denyIncr {
		return false, maxQuota, 0, nil
	}
	f.increments++
	return true, f.increments, maxQuota - f.increments, nil
}

type fakeFetcher struct {
	result        *consolidate.Result
	err           error
	onConsolidate func(context.Context, sources.FetchParams)
}

func (f *fakeFetcher) Consolidate(ctx context.Context, params sources.FetchParams) (*consolidate.Result, error) {
	if f.onConsolidate != nil {
		f.onConsolidate(ctx, params)
	}
	return f.result, f.err
}

type passthroughFilter struct{}

func (passthroughFilter) Apply(_ context.Context, records []*models.UnifiedProcurement, _ filter.Config) ([]*models.UnifiedProcurement, *filter.Stats, error) {
	return records, &filter.Stats{TotalInput: len(records)}, nil
}

type fakeExcel struct {
	err error
}

func (f *fakeExcel) Build(_ context.Context, searchID string, _ []*models.UnifiedProcurement) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "exports/" + searchID + ".xlsx", nil
}

func record(id, uf string, valor float64) *models.UnifiedProcurement {
	return &models.UnifiedProcurement{
		SourceID:      id,
		SourceName:    "pncp",
		Objeto:        "aquisição de uniformes escolares",
		UF:            uf,
		ValorEstimado: valor,
		Orgao:         "Prefeitura de Teste",
	}
}

func freeInfo() *quota.Info {
	plan := quota.Lookup(quota.PlanFree)
	return &quota.Info{
		Allowed:        true,
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		Capabilities:   plan.Capabilities,
		QuotaRemaining: 10,
	}
}

func proInfo() *quota.Info {
	plan := quota.Lookup(quota.PlanPro)
	return &quota.Info{
		Allowed:        true,
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		Capabilities:   plan.Capabilities,
		QuotaRemaining: 100,
	}
}

func testSector() *sectors.Sector {
	for _, s := range sectors.Builtin() {
		if s.ID == "vestuario" {
			sec := s
			return &sec
		}
	}
	return nil
}

func testRequest() Request {
	sector := testSector()
	return Request{
		SearchID: "search-1",
		UserID:   "user-1",
		Params: sources.FetchParams{
			UFs: []string{"SP", "RJ"},
		},
		Filter: filter.Config{Sector: sector},
	}
}

func newOrchestrator(store *fakeStore, q *fakeQuota, fetch Fetcher, pool *jobs.Pool, excel ExcelBuilder) *Orchestrator {
	return NewOrchestrator(store, q, fetch, passthroughFilter{}, nil,
		TemplateSummarizer{}, excel, nil, nil, pool, DefaultConfig())
}

func TestRun_HappyPath(t *testing.T) {
	store := &fakeStore{}
	q := &fakeQuota{info: freeInfo()}
	fetch := &fakeFetcher{result: &consolidate.Result{
		Records: []*models.UnifiedProcurement{
			record("a", "SP", 100000),
			record("b", "RJ", 50000),
		},
	}}

	orch := newOrchestrator(store, q, fetch, nil, nil)
	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, models.StateCompleted, result.State)
	assert.Len(t, result.Records, 2)
	assert.NotEmpty(t, result.Resumo)
	assert.Equal(t, "disabled", result.ExcelStatus, "FREE plan has no Excel")
	assert.Equal(t, 1, q.increments, "quota incremented exactly once")

	assert.Equal(t, models.StateCompleted, store.lastState())
	assert.Equal(t, 2, store.totalRaw)
	assert.Equal(t, 2, store.totalFilt)
	assert.InDelta(t, 150000, store.valorTotal, 0.01)
}

func TestRun_InvalidInput(t *testing.T) {
	store := &fakeStore{}
	q := &fakeQuota{info: freeInfo()}
	orch := newOrchestrator(store, q, &fakeFetcher{}, nil, nil)

	req := testRequest()
	req.Params.UFs = []string{"SAO"}
	result, err := orch.Run(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, models.StateFailed, result.State)
	assert.Equal(t, "INVALID_INPUT", result.ErrorCode)
	assert.Equal(t, "INVALID_INPUT", store.errorCode)
	assert.Equal(t, 0, q.increments)
}

func TestRun_QuotaExceeded(t *testing.T) {
	store := &fakeStore{}
	info := freeInfo()
	info.Allowed = false
	q := &fakeQuota{info: info}
	orch := newOrchestrator(store, q, &fakeFetcher{}, nil, nil)

	result, err := orch.Run(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrQuotaExceeded)
	assert.Equal(t, models.StateRateLimited, result.State)
	assert.Equal(t, "QUOTA_EXCEEDED", result.ErrorCode)
}

func TestRun_TrialExpired(t *testing.T) {
	store := &fakeStore{}
	info := freeInfo()
	info.Allowed = false
	info.ErrorMessage = "Trial expirado"
	q := &fakeQuota{info: info}
	orch := newOrchestrator(store, q, &fakeFetcher{}, nil, nil)

	result, err := orch.Run(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrTrialExpired)
	assert.Equal(t, "TRIAL_EXPIRED", result.ErrorCode)
}

func TestRun_AllSourcesFailed(t *testing.T) {
	store := &fakeStore{}
	q := &fakeQuota{info: freeInfo()}
	fetch := &fakeFetcher{err: &consolidate.AllSourcesFailedError{
		Errors: map[string]error{"pncp": errors.New("boom")},
	}}
	orch := newOrchestrator(store, q, fetch, nil, nil)

	result, err := orch.Run(context.Background(), testRequest())
	require.Error(t, err)
	assert.Equal(t, models.StateFailed, result.State)
	assert.Equal(t, "ALL_SOURCES_FAILED", result.ErrorCode)
	assert.Equal(t, 0, q.increments, "failed fetch must not bill the user")
}

func TestRun_IncrementDeniedAfterFetch(t *testing.T) {
	store := &fakeStore{}
	q := &fakeQuota{info: freeInfo(), denyIncr: true}
	fetch := &fakeFetcher{result: &consolidate.Result{
		Records: []*models.UnifiedProcurement{record("a", "SP", 1)},
	}}
	orch := newOrchestrator(store, q, fetch, nil, nil)

	result, err := orch.Run(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrQuotaExceeded)
	assert.Equal(t, models.StateRateLimited, result.State)
}

func TestRun_IncrementErrorFailsOpen(t *testing.T) {
	store := &fakeStore{}
	q := &fakeQuota{info: freeInfo(), incrErr: errors.New("db down")}
	fetch := &fakeFetcher{result: &consolidate.Result{
		Records: []*models.UnifiedProcurement{record("a", "SP", 1)},
	}}
	orch := newOrchestrator(store, q, fetch, nil, nil)

	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err, "billing outage must not fail the search")
	assert.Equal(t, models.StateCompleted, result.State)
}

func TestRun_ExcelDispatchedForPaidPlan(t *testing.T) {
	store := &fakeStore{}
	q := &fakeQuota{info: proInfo()}
	fetch := &fakeFetcher{result: &consolidate.Result{
		Records: []*models.UnifiedProcurement{record("a", "SP", 1)},
	}}
	pool := jobs.NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	orch := newOrchestrator(store, q, fetch, pool, &fakeExcel{})
	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "pending", result.ExcelStatus)

	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return store.excelPath == "exports/search-1.xlsx"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRun_ExcelUnavailableWhenQueueFull(t *testing.T) {
	store := &fakeStore{}
	q := &fakeQuota{info: proInfo()}
	fetch := &fakeFetcher{result: &consolidate.Result{
		Records: []*models.UnifiedProcurement{record("a", "SP", 1)},
	}}
	// Not started and tiny: the queue rejects the job.
	pool := jobs.NewPool(1, 1)
	require.NoError(t, pool.Submit(jobs.Job{Name: "filler", Run: func(context.Context) error { return nil }}))

	orch := newOrchestrator(store, q, fetch, pool, &fakeExcel{})
	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, ExcelUnavailableMessage, result.ExcelStatus)
}

// ufEvents extracts the UF names of the fetch-band completion events, in
// emit order.
func ufEvents(events []progress.Event) []string {
	var out []string
	for _, ev := range events {
		if ev.Stage == "fetching" && strings.HasSuffix(ev.Message, " concluído") {
			out = append(out, strings.TrimSuffix(ev.Message, " concluído"))
		}
	}
	return out
}

func TestRun_PerUFProgressStreamsDuringFetch(t *testing.T) {
	store := &fakeStore{}
	q := &fakeQuota{info: freeInfo()}
	registry := progress.NewRegistry(nil, progress.DefaultTTL)

	var tracker *progress.Tracker
	var midFetch []progress.Event
	fetch := &fakeFetcher{
		result: &consolidate.Result{
			Records: []*models.UnifiedProcurement{record("a", "SP", 100)},
		},
		onConsolidate: func(_ context.Context, params sources.FetchParams) {
			require.NotNil(t, params.OnUFComplete)
			params.OnUFComplete("pncp", "SP", 1)
			// A second source finishing the same UF must not advance the band
			// twice.
			params.OnUFComplete("comprasgov", "SP", 7)

			var ok bool
			tracker, ok = registry.Get("search-1")
			require.True(t, ok)
			midFetch = tracker.Snapshot()
		},
	}

	orch := NewOrchestrator(store, q, fetch, passthroughFilter{}, nil,
		TemplateSummarizer{}, nil, registry, nil, nil, DefaultConfig())
	_, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"SP"}, ufEvents(midFetch),
		"the first source to finish a UF advances the band while the fetch is still running")

	final := tracker.Snapshot()
	assert.Equal(t, []string{"SP", "RJ"}, ufEvents(final),
		"the post-fetch sweep fills in only the UFs no adapter reported")

	for _, ev := range final {
		if ev.Message == "SP concluído" {
			assert.Equal(t, "1 item", ev.Detail, "the first completion's count wins")
		}
	}
}

func TestRun_EnrichMarksUrgent(t *testing.T) {
	soon := time.Now().Add(48 * time.Hour)
	later := time.Now().Add(30 * 24 * time.Hour)
	recA := record("a", "SP", 1)
	recA.DataEncerramento = &soon
	recB := record("b", "SP", 1)
	recB.DataEncerramento = &later

	store := &fakeStore{}
	q := &fakeQuota{info: freeInfo()}
	fetch := &fakeFetcher{result: &consolidate.Result{
		Records: []*models.UnifiedProcurement{recA, recB},
	}}
	orch := newOrchestrator(store, q, fetch, nil, nil)

	result, err := orch.Run(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, result.Enrichment)
	assert.True(t, result.Enrichment.Urgent["a"])
	assert.False(t, result.Enrichment.Urgent["b"])
}

func TestValidateRequest(t *testing.T) {
	base := testRequest()

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr string
	}{
		{"valid", func(*Request) {}, ""},
		{"missing search id", func(r *Request) { r.SearchID = "" }, "search_id"},
		{"missing user id", func(r *Request) { r.UserID = "" }, "user_id"},
		{"no ufs", func(r *Request) { r.Params.UFs = nil }, "UF"},
		{"bad uf", func(r *Request) { r.Params.UFs = []string{"XYZ"} }, "invalid UF"},
		{"no sector or terms", func(r *Request) { r.Filter.Sector = nil }, "sector or custom terms"},
		{"inverted dates", func(r *Request) {
			r.Params.DataInicial = time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
			r.Params.DataFinal = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		}, "data_final"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			err := validateRequest(req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTemplateSummarizer(t *testing.T) {
	s := TemplateSummarizer{}

	resumo, destaques, err := s.Summarize(context.Background(), nil, 500)
	require.NoError(t, err)
	assert.Contains(t, resumo, "Nenhuma licitação")
	assert.Nil(t, destaques)

	records := []*models.UnifiedProcurement{
		record("a", "SP", 500000),
		record("b", "RJ", 100000),
		record("c", "SP", 300000),
		record("d", "MG", 50000),
	}
	resumo, destaques, err = s.Summarize(context.Background(), records, 500)
	require.NoError(t, err)
	assert.Contains(t, resumo, "4 licitações")
	assert.Contains(t, resumo, "MG, RJ, SP")
	require.Len(t, destaques, 3)
	assert.InDelta(t, 500000.0, destaques[0]["valor_estimado"], 0.01)

	short, _, err := s.Summarize(context.Background(), records, 10)
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(short)), 40)
}

func TestStateMachine_HappyPath(t *testing.T) {
	store := &fakeStore{}
	m := NewStateMachine("s1", store)

	path := []models.SearchState{
		models.StateValidating, models.StateFetching, models.StateFiltering,
		models.StateEnriching, models.StateGenerating, models.StatePersisting,
		models.StateCompleted,
	}
	for _, next := range path {
		require.NoError(t, m.Transition(context.Background(), next, "stage", nil))
	}
	assert.Equal(t, models.StateCompleted, m.Current())
}

func TestStateMachine_InvalidTransitions(t *testing.T) {
	store := &fakeStore{}
	m := NewStateMachine("s1", store)

	// Skipping validating is not allowed.
	err := m.Transition(context.Background(), models.StateFetching, "", nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.StateCreated, m.Current())

	// Any non-terminal state can jump to a failure state.
	require.NoError(t, m.Transition(context.Background(), models.StateValidating, "", nil))
	require.NoError(t, m.Transition(context.Background(), models.StateTimedOut, "", nil))

	// Terminal states are final.
	err = m.Transition(context.Background(), models.StateValidating, "", nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStateMachine_RecordsTransitionRows(t *testing.T) {
	store := &fakeStore{}
	m := NewStateMachine(fmt.Sprintf("s-%d", time.Now().UnixNano()), store)

	require.NoError(t, m.Transition(context.Background(), models.StateValidating, StageValidate, nil))
	require.NoError(t, m.Transition(context.Background(), models.StateFetching, StageFetch, map[string]any{"sources": 3}))

	// Transition rows are written fire-and-forget.
	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.transitions) == 2
	}, 2*time.Second, 10*time.Millisecond)

	store.mu.Lock()
	defer store.mu.Unlock()
	states := map[models.SearchState]bool{}
	for _, tr := range store.transitions {
		states[tr.ToState] = true
	}
	assert.True(t, states[models.StateValidating])
	assert.True(t, states[models.StateFetching])
}
