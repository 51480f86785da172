package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bidiq/bidiq/pkg/consolidate"
	"github.com/bidiq/bidiq/pkg/filter"
	"github.com/bidiq/bidiq/pkg/jobs"
	"github.com/bidiq/bidiq/pkg/logging"
	"github.com/bidiq/bidiq/pkg/metrics"
	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/notify"
	"github.com/bidiq/bidiq/pkg/progress"
	"github.com/bidiq/bidiq/pkg/quota"
	"github.com/bidiq/bidiq/pkg/services"
	"github.com/bidiq/bidiq/pkg/sources"
)

// Stage names as persisted in pipeline_stage and transition rows.
const (
	StageValidate   = "validate"
	StageQuotaCheck = "quota-check"
	StageFetch      = "fetch"
	StageFilter     = "filter"
	StageEnrich     = "enrich"
	StageGenerate   = "generate"
	StagePersist    = "persist"
	StageNotify     = "notify"
)

// ExcelUnavailableMessage is the user-visible text when the spreadsheet
// cannot be produced or stored. Never replaced by an inline fallback.
const ExcelUnavailableMessage = "Planilha temporariamente indisponível"

// SearchStore is the persistence surface the orchestrator needs;
// *services.SearchService satisfies it.
type SearchStore interface {
	TransitionStore
	UpdateCounts(ctx context.Context, searchID string, totalRaw, totalFiltered int, valorTotal float64) error
	SetError(ctx context.Context, searchID, code, message string) error
	SetArtifacts(ctx context.Context, searchID, resumo string, destaques []map[string]any, excelPath string) error
}

// QuotaService answers quota questions; *quota.Service satisfies it.
type QuotaService interface {
	Check(ctx context.Context, userID string) *quota.Info
	CheckAndIncrement(ctx context.Context, userID string, maxQuota int) (allowed bool, newCount, remaining int, err error)
}

// Fetcher runs the multi-source consolidation; *consolidate.Engine
// satisfies it.
type Fetcher interface {
	Consolidate(ctx context.Context, params sources.FetchParams) (*consolidate.Result, error)
}

// FilterEngine applies the layered filters; *filter.Engine satisfies it.
type FilterEngine interface {
	Apply(ctx context.Context, records []*models.UnifiedProcurement, cfg filter.Config) ([]*models.UnifiedProcurement, *filter.Stats, error)
}

// SanctionsSummarizer produces the per-CNPJ tri-state summary;
// *sanctions.Service satisfies it. Nil disables enrichment screening.
type SanctionsSummarizer interface {
	Summary(ctx context.Context, cnpj string) (*models.SanctionsSummary, error)
}

// Summarizer renders the executive summary and highlights.
type Summarizer interface {
	Summarize(ctx context.Context, records []*models.UnifiedProcurement, maxTokens int) (resumo string, destaques []map[string]any, err error)
}

// ExcelBuilder produces and stores the spreadsheet, returning the storage
// path. Implementations never return file bytes.
type ExcelBuilder interface {
	Build(ctx context.Context, searchID string, records []*models.UnifiedProcurement) (string, error)
}

// Config bounds the pipeline.
type Config struct {
	// FetchBudget is the SEARCH_FETCH_TIMEOUT deadline over the fetch stage.
	FetchBudget time.Duration

	// UrgencyWindow marks bids closing within this window as urgent.
	UrgencyWindow time.Duration

	// MaxSanctionsLookups caps the distinct CNPJs screened during enrich.
	MaxSanctionsLookups int
}

// DefaultConfig returns the pipeline defaults.
func DefaultConfig() Config {
	return Config{
		FetchBudget:         360 * time.Second,
		UrgencyWindow:       7 * 24 * time.Hour,
		MaxSanctionsLookups: 50,
	}
}

// Request is one validated search submission.
type Request struct {
	SearchID string
	UserID   string
	Params   sources.FetchParams
	Filter   filter.Config
}

// Enrichment carries the per-record annotations produced by the enrich
// stage, keyed by source_id (urgency) and CNPJ (sanctions).
type Enrichment struct {
	Urgent    map[string]bool                     `json:"urgent,omitempty"`
	Sanctions map[string]*models.SanctionsSummary `json:"sanctions,omitempty"`
}

// Result is the terminal outcome of one pipeline run.
type Result struct {
	SearchID      string                       `json:"search_id"`
	State         models.SearchState           `json:"state"`
	Records       []*models.UnifiedProcurement `json:"records"`
	Stats         *filter.Stats                `json:"stats,omitempty"`
	Consolidation *consolidate.Result          `json:"consolidation,omitempty"`
	Enrichment    *Enrichment                  `json:"enrichment,omitempty"`
	Resumo        string                       `json:"resumo_executivo,omitempty"`
	Destaques     []map[string]any             `json:"destaques,omitempty"`
	ExcelStatus   string                       `json:"excel_status,omitempty"`
	Quota         *quota.Info                  `json:"quota,omitempty"`
	ErrorCode     string                       `json:"error_code,omitempty"`
	ErrorMessage  string                       `json:"error_message,omitempty"`
}

// Orchestrator drives a search through the eight stages.
type Orchestrator struct {
	store      SearchStore
	quota      QuotaService
	fetcher    Fetcher
	filter     FilterEngine
	sanctions  SanctionsSummarizer
	summarizer Summarizer
	excel      ExcelBuilder
	progress   *progress.Registry
	notifier   notify.Notifier
	pool       *jobs.Pool
	cfg        Config
}

// NewOrchestrator wires the pipeline. sanctions, summarizer, excel,
// notifier, and pool may be nil; the corresponding stages degrade to no-ops.
func NewOrchestrator(
	store SearchStore,
	quotaSvc QuotaService,
	fetcher Fetcher,
	filterEng FilterEngine,
	sanctions SanctionsSummarizer,
	summarizer Summarizer,
	excel ExcelBuilder,
	registry *progress.Registry,
	notifier notify.Notifier,
	pool *jobs.Pool,
	cfg Config,
) *Orchestrator {
	if cfg.FetchBudget <= 0 {
		cfg.FetchBudget = DefaultConfig().FetchBudget
	}
	if cfg.UrgencyWindow <= 0 {
		cfg.UrgencyWindow = DefaultConfig().UrgencyWindow
	}
	if cfg.MaxSanctionsLookups <= 0 {
		cfg.MaxSanctionsLookups = DefaultConfig().MaxSanctionsLookups
	}
	return &Orchestrator{
		store:      store,
		quota:      quotaSvc,
		fetcher:    fetcher,
		filter:     filterEng,
		sanctions:  sanctions,
		summarizer: summarizer,
		excel:      excel,
		progress:   registry,
		notifier:   notifier,
		pool:       pool,
		cfg:        cfg,
	}
}

// Run executes the pipeline for one search. The returned Result is always
// non-nil; a non-nil error accompanies every non-completed terminal state.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	metrics.SearchesStarted.Inc()

	machine := NewStateMachine(req.SearchID, o.store)
	var tracker *progress.Tracker
	if o.progress != nil {
		tracker = o.progress.Create(req.SearchID, len(req.Params.UFs))
	}

	result := &Result{SearchID: req.SearchID}

	// Stage 1: validate.
	if err := machine.Transition(ctx, models.StateValidating, StageValidate, nil); err != nil {
		return result, err
	}
	if err := validateRequest(req); err != nil {
		return result, o.fail(ctx, machine, tracker, result, req,
			models.StateFailed, "INVALID_INPUT", err.Error())
	}

	// Stage 2: quota-check (read-only; the increment happens after fetch).
	info := o.quota.Check(ctx, req.UserID)
	result.Quota = info
	if !info.Allowed {
		code := "QUOTA_EXCEEDED"
		msg := "Limite mensal de buscas atingido"
		cause := services.ErrQuotaExceeded
		if info.ErrorMessage == "Trial expirado" {
			code, msg, cause = "TRIAL_EXPIRED", "Trial expirado", services.ErrTrialExpired
		}
		return result, errors.Join(cause,
			o.fail(ctx, machine, tracker, result, req, models.StateRateLimited, code, msg))
	}

	// Stage 3: fetch.
	if err := machine.Transition(ctx, models.StateFetching, StageFetch, nil); err != nil {
		return result, err
	}
	if tracker != nil {
		tracker.Emit("fetching", 10, "Consultando fontes públicas", "")
	}

	// UF completions stream from the adapters' fetch goroutines; the first
	// source to finish a UF advances the band, later ones are ignored.
	var ufDone sync.Map
	fetchParams := req.Params
	if tracker != nil {
		fetchParams.OnUFComplete = func(_, uf string, count int) {
			if _, dup := ufDone.LoadOrStore(uf, struct{}{}); dup {
				return
			}
			tracker.EmitUFComplete(uf, count)
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, o.cfg.FetchBudget)
	consolidated, err := o.fetcher.Consolidate(fetchCtx, fetchParams)
	cancel()
	if err != nil {
		var allFailed *consolidate.AllSourcesFailedError
		switch {
		case errors.Is(fetchCtx.Err(), context.DeadlineExceeded):
			return result, o.fail(ctx, machine, tracker, result, req,
				models.StateTimedOut, "SOURCE_TIMEOUT",
				"As fontes públicas não responderam dentro do prazo")
		case errors.As(err, &allFailed):
			return result, o.fail(ctx, machine, tracker, result, req,
				models.StateFailed, "ALL_SOURCES_FAILED",
				"Nenhuma fonte pública respondeu")
		default:
			return result, o.fail(ctx, machine, tracker, result, req,
				models.StateFailed, "FETCH_ERROR", err.Error())
		}
	}
	result.Consolidation = consolidated
	o.emitUFProgress(tracker, req.Params.UFs, consolidated.Records, &ufDone)

	// Increment before leaving fetch so a crash mid-filter cannot
	// double-bill the user.
	maxQuota := info.Capabilities.MaxRequestsPerMonth
	allowed, _, remaining, err := o.quota.CheckAndIncrement(ctx, req.UserID, maxQuota)
	if err != nil {
		// Billing outage fails open; the search continues.
		slog.WarnContext(ctx, "Quota increment failed, continuing",
			"search_id", req.SearchID, "error", err)
	} else if !allowed {
		return result, errors.Join(services.ErrQuotaExceeded,
			o.fail(ctx, machine, tracker, result, req, models.StateRateLimited,
				"QUOTA_EXCEEDED", "Limite mensal de buscas atingido"))
	} else {
		info.QuotaRemaining = remaining
	}

	// Stage 4: filter.
	if err := machine.Transition(ctx, models.StateFiltering, StageFilter,
		map[string]any{"total_raw": len(consolidated.Records)}); err != nil {
		return result, err
	}
	if tracker != nil {
		tracker.Emit("filtering", 60, "Filtrando resultados", "")
	}
	filtered, stats, err := o.filter.Apply(ctx, consolidated.Records, req.Filter)
	if err != nil {
		return result, o.fail(ctx, machine, tracker, result, req,
			models.StateFailed, "FILTER_ERROR", err.Error())
	}
	result.Records = filtered
	result.Stats = stats

	// Stage 5: enrich.
	if err := machine.Transition(ctx, models.StateEnriching, StageEnrich, nil); err != nil {
		return result, err
	}
	if tracker != nil {
		tracker.Emit("enriching", 70, "Verificando sanções e prazos", "")
	}
	result.Enrichment = o.enrich(ctx, filtered)

	// Stage 6: generate.
	if err := machine.Transition(ctx, models.StateGenerating, StageGenerate, nil); err != nil {
		return result, err
	}
	if tracker != nil {
		tracker.Emit("generating", 85, "Gerando resumo e planilha", "")
	}
	o.generate(ctx, req, info, filtered, result)

	// Stage 7: persist.
	if err := machine.Transition(ctx, models.StatePersisting, StagePersist, nil); err != nil {
		return result, err
	}
	valorTotal := 0.0
	for _, rec := range filtered {
		valorTotal += rec.ValorEstimado
	}
	if err := o.store.UpdateCounts(ctx, req.SearchID, len(consolidated.Records), len(filtered), valorTotal); err != nil {
		return result, o.fail(ctx, machine, tracker, result, req,
			models.StateFailed, "PERSIST_ERROR", err.Error())
	}
	if result.Resumo != "" || result.Destaques != nil {
		if err := o.store.SetArtifacts(ctx, req.SearchID, result.Resumo, result.Destaques, ""); err != nil {
			slog.WarnContext(ctx, "Failed to persist artifacts",
				"search_id", req.SearchID, "error", err)
		}
	}

	// Stage 8: notify + complete.
	if err := machine.Transition(ctx, models.StateCompleted, StageNotify,
		map[string]any{"total_filtered": len(filtered)}); err != nil {
		return result, err
	}
	result.State = models.StateCompleted
	if tracker != nil {
		tracker.EmitComplete()
	}
	if o.progress != nil {
		o.progress.Remove(req.SearchID)
	}
	if o.notifier != nil {
		o.notifier.SearchFinished(ctx, req.UserID, req.SearchID, models.StateCompleted, len(filtered))
	}
	return result, nil
}

// fail routes the pipeline to a terminal failure state and returns the
// error the caller should surface.
func (o *Orchestrator) fail(ctx context.Context, machine *StateMachine, tracker *progress.Tracker, result *Result, req Request, state models.SearchState, code, message string) error {
	if err := machine.Transition(ctx, state, "", map[string]any{"error_code": code}); err != nil {
		slog.ErrorContext(ctx, "Failed to reach terminal state",
			"search_id", req.SearchID, "state", state, "error", err)
	}
	if err := o.store.SetError(ctx, req.SearchID, code, message); err != nil {
		slog.WarnContext(ctx, "Failed to persist search error",
			"search_id", req.SearchID, "error", err)
	}
	result.State = state
	result.ErrorCode = code
	result.ErrorMessage = message

	if tracker != nil {
		tracker.EmitError(message)
	}
	if o.progress != nil {
		o.progress.Remove(req.SearchID)
	}
	if o.notifier != nil {
		o.notifier.SearchFinished(ctx, req.UserID, req.SearchID, state, 0)
	}
	return fmt.Errorf("search %s: %s: %s", req.SearchID, code, message)
}

// enrich computes urgency flags and sanctions summaries. Everything here is
// advisory; failures degrade to missing annotations.
func (o *Orchestrator) enrich(ctx context.Context, records []*models.UnifiedProcurement) *Enrichment {
	enr := &Enrichment{Urgent: make(map[string]bool)}

	deadline := time.Now().Add(o.cfg.UrgencyWindow)
	for _, rec := range records {
		if rec.DataEncerramento != nil && rec.DataEncerramento.After(time.Now()) && rec.DataEncerramento.Before(deadline) {
			enr.Urgent[rec.SourceID] = true
		}
	}

	if o.sanctions == nil {
		return enr
	}
	enr.Sanctions = make(map[string]*models.SanctionsSummary)
	for _, rec := range records {
		cnpj := models.OnlyDigits(rec.CNPJOrgao)
		if cnpj == "" {
			continue
		}
		if _, seen := enr.Sanctions[cnpj]; seen {
			continue
		}
		if len(enr.Sanctions) >= o.cfg.MaxSanctionsLookups {
			break
		}
		summary, err := o.sanctions.Summary(ctx, cnpj)
		if err != nil {
			slog.WarnContext(ctx, "Sanctions enrichment failed for cnpj", "error", err)
			continue
		}
		enr.Sanctions[cnpj] = summary
	}
	return enr
}

// generate renders the summary synchronously and dispatches the Excel build
// to the worker pool. The spreadsheet is storage-only: on any failure the
// result carries the unavailable message, never inline bytes.
func (o *Orchestrator) generate(ctx context.Context, req Request, info *quota.Info, records []*models.UnifiedProcurement, result *Result) {
	if o.summarizer != nil {
		resumo, destaques, err := o.summarizer.Summarize(ctx, records, info.Capabilities.MaxSummaryTokens)
		if err != nil {
			slog.WarnContext(ctx, "Summary generation failed",
				"search_id", req.SearchID, "error", err)
		} else {
			result.Resumo = resumo
			result.Destaques = destaques
		}
	}

	switch {
	case o.excel == nil || !info.Capabilities.AllowExcel:
		result.ExcelStatus = "disabled"
	case o.pool == nil:
		result.ExcelStatus = ExcelUnavailableMessage
	default:
		job := jobs.Job{
			Name:     "excel-export",
			TraceID:  requestTrace(ctx),
			SearchID: req.SearchID,
			Timeout:  2 * time.Minute,
			Run: func(jobCtx context.Context) error {
				path, err := o.excel.Build(jobCtx, req.SearchID, records)
				if err != nil {
					return fmt.Errorf("excel build failed: %w", err)
				}
				return o.store.SetArtifacts(jobCtx, req.SearchID, "", nil, path)
			},
		}
		if err := o.pool.Submit(job); err != nil {
			slog.WarnContext(ctx, "Excel job rejected",
				"search_id", req.SearchID, "error", err)
			result.ExcelStatus = ExcelUnavailableMessage
		} else {
			result.ExcelStatus = "pending"
		}
	}
}

// emitUFProgress closes the fetch band after consolidation: UFs no adapter
// reported live (sources without per-UF fetching, or a UF that only produced
// records through a slower source) get their event synthesized from the
// consolidated record set.
func (o *Orchestrator) emitUFProgress(tracker *progress.Tracker, ufs []string, records []*models.UnifiedProcurement, done *sync.Map) {
	if tracker == nil {
		return
	}
	perUF := make(map[string]int, len(ufs))
	for _, rec := range records {
		perUF[rec.UF]++
	}
	for _, uf := range ufs {
		norm := models.NormalizeUF(uf)
		if done != nil {
			if _, seen := done.Load(norm); seen {
				continue
			}
		}
		tracker.EmitUFComplete(norm, perUF[norm])
	}
}

func validateRequest(req Request) error {
	if req.SearchID == "" {
		return fmt.Errorf("search_id is required")
	}
	if req.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if len(req.Params.UFs) == 0 {
		return fmt.Errorf("at least one UF is required")
	}
	for _, uf := range req.Params.UFs {
		if len(uf) != 2 {
			return fmt.Errorf("invalid UF %q", uf)
		}
	}
	if req.Filter.Sector == nil && len(req.Filter.CustomTerms) == 0 {
		return fmt.Errorf("a sector or custom terms are required")
	}
	if !req.Params.DataFinal.IsZero() && !req.Params.DataInicial.IsZero() &&
		req.Params.DataFinal.Before(req.Params.DataInicial) {
		return fmt.Errorf("data_final precedes data_inicial")
	}
	return nil
}

// requestTrace extracts the correlation id for job re-scoping.
func requestTrace(ctx context.Context) string {
	return logging.CorrelationID(ctx)
}
