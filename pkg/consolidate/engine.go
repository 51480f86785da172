// Package consolidate implements the multi-source consolidation engine:
// parallel fan-out over the source adapters, the timeout hierarchy with
// health-aware widening, graceful degradation, cross-source deduplication,
// and the last-resort fallback.
package consolidate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bidiq/bidiq/pkg/metrics"
	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/sources"
	"github.com/bidiq/bidiq/pkg/upstream"
)

// Per-source fetch status values.
const (
	StatusSuccess  = "success"
	StatusTimeout  = "timeout"
	StatusError    = "error"
	StatusSkipped  = "skipped"
	StatusDisabled = "disabled"
)

// Config carries the engine's deadline hierarchy and policy flags.
type Config struct {
	PerSourceTimeout time.Duration // CONSOLIDATION_TIMEOUT_PER_SOURCE
	GlobalTimeout    time.Duration // CONSOLIDATION_TIMEOUT_GLOBAL

	// DegradedGlobalTimeout replaces GlobalTimeout when the dominant source
	// is degraded or down.
	DegradedGlobalTimeout time.Duration

	// FailoverPerSourceTimeout replaces PerSourceTimeout for non-dominant
	// sources in degraded mode.
	FailoverPerSourceTimeout time.Duration

	// FallbackTimeout bounds the last-resort adapter.
	FallbackTimeout time.Duration

	FailOnAllErrors bool
	MaxConcurrent   int

	// DominantSource is the health-classification anchor, normally PNCP.
	DominantSource string
}

// DefaultConfig returns the deadline hierarchy defaults.
func DefaultConfig() Config {
	return Config{
		PerSourceTimeout:         180 * time.Second,
		GlobalTimeout:            300 * time.Second,
		DegradedGlobalTimeout:    360 * time.Second,
		FailoverPerSourceTimeout: 120 * time.Second,
		FallbackTimeout:          40 * time.Second,
		FailOnAllErrors:          true,
		MaxConcurrent:            5,
		DominantSource:           sources.CodePNCP,
	}
}

// SourceResult is one source's contribution to a consolidation run.
type SourceResult struct {
	Code       string                       `json:"code"`
	Status     string                       `json:"status"`
	Records    []*models.UnifiedProcurement `json:"-"`
	Count      int                          `json:"count"`
	DurationMS int64                        `json:"duration_ms"`
	Error      string                       `json:"error,omitempty"`

	err error
}

// Result is the consolidated, deduplicated outcome.
type Result struct {
	Records           []*models.UnifiedProcurement `json:"records"`
	Sources           []SourceResult               `json:"sources"`
	IsPartial         bool                         `json:"is_partial"`
	DegradationReason string                       `json:"degradation_reason,omitempty"`
	UsedFallback      bool                         `json:"used_fallback"`
	DegradedMode      bool                         `json:"degraded_mode"`
	DuplicatesDropped int                          `json:"duplicates_dropped"`
}

// AllSourcesFailedError is returned when every source, fallback included,
// failed and the policy demands failure.
type AllSourcesFailedError struct {
	Errors map[string]error
}

func (e *AllSourcesFailedError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for code, err := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %v", code, err))
	}
	sort.Strings(parts)
	return "all sources failed: " + strings.Join(parts, "; ")
}

// Engine fans a fetch out over the configured adapters.
type Engine struct {
	adapters map[string]sources.Adapter
	fallback sources.Adapter
	health   *upstream.HealthRegistry
	cfg      Config
}

// NewEngine creates the engine. The timeout chain is validated eagerly;
// an inverted chain is a configuration bug worth failing startup over.
func NewEngine(adapters map[string]sources.Adapter, fallback sources.Adapter, health *upstream.HealthRegistry, cfg Config) (*Engine, error) {
	if err := ValidateTimeoutChain(cfg); err != nil {
		return nil, err
	}
	return &Engine{
		adapters: adapters,
		fallback: fallback,
		health:   health,
		cfg:      cfg,
	}, nil
}

// Consolidate runs the fan-out, applies the deadline hierarchy, updates the
// health registry, invokes the fallback when everything failed, and
// deduplicates the merged set.
func (e *Engine) Consolidate(ctx context.Context, params sources.FetchParams) (*Result, error) {
	degraded := e.dominantDegraded()
	globalTimeout := e.cfg.GlobalTimeout
	if degraded {
		globalTimeout = e.cfg.DegradedGlobalTimeout
		slog.Warn("Dominant source degraded, widening consolidation deadlines",
			"dominant", e.cfg.DominantSource,
			"global_timeout", globalTimeout,
			"failover_per_source", e.cfg.FailoverPerSourceTimeout)
	}

	globalCtx, cancel := context.WithTimeout(ctx, globalTimeout)
	defer cancel()

	results := e.fanOut(globalCtx, params, degraded)

	// Health registry update from outcomes.
	for _, sr := range results {
		switch sr.Status {
		case StatusSuccess:
			e.health.RecordSuccess(sr.Code)
		case StatusTimeout, StatusError:
			e.health.RecordFailure(sr.Code)
		}
		metrics.SourceFetch.WithLabelValues(sr.Code, sr.Status).Inc()
	}

	allFailed := true
	for _, sr := range results {
		if sr.Status == StatusSuccess {
			allFailed = false
			break
		}
	}

	usedFallback := false
	if allFailed && e.fallback != nil {
		slog.Warn("All sources failed, invoking last-resort fallback",
			"fallback", e.fallback.Metadata().Code, "timeout", e.cfg.FallbackTimeout)
		fbResult := e.fetchOne(ctx, e.fallback, params, e.cfg.FallbackTimeout)
		metrics.SourceFetch.WithLabelValues(fbResult.Code, fbResult.Status).Inc()
		results = append(results, fbResult)
		usedFallback = true
		if fbResult.Status == StatusSuccess {
			allFailed = false
		}
	}

	if allFailed && e.cfg.FailOnAllErrors {
		errs := make(map[string]error, len(results))
		for _, sr := range results {
			if sr.err != nil {
				errs[sr.Code] = sr.err
			} else if sr.Status != StatusSuccess {
				errs[sr.Code] = fmt.Errorf("%s", sr.Status)
			}
		}
		return nil, &AllSourcesFailedError{Errors: errs}
	}

	var merged []*models.UnifiedProcurement
	var failed []string
	for _, sr := range results {
		if sr.Status == StatusSuccess {
			merged = append(merged, sr.Records...)
		} else {
			failed = append(failed, fmt.Sprintf("%s (%s)", sr.Code, sr.Status))
		}
	}

	deduped, dropped := e.Dedup(merged)

	result := &Result{
		Records:           deduped,
		Sources:           results,
		UsedFallback:      usedFallback,
		DegradedMode:      degraded,
		DuplicatesDropped: dropped,
	}
	if len(failed) > 0 {
		result.IsPartial = true
		sort.Strings(failed)
		result.DegradationReason = "fontes indisponíveis: " + strings.Join(failed, ", ")
	}

	slog.Info("Consolidation finished",
		"records", len(result.Records),
		"duplicates_dropped", dropped,
		"partial", result.IsPartial,
		"degraded_mode", degraded,
		"used_fallback", usedFallback)

	return result, nil
}

func (e *Engine) fanOut(ctx context.Context, params sources.FetchParams, degraded bool) []SourceResult {
	var mu sync.Mutex
	var results []SourceResult

	g, fanCtx := errgroup.WithContext(ctx)
	if e.cfg.MaxConcurrent > 0 {
		g.SetLimit(e.cfg.MaxConcurrent)
	}

	for code, adapter := range e.adapters {
		code, adapter := code, adapter

		// A down source is still callable, but there is no point burning its
		// per-source budget when the registry just watched it fail 5 times.
		if e.health.Status(code) == upstream.StatusDown && code != e.cfg.DominantSource {
			mu.Lock()
			results = append(results, SourceResult{Code: code, Status: StatusSkipped})
			mu.Unlock()
			continue
		}

		perSource := e.cfg.PerSourceTimeout
		if degraded && code != e.cfg.DominantSource {
			perSource = e.cfg.FailoverPerSourceTimeout
		}

		g.Go(func() error {
			sr := e.fetchOne(fanCtx, adapter, params, perSource)
			mu.Lock()
			results = append(results, sr)
			mu.Unlock()
			return nil // per-source failures never abort the group
		})
	}

	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Code < results[j].Code })
	return results
}

func (e *Engine) fetchOne(ctx context.Context, adapter sources.Adapter, params sources.FetchParams, timeout time.Duration) SourceResult {
	code := adapter.Metadata().Code
	sr := SourceResult{Code: code}

	srcCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		sr.DurationMS = time.Since(start).Milliseconds()
		if r := recover(); r != nil {
			sr.Status = StatusError
			sr.err = fmt.Errorf("adapter panic: %v", r)
			sr.Error = sr.err.Error()
			slog.Error("Adapter panicked during fetch", "source", code, "panic", r)
		}
	}()

	stream, err := adapter.Fetch(srcCtx, params)
	if err == nil {
		sr.Records, err = sources.Collect(srcCtx, stream)
	}

	if err != nil {
		sr.err = err
		sr.Error = err.Error()
		if upstream.IsTimeout(err) || srcCtx.Err() == context.DeadlineExceeded {
			sr.Status = StatusTimeout
		} else {
			sr.Status = StatusError
		}
		return sr
	}

	sr.Status = StatusSuccess
	sr.Count = len(sr.Records)
	return sr
}

// Dedup groups records by dedup key, keeping the one whose adapter priority
// is numerically lowest (first seen wins ties). Records without a key are
// never deduplicated. Idempotent on already-deduplicated input.
func (e *Engine) Dedup(records []*models.UnifiedProcurement) ([]*models.UnifiedProcurement, int) {
	type kept struct {
		rec      *models.UnifiedProcurement
		priority int
		pos      int
	}

	byKey := make(map[string]*kept)
	var out []*models.UnifiedProcurement
	dropped := 0

	for i, rec := range records {
		if rec.DedupKey == "" {
			out = append(out, rec)
			continue
		}
		prio := e.priorityOf(rec.SourceName)
		existing, ok := byKey[rec.DedupKey]
		if !ok {
			byKey[rec.DedupKey] = &kept{rec: rec, priority: prio, pos: i}
			continue
		}
		dropped++
		if prio < existing.priority {
			existing.rec = rec
			existing.priority = prio
		}
	}

	keptList := make([]*kept, 0, len(byKey))
	for _, k := range byKey {
		keptList = append(keptList, k)
	}
	sort.Slice(keptList, func(i, j int) bool { return keptList[i].pos < keptList[j].pos })
	for _, k := range keptList {
		out = append(out, k.rec)
	}

	return out, dropped
}

func (e *Engine) priorityOf(sourceName string) int {
	if a, ok := e.adapters[sourceName]; ok {
		return a.Metadata().Priority
	}
	if e.fallback != nil && e.fallback.Metadata().Code == sourceName {
		return e.fallback.Metadata().Priority
	}
	return 99
}

func (e *Engine) dominantDegraded() bool {
	if e.cfg.DominantSource == "" {
		return false
	}
	return e.health.Status(e.cfg.DominantSource) != upstream.StatusHealthy
}

// HealthCheckAll probes every adapter in parallel under a single 5s cap.
func (e *Engine) HealthCheckAll(ctx context.Context) map[string]models.SourceHealth {
	ctx, cancel := context.WithTimeout(ctx, sources.HealthCheckTimeout)
	defer cancel()

	var mu sync.Mutex
	out := make(map[string]models.SourceHealth, len(e.adapters))

	var wg sync.WaitGroup
	for code, adapter := range e.adapters {
		code, adapter := code, adapter
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := adapter.HealthCheck(ctx)
			mu.Lock()
			out[code] = h
			mu.Unlock()
		}()
	}
	wg.Wait()
	return out
}
