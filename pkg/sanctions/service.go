// Package sanctions cross-checks contracting CNPJs against the two federal
// sanctions registries (CEIS and CNEP) through the resilience core, with a
// 24-hour process-local cache and graceful per-registry degradation.
package sanctions

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bidiq/bidiq/pkg/metrics"
	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/upstream"
)

const (
	// CacheTTL bounds how long a CNPJ verdict is reused.
	CacheTTL = 24 * time.Hour

	// maxPages caps the per-registry page walk.
	maxPages = 50

	pageSize = 50
)

// Clients carries one resilience-core client per registry. Either may be nil,
// in which case that registry degrades to an empty result.
type Clients struct {
	CEIS *upstream.Client
	CNEP *upstream.Client
}

type cacheEntry struct {
	result    *models.SanctionsResult
	expiresAt time.Time
}

// Service is the sanctions lookup service.
type Service struct {
	clients Clients
	now     func() time.Time

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// NewService creates the service.
func NewService(clients Clients) *Service {
	return &Service{
		clients: clients,
		now:     time.Now,
		cache:   make(map[string]cacheEntry),
	}
}

// CheckSanctions returns the aggregate sanctions verdict for a CNPJ. Both
// registries are queried concurrently on a cache miss; a failing registry
// degrades to an empty list with a warning, and only when both fail is the
// result flagged unavailable (the filter fails open on that flag).
func (s *Service) CheckSanctions(ctx context.Context, cnpj string) (*models.SanctionsResult, error) {
	cnpj = models.OnlyDigits(cnpj)
	if cnpj == "" {
		return &models.SanctionsResult{CheckedAt: s.now()}, nil
	}

	now := s.now()
	s.mu.Lock()
	if entry, ok := s.cache[cnpj]; ok && now.Before(entry.expiresAt) {
		s.mu.Unlock()
		cached := *entry.result
		cached.CacheHit = true
		metrics.SanctionsLookups.WithLabelValues("cache_hit").Inc()
		return &cached, nil
	}
	s.mu.Unlock()

	var ceisRecords, cnepRecords []models.SanctionRecord
	var ceisErr, cnepErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ceisRecords, ceisErr = s.fetchRegistry(gctx, s.clients.CEIS, models.SanctionCEIS, cnpj)
		return nil
	})
	g.Go(func() error {
		cnepRecords, cnepErr = s.fetchRegistry(gctx, s.clients.CNEP, models.SanctionCNEP, cnpj)
		return nil
	})
	_ = g.Wait()

	result := &models.SanctionsResult{
		CNPJ:      cnpj,
		CheckedAt: now,
	}
	result.Records = append(result.Records, ceisRecords...)
	result.Records = append(result.Records, cnepRecords...)
	result.TotalCount = len(result.Records)
	for i := range result.Records {
		if result.Records[i].IsActive(now) {
			result.ActiveCount++
		}
	}
	result.IsSanctioned = result.ActiveCount > 0

	if ceisErr != nil && cnepErr != nil {
		result.Unavailable = true
		metrics.SanctionsLookups.WithLabelValues("unavailable").Inc()
		slog.Warn("Both sanctions registries unavailable, failing open",
			"cnpj", cnpj, "ceis_error", ceisErr, "cnep_error", cnepErr)
		// Not cached: the next lookup should retry the registries.
		return result, nil
	}

	if result.IsSanctioned {
		metrics.SanctionsLookups.WithLabelValues("sanctioned").Inc()
	} else {
		metrics.SanctionsLookups.WithLabelValues("clean").Inc()
	}

	s.mu.Lock()
	s.cache[cnpj] = cacheEntry{result: result, expiresAt: now.Add(CacheTTL)}
	s.mu.Unlock()

	return result, nil
}

// Summary condenses a lookup into the tri-state digest the search UI shows.
func (s *Service) Summary(ctx context.Context, cnpj string) (*models.SanctionsSummary, error) {
	result, err := s.CheckSanctions(ctx, cnpj)
	if err != nil {
		return nil, err
	}

	summary := &models.SanctionsSummary{Status: models.SanctionsClean}
	if result.Unavailable {
		summary.Status = models.SanctionsUnavailable
		return summary, nil
	}
	if result.IsSanctioned {
		summary.Status = models.SanctionsSanctioned
		summary.ActiveCount = result.ActiveCount
		seen := make(map[string]bool)
		now := s.now()
		for i := range result.Records {
			rec := &result.Records[i]
			if rec.IsActive(now) && rec.SanctionType != "" && !seen[rec.SanctionType] {
				seen[rec.SanctionType] = true
				summary.SanctionTypes = append(summary.SanctionTypes, rec.SanctionType)
			}
		}
	}
	return summary, nil
}

// CacheSize returns the number of cached CNPJ verdicts.
func (s *Service) CacheSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// fetchRegistry walks one registry's pages until an empty page or the safety
// cap.
func (s *Service) fetchRegistry(ctx context.Context, client *upstream.Client, db models.SanctionDatabase, cnpj string) ([]models.SanctionRecord, error) {
	if client == nil {
		return nil, nil
	}

	var records []models.SanctionRecord
	for page := 1; page <= maxPages; page++ {
		query := url.Values{}
		query.Set("cnpjSancionado", cnpj)
		query.Set("pagina", strconv.Itoa(page))
		query.Set("tamanhoPagina", strconv.Itoa(pageSize))

		body, err := client.DoJSON(ctx, upstream.Request{
			Method: "GET",
			Path:   registryPath(db),
			Query:  query,
		})
		if err != nil {
			slog.Warn("Sanctions registry query failed, degrading to empty list",
				"registry", db, "cnpj", cnpj, "page", page, "error", err)
			return records, err
		}

		items, ok := body.([]any)
		if !ok {
			slog.Warn("Unexpected sanctions registry payload shape", "registry", db)
			break
		}
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			rec, ok := parseRecord(db, item)
			if !ok {
				slog.Warn("Skipping unparsable sanction record", "registry", db, "cnpj", cnpj)
				continue
			}
			records = append(records, rec)
		}

		if len(items) < pageSize {
			break
		}
	}
	return records, nil
}

func registryPath(db models.SanctionDatabase) string {
	if db == models.SanctionCNEP {
		return "/api-de-dados/cnep"
	}
	return "/api-de-dados/ceis"
}
