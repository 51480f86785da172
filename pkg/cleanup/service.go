// Package cleanup enforces the search retention policy: terminal searches
// older than the configured age are deleted, transition log included.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/bidiq/bidiq/pkg/services"
)

// Config controls the retention sweep. Disabled by default; operators opt in
// per environment.
type Config struct {
	Enabled  bool
	MaxAge   time.Duration
	Interval time.Duration
}

// LoadConfigFromEnv reads RETENTION_ENABLED (default false), RETENTION_DAYS
// (default 90), and RETENTION_INTERVAL_HOURS (default 6).
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		MaxAge:   90 * 24 * time.Hour,
		Interval: 6 * time.Hour,
	}

	if v := os.Getenv("RETENTION_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RETENTION_ENABLED: %w", err)
		}
		cfg.Enabled = enabled
	}
	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			return Config{}, fmt.Errorf("invalid RETENTION_DAYS: %q", v)
		}
		cfg.MaxAge = time.Duration(days) * 24 * time.Hour
	}
	if v := os.Getenv("RETENTION_INTERVAL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil || hours <= 0 {
			return Config{}, fmt.Errorf("invalid RETENTION_INTERVAL_HOURS: %q", v)
		}
		cfg.Interval = time.Duration(hours) * time.Hour
	}
	return cfg, nil
}

// Service periodically purges old terminal searches. All operations are
// idempotent and safe to run from multiple pods.
type Service struct {
	cfg           Config
	searchService *services.SearchService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the retention service.
func NewService(cfg Config, searchService *services.SearchService) *Service {
	return &Service{
		cfg:           cfg,
		searchService: searchService,
	}
}

// Start launches the background sweep loop. No-op when disabled.
func (s *Service) Start(ctx context.Context) {
	if !s.cfg.Enabled || s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"max_age", s.cfg.MaxAge,
		"interval", s.cfg.Interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.MaxAge)
	count, err := s.searchService.PurgeOldSearches(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old searches", "count", count, "cutoff", cutoff)
	}
}
