// bidiq server — provides the search HTTP API, runs the aggregation
// pipeline, and manages the artifact worker pool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/bidiq/bidiq/pkg/api"
	"github.com/bidiq/bidiq/pkg/arbiter"
	"github.com/bidiq/bidiq/pkg/cleanup"
	"github.com/bidiq/bidiq/pkg/config"
	"github.com/bidiq/bidiq/pkg/consolidate"
	"github.com/bidiq/bidiq/pkg/crypto"
	"github.com/bidiq/bidiq/pkg/database"
	"github.com/bidiq/bidiq/pkg/filter"
	"github.com/bidiq/bidiq/pkg/jobs"
	"github.com/bidiq/bidiq/pkg/logging"
	"github.com/bidiq/bidiq/pkg/notify"
	"github.com/bidiq/bidiq/pkg/pipeline"
	"github.com/bidiq/bidiq/pkg/progress"
	"github.com/bidiq/bidiq/pkg/quota"
	"github.com/bidiq/bidiq/pkg/sanctions"
	"github.com/bidiq/bidiq/pkg/sectors"
	"github.com/bidiq/bidiq/pkg/services"
	"github.com/bidiq/bidiq/pkg/sources"
	"github.com/bidiq/bidiq/pkg/upstream"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(logging.ParseLevel(cfg.LogLevel))

	sectorRegistry, err := loadSectors(cfg.SectorsPath)
	if err != nil {
		slog.Error("Failed to load sector dictionaries", "error", err)
		os.Exit(1)
	}
	cfg.LogStartupSummary(sectorRegistry.Len(), quota.PlanCount())

	// 2. Database
	dbClient, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Redis (optional — rate limiting, stats cache, progress mirror)
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			slog.Error("Invalid REDIS_URL", "error", err)
			os.Exit(1)
		}
		rdb = redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			slog.Warn("Redis unreachable at startup, continuing degraded", "error", err)
		} else {
			slog.Info("Connected to Redis")
		}
		cancel()
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Error closing Redis client", "error", err)
			}
		}()
	}

	// 4. Resilience core and source adapters
	breakers := upstream.NewBreakerRegistry(0, 0)
	gate := upstream.NewRateGate()
	cache := upstream.NewResponseCache(0, 0)
	sourceHealth := upstream.NewHealthRegistry()

	settings := make(map[string]sources.Settings, len(cfg.Sources))
	for code, src := range cfg.Sources {
		settings[code] = sources.Settings{
			Enabled:   src.Enabled,
			APIKey:    src.APIKey,
			APISecret: src.APISecret,
		}
	}
	registry := sources.BuildRegistry(settings, sources.Deps{
		Breakers:     breakers,
		Gate:         gate,
		Cache:        cache,
		PerUFTimeout: cfg.PNCPTimeoutPerUF,
	})
	defer registry.Close()

	engine, err := consolidate.NewEngine(registry.Adapters(), registry.Fallback(), sourceHealth, consolidate.Config{
		PerSourceTimeout:         cfg.Consolidation.PerSourceTimeout,
		GlobalTimeout:            cfg.Consolidation.GlobalTimeout,
		DegradedGlobalTimeout:    cfg.Consolidation.DegradedGlobalTimeout,
		FailoverPerSourceTimeout: cfg.Consolidation.FailoverPerSourceTimeout,
		FallbackTimeout:          cfg.Consolidation.FallbackTimeout,
		FailOnAllErrors:          cfg.Consolidation.FailOnAll,
		MaxConcurrent:            cfg.Consolidation.MaxConcurrent,
		DominantSource:           sources.CodePNCP,
	})
	if err != nil {
		slog.Error("Failed to build consolidation engine", "error", err)
		os.Exit(1)
	}
	slog.Info("Source adapters initialized", "adapters", len(registry.Adapters()))

	// 5. Filtering: LLM arbiter + sanctions screening
	oracle := arbiter.New(arbiter.Config{
		Enabled:     cfg.Arbiter.Enabled,
		APIKey:      cfg.Arbiter.APIKey,
		BaseURL:     cfg.Arbiter.BaseURL,
		Model:       cfg.Arbiter.Model,
		MaxTokens:   cfg.Arbiter.MaxTokens,
		Temperature: float32(cfg.Arbiter.Temperature),
	})

	var (
		sanctionsChecker filter.SanctionsChecker
		sanctionsSummary pipeline.SanctionsSummarizer
	)
	if key := os.Getenv("TRANSPARENCIA_API_KEY"); key != "" {
		base := getEnv("TRANSPARENCIA_BASE_URL", "https://api.portaldatransparencia.gov.br")
		headers := map[string]string{"chave-api-dados": key}
		sanctionsSvc := sanctions.NewService(sanctions.Clients{
			CEIS: upstream.NewClient(upstream.Config{
				Upstream: "ceis", BaseURL: base, Headers: headers,
			}, breakers, gate, cache),
			CNEP: upstream.NewClient(upstream.Config{
				Upstream: "cnep", BaseURL: base, Headers: headers,
			}, breakers, gate, cache),
		})
		sanctionsChecker = sanctionsSvc
		sanctionsSummary = sanctionsSvc
		slog.Info("Sanctions screening enabled")
	} else {
		slog.Warn("TRANSPARENCIA_API_KEY not set, sanctions screening disabled")
	}
	filterEngine := filter.NewEngine(oracle, sanctionsChecker)

	// 6. Domain services
	searchService := services.NewSearchService(dbClient.Client)
	quotaService := quota.New(quota.NewEntStore(dbClient), cfg.AdminUserIDs)
	notifier := notify.NewService(dbClient.Client)

	if cfg.EncryptionKey != "" {
		if _, err := crypto.New(cfg.EncryptionKey); err != nil {
			slog.Error("Invalid ENCRYPTION_KEY", "error", err)
			os.Exit(1)
		}
		slog.Info("Token encryption enabled")
	}

	// 7. Background infrastructure: worker pool, progress registry
	pool := jobs.NewPool(0, 0)
	pool.Start()

	progressRegistry := progress.NewRegistry(rdb, 0)
	progressRegistry.Start(ctx)

	// 8. Boot recovery: close out searches orphaned by a previous process
	recovered, err := pipeline.RecoverStaleSearches(ctx, dbClient, searchService, cfg.SearchFetchTimeout)
	if err != nil {
		slog.Error("Stale search recovery failed", "error", err)
		// Non-fatal — continue
	} else if recovered > 0 {
		slog.Info("Recovered stale searches", "count", recovered)
	}

	orchestrator := pipeline.NewOrchestrator(
		searchService,
		quotaService,
		engine,
		filterEngine,
		sanctionsSummary,
		pipeline.TemplateSummarizer{},
		nil, // Excel generation stays behind the ExcelBuilder interface
		progressRegistry,
		notifier,
		pool,
		pipeline.Config{FetchBudget: cfg.SearchFetchTimeout},
	)

	// 9. Retention sweep
	retentionCfg, err := cleanup.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load retention config", "error", err)
		os.Exit(1)
	}
	retention := cleanup.NewService(retentionCfg, searchService)
	retention.Start(ctx)
	defer retention.Stop()

	// 10. HTTP server
	httpServer := api.NewServer(cfg, dbClient, searchService, quotaService,
		orchestrator, progressRegistry, sectorRegistry, pool)
	httpServer.SetSourceHealth(sourceHealth)
	if rdb != nil {
		httpServer.SetRedis(rdb)
	}
	if secret := os.Getenv("API_TOKEN_SECRET"); secret != "" {
		httpServer.SetTokenVerifier(api.NewHMACVerifier(secret))
	} else {
		slog.Warn("API_TOKEN_SECRET not set, authenticated endpoints will refuse requests")
	}

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("bidiq started successfully",
		"environment", cfg.Environment,
		"sources", len(registry.Adapters()))

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: progress streams first, then workers, then HTTP
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	progressRegistry.Stop()

	poolDone := make(chan struct{})
	go func() {
		pool.Stop()
		close(poolDone)
	}()
	select {
	case <-poolDone:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// loadSectors falls back to the builtin dictionaries when the configured
// overlay file does not exist.
func loadSectors(path string) (*sectors.Registry, error) {
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			slog.Warn("Sectors file not found, using builtin dictionaries", "path", path)
			path = ""
		}
	}
	return sectors.Load(path)
}
