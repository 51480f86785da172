// Package api is the HTTP surface: search submission, status/timeline,
// SSE progress streaming, stats, health, and metrics.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/bidiq/bidiq/pkg/config"
	"github.com/bidiq/bidiq/pkg/database"
	"github.com/bidiq/bidiq/pkg/jobs"
	"github.com/bidiq/bidiq/pkg/metrics"
	"github.com/bidiq/bidiq/pkg/pipeline"
	"github.com/bidiq/bidiq/pkg/progress"
	"github.com/bidiq/bidiq/pkg/quota"
	"github.com/bidiq/bidiq/pkg/ratelimit"
	"github.com/bidiq/bidiq/pkg/sectors"
	"github.com/bidiq/bidiq/pkg/services"
	"github.com/bidiq/bidiq/pkg/upstream"
)

// SearchRunner drives one search through the pipeline. Satisfied by
// *pipeline.Orchestrator; handler tests substitute a fake.
type SearchRunner interface {
	Run(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

// Server is the HTTP API server.
type Server struct {
	e   *echo.Echo
	srv *http.Server

	cfg           *config.Config
	dbClient      *database.Client
	searchService *services.SearchService
	quotaService  *quota.Service
	runner        SearchRunner
	registry      *progress.Registry
	sectors       *sectors.Registry
	pool          *jobs.Pool

	rdb          *redis.Client
	verifier     TokenVerifier
	sourceHealth *upstream.HealthRegistry

	searchLimiter *ratelimit.Limiter
	sseGuard      *ratelimit.SSEGuard

	statsFlight singleflight.Group
}

// NewServer creates the API server. Optional collaborators (Redis, token
// verifier, source health) are wired through the Set methods before Start.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	searchService *services.SearchService,
	quotaService *quota.Service,
	runner SearchRunner,
	registry *progress.Registry,
	sectorRegistry *sectors.Registry,
	pool *jobs.Pool,
) *Server {
	s := &Server{
		cfg:           cfg,
		dbClient:      dbClient,
		searchService: searchService,
		quotaService:  quotaService,
		runner:        runner,
		registry:      registry,
		sectors:       sectorRegistry,
		pool:          pool,
	}
	if cfg != nil && cfg.RateLimit.Enabled {
		s.sseGuard = ratelimit.NewSSEGuard(cfg.RateLimit.SSEMaxConnections)
	}
	s.e = s.buildEcho()
	return s
}

// SetRedis wires the shared Redis client (rate limiting, stats cache).
func (s *Server) SetRedis(rdb *redis.Client) {
	s.rdb = rdb
	if s.cfg != nil && s.cfg.RateLimit.Enabled {
		s.searchLimiter = ratelimit.NewLimiter(rdb, s.cfg.RateLimit.SearchPerMinute, 0)
	}
}

// SetTokenVerifier wires the bearer-token verifier.
func (s *Server) SetTokenVerifier(v TokenVerifier) {
	s.verifier = v
}

// SetSourceHealth wires the upstream health registry surfaced in stats.
func (s *Server) SetSourceHealth(h *upstream.HealthRegistry) {
	s.sourceHealth = h
}

// Start runs the HTTP listener. Blocks until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the HTTP listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Handler exposes the routed handler for httptest-based tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) buildEcho() *echo.Echo {
	e := echo.New()

	e.Use(requestScope())
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.GET("/metrics", func(c *echo.Context) error {
		metrics.Handler().ServeHTTP(c.Response(), c.Request())
		return nil
	})

	e.GET("/api/pncp-stats", s.pncpStatsHandler)

	v1 := e.Group("/v1")
	v1.POST("/buscar", s.buscarHandler, s.requireAuth, s.rateLimitSearch("/v1/buscar"))
	v1.GET("/search/:id/timeline", s.getTimelineHandler, s.requireAuth)
	v1.GET("/search/:id/status", s.getStatusHandler, s.requireAuth)
	v1.GET("/search/:id/events", s.eventsHandler, s.requireAuth)
	v1.GET("/admin/search-trace/:id", s.searchTraceHandler, s.requireAuth)

	// Legacy un-versioned alias, kept for older clients.
	e.POST("/buscar", s.buscarHandler,
		deprecated("/v1/buscar"), s.requireAuth, s.rateLimitSearch("/buscar"))

	return e
}
