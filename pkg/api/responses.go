package api

import (
	"time"

	"github.com/bidiq/bidiq/pkg/jobs"
	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/progress"
)

// BuscarResponse is returned by POST /v1/buscar.
type BuscarResponse struct {
	SearchID string `json:"search_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// RateLimitResponse is the 429 body.
type RateLimitResponse struct {
	Detail            string `json:"detail"`
	RetryAfterSeconds int    `json:"retry_after_seconds"`
	CorrelationID     string `json:"correlation_id"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// StatsResponse is the 24h snapshot returned by GET /api/pncp-stats.
type StatsResponse struct {
	GeneratedAt       time.Time         `json:"generated_at"`
	WindowHours       int               `json:"window_hours"`
	SearchesTotal     int               `json:"searches_total"`
	SearchesCompleted int               `json:"searches_completed"`
	SearchesFailed    int               `json:"searches_failed"`
	RecordsFetched    int               `json:"records_fetched"`
	Sources           map[string]string `json:"sources"`
}

// TraceResponse is the admin diagnostics blob for one search.
type TraceResponse struct {
	Search   *models.SearchStatus      `json:"search"`
	Timeline []models.SearchTransition `json:"timeline"`
	Progress []progress.Event          `json:"progress,omitempty"`
	Degraded bool                      `json:"progress_degraded,omitempty"`
	Jobs     *jobs.Health              `json:"jobs,omitempty"`
}
