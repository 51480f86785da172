package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/bidiq/bidiq/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only bidiq's own components (database, redis, jobs pool) are checked;
// upstream procurement portals are excluded so the orchestrator does not
// restart bidiq when an external portal misbehaves.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if stats, err := s.dbClient.Health(reqCtx); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else if stats.Saturated() {
		if status == healthStatusHealthy {
			status = healthStatusDegraded
		}
		checks["database"] = HealthCheck{Status: healthStatusDegraded, Message: "connection pool saturated"}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.rdb != nil {
		if err := s.rdb.Ping(reqCtx).Err(); err != nil {
			// Redis is optional; every consumer degrades to in-process mode.
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["redis"] = HealthCheck{Status: healthStatusDegraded, Message: err.Error()}
		} else {
			checks["redis"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		if poolHealth.Stopped {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["jobs"] = HealthCheck{Status: healthStatusDegraded, Message: "pool stopped"}
		} else {
			checks["jobs"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.Commit(),
		Checks:  checks,
	})
}
