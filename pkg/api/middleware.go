package api

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/bidiq/bidiq/pkg/logging"
	"github.com/bidiq/bidiq/pkg/metrics"
	"github.com/bidiq/bidiq/pkg/ratelimit"
)

// legacySunset is the announced removal date for un-versioned routes.
const legacySunset = "2026-12-31"

// requestScope establishes the correlation context for every request and
// echoes X-Request-ID on every response.
func requestScope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			req := c.Request()

			reqID := req.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = uuid.NewString()
			}

			ctx := logging.WithRequestID(req.Context(), reqID)
			ctx = logging.WithCorrelationID(ctx, req.Header.Get("X-Correlation-ID"))
			c.SetRequest(req.WithContext(ctx))

			c.Response().Header().Set("X-Request-ID", reqID)
			return next(c)
		}
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// deprecationWarned remembers which legacy paths already produced the
// process-wide warning.
var deprecationWarned sync.Map

// deprecated tags responses of a legacy route with deprecation headers and
// logs one warning per path per process.
func deprecated(successor string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("Deprecation", "true")
			h.Set("Sunset", legacySunset)
			h.Set("Link", "<"+successor+`>; rel="successor-version"`)

			path := c.Request().URL.Path
			if _, warned := deprecationWarned.LoadOrStore(path, true); !warned {
				slog.Warn("Deprecated route still in use",
					"path", path, "successor", successor, "sunset", legacySunset)
			}
			return next(c)
		}
	}
}

// rateLimitSearch applies the per-user sliding window to a search route.
// Unauthenticated callers are keyed by client IP.
func (s *Server) rateLimitSearch(endpoint string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if s.searchLimiter == nil {
				return next(c)
			}

			ctx := c.Request().Context()
			key, scope := currentUserID(c), "user"
			if key == "" {
				key, scope = clientIP(c.Request()), "ip"
			}

			decision := s.searchLimiter.Allow(ctx, key)
			if decision.Allowed {
				return next(c)
			}

			secs := ratelimit.RetryAfterSeconds(decision.RetryAfter)
			metrics.RateLimitExceeded.WithLabelValues(endpoint, scope).Inc()
			slog.Warn("Rate limit exceeded",
				"user_id", currentUserID(c),
				"endpoint", endpoint,
				"limit", s.cfg.RateLimit.SearchPerMinute,
				"correlation_id", logging.CorrelationID(ctx))

			c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
			return c.JSON(http.StatusTooManyRequests, &RateLimitResponse{
				Detail:            "Limite de buscas excedido. Tente novamente em instantes.",
				RetryAfterSeconds: secs,
				CorrelationID:     logging.CorrelationID(ctx),
			})
		}
	}
}

// clientIP resolves the caller address behind the usual proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	if rip := r.Header.Get("X-Real-IP"); rip != "" {
		return rip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
