package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/config"
	"github.com/bidiq/bidiq/pkg/logging"
	"github.com/bidiq/bidiq/pkg/ratelimit"
)

func TestRequestScope(t *testing.T) {
	e := echo.New()
	e.Use(requestScope())

	var gotRequestID, gotCorrelationID string
	e.GET("/test", func(c *echo.Context) error {
		ctx := c.Request().Context()
		gotRequestID = logging.RequestID(ctx)
		gotCorrelationID = logging.CorrelationID(ctx)
		return c.NoContent(http.StatusOK)
	})

	t.Run("generates request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, rec.Header().Get("X-Request-ID"), gotRequestID)
		// No correlation header: correlates by request id.
		assert.Equal(t, gotRequestID, gotCorrelationID)
	})

	t.Run("honors client headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "req-1")
		req.Header.Set("X-Correlation-ID", "corr-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "req-1", gotRequestID)
		assert.Equal(t, "corr-1", gotCorrelationID)
	})
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestDeprecatedHeaders(t *testing.T) {
	e := echo.New()
	e.POST("/buscar", func(c *echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, deprecated("/v1/buscar"))

	req := httptest.NewRequest(http.MethodPost, "/buscar", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "true", rec.Header().Get("Deprecation"))
	assert.Equal(t, legacySunset, rec.Header().Get("Sunset"))
	assert.Equal(t, `</v1/buscar>; rel="successor-version"`, rec.Header().Get("Link"))
}

func TestRateLimitSearch(t *testing.T) {
	s := &Server{
		cfg:           &config.Config{RateLimit: config.RateLimitConfig{Enabled: true, SearchPerMinute: 2}},
		searchLimiter: ratelimit.NewLimiter(nil, 2, 0),
	}

	e := echo.New()
	e.Use(requestScope())
	e.POST("/v1/buscar", func(c *echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, s.rateLimitSearch("/v1/buscar"))

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/buscar", nil)
		req.Header.Set("X-Correlation-ID", "corr-rl")
		req.RemoteAddr = "10.0.0.1:4567"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	rec := do()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var body RateLimitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Detail, "Limite de buscas excedido")
	assert.GreaterOrEqual(t, body.RetryAfterSeconds, 1)
	assert.Equal(t, "corr-rl", body.CorrelationID)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(r *http.Request)
		expect string
	}{
		{
			name:   "x-forwarded-for takes first hop",
			setup:  func(r *http.Request) { r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1") },
			expect: "203.0.113.7",
		},
		{
			name:   "x-real-ip",
			setup:  func(r *http.Request) { r.Header.Set("X-Real-IP", "203.0.113.9") },
			expect: "203.0.113.9",
		},
		{
			name:   "remote addr fallback",
			setup:  func(r *http.Request) {},
			expect: "192.0.2.1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			assert.Equal(t, tt.expect, clientIP(req))
		})
	}
}
