package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/bidiq/bidiq/pkg/metrics"
	"github.com/bidiq/bidiq/pkg/version"
)

const (
	// DefaultMaxAttempts bounds the retry loop.
	DefaultMaxAttempts = 4

	// maxBackoff caps the exponential delay between attempts.
	maxBackoff = 60 * time.Second

	// maxErrorBodyBytes limits how much of an error body is kept for logs.
	maxErrorBodyBytes = 2048
)

// Request describes one logical upstream call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any               // JSON-marshaled when non-nil
	Headers map[string]string // merged over the client's base headers

	// Timeout is the per-attempt deadline. Zero uses the client default.
	Timeout time.Duration

	// NoCache bypasses the response cache for this call.
	NoCache bool
}

// Config configures a resilience-core client for one logical upstream.
type Config struct {
	Upstream    string // breaker / gate / cache label
	BaseURL     string
	Headers     map[string]string
	MaxAttempts int
	Timeout     time.Duration // default per-attempt timeout
	RateRPS     float64
}

// Client is the retrying JSON client. All adapter traffic goes through it so
// retry, backoff, rate limiting, breaker, and caching behave uniformly.
type Client struct {
	cfg      Config
	hc       *http.Client
	breakers *BreakerRegistry
	gate     *RateGate
	cache    *ResponseCache
}

// NewClient creates a client. The breaker registry, rate gate, and response
// cache are shared singletons passed in by the caller; nil disables the
// corresponding layer (tests).
func NewClient(cfg Config, breakers *BreakerRegistry, gate *RateGate, cache *ResponseCache) *Client {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if gate != nil && cfg.RateRPS > 0 {
		gate.SetRate(cfg.Upstream, cfg.RateRPS)
	}
	return &Client{
		cfg: cfg,
		hc: &http.Client{
			// No client-level timeout: each attempt carries its own context
			// deadline and the global consolidation deadline must be able to
			// abort mid-flight.
			Timeout: 0,
		},
		breakers: breakers,
		gate:     gate,
		cache:    cache,
	}
}

// DoJSON performs the request with retries and returns the parsed JSON
// value, or a typed *Error. A cache hit bypasses the rate gate and breaker
// entirely.
func (c *Client) DoJSON(ctx context.Context, req Request) (any, error) {
	var bodyBytes []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &Error{Upstream: c.cfg.Upstream, Kind: KindParse, Err: err}
		}
		bodyBytes = b
	}

	key := ""
	if c.cache != nil && !req.NoCache {
		key = CacheKey(c.cfg.Upstream, req.Method, req.Path, req.Query, bodyBytes)
		if v, ok := c.cache.Get(key); ok {
			return v, nil
		}
	}

	run := func() (any, error) { return c.doWithRetries(ctx, req, bodyBytes) }

	var result any
	var err error
	if c.breakers != nil {
		var v any
		v, err = c.breakers.Get(c.cfg.Upstream).Execute(func() (any, error) { return run() })
		if err == nil {
			result = v
		} else if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.UpstreamRequests.WithLabelValues(c.cfg.Upstream, string(KindCircuitOpen)).Inc()
			return nil, &Error{Upstream: c.cfg.Upstream, Kind: KindCircuitOpen, Err: err}
		}
	} else {
		result, err = run()
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		c.cache.Set(key, result)
	}
	return result, nil
}

func (c *Client) doWithRetries(ctx context.Context, req Request, bodyBytes []byte) (any, error) {
	var lastErr *Error
	retried422 := false

	for attempt := 0; attempt < c.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(attempt - 1)
			if lastErr != nil && lastErr.RetryAfter > 0 {
				delay = lastErr.RetryAfter
			}
			slog.Debug("Retrying upstream request",
				"upstream", c.cfg.Upstream, "attempt", attempt+1, "delay", delay, "last_error", string(lastErr.Kind))
			if err := sleepCtx(ctx, delay); err != nil {
				return nil, &Error{Upstream: c.cfg.Upstream, Kind: KindCanceled, Err: err}
			}
		}

		if c.gate != nil {
			if err := c.gate.Wait(ctx, c.cfg.Upstream); err != nil {
				return nil, &Error{Upstream: c.cfg.Upstream, Kind: KindCanceled, Err: err}
			}
		}

		result, attemptErr := c.attempt(ctx, req, bodyBytes)
		if attemptErr == nil {
			metrics.UpstreamRequests.WithLabelValues(c.cfg.Upstream, "success").Inc()
			return result, nil
		}
		metrics.UpstreamRequests.WithLabelValues(c.cfg.Upstream, string(attemptErr.Kind)).Inc()
		lastErr = attemptErr

		if attemptErr.Kind == KindCanceled {
			return nil, attemptErr
		}

		// 422 is retried exactly once, with the body logged. The ultimate
		// failure still counts against the breaker.
		if attemptErr.Status == http.StatusUnprocessableEntity {
			if retried422 {
				return nil, attemptErr
			}
			retried422 = true
			slog.Warn("Upstream returned 422, retrying once",
				"upstream", c.cfg.Upstream, "path", req.Path, "body", attemptErr.Body)
			continue
		}

		if !retryable(attemptErr) {
			return nil, attemptErr
		}
	}

	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, req Request, bodyBytes []byte) (any, *Error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.cfg.Timeout
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	u, err := url.JoinPath(c.cfg.BaseURL, req.Path)
	if err != nil {
		return nil, &Error{Upstream: c.cfg.Upstream, Kind: KindNetwork, Err: err}
	}
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}

	var reader io.Reader
	if bodyBytes != nil {
		reader = bytes.NewReader(bodyBytes)
	}
	httpReq, err := http.NewRequestWithContext(attemptCtx, req.Method, u, reader)
	if err != nil {
		return nil, &Error{Upstream: c.cfg.Upstream, Kind: KindNetwork, Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", version.UserAgent())
	if bodyBytes != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.cfg.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return nil, c.classifyTransport(ctx, attemptCtx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var v any
		if resp.StatusCode == http.StatusNoContent {
			return nil, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
			return nil, &Error{Upstream: c.cfg.Upstream, Kind: KindParse, Status: resp.StatusCode, Err: err}
		}
		return v, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	apiErr := &Error{
		Upstream: c.cfg.Upstream,
		Status:   resp.StatusCode,
		Body:     strings.TrimSpace(string(body)),
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		apiErr.Kind = KindRateLimited
		apiErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		apiErr.Kind = KindAuth
	default:
		apiErr.Kind = KindAPI
	}
	return nil, apiErr
}

func (c *Client) classifyTransport(parent, attempt context.Context, err error) *Error {
	switch {
	case parent.Err() != nil:
		return &Error{Upstream: c.cfg.Upstream, Kind: KindCanceled, Err: parent.Err()}
	case errors.Is(attempt.Err(), context.DeadlineExceeded):
		return &Error{Upstream: c.cfg.Upstream, Kind: KindTimeout, Err: err}
	default:
		return &Error{Upstream: c.cfg.Upstream, Kind: KindNetwork, Err: err}
	}
}

// retryable reports whether the failure warrants another attempt: timeouts,
// network errors, 5xx, and 429. Other 4xx are fatal (422 is special-cased in
// the loop).
func retryable(e *Error) bool {
	switch e.Kind {
	case KindTimeout, KindNetwork, KindRateLimited:
		return true
	case KindAPI:
		return e.Status >= 500
	default:
		return false
	}
}

// backoffDelay computes min(2 × 2^attempt, 60s) with uniform jitter in
// [0.5, 1.5].
func backoffDelay(attempt int) time.Duration {
	base := 2 * time.Second * (1 << attempt)
	if base > maxBackoff {
		base = maxBackoff
	}
	jitter := 0.5 + rand.Float64()
	return time.Duration(float64(base) * jitter)
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// String implements fmt.Stringer for debugging.
func (r Request) String() string {
	return fmt.Sprintf("%s %s", r.Method, r.Path)
}
