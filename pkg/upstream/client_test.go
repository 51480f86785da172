package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/version"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		Upstream:    "test",
		BaseURL:     srv.URL,
		MaxAttempts: 4,
		Timeout:     2 * time.Second,
	}, nil, nil, nil)
	return c, srv
}

func TestDoJSON_Success(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [1, 2, 3]}`))
	})

	v, err := c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/items"})
	require.NoError(t, err)

	m := v.(map[string]any)
	assert.Len(t, m["data"], 3)
}

func TestDoJSON_IdentifiesItself(t *testing.T) {
	var ua string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	require.NoError(t, err)
	assert.Equal(t, version.UserAgent(), ua)
}

func TestDoJSON_Retries5xxThenSucceeds(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"ok": true}`))
	})

	_, err := c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/flaky"})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoJSON_FatalOn404(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/missing"})
	require.Error(t, err)
	assert.Equal(t, KindAPI, KindOf(err))
	assert.Equal(t, 1, calls, "4xx other than 429/422 must not be retried")
}

func TestDoJSON_AuthFatal(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/secure"})
	require.Error(t, err)
	assert.Equal(t, KindAuth, KindOf(err))
	assert.Equal(t, 1, calls)
}

func TestDoJSON_422RetriedExactlyOnce(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "parametro invalido"}`))
	})

	_, err := c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/odd"})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestDoJSON_RetryAfterHonored(t *testing.T) {
	calls := 0
	start := time.Now()
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/limited"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}

func TestDoJSON_Canceled(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := c.DoJSON(ctx, Request{Method: http.MethodGet, Path: "/slow"})
	require.Error(t, err)
	assert.Equal(t, KindCanceled, KindOf(err))
}

func TestDoJSON_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		Upstream:    "test",
		BaseURL:     srv.URL,
		MaxAttempts: 1,
		Timeout:     50 * time.Millisecond,
	}, nil, nil, nil)

	_, err := c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/slow"})
	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
}

func TestDoJSON_CircuitOpens(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	breakers := NewBreakerRegistry(2, time.Minute)
	c := NewClient(Config{
		Upstream:    "flappy",
		BaseURL:     srv.URL,
		MaxAttempts: 1,
	}, breakers, nil, nil)

	// Two failing calls trip the breaker.
	_, err := c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/x"})
	require.Error(t, err)
	_, err = c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/x"})
	require.Error(t, err)

	before := calls
	_, err = c.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/x"})
	require.Error(t, err)
	assert.Equal(t, KindCircuitOpen, KindOf(err))
	assert.Equal(t, before, calls, "open breaker must not touch the network")
}

func TestDoJSON_CacheHitBypassesNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"n": 1}`))
	}))
	t.Cleanup(srv.Close)

	cache := NewResponseCache(16, time.Minute)
	c := NewClient(Config{Upstream: "cached", BaseURL: srv.URL}, nil, nil, cache)

	req := Request{Method: http.MethodGet, Path: "/data", Query: url.Values{"uf": {"SP"}}}
	_, err := c.DoJSON(context.Background(), req)
	require.NoError(t, err)
	_, err = c.DoJSON(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestDoJSON_ErrorsNotCached(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	cache := NewResponseCache(16, time.Minute)
	c := NewClient(Config{Upstream: "cached", BaseURL: srv.URL, MaxAttempts: 1}, nil, nil, cache)

	req := Request{Method: http.MethodGet, Path: "/broken"}
	_, _ = c.DoJSON(context.Background(), req)
	_, _ = c.DoJSON(context.Background(), req)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, cache.Len())
}

func TestBackoffDelay_Bounds(t *testing.T) {
	for attempt := 0; attempt < 10; attempt++ {
		for i := 0; i < 50; i++ {
			d := backoffDelay(attempt)
			assert.GreaterOrEqual(t, d, time.Second, "jitter floor is 0.5× base (min base 2s)")
			assert.LessOrEqual(t, d, 90*time.Second, "jitter ceiling is 1.5× the 60s cap")
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 5*time.Second, parseRetryAfter("5"))
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, time.Duration(0), parseRetryAfter("garbage"))
}
