package sources

import (
	"log/slog"
	"time"

	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/upstream"
)

// Settings is the per-source configuration slice the registry consumes
// (ENABLE_SOURCE_<CODE>, <CODE>_API_KEY, <CODE>_API_SECRET).
type Settings struct {
	Enabled   bool
	APIKey    string
	APISecret string
}

// Deps are the shared resilience singletons every adapter's client uses.
type Deps struct {
	Breakers *upstream.BreakerRegistry
	Gate     *upstream.RateGate
	Cache    *upstream.ResponseCache

	// PerUFTimeout is the normal adaptive base (PNCP_TIMEOUT_PER_UF).
	PerUFTimeout time.Duration
}

// Registry holds the constructed adapters plus the last-resort fallback.
type Registry struct {
	adapters map[string]Adapter
	fallback Adapter
}

// BuildRegistry constructs every configured adapter, gating availability:
// an adapter is available only when enabled AND (no credential required OR
// credential present). Mis-configured credentialed sources are skipped
// outright so they never produce phantom timeout attempts.
func BuildRegistry(settings map[string]Settings, deps Deps) *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}

	newClient := func(meta models.SourceMetadata, headers map[string]string) *upstream.Client {
		return upstream.NewClient(upstream.Config{
			Upstream: meta.Code,
			BaseURL:  meta.BaseURL,
			Headers:  headers,
			RateRPS:  meta.RateLimitRPS,
		}, deps.Breakers, deps.Gate, deps.Cache)
	}

	if s := settings[CodePNCP]; s.Enabled {
		a := NewPNCPAdapter(nil, deps.PerUFTimeout)
		a.client = newClient(a.meta, nil)
		r.adapters[CodePNCP] = a
	}

	if s := settings[CodeComprasGov]; s.Enabled {
		a := NewComprasGovAdapter(nil)
		a.client = newClient(a.meta, nil)
		r.adapters[CodeComprasGov] = a
	}

	if s := settings[CodePortalCompras]; s.Enabled {
		if s.APIKey == "" {
			slog.Warn("Source enabled but credential missing, skipping", "source", CodePortalCompras)
		} else {
			a := NewPortalComprasAdapter(nil)
			a.client = newClient(a.meta, map[string]string{
				"X-API-KEY":    s.APIKey,
				"X-API-SECRET": s.APISecret,
			})
			r.adapters[CodePortalCompras] = a
		}
	}

	fb := NewFallbackAdapter(nil)
	fb.client = newClient(fb.meta, nil)
	r.fallback = fb

	codes := make([]string, 0, len(r.adapters))
	for code := range r.adapters {
		codes = append(codes, code)
	}
	slog.Info("Source registry built", "available", codes, "fallback", CodePNCPConsulta)

	return r
}

// Adapters returns the available adapters keyed by source code.
func (r *Registry) Adapters() map[string]Adapter { return r.adapters }

// Fallback returns the last-resort adapter.
func (r *Registry) Fallback() Adapter { return r.fallback }

// Close releases every adapter.
func (r *Registry) Close() {
	for code, a := range r.adapters {
		if err := a.Close(); err != nil {
			slog.Warn("Adapter close failed", "source", code, "error", err)
		}
	}
	if r.fallback != nil {
		_ = r.fallback.Close()
	}
}
