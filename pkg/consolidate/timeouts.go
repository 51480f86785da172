package consolidate

import (
	"fmt"
	"log/slog"
	"time"
)

// The fixed outer layers of the timeout chain. The frontend proxy and the
// pipeline fetch budget sit above everything the engine controls; the
// per-UF deadlines sit below.
const (
	FEProxyTimeout       = 480 * time.Second
	PipelineFetchTimeout = 360 * time.Second
	PerUFTimeoutNormal   = 90 * time.Second
	PerUFTimeoutDegraded = 120 * time.Second
)

// ValidateTimeoutChain enforces the hierarchy
//
//	FE_proxy > pipeline_fetch > global > per_source > per_UF
//
// at startup. An inversion is an error; a per-source deadline above 80% of
// the global one logs a near-inversion warning.
func ValidateTimeoutChain(cfg Config) error {
	chain := []struct {
		name string
		d    time.Duration
	}{
		{"fe_proxy", FEProxyTimeout},
		{"pipeline_fetch", PipelineFetchTimeout},
		{"consolidation_global", cfg.GlobalTimeout},
		{"consolidation_per_source", cfg.PerSourceTimeout},
		{"per_uf_normal", PerUFTimeoutNormal},
	}
	for i := 1; i < len(chain); i++ {
		if chain[i].d >= chain[i-1].d {
			return fmt.Errorf("timeout chain inverted: %s (%s) must be below %s (%s)",
				chain[i].name, chain[i].d, chain[i-1].name, chain[i-1].d)
		}
	}

	// Degraded widening must stay inside the pipeline budget too.
	if cfg.DegradedGlobalTimeout > PipelineFetchTimeout {
		return fmt.Errorf("degraded global timeout (%s) exceeds the pipeline fetch budget (%s)",
			cfg.DegradedGlobalTimeout, PipelineFetchTimeout)
	}
	if PerUFTimeoutDegraded >= cfg.FailoverPerSourceTimeout {
		return fmt.Errorf("degraded per-UF timeout (%s) must be below the failover per-source timeout (%s)",
			PerUFTimeoutDegraded, cfg.FailoverPerSourceTimeout)
	}

	if cfg.PerSourceTimeout > cfg.GlobalTimeout*8/10 {
		slog.Warn("Timeout chain near-inversion: per-source deadline above 80% of global",
			"per_source", cfg.PerSourceTimeout, "global", cfg.GlobalTimeout)
	}

	return nil
}
