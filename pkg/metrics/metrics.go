// Package metrics registers the Prometheus collectors shared across the
// pipeline. Collectors are package-level (prometheus promauto idiom) so any
// component can observe without wiring.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RateLimitExceeded counts 429 responses by endpoint and scope
	// (user or ip).
	RateLimitExceeded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Requests rejected by the rate limiter.",
	}, []string{"endpoint", "scope"})

	// StateDuration observes seconds spent in each pipeline state before
	// transitioning out of it.
	StateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "search_state_duration_seconds",
		Help:    "Time spent in each search state before the next transition.",
		Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
	}, []string{"state"})

	// SourceFetch counts per-source consolidation outcomes.
	SourceFetch = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "consolidation_source_fetch_total",
		Help: "Per-source fetch outcomes during consolidation.",
	}, []string{"source", "status"})

	// ArbiterDecisions counts LLM arbiter outcomes by mode and verdict.
	ArbiterDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "llm_arbiter_decisions_total",
		Help: "LLM arbiter verdicts by mode.",
	}, []string{"mode", "verdict"})

	// SanctionsLookups counts sanctions service lookups by result.
	SanctionsLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sanctions_lookups_total",
		Help: "Sanctions service lookups by outcome (hit/miss/unavailable).",
	}, []string{"outcome"})

	// UpstreamRequests counts resilience-core attempts by upstream and result.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Upstream HTTP attempts by logical source and result kind.",
	}, []string{"upstream", "result"})

	// SearchesStarted counts searches entering the pipeline.
	SearchesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "searches_started_total",
		Help: "Searches accepted into the pipeline.",
	})

	// SearchesTerminal counts terminal outcomes.
	SearchesTerminal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "searches_terminal_total",
		Help: "Searches reaching a terminal state.",
	}, []string{"state"})
)

// Handler exposes the default registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
