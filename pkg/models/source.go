package models

import "time"

// SourceHealth is the coarse availability state an adapter reports from its
// health check.
type SourceHealth string

const (
	SourceAvailable   SourceHealth = "available"
	SourceDegraded    SourceHealth = "degraded"
	SourceUnavailable SourceHealth = "unavailable"
)

// Capabilities declares which filters an upstream applies server-side.
// Anything not supported server-side must be filtered client-side by the
// adapter before records leave it.
type Capabilities struct {
	FilterUF      bool `json:"filter_uf"`
	FilterValue   bool `json:"filter_value"`
	FilterKeyword bool `json:"filter_keyword"`
	Pagination    bool `json:"pagination"`
	DateRange     bool `json:"date_range"`
	RealTime      bool `json:"real_time"`
}

// SourceMetadata describes one upstream procurement API.
type SourceMetadata struct {
	Name         string       `json:"name"`
	Code         string       `json:"code"`
	BaseURL      string       `json:"base_url"`
	Capabilities Capabilities `json:"capabilities"`

	// RateLimitRPS is the cooperative requests-per-second budget the
	// resilience core derives its inter-request delay from.
	RateLimitRPS float64 `json:"rate_limit_rps"`

	// TypicalLatency is informational, surfaced in health diagnostics.
	TypicalLatency time.Duration `json:"typical_latency"`

	// Priority breaks dedup ties: the record from the numerically lowest
	// priority source wins.
	Priority int `json:"priority"`

	// RequiresCredential gates availability: a credentialed source with no
	// key configured is never attempted.
	RequiresCredential bool `json:"requires_credential"`
}
