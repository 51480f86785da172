// Package upstream implements the HTTP resilience core shared by every
// source adapter: retrying JSON client with backoff and jitter, cooperative
// rate gate, per-upstream circuit breaker, response cache, adaptive per-UF
// timeout manager, and the process-wide source health registry.
package upstream

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies an upstream failure. Callers branch on it; the adapter
// boundary never leaks raw transport errors.
type Kind string

const (
	KindTimeout     Kind = "timeout"
	KindRateLimited Kind = "rate_limited"
	KindAuth        Kind = "auth"
	KindAPI         Kind = "api"
	KindParse       Kind = "parse"
	KindNetwork     Kind = "network"
	KindCanceled    Kind = "canceled"
	KindCircuitOpen Kind = "circuit_open"
)

// Error is the typed failure returned by the resilience core.
type Error struct {
	Upstream string
	Kind     Kind
	Status   int
	Body     string

	// RetryAfter carries the upstream's Retry-After hint on 429.
	RetryAfter time.Duration

	Err error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s: %s (status %d)", e.Upstream, e.Kind, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: %s: %v", e.Upstream, e.Kind, e.Err)
	}
	return fmt.Sprintf("upstream %s: %s", e.Upstream, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure kind, or "" when err is not an upstream error.
func KindOf(err error) Kind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ""
}

// IsTimeout reports whether err is an upstream timeout.
func IsTimeout(err error) bool { return KindOf(err) == KindTimeout }

// IsCircuitOpen reports whether the call was short-circuited by the breaker.
func IsCircuitOpen(err error) bool { return KindOf(err) == KindCircuitOpen }
