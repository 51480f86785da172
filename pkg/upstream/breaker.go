package upstream

import (
	"log/slog"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

const (
	// DefaultFailureThreshold opens the breaker after this many consecutive
	// failed calls.
	DefaultFailureThreshold = 5

	// DefaultRecoveryTimeout is how long an open breaker waits before
	// letting a probe call through (half-open).
	DefaultRecoveryTimeout = 60 * time.Second
)

// BreakerRegistry holds one circuit breaker per logical upstream.
// Process-local; state is not shared between replicas.
type BreakerRegistry struct {
	mu        sync.Mutex
	breakers  map[string]*gobreaker.CircuitBreaker
	threshold uint32
	recovery  time.Duration
}

// NewBreakerRegistry creates a registry with the given failure threshold and
// recovery timeout. Zero values select the defaults.
func NewBreakerRegistry(threshold int, recovery time.Duration) *BreakerRegistry {
	if threshold <= 0 {
		threshold = DefaultFailureThreshold
	}
	if recovery <= 0 {
		recovery = DefaultRecoveryTimeout
	}
	return &BreakerRegistry{
		breakers:  make(map[string]*gobreaker.CircuitBreaker),
		threshold: uint32(threshold),
		recovery:  recovery,
	}
}

// Get returns the breaker for an upstream label, creating it on first use.
func (r *BreakerRegistry) Get(upstream string) *gobreaker.CircuitBreaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cb, ok := r.breakers[upstream]; ok {
		return cb
	}

	threshold := r.threshold
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        upstream,
		MaxRequests: 1, // single probe in half-open
		Timeout:     r.recovery,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state change",
				"upstream", name, "from", from.String(), "to", to.String())
		},
	})
	r.breakers[upstream] = cb
	return cb
}

// Reset drops all breaker state. Test isolation only; production code never
// calls this.
func (r *BreakerRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.breakers = make(map[string]*gobreaker.CircuitBreaker)
}
