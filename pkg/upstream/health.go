package upstream

import (
	"log/slog"
	"sync"
	"time"
)

// SourceStatus is the registry's view of one logical source.
type SourceStatus string

const (
	StatusHealthy  SourceStatus = "healthy"
	StatusDegraded SourceStatus = "degraded"
	StatusDown     SourceStatus = "down"
)

const (
	degradedAfterFailures = 3
	downAfterFailures     = 5

	// healthEntryTTL reverts a stale entry to healthy: an old failure streak
	// says nothing about the source now.
	healthEntryTTL = 5 * time.Minute
)

type healthEntry struct {
	status              SourceStatus
	consecutiveFailures int
	updatedAt           time.Time
}

// HealthRegistry tracks consecutive failures per source code process-wide.
// The consolidation engine consults it to classify sources and widen
// deadlines in degraded mode.
type HealthRegistry struct {
	mu      sync.Mutex
	entries map[string]*healthEntry
}

// NewHealthRegistry creates an empty registry; unknown sources are healthy.
func NewHealthRegistry() *HealthRegistry {
	return &HealthRegistry{entries: make(map[string]*healthEntry)}
}

// RecordSuccess resets the failure counter for a source.
func (r *HealthRegistry) RecordSuccess(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(code)
	if e.status != StatusHealthy {
		slog.Info("Source recovered", "source", code, "previous_status", string(e.status))
	}
	e.status = StatusHealthy
	e.consecutiveFailures = 0
	e.updatedAt = time.Now()
}

// RecordFailure increments the failure counter and degrades the source:
// healthy → degraded at 3 consecutive failures, → down at 5.
func (r *HealthRegistry) RecordFailure(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entry(code)
	e.consecutiveFailures++
	e.updatedAt = time.Now()

	switch {
	case e.consecutiveFailures >= downAfterFailures:
		if e.status != StatusDown {
			slog.Warn("Source marked down", "source", code, "consecutive_failures", e.consecutiveFailures)
		}
		e.status = StatusDown
	case e.consecutiveFailures >= degradedAfterFailures:
		if e.status == StatusHealthy {
			slog.Warn("Source degraded", "source", code, "consecutive_failures", e.consecutiveFailures)
		}
		e.status = StatusDegraded
	}
}

// Status returns the source's current status. Entries older than the TTL
// revert to healthy.
func (r *HealthRegistry) Status(code string) SourceStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[code]
	if !ok {
		return StatusHealthy
	}
	if time.Since(e.updatedAt) > healthEntryTTL {
		delete(r.entries, code)
		return StatusHealthy
	}
	return e.status
}

// Reset drops all entries. Test isolation only.
func (r *HealthRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]*healthEntry)
}

func (r *HealthRegistry) entry(code string) *healthEntry {
	e, ok := r.entries[code]
	if !ok {
		e = &healthEntry{status: StatusHealthy}
		r.entries[code] = e
	}
	return e
}
