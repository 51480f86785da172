package upstream

import (
	"sort"
	"sync"
	"time"
)

const (
	// TimeoutFloor and TimeoutCeiling clamp the adaptive per-UF timeout.
	TimeoutFloor   = 30 * time.Second
	TimeoutCeiling = 180 * time.Second

	// adaptiveWindow is how many recent samples feed the P95.
	adaptiveWindow = 50

	// unhealthySuccessRate marks a UF as unhealthy (advisory only) when the
	// window success rate drops below it.
	unhealthySuccessRate = 0.70
)

type ufSample struct {
	duration time.Duration
	success  bool
}

type ufWindow struct {
	samples []ufSample
}

// TimeoutManager keeps a rolling window of response durations per UF for one
// upstream and derives the effective timeout from the observed P95. Repeated
// timeouts widen the window; sustained successes narrow it.
type TimeoutManager struct {
	mu       sync.Mutex
	upstream string
	base     time.Duration
	windows  map[string]*ufWindow
}

// NewTimeoutManager creates a manager with the given base timeout, used
// until a UF has enough samples.
func NewTimeoutManager(upstream string, base time.Duration) *TimeoutManager {
	if base <= 0 {
		base = 90 * time.Second
	}
	return &TimeoutManager{
		upstream: upstream,
		base:     base,
		windows:  make(map[string]*ufWindow),
	}
}

// Record adds one observation for a UF.
func (m *TimeoutManager) Record(uf string, duration time.Duration, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[uf]
	if !ok {
		w = &ufWindow{}
		m.windows[uf] = w
	}
	w.samples = append(w.samples, ufSample{duration: duration, success: success})
	if len(w.samples) > adaptiveWindow {
		w.samples = w.samples[len(w.samples)-adaptiveWindow:]
	}
}

// EffectiveTimeout returns clamp(P95 × 1.5, floor, ceiling) for the UF.
// With fewer than 5 samples it returns the base timeout clamped the same
// way.
func (m *TimeoutManager) EffectiveTimeout(uf string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[uf]
	if !ok || len(w.samples) < 5 {
		return clampTimeout(m.base)
	}

	durations := make([]time.Duration, len(w.samples))
	for i, s := range w.samples {
		durations[i] = s.duration
	}
	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })

	idx := (len(durations)*95 + 99) / 100
	if idx >= len(durations) {
		idx = len(durations) - 1
	}
	p95 := durations[idx]

	return clampTimeout(time.Duration(float64(p95) * 1.5))
}

// Unhealthy reports whether the UF's success rate over the window is below
// the advisory threshold. Surfaced in logs only.
func (m *TimeoutManager) Unhealthy(uf string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[uf]
	if !ok || len(w.samples) == 0 {
		return false
	}
	var ok95 int
	for _, s := range w.samples {
		if s.success {
			ok95++
		}
	}
	return float64(ok95)/float64(len(w.samples)) < unhealthySuccessRate
}

func clampTimeout(d time.Duration) time.Duration {
	if d < TimeoutFloor {
		return TimeoutFloor
	}
	if d > TimeoutCeiling {
		return TimeoutCeiling
	}
	return d
}
