package upstream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeoutManager_BaseWithoutSamples(t *testing.T) {
	m := NewTimeoutManager("pncp", 90*time.Second)
	assert.Equal(t, 90*time.Second, m.EffectiveTimeout("SP"))
}

func TestTimeoutManager_P95Scaling(t *testing.T) {
	m := NewTimeoutManager("pncp", 90*time.Second)
	for i := 0; i < 20; i++ {
		m.Record("SP", 40*time.Second, true)
	}

	// P95 ≈ 40s → ×1.5 = 60s.
	eff := m.EffectiveTimeout("SP")
	assert.InDelta(t, float64(60*time.Second), float64(eff), float64(2*time.Second))
}

func TestTimeoutManager_Clamped(t *testing.T) {
	m := NewTimeoutManager("pncp", 90*time.Second)

	for i := 0; i < 10; i++ {
		m.Record("AC", time.Second, true)
	}
	assert.Equal(t, TimeoutFloor, m.EffectiveTimeout("AC"), "fast UFs clamp to the floor")

	for i := 0; i < 10; i++ {
		m.Record("AM", 10*time.Minute, false)
	}
	assert.Equal(t, TimeoutCeiling, m.EffectiveTimeout("AM"), "slow UFs clamp to the ceiling")
}

func TestTimeoutManager_UnhealthyAdvisory(t *testing.T) {
	m := NewTimeoutManager("pncp", 90*time.Second)

	for i := 0; i < 10; i++ {
		m.Record("RJ", time.Second, i%2 == 0) // 50% success
	}
	assert.True(t, m.Unhealthy("RJ"))

	for i := 0; i < 50; i++ {
		m.Record("RJ", time.Second, true)
	}
	assert.False(t, m.Unhealthy("RJ"), "sustained successes clear the flag")

	assert.False(t, m.Unhealthy("XX"), "unknown UF is healthy")
}

func TestHealthRegistry_Transitions(t *testing.T) {
	r := NewHealthRegistry()
	assert.Equal(t, StatusHealthy, r.Status("pncp"))

	r.RecordFailure("pncp")
	r.RecordFailure("pncp")
	assert.Equal(t, StatusHealthy, r.Status("pncp"), "two failures are not enough")

	r.RecordFailure("pncp")
	assert.Equal(t, StatusDegraded, r.Status("pncp"))

	r.RecordFailure("pncp")
	r.RecordFailure("pncp")
	assert.Equal(t, StatusDown, r.Status("pncp"))

	r.RecordSuccess("pncp")
	assert.Equal(t, StatusHealthy, r.Status("pncp"))
}

func TestRateGate_EnforcesInterval(t *testing.T) {
	g := NewRateGate()
	g.SetRate("slow", 10) // 100ms interval

	ctx := t.Context()
	start := time.Now()
	for i := 0; i < 3; i++ {
		assert.NoError(t, g.Wait(ctx, "slow"))
	}
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
}

func TestRateGate_NoLimitNoDelay(t *testing.T) {
	g := NewRateGate()
	start := time.Now()
	for i := 0; i < 100; i++ {
		assert.NoError(t, g.Wait(t.Context(), "free"))
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}
