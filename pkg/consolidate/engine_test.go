package consolidate

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/sources"
	"github.com/bidiq/bidiq/pkg/upstream"
)

// fakeAdapter is a scriptable in-memory source.
type fakeAdapter struct {
	meta    models.SourceMetadata
	records []*models.UnifiedProcurement
	err     error
	delay   time.Duration
	health  models.SourceHealth
}

func (f *fakeAdapter) Metadata() models.SourceMetadata { return f.meta }

func (f *fakeAdapter) HealthCheck(ctx context.Context) models.SourceHealth {
	if f.health == "" {
		return models.SourceAvailable
	}
	return f.health
}

func (f *fakeAdapter) Fetch(ctx context.Context, _ sources.FetchParams) (*sources.RecordStream, error) {
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, &upstream.Error{Upstream: f.meta.Code, Kind: upstream.KindTimeout, Err: ctx.Err()}
		case <-time.After(f.delay):
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return sources.NewStaticStream(f.records), nil
}

func (f *fakeAdapter) Close() error { return nil }

func rec(t *testing.T, source, id, dedupKey string) *models.UnifiedProcurement {
	t.Helper()
	r, err := models.NewUnifiedProcurement(models.UnifiedProcurement{
		SourceID:   id,
		SourceName: source,
		DedupKey:   dedupKey,
		Objeto:     "objeto " + id,
	})
	require.NoError(t, err)
	return r
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.PerSourceTimeout = 200 * time.Millisecond
	cfg.GlobalTimeout = 500 * time.Millisecond
	cfg.DegradedGlobalTimeout = time.Second
	cfg.FailoverPerSourceTimeout = 400 * time.Millisecond
	cfg.FallbackTimeout = 200 * time.Millisecond
	return cfg
}

func newTestEngine(t *testing.T, adapters map[string]sources.Adapter, fallback sources.Adapter, cfg Config) (*Engine, *upstream.HealthRegistry) {
	t.Helper()
	health := upstream.NewHealthRegistry()
	// Test deadlines are tiny; skip the production chain check by building
	// directly.
	return &Engine{adapters: adapters, fallback: fallback, health: health, cfg: cfg}, health
}

func TestConsolidate_PartialResult(t *testing.T) {
	primary := &fakeAdapter{
		meta:    models.SourceMetadata{Code: "pncp", Priority: 1},
		records: []*models.UnifiedProcurement{},
	}
	for i := 0; i < 10; i++ {
		primary.records = append(primary.records, rec(t, "pncp", fmt.Sprintf("p-%d", i), fmt.Sprintf("k-p-%d", i)))
	}
	secondary := &fakeAdapter{
		meta:  models.SourceMetadata{Code: "comprasgov", Priority: 2},
		delay: 10 * time.Second, // never finishes inside the per-source budget
	}
	tertiary := &fakeAdapter{
		meta: models.SourceMetadata{Code: "pcp", Priority: 3},
	}
	for i := 0; i < 5; i++ {
		tertiary.records = append(tertiary.records, rec(t, "pcp", fmt.Sprintf("t-%d", i), fmt.Sprintf("k-t-%d", i)))
	}

	cfg := testConfig()
	cfg.DominantSource = "pncp"
	engine, _ := newTestEngine(t, map[string]sources.Adapter{
		"pncp": primary, "comprasgov": secondary, "pcp": tertiary,
	}, nil, cfg)

	result, err := engine.Consolidate(context.Background(), sources.FetchParams{})
	require.NoError(t, err)

	assert.Len(t, result.Records, 15)
	assert.True(t, result.IsPartial)
	assert.Contains(t, result.DegradationReason, "comprasgov")
}

func TestConsolidate_DedupTieBreakByPriority(t *testing.T) {
	key := "00000000000100:123/2026:2026"
	a1 := &fakeAdapter{
		meta:    models.SourceMetadata{Code: "pncp", Priority: 1},
		records: []*models.UnifiedProcurement{rec(t, "pncp", "a", key)},
	}
	a2 := &fakeAdapter{
		meta:    models.SourceMetadata{Code: "comprasgov", Priority: 2},
		records: []*models.UnifiedProcurement{rec(t, "comprasgov", "b", key)},
	}

	engine, _ := newTestEngine(t, map[string]sources.Adapter{"pncp": a1, "comprasgov": a2}, nil, testConfig())

	result, err := engine.Consolidate(context.Background(), sources.FetchParams{})
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "pncp", result.Records[0].SourceName)
	assert.Equal(t, 1, result.DuplicatesDropped)
}

func TestConsolidate_AllFailedWithFallback(t *testing.T) {
	failing := &fakeAdapter{
		meta: models.SourceMetadata{Code: "pncp", Priority: 1},
		err:  errors.New("boom"),
	}
	fallback := &fakeAdapter{
		meta:    models.SourceMetadata{Code: "pncp_consulta", Priority: 9},
		records: []*models.UnifiedProcurement{rec(t, "pncp_consulta", "fb-1", "k-fb")},
	}

	engine, _ := newTestEngine(t, map[string]sources.Adapter{"pncp": failing}, fallback, testConfig())

	result, err := engine.Consolidate(context.Background(), sources.FetchParams{})
	require.NoError(t, err)

	assert.True(t, result.UsedFallback)
	assert.Len(t, result.Records, 1)
	assert.True(t, result.IsPartial, "the failed primary still marks the result partial")
}

func TestConsolidate_AllSourcesFailedError(t *testing.T) {
	failing := &fakeAdapter{
		meta: models.SourceMetadata{Code: "pncp", Priority: 1},
		err:  errors.New("boom"),
	}
	deadFallback := &fakeAdapter{
		meta: models.SourceMetadata{Code: "pncp_consulta", Priority: 9},
		err:  errors.New("also down"),
	}

	cfg := testConfig()
	cfg.FailOnAllErrors = true
	engine, _ := newTestEngine(t, map[string]sources.Adapter{"pncp": failing}, deadFallback, cfg)

	_, err := engine.Consolidate(context.Background(), sources.FetchParams{})
	var allFailed *AllSourcesFailedError
	require.ErrorAs(t, err, &allFailed)
	assert.Contains(t, allFailed.Errors, "pncp")
}

func TestConsolidate_HealthRegistryUpdated(t *testing.T) {
	ok := &fakeAdapter{
		meta:    models.SourceMetadata{Code: "pncp", Priority: 1},
		records: []*models.UnifiedProcurement{rec(t, "pncp", "x", "k-x")},
	}
	bad := &fakeAdapter{
		meta: models.SourceMetadata{Code: "comprasgov", Priority: 2},
		err:  errors.New("boom"),
	}

	engine, health := newTestEngine(t, map[string]sources.Adapter{"pncp": ok, "comprasgov": bad}, nil, testConfig())

	for i := 0; i < 3; i++ {
		_, err := engine.Consolidate(context.Background(), sources.FetchParams{})
		require.NoError(t, err)
	}

	assert.Equal(t, upstream.StatusHealthy, health.Status("pncp"))
	assert.Equal(t, upstream.StatusDegraded, health.Status("comprasgov"))
}

func TestDedup_KeylessNeverDeduped(t *testing.T) {
	engine, _ := newTestEngine(t, map[string]sources.Adapter{}, nil, testConfig())

	a := rec(t, "pncp", "a", "")
	b := rec(t, "pncp", "b", "")
	a.DedupKey, b.DedupKey = "", ""

	out, dropped := engine.Dedup([]*models.UnifiedProcurement{a, b})
	assert.Len(t, out, 2)
	assert.Equal(t, 0, dropped)
}

func TestDedup_Idempotent(t *testing.T) {
	engine, _ := newTestEngine(t, map[string]sources.Adapter{}, nil, testConfig())

	in := []*models.UnifiedProcurement{
		rec(t, "pncp", "a", "k1"),
		rec(t, "pncp", "b", "k1"),
		rec(t, "pncp", "c", "k2"),
	}
	once, dropped := engine.Dedup(in)
	assert.Equal(t, 1, dropped)

	twice, dropped2 := engine.Dedup(once)
	assert.Equal(t, 0, dropped2)
	assert.Equal(t, once, twice)
}

func TestHealthCheckAll(t *testing.T) {
	engine, _ := newTestEngine(t, map[string]sources.Adapter{
		"pncp":       &fakeAdapter{meta: models.SourceMetadata{Code: "pncp"}, health: models.SourceAvailable},
		"comprasgov": &fakeAdapter{meta: models.SourceMetadata{Code: "comprasgov"}, health: models.SourceUnavailable},
	}, nil, testConfig())

	out := engine.HealthCheckAll(context.Background())
	assert.Equal(t, models.SourceAvailable, out["pncp"])
	assert.Equal(t, models.SourceUnavailable, out["comprasgov"])
}

func TestValidateTimeoutChain(t *testing.T) {
	assert.NoError(t, ValidateTimeoutChain(DefaultConfig()))

	bad := DefaultConfig()
	bad.PerSourceTimeout = 400 * time.Second
	assert.Error(t, ValidateTimeoutChain(bad), "per-source above global must be rejected")

	inverted := DefaultConfig()
	inverted.GlobalTimeout = 500 * time.Second
	assert.Error(t, ValidateTimeoutChain(inverted), "global above pipeline budget must be rejected")
}
