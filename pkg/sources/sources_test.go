package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/upstream"
)

func pncpRecord(id, uf string) map[string]any {
	return map[string]any{
		"numeroControlePNCP": id,
		"objetoCompra":       "Aquisição de uniformes escolares",
		"valorTotalEstimado": 150000.0,
		"numeroCompra":       "90/2026",
		"anoCompra":          2026.0,
		"modalidadeId":       6.0,
		"situacaoCompraNome": "Divulgada no PNCP",
		"dataPublicacaoPncp": "2026-08-01T10:00:00",
		"orgaoEntidade": map[string]any{
			"razaoSocial": "Prefeitura Municipal",
			"cnpj":        "00.000.000/0001-00",
		},
		"unidadeOrgao": map[string]any{
			"ufSigla":       uf,
			"municipioNome": "São Paulo",
		},
	}
}

func newPNCPTestAdapter(t *testing.T, handler http.HandlerFunc) *PNCPAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := NewPNCPAdapter(nil, 90*time.Second)
	a.client = upstream.NewClient(upstream.Config{
		Upstream:    CodePNCP,
		BaseURL:     srv.URL,
		MaxAttempts: 1,
		Timeout:     2 * time.Second,
	}, nil, nil, nil)
	return a
}

func TestPNCPAdapter_FetchNormalizes(t *testing.T) {
	a := newPNCPTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":             []any{pncpRecord("pncp-1", "sp")},
			"totalPaginas":     1.0,
			"paginasRestantes": 0.0,
		})
	})

	stream, err := a.Fetch(context.Background(), FetchParams{
		DataInicial: time.Now().AddDate(0, 0, -7),
		DataFinal:   time.Now(),
		UFs:         []string{"SP"},
	})
	require.NoError(t, err)

	recs, err := Collect(context.Background(), stream)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, "pncp-1", rec.SourceID)
	assert.Equal(t, CodePNCP, rec.SourceName)
	assert.Equal(t, "SP", rec.UF)
	assert.Equal(t, "00000000000100:90/2026:2026", rec.DedupKey)
	assert.NotNil(t, rec.DataPublicacao)
}

func TestPNCPAdapter_SuppressesDuplicateSourceIDs(t *testing.T) {
	a := newPNCPTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []any{
				pncpRecord("dup-1", "SP"),
				pncpRecord("dup-1", "SP"),
				pncpRecord("dup-2", "SP"),
			},
			"paginasRestantes": 0.0,
		})
	})

	stream, err := a.Fetch(context.Background(), FetchParams{UFs: []string{"SP"}})
	require.NoError(t, err)

	recs, err := Collect(context.Background(), stream)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestPNCPAdapter_PageCap(t *testing.T) {
	pages := 0
	a := newPNCPTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		pages++
		// Always claims more pages: the cap must stop the walk.
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":             []any{pncpRecord(fmt.Sprintf("r-%d", pages), "SP")},
			"paginasRestantes": 1.0,
		})
	})

	stream, err := a.Fetch(context.Background(), FetchParams{UFs: []string{"SP"}})
	require.NoError(t, err)

	_, err = Collect(context.Background(), stream)
	require.NoError(t, err)
	assert.Equal(t, MaxPages, pages)
}

func TestPNCPAdapter_SkipsFailingUF(t *testing.T) {
	a := newPNCPTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("uf") == "RJ" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":             []any{pncpRecord("ok-"+r.URL.Query().Get("uf"), r.URL.Query().Get("uf"))},
			"paginasRestantes": 0.0,
		})
	})

	stream, err := a.Fetch(context.Background(), FetchParams{UFs: []string{"RJ", "SP"}})
	require.NoError(t, err)

	recs, err := Collect(context.Background(), stream)
	require.NoError(t, err, "one healthy UF is enough for a clean stream")
	require.Len(t, recs, 1)
	assert.Equal(t, "SP", recs[0].UF)
}

func TestPNCPAdapter_ReportsUFCompletions(t *testing.T) {
	a := newPNCPTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		uf := r.URL.Query().Get("uf")
		if uf == "RJ" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []any{
				pncpRecord("ok-"+uf+"-1", uf),
				pncpRecord("ok-"+uf+"-2", uf),
			},
			"paginasRestantes": 0.0,
		})
	})

	var mu sync.Mutex
	counts := map[string]int{}
	stream, err := a.Fetch(context.Background(), FetchParams{
		UFs: []string{"SP", "RJ", "MG"},
		OnUFComplete: func(source, uf string, count int) {
			assert.Equal(t, CodePNCP, source)
			mu.Lock()
			counts[uf] = count
			mu.Unlock()
		},
	})
	require.NoError(t, err)

	_, err = Collect(context.Background(), stream)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[string]int{"SP": 2, "MG": 2}, counts,
		"each healthy UF reports once with its record count; a failed UF reports nothing")
}

func TestComprasGovAdapter_ClientSideUFFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"resultado": []any{
				map[string]any{"idContratacao": "c1", "objeto": "Obra viária", "uf": "SP", "cnpjOrgao": "1"},
				map[string]any{"idContratacao": "c2", "objeto": "Obra viária", "uf": "MG", "cnpjOrgao": "2"},
			},
		})
	}))
	t.Cleanup(srv.Close)

	a := NewComprasGovAdapter(upstream.NewClient(upstream.Config{
		Upstream: CodeComprasGov, BaseURL: srv.URL, MaxAttempts: 1,
	}, nil, nil, nil))

	stream, err := a.Fetch(context.Background(), FetchParams{UFs: []string{"MG"}})
	require.NoError(t, err)

	recs, err := Collect(context.Background(), stream)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "MG", recs[0].UF)
}

func TestParseTime_Formats(t *testing.T) {
	tests := []string{
		"2026-08-01T10:00:00Z",
		"2026-08-01T10:00:00.123Z",
		"2026-08-01T10:00:00",
		"2026-08-01",
		"01/08/2026",
		"01/08/2026 10:00",
		"01/08/2026 10:00:00",
	}
	for _, s := range tests {
		assert.NotNil(t, ParseTime(s), s)
	}
	assert.Nil(t, ParseTime(""))
	assert.Nil(t, ParseTime("amanhã"))
}

func TestRawNum_BrazilianDecimal(t *testing.T) {
	r := raw{"valor": "1.234.567,89"}
	assert.InDelta(t, 1234567.89, r.num("valor"), 0.001)
}

func TestBuildRegistry_AvailabilityGating(t *testing.T) {
	deps := Deps{PerUFTimeout: 90 * time.Second}

	r := BuildRegistry(map[string]Settings{
		CodePNCP:          {Enabled: true},
		CodeComprasGov:    {Enabled: false},
		CodePortalCompras: {Enabled: true}, // no credential
	}, deps)

	adapters := r.Adapters()
	assert.Contains(t, adapters, CodePNCP)
	assert.NotContains(t, adapters, CodeComprasGov, "disabled source must be absent")
	assert.NotContains(t, adapters, CodePortalCompras, "credentialed source without key must be absent")
	assert.NotNil(t, r.Fallback())
}

func TestHealthCheck_NeverExceedsBudget(t *testing.T) {
	a := newPNCPTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Second)
	})

	start := time.Now()
	health := a.HealthCheck(context.Background())
	assert.Equal(t, models.SourceUnavailable, health)
	assert.Less(t, time.Since(start), 6*time.Second)
}

func TestRecordStream_CloseStopsProducer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stream := newRecordStream(cancel)

	go func() {
		defer stream.finish()
		for i := 0; ; i++ {
			rec, _ := models.NewUnifiedProcurement(models.UnifiedProcurement{
				SourceID:   fmt.Sprintf("r-%d", i),
				SourceName: "test",
			})
			if !stream.emit(ctx, rec) {
				return
			}
		}
	}()

	_, err := stream.Next(context.Background())
	require.NoError(t, err)
	stream.Close()

	// The producer observes cancellation and finishes.
	assert.Eventually(t, func() bool {
		select {
		case <-stream.doneCh:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
