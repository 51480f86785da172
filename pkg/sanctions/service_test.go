package sanctions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/upstream"
)

func ceisItem(endDate string) map[string]any {
	item := map[string]any{
		"sancionado": map[string]any{
			"nome":            "Empresa Sancionada LTDA",
			"codigoFormatado": "11.111.111/0001-11",
		},
		"tipoSancao": map[string]any{
			"descricaoResumida": "Impedimento",
		},
		"orgaoSancionador": map[string]any{"nome": "CGU"},
		"dataInicioSancao": "2024-01-01",
		"fundamentacao":    []any{map[string]any{"descricao": "Lei 14.133/2021"}},
	}
	if endDate != "" {
		item["dataFimSancao"] = endDate
	}
	return item
}

func registryServer(t *testing.T, ceis, cnep []any, cnepStatus int) Clients {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api-de-dados/ceis":
			_ = json.NewEncoder(w).Encode(ceis)
		case "/api-de-dados/cnep":
			if cnepStatus != 0 {
				w.WriteHeader(cnepStatus)
				return
			}
			_ = json.NewEncoder(w).Encode(cnep)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	newClient := func(label string) *upstream.Client {
		return upstream.NewClient(upstream.Config{
			Upstream: label, BaseURL: srv.URL, MaxAttempts: 1, Timeout: 2 * time.Second,
		}, nil, nil, nil)
	}
	return Clients{CEIS: newClient("ceis"), CNEP: newClient("cnep")}
}

func TestCheckSanctions_ActiveSanction(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	s := NewService(registryServer(t, []any{ceisItem(future)}, []any{}, 0))

	result, err := s.CheckSanctions(context.Background(), "11.111.111/0001-11")
	require.NoError(t, err)

	assert.True(t, result.IsSanctioned)
	assert.Equal(t, 1, result.ActiveCount)
	assert.False(t, result.Unavailable)
	require.Len(t, result.Records, 1)
	assert.Equal(t, models.SanctionCEIS, result.Records[0].Database)
	assert.Equal(t, "11111111000111", result.Records[0].CNPJ)
	assert.Equal(t, "Lei 14.133/2021", result.Records[0].LegalBasis)
}

func TestCheckSanctions_ExpiredSanctionIsClean(t *testing.T) {
	s := NewService(registryServer(t, []any{ceisItem("2020-01-01")}, []any{}, 0))

	result, err := s.CheckSanctions(context.Background(), "11111111000111")
	require.NoError(t, err)

	assert.False(t, result.IsSanctioned)
	assert.Equal(t, 0, result.ActiveCount)
	assert.Equal(t, 1, result.TotalCount)
}

func TestCheckSanctions_OpenEndDateIsActive(t *testing.T) {
	s := NewService(registryServer(t, []any{ceisItem("")}, []any{}, 0))

	result, err := s.CheckSanctions(context.Background(), "11111111000111")
	require.NoError(t, err)
	assert.True(t, result.IsSanctioned)
}

func TestCheckSanctions_CNEPFineParsed(t *testing.T) {
	cnep := []any{map[string]any{
		"sancionado": map[string]any{
			"nome":            "Multada SA",
			"codigoFormatado": "22.222.222/0001-22",
		},
		"tipoSancao": map[string]any{"descricaoResumida": "Multa"},
		"valorMulta": "1.500.000,50",
	}}
	s := NewService(registryServer(t, []any{}, cnep, 0))

	result, err := s.CheckSanctions(context.Background(), "22222222000122")
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	require.NotNil(t, result.Records[0].FineAmount)
	assert.InDelta(t, 1_500_000.50, *result.Records[0].FineAmount, 0.001)
}

func TestCheckSanctions_OneRegistryDownStillAnswers(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	s := NewService(registryServer(t, []any{ceisItem(future)}, nil, http.StatusServiceUnavailable))

	result, err := s.CheckSanctions(context.Background(), "11111111000111")
	require.NoError(t, err)

	assert.False(t, result.Unavailable)
	assert.True(t, result.IsSanctioned)
}

func TestCheckSanctions_BothRegistriesDownFailsOpen(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client := upstream.NewClient(upstream.Config{
		Upstream: "sanctions", BaseURL: srv.URL, MaxAttempts: 1,
	}, nil, nil, nil)
	s := NewService(Clients{CEIS: client, CNEP: client})

	result, err := s.CheckSanctions(context.Background(), "11111111000111")
	require.NoError(t, err)

	assert.True(t, result.Unavailable)
	assert.False(t, result.IsSanctioned)
	assert.Equal(t, 0, s.CacheSize(), "unavailable results are not cached")
}

func TestCheckSanctions_CacheHit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode([]any{})
	}))
	t.Cleanup(srv.Close)

	client := upstream.NewClient(upstream.Config{
		Upstream: "sanctions", BaseURL: srv.URL, MaxAttempts: 1,
	}, nil, nil, nil)
	s := NewService(Clients{CEIS: client, CNEP: client})

	first, err := s.CheckSanctions(context.Background(), "11111111000111")
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := s.CheckSanctions(context.Background(), "11111111000111")
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, 2, calls, "two registries hit once each")
}

func TestCheckSanctions_PageWalk(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api-de-dados/ceis" {
			_ = json.NewEncoder(w).Encode([]any{})
			return
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("pagina"))
		if page > 2 {
			_ = json.NewEncoder(w).Encode([]any{})
			return
		}
		// Two full pages of records.
		items := make([]any, pageSize)
		for i := range items {
			items[i] = ceisItem(future)
		}
		_ = json.NewEncoder(w).Encode(items)
	}))
	t.Cleanup(srv.Close)

	client := upstream.NewClient(upstream.Config{
		Upstream: "ceis", BaseURL: srv.URL, MaxAttempts: 1,
	}, nil, nil, nil)
	s := NewService(Clients{CEIS: client})

	result, err := s.CheckSanctions(context.Background(), "11111111000111")
	require.NoError(t, err)
	assert.Equal(t, 2*pageSize, result.TotalCount)
}

func TestSummary_TriState(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	s := NewService(registryServer(t, []any{ceisItem(future)}, []any{}, 0))

	summary, err := s.Summary(context.Background(), "11111111000111")
	require.NoError(t, err)
	assert.Equal(t, models.SanctionsSanctioned, summary.Status)
	assert.Equal(t, []string{"Impedimento"}, summary.SanctionTypes)

	clean := NewService(registryServer(t, []any{}, []any{}, 0))
	summary, err = clean.Summary(context.Background(), "33333333000133")
	require.NoError(t, err)
	assert.Equal(t, models.SanctionsClean, summary.Status)
}
