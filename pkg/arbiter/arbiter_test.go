package arbiter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArbiter(t *testing.T, handler http.HandlerFunc) *Arbiter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = srv.URL + "/v1"
	return New(cfg)
}

func completionReply(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}
}

func TestDecide_SIMAndNAO(t *testing.T) {
	sim := newTestArbiter(t, completionReply("SIM"))
	assert.True(t, sim.Decide(context.Background(), Request{
		Mode: ModePrimaryMatch, PromptLevel: LevelStandard,
		SectorName: "Vestuário e Uniformes", Objeto: "Uniformes escolares",
	}))

	nao := newTestArbiter(t, completionReply("NAO"))
	assert.False(t, nao.Decide(context.Background(), Request{
		Mode: ModePrimaryMatch, PromptLevel: LevelConservative,
		SectorName: "Vestuário e Uniformes", Objeto: "Melhorias urbanas",
	}))
}

func TestDecide_UnexpectedTokenIsNAO(t *testing.T) {
	a := newTestArbiter(t, completionReply("Talvez, depende do contexto."))
	assert.False(t, a.Decide(context.Background(), Request{
		Mode: ModePrimaryMatch, SectorName: "Saúde", Objeto: "Medicamentos",
	}))
}

func TestDecide_MemoizesByRequest(t *testing.T) {
	calls := 0
	a := newTestArbiter(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		completionReply("SIM")(w, r)
	})

	req := Request{Mode: ModePrimaryMatch, SectorName: "Saúde", Objeto: "Medicamentos diversos", Valor: 1000}
	assert.True(t, a.Decide(context.Background(), req))
	assert.True(t, a.Decide(context.Background(), req))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, a.CacheSize())

	a.ClearCache()
	assert.True(t, a.Decide(context.Background(), req))
	assert.Equal(t, 2, calls)
}

func TestDecide_OracleErrorFailsSafe(t *testing.T) {
	a := newTestArbiter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	assert.False(t, a.Decide(context.Background(), Request{
		Mode: ModeRecovery, SectorName: "Saúde", Objeto: "Medicamentos",
	}))
	assert.Equal(t, 0, a.CacheSize(), "errors are not memoized")
}

func TestDecide_DisabledReturnsSafeDefault(t *testing.T) {
	a := New(Config{Enabled: false})
	assert.False(t, a.Decide(context.Background(), Request{Mode: ModePrimaryMatch}))

	noKey := New(Config{Enabled: true})
	assert.False(t, noKey.Decide(context.Background(), Request{Mode: ModeRecovery}))
}

func TestDecide_TruncatesObject(t *testing.T) {
	var seen string
	a := newTestArbiter(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		seen = body.Messages[len(body.Messages)-1].Content
		completionReply("SIM")(w, r)
	})

	a.Decide(context.Background(), Request{
		Mode:       ModePrimaryMatch,
		SectorName: "Saúde",
		Objeto:     strings.Repeat("a", 2000),
	})
	require.NotEmpty(t, seen)
	assert.NotContains(t, seen, strings.Repeat("a", MaxObjectChars+1))
}
