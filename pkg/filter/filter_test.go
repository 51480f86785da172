package filter

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/arbiter"
	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/sectors"
)

type fakeOracle struct {
	verdict bool
	calls   []arbiter.Request
}

func (f *fakeOracle) Decide(_ context.Context, req arbiter.Request) bool {
	f.calls = append(f.calls, req)
	return f.verdict
}

type fakeSanctions struct {
	sanctioned  map[string]bool
	unavailable bool
}

func (f *fakeSanctions) CheckSanctions(_ context.Context, cnpj string) (*models.SanctionsResult, error) {
	if f.unavailable {
		return &models.SanctionsResult{CNPJ: cnpj, Unavailable: true}, nil
	}
	return &models.SanctionsResult{
		CNPJ:         cnpj,
		IsSanctioned: f.sanctioned[cnpj],
		ActiveCount:  1,
	}, nil
}

func bid(t *testing.T, objeto string, valor float64) *models.UnifiedProcurement {
	t.Helper()
	r, err := models.NewUnifiedProcurement(models.UnifiedProcurement{
		SourceID:      fmt.Sprintf("id-%d", len(objeto)+int(valor)),
		SourceName:    "pncp",
		Objeto:        objeto,
		ValorEstimado: valor,
		UF:            "SP",
	})
	require.NoError(t, err)
	return r
}

func vestuario(t *testing.T) *sectors.Sector {
	t.Helper()
	reg, err := sectors.Load("")
	require.NoError(t, err)
	s, ok := reg.Get("vestuario")
	require.True(t, ok)
	return s
}

// pad appends filler tokens free of sector keywords until the object reaches
// the wanted token count.
func pad(objeto string, tokens int) string {
	words := strings.Fields(objeto)
	for i := len(words); i < tokens; i++ {
		words = append(words, fmt.Sprintf("item%d", i))
	}
	return strings.Join(words, " ")
}

func TestApply_UncertainZoneRejection(t *testing.T) {
	// One keyword hit in a 50-token object: 2% density, the conservative
	// band. The oracle says NAO and the bid is dropped.
	objeto := pad("MELHORIAS URBANAS incluindo uniformes para agentes de transito", 50)
	oracle := &fakeOracle{verdict: false}
	e := NewEngine(oracle, nil)

	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{bid(t, objeto, 47_600_000)}, Config{
		Sector: vestuario(t),
	})
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.Equal(t, 1, stats.LLMRejected)
	require.Len(t, oracle.calls, 1)
	assert.Equal(t, arbiter.ModePrimaryMatch, oracle.calls[0].Mode)
	assert.Equal(t, arbiter.LevelConservative, oracle.calls[0].PromptLevel)
}

func TestApply_HighDensityAcceptedWithoutOracle(t *testing.T) {
	oracle := &fakeOracle{verdict: false}
	e := NewEngine(oracle, nil)

	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{
		bid(t, "Uniformes escolares diversos para rede municipal de ensino", 3_000_000),
	}, Config{Sector: vestuario(t)})
	require.NoError(t, err)

	assert.Len(t, out, 1)
	assert.Empty(t, oracle.calls, "density above the uncertain zone never consults the oracle")
	assert.Equal(t, 0, stats.LLMApproved+stats.LLMRejected)
}

func TestApply_StandardPromptBand(t *testing.T) {
	// Two keyword occurrences in 40 tokens: 5% density, the standard band.
	objeto := pad("Aquisicao de uniformes e jaleco para servidores", 40)
	oracle := &fakeOracle{verdict: true}
	e := NewEngine(oracle, nil)

	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{bid(t, objeto, 100_000)}, Config{
		Sector: vestuario(t),
	})
	require.NoError(t, err)

	assert.Len(t, out, 1)
	assert.Equal(t, 1, stats.LLMApproved)
	require.Len(t, oracle.calls, 1)
	assert.Equal(t, arbiter.LevelStandard, oracle.calls[0].PromptLevel)
}

func TestApply_AccentInsensitiveWordBoundary(t *testing.T) {
	e := NewEngine(nil, nil)
	sector := &sectors.Sector{ID: "s", Name: "S", Keywords: []string{"vestuário"}}

	out, _, err := e.Apply(context.Background(), []*models.UnifiedProcurement{
		bid(t, "Pecas de VESTUARIO profissional", 1000),
	}, Config{Sector: sector})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	// "uniformemente" must not match "uniforme" (word boundary).
	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{
		bid(t, "Distribuir recursos uniformemente entre escolas", 1000),
	}, Config{Sector: &sectors.Sector{ID: "s", Name: "S", Keywords: []string{"uniforme"}}})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 1, stats.RejectedKeyword)
}

func TestApply_SynonymAutoRecovery(t *testing.T) {
	sector := &sectors.Sector{
		ID: "s", Name: "Vestuário", Keywords: []string{"uniforme", "jaleco"},
		Synonyms: map[string][]string{
			"uniforme": {"farda"},
			"jaleco":   {"bata"},
		},
	}
	e := NewEngine(&fakeOracle{verdict: false}, nil)

	// "fardas" and "batas" are fuzzy matches of two distinct canonicals.
	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{
		bid(t, "Aquisicao de fardas e batas hospitalares", 50_000),
	}, Config{Sector: sector})
	require.NoError(t, err)

	assert.Len(t, out, 1)
	assert.Equal(t, 1, stats.SynonymRecovered)
}

func TestApply_SingleSynonymGoesToRecoveryOracle(t *testing.T) {
	sector := &sectors.Sector{
		ID: "s", Name: "Vestuário", Keywords: []string{"uniforme"},
		Synonyms: map[string][]string{"uniforme": {"farda"}},
	}
	oracle := &fakeOracle{verdict: true}
	e := NewEngine(oracle, nil)

	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{
		bid(t, "Aquisicao de fardas militares", 50_000),
	}, Config{Sector: sector})
	require.NoError(t, err)

	assert.Len(t, out, 1)
	assert.Equal(t, 1, stats.LLMApproved)
	require.Len(t, oracle.calls, 1)
	assert.Equal(t, arbiter.ModeRecovery, oracle.calls[0].Mode)
}

func TestApply_ExcludedBidOnlyRecoverableByOracle(t *testing.T) {
	sector := &sectors.Sector{
		ID: "s", Name: "Vestuário", Keywords: []string{"uniforme"},
		Exclusions: []string{"melhorias urbanas"},
		Synonyms:   map[string][]string{"uniforme": {"farda"}, "jaleco": {"bata"}},
	}
	objeto := "Melhorias urbanas com fardas e batas para agentes"

	// Oracle rejects: the excluded bid stays out even with two synonym hits.
	e := NewEngine(&fakeOracle{verdict: false}, nil)
	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{bid(t, objeto, 1000)}, Config{Sector: sector})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 1, stats.LLMRejected)
	assert.Equal(t, 0, stats.SynonymRecovered)

	// Oracle approves: explicit re-approval is the only way back in.
	e = NewEngine(&fakeOracle{verdict: true}, nil)
	out, stats, err = e.Apply(context.Background(), []*models.UnifiedProcurement{bid(t, objeto, 1000)}, Config{Sector: sector})
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, 1, stats.LLMApproved)
}

func TestApply_DeadlineOpenOnly(t *testing.T) {
	e := NewEngine(nil, nil)
	now := time.Now()
	past, future := now.Add(-24*time.Hour), now.Add(24*time.Hour)

	closed := bid(t, "Uniformes escolares encerrado", 1000)
	closed.DataEncerramento = &past
	open := bid(t, "Uniformes escolares aberto", 1000)
	open.DataEncerramento = &future
	unknown := bid(t, "Uniformes escolares sem data", 1000)

	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{closed, open, unknown}, Config{
		Sector: vestuario(t),
		Modo:   models.ModeOpenOnly,
	})
	require.NoError(t, err)

	assert.Len(t, out, 2, "missing dates are conservatively kept")
	assert.Equal(t, 1, stats.RejectedPrazo)
}

func TestApply_SanctionsLayer(t *testing.T) {
	clean := bid(t, "Uniformes escolares municipio A", 1000)
	clean.CNPJOrgao = "00000000000100"
	dirty := bid(t, "Uniformes escolares municipio B", 2000)
	dirty.CNPJOrgao = "11111111000111"

	e := NewEngine(nil, &fakeSanctions{sanctioned: map[string]bool{"11111111000111": true}})
	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{clean, dirty}, Config{
		Sector:         vestuario(t),
		CheckSanctions: true,
	})
	require.NoError(t, err)

	assert.Len(t, out, 1)
	assert.Equal(t, "00000000000100", out[0].CNPJOrgao)
	assert.Equal(t, 1, stats.SanctionsDropped)
}

func TestApply_SanctionsUnavailableFailsOpen(t *testing.T) {
	b := bid(t, "Uniformes escolares", 1000)
	b.CNPJOrgao = "00000000000100"

	e := NewEngine(nil, &fakeSanctions{unavailable: true})
	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{b}, Config{
		Sector:         vestuario(t),
		CheckSanctions: true,
	})
	require.NoError(t, err)

	assert.Len(t, out, 1)
	assert.Equal(t, 0, stats.SanctionsDropped)
}

func TestApply_ZeroResultRelaxation(t *testing.T) {
	min := 1_000_000.0
	e := NewEngine(nil, nil)

	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{
		bid(t, "Uniformes escolares para rede municipal", 50_000),
	}, Config{
		Sector:          &sectors.Sector{ID: "s", Name: "S", Keywords: []string{"uniformes"}},
		ValorMin:        &min,
		AllowRelaxation: true,
	})
	require.NoError(t, err)

	assert.Len(t, out, 1)
	assert.Contains(t, stats.RelaxationsApplied, "value_range")
}

func TestApply_RelaxationResetsLayerCounters(t *testing.T) {
	e := NewEngine(nil, nil)

	wrongMod := bid(t, "Uniformes escolares para rede municipal", 50_000)
	wrongMod.Modalidade = 8

	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{wrongMod}, Config{
		Sector:          &sectors.Sector{ID: "s", Name: "S", Keywords: []string{"uniformes"}},
		Modalidades:     []int{6},
		AllowRelaxation: true,
	})
	require.NoError(t, err)

	assert.Len(t, out, 1)
	assert.Contains(t, stats.RelaxationsApplied, "modality")
	assert.Equal(t, 0, stats.RejectedModalidade,
		"counters reflect the final pass, not the sum over relaxation re-runs")
	assert.Equal(t, 1, stats.TotalInput)
}

func TestApply_HiddenByMinMatch(t *testing.T) {
	e := NewEngine(nil, nil)
	sector := &sectors.Sector{ID: "s", Name: "S", Keywords: []string{"uniforme", "jaleco", "avental"}}

	_, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{
		bid(t, "Aquisicao de uniforme para servidores da guarda municipal em geral", 1000),
	}, Config{Sector: sector, MinMatch: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.HiddenByMinMatch)
}

func TestApply_StructuralFilters(t *testing.T) {
	e := NewEngine(nil, nil)

	sp := bid(t, "Uniformes escolares SP", 1000)
	mg := bid(t, "Uniformes escolares MG", 1000)
	mg.UF = "MG"
	wrongMod := bid(t, "Uniformes escolares modalidade", 1000)
	wrongMod.Modalidade = 8

	out, stats, err := e.Apply(context.Background(), []*models.UnifiedProcurement{sp, mg, wrongMod}, Config{
		UFs:         []string{"sp"},
		Modalidades: []int{6},
		Sector:      vestuario(t),
	})
	require.NoError(t, err)

	assert.Len(t, out, 1)
	assert.Equal(t, 1, stats.RejectedUF)
	assert.Equal(t, 1, stats.RejectedModalidade)
}

func TestOrder_RelevanceAndNullsLast(t *testing.T) {
	e := NewEngine(nil, nil)
	sector := &sectors.Sector{ID: "s", Name: "S", Keywords: []string{"uniforme", "jaleco"}}

	both := bid(t, "Uniforme e jaleco hospitalar", 1000)
	one := bid(t, "Uniforme escolar basico", 1000)
	pub := time.Now()
	one.DataPublicacao = &pub

	out, _, err := e.Apply(context.Background(), []*models.UnifiedProcurement{one, both}, Config{
		Sector:   sector,
		Ordering: models.OrderRelevance,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, both.SourceID, out[0].SourceID, "two canonical hits outrank one")

	// Ascending value with unknown (zero) values last.
	known := bid(t, "Uniforme com valor", 500)
	unknown := bid(t, "Uniforme sem valor", 0)
	out, _, err = e.Apply(context.Background(), []*models.UnifiedProcurement{unknown, known}, Config{
		Sector:   sector,
		Ordering: models.OrderValueAsc,
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, known.SourceID, out[0].SourceID)
}
