package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnifiedProcurement_Normalization(t *testing.T) {
	p, err := NewUnifiedProcurement(UnifiedProcurement{
		SourceID:      "pncp-123",
		SourceName:    "pncp",
		Objeto:        "  Aquisição   de\tuniformes  escolares ",
		UF:            " sp ",
		CNPJOrgao:     "00.000.000/0001-00",
		ValorEstimado: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, "Aquisição de uniformes escolares", p.Objeto)
	assert.Equal(t, "SP", p.UF)
	assert.False(t, p.FetchedAt.IsZero())
}

func TestNewUnifiedProcurement_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   UnifiedProcurement
	}{
		{"missing source_id", UnifiedProcurement{SourceName: "pncp"}},
		{"missing source_name", UnifiedProcurement{SourceID: "1"}},
		{"negative value", UnifiedProcurement{SourceID: "1", SourceName: "pncp", ValorEstimado: -1}},
		{"bad uf", UnifiedProcurement{SourceID: "1", SourceName: "pncp", UF: "SPX"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUnifiedProcurement(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestDeriveDedupKey_FromTenderNumber(t *testing.T) {
	p := &UnifiedProcurement{
		CNPJOrgao:    "00.000.000/0001-00",
		NumeroEdital: "123/2026",
		Ano:          2026,
	}
	assert.Equal(t, "00000000000100:123/2026:2026", DeriveDedupKey(p))
}

func TestDeriveDedupKey_Fallback(t *testing.T) {
	p := &UnifiedProcurement{
		CNPJOrgao:     "11.222.333/0001-44",
		Objeto:        "Serviços de limpeza urbana",
		ValorEstimado: 1500.75,
	}
	key := DeriveDedupKey(p)
	// digits(cnpj):md5[:12]:int(value)
	assert.Contains(t, key, "11222333000144:")
	assert.Contains(t, key, ":1500")

	// Deterministic: whitespace and casing differences in the object do not
	// change the key.
	p2 := &UnifiedProcurement{
		CNPJOrgao:     "11222333000144",
		Objeto:        "  SERVIÇOS  de limpeza   urbana ",
		ValorEstimado: 1500.75,
	}
	assert.Equal(t, key, DeriveDedupKey(p2))
}

func TestSearchState_Terminal(t *testing.T) {
	for _, s := range []SearchState{StateCompleted, StateFailed, StateRateLimited, StateTimedOut} {
		assert.True(t, s.IsTerminal(), string(s))
	}
	for _, s := range []SearchState{StateCreated, StateValidating, StateFetching, StateFiltering, StateEnriching, StateGenerating, StatePersisting} {
		assert.False(t, s.IsTerminal(), string(s))
	}
}

func TestSearchState_ProgressPercent(t *testing.T) {
	assert.Equal(t, 0, StateCreated.ProgressPercent())
	assert.Equal(t, 30, StateFetching.ProgressPercent())
	assert.Equal(t, 100, StateCompleted.ProgressPercent())
	assert.Equal(t, -1, StateFailed.ProgressPercent())
	assert.Equal(t, -1, StateTimedOut.ProgressPercent())
}

func TestSanctionRecord_IsActive(t *testing.T) {
	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	assert.True(t, (&SanctionRecord{}).IsActive(now), "open end date is indefinite")
	assert.True(t, (&SanctionRecord{EndDate: &future}).IsActive(now))
	assert.False(t, (&SanctionRecord{EndDate: &past}).IsActive(now))
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "00000000000100", OnlyDigits("00.000.000/0001-00"))
	assert.Equal(t, "", OnlyDigits("abc"))
}
