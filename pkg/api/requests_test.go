package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBuscar() BuscarRequest {
	return BuscarRequest{
		SearchID:    "search-1",
		Ufs:         []string{"SP", "RJ"},
		DataInicial: "2026-08-01",
		DataFinal:   "2026-08-20",
		SetorID:     "vestuario",
	}
}

func TestBuscarRequest_Validate(t *testing.T) {
	valor := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		mutate  func(r *BuscarRequest)
		wantErr string
	}{
		{"valid sector search", func(r *BuscarRequest) {}, ""},
		{
			"valid custom terms",
			func(r *BuscarRequest) { r.SetorID = ""; r.TermosBusca = []string{"uniforme escolar"} },
			"",
		},
		{
			"missing ufs",
			func(r *BuscarRequest) { r.Ufs = nil },
			"Ufs",
		},
		{
			"malformed uf",
			func(r *BuscarRequest) { r.Ufs = []string{"SAO"} },
			"Ufs",
		},
		{
			"neither sector nor terms",
			func(r *BuscarRequest) { r.SetorID = "" },
			"setor_id ou termos_busca",
		},
		{
			"both sector and terms",
			func(r *BuscarRequest) { r.TermosBusca = []string{"algo"} },
			"mutuamente exclusivos",
		},
		{
			"bad data_inicial",
			func(r *BuscarRequest) { r.DataInicial = "20/08/2026" },
			"data_inicial inválida",
		},
		{
			"inverted date range",
			func(r *BuscarRequest) { r.DataInicial = "2026-08-21"; r.DataFinal = "2026-08-20" },
			"data_final anterior",
		},
		{
			"inverted value range",
			func(r *BuscarRequest) { r.ValorMinimo = valor(100); r.ValorMaximo = valor(50) },
			"valor_maximo menor",
		},
		{
			"invalid modo_busca",
			func(r *BuscarRequest) { r.ModoBusca = "fechadas" },
			"ModoBusca",
		},
		{
			"searchable modalidades pass",
			func(r *BuscarRequest) { r.Modalidades = []int{6, 8} },
			"",
		},
		{
			"inexigibilidade rejected",
			func(r *BuscarRequest) { r.Modalidades = []int{9, 14} },
			"modalidade 9 (Inexigibilidade) não é pesquisável",
		},
		{
			"inaplicabilidade rejected",
			func(r *BuscarRequest) { r.Modalidades = []int{6, 14} },
			"modalidade 14 (Inaplicabilidade) não é pesquisável",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBuscar()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuscarRequest_DateRange(t *testing.T) {
	req := validBuscar()
	require.NoError(t, req.Validate())

	inicio, fim := req.DateRange()
	assert.Equal(t, "2026-08-01", inicio.Format(dateLayout))
	assert.Equal(t, "2026-08-20", fim.Format(dateLayout))
}
