package api

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared DTO validator.
var validate = validator.New()

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// Modality codes without a competitive process. They are rejected at the
// schema boundary and never reach the filter engine.
var (
	excludedModalidades     = map[int]bool{9: true, 14: true}
	excludedModalidadeNames = map[int]string{9: "Inexigibilidade", 14: "Inaplicabilidade"}
)

// BuscarRequest is the HTTP request body for POST /v1/buscar.
type BuscarRequest struct {
	SearchID    string   `json:"search_id" validate:"omitempty,max=64"`
	Ufs         []string `json:"ufs" validate:"required,min=1,max=27,dive,len=2"`
	DataInicial string   `json:"data_inicial" validate:"required"`
	DataFinal   string   `json:"data_final" validate:"required"`

	// Exactly one of SetorID or TermosBusca drives the keyword layer.
	SetorID     string   `json:"setor_id" validate:"omitempty,max=64"`
	TermosBusca []string `json:"termos_busca" validate:"omitempty,max=50,dive,min=2,max=100"`

	Status      []string `json:"status,omitempty"`
	Modalidades []int    `json:"modalidades,omitempty"`
	ValorMinimo *float64 `json:"valor_minimo,omitempty" validate:"omitempty,gte=0"`
	ValorMaximo *float64 `json:"valor_maximo,omitempty" validate:"omitempty,gte=0"`
	Esferas     []string `json:"esferas,omitempty"`
	Municipios  []string `json:"municipios,omitempty"`
	Ordenacao   string   `json:"ordenacao,omitempty"`
	ModoBusca   string   `json:"modo_busca,omitempty" validate:"omitempty,oneof=abertas todas"`

	CheckSanctions bool `json:"check_sanctions,omitempty"`
	ForceFresh     bool `json:"force_fresh,omitempty"`
}

// Validate runs structural validation plus the cross-field rules the tag
// syntax cannot express.
func (r *BuscarRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}

	if r.SetorID == "" && len(r.TermosBusca) == 0 {
		return fmt.Errorf("informe setor_id ou termos_busca")
	}
	if r.SetorID != "" && len(r.TermosBusca) > 0 {
		return fmt.Errorf("setor_id e termos_busca são mutuamente exclusivos")
	}

	inicio, err := time.Parse(dateLayout, r.DataInicial)
	if err != nil {
		return fmt.Errorf("data_inicial inválida: use o formato AAAA-MM-DD")
	}
	fim, err := time.Parse(dateLayout, r.DataFinal)
	if err != nil {
		return fmt.Errorf("data_final inválida: use o formato AAAA-MM-DD")
	}
	if fim.Before(inicio) {
		return fmt.Errorf("data_final anterior à data_inicial")
	}
	if r.ValorMinimo != nil && r.ValorMaximo != nil && *r.ValorMaximo < *r.ValorMinimo {
		return fmt.Errorf("valor_maximo menor que valor_minimo")
	}
	for _, m := range r.Modalidades {
		if excludedModalidades[m] {
			return fmt.Errorf("modalidade %d (%s) não é pesquisável", m, excludedModalidadeNames[m])
		}
	}
	return nil
}

// DateRange returns the parsed date window. Validate must have passed.
func (r *BuscarRequest) DateRange() (time.Time, time.Time) {
	inicio, _ := time.Parse(dateLayout, r.DataInicial)
	fim, _ := time.Parse(dateLayout, r.DataFinal)
	return inicio, fim
}
