package sanctions

import (
	"strconv"
	"strings"
	"time"

	"github.com/bidiq/bidiq/pkg/models"
)

// parseRecord maps one raw registry item into a SanctionRecord. CEIS carries
// no fine; CNEP parses a decimal fine amount. Returns ok=false when the item
// lacks the minimum shape.
func parseRecord(db models.SanctionDatabase, item any) (models.SanctionRecord, bool) {
	m, ok := item.(map[string]any)
	if !ok {
		return models.SanctionRecord{}, false
	}

	rec := models.SanctionRecord{
		Database:        db,
		CNPJ:            models.OnlyDigits(str(child(m, "sancionado"), "codigoFormatado")),
		CompanyName:     str(child(m, "sancionado"), "nome"),
		SanctionType:    str(child(m, "tipoSancao"), "descricaoResumida"),
		SanctioningBody: str(child(m, "orgaoSancionador"), "nome"),
		StartDate:       date(m, "dataInicioSancao"),
		EndDate:         date(m, "dataFimSancao"),
	}
	if rec.CNPJ == "" {
		rec.CNPJ = models.OnlyDigits(str(child(m, "pessoa"), "cnpjFormatado"))
	}
	if rec.SanctionType == "" {
		rec.SanctionType = str(m, "tipoSancao")
	}
	if basis, ok := m["fundamentacao"].([]any); ok && len(basis) > 0 {
		if first, ok := basis[0].(map[string]any); ok {
			rec.LegalBasis = str(first, "descricao")
		}
	}

	if db == models.SanctionCNEP {
		if fine, ok := parseDecimal(m["valorMulta"]); ok {
			rec.FineAmount = &fine
		}
	}

	if rec.CompanyName == "" && rec.SanctionType == "" && rec.CNPJ == "" {
		return models.SanctionRecord{}, false
	}
	return rec, true
}

func child(m map[string]any, key string) map[string]any {
	if key == "" || m == nil {
		return m
	}
	c, _ := m[key].(map[string]any)
	return c
}

func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func date(m map[string]any, key string) *time.Time {
	s := str(m, key)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// parseDecimal accepts both float payloads and Brazilian "1.234,56" strings.
func parseDecimal(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		if strings.Contains(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
