package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bidiq/bidiq/pkg/models"
)

// maxDestaques bounds the highlight list.
const maxDestaques = 3

// TemplateSummarizer renders the executive summary from the result set
// itself. It is the default Summarizer; an LLM-backed implementation can
// replace it behind the same interface.
type TemplateSummarizer struct{}

// Summarize produces a Portuguese summary and the top highlights by value.
// maxTokens bounds the summary length (approximated at 4 chars per token).
func (TemplateSummarizer) Summarize(_ context.Context, records []*models.UnifiedProcurement, maxTokens int) (string, []map[string]any, error) {
	if len(records) == 0 {
		return "Nenhuma licitação relevante foi encontrada para os filtros informados.", nil, nil
	}

	var total float64
	ufs := make(map[string]int)
	for _, rec := range records {
		total += rec.ValorEstimado
		ufs[rec.UF]++
	}

	ufList := make([]string, 0, len(ufs))
	for uf := range ufs {
		ufList = append(ufList, uf)
	}
	sort.Strings(ufList)

	var b strings.Builder
	fmt.Fprintf(&b, "Foram encontradas %d licitações relevantes em %s, somando R$ %.2f em valores estimados.",
		len(records), strings.Join(ufList, ", "), total)

	byValue := make([]*models.UnifiedProcurement, len(records))
	copy(byValue, records)
	sort.SliceStable(byValue, func(i, j int) bool {
		return byValue[i].ValorEstimado > byValue[j].ValorEstimado
	})

	destaques := make([]map[string]any, 0, maxDestaques)
	for i, rec := range byValue {
		if i >= maxDestaques {
			break
		}
		if i == 0 && rec.ValorEstimado > 0 {
			fmt.Fprintf(&b, " O maior certame é de %s (%s), com valor estimado de R$ %.2f.",
				rec.Orgao, rec.UF, rec.ValorEstimado)
		}
		destaques = append(destaques, map[string]any{
			"objeto":         truncate(rec.Objeto, 200),
			"orgao":          rec.Orgao,
			"uf":             rec.UF,
			"valor_estimado": rec.ValorEstimado,
			"numero_edital":  rec.NumeroEdital,
			"link_edital":    rec.LinkEdital,
		})
	}

	resumo := b.String()
	if maxTokens > 0 {
		resumo = truncate(resumo, maxTokens*4)
	}
	return resumo, destaques, nil
}

func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
