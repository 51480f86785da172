package arbiter

import (
	"fmt"
	"strings"
)

func systemPrompt(req Request) string {
	switch {
	case req.Mode == ModeRecovery:
		return "Você é um classificador de licitações públicas brasileiras. " +
			"Uma licitação foi rejeitada por um filtro automático e você decide se ela deve ser recuperada. " +
			"Responda com exatamente uma palavra: SIM se a licitação for relevante apesar da rejeição, NAO caso contrário."
	case req.PromptLevel == LevelConservative:
		return "Você é um classificador rigoroso de licitações públicas brasileiras. " +
			"Responda SIM somente se o objeto da licitação for PRINCIPALMENTE sobre o contexto informado; " +
			"menções incidentais não contam. Em caso de dúvida, responda NAO. " +
			"Responda com exatamente uma palavra: SIM ou NAO."
	default:
		return "Você é um classificador de licitações públicas brasileiras. " +
			"Responda SIM se o objeto da licitação for sobre o contexto informado, NAO caso contrário. " +
			"Responda com exatamente uma palavra: SIM ou NAO."
	}
}

func userPrompt(req Request) string {
	var b strings.Builder

	if req.SectorName != "" {
		fmt.Fprintf(&b, "Setor: %s\n", req.SectorName)
	} else if len(req.CustomTerms) > 0 {
		fmt.Fprintf(&b, "Termos de busca: %s\n", strings.Join(req.CustomTerms, ", "))
	}

	fmt.Fprintf(&b, "Objeto: %s\n", req.Objeto)
	if req.Valor > 0 {
		fmt.Fprintf(&b, "Valor estimado: R$ %.2f\n", req.Valor)
	}

	if req.Mode == ModeRecovery {
		if req.RejectionReason != "" {
			fmt.Fprintf(&b, "Motivo da rejeição: %s\n", req.RejectionReason)
		}
		if req.NearMissInfo != "" {
			fmt.Fprintf(&b, "Correspondência aproximada: %s\n", req.NearMissInfo)
		}
		b.WriteString("A licitação é relevante mesmo assim?")
	} else {
		b.WriteString("O objeto é principalmente sobre esse contexto?")
	}

	return b.String()
}
