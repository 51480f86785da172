package filter

import (
	"context"
	"fmt"
	"strings"

	"github.com/bidiq/bidiq/pkg/arbiter"
	"github.com/bidiq/bidiq/pkg/models"
)

// matchInfo is what the keyword layer learned about one record. The ordering
// layer reuses it for relevance scoring.
type matchInfo struct {
	hits        []string // distinct canonical keywords matched
	occurrences int      // total keyword occurrences in the object
	tokens      int
	excludedBy  string
	totalTerms  int
	recovered   bool
}

func (m *matchInfo) score() float64 {
	if m == nil || m.totalTerms == 0 {
		return 0
	}
	return float64(len(m.hits)) / float64(m.totalTerms)
}

func (m *matchInfo) density() float64 {
	if m.tokens == 0 {
		return 0
	}
	return float64(m.occurrences) / float64(m.tokens) * 100
}

func (cfg Config) terms() []string {
	if cfg.Sector != nil {
		return cfg.Sector.Keywords
	}
	return cfg.CustomTerms
}

func (cfg Config) exclusions() []string {
	if cfg.Sector != nil {
		return cfg.Sector.Exclusions
	}
	return nil
}

// keywordLayer is the core relevance layer. A bid with enough distinct
// keyword hits and no exclusion match is accepted, except in the uncertain
// density zone where the LLM oracle arbitrates.
func (e *Engine) keywordLayer(ctx context.Context, in []*models.UnifiedProcurement, cfg Config, stats *Stats, matches map[*models.UnifiedProcurement]*matchInfo) (accepted, rejected []*models.UnifiedProcurement) {
	terms := cfg.terms()
	exclusions := cfg.exclusions()
	if len(terms) == 0 {
		return in, nil
	}

	for _, r := range in {
		mi := analyze(r.Objeto, terms, exclusions)
		matches[r] = mi

		if mi.excludedBy != "" {
			stats.RejectedKeyword++
			rejected = append(rejected, r)
			continue
		}
		if len(mi.hits) == 0 {
			stats.RejectedKeyword++
			rejected = append(rejected, r)
			continue
		}
		if len(mi.hits) < cfg.MinMatch {
			if cfg.ShowBelowMinMatch {
				accepted = append(accepted, r)
			} else {
				stats.HiddenByMinMatch++
				rejected = append(rejected, r)
			}
			continue
		}

		if verdict, asked := e.arbitrate(ctx, r, mi, cfg); asked {
			if verdict {
				stats.LLMApproved++
				accepted = append(accepted, r)
			} else {
				stats.LLMRejected++
				rejected = append(rejected, r)
			}
			continue
		}

		accepted = append(accepted, r)
	}
	return accepted, rejected
}

// arbitrate delegates the uncertain density zone to the oracle: 1–3% with the
// conservative prompt, 3–8% with the standard one. Outside the zone the
// keyword rule stands on its own.
func (e *Engine) arbitrate(ctx context.Context, r *models.UnifiedProcurement, mi *matchInfo, cfg Config) (verdict, asked bool) {
	d := mi.density()
	var level arbiter.PromptLevel
	switch {
	case d >= uncertainLow && d < uncertainMid:
		level = arbiter.LevelConservative
	case d >= uncertainMid && d <= uncertainHigh:
		level = arbiter.LevelStandard
	default:
		return false, false
	}

	if e.oracle == nil {
		return false, true
	}
	req := arbiter.Request{
		Mode:        arbiter.ModePrimaryMatch,
		PromptLevel: level,
		Objeto:      r.Objeto,
		Valor:       r.ValorEstimado,
	}
	if cfg.Sector != nil {
		req.SectorName = cfg.Sector.Name
	} else {
		req.CustomTerms = cfg.CustomTerms
	}
	return e.oracle.Decide(ctx, req), true
}

// synonymLayer re-examines rejected bids through the sector's synonym
// dictionary. Two distinct canonical keywords reached via synonyms
// auto-recover the bid; a single one delegates to the oracle in recovery
// mode. Exclusion-rejected bids are only ever recovered by the oracle.
func (e *Engine) synonymLayer(ctx context.Context, rejected []*models.UnifiedProcurement, cfg Config, stats *Stats, matches map[*models.UnifiedProcurement]*matchInfo) []*models.UnifiedProcurement {
	if cfg.Sector == nil || len(cfg.Sector.Synonyms) == 0 {
		return nil
	}

	var recovered []*models.UnifiedProcurement
	for _, r := range rejected {
		mi := matches[r]
		if mi == nil {
			continue
		}

		tokens := Tokenize(r.Objeto)
		var viaSynonym []string
		var nearMiss []string
		for canonical, syns := range cfg.Sector.Synonyms {
			for _, syn := range syns {
				if containsPhrase(tokens, syn) > 0 || fuzzyContains(tokens, syn, FuzzyThreshold) {
					viaSynonym = append(viaSynonym, canonical)
					nearMiss = append(nearMiss, syn)
					break
				}
			}
		}
		if len(viaSynonym) == 0 {
			continue
		}

		switch {
		case mi.excludedBy != "":
			// An excluded bid is never auto-recovered.
			if e.recover(ctx, r, cfg, fmt.Sprintf("exclusão: %s", mi.excludedBy), nearMiss) {
				stats.LLMApproved++
				mi.recovered = true
				mi.hits = viaSynonym
				recovered = append(recovered, r)
			} else {
				stats.LLMRejected++
			}
		case len(viaSynonym) >= 2:
			stats.SynonymRecovered++
			mi.recovered = true
			mi.hits = viaSynonym
			recovered = append(recovered, r)
		default:
			if e.recover(ctx, r, cfg, "nenhuma palavra-chave direta", nearMiss) {
				stats.LLMApproved++
				mi.recovered = true
				mi.hits = viaSynonym
				recovered = append(recovered, r)
			} else {
				stats.LLMRejected++
			}
		}
	}
	return recovered
}

func (e *Engine) recover(ctx context.Context, r *models.UnifiedProcurement, cfg Config, reason string, nearMiss []string) bool {
	if e.oracle == nil {
		return false
	}
	return e.oracle.Decide(ctx, arbiter.Request{
		Mode:            arbiter.ModeRecovery,
		Objeto:          r.Objeto,
		Valor:           r.ValorEstimado,
		SectorName:      cfg.contextName(),
		RejectionReason: reason,
		NearMissInfo:    strings.Join(nearMiss, ", "),
	})
}

// analyze counts keyword and exclusion matches in the object text.
func analyze(objeto string, terms, exclusions []string) *matchInfo {
	tokens := Tokenize(objeto)
	mi := &matchInfo{tokens: len(tokens), totalTerms: len(terms)}

	for _, excl := range exclusions {
		if containsPhrase(tokens, excl) > 0 {
			mi.excludedBy = excl
			return mi
		}
	}

	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		n := containsPhrase(tokens, term)
		if n == 0 {
			continue
		}
		mi.occurrences += n
		folded := Fold(term)
		if !seen[folded] {
			seen[folded] = true
			mi.hits = append(mi.hits, term)
		}
	}
	return mi
}
