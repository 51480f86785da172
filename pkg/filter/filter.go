// Package filter implements the layered relevance engine: structural filters,
// accent-insensitive keyword matching with an LLM-arbitrated uncertain zone,
// synonym recovery, sanctions screening, zero-result relaxation, and final
// ordering.
package filter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bidiq/bidiq/pkg/arbiter"
	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/sectors"
)

// Density bounds of the uncertain zone, in percent of object tokens.
const (
	uncertainLow  = 1.0
	uncertainMid  = 3.0
	uncertainHigh = 8.0
)

// FuzzyThreshold is the LCS similarity required for a synonym near-miss.
// Chosen empirically; a tunable, not a contract.
const FuzzyThreshold = 0.8

// SanctionsChecker is the slice of the sanctions service the filter needs.
type SanctionsChecker interface {
	CheckSanctions(ctx context.Context, cnpj string) (*models.SanctionsResult, error)
}

// Config is one search's filter configuration.
type Config struct {
	UFs         []string
	Modalidades []int
	ValorMin    *float64
	ValorMax    *float64
	Status      []string
	Esferas     []string
	Municipios  []string

	Modo models.SearchMode

	// Exactly one of Sector or CustomTerms drives the keyword layer.
	Sector      *sectors.Sector
	CustomTerms []string

	// MinMatch is the number of distinct canonical keywords a bid must hit;
	// zero means 1.
	MinMatch          int
	ShowBelowMinMatch bool

	Ordering models.Ordering

	CheckSanctions  bool
	AllowRelaxation bool
}

// Stats counts what each layer did to the input set.
type Stats struct {
	TotalInput int `json:"total_input"`

	RejectedUF         int `json:"rejected_uf"`
	RejectedModalidade int `json:"rejected_modalidade"`
	RejectedValor      int `json:"rejected_valor"`
	RejectedStatus     int `json:"rejected_status"`
	RejectedEsfera     int `json:"rejected_esfera"`
	RejectedMunicipio  int `json:"rejected_municipio"`
	RejectedPrazo      int `json:"rejected_prazo"`
	RejectedKeyword    int `json:"rejected_keyword"`

	HiddenByMinMatch int `json:"hidden_by_min_match"`
	SynonymRecovered int `json:"synonym_recovered"`
	LLMApproved      int `json:"llm_approved"`
	LLMRejected      int `json:"llm_rejected"`
	SanctionsDropped int `json:"sanctions_dropped"`

	RelaxationsApplied []string `json:"relaxations_applied,omitempty"`
}

// resetLayers zeroes the counters of the relaxable layers so a relaxation
// pass reports its own numbers instead of accumulating over the previous
// run. TotalInput, the UF layer, and the relaxation trail survive.
func (s *Stats) resetLayers() {
	s.RejectedModalidade = 0
	s.RejectedValor = 0
	s.RejectedStatus = 0
	s.RejectedEsfera = 0
	s.RejectedMunicipio = 0
	s.RejectedPrazo = 0
	s.RejectedKeyword = 0
	s.HiddenByMinMatch = 0
	s.SynonymRecovered = 0
	s.LLMApproved = 0
	s.LLMRejected = 0
	s.SanctionsDropped = 0
}

// Engine applies the filter layers. Both oracles are optional; a nil arbiter
// behaves as a disabled one and a nil sanctions checker skips screening.
type Engine struct {
	oracle    arbiter.Oracle
	sanctions SanctionsChecker
	now       func() time.Time
}

// NewEngine builds the filter engine.
func NewEngine(oracle arbiter.Oracle, sanctions SanctionsChecker) *Engine {
	return &Engine{oracle: oracle, sanctions: sanctions, now: time.Now}
}

// Apply runs the full layer stack over the deduplicated input and returns the
// ordered surviving subset plus the per-layer statistics.
func (e *Engine) Apply(ctx context.Context, records []*models.UnifiedProcurement, cfg Config) ([]*models.UnifiedProcurement, *Stats, error) {
	stats := &Stats{TotalInput: len(records)}
	if cfg.MinMatch <= 0 {
		cfg.MinMatch = 1
	}

	base := e.filterUF(records, cfg, stats)

	matches := make(map[*models.UnifiedProcurement]*matchInfo, len(base))
	out, err := e.runLayers(ctx, base, cfg, stats, matches)
	if err != nil {
		return nil, stats, err
	}

	// Zero-result relaxation: loosen one constraint at a time, in a fixed
	// order, and re-run everything below the UF layer.
	if len(out) == 0 && cfg.AllowRelaxation {
		for _, step := range relaxationLadder(cfg) {
			cfg = step.apply(cfg)
			stats.RelaxationsApplied = append(stats.RelaxationsApplied, step.name)
			slog.Info("Zero results, relaxing filter", "relaxation", step.name)

			clear(matches)
			stats.resetLayers()
			out, err = e.runLayers(ctx, base, cfg, stats, matches)
			if err != nil {
				return nil, stats, err
			}
			if len(out) > 0 {
				break
			}
		}
	}

	e.order(out, cfg, matches)
	return out, stats, nil
}

// runLayers applies modality through sanctions (the relaxable layers) to the
// UF-filtered base set.
func (e *Engine) runLayers(ctx context.Context, base []*models.UnifiedProcurement, cfg Config, stats *Stats, matches map[*models.UnifiedProcurement]*matchInfo) ([]*models.UnifiedProcurement, error) {
	structural := base
	structural = e.filterModalidade(structural, cfg, stats)
	structural = e.filterValor(structural, cfg, stats)
	structural = e.filterMembership(structural, cfg, stats)
	structural = e.filterPrazo(structural, cfg, stats)

	accepted, rejected := e.keywordLayer(ctx, structural, cfg, stats, matches)

	if len(accepted) == 0 && len(rejected) > 0 {
		accepted = append(accepted, e.synonymLayer(ctx, rejected, cfg, stats, matches)...)
	}

	if cfg.CheckSanctions && e.sanctions != nil {
		accepted = e.sanctionsLayer(ctx, accepted, stats)
	}

	return accepted, nil
}

func (e *Engine) filterUF(in []*models.UnifiedProcurement, cfg Config, stats *Stats) []*models.UnifiedProcurement {
	if len(cfg.UFs) == 0 {
		return in
	}
	want := stringSet(cfg.UFs, models.NormalizeUF)
	out := in[:0:0]
	for _, r := range in {
		if want[r.UF] {
			out = append(out, r)
		} else {
			stats.RejectedUF++
		}
	}
	return out
}

func (e *Engine) filterModalidade(in []*models.UnifiedProcurement, cfg Config, stats *Stats) []*models.UnifiedProcurement {
	if len(cfg.Modalidades) == 0 {
		return in
	}
	want := make(map[int]bool, len(cfg.Modalidades))
	for _, m := range cfg.Modalidades {
		want[m] = true
	}
	out := in[:0:0]
	for _, r := range in {
		if r.Modalidade == 0 || want[r.Modalidade] {
			out = append(out, r)
		} else {
			stats.RejectedModalidade++
		}
	}
	return out
}

func (e *Engine) filterValor(in []*models.UnifiedProcurement, cfg Config, stats *Stats) []*models.UnifiedProcurement {
	if cfg.ValorMin == nil && cfg.ValorMax == nil {
		return in
	}
	out := in[:0:0]
	for _, r := range in {
		if cfg.ValorMin != nil && r.ValorEstimado < *cfg.ValorMin {
			stats.RejectedValor++
			continue
		}
		if cfg.ValorMax != nil && r.ValorEstimado > *cfg.ValorMax {
			stats.RejectedValor++
			continue
		}
		out = append(out, r)
	}
	return out
}

func (e *Engine) filterMembership(in []*models.UnifiedProcurement, cfg Config, stats *Stats) []*models.UnifiedProcurement {
	status := stringSet(cfg.Status, Fold)
	esferas := stringSet(cfg.Esferas, Fold)
	municipios := stringSet(cfg.Municipios, Fold)

	out := in[:0:0]
	for _, r := range in {
		switch {
		case len(status) > 0 && r.Situacao != "" && !status[Fold(r.Situacao)]:
			stats.RejectedStatus++
		case len(esferas) > 0 && r.Esfera != "" && !esferas[Fold(r.Esfera)]:
			stats.RejectedEsfera++
		case len(municipios) > 0 && !municipios[Fold(r.Municipio)]:
			stats.RejectedMunicipio++
		default:
			out = append(out, r)
		}
	}
	return out
}

// filterPrazo drops closed bids in open-only mode. Records with missing
// closing dates are conservatively kept.
func (e *Engine) filterPrazo(in []*models.UnifiedProcurement, cfg Config, stats *Stats) []*models.UnifiedProcurement {
	if cfg.Modo != models.ModeOpenOnly {
		return in
	}
	now := e.now()
	out := in[:0:0]
	for _, r := range in {
		if r.DataEncerramento != nil && !r.DataEncerramento.After(now) {
			stats.RejectedPrazo++
			continue
		}
		out = append(out, r)
	}
	return out
}

func (e *Engine) sanctionsLayer(ctx context.Context, in []*models.UnifiedProcurement, stats *Stats) []*models.UnifiedProcurement {
	out := in[:0:0]
	for _, r := range in {
		if r.CNPJOrgao == "" {
			out = append(out, r)
			continue
		}
		result, err := e.sanctions.CheckSanctions(ctx, r.CNPJOrgao)
		if err != nil || result == nil || result.Unavailable {
			// Fail-open: an unreachable sanctions backend never blocks a bid.
			out = append(out, r)
			continue
		}
		if result.IsSanctioned {
			stats.SanctionsDropped++
			slog.Info("Bid disqualified by active sanction",
				"source_id", r.SourceID, "cnpj", r.CNPJOrgao,
				"active_sanctions", result.ActiveCount)
			continue
		}
		out = append(out, r)
	}
	return out
}

type relaxationStep struct {
	name  string
	apply func(Config) Config
}

func relaxationLadder(cfg Config) []relaxationStep {
	var steps []relaxationStep
	if cfg.MinMatch > 1 || !cfg.ShowBelowMinMatch {
		steps = append(steps, relaxationStep{"min_match", func(c Config) Config {
			c.MinMatch = 1
			c.ShowBelowMinMatch = true
			return c
		}})
	}
	if cfg.Sector != nil && len(cfg.Sector.Exclusions) > 0 {
		steps = append(steps, relaxationStep{"exclusions", func(c Config) Config {
			s := *c.Sector
			s.Exclusions = nil
			c.Sector = &s
			return c
		}})
	}
	if len(cfg.Modalidades) > 0 {
		steps = append(steps, relaxationStep{"modality", func(c Config) Config {
			c.Modalidades = nil
			return c
		}})
	}
	if cfg.ValorMin != nil || cfg.ValorMax != nil {
		steps = append(steps, relaxationStep{"value_range", func(c Config) Config {
			c.ValorMin, c.ValorMax = nil, nil
			return c
		}})
	}
	return steps
}

func stringSet(values []string, normalize func(string) string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[normalize(v)] = true
	}
	return set
}

func (cfg Config) contextName() string {
	if cfg.Sector != nil {
		return cfg.Sector.Name
	}
	return fmt.Sprintf("termos: %v", cfg.CustomTerms)
}
