// Package models defines the canonical data types shared across the
// aggregation pipeline: the unified procurement record, source metadata,
// sanctions records, and search lifecycle types.
package models

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// UnifiedProcurement is the canonical record every source adapter normalizes
// into. It is created once by an adapter and flows read-only through
// deduplication, filtering, and ordering.
type UnifiedProcurement struct {
	SourceID   string `json:"source_id"`
	SourceName string `json:"source_name"`
	DedupKey   string `json:"dedup_key"`

	Objeto        string  `json:"objeto"`
	ValorEstimado float64 `json:"valor_estimado"`
	Orgao         string  `json:"orgao"`
	CNPJOrgao     string  `json:"cnpj_orgao"`
	UF            string  `json:"uf"`
	Municipio     string  `json:"municipio"`

	DataPublicacao   *time.Time `json:"data_publicacao,omitempty"`
	DataAbertura     *time.Time `json:"data_abertura,omitempty"`
	DataEncerramento *time.Time `json:"data_encerramento,omitempty"`

	NumeroEdital string `json:"numero_edital"`
	Ano          int    `json:"ano"`
	Modalidade   int    `json:"modalidade"`
	Situacao     string `json:"situacao"`
	Esfera       string `json:"esfera"`
	Poder        string `json:"poder"`

	LinkEdital string `json:"link_edital,omitempty"`
	LinkPortal string `json:"link_portal,omitempty"`

	FetchedAt time.Time `json:"fetched_at"`

	// RawData carries the original upstream payload for debugging. It is
	// excluded from equality, logs, and the dedup key.
	RawData map[string]any `json:"-"`
}

// NewUnifiedProcurement validates and normalizes a record in one pass.
// UF is upper-cased, whitespace collapsed, and the dedup key computed
// eagerly when not supplied by the adapter.
func NewUnifiedProcurement(p UnifiedProcurement) (*UnifiedProcurement, error) {
	if p.SourceID == "" {
		return nil, fmt.Errorf("source_id is required")
	}
	if p.SourceName == "" {
		return nil, fmt.Errorf("source_name is required")
	}
	if p.ValorEstimado < 0 {
		return nil, fmt.Errorf("valor_estimado must be non-negative, got %f", p.ValorEstimado)
	}

	p.Objeto = CollapseWhitespace(p.Objeto)
	p.Orgao = CollapseWhitespace(p.Orgao)
	p.Municipio = CollapseWhitespace(p.Municipio)
	p.UF = NormalizeUF(p.UF)
	if p.UF != "" && len(p.UF) != 2 {
		return nil, fmt.Errorf("uf must be two letters or empty, got %q", p.UF)
	}
	p.CNPJOrgao = strings.TrimSpace(p.CNPJOrgao)

	if p.DedupKey == "" {
		p.DedupKey = DeriveDedupKey(&p)
	}
	if p.FetchedAt.IsZero() {
		p.FetchedAt = time.Now().UTC()
	}

	return &p, nil
}

// DeriveDedupKey computes the stable cross-source identifier:
// digits(cnpj):tender_number:year, falling back to
// digits(cnpj):md5(normalized_object)[:12]:int(value) when the tender
// number or year is missing. Deterministic given the record's fields.
func DeriveDedupKey(p *UnifiedProcurement) string {
	cnpj := OnlyDigits(p.CNPJOrgao)
	if p.NumeroEdital != "" && p.Ano > 0 {
		return fmt.Sprintf("%s:%s:%d", cnpj, p.NumeroEdital, p.Ano)
	}
	sum := md5.Sum([]byte(strings.ToLower(CollapseWhitespace(p.Objeto))))
	return fmt.Sprintf("%s:%s:%d", cnpj, hex.EncodeToString(sum[:])[:12], int64(p.ValorEstimado))
}

// NormalizeUF upper-cases and trims a state code. Returns "" for blank input.
func NormalizeUF(uf string) string {
	return strings.ToUpper(strings.TrimSpace(uf))
}

// OnlyDigits strips every non-digit rune. Used for CNPJ normalization.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CollapseWhitespace trims and collapses runs of whitespace into single
// spaces. Upstream payloads routinely embed tabs and double spaces.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
