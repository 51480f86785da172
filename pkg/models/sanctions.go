package models

import "time"

// SanctionDatabase identifies the federal registry a sanction came from.
type SanctionDatabase string

const (
	SanctionCEIS SanctionDatabase = "CEIS"
	SanctionCNEP SanctionDatabase = "CNEP"
)

// SanctionRecord is one sanction entry for a CNPJ, parsed from CEIS or CNEP.
type SanctionRecord struct {
	Database        SanctionDatabase `json:"database"`
	CNPJ            string           `json:"cnpj"`
	CompanyName     string           `json:"company_name"`
	SanctionType    string           `json:"sanction_type"`
	StartDate       *time.Time       `json:"start_date,omitempty"`
	EndDate         *time.Time       `json:"end_date,omitempty"`
	SanctioningBody string           `json:"sanctioning_body"`
	LegalBasis      string           `json:"legal_basis"`
	FineAmount      *float64         `json:"fine_amount,omitempty"` // CNEP only
}

// IsActive reports whether the sanction is currently in force: an open end
// date means indefinite.
func (r *SanctionRecord) IsActive(now time.Time) bool {
	return r.EndDate == nil || r.EndDate.After(now)
}

// SanctionsResult aggregates every record found for one CNPJ.
type SanctionsResult struct {
	CNPJ         string           `json:"cnpj"`
	Records      []SanctionRecord `json:"records"`
	ActiveCount  int              `json:"active_count"`
	TotalCount   int              `json:"total_count"`
	IsSanctioned bool             `json:"is_sanctioned"`
	CheckedAt    time.Time        `json:"checked_at"`
	CacheHit     bool             `json:"cache_hit"`

	// Unavailable is set when both registries failed; the filter treats it
	// as "not sanctioned" (fail-open).
	Unavailable bool `json:"unavailable"`
}

// SanctionsStatus is the tri-state shown in the search UI.
type SanctionsStatus string

const (
	SanctionsClean       SanctionsStatus = "clean"
	SanctionsSanctioned  SanctionsStatus = "sanctioned"
	SanctionsUnavailable SanctionsStatus = "unavailable"
)

// SanctionsSummary is the UI-facing digest of a SanctionsResult.
type SanctionsSummary struct {
	Status        SanctionsStatus `json:"status"`
	ActiveCount   int             `json:"active_count"`
	SanctionTypes []string        `json:"sanction_types,omitempty"`
}
