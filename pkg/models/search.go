package models

import "time"

// SearchState is the lifecycle state of one search run. The set is closed;
// transitions are enforced by the pipeline state machine.
type SearchState string

const (
	StateCreated     SearchState = "created"
	StateValidating  SearchState = "validating"
	StateFetching    SearchState = "fetching"
	StateFiltering   SearchState = "filtering"
	StateEnriching   SearchState = "enriching"
	StateGenerating  SearchState = "generating"
	StatePersisting  SearchState = "persisting"
	StateCompleted   SearchState = "completed"
	StateFailed      SearchState = "failed"
	StateRateLimited SearchState = "rate_limited"
	StateTimedOut    SearchState = "timed_out"
)

// IsTerminal reports whether the state ends the search lifecycle.
func (s SearchState) IsTerminal() bool {
	switch s {
	case StateCompleted, StateFailed, StateRateLimited, StateTimedOut:
		return true
	}
	return false
}

// ProgressPercent maps a state to the coarse progress figure surfaced in the
// status endpoint. Failures report -1.
func (s SearchState) ProgressPercent() int {
	switch s {
	case StateCreated:
		return 0
	case StateValidating:
		return 5
	case StateFetching:
		return 30
	case StateFiltering:
		return 60
	case StateEnriching:
		return 70
	case StateGenerating:
		return 85
	case StatePersisting:
		return 95
	case StateCompleted:
		return 100
	default:
		return -1
	}
}

// SearchMode selects deadline handling for the results.
type SearchMode string

const (
	// ModeOpenOnly drops bids whose closing date has already passed.
	ModeOpenOnly SearchMode = "abertas"
	// ModeAll keeps every bid regardless of deadline.
	ModeAll SearchMode = "todas"
)

// Ordering selects the final sort applied to the filtered set.
type Ordering string

const (
	OrderRelevance    Ordering = "relevancia"
	OrderDateDesc     Ordering = "data_desc"
	OrderDateAsc      Ordering = "data_asc"
	OrderValueDesc    Ordering = "valor_desc"
	OrderValueAsc     Ordering = "valor_asc"
	OrderDeadlineNear Ordering = "encerramento"
)

// SearchRequest carries the validated inputs of one search run.
type SearchRequest struct {
	SearchID       string         `json:"search_id"`
	UserID         string         `json:"user_id"`
	Sectors        []string       `json:"sectors"`
	UFs            []string       `json:"ufs"`
	DataInicial    *time.Time     `json:"data_inicial,omitempty"`
	DataFinal      *time.Time     `json:"data_final,omitempty"`
	CustomKeywords []string       `json:"custom_keywords,omitempty"`
	Filters        map[string]any `json:"filters,omitempty"`
}

// SearchTransition is one row of the immutable transition log.
type SearchTransition struct {
	SearchID                string         `json:"search_id"`
	FromState               SearchState    `json:"from_state"`
	ToState                 SearchState    `json:"to_state"`
	Stage                   string         `json:"stage"`
	Details                 map[string]any `json:"details,omitempty"`
	DurationSincePreviousMS int64          `json:"duration_since_previous_ms"`
	CreatedAt               time.Time      `json:"created_at"`
}

// SearchStatus is the status blob assembled from the session row and the
// latest transition.
type SearchStatus struct {
	SearchID       string            `json:"search_id"`
	Status         SearchState       `json:"status"`
	PipelineStage  string            `json:"pipeline_stage"`
	Progress       int               `json:"progress"`
	StartedAt      *time.Time        `json:"started_at,omitempty"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
	TotalRaw       int               `json:"total_raw"`
	TotalFiltered  int               `json:"total_filtered"`
	ValorTotal     float64           `json:"valor_total"`
	ErrorCode      string            `json:"error_code,omitempty"`
	ErrorMessage   string            `json:"error_message,omitempty"`
	LastTransition *SearchTransition `json:"last_transition,omitempty"`
}
