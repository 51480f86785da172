// Package pipeline owns the search lifecycle: the state machine, the
// startup recovery routine, and the 8-stage orchestrator.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bidiq/bidiq/pkg/logging"
	"github.com/bidiq/bidiq/pkg/metrics"
	"github.com/bidiq/bidiq/pkg/models"
)

// ErrInvalidTransition is returned when a transition is not on the allowed
// graph. The caller's state is left unchanged.
var ErrInvalidTransition = errors.New("invalid state transition")

// TransitionStore persists transitions. *services.SearchService satisfies it.
type TransitionStore interface {
	UpdateState(ctx context.Context, searchID string, state models.SearchState, stage string) error
	RecordTransition(ctx context.Context, tr models.SearchTransition) error
}

// successor lists the forward edge of the happy path. Any non-terminal state
// may additionally jump to failed, rate_limited, or timed_out.
var successor = map[models.SearchState]models.SearchState{
	models.StateCreated:    models.StateValidating,
	models.StateValidating: models.StateFetching,
	models.StateFetching:   models.StateFiltering,
	models.StateFiltering:  models.StateEnriching,
	models.StateEnriching:  models.StateGenerating,
	models.StateGenerating: models.StatePersisting,
	models.StatePersisting: models.StateCompleted,
}

// allowed reports whether from → to is on the graph.
func allowed(from, to models.SearchState) bool {
	if from.IsTerminal() {
		return false
	}
	switch to {
	case models.StateFailed, models.StateRateLimited, models.StateTimedOut:
		return true
	}
	return successor[from] == to
}

// StateMachine tracks one search's lifecycle and persists every transition.
type StateMachine struct {
	searchID string
	store    TransitionStore

	mu        sync.Mutex
	current   models.SearchState
	enteredAt time.Time
}

// NewStateMachine starts a machine in the created state.
func NewStateMachine(searchID string, store TransitionStore) *StateMachine {
	return &StateMachine{
		searchID:  searchID,
		store:     store,
		current:   models.StateCreated,
		enteredAt: time.Now(),
	}
}

// Current returns the current state.
func (m *StateMachine) Current() models.SearchState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Transition moves to a new state. The session row update is synchronous;
// the transition log row is fire-and-forget.
func (m *StateMachine) Transition(ctx context.Context, to models.SearchState, stage string, details map[string]any) error {
	m.mu.Lock()
	from := m.current
	if !allowed(from, to) {
		m.mu.Unlock()
		slog.Log(ctx, logging.LevelCritical, "Invalid state transition rejected",
			"search_id", m.searchID, "from_state", from, "to_state", to, "stage", stage)
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, from, to)
	}
	duration := time.Since(m.enteredAt)
	m.current = to
	m.enteredAt = time.Now()
	m.mu.Unlock()

	metrics.StateDuration.WithLabelValues(string(from)).Observe(duration.Seconds())

	if err := m.store.UpdateState(ctx, m.searchID, to, stage); err != nil {
		slog.ErrorContext(ctx, "Failed to persist search state",
			"search_id", m.searchID, "to_state", to, "error", err)
	}

	// Fire-and-forget: the log row never blocks or fails the pipeline.
	tr := models.SearchTransition{
		SearchID:                m.searchID,
		FromState:               from,
		ToState:                 to,
		Stage:                   stage,
		Details:                 details,
		DurationSincePreviousMS: duration.Milliseconds(),
	}
	go func() {
		writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.store.RecordTransition(writeCtx, tr); err != nil {
			slog.Warn("Failed to record state transition",
				"search_id", tr.SearchID, "to_state", tr.ToState, "error", err)
		}
	}()

	slog.InfoContext(ctx, "Search state transition",
		"search_id", m.searchID,
		"from_state", from,
		"to_state", to,
		"stage", stage,
		"duration_ms", duration.Milliseconds())

	if to.IsTerminal() {
		metrics.SearchesTerminal.WithLabelValues(string(to)).Inc()
	}
	return nil
}
