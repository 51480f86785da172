package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/pkg/database"
	"github.com/bidiq/bidiq/pkg/models"
)

// DefaultRecoveryMaxAge is the cutoff separating timed-out searches from
// ones interrupted by a restart.
const DefaultRecoveryMaxAge = 10 * time.Minute

var nonTerminalStatuses = []searchsession.Status{
	searchsession.StatusCreated,
	searchsession.StatusValidating,
	searchsession.StatusFetching,
	searchsession.StatusFiltering,
	searchsession.StatusEnriching,
	searchsession.StatusGenerating,
	searchsession.StatusPersisting,
}

// RecoverStaleSearches closes out searches left non-terminal by a previous
// process. Older than maxAge → timed_out with error "timeout"; newer →
// failed with error "server_restart". Returns how many rows were recovered.
func RecoverStaleSearches(ctx context.Context, db *database.Client, store TransitionStore, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		maxAge = DefaultRecoveryMaxAge
	}
	cutoff := time.Now().Add(-maxAge)

	stale, err := db.SearchSession.Query().
		Where(searchsession.StatusIn(nonTerminalStatuses...)).
		All(ctx)
	if err != nil {
		// Pre-migration deployments may lack the lifecycle columns; fall
		// back to the minimal created_at query.
		slog.WarnContext(ctx, "Recovery query failed, trying legacy schema fallback", "error", err)
		return recoverLegacy(ctx, db, cutoff)
	}

	recovered := 0
	for _, session := range stale {
		state := models.StateFailed
		errCode := "server_restart"
		if session.StartedAt.Before(cutoff) {
			state = models.StateTimedOut
			errCode = "timeout"
		}

		if err := store.UpdateState(ctx, session.ID, state, "recovery"); err != nil {
			slog.ErrorContext(ctx, "Failed to recover stale search",
				"search_id", session.ID, "error", err)
			continue
		}
		_ = db.SearchSession.UpdateOneID(session.ID).
			SetErrorCode(errCode).
			SetErrorMessage("search interrupted by process restart").
			Exec(ctx)

		tr := models.SearchTransition{
			SearchID:  session.ID,
			FromState: models.SearchState(session.Status),
			ToState:   state,
			Stage:     "recovery",
			Details:   map[string]any{"error_code": errCode},
		}
		if err := store.RecordTransition(ctx, tr); err != nil {
			slog.WarnContext(ctx, "Failed to record recovery transition",
				"search_id", session.ID, "error", err)
		}

		slog.InfoContext(ctx, "Recovered stale search",
			"search_id", session.ID, "from_state", session.Status,
			"to_state", state, "error_code", errCode)
		recovered++
	}
	return recovered, nil
}

// recoverLegacy handles rows from schemas predating the lifecycle columns.
// It tries a minimal update keyed on created_at and deletes rows it cannot
// update.
func recoverLegacy(ctx context.Context, db *database.Client, cutoff time.Time) (int, error) {
	rows, err := db.DB().QueryContext(ctx,
		"SELECT search_id FROM search_sessions WHERE completed_at IS NULL AND created_at < $1",
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("legacy recovery query failed: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("legacy recovery scan failed: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("legacy recovery rows failed: %w", err)
	}

	recovered := 0
	for _, id := range ids {
		_, err := db.DB().ExecContext(ctx,
			"UPDATE search_sessions SET status = 'timed_out', completed_at = now() WHERE search_id = $1", id)
		if err != nil {
			// Last resort for rows the current code cannot represent.
			slog.WarnContext(ctx, "Legacy recovery update failed, deleting stale row",
				"search_id", id, "error", err)
			if _, delErr := db.DB().ExecContext(ctx,
				"DELETE FROM search_sessions WHERE search_id = $1", id); delErr != nil {
				slog.ErrorContext(ctx, "Failed to delete stale legacy row",
					"search_id", id, "error", delErr)
				continue
			}
		}
		recovered++
	}
	return recovered, nil
}
