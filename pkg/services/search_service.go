package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bidiq/bidiq/ent"
	"github.com/bidiq/bidiq/ent/searchsession"
	"github.com/bidiq/bidiq/ent/searchstatetransition"
	"github.com/bidiq/bidiq/pkg/models"
)

// SearchService manages search session lifecycle and the transition log.
type SearchService struct {
	client *ent.Client
}

// NewSearchService creates a new SearchService.
func NewSearchService(client *ent.Client) *SearchService {
	return &SearchService{client: client}
}

// CreateSearch persists a new search session in the created state.
func (s *SearchService) CreateSearch(httpCtx context.Context, req models.SearchRequest) (*ent.SearchSession, error) {
	if req.SearchID == "" {
		return nil, NewValidationError("search_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if len(req.UFs) == 0 {
		return nil, NewValidationError("ufs", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.SearchSession.Create().
		SetID(req.SearchID).
		SetUserID(req.UserID).
		SetStatus(searchsession.StatusCreated).
		SetUfs(req.UFs).
		SetStartedAt(time.Now())

	if len(req.Sectors) > 0 {
		builder.SetSectors(req.Sectors)
	}
	if len(req.CustomKeywords) > 0 {
		builder.SetCustomKeywords(req.CustomKeywords)
	}
	if req.DataInicial != nil {
		builder.SetDataInicial(*req.DataInicial)
	}
	if req.DataFinal != nil {
		builder.SetDataFinal(*req.DataFinal)
	}
	if req.Filters != nil {
		builder.SetFilters(req.Filters)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create search: %w", err)
	}
	return session, nil
}

// GetSearch retrieves a search session by ID.
func (s *SearchService) GetSearch(ctx context.Context, searchID string) (*ent.SearchSession, error) {
	session, err := s.client.SearchSession.Get(ctx, searchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get search: %w", err)
	}
	return session, nil
}

// UpdateState moves the session row to a new status/stage. Terminal states
// also set completed_at.
func (s *SearchService) UpdateState(ctx context.Context, searchID string, state models.SearchState, stage string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.SearchSession.UpdateOneID(searchID).
		SetStatus(searchsession.Status(state))
	if stage != "" {
		update = update.SetPipelineStage(stage)
	}
	if state.IsTerminal() {
		update = update.SetCompletedAt(time.Now())
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update search state: %w", err)
	}
	return nil
}

// SetError records the terminal error columns without touching status; the
// state machine owns the status column.
func (s *SearchService) SetError(ctx context.Context, searchID, code, message string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SearchSession.UpdateOneID(searchID).
		SetErrorCode(code).
		SetErrorMessage(message).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set search error: %w", err)
	}
	return nil
}

// UpdateCounts stores the raw/filtered counters and the aggregate value.
func (s *SearchService) UpdateCounts(ctx context.Context, searchID string, totalRaw, totalFiltered int, valorTotal float64) error {
	err := s.client.SearchSession.UpdateOneID(searchID).
		SetTotalRaw(totalRaw).
		SetTotalFiltered(totalFiltered).
		SetValorTotal(valorTotal).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update search counts: %w", err)
	}
	return nil
}

// SetArtifacts stores the generated summary, highlights, and Excel path.
// Empty strings and nil slices leave the corresponding column untouched.
func (s *SearchService) SetArtifacts(ctx context.Context, searchID, resumo string, destaques []map[string]any, excelPath string) error {
	update := s.client.SearchSession.UpdateOneID(searchID)
	if resumo != "" {
		update = update.SetResumoExecutivo(resumo)
	}
	if destaques != nil {
		update = update.SetDestaques(destaques)
	}
	if excelPath != "" {
		update = update.SetExcelPath(excelPath)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set search artifacts: %w", err)
	}
	return nil
}

// RecordTransition appends one immutable row to the transition log.
func (s *SearchService) RecordTransition(ctx context.Context, tr models.SearchTransition) error {
	builder := s.client.SearchStateTransition.Create().
		SetSearchID(tr.SearchID).
		SetFromState(string(tr.FromState)).
		SetToState(string(tr.ToState)).
		SetDurationSincePreviousMs(tr.DurationSincePreviousMS)
	if tr.Stage != "" {
		builder.SetStage(tr.Stage)
	}
	if tr.Details != nil {
		builder.SetDetails(tr.Details)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to record transition: %w", err)
	}
	return nil
}

// GetTimeline returns the transition log for a search, oldest first.
func (s *SearchService) GetTimeline(ctx context.Context, searchID string) ([]models.SearchTransition, error) {
	if _, err := s.GetSearch(ctx, searchID); err != nil {
		return nil, err
	}

	rows, err := s.client.SearchStateTransition.Query().
		Where(searchstatetransition.SearchID(searchID)).
		Order(ent.Asc(searchstatetransition.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeline: %w", err)
	}

	timeline := make([]models.SearchTransition, 0, len(rows))
	for _, row := range rows {
		timeline = append(timeline, models.SearchTransition{
			SearchID:                row.SearchID,
			FromState:               models.SearchState(row.FromState),
			ToState:                 models.SearchState(row.ToState),
			Stage:                   row.Stage,
			Details:                 row.Details,
			DurationSincePreviousMS: row.DurationSincePreviousMs,
			CreatedAt:               row.CreatedAt,
		})
	}
	return timeline, nil
}

// GetStatus assembles the status blob from the session row and the latest
// transition.
func (s *SearchService) GetStatus(ctx context.Context, searchID string) (*models.SearchStatus, error) {
	session, err := s.GetSearch(ctx, searchID)
	if err != nil {
		return nil, err
	}

	status := &models.SearchStatus{
		SearchID:      session.ID,
		Status:        models.SearchState(session.Status),
		PipelineStage: session.PipelineStage,
		Progress:      models.SearchState(session.Status).ProgressPercent(),
		StartedAt:     &session.StartedAt,
		CompletedAt:   session.CompletedAt,
		TotalRaw:      session.TotalRaw,
		TotalFiltered: session.TotalFiltered,
		ValorTotal:    session.ValorTotal,
	}
	if session.ErrorCode != nil {
		status.ErrorCode = *session.ErrorCode
	}
	if session.ErrorMessage != nil {
		status.ErrorMessage = *session.ErrorMessage
	}

	last, err := s.client.SearchStateTransition.Query().
		Where(searchstatetransition.SearchID(searchID)).
		Order(ent.Desc(searchstatetransition.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		status.LastTransition = &models.SearchTransition{
			SearchID:                last.SearchID,
			FromState:               models.SearchState(last.FromState),
			ToState:                 models.SearchState(last.ToState),
			Stage:                   last.Stage,
			Details:                 last.Details,
			DurationSincePreviousMS: last.DurationSincePreviousMs,
			CreatedAt:               last.CreatedAt,
		}
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query last transition: %w", err)
	}

	return status, nil
}

// ListByUser returns the most recent searches of a user, newest first.
func (s *SearchService) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*ent.SearchSession, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := s.client.SearchSession.Query().
		Where(searchsession.UserID(userID))

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count searches: %w", err)
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(searchsession.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list searches: %w", err)
	}
	return sessions, total, nil
}

// PurgeOldSearches deletes terminal sessions completed before the cutoff,
// transition rows first. Idempotent and safe to run from multiple pods.
func (s *SearchService) PurgeOldSearches(ctx context.Context, cutoff time.Time) (int, error) {
	ids, err := s.client.SearchSession.Query().
		Where(
			searchsession.CompletedAtNotNil(),
			searchsession.CompletedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query purgeable searches: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if _, err := s.client.SearchStateTransition.Delete().
		Where(searchstatetransition.SearchIDIn(ids...)).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to delete transitions: %w", err)
	}

	n, err := s.client.SearchSession.Delete().
		Where(searchsession.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sessions: %w", err)
	}
	return n, nil
}
