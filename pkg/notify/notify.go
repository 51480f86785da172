// Package notify delivers terminal-search notifications to users. The
// default implementation writes an in-app message row; richer channels
// (email) plug in behind the same interface.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bidiq/bidiq/ent"
	"github.com/bidiq/bidiq/pkg/models"
)

// Notifier is the delivery interface. A nil *Service is a valid no-op
// notifier, so callers never need to branch on configuration.
type Notifier interface {
	SearchFinished(ctx context.Context, userID, searchID string, state models.SearchState, totalFiltered int)
}

// Service writes notifications to the messages table.
type Service struct {
	client *ent.Client
}

// NewService creates the message-backed notifier. A nil client yields a
// notifier that logs and drops.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// SearchFinished records a terminal-state notification. Failures are logged
// and swallowed; notification is never on the critical path.
func (s *Service) SearchFinished(ctx context.Context, userID, searchID string, state models.SearchState, totalFiltered int) {
	if s == nil || s.client == nil {
		slog.DebugContext(ctx, "Notifier disabled, dropping notification",
			"search_id", searchID, "state", state)
		return
	}

	kind, title, body := renderSearchFinished(state, totalFiltered)
	_, err := s.client.Message.Create().
		SetUserID(userID).
		SetKind(kind).
		SetTitle(title).
		SetBody(body).
		SetSearchID(searchID).
		Save(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Failed to persist notification",
			"search_id", searchID, "user_id", userID, "error", err)
		return
	}
	slog.InfoContext(ctx, "Notification delivered", "search_id", searchID, "kind", kind)
}

func renderSearchFinished(state models.SearchState, totalFiltered int) (kind, title, body string) {
	switch state {
	case models.StateCompleted:
		if totalFiltered == 0 {
			return "info", "Busca concluída",
				"Sua busca terminou sem resultados para os filtros informados."
		}
		return "success", "Busca concluída",
			fmt.Sprintf("Sua busca encontrou %d licitações relevantes.", totalFiltered)
	case models.StateRateLimited:
		return "warning", "Busca não executada",
			"Limite de buscas atingido. Tente novamente mais tarde."
	case models.StateTimedOut:
		return "error", "Busca expirou",
			"As fontes públicas demoraram demais para responder. Tente novamente."
	default:
		return "error", "Busca falhou",
			"Ocorreu um erro ao processar sua busca. Nossa equipe foi notificada."
	}
}
