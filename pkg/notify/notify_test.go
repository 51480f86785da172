package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/ent/message"
	"github.com/bidiq/bidiq/pkg/models"
	testdb "github.com/bidiq/bidiq/test/database"
)

func TestSearchFinished_WritesMessageRow(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	svc.SearchFinished(ctx, "user-1", "search-1", models.StateCompleted, 12)

	row, err := client.Client.Message.Query().
		Where(message.UserID("user-1"), message.SearchID("search-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "success", row.Kind)
	assert.Equal(t, "Busca concluída", row.Title)
	assert.Contains(t, row.Body, "12 licitações")
	assert.False(t, row.Read)
}

func TestSearchFinished_NilServiceIsNoop(t *testing.T) {
	var svc *Service
	// Must not panic.
	svc.SearchFinished(context.Background(), "user-1", "search-1", models.StateFailed, 0)
}

func TestRenderSearchFinished(t *testing.T) {
	tests := []struct {
		name     string
		state    models.SearchState
		filtered int
		kind     string
		title    string
	}{
		{"completed with results", models.StateCompleted, 5, "success", "Busca concluída"},
		{"completed empty", models.StateCompleted, 0, "info", "Busca concluída"},
		{"rate limited", models.StateRateLimited, 0, "warning", "Busca não executada"},
		{"timed out", models.StateTimedOut, 0, "error", "Busca expirou"},
		{"failed", models.StateFailed, 0, "error", "Busca falhou"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, title, body := renderSearchFinished(tt.state, tt.filtered)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.title, title)
			assert.NotEmpty(t, body)
		})
	}
}
