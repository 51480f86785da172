package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/bidiq/bidiq/pkg/progress"
)

// sseHeartbeatInterval is how often an idle stream emits a comment line so
// intermediaries keep the connection open.
const sseHeartbeatInterval = 15 * time.Second

// eventsHandler handles GET /v1/search/:id/events: replays the tracker's
// buffered events, then streams live ones until the terminal event.
func (s *Server) eventsHandler(c *echo.Context) error {
	searchID := c.Param("id")
	if searchID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "identificador da busca é obrigatório")
	}

	userID := currentUserID(c)
	if s.sseGuard != nil {
		if !s.sseGuard.Acquire(userID) {
			return echo.NewHTTPError(http.StatusTooManyRequests,
				"limite de conexões simultâneas atingido")
		}
		defer s.sseGuard.Release(userID)
	}

	ctx := c.Request().Context()

	tracker, ok := s.registry.Get(searchID)
	if !ok {
		tracker = s.registry.Reconstruct(ctx, searchID)
	}
	if tracker == nil {
		return s.replayTerminal(c, searchID)
	}

	res := c.Response()
	h := res.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	flusher, _ := res.(http.Flusher)

	events, cancel := tracker.Subscribe()
	defer cancel()

	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-heartbeat.C:
			fmt.Fprint(res, ": ping\n\n")
			flush(flusher)
		case ev, open := <-events:
			if !open {
				return nil
			}
			if err := writeSSEEvent(res, ev); err != nil {
				return nil
			}
			flush(flusher)
		}
	}
}

// replayTerminal serves the SSE endpoint for a search no replica tracks
// anymore: a single event synthesized from the session row.
func (s *Server) replayTerminal(c *echo.Context, searchID string) error {
	status, err := s.searchService.GetStatus(c.Request().Context(), searchID)
	if err != nil {
		return mapServiceError(err)
	}
	if !status.Status.IsTerminal() {
		// Running elsewhere and the mirror is gone; the client must poll the
		// status endpoint instead.
		return echo.NewHTTPError(http.StatusNotFound, "progresso não disponível para esta busca")
	}

	ev := progress.Event{
		Stage:     string(status.Status),
		Progress:  status.Status.ProgressPercent(),
		Message:   "Busca finalizada",
		Timestamp: time.Now(),
	}
	if status.ErrorMessage != "" {
		ev.Progress = -1
		ev.Message = status.ErrorMessage
	}

	res := c.Response()
	h := res.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	res.WriteHeader(http.StatusOK)

	if err := writeSSEEvent(res, ev); err != nil {
		return nil
	}
	flusher, _ := res.(http.Flusher)
	flush(flusher)
	return nil
}

func writeSSEEvent(w io.Writer, ev progress.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: progress\ndata: %s\n\n", data)
	return err
}

// flush pushes buffered bytes to the client. The standard response writer
// implements http.Flusher; a wrapper that does not simply batches.
func flush(f http.Flusher) {
	if f != nil {
		f.Flush()
	}
}
