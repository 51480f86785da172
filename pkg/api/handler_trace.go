package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// searchTraceHandler handles GET /v1/admin/search-trace/:id: the combined
// diagnostics view (session, timeline, live progress, job pool). Admins only.
func (s *Server) searchTraceHandler(c *echo.Context) error {
	searchID := c.Param("id")
	if searchID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "identificador da busca é obrigatório")
	}

	ctx := c.Request().Context()
	if s.quotaService == nil || !s.quotaService.IsExempt(ctx, currentUserID(c)) {
		return echo.NewHTTPError(http.StatusForbidden, "acesso restrito a administradores")
	}

	status, err := s.searchService.GetStatus(ctx, searchID)
	if err != nil {
		return mapServiceError(err)
	}
	timeline, err := s.searchService.GetTimeline(ctx, searchID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := &TraceResponse{
		Search:   status,
		Timeline: timeline,
	}

	if tracker, ok := s.registry.Get(searchID); ok {
		resp.Progress = tracker.Snapshot()
		resp.Degraded = tracker.Degraded
	}
	if s.pool != nil {
		h := s.pool.Health()
		resp.Jobs = &h
	}

	return c.JSON(http.StatusOK, resp)
}
