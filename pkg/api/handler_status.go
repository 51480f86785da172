package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// getStatusHandler handles GET /v1/search/:id/status.
func (s *Server) getStatusHandler(c *echo.Context) error {
	searchID := c.Param("id")
	if searchID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "identificador da busca é obrigatório")
	}

	status, err := s.searchService.GetStatus(c.Request().Context(), searchID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, status)
}

// getTimelineHandler handles GET /v1/search/:id/timeline.
func (s *Server) getTimelineHandler(c *echo.Context) error {
	searchID := c.Param("id")
	if searchID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "identificador da busca é obrigatório")
	}

	timeline, err := s.searchService.GetTimeline(c.Request().Context(), searchID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, timeline)
}
