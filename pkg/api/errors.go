package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/bidiq/bidiq/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
// Detail strings are user-facing and therefore Portuguese.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "busca não encontrada")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "busca com este identificador já existe")
	}
	if errors.Is(err, services.ErrQuotaExceeded) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "quota mensal de buscas esgotada")
	}
	if errors.Is(err, services.ErrTrialExpired) {
		return echo.NewHTTPError(http.StatusForbidden, "trial expirado")
	}
	if errors.Is(err, services.ErrRateLimited) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "limite de requisições excedido")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "erro interno do servidor")
}
