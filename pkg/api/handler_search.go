package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/bidiq/bidiq/pkg/filter"
	"github.com/bidiq/bidiq/pkg/logging"
	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/pipeline"
	"github.com/bidiq/bidiq/pkg/sources"
)

// buscarHandler handles POST /v1/buscar: validates the submission, records
// the session, and dispatches the pipeline in the background.
func (s *Server) buscarHandler(c *echo.Context) error {
	var req BuscarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "corpo da requisição inválido")
	}
	if err := req.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID := currentUserID(c)
	if req.SearchID == "" {
		req.SearchID = uuid.NewString()
	}

	pipelineReq, err := s.toPipelineRequest(&req, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inicio, fim := req.DateRange()
	_, err = s.searchService.CreateSearch(c.Request().Context(), models.SearchRequest{
		SearchID:       req.SearchID,
		UserID:         userID,
		Sectors:        sectorIDs(&req),
		UFs:            req.Ufs,
		DataInicial:    &inicio,
		DataFinal:      &fim,
		CustomKeywords: req.TermosBusca,
		Filters:        requestFilters(&req),
	})
	if err != nil {
		return mapServiceError(err)
	}

	trace := logging.CorrelationID(c.Request().Context())
	go func() {
		ctx := logging.Rescope(context.Background(), trace, req.SearchID)
		if _, runErr := s.runner.Run(ctx, pipelineReq); runErr != nil {
			slog.ErrorContext(ctx, "Search pipeline finished with error",
				"search_id", req.SearchID, "error", runErr)
		}
	}()

	return c.JSON(http.StatusAccepted, &BuscarResponse{
		SearchID: req.SearchID,
		Status:   string(models.StateCreated),
		Message:  "Busca aceita para processamento",
	})
}

// toPipelineRequest maps the DTO to the pipeline request, resolving the
// sector id against the loaded registry.
func (s *Server) toPipelineRequest(req *BuscarRequest, userID string) (pipeline.Request, error) {
	inicio, fim := req.DateRange()

	fc := filter.Config{
		UFs:             req.Ufs,
		Modalidades:     req.Modalidades,
		ValorMin:        req.ValorMinimo,
		ValorMax:        req.ValorMaximo,
		Status:          req.Status,
		Esferas:         req.Esferas,
		Municipios:      req.Municipios,
		Modo:            models.SearchMode(req.ModoBusca),
		Ordering:        models.Ordering(req.Ordenacao),
		CheckSanctions:  req.CheckSanctions,
		AllowRelaxation: true,
	}

	keywords := req.TermosBusca
	if req.SetorID != "" {
		sector, ok := s.sectors.Get(req.SetorID)
		if !ok {
			return pipeline.Request{}, echo.NewHTTPError(http.StatusBadRequest, "setor desconhecido: "+req.SetorID)
		}
		fc.Sector = sector
		keywords = sector.Keywords
	} else {
		fc.CustomTerms = req.TermosBusca
	}

	params := sources.FetchParams{
		DataInicial: inicio,
		DataFinal:   fim,
		UFs:         req.Ufs,
		Modalidades: req.Modalidades,
		Keywords:    keywords,
	}
	if req.ValorMinimo != nil {
		params.ValorMin = *req.ValorMinimo
	}
	if req.ValorMaximo != nil {
		params.ValorMax = *req.ValorMaximo
	}

	return pipeline.Request{
		SearchID: req.SearchID,
		UserID:   userID,
		Params:   params,
		Filter:   fc,
	}, nil
}

func sectorIDs(req *BuscarRequest) []string {
	if req.SetorID == "" {
		return nil
	}
	return []string{req.SetorID}
}

// requestFilters persists the non-structural knobs on the session row for
// later diagnostics.
func requestFilters(req *BuscarRequest) map[string]any {
	f := make(map[string]any)
	if len(req.Status) > 0 {
		f["status"] = req.Status
	}
	if len(req.Modalidades) > 0 {
		f["modalidades"] = req.Modalidades
	}
	if req.ValorMinimo != nil {
		f["valor_minimo"] = *req.ValorMinimo
	}
	if req.ValorMaximo != nil {
		f["valor_maximo"] = *req.ValorMaximo
	}
	if len(req.Esferas) > 0 {
		f["esferas"] = req.Esferas
	}
	if len(req.Municipios) > 0 {
		f["municipios"] = req.Municipios
	}
	if req.Ordenacao != "" {
		f["ordenacao"] = req.Ordenacao
	}
	if req.ModoBusca != "" {
		f["modo_busca"] = req.ModoBusca
	}
	if req.CheckSanctions {
		f["check_sanctions"] = true
	}
	if req.ForceFresh {
		f["force_fresh"] = true
	}
	if len(f) == 0 {
		return nil
	}
	return f
}
