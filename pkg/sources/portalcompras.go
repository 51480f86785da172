package sources

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bidiq/bidiq/pkg/models"
	"github.com/bidiq/bidiq/pkg/upstream"
)

// CodePortalCompras identifies the credentialed Portal de Compras Públicas
// source. Disabled by default; requires an API key.
const CodePortalCompras = "pcp"

const pcpPageSize = 50

// PortalComprasAdapter speaks the Portal de Compras Públicas API.
//
// The upstream query parameter names below have not been verified against
// current API documentation and must be confirmed before this source is
// enabled in production.
type PortalComprasAdapter struct {
	client *upstream.Client
	meta   models.SourceMetadata
}

// NewPortalComprasAdapter creates the adapter. The API key travels as a
// client-level header; the adapter itself never sees it.
func NewPortalComprasAdapter(client *upstream.Client) *PortalComprasAdapter {
	return &PortalComprasAdapter{
		client: client,
		meta: models.SourceMetadata{
			Name:    "Portal de Compras Públicas",
			Code:    CodePortalCompras,
			BaseURL: "https://api.portaldecompraspublicas.com.br/v2",
			Capabilities: models.Capabilities{
				FilterUF:   true,
				Pagination: true,
				DateRange:  true,
				RealTime:   true,
			},
			RateLimitRPS:       3,
			TypicalLatency:     2 * time.Second,
			Priority:           3,
			RequiresCredential: true,
		},
	}
}

func (a *PortalComprasAdapter) Metadata() models.SourceMetadata { return a.meta }

func (a *PortalComprasAdapter) HealthCheck(ctx context.Context) (health models.SourceHealth) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("PortalCompras health check panicked", "panic", r)
			health = models.SourceUnavailable
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, HealthCheckTimeout)
	defer cancel()

	_, err := a.client.DoJSON(ctx, upstream.Request{
		Method:  http.MethodGet,
		Path:    "/licitacoes",
		Query:   url.Values{"pagina": {"1"}, "itensPorPagina": {"1"}},
		Timeout: HealthCheckTimeout,
		NoCache: true,
	})
	if err != nil {
		if upstream.KindOf(err) == upstream.KindAuth {
			return models.SourceUnavailable
		}
		return models.SourceDegraded
	}
	return models.SourceAvailable
}

func (a *PortalComprasAdapter) Fetch(ctx context.Context, params FetchParams) (*RecordStream, error) {
	fetchCtx, cancel := context.WithCancel(ctx)
	stream := newRecordStream(cancel)

	go func() {
		defer stream.finish()

		for page := 1; page <= MaxPages; page++ {
			query := url.Values{
				"dataInicial":    {params.DataInicial.Format("2006-01-02")},
				"dataFinal":      {params.DataFinal.Format("2006-01-02")},
				"pagina":         {strconv.Itoa(page)},
				"itensPorPagina": {strconv.Itoa(pcpPageSize)},
			}
			for _, uf := range params.UFs {
				query.Add("uf", models.NormalizeUF(uf))
			}

			v, err := a.client.DoJSON(fetchCtx, upstream.Request{
				Method: http.MethodGet,
				Path:   "/licitacoes",
				Query:  query,
			})
			if err != nil {
				stream.fail(err)
				return
			}

			items := asRawList(v)
			for _, item := range items {
				rec, nerr := a.normalize(item)
				if nerr != nil {
					slog.Warn("PortalCompras record normalization failed, skipping", "error", nerr)
					continue
				}
				if !stream.emit(fetchCtx, rec) {
					return
				}
			}

			if len(items) < pcpPageSize {
				return
			}
		}
		slog.Warn("PortalCompras pagination hit the page cap", "cap", MaxPages)
	}()

	return stream, nil
}

func (a *PortalComprasAdapter) normalize(item raw) (*models.UnifiedProcurement, error) {
	comprador := item.child("comprador")

	rec := models.UnifiedProcurement{
		SourceID:         item.str("codigoLicitacao"),
		SourceName:       CodePortalCompras,
		Objeto:           item.str("objeto"),
		ValorEstimado:    item.num("valorEstimado"),
		Orgao:            comprador.str("razaoSocial"),
		CNPJOrgao:        comprador.str("cnpj"),
		UF:               comprador.str("uf"),
		Municipio:        comprador.str("municipio"),
		NumeroEdital:     item.str("numero"),
		Ano:              item.intval("ano"),
		Modalidade:       item.intval("codigoModalidade"),
		Situacao:         item.str("situacao"),
		Esfera:           comprador.str("esfera"),
		LinkEdital:       item.str("urlEdital"),
		LinkPortal:       item.str("urlPortal"),
		DataPublicacao:   ParseTime(item.str("dataPublicacao")),
		DataAbertura:     ParseTime(item.str("dataAbertura")),
		DataEncerramento: ParseTime(item.str("dataFinalPropostas")),
		RawData:          item,
	}
	return models.NewUnifiedProcurement(rec)
}

func (a *PortalComprasAdapter) Close() error { return nil }
