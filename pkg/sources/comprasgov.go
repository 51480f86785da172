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

// CodeComprasGov identifies the federal Compras.gov.br open-data source.
const CodeComprasGov = "comprasgov"

const comprasPageSize = 100

// ComprasGovAdapter speaks the Compras.gov.br open-data API. The upstream
// has no server-side UF filter, so UF selection happens client-side before
// records leave the adapter.
type ComprasGovAdapter struct {
	client *upstream.Client
	meta   models.SourceMetadata
}

// NewComprasGovAdapter creates the adapter.
func NewComprasGovAdapter(client *upstream.Client) *ComprasGovAdapter {
	return &ComprasGovAdapter{
		client: client,
		meta: models.SourceMetadata{
			Name:    "Compras.gov.br Dados Abertos",
			Code:    CodeComprasGov,
			BaseURL: "https://dadosabertos.compras.gov.br",
			Capabilities: models.Capabilities{
				Pagination: true,
				DateRange:  true,
			},
			RateLimitRPS:   2,
			TypicalLatency: 5 * time.Second,
			Priority:       2,
		},
	}
}

func (a *ComprasGovAdapter) Metadata() models.SourceMetadata { return a.meta }

func (a *ComprasGovAdapter) HealthCheck(ctx context.Context) (health models.SourceHealth) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("ComprasGov health check panicked", "panic", r)
			health = models.SourceUnavailable
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, HealthCheckTimeout)
	defer cancel()

	_, err := a.client.DoJSON(ctx, upstream.Request{
		Method:  http.MethodGet,
		Path:    "/modulo-contratacoes/1_consultarContratacoes",
		Query:   url.Values{"pagina": {"1"}, "tamanhoPagina": {"1"}},
		Timeout: HealthCheckTimeout,
		NoCache: true,
	})
	if err != nil {
		return models.SourceUnavailable
	}
	return models.SourceAvailable
}

func (a *ComprasGovAdapter) Fetch(ctx context.Context, params FetchParams) (*RecordStream, error) {
	fetchCtx, cancel := context.WithCancel(ctx)
	stream := newRecordStream(cancel)

	go func() {
		defer stream.finish()

		for page := 1; page <= MaxPages; page++ {
			v, err := a.client.DoJSON(fetchCtx, upstream.Request{
				Method: http.MethodGet,
				Path:   "/modulo-contratacoes/1_consultarContratacoes",
				Query: url.Values{
					"dataPublicacaoInicial": {params.DataInicial.Format("2006-01-02")},
					"dataPublicacaoFinal":   {params.DataFinal.Format("2006-01-02")},
					"pagina":                {strconv.Itoa(page)},
					"tamanhoPagina":         {strconv.Itoa(comprasPageSize)},
				},
			})
			if err != nil {
				stream.fail(err)
				return
			}

			items := asRawList(v)
			for _, item := range items {
				rec, nerr := a.normalize(item)
				if nerr != nil {
					slog.Warn("ComprasGov record normalization failed, skipping", "error", nerr)
					continue
				}
				// No server-side UF filter upstream.
				if !wantUF(rec.UF, params.UFs) {
					continue
				}
				if !stream.emit(fetchCtx, rec) {
					return
				}
			}

			if len(items) < comprasPageSize {
				return
			}
		}
		slog.Warn("ComprasGov pagination hit the page cap", "cap", MaxPages)
	}()

	return stream, nil
}

func (a *ComprasGovAdapter) normalize(item raw) (*models.UnifiedProcurement, error) {
	rec := models.UnifiedProcurement{
		SourceID:         item.str("idContratacao"),
		SourceName:       CodeComprasGov,
		Objeto:           item.str("objeto"),
		ValorEstimado:    item.num("valorTotalEstimado"),
		Orgao:            item.str("nomeOrgao"),
		CNPJOrgao:        item.str("cnpjOrgao"),
		UF:               item.str("uf"),
		Municipio:        item.str("municipio"),
		NumeroEdital:     item.str("numeroCompra"),
		Ano:              item.intval("anoCompra"),
		Modalidade:       item.intval("codigoModalidade"),
		Situacao:         item.str("situacao"),
		Esfera:           item.str("esfera"),
		Poder:            item.str("poder"),
		LinkEdital:       item.str("uriEdital"),
		DataPublicacao:   ParseTime(item.str("dataPublicacao")),
		DataAbertura:     ParseTime(item.str("dataAbertura")),
		DataEncerramento: ParseTime(item.str("dataEncerramento")),
		RawData:          item,
	}
	if rec.SourceID == "" {
		rec.SourceID = item.str("numeroControlePNCP")
	}
	return models.NewUnifiedProcurement(rec)
}

func (a *ComprasGovAdapter) Close() error { return nil }
