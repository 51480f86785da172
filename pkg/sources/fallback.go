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

// CodePNCPConsulta identifies the simplified last-resort fallback: a single
// nationwide pass over the PNCP consultation endpoint with a small page
// budget. Only invoked by the consolidation engine when every regular
// source failed.
const CodePNCPConsulta = "pncp_consulta"

const (
	fallbackPageSize = 50
	fallbackMaxPages = 10
)

// FallbackAdapter is the last-resort source. It trades completeness for
// speed: no per-UF splitting, a hard page budget, client-side UF filter.
type FallbackAdapter struct {
	client *upstream.Client
	meta   models.SourceMetadata
}

// NewFallbackAdapter creates the fallback adapter.
func NewFallbackAdapter(client *upstream.Client) *FallbackAdapter {
	return &FallbackAdapter{
		client: client,
		meta: models.SourceMetadata{
			Name:    "PNCP Consulta (contingência)",
			Code:    CodePNCPConsulta,
			BaseURL: "https://pncp.gov.br/api/consulta",
			Capabilities: models.Capabilities{
				Pagination: true,
				DateRange:  true,
			},
			RateLimitRPS:   5,
			TypicalLatency: 3 * time.Second,
			Priority:       9,
		},
	}
}

func (a *FallbackAdapter) Metadata() models.SourceMetadata { return a.meta }

func (a *FallbackAdapter) HealthCheck(ctx context.Context) (health models.SourceHealth) {
	defer func() {
		if r := recover(); r != nil {
			health = models.SourceUnavailable
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, HealthCheckTimeout)
	defer cancel()

	_, err := a.client.DoJSON(ctx, upstream.Request{
		Method:  http.MethodGet,
		Path:    "/v1/contratacoes/publicacao",
		Query:   url.Values{"pagina": {"1"}, "tamanhoPagina": {"1"}},
		Timeout: HealthCheckTimeout,
		NoCache: true,
	})
	if err != nil {
		return models.SourceUnavailable
	}
	return models.SourceAvailable
}

func (a *FallbackAdapter) Fetch(ctx context.Context, params FetchParams) (*RecordStream, error) {
	fetchCtx, cancel := context.WithCancel(ctx)
	stream := newRecordStream(cancel)

	go func() {
		defer stream.finish()

		for page := 1; page <= fallbackMaxPages; page++ {
			v, err := a.client.DoJSON(fetchCtx, upstream.Request{
				Method: http.MethodGet,
				Path:   "/v1/contratacoes/publicacao",
				Query: url.Values{
					"dataInicial":   {params.DataInicial.Format("20060102")},
					"dataFinal":     {params.DataFinal.Format("20060102")},
					"pagina":        {strconv.Itoa(page)},
					"tamanhoPagina": {strconv.Itoa(fallbackPageSize)},
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
					continue
				}
				if !wantUF(rec.UF, params.UFs) {
					continue
				}
				if !stream.emit(fetchCtx, rec) {
					return
				}
			}

			if !hasMorePages(v, page, len(items)) {
				return
			}
		}
		slog.Info("Fallback fetch reached its page budget", "pages", fallbackMaxPages)
	}()

	return stream, nil
}

func (a *FallbackAdapter) normalize(item raw) (*models.UnifiedProcurement, error) {
	orgao := item.child("orgaoEntidade")
	unidade := item.child("unidadeOrgao")

	return models.NewUnifiedProcurement(models.UnifiedProcurement{
		SourceID:         item.str("numeroControlePNCP"),
		SourceName:       CodePNCPConsulta,
		Objeto:           item.str("objetoCompra"),
		ValorEstimado:    item.num("valorTotalEstimado"),
		Orgao:            orgao.str("razaoSocial"),
		CNPJOrgao:        orgao.str("cnpj"),
		UF:               unidade.str("ufSigla"),
		Municipio:        unidade.str("municipioNome"),
		NumeroEdital:     item.str("numeroCompra"),
		Ano:              item.intval("anoCompra"),
		Modalidade:       item.intval("modalidadeId"),
		Situacao:         item.str("situacaoCompraNome"),
		DataPublicacao:   ParseTime(item.str("dataPublicacaoPncp")),
		DataEncerramento: ParseTime(item.str("dataEncerramentoProposta")),
		RawData:          item,
	})
}

func (a *FallbackAdapter) Close() error { return nil }
