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

// CodePNCP is the short code of the federal procurement portal, the
// dominant source for consolidation health classification.
const CodePNCP = "pncp"

const pncpPageSize = 50

// PNCPAdapter speaks the PNCP consultation API. It fetches per UF so the
// adaptive timeout manager can widen or narrow deadlines independently for
// slow states.
type PNCPAdapter struct {
	client   *upstream.Client
	timeouts *upstream.TimeoutManager
	meta     models.SourceMetadata
}

// NewPNCPAdapter creates the adapter. baseTimeout is the normal per-UF
// deadline (PNCP_TIMEOUT_PER_UF).
func NewPNCPAdapter(client *upstream.Client, baseTimeout time.Duration) *PNCPAdapter {
	return &PNCPAdapter{
		client:   client,
		timeouts: upstream.NewTimeoutManager(CodePNCP, baseTimeout),
		meta: models.SourceMetadata{
			Name:    "Portal Nacional de Contratações Públicas",
			Code:    CodePNCP,
			BaseURL: "https://pncp.gov.br/api/consulta",
			Capabilities: models.Capabilities{
				FilterUF:   true,
				Pagination: true,
				DateRange:  true,
			},
			RateLimitRPS:   5,
			TypicalLatency: 3 * time.Second,
			Priority:       1,
		},
	}
}

func (a *PNCPAdapter) Metadata() models.SourceMetadata { return a.meta }

func (a *PNCPAdapter) HealthCheck(ctx context.Context) (health models.SourceHealth) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("PNCP health check panicked", "panic", r)
			health = models.SourceUnavailable
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, HealthCheckTimeout)
	defer cancel()

	start := time.Now()
	_, err := a.client.DoJSON(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/v1/contratacoes/publicacao",
		Query: url.Values{
			"dataInicial":   {time.Now().AddDate(0, 0, -1).Format("20060102")},
			"dataFinal":     {time.Now().Format("20060102")},
			"pagina":        {"1"},
			"tamanhoPagina": {"1"},
		},
		Timeout: HealthCheckTimeout,
		NoCache: true,
	})
	if err != nil {
		return models.SourceUnavailable
	}
	if time.Since(start) > 3*time.Second {
		return models.SourceDegraded
	}
	return models.SourceAvailable
}

// Fetch walks every requested UF sequentially under its adaptive deadline.
// A UF that times out is skipped with a warning; the fetch as a whole only
// fails when no UF could be queried.
func (a *PNCPAdapter) Fetch(ctx context.Context, params FetchParams) (*RecordStream, error) {
	fetchCtx, cancel := context.WithCancel(ctx)
	stream := newRecordStream(cancel)

	ufs := params.UFs
	if len(ufs) == 0 {
		ufs = []string{""} // nationwide, single pass
	}

	go func() {
		defer stream.finish()
		var lastErr error
		succeeded := 0

		for _, uf := range ufs {
			uf = models.NormalizeUF(uf)
			if err := a.fetchUF(fetchCtx, stream, params, uf); err != nil {
				lastErr = err
				if fetchCtx.Err() != nil {
					return
				}
				slog.Warn("PNCP UF fetch failed, skipping",
					"uf", uf, "error", err, "unhealthy", a.timeouts.Unhealthy(uf))
				continue
			}
			succeeded++
		}

		if succeeded == 0 && lastErr != nil {
			stream.fail(lastErr)
		}
	}()

	return stream, nil
}

func (a *PNCPAdapter) fetchUF(ctx context.Context, stream *RecordStream, params FetchParams, uf string) error {
	deadline := a.timeouts.EffectiveTimeout(uf)
	ufCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	start := time.Now()
	emitted, err := a.walkPages(ufCtx, stream, params, uf)
	a.timeouts.Record(uf, time.Since(start), err == nil)
	if err == nil && params.OnUFComplete != nil {
		params.OnUFComplete(CodePNCP, uf, emitted)
	}
	return err
}

// walkPages returns how many records the UF contributed to the stream.
func (a *PNCPAdapter) walkPages(ctx context.Context, stream *RecordStream, params FetchParams, uf string) (int, error) {
	emitted := 0
	for page := 1; page <= MaxPages; page++ {
		query := url.Values{
			"dataInicial":   {params.DataInicial.Format("20060102")},
			"dataFinal":     {params.DataFinal.Format("20060102")},
			"pagina":        {strconv.Itoa(page)},
			"tamanhoPagina": {strconv.Itoa(pncpPageSize)},
		}
		if uf != "" {
			query.Set("uf", uf)
		}

		v, err := a.client.DoJSON(ctx, upstream.Request{
			Method: http.MethodGet,
			Path:   "/v1/contratacoes/publicacao",
			Query:  query,
		})
		if err != nil {
			return emitted, err
		}

		items := asRawList(v)
		for _, item := range items {
			rec, nerr := a.normalize(item)
			if nerr != nil {
				slog.Warn("PNCP record normalization failed, skipping", "error", nerr)
				continue
			}
			if !stream.emit(ctx, rec) {
				return emitted, ctx.Err()
			}
			emitted++
		}

		if !hasMorePages(v, page, len(items)) {
			return emitted, nil
		}
	}
	slog.Warn("PNCP pagination hit the page cap", "uf", uf, "cap", MaxPages)
	return emitted, nil
}

// normalize maps one PNCP payload to the unified record.
func (a *PNCPAdapter) normalize(item raw) (*models.UnifiedProcurement, error) {
	orgao := item.child("orgaoEntidade")
	unidade := item.child("unidadeOrgao")

	rec := models.UnifiedProcurement{
		SourceID:         item.str("numeroControlePNCP"),
		SourceName:       CodePNCP,
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
		Esfera:           orgao.str("esferaId"),
		Poder:            orgao.str("poderId"),
		LinkEdital:       item.str("linkSistemaOrigem"),
		LinkPortal:       item.str("linkProcessoEletronico"),
		DataPublicacao:   ParseTime(item.str("dataPublicacaoPncp")),
		DataAbertura:     ParseTime(item.str("dataAberturaProposta")),
		DataEncerramento: ParseTime(item.str("dataEncerramentoProposta")),
		RawData:          item,
	}
	return models.NewUnifiedProcurement(rec)
}

func (a *PNCPAdapter) Close() error { return nil }

// hasMorePages inspects the PNCP envelope; when absent it falls back to
// "full page means maybe more".
func hasMorePages(v any, page, got int) bool {
	if env, ok := v.(map[string]any); ok {
		if rest, ok := env["paginasRestantes"].(float64); ok {
			return rest > 0
		}
		if total, ok := env["totalPaginas"].(float64); ok {
			return page < int(total)
		}
	}
	return got >= pncpPageSize
}
