// Package sources implements the per-upstream adapter framework: the
// Adapter capability set, the lazy record stream with page-cap and
// duplicate suppression, and one adapter per configured procurement API.
package sources

import (
	"context"
	"time"

	"github.com/bidiq/bidiq/pkg/models"
)

// MaxPages is the safety net against misbehaving upstream pagination: no
// single fetch walks more than this many pages.
const MaxPages = 100

// HealthCheckTimeout bounds every adapter health probe.
const HealthCheckTimeout = 5 * time.Second

// FetchParams carries the server-side filterable part of a search. Any
// filter the upstream cannot apply server-side must be applied client-side
// by the adapter before records leave it.
type FetchParams struct {
	DataInicial time.Time
	DataFinal   time.Time
	UFs         []string
	Modalidades []int
	ValorMin    float64
	ValorMax    float64
	Keywords    []string

	// OnUFComplete, when set, is called by adapters that fetch UF by UF as
	// each one finishes, with the number of records it yielded. Invoked
	// from the adapter's fetch goroutine; implementations must be
	// concurrency-safe.
	OnUFComplete func(source, uf string, count int)
}

// Adapter is the capability set every upstream source implements.
type Adapter interface {
	// Metadata describes the upstream (codes, capabilities, priority).
	Metadata() models.SourceMetadata

	// HealthCheck probes the upstream. Implementations must return within
	// HealthCheckTimeout and must not panic.
	HealthCheck(ctx context.Context) models.SourceHealth

	// Fetch starts a lazy stream of normalized records for the date range.
	// Pagination and server-side filtering are the adapter's business; the
	// stream suppresses duplicate source ids within the fetch.
	Fetch(ctx context.Context, params FetchParams) (*RecordStream, error)

	// Close releases pooled resources.
	Close() error
}

// wantUF reports whether uf is in the requested set (empty set = all).
func wantUF(uf string, ufs []string) bool {
	if len(ufs) == 0 {
		return true
	}
	for _, u := range ufs {
		if models.NormalizeUF(u) == uf {
			return true
		}
	}
	return false
}
