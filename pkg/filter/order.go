package filter

import (
	"sort"
	"time"

	"github.com/bidiq/bidiq/pkg/models"
)

// order sorts the final set in place. Records with null dates or values sort
// last regardless of direction.
func (e *Engine) order(out []*models.UnifiedProcurement, cfg Config, matches map[*models.UnifiedProcurement]*matchInfo) {
	switch cfg.Ordering {
	case models.OrderDateDesc:
		sortByTime(out, func(r *models.UnifiedProcurement) *time.Time { return r.DataPublicacao }, true)
	case models.OrderDateAsc:
		sortByTime(out, func(r *models.UnifiedProcurement) *time.Time { return r.DataPublicacao }, false)
	case models.OrderValueDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ValorEstimado > out[j].ValorEstimado })
	case models.OrderValueAsc:
		sort.SliceStable(out, func(i, j int) bool {
			// Zero means unknown, which sorts last even ascending.
			vi, vj := out[i].ValorEstimado, out[j].ValorEstimado
			if (vi == 0) != (vj == 0) {
				return vj == 0
			}
			return vi < vj
		})
	case models.OrderDeadlineNear:
		sortByTime(out, func(r *models.UnifiedProcurement) *time.Time { return r.DataEncerramento }, false)
	default: // relevance
		sort.SliceStable(out, func(i, j int) bool {
			si, sj := matches[out[i]].score(), matches[out[j]].score()
			if si != sj {
				return si > sj
			}
			ti, tj := out[i].DataPublicacao, out[j].DataPublicacao
			if (ti == nil) != (tj == nil) {
				return tj == nil
			}
			if ti == nil {
				return false
			}
			return ti.After(*tj)
		})
	}
}

func sortByTime(out []*models.UnifiedProcurement, field func(*models.UnifiedProcurement) *time.Time, desc bool) {
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := field(out[i]), field(out[j])
		if (ti == nil) != (tj == nil) {
			return tj == nil
		}
		if ti == nil {
			return false
		}
		if desc {
			return ti.After(*tj)
		}
		return ti.Before(*tj)
	})
}
