package sources

import (
	"strconv"
	"strings"
	"time"
)

// timeLayouts are the formats upstreams have been observed to emit, tried in
// order: ISO 8601 with and without milliseconds and timezone, then Brazilian
// DD/MM/YYYY with optional time.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// ParseTime parses an upstream timestamp, returning nil for blank or
// unparsable input. Callers treat nil conservatively.
func ParseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// raw is the narrow dynamic carrier for one upstream payload. It never
// crosses the adapter boundary: normalize consumes it and emits a
// UnifiedProcurement.
type raw map[string]any

func (r raw) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (r raw) num(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.ReplaceAll(strings.TrimSpace(v), ".", ""), ",", "."), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func (r raw) intval(key string) int {
	return int(r.num(key))
}

func (r raw) child(key string) raw {
	if m, ok := r[key].(map[string]any); ok {
		return raw(m)
	}
	return raw{}
}

// asRawList coerces a decoded JSON value into a list of raw maps, tolerating
// both bare arrays and {data: [...]} envelopes.
func asRawList(v any) []raw {
	var items []any
	switch t := v.(type) {
	case []any:
		items = t
	case map[string]any:
		for _, key := range []string{"data", "resultado", "items", "licitacoes"} {
			if list, ok := t[key].([]any); ok {
				items = list
				break
			}
		}
	}
	out := make([]raw, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, raw(m))
		}
	}
	return out
}
