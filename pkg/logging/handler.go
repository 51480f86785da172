package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/bidiq/bidiq/pkg/sanitize"
)

// LevelCritical is reserved for invariant violations (invalid state
// transitions). It sits above slog.LevelError.
const LevelCritical = slog.LevelError + 4

// correlationKeys are attached verbatim: masking them would break support
// correlation, which is their whole purpose.
var correlationKeys = map[string]bool{
	"request_id":     true,
	"correlation_id": true,
	"search_id":      true,
}

// ContextHandler wraps an inner slog.Handler, attaching the correlation
// scope from the record's context and sanitizing every string attribute.
type ContextHandler struct {
	inner slog.Handler
}

// NewContextHandler wraps inner with correlation + sanitization.
func NewContextHandler(inner slog.Handler) *ContextHandler {
	return &ContextHandler{inner: inner}
}

// Setup installs the default process logger: JSON to stderr at the given
// level, with correlation and sanitization stages.
func Setup(level slog.Level) {
	inner := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lv, ok := a.Value.Any().(slog.Level); ok && lv >= LevelCritical {
					a.Value = slog.StringValue("CRITICAL")
				}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(NewContextHandler(inner)))
}

// ParseLevel maps a LOG_LEVEL string to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, sanitize.Apply(rec.Message), rec.PC)

	out.AddAttrs(
		slog.String("request_id", RequestID(ctx)),
		slog.String("correlation_id", CorrelationID(ctx)),
		slog.String("search_id", SearchID(ctx)),
	)

	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(sanitizeAttr(a))
		return true
	})

	return h.inner.Handle(ctx, out)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		clean = append(clean, sanitizeAttr(a))
	}
	return &ContextHandler{inner: h.inner.WithAttrs(clean)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name)}
}

func sanitizeAttr(a slog.Attr) slog.Attr {
	if sanitize.IsRedactedKey(a.Key) {
		return slog.String(a.Key, sanitize.Redacted)
	}
	if correlationKeys[a.Key] {
		return a
	}
	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, sanitize.Apply(a.Value.String()))
	}
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		clean := make([]any, 0, len(attrs))
		for _, ga := range attrs {
			clean = append(clean, sanitizeAttr(ga))
		}
		return slog.Group(a.Key, clean...)
	}
	return a
}
