package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	inner := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewContextHandler(inner)), buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestContextHandler_AttachesScope(t *testing.T) {
	logger, buf := captureLogger()

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithCorrelationID(ctx, "corr-1")
	ctx = WithSearchID(ctx, "search-1")

	logger.InfoContext(ctx, "busca iniciada")

	m := lastRecord(t, buf)
	assert.Equal(t, "req-1", m["request_id"])
	assert.Equal(t, "corr-1", m["correlation_id"])
	assert.Equal(t, "search-1", m["search_id"])
}

func TestContextHandler_UnsetDefaults(t *testing.T) {
	logger, buf := captureLogger()

	logger.Info("sem contexto")

	m := lastRecord(t, buf)
	assert.Equal(t, "-", m["request_id"])
	assert.Equal(t, "-", m["correlation_id"])
	assert.Equal(t, "-", m["search_id"])
}

func TestContextHandler_CorrelationFallsBackToRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-9")
	assert.Equal(t, "req-9", CorrelationID(ctx))
}

func TestContextHandler_SanitizesAttrs(t *testing.T) {
	logger, buf := captureLogger()

	logger.Info("quota exceeded",
		"email", "usuario@example.com",
		"password", "hunter2")

	m := lastRecord(t, buf)
	assert.Equal(t, "u***@example.com", m["email"])
	assert.Equal(t, "[REDACTED]", m["password"])
}

func TestContextHandler_CorrelationAttrsNotMasked(t *testing.T) {
	logger, buf := captureLogger()

	ctx := WithSearchID(context.Background(), "550e8400-e29b-41d4-a716-446655440000")
	logger.InfoContext(ctx, "progress")

	m := lastRecord(t, buf)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", m["search_id"])
}

func TestRescope(t *testing.T) {
	ctx := Rescope(context.Background(), "trace-7", "search-7")
	assert.Equal(t, "trace-7", RequestID(ctx))
	assert.Equal(t, "trace-7", CorrelationID(ctx))
	assert.Equal(t, "search-7", SearchID(ctx))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
