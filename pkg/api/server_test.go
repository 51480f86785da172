package api

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidiq/bidiq/pkg/progress"
)

func TestServer_ShutdownBeforeStart(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil, nil, nil)
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestServer_StartAndShutdown(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil, nil, nil)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start("127.0.0.1:0")
	}()

	// Give the listener a moment to bind before draining it.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}

func TestWriteSSEEvent_PlainWriter(t *testing.T) {
	var buf bytes.Buffer
	ev := progress.Event{Stage: "fetching", Progress: 25, Message: "SP concluído"}

	require.NoError(t, writeSSEEvent(&buf, ev))
	out := buf.String()
	assert.Contains(t, out, "event: progress\n")
	assert.Contains(t, out, `"stage":"fetching"`)
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n\n")))
}
