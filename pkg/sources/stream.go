package sources

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/bidiq/bidiq/pkg/models"
)

// ErrStreamClosed is returned by Next after Close.
var ErrStreamClosed = errors.New("record stream closed")

// RecordStream is a pull-style stream of normalized records. The producer
// goroutine emits through it; the consumer pulls with Next until io.EOF.
// Duplicate source ids within one stream are suppressed at the emit side.
type RecordStream struct {
	ch     chan *models.UnifiedProcurement
	cancel context.CancelFunc

	mu      sync.Mutex
	err     error
	closed  bool
	doneCh  chan struct{}
	seenIDs map[string]bool
}

// newRecordStream creates a stream whose producer runs under the given
// cancel function.
func newRecordStream(cancel context.CancelFunc) *RecordStream {
	return &RecordStream{
		ch:      make(chan *models.UnifiedProcurement, 64),
		cancel:  cancel,
		doneCh:  make(chan struct{}),
		seenIDs: make(map[string]bool),
	}
}

// Next returns the next record. io.EOF signals a clean end of stream; any
// other error is the producer's terminal failure.
func (s *RecordStream) Next(ctx context.Context) (*models.UnifiedProcurement, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case rec, ok := <-s.ch:
		if !ok {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.err != nil {
				return nil, s.err
			}
			if s.closed {
				return nil, ErrStreamClosed
			}
			return nil, io.EOF
		}
		return rec, nil
	}
}

// Close aborts the producer and releases the stream. Safe to call multiple
// times and concurrently with Next.
func (s *RecordStream) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		s.cancel()
	}
	s.mu.Unlock()
}

// emit sends one record, suppressing duplicates by source id. Returns false
// when the consumer is gone.
func (s *RecordStream) emit(ctx context.Context, rec *models.UnifiedProcurement) bool {
	s.mu.Lock()
	if s.seenIDs[rec.SourceID] {
		s.mu.Unlock()
		return true
	}
	s.seenIDs[rec.SourceID] = true
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		return false
	case s.ch <- rec:
		return true
	}
}

// fail records the terminal error; finish must still be called.
func (s *RecordStream) fail(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
}

// finish closes the channel; the producer calls it exactly once.
func (s *RecordStream) finish() {
	close(s.ch)
	close(s.doneCh)
}

// NewStaticStream returns a stream preloaded with the given records.
func NewStaticStream(records []*models.UnifiedProcurement) *RecordStream {
	ctx, cancel := context.WithCancel(context.Background())
	s := newRecordStream(cancel)
	go func() {
		defer s.finish()
		for _, r := range records {
			if !s.emit(ctx, r) {
				return
			}
		}
	}()
	return s
}

// Collect drains a stream into a slice. Used by the consolidation engine and
// tests; a clean io.EOF is not an error.
func Collect(ctx context.Context, s *RecordStream) ([]*models.UnifiedProcurement, error) {
	defer s.Close()
	var out []*models.UnifiedProcurement
	for {
		rec, err := s.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, rec)
	}
}
