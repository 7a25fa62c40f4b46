package docstore

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// DEBOUNCED WRITER - Coalesces saves within a time window
// =============================================================================

// DebouncedWriter wraps a Store and collapses bursts of Queue calls into a
// single Save once the window elapses. Only the latest queued snapshot is
// written (last-writer-wins, same as the store itself). Queue never blocks
// on I/O; save failures are reported through the onError callback since
// there is no caller left to return them to.
type DebouncedWriter struct {
	store   Store
	window  time.Duration
	onError func(error)

	mu      sync.Mutex
	pending *Document
	timer   *time.Timer
	closed  bool
}

// NewDebouncedWriter creates a writer that flushes window after the most
// recent Queue. onError may be nil.
func NewDebouncedWriter(store Store, window time.Duration, onError func(error)) *DebouncedWriter {
	if onError == nil {
		onError = func(error) {}
	}
	return &DebouncedWriter{store: store, window: window, onError: onError}
}

// Queue schedules doc for saving, replacing any not-yet-written snapshot
// and restarting the window.
func (w *DebouncedWriter) Queue(doc Document) {
	snapshot := doc.Clone()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending = &snapshot
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.window, w.fire)
}

func (w *DebouncedWriter) fire() {
	w.mu.Lock()
	doc := w.pending
	w.pending = nil
	w.mu.Unlock()

	if doc == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := w.store.Save(ctx, *doc); err != nil {
		w.onError(err)
	}
}

// Flush writes the pending snapshot immediately, if any.
func (w *DebouncedWriter) Flush(ctx context.Context) error {
	w.mu.Lock()
	doc := w.pending
	w.pending = nil
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	if doc == nil {
		return nil
	}
	return w.store.Save(ctx, *doc)
}

// Close stops the timer and flushes whatever is still pending. The writer
// accepts no further Queue calls afterwards.
func (w *DebouncedWriter) Close(ctx context.Context) error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	return w.Flush(ctx)
}
