// Package slogt captures slog output for test assertions.
package slogt

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// Entry is one captured log record
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// Capture collects every record logged through Logger. Safe for
// concurrent use.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
}

// NewCapture creates an empty capture
func NewCapture() *Capture {
	return &Capture{}
}

// Logger returns a logger whose records land in the capture
func (c *Capture) Logger() *slog.Logger {
	return slog.New(&handler{capture: c})
}

// Entries returns a copy of everything captured so far
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Last returns the most recent entry, failing the test if nothing was
// logged
func (c *Capture) Last(t *testing.T) Entry {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) == 0 {
		t.Fatal("no log entries captured")
	}
	return c.entries[len(c.entries)-1]
}

func (c *Capture) add(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, e)
}

type handler struct {
	capture *Capture
	attrs   []slog.Attr
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	h.capture.add(Entry{Level: r.Level, Message: r.Message, Attrs: attrs})
	return nil
}

func (h *handler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &handler{capture: h.capture, attrs: merged}
}

func (h *handler) WithGroup(string) slog.Handler {
	// Groups are flattened in tests; assertions key on attr names only
	return h
}
