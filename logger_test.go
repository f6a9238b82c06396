package heatmap

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// recordingHandler keeps every log record it receives.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}
func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestDefaultLoggerIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger has logging enabled")
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent default")
	}
}

func TestRenderWarnsWhenOverlyDense(t *testing.T) {
	h := &recordingHandler{}
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	r := New(50, 50)
	r.DotSize = 10
	r.Scheme = rampScheme()

	// 400 identical points: every covered cell saturates.
	points := make([]vec.Vec2, 400)
	for i := range points {
		points[i] = vec.Vec2{X: 1, Y: 1}
	}
	if _, err := r.Render(points); err != nil {
		t.Fatal(err)
	}

	found := false
	for _, rec := range h.records {
		if rec.Level == slog.LevelWarn {
			found = true
		}
	}
	if !found {
		t.Error("no warning logged for a fully saturated density surface")
	}

	// a sparse render must not warn
	h.records = nil
	if _, err := r.Render([]vec.Vec2{{X: 1, Y: 1}}); err != nil {
		t.Fatal(err)
	}
	if len(h.records) != 0 {
		t.Errorf("sparse render logged %d records, want none", len(h.records))
	}
}
