package logging

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

type captureWriter struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *captureWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestPrettyHandlerComponentPrefix(t *testing.T) {
	writer := &captureWriter{}
	level := new(slog.LevelVar)
	logger := slog.New(newPrettyHandler(writer, level))

	logger.With(slog.String(FieldComponent, "labeling")).Info("file labeled", "verses", 31)

	out := writer.String()
	if !strings.Contains(out, "INFO labeling: file labeled") {
		t.Errorf("output missing component prefix: %q", out)
	}
	if !strings.Contains(out, "verses=31") {
		t.Errorf("output missing attribute: %q", out)
	}
}

func TestPrettyHandlerQuotesValues(t *testing.T) {
	writer := &captureWriter{}
	level := new(slog.LevelVar)
	logger := slog.New(newPrettyHandler(writer, level))

	logger.Warn("duplicate key", "book", "1 corinthians")

	out := writer.String()
	if !strings.Contains(out, `book="1 corinthians"`) {
		t.Errorf("value with spaces not quoted: %q", out)
	}
}

func TestPrettyHandlerLevelFiltering(t *testing.T) {
	writer := &captureWriter{}
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	handler := newPrettyHandler(writer, level)

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error disabled at warn level")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic and must report disabled at every level.
	logger.Info("discarded")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger reports enabled")
	}
}
