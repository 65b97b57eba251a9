package requestvalidator

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNopLogger(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = NopLogger{}
	})

	t.Run("methods do nothing", func(t *testing.T) {
		l := NopLogger{}
		// Should not panic
		l.Debug("test message", "key", "value")
		l.Info("test message", "key", "value")
		l.Warn("test message", "key", "value")
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l := NopLogger{}
		l2 := l.With("key", "value")
		_, ok := l2.(NopLogger)
		if !ok {
			t.Error("With should return NopLogger")
		}
	})
}

func TestSlogAdapter(t *testing.T) {
	newBufAdapter := func(level slog.Level) (*SlogAdapter, *bytes.Buffer) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
		return NewSlogAdapter(slog.New(handler)), &buf
	}

	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = (*SlogAdapter)(nil)
	})

	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		if adapter.logger == nil {
			t.Error("adapter.logger should not be nil")
		}
	})

	t.Run("Debug logs at debug level", func(t *testing.T) {
		adapter, buf := newBufAdapter(slog.LevelDebug)
		adapter.Debug("compiling part", "part", "headers")
		output := buf.String()
		if !strings.Contains(output, "DEBUG") {
			t.Errorf("expected DEBUG level, got: %s", output)
		}
		if !strings.Contains(output, "part=headers") {
			t.Errorf("expected part=headers attribute, got: %s", output)
		}
	})

	t.Run("Warn logs at warn level", func(t *testing.T) {
		adapter, buf := newBufAdapter(slog.LevelWarn)
		adapter.Warn("failed to parse content type", "contentType", ";;")
		output := buf.String()
		if !strings.Contains(output, "WARN") {
			t.Errorf("expected WARN level, got: %s", output)
		}
	})

	t.Run("Error logs at error level", func(t *testing.T) {
		adapter, buf := newBufAdapter(slog.LevelError)
		adapter.Error("validation engine failure", "location", "body")
		output := buf.String()
		if !strings.Contains(output, "ERROR") {
			t.Errorf("expected ERROR level, got: %s", output)
		}
	})

	t.Run("With adds attributes", func(t *testing.T) {
		adapter, buf := newBufAdapter(slog.LevelDebug)
		withAdapter := adapter.With("name", "createPet")
		withAdapter.Debug("request validator compiled", "mediaTypes", 2)
		output := buf.String()
		if !strings.Contains(output, "name=createPet") {
			t.Errorf("expected name=createPet attribute, got: %s", output)
		}
		if !strings.Contains(output, "mediaTypes=2") {
			t.Errorf("expected mediaTypes=2 attribute, got: %s", output)
		}
	})

	t.Run("With returns new SlogAdapter", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		withAdapter := adapter.With("key", "value")
		_, ok := withAdapter.(*SlogAdapter)
		if !ok {
			t.Error("With should return *SlogAdapter")
		}
	})
}
