package shared

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestShared(t *testing.T) {
	t.Run("NewLogger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)

		logger.Info("hello")

		if buf.Len() == 0 {
			t.Error("expected log output to be written")
		}
	})

	t.Run("WithLogger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		child := WithLogger(logger, "component", "test")

		child.Info("hello")

		if !bytes.Contains(buf.Bytes(), []byte("component")) {
			t.Error("expected child logger to carry key-value pairs")
		}
	})

	t.Run("SetLogLevel", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.ErrorLevel)

		logger.Info("suppressed")

		if buf.Len() != 0 {
			t.Error("expected info log to be suppressed at error level")
		}
	})

	t.Run("GenerateID", func(t *testing.T) {
		a := GenerateID()
		b := GenerateID()

		if a == "" || b == "" {
			t.Error("expected non-empty IDs")
		}
		if a == b {
			t.Error("expected unique IDs")
		}
	})

	t.Run("FormatScore", func(t *testing.T) {
		if got := FormatScore(8.25, 12); got != "8.2/10" {
			t.Errorf("expected 8.2/10, got %s", got)
		}
		if got := FormatScore(0, 0); got != "-" {
			t.Errorf("expected dash for unrated, got %s", got)
		}
	})

	t.Run("KindString", func(t *testing.T) {
		if KindString(true) != "Series" {
			t.Error("expected Series for tvSeries=true")
		}
		if KindString(false) != "Movie" {
			t.Error("expected Movie for tvSeries=false")
		}
	})

	t.Run("Truncate", func(t *testing.T) {
		if got := Truncate("a long description", 7); got != "a long…" {
			t.Errorf("expected 'a long…', got %q", got)
		}
		if got := Truncate("short", 10); got != "short" {
			t.Errorf("expected 'short', got %q", got)
		}
		if got := Truncate("anything", 0); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}
