package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewAcceptsKnownFormats(t *testing.T) {
	for _, format := range []string{"", "auto", "json", "console", "text"} {
		if _, err := New(Options{Format: format}); err != nil {
			t.Fatalf("New(%q) failed: %v", format, err)
		}
	}
}

func TestNewMirrorsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "server.log")
	logger, err := New(Options{Format: "json", Path: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("started")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "started") {
		t.Fatalf("log file missing entry: %q", data)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should not be enabled at any level")
	}
	logger.Info("ignored")
}

func TestWithComponentNilBase(t *testing.T) {
	logger := WithComponent(nil, "media")
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}
