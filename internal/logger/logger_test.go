package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRejectsUnknownMode(t *testing.T) {
	if _, err := New("verbose", ""); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, err := New(ModeProduction, path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Info("board built", "categories", 6)
	log.Sync()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "board built") || !strings.Contains(string(data), `"categories":6`) {
		t.Fatalf("unexpected log output %q", string(data))
	}
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(core).With("session_id", "abc")
	log.Warn("short board", "eligible", 4)
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["session_id"] != "abc" || fields["eligible"] != int64(4) {
		t.Fatalf("unexpected fields %v", fields)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	log.Info("ignored")
	log.With("k", "v").Error("ignored")
	log.Sync()
}

func TestNewWriterLevels(t *testing.T) {
	var buf strings.Builder
	log, err := NewWriter(ModeProduction, &buf)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	log.Debug("hidden")
	log.Info("dataset loaded", "rows", 10)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"rows":10`) {
		t.Fatalf("unexpected production output %q", out)
	}
	if _, err := NewWriter("loud", &buf); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
