package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected a no-op logger when no level is configured")
	}
}

func TestInitializeFromEnvToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gencomp.log")
	t.Setenv(LogLevelEnvVar, "debug")

	if err := Initialize("", path); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer SetLogger(zap.NewNop())

	Info("preview started", zap.String("url", "http://127.0.0.1:1234"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "preview started") {
		t.Errorf("expected log line in file, got %q", string(data))
	}
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	if err := Initialize("verbose", ""); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNamedUsesGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	Named("genai").Debug("dispatch")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].LoggerName != "genai" {
		t.Errorf("expected logger name genai, got %q", entries[0].LoggerName)
	}
}
