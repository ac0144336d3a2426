package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("task write failed", "key", "tasks")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "task write failed") || !strings.Contains(out, "key=tasks") {
		t.Errorf("Expected logfmt warn line, got: %s", out)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestInit_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	if err := Init(dir, "debug"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Logger.Debug("initialized")

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "initialized") {
		t.Errorf("Expected log line in file, got: %s", data)
	}
}
