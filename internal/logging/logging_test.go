package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"debug lowercase", "debug", slog.LevelDebug},
		{"debug uppercase", "DEBUG", slog.LevelDebug},
		{"info lowercase", "info", slog.LevelInfo},
		{"warn mixed", "Warn", slog.LevelWarn},
		{"error lowercase", "error", slog.LevelError},
		{"empty string", "", slog.LevelInfo},
		{"invalid value", "invalid", slog.LevelInfo},
		{"trace returns info", "trace", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "warn", "Error"} {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = false", level)
		}
	}
	for _, level := range []string{"", "trace", "verbose"} {
		if ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = true", level)
		}
	}
}

func TestSetup_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dialogcoach.log")
	prev := slog.Default()
	defer slog.SetDefault(prev)

	cleanup, err := Setup(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	slog.Debug("hidden")
	slog.Info("roster loaded", "coaches", 4)
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log has %d lines, want 1:\n%s", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "roster loaded" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["coaches"] != float64(4) {
		t.Errorf("coaches = %v", entry["coaches"])
	}
}

func TestSetupTest(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	SetupTest(&buf)
	slog.Debug("visible in tests")
	if !strings.Contains(buf.String(), "visible in tests") {
		t.Errorf("SetupTest output = %q", buf.String())
	}
}
