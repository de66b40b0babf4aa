package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    slog.Level
		wantErr bool
	}{
		{name: "Empty defaults to info", in: "", want: slog.LevelInfo},
		{name: "Info", in: "info", want: slog.LevelInfo},
		{name: "Debug", in: "debug", want: slog.LevelDebug},
		{name: "Warn", in: "warn", want: slog.LevelWarn},
		{name: "Warning alias", in: "warning", want: slog.LevelWarn},
		{name: "Error", in: "error", want: slog.LevelError},
		{name: "Mixed case", in: "DeBuG", want: slog.LevelDebug},
		{name: "Surrounding whitespace", in: "  info ", want: slog.LevelInfo},
		{name: "Unknown level", in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "nope"}); err == nil {
		t.Error("New() expected error for unknown level")
	}
}

func TestNew_TeesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger, closer, err := New(Options{Level: "info", LogFile: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if closer == nil {
		t.Fatal("New() returned nil closer with a log file configured")
	}

	logger.Info("extraction started", "repo", "widget")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "extraction started") {
		t.Errorf("log file missing record, got: %s", data)
	}
}

func TestNew_NoFileNoCloser(t *testing.T) {
	logger, closer, err := New(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger == nil {
		t.Fatal("New() returned nil logger")
	}
	if closer != nil {
		t.Error("New() returned a closer without a log file configured")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	// Must not panic.
	logger.Info("dropped", "key", "value")
	logger.Error("also dropped")
}
