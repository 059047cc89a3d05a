package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/citetool/citet/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  log.Level
	}{
		{"trace", log.LevelTrace},
		{"TRACE", log.LevelTrace},
		{"debug", log.LevelDebug},
		{"info", log.LevelInfo},
		{"warn", log.LevelWarn},
		{"error", log.LevelError},
		{"bogus", log.DefaultLevel},
		{"", log.DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := log.ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  log.Format
	}{
		{"json", log.FormatJSON},
		{"text", log.FormatText},
		{" JSON ", log.FormatJSON},
		{"bogus", log.DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := log.ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithLevel(log.LevelWarn),
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
	)

	logger.Info("dropped")

	if buf.Len() != 0 {
		t.Errorf("info message not filtered: %q", buf.String())
	}

	logger.Warn("kept")

	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("warn message missing from output: %q", buf.String())
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithFormat(log.FormatJSON),
		log.WithPretty(false),
		log.WithTimeLayout("none"),
	)

	logger.Info("rendered", slog.String("template", "[a]"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v: %q", err, buf.String())
	}

	if record["msg"] != "rendered" {
		t.Errorf("msg = %v, want %q", record["msg"], "rendered")
	}

	if record["template"] != "[a]" {
		t.Errorf("template = %v, want %q", record["template"], "[a]")
	}

	if _, ok := record["time"]; ok {
		t.Error("time attribute present despite layout \"none\"")
	}
}

func TestLogger_TraceLevelName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatJSON),
		log.WithPretty(false),
	)

	logger.Trace("scan step")

	if !strings.Contains(buf.String(), `"TRACE"`) {
		t.Errorf("trace level not renamed in output: %q", buf.String())
	}
}

func TestLogger_ZeroValueIsSilent(t *testing.T) {
	t.Parallel()

	var logger log.Logger

	// Must not panic.
	logger.Info("into the void")
	logger.Error("still nothing")
}
