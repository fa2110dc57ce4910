package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"fatal":   log.FatalLevel,
		"":        log.InfoLevel,
		"verbose": log.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	tests := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"logfmt": log.LogfmtFormatter,
		"text":   log.TextFormatter,
		"":       log.TextFormatter,
	}
	for in, want := range tests {
		if got := ParseFormatter(in); got != want {
			t.Errorf("ParseFormatter(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFromConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfig(&buf, "warn", "logfmt", false, false)

	logger.Info("hidden")
	logger.Warn("store unreadable", "key", "tasklist.tasks")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("info message should be filtered at warn level: %q", got)
	}
	if !strings.Contains(got, "store unreadable") || !strings.Contains(got, "key=tasklist.tasks") {
		t.Errorf("unexpected output %q", got)
	}
	if !strings.Contains(got, "tasklist") {
		t.Errorf("expected prefix in output %q", got)
	}
}

func TestNewNilWriter(t *testing.T) {
	logger := New(nil, DefaultOptions())
	logger.Error("goes nowhere")
	Discard().Error("also nowhere")
}
