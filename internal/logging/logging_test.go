// Package logging provides tests for run log files and tail output.
package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestNewRunLogger tests creating a new run logger.
func TestNewRunLogger(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		tmpDir := t.TempDir()

		logger, err := NewRunLogger(tmpDir, "tui")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer logger.Close()

		if logger.RunID == "" {
			t.Error("expected RunID to be set")
		}
		if logger.Label != "tui" {
			t.Errorf("Label = %q, want tui", logger.Label)
		}
		if !strings.HasSuffix(logger.LogPath, "-tui.log") {
			t.Errorf("unexpected log path %s", logger.LogPath)
		}
		if _, err := os.Stat(logger.LogPath); err != nil {
			t.Errorf("log file not created: %v", err)
		}
	})

	t.Run("empty base dir returns error", func(t *testing.T) {
		_, err := NewRunLogger("  ", "tui")
		if err == nil {
			t.Fatal("expected error for empty base dir, got nil")
		}
		if !strings.Contains(err.Error(), "empty") {
			t.Errorf("expected empty dir error, got %v", err)
		}
	})

	t.Run("creates log directory if missing", func(t *testing.T) {
		newLogDir := filepath.Join(t.TempDir(), "new-logs", "nested")

		logger, err := NewRunLogger(newLogDir, "add")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer logger.Close()

		if _, err := os.Stat(newLogDir); err != nil {
			t.Errorf("log directory not created: %v", err)
		}
	})
}

// TestRunLoggerWriter tests writing through a run logger.
func TestRunLoggerWriter(t *testing.T) {
	logger, err := NewRunLogger(t.TempDir(), "ls")
	if err != nil {
		t.Fatal(err)
	}

	l := New(logger.Writer(), DefaultOptions())
	l.Info("loaded tasks", "count", 3)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(logger.LogPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "loaded tasks") {
		t.Errorf("log file missing message: %q", data)
	}
}

// TestRunLoggerNil tests nil-safe methods.
func TestRunLoggerNil(t *testing.T) {
	var logger *RunLogger
	if err := logger.Close(); err != nil {
		t.Errorf("Close on nil logger: %v", err)
	}
	if logger.Writer() == nil {
		t.Error("Writer on nil logger should discard, not return nil")
	}
}

// TestSanitizeLabel tests the sanitizeLabel helper.
func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", "simple"},
		{"test_run", "test_run"},
		{"test-run", "test_run"},
		{"test/run", "test_run"},
		{"test run", "test_run"},
		{"", "run"},
		{"   ", "run"},
		{"___", "run"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := sanitizeLabel(tt.input); got != tt.want {
				t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestRunID tests the runID helper.
func TestRunID(t *testing.T) {
	id := runID()
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts separated by '-', got %d: %s", len(parts), id)
	}
	if _, err := time.Parse("20060102", parts[0]); err != nil {
		t.Errorf("first part not a valid date: %v", err)
	}
	if _, err := time.Parse("150405", parts[1]); err != nil {
		t.Errorf("second part not a valid time: %v", err)
	}
	if parts[2] == "" {
		t.Error("PID part is empty")
	}
}

// TestExtractRunID tests log filename parsing.
func TestExtractRunID(t *testing.T) {
	tests := []struct {
		name      string
		wantID    string
		wantLabel string
	}{
		{"20261018-093000-42-tui.log", "20261018-093000-42", "tui"},
		{"20261018-093000-42.log", "20261018-093000-42", ""},
		{"20261018-093000-42-tui.txt", "", ""},
		{"notes.log", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, label := extractRunID(tt.name)
			if id != tt.wantID || label != tt.wantLabel {
				t.Errorf("extractRunID(%q) = (%q, %q), want (%q, %q)", tt.name, id, label, tt.wantID, tt.wantLabel)
			}
		})
	}
}

// TestFindLatestLog tests finding the latest log file.
func TestFindLatestLog(t *testing.T) {
	t.Run("finds latest log in directory", func(t *testing.T) {
		logDir := t.TempDir()
		files := []string{
			"20240101-120000-100-tui.log",
			"20240101-120001-101-add.log",
			"20240101-120002-102-ls.log",
		}
		base := time.Now().Add(-time.Hour)
		for i, f := range files {
			path := filepath.Join(logDir, f)
			if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
				t.Fatal(err)
			}
			mod := base.Add(time.Duration(i) * time.Minute)
			if err := os.Chtimes(path, mod, mod); err != nil {
				t.Fatal(err)
			}
		}

		latest, err := FindLatestLog(logDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.HasSuffix(latest, "102-ls.log") {
			t.Errorf("latest = %s, want the ls run", latest)
		}
	})

	t.Run("returns empty for non-existent directory", func(t *testing.T) {
		latest, err := FindLatestLog(filepath.Join(t.TempDir(), "missing"))
		if err != nil {
			t.Fatalf("expected no error for non-existent dir, got %v", err)
		}
		if latest != "" {
			t.Errorf("expected empty path, got %s", latest)
		}
	})

	t.Run("ignores other files and subdirectories", func(t *testing.T) {
		logDir := t.TempDir()
		os.WriteFile(filepath.Join(logDir, "readme.txt"), []byte("readme"), 0644)
		os.Mkdir(filepath.Join(logDir, "20240101-120000-1-dir.log"), 0755)

		latest, err := FindLatestLog(logDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if latest != "" {
			t.Errorf("expected no log, got %s", latest)
		}
	})
}

// syncBuffer is a bytes.Buffer safe for one writer and one reader goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestTailLog tests tailing log files.
func TestTailLog(t *testing.T) {
	t.Run("tails entire file when n=0", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "test.log")
		content := "line1\nline2\nline3\n"
		if err := os.WriteFile(logFile, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if err := TailLog(context.Background(), &buf, logFile, 0, false); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if buf.String() != content {
			t.Errorf("got %q, want %q", buf.String(), content)
		}
	})

	t.Run("tails last n lines of a large file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "test.log")
		var b strings.Builder
		for i := 0; i < 500; i++ {
			b.WriteString("a fairly ordinary log line that repeats many times\n")
		}
		b.WriteString("final line\n")
		if err := os.WriteFile(logFile, []byte(b.String()), 0644); err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if err := TailLog(context.Background(), &buf, logFile, 2, false); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got := buf.String()
		if !strings.HasSuffix(got, "final line\n") {
			t.Error("expected last line to be present")
		}
		if len(got) >= b.Len() {
			t.Error("expected output to be shorter than the file")
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		var buf bytes.Buffer
		err := TailLog(context.Background(), &buf, filepath.Join(t.TempDir(), "nope.log"), 0, false)
		if err == nil {
			t.Fatal("expected error for non-existent file, got nil")
		}
	})

	t.Run("follow stops when context is cancelled", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "test.log")
		if err := os.WriteFile(logFile, []byte("initial\n"), 0644); err != nil {
			t.Fatal(err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		buf := &syncBuffer{}
		done := make(chan error, 1)
		go func() {
			done <- TailLog(ctx, buf, logFile, 0, true)
		}()

		time.Sleep(50 * time.Millisecond)
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			t.Fatal(err)
		}
		f.WriteString("appended line\n")
		f.Close()
		time.Sleep(300 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("TailLog returned %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("TailLog did not stop after cancel")
		}

		got := buf.String()
		if !strings.Contains(got, "initial") || !strings.Contains(got, "appended") {
			t.Errorf("unexpected follow output %q", got)
		}
	})
}
