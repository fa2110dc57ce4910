// Package logging builds leveled loggers and manages per-run log files.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const logExt = ".log"

// RunLogger manages a per-run log file.
type RunLogger struct {
	Dir     string
	RunID   string
	Label   string
	LogPath string
	file    *os.File
}

// NewRunLogger creates the log directory and a log file named
// <run-id>-<label>.log inside it.
func NewRunLogger(baseDir, label string) (*RunLogger, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("log base dir is empty")
	}

	logDir := filepath.Clean(baseDir)
	if abs, err := filepath.Abs(logDir); err == nil {
		logDir = abs
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	id := runID()
	safeLabel := sanitizeLabel(label)
	logPath := filepath.Join(logDir, fmt.Sprintf("%s-%s%s", id, safeLabel, logExt))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	return &RunLogger{
		Dir:     logDir,
		RunID:   id,
		Label:   safeLabel,
		LogPath: logPath,
		file:    file,
	}, nil
}

// Writer returns the underlying log file writer.
func (r *RunLogger) Writer() io.Writer {
	if r == nil || r.file == nil {
		return io.Discard
	}
	return r.file
}

// Close closes the log file.
func (r *RunLogger) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	return r.file.Close()
}

func sanitizeLabel(input string) string {
	if strings.TrimSpace(input) == "" {
		return "run"
	}

	var b strings.Builder
	for i := 0; i < len(input); i++ {
		c := input[i]
		valid := (c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '_'
		if !valid {
			b.WriteByte('_')
			continue
		}
		b.WriteByte(c)
	}

	label := strings.Trim(b.String(), "_")
	if label == "" {
		return "run"
	}
	return label
}

func runID() string {
	return fmt.Sprintf("%s-%d", time.Now().UTC().Format("20060102-150405"), os.Getpid())
}

// FindLatestLog finds the most recently modified log file in a directory.
func FindLatestLog(logDir string) (string, error) {
	runs, err := FindLogRuns(logDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	if len(runs) == 0 {
		return "", nil
	}
	return runs[0].Path, nil
}

// TailLog tails a log file to a writer, optionally following until ctx is done.
func TailLog(ctx context.Context, w io.Writer, path string, n int, follow bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	// If n > 0, seek to show only last n lines
	if n > 0 {
		if err := tailSeek(file, n); err != nil {
			return fmt.Errorf("seek to tail position: %w", err)
		}
	}

	if follow {
		return tailFollow(ctx, w, file)
	}

	_, err = io.Copy(w, file)
	return err
}

// tailSeek positions file at the start of its last n lines. A trailing
// newline at end of file does not count as a line break.
func tailSeek(file *os.File, n int) error {
	const chunkSize = 4096

	stat, err := file.Stat()
	if err != nil {
		return err
	}
	size := stat.Size()

	buf := make([]byte, chunkSize)
	newlines := 0
	pos := size
	for pos > 0 {
		readSize := min(int64(chunkSize), pos)
		pos -= readSize
		if _, err := file.ReadAt(buf[:readSize], pos); err != nil && err != io.EOF {
			return err
		}
		for i := readSize - 1; i >= 0; i-- {
			if buf[i] != '\n' || pos+i == size-1 {
				continue
			}
			newlines++
			if newlines == n {
				_, err := file.Seek(pos+i+1, io.SeekStart)
				return err
			}
		}
	}
	_, err = file.Seek(0, io.SeekStart)
	return err
}

// tailFollow follows a file like tail -f.
func tailFollow(ctx context.Context, w io.Writer, file *os.File) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		if _, err := io.Copy(w, file); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// LogRun is a single run's log file.
type LogRun struct {
	RunID   string
	Label   string
	Path    string
	ModTime time.Time
}

// FindLogRuns lists log runs in a directory, newest first.
func FindLogRuns(logDir string) ([]LogRun, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return nil, fmt.Errorf("read log dir: %w", err)
	}

	runs := make([]LogRun, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		id, label := extractRunID(name)
		if id == "" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		runs = append(runs, LogRun{
			RunID:   id,
			Label:   label,
			Path:    filepath.Join(logDir, name),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].ModTime.Equal(runs[j].ModTime) {
			return runs[i].RunID > runs[j].RunID
		}
		return runs[i].ModTime.After(runs[j].ModTime)
	})
	return runs, nil
}

// extractRunID splits a log filename into run ID and label.
// Format: <yyyymmdd>-<hhmmss>-<pid>-<label>.log
func extractRunID(filename string) (string, string) {
	if !strings.HasSuffix(filename, logExt) {
		return "", ""
	}
	base := strings.TrimSuffix(filename, logExt)
	parts := strings.SplitN(base, "-", 4)
	if len(parts) < 3 {
		return "", ""
	}
	id := strings.Join(parts[:3], "-")
	label := ""
	if len(parts) == 4 {
		label = parts[3]
	}
	return id, label
}
