package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// ErrCorruptFile reports a store file that is not a JSON object of strings.
var ErrCorruptFile = errors.New("corrupt store file")

// FileStore keeps all keys in one JSON object file.
//
// Reads take a shared lock and writes an exclusive lock on a sidecar
// "<path>.lock" file, so separate processes never observe a partial write.
type FileStore struct {
	path string
	flk  *flock.Flock
}

// NewFileStore returns a FileStore backed by path. The parent directory is
// created if missing; the file itself is created on first Set.
func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{
		path: path,
		flk:  flock.New(path + ".lock"),
	}, nil
}

// Path returns the data file path.
func (s *FileStore) Path() string {
	return s.path
}

// Get implements Store.
func (s *FileStore) Get(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	if err := s.flk.RLock(); err != nil {
		return "", false, fmt.Errorf("lock store: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	data, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

// Set implements Store.
func (s *FileStore) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("lock store: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	data, err := s.read()
	if errors.Is(err, ErrCorruptFile) {
		// Keep the unreadable file for manual recovery and start over.
		if err := os.Rename(s.path, s.CorruptPath()); err != nil {
			return fmt.Errorf("move corrupt store file: %w", err)
		}
		data, err = make(map[string]string), nil
	}
	if err != nil {
		return err
	}
	data[key] = value
	return s.write(data)
}

// CorruptPath is where Set moves an unreadable store file before replacing it.
func (s *FileStore) CorruptPath() string {
	return s.path + ".corrupt"
}

func (s *FileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	data := make(map[string]string)
	if len(strings.TrimSpace(string(raw))) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w: %w", ErrCorruptFile, err)
	}
	return data, nil
}

func (s *FileStore) write(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store file: %w", err)
	}
	raw = append(raw, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close store file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
