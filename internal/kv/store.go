package kv

import (
	"errors"
	"fmt"
	"io"

	"github.com/nibzard/tasklist-go/internal/utils"
)

// ErrEmptyKey is returned when a key is empty.
var ErrEmptyKey = errors.New("empty key")

// Store is a string key-value store.
type Store interface {
	// Get returns the value stored under key. found is false when the key
	// has never been set.
	Get(key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// Open opens a store of the given kind at path. The returned closer releases
// any resources held by the backend.
func Open(kind, path string) (Store, io.Closer, error) {
	normalized, ok := utils.NormalizeStore(kind)
	if !ok {
		return nil, nil, fmt.Errorf("unknown store %q (want file, sqlite or memory)", kind)
	}

	switch normalized {
	case "memory":
		s := NewMemoryStore()
		return s, nopCloser{}, nil
	case "sqlite":
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		s, err := NewFileStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func checkKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
