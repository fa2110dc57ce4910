// Package kv provides the key-value persistence used to mirror the task list.
//
// Every backend implements the same two-operation contract:
//
//	Get(key) -> (value, found, err)
//	Set(key, value) -> err
//
// Values are opaque strings. Callers serialize their own state into them.
//
// # Backends
//
//   - "file": a single JSON object on disk, rewritten atomically under an
//     exclusive file lock (github.com/gofrs/flock).
//   - "sqlite": a kv table in a local SQLite database (modernc.org/sqlite).
//   - "memory": an in-process map, used by tests.
package kv
