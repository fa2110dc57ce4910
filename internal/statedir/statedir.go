// Package statedir provides constants and utilities for the .tasklist directory structure.
package statedir

import "path/filepath"

const (
	// Dir is the name of the tasklist state directory.
	Dir = ".tasklist"

	// DefaultFileStore is the default JSON key-value file name (inside .tasklist).
	DefaultFileStore = "store.json"

	// DefaultSQLiteStore is the default SQLite database file name (inside .tasklist).
	DefaultSQLiteStore = "store.db"

	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "tasklist.toml"

	// LogsDir is the name of the log directory (inside .tasklist).
	LogsDir = "logs"
)

// FileStorePath returns the full path to the JSON store within a base directory.
func FileStorePath(baseDir string) string {
	return joinPath(baseDir, DefaultFileStore)
}

// SQLiteStorePath returns the full path to the SQLite store within a base directory.
func SQLiteStorePath(baseDir string) string {
	return joinPath(baseDir, DefaultSQLiteStore)
}

// ConfigPath returns the full path to the config file within a base directory.
func ConfigPath(baseDir string) string {
	return joinPath(baseDir, DefaultConfigFile)
}

// LogsPath returns the full path to the logs directory within a base directory.
func LogsPath(baseDir string) string {
	return joinPath(baseDir, LogsDir)
}

// DirPath returns the full path to the .tasklist directory within a base directory.
func DirPath(baseDir string) string {
	if baseDir == "." || baseDir == "" {
		return Dir
	}
	return filepath.Join(baseDir, Dir)
}

func joinPath(baseDir, file string) string {
	return filepath.Join(DirPath(baseDir), file)
}
