package config

import (
	"github.com/nibzard/tasklist-go/internal/statedir"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, in load order.
	Files []string
}

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Default values.
const (
	DefaultStore     = StoreFile
	DefaultBaseDir   = "~"
	DefaultKeyPrefix = "tasklist"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultClock     = "auto"
)

// DefaultLogDir is the default log directory.
var DefaultLogDir = statedir.LogsPath(DefaultBaseDir)

// Config holds the full configuration for tasklist.
type Config struct {
	// Storage
	Store     string `toml:"store"`
	DataPath  string `toml:"data_path"`
	KeyPrefix string `toml:"key_prefix"`

	// Logging configuration
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Presentation
	Locale          string `toml:"locale"`
	Clock           string `toml:"clock"`
	DarkModeDefault bool   `toml:"dark_mode_default"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// DefaultDataPath returns the default store location for a backend.
func DefaultDataPath(store string) string {
	switch store {
	case StoreSQLite:
		return statedir.SQLiteStorePath(DefaultBaseDir)
	case StoreMemory:
		return ""
	default:
		return statedir.FileStorePath(DefaultBaseDir)
	}
}
