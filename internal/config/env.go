package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setEnv := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("TASKLIST_STORE"); v != "" {
		cfg.Store = v
		setEnv("store")
	}
	if v := os.Getenv("TASKLIST_DATA"); v != "" {
		cfg.DataPath = v
		setEnv("data_path")
	}
	if v := os.Getenv("TASKLIST_KEY_PREFIX"); v != "" {
		cfg.KeyPrefix = v
		setEnv("key_prefix")
	}
	if v := os.Getenv("TASKLIST_LOCALE"); v != "" {
		cfg.Locale = v
		setEnv("locale")
	}
	if v := os.Getenv("TASKLIST_CLOCK"); v != "" {
		cfg.Clock = v
		setEnv("clock")
	}
	if v := os.Getenv("TASKLIST_DARK_MODE_DEFAULT"); v != "" {
		cfg.DarkModeDefault = boolFromString(v)
		setEnv("dark_mode_default")
	}

	// Logging configuration
	if v := os.Getenv("TASKLIST_LOG_DIR"); v != "" {
		cfg.LogDir = v
		setEnv("log_dir")
	}
	if v := os.Getenv("TASKLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		setEnv("log_level")
	}
	if v := os.Getenv("TASKLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		setEnv("log_format")
	}
	if v := os.Getenv("TASKLIST_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		setEnv("log_timestamps")
	}
	if v := os.Getenv("TASKLIST_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		setEnv("log_caller")
	}
}

// boolFromString parses common truthy spellings.
func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
