package config

import (
	"flag"
)

// flagFields maps global flag names to config field names.
var flagFields = map[string]string{
	"store":             "store",
	"data":              "data_path",
	"key-prefix":        "key_prefix",
	"log-dir":           "log_dir",
	"log-level":         "log_level",
	"log-format":        "log_format",
	"log-timestamps":    "log_timestamps",
	"log-caller":        "log_caller",
	"locale":            "locale",
	"clock":             "clock",
	"dark-mode-default": "dark_mode_default",
}

// parseFlags defines and parses global CLI flags. Only flags that were set
// explicitly override cfg; they are recorded in sources when it is non-nil.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("tasklist", flag.ContinueOnError)
	}

	v := *cfg

	// Storage
	fs.StringVar(&v.Store, "store", cfg.Store, "Store backend (file, sqlite, memory)")
	fs.StringVar(&v.DataPath, "data", cfg.DataPath, "Path to the store file")
	fs.StringVar(&v.KeyPrefix, "key-prefix", cfg.KeyPrefix, "Prefix for store keys")

	// Logging
	fs.StringVar(&v.LogDir, "log-dir", cfg.LogDir, "Log directory")
	fs.StringVar(&v.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&v.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&v.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&v.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	// Presentation
	fs.StringVar(&v.Locale, "locale", cfg.Locale, "Locale for time display (e.g. en-US, de-DE)")
	fs.StringVar(&v.Clock, "clock", cfg.Clock, "Hour cycle (auto, 12h, 24h)")
	fs.BoolVar(&v.DarkModeDefault, "dark-mode-default", cfg.DarkModeDefault, "Start in dark mode when no preference is stored")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		field, ok := flagFields[f.Name]
		if !ok {
			return
		}
		applyField(cfg, &v, field)
		if sources != nil {
			sources[field] = SourceFlag
		}
	})
	return nil
}

// applyField copies one field from src to dst.
func applyField(dst, src *Config, field string) {
	switch field {
	case "store":
		dst.Store = src.Store
	case "data_path":
		dst.DataPath = src.DataPath
	case "key_prefix":
		dst.KeyPrefix = src.KeyPrefix
	case "log_dir":
		dst.LogDir = src.LogDir
	case "log_level":
		dst.LogLevel = src.LogLevel
	case "log_format":
		dst.LogFormat = src.LogFormat
	case "log_timestamps":
		dst.LogTimestamps = src.LogTimestamps
	case "log_caller":
		dst.LogCaller = src.LogCaller
	case "locale":
		dst.Locale = src.Locale
	case "clock":
		dst.Clock = src.Clock
	case "dark_mode_default":
		dst.DarkModeDefault = src.DarkModeDefault
	}
}
