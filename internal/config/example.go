package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasklist configuration file
# Values can be overridden by TASKLIST_* environment variables or CLI flags

# Store backend: file (JSON) or sqlite
store = "file"

# Store location (supports ~ expansion and %VAR% on Windows).
# Defaults to ~/.tasklist/store.json, or ~/.tasklist/store.db for sqlite.
# data_path = "~/.tasklist/store.json"

# Prefix for the keys tasks and the theme are stored under
key_prefix = "tasklist"

# Locale for time display; empty uses LC_ALL, LC_TIME or LANG
# locale = "en-US"

# Hour cycle: auto (from locale), 12h or 24h
clock = "auto"

# Start in dark mode until the theme is toggled once
dark_mode_default = false

# Logging
log_dir = "~/.tasklist/logs"
log_level = "info"     # debug, info, warn, error
log_format = "text"    # text, json, logfmt
log_timestamps = false
log_caller = false
`
}
