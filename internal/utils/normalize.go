// Package utils normalizes user-supplied names for stores and clocks.
package utils

import (
	"strings"
)

// NormalizeStore normalizes store backend names.
// Accepts aliases:
// - "file", "json", "" -> "file"
// - "sqlite", "sqlite3", "db" -> "sqlite"
// - "memory", "mem" -> "memory"
// Returns the normalized name and a boolean indicating if the input was valid.
func NormalizeStore(input string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "", "file", "json":
		return "file", true
	case "sqlite", "sqlite3", "db":
		return "sqlite", true
	case "memory", "mem":
		return "memory", true
	default:
		return s, false
	}
}

// NormalizeClock normalizes hour cycle preferences.
// Accepts "12", "12h", "h12" for the 12-hour clock and "24", "24h", "h23"
// for the 24-hour clock. Anything else resolves to "auto".
func NormalizeClock(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "12", "12h", "h12", "am/pm", "ampm":
		return "12h"
	case "24", "24h", "h23", "h24":
		return "24h"
	default:
		return "auto"
	}
}
