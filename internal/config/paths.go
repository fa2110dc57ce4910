package config

import (
	"os"
	"path/filepath"
	"strings"
)

// resolvePath expands $VAR references and a leading ~, then joins a relative
// result onto root. An empty root leaves relative paths relative. The SQLite
// ":memory:" name passes through untouched.
func resolvePath(p, root string) string {
	if p == "" || p == ":memory:" {
		return p
	}

	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		p = filepath.Join(home, p[1:])
	}

	if root != "" && !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	return p
}
