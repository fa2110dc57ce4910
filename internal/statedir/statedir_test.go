package statedir

import (
	"path/filepath"
	"testing"
)

func TestPaths(t *testing.T) {
	base := filepath.Join("home", "user")
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"dir", DirPath(base), filepath.Join(base, ".tasklist")},
		{"dir relative", DirPath("."), ".tasklist"},
		{"dir empty", DirPath(""), ".tasklist"},
		{"file store", FileStorePath(base), filepath.Join(base, ".tasklist", "store.json")},
		{"sqlite store", SQLiteStorePath(""), filepath.Join(".tasklist", "store.db")},
		{"config", ConfigPath(base), filepath.Join(base, ".tasklist", "tasklist.toml")},
		{"logs", LogsPath(base), filepath.Join(base, ".tasklist", "logs")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
