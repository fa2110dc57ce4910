package cmd

import (
	"flag"
	"fmt"

	"github.com/nibzard/tasklist-go/internal/config"
)

// configCommand prints the effective configuration and where each value came from.
func configCommand(cws *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("tasklist config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *example {
		fmt.Print(config.ExampleConfig())
		return nil
	}

	cfg := cws.Config
	if file := cws.ConfigFile(); file != "" {
		fmt.Printf("Config file: %s\n\n", file)
	} else {
		fmt.Print("Config file: (none)\n\n")
	}

	rows := []struct {
		field string
		value any
	}{
		{"store", cfg.Store},
		{"data_path", cfg.DataPath},
		{"key_prefix", cfg.KeyPrefix},
		{"locale", cfg.Locale},
		{"clock", cfg.Clock},
		{"dark_mode_default", cfg.DarkModeDefault},
		{"log_dir", cfg.LogDir},
		{"log_level", cfg.LogLevel},
		{"log_format", cfg.LogFormat},
		{"log_timestamps", cfg.LogTimestamps},
		{"log_caller", cfg.LogCaller},
	}
	for _, row := range rows {
		source := cws.Sources[row.field]
		if source == "" {
			source = config.SourceDefault
		}
		fmt.Printf("  %-18s %-40v [%s]\n", row.field, displayValue(row.value), source)
	}
	return nil
}

func displayValue(v any) any {
	if s, ok := v.(string); ok && s == "" {
		return "(auto)"
	}
	return v
}
