// Package cmd implements the CLI command structure for tasklist.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist-go/internal/config"
	"github.com/nibzard/tasklist-go/internal/kv"
	"github.com/nibzard/tasklist-go/internal/logging"
	"github.com/nibzard/tasklist-go/internal/tasklist"
	"github.com/nibzard/tasklist-go/internal/timefmt"
	"github.com/nibzard/tasklist-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tasklist CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand
	// If no args or first arg is a flag, use "tui" as default
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		if !strings.HasPrefix(remainingArgs[0], "-") {
			subcommand = remainingArgs[0]
			remainingArgs = remainingArgs[1:]
		}
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "add":
		return addCommand(cfg, remainingArgs)
	case "ls", "list":
		return lsCommand(cfg, remainingArgs)
	case "toggle", "done":
		return toggleCommand(cfg, remainingArgs)
	case "edit":
		return editCommand(cfg, remainingArgs)
	case "rm", "delete":
		return rmCommand(cfg, remainingArgs)
	case "theme":
		return themeCommand(cfg, remainingArgs)
	case "logs", "tail":
		return logsCommand(ctx, cfg, remainingArgs)
	case "config":
		return configCommand(cws, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "completion":
		return completionCommand(cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// app is an opened store with a loaded controller.
type app struct {
	cfg    *config.Config
	ctrl   *tasklist.Controller
	logger *log.Logger
	store  io.Closer
}

// openApp opens the configured store and rehydrates the controller.
// Logs go to logOut.
func openApp(cfg *config.Config, logOut io.Writer) (*app, error) {
	logger := logging.NewFromConfig(logOut, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)

	store, closer, err := kv.Open(cfg.Store, cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store, err)
	}
	logger.Debug("store opened", "store", cfg.Store, "path", cfg.DataPath)

	ctrl := tasklist.New(store,
		tasklist.WithKeys(tasklist.KeysWithPrefix(cfg.KeyPrefix)),
		tasklist.WithFormatter(timefmt.New(cfg.Locale, cfg.Clock)),
		tasklist.WithLogger(logger),
		tasklist.WithDarkModeDefault(cfg.DarkModeDefault),
	)
	ctrl.Load()

	return &app{cfg: cfg, ctrl: ctrl, logger: logger, store: closer}, nil
}

func (a *app) Close() error {
	if a == nil || a.store == nil {
		return nil
	}
	return a.store.Close()
}

// tuiCommand launches the TUI.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// The terminal belongs to the TUI, so logs go to a file.
	runLog, err := logging.NewRunLogger(cfg.LogDir, "tui")
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer runLog.Close()

	a, err := openApp(cfg, runLog.Writer())
	if err != nil {
		return err
	}
	defer a.Close()
	a.logger.Info("tui started", "run", runLog.RunID, "store", cfg.Store)

	err = ui.RunTUI(ctx, a.ctrl, ui.WithStoreInfo(storeInfo(cfg)))
	a.logger.Info("tui stopped", "tasks", a.ctrl.Len())
	return err
}

func storeInfo(cfg *config.Config) string {
	if cfg.DataPath == "" {
		return cfg.Store
	}
	return fmt.Sprintf("%s (%s)", cfg.DataPath, cfg.Store)
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("tasklist version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "tasklist - A small to-do list for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasklist [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                        Launch the terminal UI (default command)")
	fmt.Fprintln(w, "  add <text>                 Add a task")
	fmt.Fprintln(w, "  ls [--json] [--open]       List tasks")
	fmt.Fprintln(w, "  toggle <n|id>              Mark a task done or not done")
	fmt.Fprintln(w, "  edit <n|id> <text>         Replace the text of a task")
	fmt.Fprintln(w, "  rm <n|id>                  Delete a task")
	fmt.Fprintln(w, "  theme [dark|light|toggle]  Show or change the theme")
	fmt.Fprintln(w, "  logs [-n N] [-f] [--list]  Show the latest log file")
	fmt.Fprintln(w, "  config [--example]         Show effective configuration")
	fmt.Fprintln(w, "  doctor                     Check config, store and logs")
	fmt.Fprintln(w, "  completion <shell>         Print a shell completion script")
	fmt.Fprintln(w, "  version                    Show version information")
	fmt.Fprintln(w, "  help                       Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tasks are addressed by their 1-based position in 'ls' or by an id prefix\n(write @<prefix> to force an id lookup).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
