package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/tasklist-go/internal/config"
	"github.com/nibzard/tasklist-go/internal/logging"
)

// logsCommand tails the latest log file.
func logsCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist logs", flag.ContinueOnError)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	list := fs.Bool("list", false, "List log files instead of showing one")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		runs, err := logging.FindLogRuns(cfg.LogDir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Println("No log files found.")
				return nil
			}
			return fmt.Errorf("listing logs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No log files found.")
			return nil
		}
		for _, run := range runs {
			fmt.Printf("%s  %-6s  %s\n", run.ModTime.Local().Format("2006-01-02 15:04:05"), run.Label, run.Path)
		}
		return nil
	}

	logPath, err := logging.FindLatestLog(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Println("No log files found.")
		return nil
	}

	fmt.Printf("Tailing: %s\n", logPath)
	if *follow {
		fmt.Println("(Ctrl+C to stop)")
	}
	fmt.Println()

	return logging.TailLog(ctx, os.Stdout, logPath, *n, *follow)
}
