package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/tasklist-go/internal/config"
	"github.com/nibzard/tasklist-go/internal/kv"
	"github.com/nibzard/tasklist-go/internal/tasklist"
	"github.com/nibzard/tasklist-go/internal/timefmt"
	"github.com/nibzard/tasklist-go/internal/todo"
)

// doctorCommand checks config, store contents and the log directory.
func doctorCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Println("tasklist doctor")
	fmt.Println("===============")
	fmt.Println()

	allOK := true

	// Store
	fmt.Printf("Store: %s\n", storeInfo(cfg))
	store, closer, err := kv.Open(cfg.Store, cfg.DataPath)
	if err != nil {
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	} else {
		defer closer.Close()
		fmt.Println("  ✅ Opened")
		if !checkStoredState(store, tasklist.KeysWithPrefix(cfg.KeyPrefix), *verbose) {
			allOK = false
		}
	}
	fmt.Println()

	// Logs
	fmt.Printf("Log dir: %s\n", cfg.LogDir)
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	} else {
		fmt.Println("  ✅ OK")
	}
	fmt.Println()

	// Time display
	locale := cfg.Locale
	if locale == "" {
		locale = timefmt.DetectLocale()
	}
	clock := "24-hour"
	if timefmt.New(cfg.Locale, cfg.Clock).Hour12() {
		clock = "12-hour"
	}
	fmt.Printf("Locale: %s (%s, clock=%s)\n", displayValue(locale), clock, cfg.Clock)
	fmt.Println()

	if allOK {
		fmt.Println("✅ All checks passed.")
		return nil
	}
	fmt.Println("⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}

// checkStoredState validates the persisted values under keys.
func checkStoredState(store kv.Store, keys tasklist.Keys, verbose bool) bool {
	ok := true

	raw, found, err := store.Get(keys.Tasks)
	switch {
	case err != nil:
		fmt.Printf("  ❌ %s: %v\n", keys.Tasks, err)
		ok = false
	case !found:
		fmt.Printf("  ✅ %s: not set (empty list)\n", keys.Tasks)
	default:
		result := todo.Validate([]byte(raw))
		if result.Valid {
			tasks, err := todo.Decode(raw)
			if err != nil {
				fmt.Printf("  ❌ %s: %v\n", keys.Tasks, err)
				ok = false
				break
			}
			open, done := tasks.Counts()
			fmt.Printf("  ✅ %s: %d tasks (%d open, %d done)\n", keys.Tasks, len(tasks), open, done)
		} else {
			fmt.Printf("  ❌ %s: invalid, the app will start with an empty list\n", keys.Tasks)
			ok = false
		}
		for _, e := range result.Errors {
			fmt.Printf("      - %v\n", e)
		}
		if verbose {
			for _, w := range result.Warnings {
				fmt.Printf("      ! %s\n", w)
			}
		}
	}

	raw, found, err = store.Get(keys.DarkMode)
	switch {
	case err != nil:
		fmt.Printf("  ❌ %s: %v\n", keys.DarkMode, err)
		ok = false
	case !found:
		fmt.Printf("  ✅ %s: not set\n", keys.DarkMode)
	case raw == "true" || raw == "false":
		fmt.Printf("  ✅ %s: %s\n", keys.DarkMode, raw)
	default:
		fmt.Printf("  ❌ %s: %q is not true or false\n", keys.DarkMode, raw)
		ok = false
	}
	return ok
}
