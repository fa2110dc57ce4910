package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nibzard/tasklist-go/internal/config"
	"github.com/nibzard/tasklist-go/internal/tasklist"
	"github.com/nibzard/tasklist-go/internal/todo"
)

const shortIDLen = 8

// addCommand appends a task.
func addCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist add", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	text := strings.Join(fs.Args(), " ")

	a, err := openApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	accepted, err := a.ctrl.Submit(text)
	if !accepted {
		if err != nil {
			return err
		}
		return todo.ErrEmptyText
	}
	if err != nil {
		return err
	}
	n := a.ctrl.Len()
	task := a.ctrl.Snapshot().Tasks[n-1]
	fmt.Printf("Added %d: %s\n", n, task.Text)
	return nil
}

// lsCommand lists tasks in display order.
func lsCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist ls", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "Print tasks as JSON")
	openOnly := fs.Bool("open", false, "Only show tasks that are not done")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	a, err := openApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	view := a.ctrl.View()
	if *asJSON {
		return printTasksJSON(view, *openOnly)
	}
	printTaskList(view, *openOnly)
	return nil
}

func printTasksJSON(view tasklist.View, openOnly bool) error {
	tasks := make(todo.List, 0, len(view.Tasks))
	for _, t := range view.Tasks {
		if openOnly && t.Done {
			continue
		}
		tasks = append(tasks, t.Task)
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printTaskList(view tasklist.View, openOnly bool) {
	if view.Empty() {
		fmt.Println("Empty")
		return
	}
	for i, t := range view.Tasks {
		if openOnly && t.Done {
			continue
		}
		fmt.Println(formatTask(i, t))
	}
	fmt.Printf("\n%d open, %d done\n", view.Open, view.Done)
}

func formatTask(i int, t tasklist.TaskView) string {
	box := "[ ]"
	if t.Done {
		box = "[x]"
	}
	return fmt.Sprintf("%3d. %s %s  (%s, %s)", i+1, box, t.Text, t.Caption, shortID(t.ID))
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// toggleCommand flips the done flag of a task.
func toggleCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist toggle", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tasklist toggle <n|id>")
	}

	a, err := openApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	index, err := resolveTask(a.ctrl, fs.Arg(0))
	if err != nil {
		return err
	}
	if err := a.ctrl.Toggle(index); err != nil {
		return err
	}
	task := a.ctrl.Snapshot().Tasks[index]
	if task.Done {
		fmt.Printf("Done %d: %s\n", index+1, task.Text)
	} else {
		fmt.Printf("Reopened %d: %s\n", index+1, task.Text)
	}
	return nil
}

// editCommand replaces the text of a task.
func editCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist edit", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: tasklist edit <n|id> <text>")
	}
	text := strings.Join(fs.Args()[1:], " ")

	a, err := openApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	index, err := resolveTask(a.ctrl, fs.Arg(0))
	if err != nil {
		return err
	}
	if err := a.ctrl.BeginEdit(index); err != nil {
		return err
	}
	accepted, err := a.ctrl.Submit(text)
	if !accepted {
		if err != nil {
			return err
		}
		return todo.ErrEmptyText
	}
	if err != nil {
		return err
	}
	fmt.Printf("Edited %d: %s\n", index+1, a.ctrl.Snapshot().Tasks[index].Text)
	return nil
}

// rmCommand deletes a task.
func rmCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist rm", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tasklist rm <n|id>")
	}

	a, err := openApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	index, err := resolveTask(a.ctrl, fs.Arg(0))
	if err != nil {
		return err
	}
	text := a.ctrl.Snapshot().Tasks[index].Text
	if err := a.ctrl.Delete(index); err != nil {
		return err
	}
	fmt.Printf("Removed %d: %s\n", index+1, text)
	return nil
}

// themeCommand shows or changes the stored theme.
func themeCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tasklist theme", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("usage: tasklist theme [dark|light|toggle]")
	}

	a, err := openApp(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	switch strings.ToLower(fs.Arg(0)) {
	case "":
	case "dark":
		err = a.ctrl.SetDarkMode(true)
	case "light":
		err = a.ctrl.SetDarkMode(false)
	case "toggle":
		err = a.ctrl.ToggleDarkMode()
	default:
		return fmt.Errorf("unknown theme %q (want dark, light or toggle)", fs.Arg(0))
	}
	if err != nil {
		return err
	}
	fmt.Println(themeName(a.ctrl.View().DarkMode))
	return nil
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// resolveTask maps a task reference to a list index. A number in range is a
// 1-based position; any other number is tried as an id prefix. "@prefix"
// always means an id prefix.
func resolveTask(ctrl *tasklist.Controller, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	tasks := ctrl.Snapshot().Tasks

	if prefix, ok := strings.CutPrefix(ref, "@"); ok {
		index, err := tasks.FindByIDPrefix(prefix)
		if err != nil {
			return -1, fmt.Errorf("resolve task: %w", err)
		}
		return index, nil
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(tasks) {
			return n - 1, nil
		}
		if index, err := tasks.FindByIDPrefix(ref); err == nil {
			return index, nil
		}
		return -1, fmt.Errorf("task %d: %w", n, tasklist.ErrIndexOutOfRange)
	}

	index, err := tasks.FindByIDPrefix(ref)
	if err != nil {
		return -1, fmt.Errorf("resolve task: %w", err)
	}
	return index, nil
}
