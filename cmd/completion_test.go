package cmd

import (
	"strings"
	"testing"

	"github.com/nibzard/tasklist-go/internal/config"
)

func TestCompletionCommandOutputsScripts(t *testing.T) {
	cfg := &config.Config{}

	tests := []struct {
		name   string
		shell  string
		needle string
	}{
		{name: "bash", shell: "bash", needle: "# tasklist bash completion"},
		{name: "zsh", shell: "zsh", needle: "#compdef tasklist"},
		{name: "fish", shell: "fish", needle: "# tasklist fish completion"},
		{name: "powershell", shell: "powershell", needle: "# tasklist PowerShell completion"},
		{name: "pwsh alias", shell: "pwsh", needle: "# tasklist PowerShell completion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := captureStdout(t, func() error {
				return completionCommand(cfg, []string{tt.shell})
			})
			if err != nil {
				t.Fatalf("completionCommand() error = %v", err)
			}
			if !strings.Contains(output, tt.needle) {
				t.Fatalf("completion output missing %q for shell %q", tt.needle, tt.shell)
			}
			if !strings.Contains(output, "toggle") {
				t.Errorf("completion output should list commands")
			}
		})
	}
}

func TestCompletionCommandErrors(t *testing.T) {
	cfg := &config.Config{}

	if err := completionCommand(cfg, []string{}); err == nil {
		t.Fatal("expected error when shell is missing")
	}

	if err := completionCommand(cfg, []string{"unknown"}); err == nil {
		t.Fatal("expected error for unsupported shell")
	}
}
