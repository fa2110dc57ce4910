package cmd

import (
	"fmt"
	"strings"

	"github.com/nibzard/tasklist-go/internal/config"
)

var completionCommands = []string{
	"tui", "add", "ls", "toggle", "edit", "rm", "theme",
	"logs", "config", "doctor", "completion", "version", "help",
}

var completionFlags = []string{
	"--store", "--data", "--key-prefix", "--locale", "--clock", "--dark-mode-default",
	"--log-dir", "--log-level", "--log-format", "--log-timestamps", "--log-caller",
	"--help", "--version",
}

// completionCommand prints a shell completion script.
func completionCommand(_ *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tasklist completion <bash|zsh|fish|powershell>")
	}

	var script string
	switch strings.ToLower(args[0]) {
	case "bash":
		script = bashCompletion()
	case "zsh":
		script = zshCompletion()
	case "fish":
		script = fishCompletion()
	case "powershell", "pwsh":
		script = powershellCompletion()
	default:
		return fmt.Errorf("unsupported shell %q (want bash, zsh, fish or powershell)", args[0])
	}
	fmt.Print(script)
	return nil
}

func bashCompletion() string {
	return fmt.Sprintf(`# tasklist bash completion
_tasklist() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    local prev="${COMP_WORDS[COMP_CWORD-1]}"
    case "$prev" in
        theme) COMPREPLY=( $(compgen -W "dark light toggle" -- "$cur") ); return ;;
        completion) COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- "$cur") ); return ;;
        --store) COMPREPLY=( $(compgen -W "file sqlite memory" -- "$cur") ); return ;;
        --clock) COMPREPLY=( $(compgen -W "auto 12h 24h" -- "$cur") ); return ;;
    esac
    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
    else
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
    fi
}
complete -F _tasklist tasklist
`, strings.Join(completionFlags, " "), strings.Join(completionCommands, " "))
}

func zshCompletion() string {
	return fmt.Sprintf(`#compdef tasklist
# tasklist zsh completion
_tasklist() {
    local -a commands
    commands=(%s)
    _arguments \
        '*: :->args' \
        %s
    case $state in
        args)
            case $words[2] in
                theme) _values 'theme' dark light toggle ;;
                completion) _values 'shell' bash zsh fish powershell ;;
                *) _describe 'command' commands ;;
            esac
            ;;
    esac
}
compdef _tasklist tasklist
`, strings.Join(completionCommands, " "), zshFlagSpecs())
}

func zshFlagSpecs() string {
	specs := make([]string, 0, len(completionFlags))
	for _, f := range completionFlags {
		specs = append(specs, "'"+f+"'")
	}
	return strings.Join(specs, " ")
}

func fishCompletion() string {
	var b strings.Builder
	b.WriteString("# tasklist fish completion\n")
	for _, c := range completionCommands {
		fmt.Fprintf(&b, "complete -c tasklist -n '__fish_use_subcommand' -a %s\n", c)
	}
	for _, f := range completionFlags {
		fmt.Fprintf(&b, "complete -c tasklist -l %s\n", strings.TrimPrefix(f, "--"))
	}
	b.WriteString("complete -c tasklist -n '__fish_seen_subcommand_from theme' -a 'dark light toggle'\n")
	b.WriteString("complete -c tasklist -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish powershell'\n")
	return b.String()
}

func powershellCompletion() string {
	quoted := make([]string, 0, len(completionCommands)+len(completionFlags))
	for _, w := range append(append([]string{}, completionCommands...), completionFlags...) {
		quoted = append(quoted, "'"+w+"'")
	}
	return fmt.Sprintf(`# tasklist PowerShell completion
Register-ArgumentCompleter -Native -CommandName tasklist -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`, strings.Join(quoted, ", "))
}
