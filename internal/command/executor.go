package command

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"

	"github.com/chores-cli/chores/internal/ui"
)

// executor implements the Executor interface
type executor struct {
	shell ShellExecutor
	out   *ui.Printer
}

// NewExecutor creates a command executor with the given shell executor.
// Every command is echoed through out before it runs, so the user sees
// exactly which tool invocations a task performs.
func NewExecutor(shell ShellExecutor, out *ui.Printer) Executor {
	return &executor{
		shell: shell,
		out:   out,
	}
}

// NewRealExecutor creates an executor that runs real processes, streaming
// their stdout through the printer's writer and their stderr to stderr.
func NewRealExecutor(out *ui.Printer, stderr io.Writer) Executor {
	return NewExecutor(NewRealShellExecutor(out.Writer(), stderr), out)
}

// Execute runs the given commands in order and stops at the first failure.
// The failure comes back as a *ToolError carrying the tool's exit status.
func (e *executor) Execute(ctx context.Context, commands []Command) error {
	for _, cmd := range commands {
		e.out.Command(cmd.Line())
		slog.Debug("spawning command", "component", "command", "tool", cmd.Name, "args", cmd.Args, "dir", cmd.WorkDir)

		if err := e.shell.Execute(ctx, cmd.Name, cmd.Args, cmd.WorkDir); err != nil {
			return toolError(cmd.Name, err)
		}
	}

	return nil
}

// toolError classifies a shell failure, preserving the exit status when the
// tool actually ran
func toolError(tool string, err error) *ToolError {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{Tool: tool, Code: exitErr.ExitCode(), Err: err}
	}

	return &ToolError{Tool: tool, Code: -1, Err: err}
}
