package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Command represents an external tool invocation
type Command struct {
	Name    string   // Tool name (e.g., "flake8")
	Args    []string // Tool arguments
	WorkDir string   // Optional working directory
}

// Line renders the invocation the way it would be typed at a shell prompt
func (c Command) Line() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// ShellExecutor interface abstracts the actual process execution
type ShellExecutor interface {
	Execute(ctx context.Context, name string, args []string, workDir string) error
}

// Executor interface defines how command sequences are executed
type Executor interface {
	Execute(ctx context.Context, commands []Command) error
}

// ToolError reports an external tool run that did not succeed.
// Code holds the exit status the tool reported, or -1 when the tool
// never ran (not installed, interrupted before start).
type ToolError struct {
	Tool string
	Code int
	Err  error
}

func (e *ToolError) Error() string {
	if e.Code >= 0 {
		return fmt.Sprintf("%s exited with status %d", e.Tool, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error chain to a process exit status. A nil error maps
// to 0, a ToolError passes the tool's own status through unchanged, and
// everything else maps to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var toolErr *ToolError
	if errors.As(err, &toolErr) && toolErr.Code > 0 {
		return toolErr.Code
	}

	return 1
}
