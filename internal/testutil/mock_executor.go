// Package testutil provides helpers shared across tests.
package testutil

import (
	"context"
	"fmt"

	"github.com/chores-cli/chores/internal/command"
)

// MockExecutor implements command.Executor for testing. It records every
// command it receives and can be configured to fail on a particular tool.
type MockExecutor struct {
	ExecuteFunc func(ctx context.Context, commands []command.Command) error
	Executed    []command.Command
}

// NewMockExecutor creates a MockExecutor that records all commands and
// succeeds
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

// Execute records the commands, then delegates to ExecuteFunc if set
func (m *MockExecutor) Execute(ctx context.Context, commands []command.Command) error {
	m.Executed = append(m.Executed, commands...)

	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, commands)
	}
	return nil
}

// Lines returns the executed commands rendered as shell lines, in order
func (m *MockExecutor) Lines() []string {
	lines := make([]string, len(m.Executed))
	for i, cmd := range m.Executed {
		lines[i] = cmd.Line()
	}
	return lines
}

// FailOn makes the executor return a ToolError with the given exit code
// whenever it sees the named tool
func (m *MockExecutor) FailOn(tool string, code int) {
	m.ExecuteFunc = func(_ context.Context, commands []command.Command) error {
		for _, cmd := range commands {
			if cmd.Name == tool {
				return &command.ToolError{
					Tool: tool,
					Code: code,
					Err:  fmt.Errorf("exit status %d", code),
				}
			}
		}
		return nil
	}
}
