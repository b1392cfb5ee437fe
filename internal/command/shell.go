package command

import (
	"context"
	"io"
	"os/exec"
)

// realShellExecutor implements ShellExecutor using os/exec
type realShellExecutor struct {
	stdout io.Writer
	stderr io.Writer
}

// NewRealShellExecutor creates a shell executor that runs real processes and
// streams their output to the given writers as it is produced. Checker
// violations and formatter rewrites reach the user verbatim, not as a
// captured blob after the fact.
func NewRealShellExecutor(stdout, stderr io.Writer) ShellExecutor {
	return &realShellExecutor{
		stdout: stdout,
		stderr: stderr,
	}
}

// Execute runs the command using os/exec
func (s *realShellExecutor) Execute(ctx context.Context, name string, args []string, workDir string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	if workDir != "" {
		cmd.Dir = workDir
	}

	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	return cmd.Run()
}
