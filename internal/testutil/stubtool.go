package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// StubTool writes an executable stub named tool into binDir. Every run
// appends the tool name and its arguments to logFile, one line per
// invocation, and exits with exitCode. Putting binDir first on PATH lets
// tests observe exactly which tool invocations a command performs without
// the real tools installed.
func StubTool(t *testing.T, binDir, logFile, tool string, exitCode int) {
	t.Helper()

	script := fmt.Sprintf("#!/bin/sh\necho \"%s $*\" >> \"%s\"\nexit %d\n", tool, logFile, exitCode)

	path := filepath.Join(binDir, tool)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to write stub tool %s: %v", tool, err)
	}
}

// ReadInvocations returns the tool invocations recorded in logFile,
// oldest first. A missing log means nothing ran.
func ReadInvocations(t *testing.T, logFile string) []string {
	t.Helper()

	data, err := os.ReadFile(logFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("Failed to read invocation log: %v", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
