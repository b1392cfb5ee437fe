package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertNoError(t *testing.T, err error) {
	t.Helper()
	assert.NoError(t, err)
}

func AssertError(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
}

func AssertExitCode(t *testing.T, err error, expected int) {
	t.Helper()
	assert.Equal(t, expected, ExitCode(err), "Expected exit code %d, got %d", expected, ExitCode(err))
}

func AssertOutputContains(t *testing.T, output, expected string) {
	t.Helper()
	assert.Contains(t, output, expected, "Expected output containing '%s', got: %s", expected, output)
}

func AssertOutputNotContains(t *testing.T, output, unexpected string) {
	t.Helper()
	assert.NotContains(t, output, unexpected, "Expected output without '%s', got: %s", unexpected, output)
}

func AssertMultipleStringsInOutput(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, exp := range expected {
		assert.Contains(t, output, exp, "Expected output to contain '%s', got: %s", exp, output)
	}
}

func AssertHelpfulError(t *testing.T, output string) {
	t.Helper()

	helpfulElements := []string{
		"Solutions:",
		"Solution:",
		"Cause:",
		"Options:",
		"Tip:",
		"•",
		"Examples:",
		"Usage:",
	}

	found := false
	for _, element := range helpfulElements {
		if strings.Contains(output, element) {
			found = true
			break
		}
	}

	if !found {
		t.Errorf("Error message does not appear to be helpful. Got: %s", output)
	}
}

func AssertFileExists(t *testing.T, project *TestProject, path string) {
	t.Helper()
	assert.True(t, project.HasFile(path), "Expected file '%s' to exist", path)
}

func AssertFileNotExists(t *testing.T, project *TestProject, path string) {
	t.Helper()
	assert.False(t, project.HasFile(path), "Expected file '%s' not to exist", path)
}

// AssertToolRuns compares the full stub invocation history against the
// expected sequence, order included.
func AssertToolRuns(t *testing.T, project *TestProject, expected []string) {
	t.Helper()
	assert.Equal(t, expected, project.Invocations(),
		"Expected tool invocations %v, got %v", expected, project.Invocations())
}

func AssertNoToolRuns(t *testing.T, project *TestProject) {
	t.Helper()
	assert.Empty(t, project.Invocations(), "Expected no tool invocations, got %v", project.Invocations())
}
