package e2e

import (
	"testing"

	"github.com/chores-cli/chores/test/e2e/framework"
)

func TestToolFailures(t *testing.T) {
	env := framework.NewTestEnvironment(t)
	defer env.Cleanup()

	t.Run("ExitStatusPassesThrough", func(t *testing.T) {
		project := env.CreateProject("fail-check")
		project.StubTool("flake8", 2)

		output, err := project.RunChores("check")
		framework.AssertError(t, err)
		framework.AssertExitCode(t, err, 2)
		framework.AssertOutputContains(t, output, "check failed")
		framework.AssertOutputContains(t, output, "flake8 exited with status 2")
	})

	t.Run("FailingSorterStopsTheFormatter", func(t *testing.T) {
		project := env.CreateProject("fail-sorter")
		project.StubTool("isort", 3)
		project.StubTool("black", 0)

		output, err := project.RunChores("format")
		framework.AssertError(t, err)
		framework.AssertExitCode(t, err, 3)
		framework.AssertToolRuns(t, project, []string{"isort -rc mypkg ."})
		framework.AssertOutputContains(t, output, "format.isort failed")
		framework.AssertOutputNotContains(t, output, "formatting complete")
	})

	t.Run("MissingToolPointsAtDevelop", func(t *testing.T) {
		project := env.CreateProject("missing-tool")

		output, err := project.RunChores("check")
		framework.AssertError(t, err)
		framework.AssertExitCode(t, err, 1)
		framework.AssertOutputContains(t, output, "'flake8' is not installed or not on PATH")
		framework.AssertOutputContains(t, output, "chores develop")
		framework.AssertHelpfulError(t, output)
	})

	t.Run("FailingInstallerSurfacesItsStatus", func(t *testing.T) {
		project := env.CreateProject("fail-develop")
		project.StubTool("pip", 1)

		output, err := project.RunChores("develop")
		framework.AssertError(t, err)
		framework.AssertExitCode(t, err, 1)
		framework.AssertOutputContains(t, output, "develop failed")
		framework.AssertOutputNotContains(t, output, "development tools installed")
	})
}

func TestConfigurationErrors(t *testing.T) {
	env := framework.NewTestEnvironment(t)
	defer env.Cleanup()

	t.Run("BrokenConfig", func(t *testing.T) {
		project := env.CreateProject("broken-config")
		project.WriteConfig("package: [unclosed\n")

		output, err := project.RunChores("check")
		framework.AssertError(t, err)
		framework.AssertExitCode(t, err, 1)
		framework.AssertOutputContains(t, output, "failed to load configuration")
		framework.AssertHelpfulError(t, output)
	})

	t.Run("UnsupportedVersion", func(t *testing.T) {
		project := env.CreateProject("wrong-version")
		project.WriteConfig("version: \"9.9\"\npackage: mypkg\n")

		output, err := project.RunChores("tasks")
		framework.AssertError(t, err)
		framework.AssertOutputContains(t, output, "failed to load configuration")
	})
}
