package e2e

import (
	"testing"

	"github.com/chores-cli/chores/test/e2e/framework"
)

func TestCheckCommand(t *testing.T) {
	env := framework.NewTestEnvironment(t)
	defer env.Cleanup()

	t.Run("ChecksThePackage", func(t *testing.T) {
		project := env.CreateProject("check-test")
		project.StubTool("flake8", 0)

		_, err := project.RunChores("check")
		framework.AssertNoError(t, err)
		framework.AssertToolRuns(t, project, []string{"flake8 mypkg"})
	})

	t.Run("QuietOnSuccess", func(t *testing.T) {
		project := env.CreateProject("check-quiet")
		project.StubTool("flake8", 0)

		output, err := project.RunChores("check")
		framework.AssertNoError(t, err)
		framework.AssertExitCode(t, err, 0)
		framework.AssertOutputNotContains(t, output, "✓")
	})

	t.Run("ChecksConfiguredPaths", func(t *testing.T) {
		project := env.CreateProject("check-paths")
		project.WriteConfig(`version: "1.0"
package: mypkg
paths:
  check: [setup.py, mypkg]
`)
		project.StubTool("flake8", 0)

		_, err := project.RunChores("check")
		framework.AssertNoError(t, err)
		framework.AssertToolRuns(t, project, []string{"flake8 setup.py mypkg"})
	})

	t.Run("NeverRewritesFiles", func(t *testing.T) {
		project := env.CreateProject("check-readonly")
		project.StubTool("flake8", 0)

		before := project.SourceSnapshot()

		_, err := project.RunChores("check")
		framework.AssertNoError(t, err)

		after := project.SourceSnapshot()
		if len(before) != len(after) {
			t.Errorf("Expected same file set before and after check, got %d then %d files",
				len(before), len(after))
		}
		for path, content := range before {
			if after[path] != content {
				t.Errorf("Expected '%s' to be untouched by check", path)
			}
		}
	})
}
