package e2e

import (
	"testing"

	"github.com/chores-cli/chores/test/e2e/framework"
)

func TestConfigResolution(t *testing.T) {
	env := framework.NewTestEnvironment(t)
	defer env.Cleanup()

	t.Run("ConfigFlagWins", func(t *testing.T) {
		project := env.CreateProject("config-flag")
		project.WriteFile("alt.yml", `version: "1.0"
package: mypkg
tools:
  sorter: usort
`)
		project.StubTool("isort", 0)
		project.StubTool("usort", 0)

		_, err := project.RunChores("--config", "alt.yml", "format", "isort")
		framework.AssertNoError(t, err)
		framework.AssertToolRuns(t, project, []string{"usort -rc mypkg ."})
	})

	t.Run("EnvVarSelectsTheConfig", func(t *testing.T) {
		project := env.CreateProject("config-env")
		project.WriteFile("alt.yml", `version: "1.0"
package: mypkg
tools:
  formatter: yapf
`)
		project.StubTool("black", 0)
		project.StubTool("yapf", 0)

		_, err := project.RunChoresWithEnv([]string{"CHORES_CONFIG=alt.yml"}, "format", "black")
		framework.AssertNoError(t, err)
		framework.AssertToolRuns(t, project, []string{"yapf mypkg ."})
	})

	t.Run("DotEnvOverridesThePackage", func(t *testing.T) {
		project := env.CreateProject("dotenv-package")
		project.WriteFile(".env", "CHORES_PACKAGE=api\n")
		project.StubTool("isort", 0)

		_, err := project.RunChores("format", "isort")
		framework.AssertNoError(t, err)
		framework.AssertToolRuns(t, project, []string{"isort -rc api ."})
	})

	t.Run("EnvVarOverridesThePackage", func(t *testing.T) {
		project := env.CreateProject("env-package")
		project.StubTool("flake8", 0)

		_, err := project.RunChoresWithEnv([]string{"CHORES_PACKAGE=api"}, "check")
		framework.AssertNoError(t, err)
		framework.AssertToolRuns(t, project, []string{"flake8 api"})
	})

	t.Run("RunsFromTheConfiguredRoot", func(t *testing.T) {
		project := env.CreateProject("config-root")
		project.WriteFile("backend/mypkg/__init__.py", "")
		project.WriteConfig(`version: "1.0"
package: mypkg
root: backend
`)
		project.StubTool("flake8", 0)

		_, err := project.RunChores("check")
		framework.AssertNoError(t, err)
		framework.AssertToolRuns(t, project, []string{"flake8 mypkg"})
	})

	t.Run("MissingRootFails", func(t *testing.T) {
		// The stub would succeed from the project directory, so a failure
		// proves the run really moved to the configured root
		project := env.CreateProject("missing-root")
		project.WriteConfig(`version: "1.0"
package: mypkg
root: nowhere
`)
		project.StubTool("flake8", 0)

		_, err := project.RunChores("check")
		framework.AssertError(t, err)
		framework.AssertNoToolRuns(t, project)
	})
}
