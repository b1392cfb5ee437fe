package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/chores-cli/chores/internal/config"
	"github.com/chores-cli/chores/internal/errors"
	"github.com/chores-cli/chores/internal/ui"
)

const configFileMode = 0o600

// Variable to allow mocking in tests
var initGetwd = os.Getwd

// NewInitCommand creates the init command definition
func NewInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize configuration file",
		Description: "Creates a .chores.yml configuration file in the current directory " +
			"with the default tools and paths spelled out.",
		Action: initCommand,
	}
}

func initCommand(_ context.Context, cmd *cli.Command) error {
	// Get current working directory (the project root)
	cwd, err := initGetwd()
	if err != nil {
		return errors.DirectoryAccessFailed("access current", ".", err)
	}

	// Check if config file already exists
	configPath := filepath.Join(cwd, config.ConfigFileName)
	if config.FileExists(cwd) {
		return errors.ConfigAlreadyExists(configPath)
	}

	// Create configuration with comments
	configContent := `# chores configuration
version: "1.0"

# The Python package the tasks run against
package: mypkg

# Working directory for tool runs (relative paths resolve from here)
# root: backend

# Which paths each task touches; unset lists derive from the package
# paths:
#   check: [setup.py, mypkg]
#   format: [mypkg, "."]

# The tools the tasks shell out to
# tools:
#   checker: flake8
#   sorter: isort
#   formatter: black
#   installer: pip

# What 'chores develop' installs
# develop:
#   packages: [flake8, flake8-bugbear, pydocstyle, black, isort]
`

	// Write configuration file with comments
	if err := os.WriteFile(configPath, []byte(configContent), configFileMode); err != nil {
		return errors.DirectoryAccessFailed("create configuration file in", cwd, err)
	}

	w := writerFor(cmd)
	ui.NewPrinter(w).Success("Configuration file created: " + configPath)
	fmt.Fprintln(w, "Edit this file to choose the package, paths, and tools.")
	return nil
}
