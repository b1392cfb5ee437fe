// Package chore defines the built-in task set: style checking, tool
// installation, and code formatting for a Python package.
package chore

import (
	"context"

	"github.com/chores-cli/chores/internal/command"
	"github.com/chores-cli/chores/internal/config"
	"github.com/chores-cli/chores/internal/task"
	"github.com/chores-cli/chores/internal/ui"
)

// Task names exposed on the command line
const (
	TaskCheck       = "check"
	TaskDevelop     = "develop"
	TaskFormatIsort = "format.isort"
	TaskFormatBlack = "format.black"
	TaskFormatAll   = "format.all"
)

// TaskSet builds the built-in tasks against the given configuration and
// executor. format.all carries no body of its own; it only chains the
// sorter and the formatter, in that order.
func TaskSet(cfg *config.Config, executor command.Executor) (*task.Set, error) {
	return task.NewSet(
		&task.Task{
			Name:    TaskCheck,
			Summary: "check style with " + cfg.Tools.Checker,
			Body:    runOne(executor, withRoot(cfg, command.StyleCheck(cfg.Tools.Checker, cfg.CheckPaths()...))),
		},
		&task.Task{
			Name:    TaskDevelop,
			Summary: "install development tools with " + cfg.Tools.Installer,
			Body:    runOne(executor, withRoot(cfg, command.InstallPackages(cfg.Tools.Installer, cfg.Develop.Packages...))),
		},
		&task.Task{
			Name:    TaskFormatIsort,
			Summary: "sort imports with " + cfg.Tools.Sorter,
			Body:    runOne(executor, withRoot(cfg, command.SortImports(cfg.Tools.Sorter, cfg.FormatPaths()...))),
		},
		&task.Task{
			Name:    TaskFormatBlack,
			Summary: "format code with " + cfg.Tools.Formatter,
			Body:    runOne(executor, withRoot(cfg, command.FormatCode(cfg.Tools.Formatter, cfg.FormatPaths()...))),
		},
		&task.Task{
			Name:    TaskFormatAll,
			Summary: "sort imports, then format code",
			Deps:    []string{TaskFormatIsort, TaskFormatBlack},
		},
	)
}

// NewRunner creates a runner that announces each task through out as it
// starts
func NewRunner(set *task.Set, out *ui.Printer) *task.Runner {
	runner := task.NewRunner(set)
	runner.Start = func(t *task.Task) {
		out.Header(t.Name)
	}
	return runner
}

// runOne adapts a single command into a task body
func runOne(executor command.Executor, cmd command.Command) task.BodyFunc {
	return func(ctx context.Context) error {
		return executor.Execute(ctx, []command.Command{cmd})
	}
}

// withRoot pins a command to the configured project root
func withRoot(cfg *config.Config, cmd command.Command) command.Command {
	cmd.WorkDir = cfg.Root
	return cmd
}
