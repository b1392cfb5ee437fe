package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/chores-cli/chores/internal/chore"
	"github.com/chores-cli/chores/internal/command"
	"github.com/chores-cli/chores/internal/config"
	apperrors "github.com/chores-cli/chores/internal/errors"
	choresio "github.com/chores-cli/chores/internal/io"
	"github.com/chores-cli/chores/internal/logging"
	"github.com/chores-cli/chores/internal/task"
	"github.com/chores-cli/chores/internal/ui"
)

// Variable to allow mocking in tests
var osGetwd = os.Getwd

// writerFor returns the writer configured on the root command, falling
// back to stdout
func writerFor(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// loadConfig resolves the configuration for this invocation. An explicit
// --config flag wins, then CHORES_CONFIG, then .chores.yml in the current
// directory.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	if path := configPath(cmd); path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, apperrors.ConfigLoadFailed(path, err)
		}
		return cfg, nil
	}

	cwd, err := osGetwd()
	if err != nil {
		return nil, apperrors.DirectoryAccessFailed("access current", ".", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, apperrors.ConfigLoadFailed(filepath.Join(cwd, config.ConfigFileName), err)
	}
	return cfg, nil
}

func configPath(cmd *cli.Command) string {
	if path := cmd.Root().String("config"); path != "" {
		return path
	}
	return os.Getenv(config.EnvConfig)
}

// runTask executes one named task with the real shell executor. Tool
// output streams through the root writer as it is produced.
func runTask(ctx context.Context, cmd *cli.Command, taskName, successMsg string) error {
	out := ui.NewPrinter(choresio.NewFlushingWriter(writerFor(cmd)))
	executor := command.NewRealExecutor(out, os.Stderr)
	return runTaskWithExecutor(ctx, cmd, out, executor, taskName, successMsg)
}

// runTaskWithExecutor is the testable core of every task command
func runTaskWithExecutor(
	ctx context.Context,
	cmd *cli.Command,
	out *ui.Printer,
	executor command.Executor,
	taskName, successMsg string,
) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logging.WithComponent("cli")
	log.Debug("configuration resolved",
		"package", cfg.Package,
		"checker", cfg.Tools.Checker,
		"sorter", cfg.Tools.Sorter,
		"formatter", cfg.Tools.Formatter)

	set, err := chore.TaskSet(cfg, executor)
	if err != nil {
		return err
	}

	if err := chore.NewRunner(set, out).Run(ctx, taskName); err != nil {
		out.Failure(failedTask(err, taskName) + " failed")
		return describeToolFailure(err)
	}

	if successMsg != "" {
		out.Success(successMsg)
	}
	return nil
}

// failedTask names the task that actually failed, which for an aggregate
// is usually one of its dependencies
func failedTask(err error, fallback string) string {
	var runErr *task.RunError
	if errors.As(err, &runErr) {
		return runErr.Task
	}
	return fallback
}

// describeToolFailure upgrades a missing-tool failure to a message that
// points at 'chores develop'. Every other failure passes through unchanged
// so the tool's exit status survives to the process exit code.
func describeToolFailure(err error) error {
	var toolErr *command.ToolError
	if errors.As(err, &toolErr) && errors.Is(toolErr.Err, exec.ErrNotFound) {
		return apperrors.ToolNotFound(toolErr.Tool)
	}
	return err
}
