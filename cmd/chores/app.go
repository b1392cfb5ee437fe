package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/chores-cli/chores/internal/logging"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "chores",
		Usage: "Everyday upkeep for a Python codebase",
		Description: "chores runs the recurring upkeep tasks for a Python package from one static binary: " +
			"style checking, import sorting, code formatting, and installing the tools that do it. " +
			"It works before the Python environment does; run 'chores develop' to bootstrap the tools.",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to the configuration file",
				Aliases: []string{"c"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			NewCheckCommand(),
			NewDevelopCommand(),
			NewFormatCommand(),
			NewTasksCommand(),
			NewInitCommand(),
		},
	}
}

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := "info"
	if cmd.Bool("verbose") {
		level = "debug"
	}
	logging.Setup(level)
	return ctx, nil
}
