package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/chores-cli/chores/internal/chore"
)

// NewFormatCommand creates the format command group
func NewFormatCommand() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "Sort imports and format code",
		UsageText: "chores format [all|isort|black]",
		Description: "Rewrites source files in place. Without a subcommand this runs format.all, " +
			"which sorts imports first and formats second, each exactly once.\n\n" +
			"Examples:\n" +
			"  chores format          # sort imports, then format\n" +
			"  chores format isort    # only sort imports\n" +
			"  chores format black    # only format code",
		Action: formatAllCommand,
		Commands: []*cli.Command{
			{
				Name:   "all",
				Usage:  "Sort imports, then format code",
				Action: formatAllCommand,
			},
			{
				Name:   "isort",
				Usage:  "Sort imports with the configured sorter",
				Action: formatIsortCommand,
			},
			{
				Name:   "black",
				Usage:  "Format code with the configured formatter",
				Action: formatBlackCommand,
			},
		},
	}
}

func formatAllCommand(ctx context.Context, cmd *cli.Command) error {
	return runTask(ctx, cmd, chore.TaskFormatAll, "formatting complete")
}

func formatIsortCommand(ctx context.Context, cmd *cli.Command) error {
	return runTask(ctx, cmd, chore.TaskFormatIsort, "imports sorted")
}

func formatBlackCommand(ctx context.Context, cmd *cli.Command) error {
	return runTask(ctx, cmd, chore.TaskFormatBlack, "code formatted")
}
