package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/chores-cli/chores/internal/chore"
)

// NewDevelopCommand creates the develop command definition
func NewDevelopCommand() *cli.Command {
	return &cli.Command{
		Name:  "develop",
		Usage: "Install or upgrade the development tools",
		Description: "Installs the checker, sorter, and formatter through the configured " +
			"installer so the other tasks have something to shell out to.\n\n" +
			"Examples:\n" +
			"  chores develop                 # install the default tool set\n" +
			"  CHORES_PACKAGE=api chores develop",
		Action: developCommand,
	}
}

func developCommand(ctx context.Context, cmd *cli.Command) error {
	return runTask(ctx, cmd, chore.TaskDevelop, "development tools installed")
}
