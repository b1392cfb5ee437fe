package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/chores-cli/chores/internal/chore"
)

// NewCheckCommand creates the check command definition
func NewCheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check style with the configured checker",
		Description: "Runs the style checker over the configured paths. " +
			"A clean run stays quiet and exits zero; violations surface through " +
			"the checker's own output and exit status. Nothing is rewritten.",
		Action: checkCommand,
	}
}

func checkCommand(ctx context.Context, cmd *cli.Command) error {
	return runTask(ctx, cmd, chore.TaskCheck, "")
}
