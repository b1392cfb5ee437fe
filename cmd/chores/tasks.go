package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/chores-cli/chores/internal/chore"
	"github.com/chores-cli/chores/internal/command"
	"github.com/chores-cli/chores/internal/ui"
)

// NewTasksCommand creates the tasks command definition
func NewTasksCommand() *cli.Command {
	return &cli.Command{
		Name:        "tasks",
		Usage:       "List available tasks",
		Description: "Shows every task with the tool it runs, as configured for this project.",
		Action:      tasksCommand,
	}
}

func tasksCommand(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := writerFor(cmd)
	set, err := chore.TaskSet(cfg, command.NewRealExecutor(ui.NewPrinter(w), os.Stderr))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available tasks:")
	for _, name := range set.Names() {
		if t, ok := set.Get(name); ok {
			fmt.Fprintf(w, "  %-14s %s\n", name, t.Summary)
		}
	}
	return nil
}
