package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestNewDevelopCommand(t *testing.T) {
	cmd := NewDevelopCommand()

	assert.NotNil(t, cmd)
	assert.Equal(t, "develop", cmd.Name)
	assert.Equal(t, "Install or upgrade the development tools", cmd.Usage)
	assert.NotEmpty(t, cmd.Description)
	assert.Contains(t, cmd.Description, "Examples:")
	assert.NotNil(t, cmd.Action)
}

func TestDevelopCommand_ConfigError(t *testing.T) {
	clearChoresEnv(t)
	badPath := writeConfig(t, "version: \"9.9\"\npackage: mypkg\n")

	app := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
		},
		Commands: []*cli.Command{
			NewDevelopCommand(),
		},
	}

	ctx := context.Background()
	err := app.Run(ctx, []string{"chores", "--config", badPath, "develop"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
