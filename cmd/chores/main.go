package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chores-cli/chores/internal/command"
)

const defaultVersion = "0.1.0"

// Version information (set by GoReleaser)
var (
	version = defaultVersion
	_       = "none"    // commit - set by GoReleaser but not used
	_       = "unknown" // date - set by GoReleaser but not used
)

func main() {
	initVersion()

	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(command.ExitCode(err))
	}
}
