//go:build tools
// +build tools

// Package tools pins the development tools this module is built and
// released with. Never compiled into the binary.
package tools

import (
	// Linter
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"

	// Import formatting
	_ "golang.org/x/tools/cmd/goimports"

	// Coverage reporting
	_ "golang.org/x/tools/cmd/cover"

	// Release builds
	_ "github.com/goreleaser/goreleaser"
)
