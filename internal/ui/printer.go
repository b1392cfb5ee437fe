// Package ui renders task progress for the terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors for task status output.
const (
	ColorHeader  = lipgloss.Color("#7D56F4") // Purple accent - task headers
	ColorMuted   = lipgloss.Color("#626262") // Muted - echoed command lines
	ColorSuccess = lipgloss.Color("#04B575") // Green - completed tasks
	ColorFailure = lipgloss.Color("#FF5F56") // Red - failed tasks
)

// Styles contains the lipgloss style definitions for task output.
type Styles struct {
	Header  lipgloss.Style
	Command lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
}

// DefaultStyles returns the standard style set. Styling degrades to plain
// text automatically when the output is not a terminal.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(ColorHeader),
		Command: lipgloss.NewStyle().Foreground(ColorMuted),
		Success: lipgloss.NewStyle().Foreground(ColorSuccess),
		Failure: lipgloss.NewStyle().Foreground(ColorFailure),
	}
}

// Printer writes styled task progress lines to a writer. Tool output itself
// is never styled; it streams through the underlying writer verbatim.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a Printer with the default styles.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: DefaultStyles()}
}

// Writer returns the underlying writer, for wiring child process output.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Header announces a task before its body runs.
func (p *Printer) Header(task string) {
	fmt.Fprintln(p.w, p.styles.Header.Render("→ "+task))
}

// Command echoes an external command line as it is about to run.
func (p *Printer) Command(line string) {
	fmt.Fprintln(p.w, p.styles.Command.Render("  $ "+line))
}

// Success prints a completion line.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, p.styles.Success.Render("✓ "+msg))
}

// Failure prints a failure line.
func (p *Printer) Failure(msg string) {
	fmt.Fprintln(p.w, p.styles.Failure.Render("✗ "+msg))
}
