// Package ui provides styled console output and small interactive widgets.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	stepStyle    = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// Printer writes styled messages to configurable streams.
// Progress and diagnostics go to Err so stdout stays clean for command output.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Printer bound to stdout/stderr.
func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

// Step announces the beginning of an orchestration step.
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintln(p.Err, stepStyle.Render(fmt.Sprintf(format, args...)))
}

// Info prints an unstyled informational line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.Err, format+"\n", args...)
}

// Warn prints a warning line. Warnings never abort an orchestration.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.Err, warnStyle.Render("warning: "+fmt.Sprintf(format, args...)))
}

// Error prints an error line without returning an error value. Used for
// non-fatal skips where the orchestration continues.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.Err, errStyle.Render("error: "+fmt.Sprintf(format, args...)))
}

// Success prints a completion notice.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.Err, successStyle.Render(fmt.Sprintf(format, args...)))
}
