// Package format provides the terminal display styles used at the CLI
// boundary. Core packages never print styled output directly; they return
// errors or log through slog, and the CLI decides how a message is rendered.
package format

import (
	"io"

	"github.com/fatih/color"
)

// Style identifies a display treatment for terminal output.
type Style int

const (
	Plain Style = iota
	Info
	Success
	Warning
	Error
)

var styles = map[Style]*color.Color{
	Plain:   color.New(),
	Info:    color.New(color.FgCyan),
	Success: color.New(color.FgGreen),
	Warning: color.New(color.FgYellow),
	Error:   color.New(color.FgRed, color.Bold),
}

// Fprintf writes formatted output to w in the given style. Styling degrades
// to plain text when the writer is not a terminal.
func Fprintf(w io.Writer, s Style, format string, args ...any) {
	c, ok := styles[s]
	if !ok {
		c = styles[Plain]
	}

	_, _ = c.Fprintf(w, format, args...)
}
