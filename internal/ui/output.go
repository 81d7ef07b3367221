// Package ui provides user interface utilities for formatted terminal output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	BoxWidth = 46
)

var (
	// Color/style functions
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()

	// Output destination (stderr keeps stdout free for piping)
	Out io.Writer = os.Stderr
)

// SetOutput redirects all output to w and turns colors off unless w is a
// terminal.
func SetOutput(w io.Writer) {
	Out = w
	color.NoColor = !isTerminal(w) || os.Getenv("NO_COLOR") != ""
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Header prints the top border with "polaroid" branding.
func Header() {
	border := strings.Repeat("─", BoxWidth-11)
	fmt.Fprintf(Out, "  %s %s %s\n", Dim("┌"), Bold("polaroid"), Dim(border))
}

// Footer prints the bottom border.
func Footer() {
	border := strings.Repeat("─", BoxWidth-1)
	fmt.Fprintf(Out, "  %s%s\n", Dim("└"), Dim(border))
}

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Cyan("→"), msg)
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Green("✔"), msg)
}

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Red("✘"), msg)
}

// Warn prints a warning message with a yellow circle.
func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s %s\n", Yellow("○"), msg)
}

// DimMsg prints a dimmed message.
func DimMsg(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "  %s\n", Dim(msg))
}
