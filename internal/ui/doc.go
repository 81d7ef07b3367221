// Package ui provides terminal output formatting for polaroid.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Headers and footers with box-drawing characters
//   - Info, success, failure, and warning messages
//   - Dimmed text for secondary information
//
// All output goes to ui.Out (defaults to os.Stderr) to allow
// testing and output redirection. SetOutput also disables color when
// the destination is not a terminal.
//
// Example usage:
//
//	ui.Header()
//	ui.Info("Bordering %d image(s)", len(paths))
//	ui.Success("Settings resolved")
//	ui.Footer()
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
