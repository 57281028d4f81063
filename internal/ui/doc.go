// Package ui provides terminal output formatting for deskrun.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Headers and footers with box-drawing characters
//   - Info, success, failure, and warning messages
//   - Dimmed text for secondary information
//   - A pause-before-close prompt for windows opened just for this run
//
// All output goes to ui.Out (defaults to os.Stderr) to allow
// testing and output redirection, and to keep stdout free for the
// launched command.
//
// Example usage:
//
//	ui.Header("deskrun")
//	ui.Info("Opening %s", ui.Bold("konsole"))
//	ui.Success("Done")
//	ui.Footer()
//
// Output styling:
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Fail:    ✘ Red X
//   - Warn:    ○ Yellow circle
package ui
