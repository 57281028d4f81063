// Package cli provides command-line argument parsing for the deskrun
// binaries.
//
// This package handles all CLI flag parsing and validation, converting
// command-line arguments into structured types the main packages can
// use. Parsing is a single left-to-right pass: for deskrun, the first
// non-flag argument starts the target command and everything after it
// is forwarded verbatim, so target flags never collide with launcher
// flags.
//
// Supported deskrun flags:
//   - --desktop NAME: Override the detected desktop-environment hint
//   - --terminal NAME: Force a specific terminal emulator
//   - --inline: Run the command in the current terminal
//   - --list: List terminal candidates and their availability
//
// Supported gitsync flags:
//   - --config PATH: Key=value config file (default .env)
//   - -m, --message MSG: Commit message
//   - --pause: Wait for Enter before exiting
//
// Example usage:
//
//	args, err := cli.ParseLaunch(os.Args)
//	if err != nil {
//	    if err.Error() == "show_help" {
//	        showHelp()
//	        os.Exit(0)
//	    }
//	    log.Fatal(err)
//	}
package cli
