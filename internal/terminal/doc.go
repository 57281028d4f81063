// Package terminal selects and spawns a terminal emulator for a command.
//
// Selection follows a fixed priority order: the emulator idiomatic to the
// detected desktop environment is tried first, then the fallback list is
// scanned and the first installed candidate wins. Each emulator has its
// own syntax for "open a window, run this command, keep the window open",
// encoded in its Candidate entry.
//
// When no emulator is installed at all, the command runs inline on the
// current process's standard streams. Launching therefore never fails
// just because the host has no graphical terminal.
//
// Example usage:
//
//	launcher := terminal.New()
//	code, err := launcher.Launch(desktop.Detect(), "backup.sh --full")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Exit(code)
//
// In every path exactly one child process is spawned, and the returned
// code mirrors that child's exit code.
package terminal
