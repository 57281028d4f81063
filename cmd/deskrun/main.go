package main

import (
	"fmt"
	"os"

	"github.com/mfreund/deskrun/internal/cli"
	"github.com/mfreund/deskrun/internal/desktop"
	"github.com/mfreund/deskrun/internal/logfile"
	"github.com/mfreund/deskrun/internal/terminal"
	"github.com/mfreund/deskrun/internal/ui"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	args, err := cli.ParseLaunch(os.Args)
	if err != nil {
		if err.Error() == "show_help" {
			showHelp()
			os.Exit(0)
		}
		if err.Error() == "show_version" {
			fmt.Printf("deskrun %s\n", version)
			os.Exit(0)
		}
		ui.Fail("Error parsing arguments: %v", err)
		ui.Info("Run %s for usage information", ui.Bold("deskrun --help"))
		os.Exit(1)
	}

	launcher := terminal.New()

	if args.List {
		listTerminals(launcher)
		return
	}

	if len(args.Command) == 0 {
		ui.Fail("No command given")
		ui.Info("Run %s for usage information", ui.Bold("deskrun --help"))
		os.Exit(1)
	}

	// Precondition: verify the target before any terminal logic runs.
	if err := launcher.CheckTarget(args.Command[0]); err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}

	command := terminal.ShellCommand(args.Command)

	if args.Inline {
		exitWith(launcher.RunInline(command))
	}

	if args.Terminal != "" {
		code, err := launcher.LaunchWith(args.Terminal, command)
		if err != nil {
			ui.Fail("%v", err)
			os.Exit(code)
		}
		os.Exit(code)
	}

	// Capture the desktop hint once, here.
	info := desktop.Detect()
	if args.Desktop != "" {
		info = desktop.ForHint(args.Desktop)
	}

	ui.Header("deskrun")
	if info.Environment == desktop.Unknown {
		ui.Info("Desktop environment not recognized (%s)", ui.Dim(hintLabel(info.Hint)))
	} else {
		ui.Info("Desktop environment: %s", ui.Bold(info.Environment.String()))
	}

	candidate, ok := launcher.Select(info)
	if !ok {
		ui.Warn("No terminal found, running command in the current one")
		ui.Footer()
		exitWith(launcher.RunInline(command))
	}

	ui.Info("Opening %s", ui.Bold(candidate.Program))
	ui.Footer()
	exitWith(launcher.Run(candidate, command))
}

// exitWith mirrors the child's exit code. A spawn-level error (the
// emulator itself could not run) is surfaced and logged; the child's own
// non-zero exit is passed through silently.
func exitWith(code int, err error) {
	if err != nil {
		ui.Fail("%v", err)

		log, closeLog := logfile.Open(logfile.DefaultPath)
		log.Error("launch failed", zap.Error(err))
		closeLog()
	}
	os.Exit(code)
}

func hintLabel(hint string) string {
	if hint == "" {
		return "no hint set"
	}
	return hint
}

func listTerminals(launcher *terminal.Launcher) {
	ui.Header("deskrun")
	for _, c := range terminal.Candidates() {
		if launcher.Installed(c.Program) {
			ui.Success("%-16s %s", c.Program, ui.Dim("installed"))
		} else {
			ui.DimMsg("%-16s not installed", c.Program)
		}
	}
	ui.Footer()
}

func showHelp() {
	help := `deskrun - open a command in the desktop's own terminal emulator

USAGE:
    deskrun [OPTIONS] [--] COMMAND [ARGS...]

All arguments after COMMAND are forwarded to it verbatim. The terminal
emulator is picked for the current desktop environment, with a fixed
fallback order when the preferred one is missing; if no emulator is
installed at all, the command runs in the current terminal.

OPTIONS:
    --desktop NAME     Override the desktop-environment hint
    --terminal NAME    Force a specific terminal emulator
    --inline           Run in the current terminal, no new window
    --list             List terminal candidates and availability
    -h, --help         Show this help message
    --version          Show version information

EXAMPLES:
    # Run a backup script in a new terminal window
    deskrun ./backup.sh --full

    # Pretend to be on XFCE
    deskrun --desktop XFCE ./backup.sh

    # Force kitty regardless of desktop
    deskrun --terminal kitty htop

ENVIRONMENT VARIABLES:
    XDG_CURRENT_DESKTOP   Primary desktop-environment hint
    DESKTOP_SESSION       Fallback hint when XDG_CURRENT_DESKTOP is unset

EXIT CODES:
    0    Success
    1    Target missing or arguments invalid
    N    The launched child's own exit code, unchanged
`
	fmt.Print(help)
}
