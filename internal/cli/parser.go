// Package cli handles command-line argument parsing.
package cli

import (
	"errors"
	"fmt"
	"strings"
)

// LaunchArgs represents parsed deskrun command-line arguments.
type LaunchArgs struct {
	// Desktop overrides the detected desktop-environment hint.
	Desktop string

	// Terminal forces a specific emulator by program name.
	Terminal string

	// Inline skips emulator selection and runs the command in the
	// current terminal.
	Inline bool

	// List prints the candidate table and exits.
	List bool

	// Command is the target command line, forwarded verbatim.
	Command []string
}

// SyncArgs represents parsed gitsync command-line arguments.
type SyncArgs struct {
	ConfigPath string
	Message    string
	Pause      bool
}

// ParseLaunch parses deskrun arguments. Everything after the first
// non-flag argument (or after --) belongs to the target command and is
// passed through untouched.
func ParseLaunch(osArgs []string) (*LaunchArgs, error) {
	args := &LaunchArgs{
		Command: []string{},
	}

	i := 1 // Skip program name
	for i < len(osArgs) {
		arg := osArgs[i]

		// Once the command starts, stop interpreting flags.
		if len(args.Command) > 0 {
			args.Command = append(args.Command, arg)
			i++
			continue
		}

		switch arg {
		case "-h", "--help":
			return nil, errors.New("show_help")

		case "--version":
			return nil, errors.New("show_version")

		case "--desktop":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--desktop requires an argument")
			}
			args.Desktop = osArgs[i+1]
			i += 2

		case "--terminal":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--terminal requires an argument")
			}
			args.Terminal = osArgs[i+1]
			i += 2

		case "--inline":
			args.Inline = true
			i++

		case "--list":
			args.List = true
			i++

		case "--":
			args.Command = append(args.Command, osArgs[i+1:]...)
			i = len(osArgs)

		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("unknown flag: %s (use -- before a command that starts with a dash)", arg)
			}
			args.Command = append(args.Command, arg)
			i++
		}
	}

	return args, nil
}

// ParseSync parses gitsync arguments.
func ParseSync(osArgs []string) (*SyncArgs, error) {
	args := &SyncArgs{
		ConfigPath: ".env",
	}

	i := 1 // Skip program name
	for i < len(osArgs) {
		arg := osArgs[i]

		switch arg {
		case "-h", "--help":
			return nil, errors.New("show_help")

		case "--version":
			return nil, errors.New("show_version")

		case "--config":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--config requires a path argument")
			}
			args.ConfigPath = osArgs[i+1]
			i += 2

		case "-m", "--message":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("%s requires an argument", arg)
			}
			args.Message = osArgs[i+1]
			i += 2

		case "--pause":
			args.Pause = true
			i++

		default:
			return nil, fmt.Errorf("unknown argument: %s", arg)
		}
	}

	return args, nil
}
