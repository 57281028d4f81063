package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mfreund/deskrun/internal/desktop"
)

// Launcher spawns a command in a new terminal window, falling back
// through the candidate list and finally to inline execution.
type Launcher struct {
	// lookPath reports whether a program is installed. Swapped out in
	// tests.
	lookPath func(string) (string, error)

	// runCmd executes an assembled invocation and returns the child's
	// exit code. Swapped out in tests.
	runCmd func(name string, args ...string) (int, error)
}

// New returns a Launcher backed by the real PATH and process table.
func New() *Launcher {
	return &Launcher{
		lookPath: exec.LookPath,
		runCmd:   runInherited,
	}
}

// runInherited runs the command wired to the current process's standard
// streams and waits for it, mirroring its exit code.
func runInherited(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("running %s: %w", name, err)
	}
	return 0, nil
}

// CheckTarget verifies the launch target before any terminal logic
// runs. Path-like targets must exist on disk; bare words must resolve
// on PATH. A miss is a configuration error and nothing gets spawned.
func (l *Launcher) CheckTarget(target string) error {
	if strings.ContainsRune(target, '/') {
		if _, err := os.Stat(target); err != nil {
			return fmt.Errorf("target script not found: %s", target)
		}
		return nil
	}
	if _, err := l.lookPath(target); err != nil {
		return fmt.Errorf("target command not found: %s", target)
	}
	return nil
}

// Installed reports whether program resolves on PATH.
func (l *Launcher) Installed(program string) bool {
	_, err := l.lookPath(program)
	return err == nil
}

// Select resolves the terminal candidate for info: the environment's own
// emulator when installed, otherwise the first installed entry of the
// fallback list. ok is false when no emulator exists at all.
func (l *Launcher) Select(info desktop.Info) (Candidate, bool) {
	if c, ok := PreferredFor(info.Environment); ok && l.Installed(c.Program) {
		return c, true
	}
	for _, c := range Candidates() {
		if l.Installed(c.Program) {
			return c, true
		}
	}
	return Candidate{}, false
}

// Run spawns command inside the chosen emulator and returns the child's
// exit code. Each candidate is tried at most once; there are no retries.
func (l *Launcher) Run(c Candidate, command string) (int, error) {
	inv := c.Invocation(command)
	return l.runCmd(inv[0], inv[1:]...)
}

// RunInline executes command in the current terminal, no new window.
func (l *Launcher) RunInline(command string) (int, error) {
	return l.runCmd("sh", "-c", command)
}

// Launch is the composed operation: select an emulator for info and run
// command in it, degrading to inline execution when none is installed.
func (l *Launcher) Launch(info desktop.Info, command string) (int, error) {
	if c, ok := l.Select(info); ok {
		return l.Run(c, command)
	}
	return l.RunInline(command)
}

// LaunchWith forces a specific emulator by program name.
func (l *Launcher) LaunchWith(name, command string) (int, error) {
	c, ok := ByName(name)
	if !ok {
		return 1, fmt.Errorf("unknown terminal: %s", name)
	}
	if !l.Installed(c.Program) {
		return 1, fmt.Errorf("terminal not installed: %s", name)
	}
	return l.Run(c, command)
}
