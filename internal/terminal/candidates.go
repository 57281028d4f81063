package terminal

import (
	"strings"

	"github.com/mfreund/deskrun/internal/desktop"
)

// Candidate pairs a terminal emulator program with the invocation syntax
// that opens a window running a command and keeps the window open.
type Candidate struct {
	Program string
	args    func(command string) []string
}

// Invocation returns the full argument vector (program first) that runs
// command inside this emulator.
func (c Candidate) Invocation(command string) []string {
	return append([]string{c.Program}, c.args(command)...)
}

// keepShell appends a shell hand-off for emulators that have no hold
// flag of their own, so the window stays open after command finishes.
func keepShell(command string) string {
	return command + "; exec sh"
}

// candidates is the fallback list in priority order: one emulator per
// desktop family, then the GPU-accelerated pair, then legacy xterm.
// The order is fixed and the first installed program wins.
var candidates = []Candidate{
	{"konsole", func(c string) []string {
		return []string{"--hold", "-e", "sh", "-c", c}
	}},
	{"gnome-terminal", func(c string) []string {
		// No hold flag; --wait blocks until the window closes.
		return []string{"--wait", "--", "sh", "-c", keepShell(c)}
	}},
	{"xfce4-terminal", func(c string) []string {
		return []string{"--hold", "-x", "sh", "-c", c}
	}},
	{"mate-terminal", func(c string) []string {
		// --disable-factory keeps the window in this process instead of
		// handing it to an existing server, so the exit code is real.
		return []string{"--disable-factory", "-x", "sh", "-c", keepShell(c)}
	}},
	{"lxterminal", func(c string) []string {
		return []string{"-e", "sh", "-c", keepShell(c)}
	}},
	{"kitty", func(c string) []string {
		return []string{"--hold", "sh", "-c", c}
	}},
	{"alacritty", func(c string) []string {
		return []string{"--hold", "-e", "sh", "-c", c}
	}},
	{"xterm", func(c string) []string {
		return []string{"-hold", "-e", "sh", "-c", c}
	}},
}

// preferred maps each known desktop family to its own emulator.
var preferred = map[desktop.Environment]string{
	desktop.KDE:   "konsole",
	desktop.GNOME: "gnome-terminal",
	desktop.XFCE:  "xfce4-terminal",
	desktop.MATE:  "mate-terminal",
	desktop.LXDE:  "lxterminal",
}

// Candidates returns the fallback list in priority order.
func Candidates() []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	return out
}

// ByName returns the candidate for a program name.
func ByName(name string) (Candidate, bool) {
	for _, c := range candidates {
		if c.Program == name {
			return c, true
		}
	}
	return Candidate{}, false
}

// PreferredFor returns the emulator idiomatic to env. ok is false for
// Unknown, which has no preference and goes straight to the fallback
// scan.
func PreferredFor(env desktop.Environment) (Candidate, bool) {
	name, ok := preferred[env]
	if !ok {
		return Candidate{}, false
	}
	return ByName(name)
}

// ShellCommand joins argv into a single command line for sh -c, quoting
// each argument so it survives the round trip verbatim.
func ShellCommand(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = shellQuote(a)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$&|;<>()*?[]#~`{}!") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
