// Package desktop classifies the running desktop environment.
package desktop

import (
	"os"
	"strings"
)

// Environment identifies a desktop environment family.
type Environment int

const (
	Unknown Environment = iota
	KDE
	GNOME
	XFCE
	MATE
	LXDE
)

// String returns the family name.
func (e Environment) String() string {
	switch e {
	case KDE:
		return "KDE"
	case GNOME:
		return "GNOME"
	case XFCE:
		return "XFCE"
	case MATE:
		return "MATE"
	case LXDE:
		return "LXDE"
	default:
		return "Unknown"
	}
}

// Info holds the desktop hint captured once at process start, together
// with its classification. Later code reads this value instead of going
// back to the environment.
type Info struct {
	Hint        string
	Environment Environment
}

// families maps each environment to the tokens that identify it. Session
// managers ship composite hints like "ubuntu:GNOME" or "X-Cinnamon", so
// classification works by substring containment. Matching is
// case-sensitive: the XDG values are conventionally spelled this way,
// and an unrecognized spelling should fall through to the generic path
// rather than guess.
var families = []struct {
	env    Environment
	tokens []string
}{
	{KDE, []string{"KDE"}},
	{GNOME, []string{"GNOME", "Unity", "Cinnamon"}},
	{XFCE, []string{"XFCE"}},
	{MATE, []string{"MATE"}},
	{LXDE, []string{"LXDE", "LXQt"}},
}

// Classify matches a desktop hint against the known families.
// Unrecognized hints, including the empty string, classify as Unknown.
func Classify(hint string) Environment {
	for _, f := range families {
		for _, tok := range f.tokens {
			if strings.Contains(hint, tok) {
				return f.env
			}
		}
	}
	return Unknown
}

// Detect reads XDG_CURRENT_DESKTOP, falling back to DESKTOP_SESSION, and
// classifies the result. The environment is consulted exactly once.
func Detect() Info {
	hint := os.Getenv("XDG_CURRENT_DESKTOP")
	if hint == "" {
		hint = os.Getenv("DESKTOP_SESSION")
	}
	return Info{Hint: hint, Environment: Classify(hint)}
}

// ForHint builds an Info from an explicit hint, bypassing the
// environment entirely. Used when the hint comes from a flag.
func ForHint(hint string) Info {
	return Info{Hint: hint, Environment: Classify(hint)}
}
