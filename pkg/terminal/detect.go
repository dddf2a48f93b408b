// Package terminal detects the terminal a chart is printed to: which
// emulator it is, which inline image protocol it speaks and how large it
// is. Detection only inspects the environment and the tty; it never writes
// query sequences.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermGeneric   Terminal = iota
	TermGhostty            // kitty graphics
	TermKitty              // kitty graphics
	TermWezTerm            // kitty graphics, sixel, iterm2 images
	TermITerm2             // iterm2 images
	TermAlacritty          // true color, no images
	TermVTE                // GNOME Terminal, Tilix
	TermVSCode
	TermTmux
	TermScreen
)

var terminalNames = [...]string{
	TermGeneric:   "generic",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermVTE:       "vte",
	TermVSCode:    "vscode",
	TermTmux:      "tmux",
	TermScreen:    "screen",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsTrueColor reports whether the terminal renders 24-bit color.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2, TermAlacritty, TermVTE, TermVSCode:
		return true
	}
	return false
}

// Env looks up an environment variable. os.Getenv satisfies it.
type Env func(key string) string

// Detect identifies the terminal emulator from the process environment.
func Detect() Terminal {
	return DetectFrom(os.Getenv)
}

// DetectFrom identifies the terminal from env. Signals are checked from
// most to least specific: TERM_PROGRAM, TERM, emulator-specific variables,
// VTE, then multiplexers.
func DetectFrom(env Env) Terminal {
	switch strings.ToLower(env("TERM_PROGRAM")) {
	case "ghostty":
		return TermGhostty
	case "kitty":
		return TermKitty
	case "wezterm":
		return TermWezTerm
	case "iterm.app":
		return TermITerm2
	case "vscode":
		return TermVSCode
	case "alacritty":
		return TermAlacritty
	case "tmux":
		return TermTmux
	}

	term := env("TERM")
	switch {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	}

	switch {
	case env("KITTY_WINDOW_ID") != "":
		return TermKitty
	case env("ITERM_SESSION_ID") != "", env("LC_TERMINAL") == "iTerm2":
		return TermITerm2
	case env("WEZTERM_EXECUTABLE") != "":
		return TermWezTerm
	case env("VTE_VERSION") != "":
		return TermVTE
	case env("TMUX") != "":
		return TermTmux
	case env("STY") != "":
		return TermScreen
	}
	return TermGeneric
}

// isSSH reports whether env describes an SSH session.
func isSSH(env Env) bool {
	return env("SSH_TTY") != "" || env("SSH_CONNECTION") != "" || env("SSH_CLIENT") != ""
}
