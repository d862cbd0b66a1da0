// Package render turns chart images into terminal output. It supports the
// Kitty graphics protocol (Ghostty, Kitty, WezTerm), iTerm2 inline images,
// and a Unicode half-block fallback that works in any truecolor terminal.
package render

import (
	"fmt"
	"strings"
)

// Protocol identifies how an image reaches the terminal.
type Protocol int

const (
	// ProtocolNone draws no images; callers fall back to sparklines.
	ProtocolNone Protocol = iota
	// ProtocolUnicode uses half-block characters with 24-bit ANSI color.
	ProtocolUnicode
	// ProtocolKitty uses the Kitty graphics protocol.
	ProtocolKitty
	// ProtocolITerm2 uses iTerm2 inline images.
	ProtocolITerm2
)

// String returns the configuration name of the protocol.
func (p Protocol) String() string {
	switch p {
	case ProtocolNone:
		return "none"
	case ProtocolUnicode:
		return "unicode"
	case ProtocolKitty:
		return "kitty"
	case ProtocolITerm2:
		return "iterm2"
	default:
		return "unknown"
	}
}

// Inline reports whether the protocol emits a terminal graphics escape
// rather than text cells. Inline images cannot be composed inside styled
// layouts.
func (p Protocol) Inline() bool {
	return p == ProtocolKitty || p == ProtocolITerm2
}

// ParseProtocol maps a configuration value onto a Protocol. "auto" runs
// context-aware detection against getenv.
func ParseProtocol(name string, getenv func(string) string) (Protocol, error) {
	switch strings.ToLower(name) {
	case "auto", "":
		return DetectProtocolWithContext(getenv), nil
	case "none":
		return ProtocolNone, nil
	case "unicode":
		return ProtocolUnicode, nil
	case "kitty":
		return ProtocolKitty, nil
	case "iterm2":
		return ProtocolITerm2, nil
	default:
		return ProtocolNone, fmt.Errorf("unknown image protocol %q", name)
	}
}

// DetectProtocol inspects environment variables to determine which image
// protocol the current terminal supports.
//
// Detection priority:
//  1. TERM_PROGRAM for known terminal emulators
//  2. TERM=xterm-kitty
//  3. KITTY_WINDOW_ID
//  4. iTerm2 session variables
//  5. WEZTERM_EXECUTABLE
//  6. Unicode half-blocks
func DetectProtocol(getenv func(string) string) Protocol {
	switch strings.ToLower(getenv("TERM_PROGRAM")) {
	case "ghostty", "kitty", "wezterm":
		return ProtocolKitty
	case "iterm.app":
		return ProtocolITerm2
	}

	if getenv("TERM") == "xterm-kitty" || getenv("KITTY_WINDOW_ID") != "" {
		return ProtocolKitty
	}
	if getenv("ITERM_SESSION_ID") != "" || getenv("LC_TERMINAL") == "iTerm2" {
		return ProtocolITerm2
	}
	if getenv("WEZTERM_EXECUTABLE") != "" {
		return ProtocolKitty
	}
	return ProtocolUnicode
}

// IsSSHSession reports whether the process runs inside an SSH session.
func IsSSHSession(getenv func(string) string) bool {
	return getenv("SSH_CLIENT") != "" || getenv("SSH_CONNECTION") != "" || getenv("SSH_TTY") != ""
}

// IsTmuxSession reports whether the process runs inside tmux.
func IsTmuxSession(getenv func(string) string) bool {
	return getenv("TMUX") != ""
}

// DetectProtocolWithContext is DetectProtocol degraded to Unicode over SSH,
// and for Kitty inside tmux where passthrough is usually off.
func DetectProtocolWithContext(getenv func(string) string) Protocol {
	p := DetectProtocol(getenv)
	if p.Inline() && IsSSHSession(getenv) {
		return ProtocolUnicode
	}
	if p == ProtocolKitty && IsTmuxSession(getenv) {
		return ProtocolUnicode
	}
	return p
}
