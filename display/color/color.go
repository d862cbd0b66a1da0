// Package color decides whether sysdash output may carry ANSI color.
//
// It implements the NO_COLOR convention (https://no-color.org/) and
// pipe/redirect detection. When color is disabled, lipgloss is set to the
// Ascii profile so every styled render produces plain text.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ShouldDisableColor reports whether output to f must be plain: NO_COLOR
// is set (any value) or f is not a terminal.
func ShouldDisableColor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	if f == nil {
		return true
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Profile returns the color profile to use for output to f. forcePlain
// selects Ascii regardless of the terminal.
func Profile(f *os.File, forcePlain bool) termenv.Profile {
	if forcePlain || ShouldDisableColor(f) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// Apply configures the global lipgloss renderer for output to f and
// reports whether color is enabled.
func Apply(f *os.File, forcePlain bool) bool {
	p := Profile(f, forcePlain)
	lipgloss.SetColorProfile(p)
	return p != termenv.Ascii
}

// ForceDisable sets the lipgloss color profile to Ascii, unconditionally
// disabling all color output.
func ForceDisable() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// StripANSI removes all ANSI escape sequences from s, for output that
// bypasses lipgloss styling such as half-block chart images.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
