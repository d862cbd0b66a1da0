package hostinfo

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

const (
	defaultColumns = 80
	defaultRows    = 24
)

// stdoutSize queries the terminal attached to stdout.
func stdoutSize() (int, int, error) {
	return term.GetSize(os.Stdout.Fd())
}

// size returns the terminal dimensions. It attempts TTY detection first,
// then falls back to COLUMNS/LINES, and finally to 80x24.
func (d *Detector) size() (width, height int) {
	if w, h, err := d.terminalSize(); err == nil && w > 0 && h > 0 {
		return w, h
	}

	if v, err := strconv.Atoi(d.getenv("COLUMNS")); err == nil && v > 0 {
		width = v
	}
	if v, err := strconv.Atoi(d.getenv("LINES")); err == nil && v > 0 {
		height = v
	}

	if width == 0 {
		width = defaultColumns
	}
	if height == 0 {
		height = defaultRows
	}
	return width, height
}

// TerminalSize returns the current terminal dimensions using the same
// fallback chain as Detect.
func TerminalSize() (width, height int) {
	return NewDetector().size()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
