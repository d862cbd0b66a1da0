// Package hostinfo gathers the read-only host and terminal identification
// shown in the dashboard's system panel. It is consulted once at startup.
package hostinfo

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/sysdash/internal/format"
)

const (
	// DefaultCores is reported when the logical core count is unavailable.
	DefaultCores = 4

	// identityDisplayLen is the number of characters of the raw identity
	// string shown before it is ellipsized.
	identityDisplayLen = 50
)

// Info is the host/terminal identification consumed by the dashboard.
type Info struct {
	// Platform is the operating system family, e.g. "Linux" or "macOS".
	Platform string
	// Client is the terminal emulator family, e.g. "Ghostty" or "iTerm2".
	Client string
	// Columns and Rows are the terminal dimensions in cells.
	Columns int
	Rows    int
	// Identity is the raw identification string the platform was derived from.
	Identity string
	// Timezone is the IANA zone name when resolvable, else the zone abbreviation.
	Timezone string
	// Cores is the logical CPU count.
	Cores int
}

// ScreenSize renders the terminal dimensions as "W x H".
func (i Info) ScreenSize() string {
	return itoa(i.Columns) + " x " + itoa(i.Rows)
}

// ShortIdentity returns Identity cut to 50 characters plus "...".
func (i Info) ShortIdentity() string {
	return format.Ellipsize(i.Identity, identityDisplayLen)
}

// Detector collects Info. The lookups are fields so tests can replace them.
type Detector struct {
	getenv       func(string) string
	identity     func() string
	numCPU       func() int
	terminalSize func() (int, int, error)
	readlink     func(string) (string, error)
	now          func() time.Time
}

// NewDetector returns a Detector wired to the real process environment.
func NewDetector() *Detector {
	return &Detector{
		getenv:       os.Getenv,
		identity:     rawIdentity,
		numCPU:       runtime.NumCPU,
		terminalSize: stdoutSize,
		readlink:     os.Readlink,
		now:          time.Now,
	}
}

// Detect gathers host information from the real environment.
func Detect() Info {
	return NewDetector().Detect()
}

// Detect gathers host information using d's lookups.
func (d *Detector) Detect() Info {
	identity := d.identity()
	cols, rows := d.size()

	cores := d.numCPU()
	if cores <= 0 {
		cores = DefaultCores
	}

	return Info{
		Platform: PlatformFamily(identity),
		Client:   ClientFamily(d.getenv("TERM_PROGRAM"), d.getenv("TERM")),
		Columns:  cols,
		Rows:     rows,
		Identity: identity,
		Timezone: d.timezone(),
		Cores:    cores,
	}
}

// PlatformFamily classifies a raw identification string into an OS family.
func PlatformFamily(identity string) string {
	switch {
	case strings.Contains(identity, "Win"):
		return "Windows"
	case strings.Contains(identity, "Mac"), strings.Contains(identity, "Darwin"):
		return "macOS"
	case strings.Contains(identity, "Linux"):
		return "Linux"
	case strings.Contains(identity, "Android"):
		return "Android"
	case strings.Contains(identity, "iOS"):
		return "iOS"
	default:
		return "Unknown OS"
	}
}

// ClientFamily classifies the terminal emulator from TERM_PROGRAM, falling
// back to TERM.
func ClientFamily(termProgram, term string) string {
	switch strings.ToLower(termProgram) {
	case "ghostty":
		return "Ghostty"
	case "kitty":
		return "Kitty"
	case "wezterm":
		return "WezTerm"
	case "iterm.app":
		return "iTerm2"
	case "apple_terminal":
		return "Terminal.app"
	case "vscode":
		return "VS Code"
	case "tmux":
		return "tmux"
	}

	switch {
	case term == "xterm-kitty":
		return "Kitty"
	case term != "":
		return term
	default:
		return "Unknown Terminal"
	}
}

// timezone resolves the zone name from TZ, then the /etc/localtime link,
// then the current zone abbreviation.
func (d *Detector) timezone() string {
	if tz := strings.TrimPrefix(d.getenv("TZ"), ":"); tz != "" {
		return tz
	}

	if target, err := d.readlink("/etc/localtime"); err == nil {
		target = filepath.ToSlash(target)
		if i := strings.Index(target, "zoneinfo/"); i >= 0 {
			return target[i+len("zoneinfo/"):]
		}
	}

	name, _ := d.now().Zone()
	return name
}
