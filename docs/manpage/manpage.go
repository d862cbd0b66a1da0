// Package manpage generates a roff-formatted man page for sysdash.
//
// Options come from the live flag set and keybindings from the TUI key
// map, so the page follows the code without a separate source.
//
// Usage:
//
//	sysdash -man | man -l -
//	sysdash -man > ~/.local/share/man/man1/sysdash.1
package manpage

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/sysdash/config"
	"gitlab.com/tinyland/lab/sysdash/display/tui"
)

// Page holds the inputs for one man page.
type Page struct {
	Version string
	Commit  string
	Date    string
	// Flags documents the command-line options. Nil omits OPTIONS entries.
	Flags *flag.FlagSet
	// Now dates the header. Zero means time.Now().
	Now time.Time
}

// Generate produces a complete roff-formatted man(1) page.
func Generate(p Page) string {
	var b strings.Builder

	writeHeader(&b, p)
	writeName(&b)
	writeSynopsis(&b)
	writeDescription(&b)
	writeOptions(&b, p.Flags)
	writeKeybindings(&b)
	writeConfiguration(&b)
	writeEnvironment(&b)
	writeFiles(&b)
	writeExitStatus(&b)
	writeFooter(&b, p)

	return b.String()
}

// roffEscape escapes special roff characters in a string.
func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `-`, `\-`)
	if strings.HasPrefix(s, ".") || strings.HasPrefix(s, "'") {
		s = `\&` + s
	}
	return s
}

func writeHeader(b *strings.Builder, p Page) {
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	fmt.Fprintf(b, ".TH SYSDASH 1 \"%s\" \"sysdash %s\" \"User Commands\"\n", now.Format("January 2006"), p.Version)
}

func writeName(b *strings.Builder) {
	b.WriteString(`.SH NAME
sysdash \- terminal dashboard of simulated system metrics
`)
}

func writeSynopsis(b *strings.Builder) {
	b.WriteString(`.SH SYNOPSIS
.B sysdash
[\fIOPTIONS\fR]
`)
}

func writeDescription(b *strings.Builder) {
	b.WriteString(`.SH DESCRIPTION
.B sysdash
samples synthetic CPU, memory, disk, and network readings once a second
and shows them with gauges, history charts, and a process table.
The last 30 CPU and memory samples are charted; disk and network show the
current reading only.
.PP
By default an interactive TUI takes over the terminal. With
\fB\-once\fR a single sample is printed and the program exits.
`)
}

func writeOptions(b *strings.Builder, fs *flag.FlagSet) {
	b.WriteString(".SH OPTIONS\n")
	if fs == nil {
		return
	}
	fs.VisitAll(func(f *flag.Flag) {
		b.WriteString(".TP\n")
		name, usage := flag.UnquoteUsage(f)
		if name != "" {
			fmt.Fprintf(b, ".BR \\-%s \" \\fI%s\\fR\"\n", roffEscape(f.Name), name)
		} else {
			fmt.Fprintf(b, ".B \\-%s\n", roffEscape(f.Name))
		}
		b.WriteString(roffEscape(usage) + "\n")
	})
}

func writeKeybindings(b *strings.Builder) {
	b.WriteString(".SH KEYBINDINGS\n")
	for _, e := range tui.KeyHelp() {
		keys := make([]string, len(e.Keys))
		for i, k := range e.Keys {
			if k == " " {
				k = "space"
			}
			keys[i] = `\fB` + roffEscape(k) + `\fR`
		}
		fmt.Fprintf(b, ".TP\n%s\n%s\n", strings.Join(keys, ", "), roffEscape(e.Description))
	}
}

func writeConfiguration(b *strings.Builder) {
	b.WriteString(`.SH CONFIGURATION
Settings are read from a YAML file and merged over the defaults.
A missing file is not an error.
.PP
.nf
log:
  file: ~/.local/log/sysdash.log
  level: info            # debug, info, warn, error
display:
  theme: gradient        # gradient, ocean, mono
  protocol: auto         # auto, kitty, iterm2, unicode, none
  chart_width: 300
  chart_height: 60
  mouse: true
simulation:
  seed: 0                # 0 seeds from the clock
health:
  cpu:  { warning: 70, critical: 90 }
  ram:  { warning: 80, critical: 95 }
  disk: { warning: 85, critical: 95 }
.fi
`)
}

func writeEnvironment(b *strings.Builder) {
	b.WriteString(".SH ENVIRONMENT\n")
	vars := []struct{ name, desc string }{
		{"CONFIG", "Configuration file path when \\fB\\-config\\fR is not given."},
		{"LOG_LEVEL", "Overrides log.level."},
		{"LOG_FILE", "Overrides log.file."},
		{"THEME", "Overrides display.theme."},
		{"PROTOCOL", "Overrides display.protocol."},
		{"SEED", "Overrides simulation.seed."},
	}
	for _, v := range vars {
		fmt.Fprintf(b, ".TP\n.B %s\n%s\n", roffEscape(config.EnvPrefix+v.name), v.desc)
	}
	b.WriteString(`.TP
.B NO_COLOR
Disables color in \fB\-once\fR output.
.PP
Variables may also be set in a \fI.env\fR file in the working directory;
the process environment wins.
`)
}

func writeFiles(b *strings.Builder) {
	b.WriteString(`.SH FILES
.TP
.I ~/.config/sysdash/config.yaml
Default configuration file. \fB\-write\-config\fR creates it with the
defaults; an existing file is never replaced.
.TP
.I ~/.local/log/sysdash.log
Default log file. The TUI never logs to the terminal.
`)
}

func writeExitStatus(b *strings.Builder) {
	b.WriteString(".SH EXIT STATUS\n")
	b.WriteString(".TP\n.B 0\nSuccess.\n")
	b.WriteString(".TP\n.B 1\nInvalid configuration, missing display target, or a TUI failure.\n")
}

func writeFooter(b *strings.Builder, p Page) {
	fmt.Fprintf(b, ".SH VERSION\n%s (%s) built %s\n", p.Version, p.Commit, p.Date)
}
