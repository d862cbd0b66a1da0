// sysdash is a terminal dashboard of synthetic system metrics.
//
// It samples simulated CPU, memory, disk, and network readings once a
// second, keeps a short history for the CPU and memory charts, and shows
// everything in an interactive Bubbletea TUI or as a one-shot snapshot.
//
// Usage:
//
//	sysdash [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/sysdash/config.yaml)
//	-write-config   Write the default configuration to the config path and exit
//	-man            Print the man page to stdout in roff format
//	-once           Sample once, print the dashboard, and exit
//	-seed uint      Seed for reproducible readings (0 = from the clock)
//	-verbose        Enable debug logging
//	-version        Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/sysdash/config"
	"gitlab.com/tinyland/lab/sysdash/dashboard"
	"gitlab.com/tinyland/lab/sysdash/display/color"
	"gitlab.com/tinyland/lab/sysdash/display/render"
	"gitlab.com/tinyland/lab/sysdash/display/tui"
	"gitlab.com/tinyland/lab/sysdash/docs/manpage"
	"gitlab.com/tinyland/lab/sysdash/hostinfo"
	"gitlab.com/tinyland/lab/sysdash/scheduler"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file (default: ~/.config/sysdash/config.yaml)")
		once        = flag.Bool("once", false, "Sample once, print the dashboard, and exit")
		seed        = flag.Uint64("seed", 0, "Seed for reproducible readings (0 = from the clock)")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
		showMan     = flag.Bool("man", false, "Print the man page to stdout in roff format")
		writeConfig = flag.Bool("write-config", false, "Write the default configuration to the config path and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(versionString())
		os.Exit(0)
	}

	if *showMan {
		fmt.Print(manpage.Generate(manpage.Page{
			Version: version,
			Commit:  commit,
			Date:    date,
			Flags:   flag.CommandLine,
		}))
		os.Exit(0)
	}

	if *writeConfig {
		path := config.ResolvePath(*configPath)
		if err := config.WriteDefault(path); err != nil {
			fmt.Fprintf(os.Stderr, "sysdash: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote default configuration to %s\n", path)
		os.Exit(0)
	}

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "sysdash: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}

	logger, closeLog, err := newLogger(cfg, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sysdash: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	colorOn := color.Apply(os.Stdout, cfg.Display.Theme == "mono")
	protocol, err := render.ParseProtocol(cfg.Display.Protocol, os.Getenv)
	if err != nil {
		logger.Warn("unknown image protocol, using sparklines", "protocol", cfg.Display.Protocol, "error", err)
		protocol = render.ProtocolNone
	}
	if *once && !colorOn {
		protocol = render.ProtocolNone
	}

	info := hostinfo.Detect()
	a, err := newApp(cfg, protocol, info, logger)
	if err != nil {
		logger.Error("dashboard setup failed", "error", err)
		if errors.Is(err, dashboard.ErrMissingTarget) {
			fmt.Fprintf(os.Stderr, "sysdash: %v\n", err)
		}
		os.Exit(1)
	}

	if *once {
		if err := a.snapshot(os.Stdout, info.Columns, colorOn, time.Now()); err != nil {
			logger.Error("snapshot failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := runTUI(ctx, a, cfg.Display.Mouse, logger); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger opens the configured log file and returns a text logger at the
// configured level. The TUI owns the terminal, so nothing is logged there.
func newLogger(cfg *config.Config, verbose bool) (*slog.Logger, func(), error) {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

// runTUI starts the Bubbletea program and the scheduler that feeds it
// ticks, and blocks until the program exits or ctx is cancelled.
func runTUI(ctx context.Context, a *app, mouse bool, logger *slog.Logger) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(a.model, opts...)

	loop := scheduler.New(logger)
	if err := tui.Schedule(loop, p.Send); err != nil {
		return fmt.Errorf("schedule ticks: %w", err)
	}

	loopCtx, stopLoop := context.WithCancel(ctx)
	defer stopLoop()
	go func() {
		if err := loop.Run(loopCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler stopped", "error", err)
		}
	}()

	_, err := p.Run()
	stopLoop()
	loop.Stop()

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
