package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/sysdash/canvas"
	"gitlab.com/tinyland/lab/sysdash/chart"
	"gitlab.com/tinyland/lab/sysdash/config"
	"gitlab.com/tinyland/lab/sysdash/dashboard"
	"gitlab.com/tinyland/lab/sysdash/display/color"
	"gitlab.com/tinyland/lab/sysdash/display/render"
	"gitlab.com/tinyland/lab/sysdash/display/tui"
	"gitlab.com/tinyland/lab/sysdash/hostinfo"
	"gitlab.com/tinyland/lab/sysdash/scheduler"
	"gitlab.com/tinyland/lab/sysdash/simulator"
	"gitlab.com/tinyland/lab/sysdash/status"
)

// app bundles the dashboard state with the TUI model that presents it.
type app struct {
	dash   *dashboard.Dashboard
	board  *dashboard.Board
	charts map[simulator.Channel]*canvas.Canvas
	model  tui.Model
	logger *slog.Logger
}

// newApp builds the chart canvases, board, and dashboard from cfg and
// writes the host details once.
func newApp(cfg *config.Config, protocol render.Protocol, info hostinfo.Info, logger *slog.Logger) (*app, error) {
	charts := make(map[simulator.Channel]*canvas.Canvas, len(dashboard.ChartedChannels))
	surfaces := make(map[simulator.Channel]chart.Surface, len(dashboard.ChartedChannels))
	for _, ch := range dashboard.ChartedChannels {
		c, err := canvas.New(cfg.Display.ChartWidth, cfg.Display.ChartHeight)
		if err != nil {
			return nil, fmt.Errorf("%s chart: %w", ch, err)
		}
		charts[ch] = c
		surfaces[ch] = c
	}

	var sim *simulator.Simulator
	if cfg.Simulation.Seed != 0 {
		sim = simulator.NewSeeded(cfg.Simulation.Seed)
		logger.Debug("seeded simulator", "seed", cfg.Simulation.Seed)
	}

	board := dashboard.NewBoard()
	dash, err := dashboard.New(dashboard.Options{
		Display:   board,
		Surfaces:  surfaces,
		Simulator: sim,
		Labels:    true,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	dash.ShowEnvironment(info)

	model := tui.NewModel(tui.Options{
		Dashboard: dash,
		Board:     board,
		Charts:    charts,
		Protocol:  protocol,
		Theme:     cfg.Display.Theme,
		Mouse:     cfg.Display.Mouse,
		Thresholds: status.EvaluatorConfig{
			CPU:  status.Thresholds(cfg.Health.CPU),
			RAM:  status.Thresholds(cfg.Health.RAM),
			Disk: status.Thresholds(cfg.Health.Disk),
		},
		Logger: logger,
	})

	logger.Info("dashboard ready",
		"theme", cfg.Display.Theme,
		"protocol", protocol.String(),
		"platform", info.Platform,
		"client", info.Client,
	)
	return &app{dash: dash, board: board, charts: charts, model: model, logger: logger}, nil
}

// snapshot fires the metrics task once at now and writes the rendered
// dashboard to w. Escape sequences are stripped when color is off.
func (a *app) snapshot(w io.Writer, width int, colorOn bool, now time.Time) error {
	loop := scheduler.New(a.logger)
	if err := a.dash.Register(loop); err != nil {
		return err
	}
	if err := loop.Fire(dashboard.TaskMetrics, now); err != nil {
		return fmt.Errorf("sample metrics: %w", err)
	}
	if err := loop.Fire(dashboard.TaskUptime, now); err != nil {
		return fmt.Errorf("update uptime: %w", err)
	}

	out := a.model.Snapshot(width)
	if !colorOn {
		out = color.StripANSI(out)
	}
	_, err := io.WriteString(w, out)
	return err
}
