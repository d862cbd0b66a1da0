// sysdash-demo renders the dashboard headlessly from a fixed seed, for
// checking layouts at a given width without a live terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gitlab.com/tinyland/lab/sysdash/canvas"
	"gitlab.com/tinyland/lab/sysdash/chart"
	"gitlab.com/tinyland/lab/sysdash/dashboard"
	"gitlab.com/tinyland/lab/sysdash/display/color"
	"gitlab.com/tinyland/lab/sysdash/display/render"
	"gitlab.com/tinyland/lab/sysdash/display/tui"
	"gitlab.com/tinyland/lab/sysdash/hostinfo"
	"gitlab.com/tinyland/lab/sysdash/scheduler"
	"gitlab.com/tinyland/lab/sysdash/simulator"
)

func main() {
	termWidth := flag.Int("width", 120, "Terminal width")
	ticks := flag.Int("ticks", 30, "Metrics ticks to simulate before rendering")
	seed := flag.Uint64("seed", 1, "Simulator seed")
	theme := flag.String("theme", "gradient", "Theme preset")
	pngPath := flag.String("png", "", "Also write the CPU chart to this PNG file")
	flag.Parse()

	color.ForceDisable() // ASCII-only for demo

	out, cpu, err := renderDemo(*termWidth, *ticks, *seed, *theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sysdash-demo: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== sysdash demo ===")
	fmt.Printf("Width: %d, ticks: %d, seed: %d\n\n", *termWidth, *ticks, *seed)
	fmt.Print(out)

	if *pngPath != "" {
		data, err := cpu.PNG()
		if err != nil {
			fmt.Fprintf(os.Stderr, "sysdash-demo: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*pngPath, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "sysdash-demo: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nCPU chart written to %s\n", *pngPath)
	}
}

// renderDemo simulates ticks one second apart from a fixed epoch and returns
// the plain snapshot and the CPU canvas.
func renderDemo(width, ticks int, seed uint64, theme string) (string, *canvas.Canvas, error) {
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	charts := make(map[simulator.Channel]*canvas.Canvas)
	surfaces := make(map[simulator.Channel]chart.Surface)
	for _, ch := range dashboard.ChartedChannels {
		c, err := canvas.New(300, 60)
		if err != nil {
			return "", nil, err
		}
		charts[ch] = c
		surfaces[ch] = c
	}

	board := dashboard.NewBoard()
	dash, err := dashboard.New(dashboard.Options{
		Display:   board,
		Surfaces:  surfaces,
		Simulator: simulator.NewSeeded(seed),
		StartedAt: epoch,
		Labels:    true,
	})
	if err != nil {
		return "", nil, err
	}
	dash.ShowEnvironment(hostinfo.Info{
		Platform: "Linux",
		Client:   "Demo",
		Columns:  width,
		Rows:     40,
		Identity: "Linux 6.1.0-demo x86_64",
		Timezone: "UTC",
		Cores:    8,
	})

	loop := scheduler.New(nil)
	if err := dash.Register(loop); err != nil {
		return "", nil, err
	}
	now := epoch
	for i := 0; i < ticks; i++ {
		now = now.Add(dashboard.TickInterval)
		if err := loop.Fire(dashboard.TaskMetrics, now); err != nil {
			return "", nil, err
		}
	}
	if err := loop.Fire(dashboard.TaskUptime, now); err != nil {
		return "", nil, err
	}

	model := tui.NewModel(tui.Options{
		Dashboard: dash,
		Board:     board,
		Charts:    charts,
		Protocol:  render.ProtocolNone,
		Theme:     theme,
	})
	return color.StripANSI(model.Snapshot(width)), charts[simulator.CPU], nil
}
