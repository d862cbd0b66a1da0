// Package dashboard holds the monitor's state between ticks and pushes each
// tick's readings into a Display and the chart surfaces.
package dashboard

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"strconv"
	"time"

	"gitlab.com/tinyland/lab/sysdash/chart"
	"gitlab.com/tinyland/lab/sysdash/history"
	"gitlab.com/tinyland/lab/sysdash/hostinfo"
	"gitlab.com/tinyland/lab/sysdash/internal/format"
	"gitlab.com/tinyland/lab/sysdash/scheduler"
	"gitlab.com/tinyland/lab/sysdash/simulator"
)

const (
	// TickInterval is the period of both the metrics and uptime tasks.
	TickInterval = time.Second

	// TaskMetrics and TaskUptime name the two scheduler tasks.
	TaskMetrics = "metrics"
	TaskUptime  = "uptime"

	// RAMTotalGB and DiskTotalGB are the simulated capacities.
	RAMTotalGB  = 16
	DiskTotalGB = 512
)

// ErrMissingTarget is returned by New when a display field or chart surface
// does not exist.
var ErrMissingTarget = errors.New("missing display target")

// Series colors.
var (
	CPUColor = chart.MustParseHex("#667eea")
	RAMColor = chart.MustParseHex("#764ba2")
)

// labeler is implemented by surfaces that can stamp a caption.
type labeler interface {
	DrawLabel(text string, col color.Color)
}

// Options configures a Dashboard.
type Options struct {
	// Display receives text, levels and process rows. Required.
	Display Display
	// Surfaces maps each charted channel to its drawing surface. CPU and
	// RAM are required.
	Surfaces map[simulator.Channel]chart.Surface
	// Simulator generates readings. Nil uses a clock-seeded simulator.
	Simulator *simulator.Simulator
	// StartedAt is the uptime origin. Zero means time.Now().
	StartedAt time.Time
	// Labels stamps the latest value onto surfaces that support it.
	Labels bool
	// Logger receives tick diagnostics. Nil discards.
	Logger *slog.Logger
}

// Dashboard is the explicit state shared by the metrics and uptime ticks.
type Dashboard struct {
	display  Display
	surfaces map[simulator.Channel]chart.Surface
	sim      *simulator.Simulator
	logger   *slog.Logger
	labels   bool

	cpuHistory *history.Buffer
	ramHistory *history.Buffer

	totalUploadMB   float64
	totalDownloadMB float64

	startedAt time.Time
	cores     int
	ticks     uint64
}

// New validates the collaborators and returns a Dashboard. Every
// RequiredFields entry and both chart surfaces must exist; otherwise the
// error wraps ErrMissingTarget and names the first missing target.
func New(opts Options) (*Dashboard, error) {
	if opts.Display == nil {
		return nil, fmt.Errorf("%w: display", ErrMissingTarget)
	}
	for _, f := range RequiredFields {
		if !opts.Display.Has(f) {
			return nil, fmt.Errorf("%w: %s", ErrMissingTarget, f)
		}
	}
	for _, ch := range ChartedChannels {
		if opts.Surfaces[ch] == nil {
			return nil, fmt.Errorf("%w: %s-chart", ErrMissingTarget, ch)
		}
	}

	sim := opts.Simulator
	if sim == nil {
		sim = simulator.New(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	started := opts.StartedAt
	if started.IsZero() {
		started = time.Now()
	}

	d := &Dashboard{
		display:    opts.Display,
		surfaces:   opts.Surfaces,
		sim:        sim,
		logger:     logger,
		labels:     opts.Labels,
		cpuHistory: history.New(history.DefaultCapacity),
		ramHistory: history.New(history.DefaultCapacity),
		startedAt:  started,
		cores:      hostinfo.DefaultCores,
	}
	d.UpdateUptime(started)
	return d, nil
}

// ShowEnvironment writes the host identification once at startup.
func (d *Dashboard) ShowEnvironment(info hostinfo.Info) {
	if info.Cores > 0 {
		d.cores = info.Cores
	}
	d.display.SetText(CPUCores, strconv.Itoa(d.cores))
	d.display.SetText(OSName, info.Platform)
	d.display.SetText(ClientName, info.Client)
	d.display.SetText(ScreenRes, info.ScreenSize())
	d.display.SetText(Identity, info.ShortIdentity())
	d.display.SetText(Timezone, info.Timezone)
}

// UpdateMetrics runs one metrics tick: cpu, ram, disk, network, then the
// process list.
func (d *Dashboard) UpdateMetrics(now time.Time) {
	d.ticks++
	d.updateCPU(now)
	d.updateRAM(now)
	d.updateDisk(now)
	d.updateNetwork(now)
	d.display.SetProcesses(d.sim.Processes(simulator.DefaultProcessCount))
	d.logger.Debug("metrics tick", "tick", d.ticks, "samples", d.cpuHistory.Len())
}

// UpdateUptime writes the elapsed time since StartedAt.
func (d *Dashboard) UpdateUptime(now time.Time) {
	d.display.SetText(Uptime, format.Uptime(now.Sub(d.startedAt)))
}

// Register adds the metrics task (run immediately, then every second) and
// the uptime task (every second) to loop.
func (d *Dashboard) Register(loop *scheduler.Loop) error {
	if err := loop.Every(TaskMetrics, TickInterval, d.UpdateMetrics, scheduler.Immediate()); err != nil {
		return err
	}
	return loop.Every(TaskUptime, TickInterval, d.UpdateUptime)
}

// CPUHistory returns the charted CPU samples, oldest first.
func (d *Dashboard) CPUHistory() []float64 { return d.cpuHistory.Values() }

// RAMHistory returns the charted RAM samples, oldest first.
func (d *Dashboard) RAMHistory() []float64 { return d.ramHistory.Values() }

// Totals returns the cumulative upload and download volume in MB.
func (d *Dashboard) Totals() (uploadMB, downloadMB float64) {
	return d.totalUploadMB, d.totalDownloadMB
}

// Ticks returns the number of metrics ticks run so far.
func (d *Dashboard) Ticks() uint64 { return d.ticks }

// StartedAt returns the uptime origin.
func (d *Dashboard) StartedAt() time.Time { return d.startedAt }

func (d *Dashboard) updateCPU(now time.Time) {
	v := d.sample(simulator.CPU, now)

	d.display.SetLevel(CPUGauge, v)
	d.display.SetText(CPUValue, format.Percent(v))
	d.display.SetText(CPUCores, strconv.Itoa(d.cores))
	d.display.SetText(CPUTemp, format.Celsius(d.sim.CPUTemperature()))
	d.display.SetText(CPUSpeed, format.GHz(d.sim.CPUClock()))
	d.display.SetText(CPUUpdate, format.Clock(now))

	d.cpuHistory.Append(v)
	d.draw(simulator.CPU, d.cpuHistory, CPUColor)
}

func (d *Dashboard) updateRAM(now time.Time) {
	v := d.sample(simulator.RAM, now)

	used := roundTenth(RAMTotalGB * v / 100)
	d.display.SetLevel(RAMGauge, v)
	d.display.SetText(RAMValue, format.Percent(v))
	d.display.SetText(RAMUsed, format.Gigabytes(used))
	d.display.SetText(RAMTotal, strconv.Itoa(RAMTotalGB)+" GB")
	d.display.SetText(RAMAvailable, format.Gigabytes(RAMTotalGB-used))
	d.display.SetText(RAMUpdate, format.Clock(now))

	d.ramHistory.Append(v)
	d.draw(simulator.RAM, d.ramHistory, RAMColor)
}

func (d *Dashboard) updateDisk(now time.Time) {
	v := d.sample(simulator.Disk, now)

	used := roundTenth(DiskTotalGB * v / 100)
	d.display.SetLevel(DiskBar, v)
	d.display.SetText(DiskPercentage, format.Percent(v)+"%")
	d.display.SetText(DiskUsed, format.Gigabytes(used))
	d.display.SetText(DiskFree, format.Gigabytes(DiskTotalGB-used))
	d.display.SetText(DiskTotal, strconv.Itoa(DiskTotalGB)+" GB")
}

func (d *Dashboard) updateNetwork(now time.Time) {
	up := d.sample(simulator.Upload, now)
	down := d.sample(simulator.Download, now)

	d.display.SetText(UploadSpeed, format.Rate(up))
	d.display.SetText(DownloadSpeed, format.Rate(down))

	d.totalUploadMB += up / 1024
	d.totalDownloadMB += down / 1024
	d.display.SetText(TotalUpload, format.Megabytes(d.totalUploadMB))
	d.display.SetText(TotalDownload, format.Megabytes(d.totalDownloadMB))
}

// sample reads one channel. Every channel used here is registered with the
// simulator, so an error means the simulator was built wrong.
func (d *Dashboard) sample(ch simulator.Channel, now time.Time) float64 {
	v, err := d.sim.NextValue(ch, now)
	if err != nil {
		d.logger.Error("sample failed", "channel", ch, "error", err)
		return 0
	}
	return v
}

func (d *Dashboard) draw(ch simulator.Channel, buf *history.Buffer, col color.NRGBA) {
	surface := d.surfaces[ch]
	values := buf.Values()
	chart.Render(surface, values, col)

	if !d.labels || len(values) < 2 {
		return
	}
	if l, ok := surface.(labeler); ok {
		last, _ := buf.Last()
		l.DrawLabel(string(ch)+" "+format.Percent(last)+"%", col)
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
