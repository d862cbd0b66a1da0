// Package tui is the interactive Bubble Tea front end for the dashboard.
package tui

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/sysdash/canvas"
	"gitlab.com/tinyland/lab/sysdash/chart"
	"gitlab.com/tinyland/lab/sysdash/dashboard"
	"gitlab.com/tinyland/lab/sysdash/display/render"
	"gitlab.com/tinyland/lab/sysdash/display/widgets"
	"gitlab.com/tinyland/lab/sysdash/simulator"
	"gitlab.com/tinyland/lab/sysdash/status"
)

// Options wires a Model to the dashboard state it presents.
type Options struct {
	Dashboard *dashboard.Dashboard
	Board     *dashboard.Board
	// Charts are the canvases the dashboard draws CPU and RAM history on.
	Charts map[simulator.Channel]*canvas.Canvas
	// Protocol is the terminal's image protocol. Inline protocols are only
	// used by Snapshot; the live view draws charts with half blocks.
	Protocol render.Protocol
	Theme    string
	Mouse    bool
	// Thresholds grade readings for the header badge. The zero value uses
	// status.DefaultEvaluatorConfig.
	Thresholds status.EvaluatorConfig
	Logger     *slog.Logger
}

// Model is the top-level Bubbletea model for the sysdash TUI.
type Model struct {
	dash      *dashboard.Dashboard
	board     *dashboard.Board
	charts    map[simulator.Channel]*canvas.Canvas
	protocol  render.Protocol
	zones     *zone.Manager
	help      help.Model
	evaluator *status.Evaluator
	logger    *slog.Logger

	chartText map[simulator.Channel]string
	health    status.SystemStatus

	focus      Panel
	width      int
	height     int
	ready      bool
	paused     bool
	showCharts bool
	feed       widgets.FeedState
}

// NewModel returns a Model with the CPU panel focused and the requested
// theme applied.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ApplyTheme(GetThemePreset(opts.Theme))
	thresholds := opts.Thresholds
	if thresholds == (status.EvaluatorConfig{}) {
		thresholds = status.DefaultEvaluatorConfig()
	}

	m := Model{
		dash:       opts.Dashboard,
		board:      opts.Board,
		charts:     opts.Charts,
		protocol:   opts.Protocol,
		help:       help.New(),
		evaluator:  status.NewEvaluator(thresholds),
		logger:     logger,
		focus:      PanelCPU,
		showCharts: true,
		feed:       widgets.FeedWaiting,
		width:      80,
		height:     24,
	}
	if opts.Mouse {
		m.zones = zone.New()
	}
	m.health = m.evaluate()
	m.refreshCharts()
	return m
}

// Init implements tea.Model. Ticks arrive from the scheduler via Send.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case metricsTickMsg:
		if m.paused {
			return m, nil
		}
		m.dash.UpdateMetrics(msg.at)
		m.feed = widgets.FeedLive
		prev := m.health.Overall
		m.health = m.evaluate()
		if m.health.Overall != prev {
			m.logger.Info("health changed", "from", prev.String(), "to", m.health.Overall.String(), "reason", m.health.Reason())
		}
		m.refreshCharts()

	case uptimeTickMsg:
		m.dash.UpdateUptime(msg.at)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.NextPanel):
			m.focus = (m.focus + 1) % panelCount
		case key.Matches(msg, keys.PrevPanel):
			m.focus = (m.focus - 1 + panelCount) % panelCount
		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused
			m.feed = m.feedState()
			m.logger.Debug("metrics feed toggled", "paused", m.paused)
		case key.Matches(msg, keys.Charts):
			m.showCharts = !m.showCharts
			m.refreshCharts()
		case key.Matches(msg, keys.Theme):
			ApplyTheme(nextPreset(activeTheme.Name))
			m.refreshCharts()
			m.logger.Debug("theme changed", "theme", activeTheme.Name)
		}

	case tea.MouseMsg:
		if m.zones == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		for p := Panel(0); p < panelCount; p++ {
			if z := m.zones.Get(p.zoneID()); z != nil && z.InBounds(msg) {
				m.focus = p
				break
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.refreshCharts()
	}

	return m, nil
}

// feedState derives the header indicator from the pause flag and whether
// any metrics tick has been applied.
func (m Model) feedState() widgets.FeedState {
	switch {
	case m.paused:
		return widgets.FeedPaused
	case m.dash.Ticks() == 0:
		return widgets.FeedWaiting
	default:
		return widgets.FeedLive
	}
}

// View implements tea.Model. It renders the header, panel grid, and footer.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	layout := m.layout()
	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		grid(m.renderPanels(layout), layout.Columns),
		m.renderFooter(),
	)
	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

// Focus returns the focused panel.
func (m Model) Focus() Panel { return m.focus }

// Paused reports whether metrics ticks are being held.
func (m Model) Paused() bool { return m.paused }

// Health returns the status computed after the last metrics tick.
func (m Model) Health() status.SystemStatus { return m.health }

func (m Model) layout() LayoutConfig {
	return LayoutForSize(DetectLayout(m.width), m.width)
}

// renderHeader renders the brand, feed indicator, health badge, and theme name.
func (m Model) renderHeader() string {
	brand := styleBrand.Render("sysdash")
	feed := widgets.RenderFeedStatus(m.feed)
	theme := styleLabel.Render(fmt.Sprintf("theme: %s", activeTheme.Name))
	bar := lipgloss.JoinHorizontal(lipgloss.Top, brand, "  ", feed, "  ", renderHealth(m.health), "  ", theme)
	return styleHeader.Width(m.width).Render(bar)
}

// renderFooter renders the uptime counter and key help.
func (m Model) renderFooter() string {
	uptime := field("Uptime", m.board.Text(dashboard.Uptime))
	return styleFooter.Width(m.width).Render(
		lipgloss.JoinVertical(lipgloss.Left, uptime, m.help.View(keys)))
}

// refreshCharts re-renders the CPU and RAM chart text. It runs after the
// canvases change, so View stays free of image work.
func (m *Model) refreshCharts() {
	layout := m.layout()
	text := make(map[simulator.Channel]string, len(dashboard.ChartedChannels))
	for _, ch := range dashboard.ChartedChannels {
		text[ch] = m.renderChart(ch, layout)
	}
	m.chartText = text
}

func (m Model) renderChart(ch simulator.Channel, layout LayoutConfig) string {
	values := m.history(ch)
	if len(values) < 2 {
		return styleMuted.Render("collecting samples...")
	}
	width := layout.InnerWidth()

	if m.imageCharts(layout) {
		if c := m.charts[ch]; c != nil {
			r := render.NewRenderer(render.ProtocolUnicode, themeBackground())
			out, err := r.Render(c.Image(), width, layout.ChartRows)
			if err == nil {
				return out
			}
			m.logger.Debug("chart render failed", "channel", ch, "error", err)
		}
	}
	return widgets.RenderPercentSparkline(values, width, seriesColor(ch))
}

// imageCharts reports whether half-block charts fit the current view.
func (m Model) imageCharts(layout LayoutConfig) bool {
	return m.showCharts && layout.ImageCharts && !activeTheme.Plain &&
		m.protocol != render.ProtocolNone
}

func (m Model) history(ch simulator.Channel) []float64 {
	if m.dash == nil {
		return nil
	}
	switch ch {
	case simulator.CPU:
		return m.dash.CPUHistory()
	case simulator.RAM:
		return m.dash.RAMHistory()
	}
	return nil
}

func seriesColor(ch simulator.Channel) lipgloss.Color {
	if ch == simulator.RAM {
		return activeTheme.Secondary
	}
	return activeTheme.Primary
}

// themeBackground converts the theme background for the image renderer.
// An unparsable value yields nil, which the renderer treats as black.
func themeBackground() color.Color {
	c, err := chart.ParseHex(string(activeTheme.Background))
	if err != nil {
		return nil
	}
	return c
}
