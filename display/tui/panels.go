package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sysdash/dashboard"
	"gitlab.com/tinyland/lab/sysdash/display/widgets"
	"gitlab.com/tinyland/lab/sysdash/simulator"
)

// Panel identifies one dashboard section.
type Panel int

const (
	PanelCPU Panel = iota
	PanelRAM
	PanelDisk
	PanelNetwork
	PanelProcesses
	PanelSystem
	panelCount // sentinel for wrapping
)

var panelNames = map[Panel]string{
	PanelCPU:       "CPU",
	PanelRAM:       "Memory",
	PanelDisk:      "Disk",
	PanelNetwork:   "Network",
	PanelProcesses: "Processes",
	PanelSystem:    "System",
}

// String returns the panel title.
func (p Panel) String() string {
	if n, ok := panelNames[p]; ok {
		return n
	}
	return "unknown"
}

// zoneID is the bubblezone marker for the panel.
func (p Panel) zoneID() string {
	return "panel-" + strings.ToLower(p.String())
}

// labelWidth aligns the label column inside panels.
const labelWidth = 10

// field renders a "label  value" row.
func field(label, value string) string {
	if value == "" {
		value = "--"
	}
	return styleLabel.Width(labelWidth).Render(label) + styleValue.Render(value)
}

// renderPanels returns every panel in display order.
func (m Model) renderPanels(layout LayoutConfig) []string {
	out := make([]string, 0, panelCount)
	for p := Panel(0); p < panelCount; p++ {
		out = append(out, m.renderPanel(p, layout))
	}
	return out
}

// renderPanel draws the border and title around a panel body and marks
// its mouse zone.
func (m Model) renderPanel(p Panel, layout LayoutConfig) string {
	var body []string
	switch p {
	case PanelCPU:
		body = m.cpuBody(layout)
	case PanelRAM:
		body = m.ramBody(layout)
	case PanelDisk:
		body = m.diskBody(layout)
	case PanelNetwork:
		body = m.networkBody()
	case PanelProcesses:
		body = m.processBody(layout)
	case PanelSystem:
		body = m.systemBody()
	}

	style := stylePanel
	if p == m.focus {
		style = stylePanelFocused
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{styleTitle.Render(p.String())}, body...)...)
	rendered := style.Width(layout.PanelWidth - 2).Render(content)

	if m.zones != nil {
		return m.zones.Mark(p.zoneID(), rendered)
	}
	return rendered
}

func (m Model) cpuBody(layout LayoutConfig) []string {
	b := m.board
	return []string{
		styleBigValue.Render(b.Text(dashboard.CPUValue)),
		m.gauge(b.Level(dashboard.CPUGauge), layout, true),
		field("Cores", b.Text(dashboard.CPUCores)),
		field("Temp", b.Text(dashboard.CPUTemp)),
		field("Clock", b.Text(dashboard.CPUSpeed)),
		field("Updated", b.Text(dashboard.CPUUpdate)),
		m.chartText[simulator.CPU],
	}
}

func (m Model) ramBody(layout LayoutConfig) []string {
	b := m.board
	return []string{
		styleBigValue.Render(b.Text(dashboard.RAMValue)),
		m.gauge(b.Level(dashboard.RAMGauge), layout, true),
		field("Used", b.Text(dashboard.RAMUsed)),
		field("Total", b.Text(dashboard.RAMTotal)),
		field("Available", b.Text(dashboard.RAMAvailable)),
		field("Updated", b.Text(dashboard.RAMUpdate)),
		m.chartText[simulator.RAM],
	}
}

func (m Model) diskBody(layout LayoutConfig) []string {
	b := m.board
	return []string{
		styleBigValue.Render(b.Text(dashboard.DiskPercentage)),
		m.gauge(b.Level(dashboard.DiskBar), layout, false),
		field("Used", b.Text(dashboard.DiskUsed)),
		field("Free", b.Text(dashboard.DiskFree)),
		field("Total", b.Text(dashboard.DiskTotal)),
	}
}

func (m Model) networkBody() []string {
	b := m.board
	return []string{
		field("Upload", b.Text(dashboard.UploadSpeed)),
		field("Download", b.Text(dashboard.DownloadSpeed)),
		field("Sent", b.Text(dashboard.TotalUpload)),
		field("Received", b.Text(dashboard.TotalDownload)),
	}
}

func (m Model) processBody(layout LayoutConfig) []string {
	rows := m.board.Processes()
	if len(rows) == 0 {
		return []string{styleMuted.Render("no samples yet")}
	}
	header := styleLabel.Bold(true)
	return []string{widgets.RenderProcessTable(rows, layout.InnerWidth(), header)}
}

func (m Model) systemBody() []string {
	b := m.board
	return []string{
		field("OS", b.Text(dashboard.OSName)),
		field("Terminal", b.Text(dashboard.ClientName)),
		field("Screen", b.Text(dashboard.ScreenRes)),
		field("Timezone", b.Text(dashboard.Timezone)),
		styleMuted.Render(b.Text(dashboard.Identity)),
	}
}

// gauge renders a bar sized to the layout. Ramped gauges use the theme
// gradient; the rest use threshold colors.
func (m Model) gauge(pct float64, layout LayoutConfig, ramped bool) string {
	cfg := widgets.DefaultGaugeConfig()
	cfg.Width = layout.GaugeWidth
	cfg.Percent = pct
	if ramped && !activeTheme.Plain {
		cfg.Ramp = gaugeRamp
	}
	return widgets.RenderGauge(cfg)
}
