package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sysdash/dashboard"
	"gitlab.com/tinyland/lab/sysdash/display/render"
)

// Snapshot renders the dashboard once at the given width for printing to
// stdout. It omits mouse zones and key help. On kitty and iTerm2 the
// panels carry sparklines and the full-resolution charts follow as inline
// images.
func (m Model) Snapshot(width int) string {
	if width <= 0 {
		width = 80
	}
	m.width = width
	m.zones = nil
	m.feed = m.feedState()
	m.health = m.evaluate()
	if m.protocol.Inline() {
		m.showCharts = false
	}
	m.refreshCharts()

	layout := m.layout()
	parts := []string{
		m.renderHeader(),
		grid(m.renderPanels(layout), layout.Columns),
		styleFooter.Render(field("Uptime", m.board.Text(dashboard.Uptime))),
	}
	if m.protocol.Inline() {
		if images := m.inlineCharts(layout); images != "" {
			parts = append(parts, images)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

// inlineCharts emits each charted canvas with the terminal's image
// protocol. Failures are logged and skipped.
func (m Model) inlineCharts(layout LayoutConfig) string {
	r := render.NewRenderer(m.protocol, themeBackground())
	var sb strings.Builder
	for _, ch := range dashboard.ChartedChannels {
		c := m.charts[ch]
		if c == nil || len(m.history(ch)) < 2 {
			continue
		}
		out, err := r.Render(c.Image(), layout.InnerWidth(), layout.ChartRows*2)
		if err != nil {
			m.logger.Warn("inline chart failed", "channel", ch, "error", err)
			continue
		}
		sb.WriteString(styleTitle.Render(string(ch)))
		sb.WriteString("\n")
		sb.WriteString(out)
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
