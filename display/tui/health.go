package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sysdash/dashboard"
	"gitlab.com/tinyland/lab/sysdash/status"
)

var healthColors = map[status.Level]lipgloss.Color{
	status.LevelHealthy:  lipgloss.Color("#22C55E"),
	status.LevelWarning:  lipgloss.Color("#EAB308"),
	status.LevelCritical: lipgloss.Color("#EF4444"),
	status.LevelUnknown:  lipgloss.Color("#6B7280"),
}

// evaluate grades the board's current gauge levels.
func (m Model) evaluate() status.SystemStatus {
	return m.evaluator.Evaluate(status.Reading{
		CPU:     m.board.Level(dashboard.CPUGauge),
		RAM:     m.board.Level(dashboard.RAMGauge),
		Disk:    m.board.Level(dashboard.DiskBar),
		Sampled: m.dash != nil && m.dash.Ticks() > 0,
	})
}

// renderHealth renders the overall level as a colored badge. The worst
// component's reason follows when the level is not healthy.
func renderHealth(s status.SystemStatus) string {
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(healthColors[s.Overall]).
		Render("▲ " + s.Overall.String())
	if s.Overall == status.LevelHealthy || s.Overall == status.LevelUnknown {
		return badge
	}
	return badge + " " + styleLabel.Render(s.Reason())
}
