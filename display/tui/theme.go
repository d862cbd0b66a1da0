package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sysdash/display/widgets"
)

// rampSteps is the resolution of the precomputed gauge gradient.
const rampSteps = 24

// Styles used throughout the TUI. ApplyTheme rebuilds them.
var (
	styleHeader       lipgloss.Style
	styleBrand        lipgloss.Style
	styleFooter       lipgloss.Style
	stylePanel        lipgloss.Style
	stylePanelFocused lipgloss.Style
	styleTitle        lipgloss.Style
	styleLabel        lipgloss.Style
	styleValue        lipgloss.Style
	styleMuted        lipgloss.Style
	styleBigValue     lipgloss.Style

	// gaugeRamp colors the CPU and RAM gauges.
	gaugeRamp widgets.Ramp

	// activeTheme is the preset the styles were last built from.
	activeTheme ThemePreset
)

func init() {
	ApplyTheme(GradientTheme)
}

// ApplyTheme updates the package-level styles and the gauge ramp to use
// the given preset. It allows switching themes without restarting.
func ApplyTheme(preset ThemePreset) {
	activeTheme = preset
	gaugeRamp = widgets.MustRamp(preset.GaugeFrom, preset.GaugeTo, rampSteps)

	styleHeader = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(preset.Muted)

	styleBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(preset.Primary).
		Padding(0, 1)

	styleFooter = lipgloss.NewStyle().
		Foreground(preset.Muted)

	stylePanel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(preset.Muted).
		Padding(0, 1)

	stylePanelFocused = stylePanel.
		BorderForeground(preset.Secondary)

	styleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(preset.Primary)

	styleLabel = lipgloss.NewStyle().
		Foreground(preset.Muted)

	styleValue = lipgloss.NewStyle().
		Foreground(preset.Text)

	styleMuted = lipgloss.NewStyle().
		Foreground(preset.Muted).
		Italic(true)

	styleBigValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(preset.Secondary)
}
