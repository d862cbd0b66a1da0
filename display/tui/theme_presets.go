package tui

import "github.com/charmbracelet/lipgloss"

// ThemePreset defines a complete color scheme that can be applied at
// runtime to change the TUI appearance.
type ThemePreset struct {
	Name        string
	Description string

	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Text       lipgloss.Color
	Background lipgloss.Color

	// GaugeFrom and GaugeTo are the hex endpoints of the gauge gradient.
	GaugeFrom string
	GaugeTo   string

	// Plain disables series colors and image charts.
	Plain bool
}

// Predefined theme presets.
var (
	// GradientTheme is the default violet gradient.
	GradientTheme = ThemePreset{
		Name:        "gradient",
		Description: "Violet gradient on a dark background",
		Primary:     lipgloss.Color("#667EEA"),
		Secondary:   lipgloss.Color("#764BA2"),
		Muted:       lipgloss.Color("#6B7280"),
		Text:        lipgloss.Color("#E5E7EB"),
		Background:  lipgloss.Color("#1E1B2E"),
		GaugeFrom:   "#667eea",
		GaugeTo:     "#764ba2",
	}

	// OceanTheme trades the violet for cyan and blue.
	OceanTheme = ThemePreset{
		Name:        "ocean",
		Description: "Cyan and blue on slate",
		Primary:     lipgloss.Color("#06B6D4"),
		Secondary:   lipgloss.Color("#3B82F6"),
		Muted:       lipgloss.Color("#94A3B8"),
		Text:        lipgloss.Color("#F1F5F9"),
		Background:  lipgloss.Color("#0F172A"),
		GaugeFrom:   "#22d3ee",
		GaugeTo:     "#2563eb",
	}

	// MonoTheme renders in greys with sparkline charts only.
	MonoTheme = ThemePreset{
		Name:        "mono",
		Description: "Greyscale, no image charts",
		Primary:     lipgloss.Color("#D1D5DB"),
		Secondary:   lipgloss.Color("#F9FAFB"),
		Muted:       lipgloss.Color("#6B7280"),
		Text:        lipgloss.Color("#E5E7EB"),
		Background:  lipgloss.Color("#000000"),
		GaugeFrom:   "#d1d5db",
		GaugeTo:     "#6b7280",
		Plain:       true,
	}
)

// allPresets is the canonical list of available theme presets.
var allPresets = []ThemePreset{GradientTheme, OceanTheme, MonoTheme}

// GetThemePreset returns the theme preset matching the given name.
// Unknown names return GradientTheme.
func GetThemePreset(name string) ThemePreset {
	for _, p := range allPresets {
		if p.Name == name {
			return p
		}
	}
	return GradientTheme
}

// AllThemePresets returns all available theme presets.
func AllThemePresets() []ThemePreset {
	out := make([]ThemePreset, len(allPresets))
	copy(out, allPresets)
	return out
}

// nextPreset returns the preset after name, wrapping around.
func nextPreset(name string) ThemePreset {
	for i, p := range allPresets {
		if p.Name == name {
			return allPresets[(i+1)%len(allPresets)]
		}
	}
	return GradientTheme
}
