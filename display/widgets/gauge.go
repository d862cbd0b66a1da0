package widgets

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// GaugeConfig controls the appearance of a horizontal bar gauge.
type GaugeConfig struct {
	// Width is the total character width of the gauge bar.
	Width int
	// Percent is the value from 0 to 100.
	Percent float64
	// Label is optional text shown to the left of the bar.
	Label string
	// ShowPercent controls whether "XX%" is shown to the right.
	ShowPercent bool
	// Ramp colors each filled cell by its position along the bar. When
	// empty, the threshold colors apply to the whole fill.
	Ramp Ramp
	// ThresholdWarning is the % at which color changes to yellow (default: 70).
	ThresholdWarning float64
	// ThresholdDanger is the % at which color changes to red (default: 90).
	ThresholdDanger float64
	// FilledChar is the character for filled portion (default: "█").
	FilledChar string
	// EmptyChar is the character for empty portion (default: "░").
	EmptyChar string
}

// DefaultGaugeConfig returns a GaugeConfig with sensible defaults.
func DefaultGaugeConfig() GaugeConfig {
	return GaugeConfig{
		Width:            20,
		ShowPercent:      true,
		ThresholdWarning: 70,
		ThresholdDanger:  90,
		FilledChar:       "█",
		EmptyChar:        "░",
	}
}

// Ramp is a precomputed color gradient sampled by position.
type Ramp []lipgloss.Color

// NewRamp blends from one hex color to another in CIE-L*a*b* space over
// steps samples.
func NewRamp(from, to string, steps int) (Ramp, error) {
	a, err := colorful.Hex(from)
	if err != nil {
		return nil, fmt.Errorf("ramp start %q: %w", from, err)
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return nil, fmt.Errorf("ramp end %q: %w", to, err)
	}
	if steps < 2 {
		steps = 2
	}

	r := make(Ramp, steps)
	for i := range r {
		t := float64(i) / float64(steps-1)
		r[i] = lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
	}
	return r, nil
}

// MustRamp is NewRamp for compile-time constant colors.
func MustRamp(from, to string, steps int) Ramp {
	r, err := NewRamp(from, to, steps)
	if err != nil {
		panic(err)
	}
	return r
}

// At samples the ramp at t in [0,1].
func (r Ramp) At(t float64) lipgloss.Color {
	if len(r) == 0 {
		return ""
	}
	t = math.Max(0, math.Min(1, t))
	return r[int(math.Round(t*float64(len(r)-1)))]
}

// gaugeColor returns the lipgloss color for the given percentage based on thresholds.
func gaugeColor(percent, warning, danger float64) lipgloss.Color {
	switch {
	case percent >= danger:
		return lipgloss.Color("#EF4444")
	case percent >= warning:
		return lipgloss.Color("#EAB308")
	default:
		return lipgloss.Color("#22C55E")
	}
}

// RenderGauge renders a horizontal bar gauge with optional label and percentage.
// Format: [Label] [████████░░░░] [XX%]
func RenderGauge(cfg GaugeConfig) string {
	percent := math.Max(0, math.Min(100, cfg.Percent))

	filledChar := cfg.FilledChar
	if filledChar == "" {
		filledChar = "█"
	}
	emptyChar := cfg.EmptyChar
	if emptyChar == "" {
		emptyChar = "░"
	}
	width := cfg.Width
	if width <= 0 {
		width = 20
	}

	filledCount := int(math.Round(percent / 100.0 * float64(width)))

	var sb strings.Builder
	if cfg.Label != "" {
		sb.WriteString(cfg.Label)
		sb.WriteString(" ")
	}

	if len(cfg.Ramp) > 0 {
		// The ramp spans the whole bar so a half-full gauge ends mid-gradient.
		for i := 0; i < filledCount; i++ {
			pos := 0.0
			if width > 1 {
				pos = float64(i) / float64(width-1)
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(cfg.Ramp.At(pos)).Render(filledChar))
		}
	} else {
		color := gaugeColor(percent, cfg.ThresholdWarning, cfg.ThresholdDanger)
		sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(filledChar, filledCount)))
	}
	sb.WriteString(strings.Repeat(emptyChar, width-filledCount))

	if cfg.ShowPercent {
		fmt.Fprintf(&sb, " %3.0f%%", percent)
	}
	return sb.String()
}
