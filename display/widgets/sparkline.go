package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks contains 8 unicode block characters for sparkline rendering,
// ordered from lowest to highest.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SparklineConfig controls the appearance of a sparkline chart.
type SparklineConfig struct {
	// Data points to render (most recent last).
	Data []float64
	// Width is the number of characters to render. If 0, uses len(Data).
	Width int
	// Min and Max fix the vertical scale. If Min == Max, the data's own
	// range is used.
	Min float64
	Max float64
	// Label is optional text shown before the sparkline.
	Label string
	// Color is the lipgloss color for the sparkline characters.
	Color lipgloss.Color
}

// RenderSparkline renders a unicode sparkline chart from the given configuration.
func RenderSparkline(cfg SparklineConfig) string {
	if len(cfg.Data) == 0 {
		return ""
	}

	width := cfg.Width
	if width <= 0 {
		width = len(cfg.Data)
	}
	data := cfg.Data
	if width < len(data) {
		data = data[len(data)-width:]
	}

	lo, hi := cfg.Min, cfg.Max
	if lo == hi {
		lo, hi = dataRange(data)
	}

	runes := make([]rune, len(data))
	for i, v := range data {
		runes[i] = sparkBlock(v, lo, hi)
	}

	spark := string(runes)
	if width > len(data) {
		// Right-align so the newest sample stays at the same column.
		spark = strings.Repeat(" ", width-len(data)) + spark
	}
	if cfg.Color != "" {
		spark = lipgloss.NewStyle().Foreground(cfg.Color).Render(spark)
	}
	if cfg.Label != "" {
		spark = cfg.Label + " " + spark
	}
	return spark
}

// RenderPercentSparkline renders percentages on a fixed 0-100 scale, so
// flat series at different levels stay distinguishable.
func RenderPercentSparkline(data []float64, width int, color lipgloss.Color) string {
	return RenderSparkline(SparklineConfig{
		Data:  data,
		Width: width,
		Min:   0,
		Max:   100,
		Color: color,
	})
}

// sparkBlock maps v within [lo,hi] onto one of the eight block heights.
// A degenerate range maps to the middle block.
func sparkBlock(v, lo, hi float64) rune {
	if lo == hi {
		return sparkBlocks[len(sparkBlocks)/2]
	}
	n := (v - lo) / (hi - lo)
	n = math.Max(0, math.Min(1, n))
	idx := int(n * float64(len(sparkBlocks)-1))
	return sparkBlocks[min(idx, len(sparkBlocks)-1)]
}

func dataRange(data []float64) (lo, hi float64) {
	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
