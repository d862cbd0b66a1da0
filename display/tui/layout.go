package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LayoutSize represents a responsive breakpoint for terminal width.
type LayoutSize int

const (
	// LayoutCompact is used for terminals narrower than 60 characters.
	LayoutCompact LayoutSize = iota
	// LayoutNormal is used for terminals between 60 and 120 characters wide.
	LayoutNormal
	// LayoutWide is used for terminals wider than 120 characters.
	LayoutWide
)

// panelGap is the number of blank columns between panels in a row.
const panelGap = 1

// panelChrome is the horizontal space a panel's border and padding take.
const panelChrome = 4

// DetectLayout returns the appropriate LayoutSize for the given terminal width.
func DetectLayout(width int) LayoutSize {
	switch {
	case width < 60:
		return LayoutCompact
	case width <= 120:
		return LayoutNormal
	default:
		return LayoutWide
	}
}

// LayoutConfig holds responsive layout values that adapt to terminal width.
type LayoutConfig struct {
	// Columns is the number of panels per row.
	Columns int
	// PanelWidth is the outer width of each panel, border included.
	PanelWidth int
	// GaugeWidth is the character width for gauge bars.
	GaugeWidth int
	// ChartRows is the height of image charts in terminal rows.
	ChartRows int
	// ImageCharts is false where the panel is too narrow for a readable
	// raster chart; sparklines are drawn instead.
	ImageCharts bool
}

// LayoutForSize returns a LayoutConfig appropriate for the given size and width.
func LayoutForSize(size LayoutSize, width int) LayoutConfig {
	var cfg LayoutConfig
	switch size {
	case LayoutCompact:
		cfg = LayoutConfig{Columns: 1, ChartRows: 2, ImageCharts: false}
	case LayoutWide:
		cfg = LayoutConfig{Columns: 3, ChartRows: 5, ImageCharts: true}
	default:
		cfg = LayoutConfig{Columns: 2, ChartRows: 4, ImageCharts: true}
	}

	cfg.PanelWidth = max(panelChrome+1, (width-panelGap*(cfg.Columns-1))/cfg.Columns)
	cfg.GaugeWidth = max(5, min(30, cfg.InnerWidth()-5))
	return cfg
}

// InnerWidth is the content width inside a panel.
func (c LayoutConfig) InnerWidth() int {
	return c.PanelWidth - panelChrome
}

// grid lays panels out left to right, Columns per row.
func grid(panels []string, columns int) string {
	if columns < 1 {
		columns = 1
	}
	gap := strings.Repeat(" ", panelGap)

	var rows []string
	for i := 0; i < len(panels); i += columns {
		end := min(i+columns, len(panels))
		var cells []string
		for j, p := range panels[i:end] {
			if j > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, p)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
