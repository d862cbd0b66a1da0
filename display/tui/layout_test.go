package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDetectLayout(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutSize
	}{
		{10, LayoutCompact},
		{59, LayoutCompact},
		{60, LayoutNormal},
		{120, LayoutNormal},
		{121, LayoutWide},
		{200, LayoutWide},
	}
	for _, tt := range tests {
		if got := DetectLayout(tt.width); got != tt.want {
			t.Errorf("DetectLayout(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestLayoutForSize(t *testing.T) {
	tests := []struct {
		size    LayoutSize
		width   int
		columns int
		images  bool
	}{
		{LayoutCompact, 50, 1, false},
		{LayoutNormal, 100, 2, true},
		{LayoutWide, 150, 3, true},
	}
	for _, tt := range tests {
		cfg := LayoutForSize(tt.size, tt.width)
		if cfg.Columns != tt.columns {
			t.Errorf("size %d: Columns = %d, want %d", tt.size, cfg.Columns, tt.columns)
		}
		if cfg.ImageCharts != tt.images {
			t.Errorf("size %d: ImageCharts = %v, want %v", tt.size, cfg.ImageCharts, tt.images)
		}
		total := cfg.PanelWidth*cfg.Columns + panelGap*(cfg.Columns-1)
		if total > tt.width {
			t.Errorf("size %d: panels need %d columns, terminal has %d", tt.size, total, tt.width)
		}
		if cfg.GaugeWidth > cfg.InnerWidth() {
			t.Errorf("size %d: gauge %d wider than panel interior %d", tt.size, cfg.GaugeWidth, cfg.InnerWidth())
		}
	}
}

func TestLayoutForSize_TinyTerminal(t *testing.T) {
	cfg := LayoutForSize(LayoutCompact, 3)
	if cfg.InnerWidth() < 1 {
		t.Errorf("InnerWidth() = %d, want at least 1", cfg.InnerWidth())
	}
	if cfg.GaugeWidth < 5 {
		t.Errorf("GaugeWidth = %d, want at least 5", cfg.GaugeWidth)
	}
}

func TestGrid(t *testing.T) {
	panels := []string{"a", "b", "c", "d", "e"}
	out := grid(panels, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("grid rows = %d, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "a") || !strings.Contains(lines[0], "b") {
		t.Errorf("first row = %q", lines[0])
	}
	if w := lipgloss.Width(lines[0]); w != 3 {
		t.Errorf("row width = %d, want 3 (two cells and a gap)", w)
	}
}
