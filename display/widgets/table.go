package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Alignment controls text alignment within a table column.
type Alignment int

const (
	// AlignLeft aligns text to the left (default).
	AlignLeft Alignment = iota
	// AlignRight aligns text to the right. Numeric columns use it.
	AlignRight
)

// Column defines a single table column.
type Column struct {
	// Title is the header text.
	Title string
	// Width is the fixed cell width. If 0, it is sized to the content.
	Width int
	// Align controls text alignment within the column.
	Align Alignment
}

// TableConfig holds the configuration for rendering a table.
type TableConfig struct {
	Columns []Column
	// Rows is the table data. Each row is a slice of cell strings.
	Rows [][]string
	// MaxWidth caps the total table width. Columns shrink proportionally.
	MaxWidth int
	// ShowHeader controls whether the header row and rule are displayed.
	ShowHeader  bool
	HeaderStyle lipgloss.Style
	RowStyle    lipgloss.Style
	// Separator sits between columns (default: two spaces).
	Separator string
}

// DefaultTableConfig returns a TableConfig with sensible defaults.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		ShowHeader:  true,
		Separator:   "  ",
		HeaderStyle: lipgloss.NewStyle().Bold(true),
		RowStyle:    lipgloss.NewStyle(),
	}
}

// RenderTable renders a formatted text table from the given configuration.
func RenderTable(cfg TableConfig) string {
	if len(cfg.Columns) == 0 {
		return ""
	}
	if cfg.Separator == "" {
		cfg.Separator = "  "
	}

	widths := calculateColumnWidths(cfg.Columns, cfg.Rows, cfg.MaxWidth, lipgloss.Width(cfg.Separator))

	lines := make([]string, 0, len(cfg.Rows)+2)
	if cfg.ShowHeader {
		cells := make([]string, len(cfg.Columns))
		rules := make([]string, len(cfg.Columns))
		for i, col := range cfg.Columns {
			cells[i] = padOrTruncate(col.Title, widths[i], col.Align)
			rules[i] = strings.Repeat("─", widths[i])
		}
		lines = append(lines,
			cfg.HeaderStyle.Render(strings.Join(cells, cfg.Separator)),
			strings.Join(rules, cfg.Separator))
	}

	for _, row := range cfg.Rows {
		cells := make([]string, len(cfg.Columns))
		for i, col := range cfg.Columns {
			text := ""
			if i < len(row) {
				text = row[i]
			}
			cells[i] = padOrTruncate(text, widths[i], col.Align)
		}
		lines = append(lines, cfg.RowStyle.Render(strings.Join(cells, cfg.Separator)))
	}

	return strings.Join(lines, "\n")
}

// padOrTruncate fits s into width cells, ending truncated text with "…".
func padOrTruncate(s string, width int, align Alignment) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = ansi.Truncate(s, width, "…")
	}

	pad := strings.Repeat(" ", width-lipgloss.Width(s))
	if align == AlignRight {
		return pad + s
	}
	return s + pad
}

// calculateColumnWidths sizes each column. Fixed widths win; other columns
// fit their widest cell or title. When maxWidth is set, all columns shrink
// proportionally to fit, keeping at least one cell each.
func calculateColumnWidths(cols []Column, rows [][]string, maxWidth, sepWidth int) []int {
	widths := make([]int, len(cols))
	total := 0
	for i, col := range cols {
		w := col.Width
		if w <= 0 {
			w = max(1, lipgloss.Width(col.Title))
			for _, row := range rows {
				if i < len(row) {
					w = max(w, lipgloss.Width(row[i]))
				}
			}
		}
		widths[i] = w
		total += w
	}

	if maxWidth <= 0 {
		return widths
	}
	seps := sepWidth * (len(cols) - 1)
	if total+seps <= maxWidth {
		return widths
	}

	available := max(maxWidth-seps, len(cols))
	for i, w := range widths {
		widths[i] = max(1, w*available/total)
	}
	return widths
}
