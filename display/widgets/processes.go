package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/sysdash/simulator"
)

// processColumns is the process list layout: name, CPU share, memory.
var processColumns = []Column{
	{Title: "Process"},
	{Title: "CPU", Width: 6, Align: AlignRight},
	{Title: "Memory", Width: 8, Align: AlignRight},
}

// RenderProcessTable renders process rows in the order given.
func RenderProcessTable(rows []simulator.ProcessRow, maxWidth int, header lipgloss.Style) string {
	cfg := DefaultTableConfig()
	cfg.Columns = processColumns
	cfg.MaxWidth = maxWidth
	cfg.HeaderStyle = header

	cfg.Rows = make([][]string, len(rows))
	for i, r := range rows {
		cfg.Rows[i] = []string{
			r.Name,
			fmt.Sprintf("%.1f%%", r.CPUPercent),
			fmt.Sprintf("%.0f MB", r.MemoryMB),
		}
	}
	return RenderTable(cfg)
}
