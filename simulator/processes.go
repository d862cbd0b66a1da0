package simulator

import (
	"math"
	"sort"
)

// DefaultProcessCount is the number of rows shown in the process list.
const DefaultProcessCount = 5

// processNames is the pool synthetic process names are drawn from.
var processNames = []string{
	"System", "Chrome", "VSCode", "Slack", "Terminal",
	"Spotify", "Docker", "Node", "Python", "Firefox",
}

// ProcessRow is one synthetic entry in the process list. Rows are
// regenerated every tick and never retained.
type ProcessRow struct {
	Name       string
	CPUPercent float64
	MemoryMB   float64
}

// Processes returns n synthetic rows sorted by CPUPercent, highest first.
// Names may repeat within one call. CPU is rounded to one decimal and memory
// to whole megabytes.
func (s *Simulator) Processes(n int) []ProcessRow {
	if n <= 0 {
		return nil
	}

	rows := make([]ProcessRow, n)
	for i := range rows {
		rows[i] = ProcessRow{
			Name:       processNames[s.rng.IntN(len(processNames))],
			CPUPercent: roundTo(uniform(s.rng, 0, 25), 1),
			MemoryMB:   roundTo(uniform(s.rng, 200, 1000), 0),
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CPUPercent > rows[j].CPUPercent
	})
	return rows
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
