package simulator

import (
	"math"
	"testing"
)

func TestProcesses_Shape(t *testing.T) {
	sim := NewSeeded(11)

	for round := 0; round < 200; round++ {
		rows := sim.Processes(DefaultProcessCount)
		if len(rows) != DefaultProcessCount {
			t.Fatalf("expected %d rows, got %d", DefaultProcessCount, len(rows))
		}

		for i, r := range rows {
			if r.CPUPercent < 0 || r.CPUPercent > 25 {
				t.Errorf("row %d: cpu %v outside [0,25]", i, r.CPUPercent)
			}
			if r.MemoryMB < 200 || r.MemoryMB > 1000 {
				t.Errorf("row %d: memory %v outside [200,1000]", i, r.MemoryMB)
			}
			if i > 0 && rows[i-1].CPUPercent < r.CPUPercent {
				t.Errorf("rows not sorted descending at %d: %v < %v", i, rows[i-1].CPUPercent, r.CPUPercent)
			}
		}
	}
}

func TestProcesses_Rounding(t *testing.T) {
	sim := NewSeeded(12)
	for _, r := range sim.Processes(50) {
		if got := math.Round(r.CPUPercent*10) / 10; got != r.CPUPercent {
			t.Errorf("cpu %v not rounded to one decimal", r.CPUPercent)
		}
		if r.MemoryMB != math.Trunc(r.MemoryMB) {
			t.Errorf("memory %v not a whole number", r.MemoryMB)
		}
	}
}

func TestProcesses_NamesFromPool(t *testing.T) {
	pool := make(map[string]bool, len(processNames))
	for _, n := range processNames {
		pool[n] = true
	}

	sim := NewSeeded(13)
	for _, r := range sim.Processes(100) {
		if !pool[r.Name] {
			t.Errorf("unexpected process name %q", r.Name)
		}
	}
}

func TestProcesses_NonPositive(t *testing.T) {
	sim := NewSeeded(14)
	if rows := sim.Processes(0); rows != nil {
		t.Errorf("expected nil for n=0, got %v", rows)
	}
}
