package dashboard

import "gitlab.com/tinyland/lab/sysdash/simulator"

// Board is an in-memory Display. The TUI and the snapshot printer read from
// it. It is not safe for concurrent use; the owning loop serializes access.
type Board struct {
	declared  map[Field]bool
	text      map[Field]string
	levels    map[Field]float64
	processes []simulator.ProcessRow
}

// NewBoard returns a Board that provides the given fields, or every
// RequiredFields entry when none are given.
func NewBoard(fields ...Field) *Board {
	if len(fields) == 0 {
		fields = RequiredFields
	}
	b := &Board{
		declared: make(map[Field]bool, len(fields)),
		text:     make(map[Field]string, len(fields)),
		levels:   make(map[Field]float64),
	}
	for _, f := range fields {
		b.declared[f] = true
	}
	return b
}

func (b *Board) Has(f Field) bool { return b.declared[f] }

func (b *Board) SetText(f Field, text string) {
	if b.declared[f] {
		b.text[f] = text
	}
}

func (b *Board) SetLevel(f Field, pct float64) {
	if !b.declared[f] {
		return
	}
	switch {
	case pct < 0:
		pct = 0
	case pct > 100:
		pct = 100
	}
	b.levels[f] = pct
}

func (b *Board) SetProcesses(rows []simulator.ProcessRow) {
	b.processes = append(b.processes[:0], rows...)
}

// Text returns the current text of f, or "" if never set.
func (b *Board) Text(f Field) string { return b.text[f] }

// Level returns the current level of f, or 0 if never set.
func (b *Board) Level(f Field) float64 { return b.levels[f] }

// Processes returns a copy of the current process list.
func (b *Board) Processes() []simulator.ProcessRow {
	out := make([]simulator.ProcessRow, len(b.processes))
	copy(out, b.processes)
	return out
}
