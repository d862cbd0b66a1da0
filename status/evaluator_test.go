package status

import (
	"strings"
	"testing"
	"time"
)

func newTestEvaluator() *Evaluator {
	e := NewEvaluator(DefaultEvaluatorConfig())
	e.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return e
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelHealthy, "healthy"},
		{LevelWarning, "warning"},
		{LevelCritical, "critical"},
		{LevelUnknown, "unknown"},
		{Level(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestWorstLevel(t *testing.T) {
	tests := []struct {
		a, b, want Level
	}{
		{LevelHealthy, LevelWarning, LevelWarning},
		{LevelCritical, LevelWarning, LevelCritical},
		{LevelUnknown, LevelHealthy, LevelUnknown},
		{LevelUnknown, LevelWarning, LevelWarning},
	}
	for _, tt := range tests {
		if got := worstLevel(tt.a, tt.b); got != tt.want {
			t.Errorf("worstLevel(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEvaluate_NotSampled(t *testing.T) {
	s := newTestEvaluator().Evaluate(Reading{})
	if s.Overall != LevelUnknown {
		t.Errorf("Overall = %v, want unknown", s.Overall)
	}
	if s.Reason() != "no data" {
		t.Errorf("Reason() = %q, want no data", s.Reason())
	}
}

func TestEvaluate_Levels(t *testing.T) {
	tests := []struct {
		name      string
		reading   Reading
		want      Level
		component string
	}{
		{"all normal", Reading{CPU: 35, RAM: 50, Disk: 65, Sampled: true}, LevelHealthy, "cpu"},
		{"cpu warning", Reading{CPU: 75, RAM: 50, Disk: 65, Sampled: true}, LevelWarning, "cpu"},
		{"ram critical", Reading{CPU: 75, RAM: 96, Disk: 65, Sampled: true}, LevelCritical, "ram"},
		{"disk warning", Reading{CPU: 10, RAM: 10, Disk: 90, Sampled: true}, LevelWarning, "disk"},
		{"threshold is exclusive", Reading{CPU: 70, RAM: 80, Disk: 85, Sampled: true}, LevelHealthy, "cpu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestEvaluator().Evaluate(tt.reading)
			if s.Overall != tt.want {
				t.Errorf("Overall = %v, want %v", s.Overall, tt.want)
			}
			if !strings.HasPrefix(s.Reason(), tt.component) {
				t.Errorf("Reason() = %q, want it to name %s", s.Reason(), tt.component)
			}
			if len(s.Components) != 3 {
				t.Errorf("got %d components, want 3", len(s.Components))
			}
		})
	}
}

func TestEvaluate_Timestamp(t *testing.T) {
	s := newTestEvaluator().Evaluate(Reading{Sampled: true})
	if !s.EvaluatedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("EvaluatedAt = %v", s.EvaluatedAt)
	}
}
