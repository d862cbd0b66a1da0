// Package status grades the latest readings into an overall health level.
package status

import (
	"fmt"
	"time"
)

// Level represents system health.
type Level int

const (
	LevelHealthy  Level = iota // Everything normal
	LevelWarning               // Something needs attention
	LevelCritical              // Immediate attention needed
	LevelUnknown               // No readings yet
)

// String returns the human-readable name for a Level.
func (l Level) String() string {
	switch l {
	case LevelHealthy:
		return "healthy"
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// levelSeverity returns the sort order for levels. Higher is worse.
// Critical > Warning > Unknown > Healthy.
func levelSeverity(l Level) int {
	switch l {
	case LevelUnknown:
		return 1
	case LevelWarning:
		return 2
	case LevelCritical:
		return 3
	default:
		return 0
	}
}

// worstLevel returns whichever Level is more severe.
func worstLevel(a, b Level) Level {
	if levelSeverity(a) >= levelSeverity(b) {
		return a
	}
	return b
}

// Reading is one tick's utilization percentages.
type Reading struct {
	CPU  float64
	RAM  float64
	Disk float64
	// Sampled is false before the first metrics tick.
	Sampled bool
}

// ComponentStatus holds the evaluation result for a single resource.
type ComponentStatus struct {
	Component string // "cpu", "ram", "disk"
	Level     Level
	Reason    string
}

// SystemStatus is the aggregate evaluation result.
type SystemStatus struct {
	Overall     Level // Worst of all components
	Components  []ComponentStatus
	EvaluatedAt time.Time
}

// Reason returns the reason of the first component at the overall level.
func (s SystemStatus) Reason() string {
	for _, c := range s.Components {
		if c.Level == s.Overall {
			return c.Reason
		}
	}
	return ""
}

// Thresholds are the warning and critical percentages for one resource.
// A reading strictly above a threshold reaches that level.
type Thresholds struct {
	Warning  float64
	Critical float64
}

// EvaluatorConfig holds thresholds for evaluation rules.
type EvaluatorConfig struct {
	CPU  Thresholds // Default: 70 / 90
	RAM  Thresholds // Default: 80 / 95
	Disk Thresholds // Default: 85 / 95
}

// DefaultEvaluatorConfig returns an EvaluatorConfig with sensible defaults.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		CPU:  Thresholds{Warning: 70, Critical: 90},
		RAM:  Thresholds{Warning: 80, Critical: 95},
		Disk: Thresholds{Warning: 85, Critical: 95},
	}
}

// Evaluator grades readings against thresholds.
type Evaluator struct {
	config EvaluatorConfig
	now    func() time.Time
}

// NewEvaluator creates an Evaluator with the given configuration.
func NewEvaluator(cfg EvaluatorConfig) *Evaluator {
	return &Evaluator{config: cfg, now: time.Now}
}

// Evaluate grades every resource and returns the aggregate status.
func (e *Evaluator) Evaluate(r Reading) SystemStatus {
	components := []ComponentStatus{
		evaluate("cpu", r.CPU, r.Sampled, e.config.CPU),
		evaluate("ram", r.RAM, r.Sampled, e.config.RAM),
		evaluate("disk", r.Disk, r.Sampled, e.config.Disk),
	}

	overall := components[0].Level
	for _, c := range components[1:] {
		overall = worstLevel(overall, c.Level)
	}

	return SystemStatus{
		Overall:     overall,
		Components:  components,
		EvaluatedAt: e.now(),
	}
}

func evaluate(component string, pct float64, sampled bool, t Thresholds) ComponentStatus {
	if !sampled {
		return ComponentStatus{Component: component, Level: LevelUnknown, Reason: "no data"}
	}

	switch {
	case pct > t.Critical:
		return ComponentStatus{
			Component: component,
			Level:     LevelCritical,
			Reason:    fmt.Sprintf("%s at %.0f%% (critical above %.0f%%)", component, pct, t.Critical),
		}
	case pct > t.Warning:
		return ComponentStatus{
			Component: component,
			Level:     LevelWarning,
			Reason:    fmt.Sprintf("%s at %.0f%% (warning above %.0f%%)", component, pct, t.Warning),
		}
	default:
		return ComponentStatus{
			Component: component,
			Level:     LevelHealthy,
			Reason:    fmt.Sprintf("%s at %.0f%%", component, pct),
		}
	}
}
