// Package format provides shared string, time and unit formatting utilities.
package format

import (
	"fmt"
	"time"
)

// Uptime renders elapsed time as "{h}h {m}m {s}s". Hours are unbounded (no
// day rollover) and no field is zero-padded. Negative durations render as
// zero.
func Uptime(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}

	ms := elapsed.Milliseconds()
	hours := ms / 3_600_000
	minutes := (ms / 60_000) % 60
	seconds := (ms / 1_000) % 60

	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

// Clock renders a wall-clock timestamp the way the panels show their last
// update time.
func Clock(t time.Time) string {
	if t.IsZero() {
		return "--:--:--"
	}
	return t.Format("15:04:05")
}
