package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/sysdash/dashboard"
	"gitlab.com/tinyland/lab/sysdash/scheduler"
)

// metricsTickMsg asks the model to sample every channel.
type metricsTickMsg struct{ at time.Time }

// uptimeTickMsg asks the model to refresh the uptime footer.
type uptimeTickMsg struct{ at time.Time }

// Schedule registers the metrics and uptime tasks on loop. The handlers
// only forward a message through send, so the dashboard is mutated inside
// Update and never from the scheduler goroutine.
func Schedule(loop *scheduler.Loop, send func(tea.Msg)) error {
	if err := loop.Every(dashboard.TaskMetrics, dashboard.TickInterval, func(now time.Time) {
		send(metricsTickMsg{at: now})
	}, scheduler.Immediate()); err != nil {
		return err
	}
	return loop.Every(dashboard.TaskUptime, dashboard.TickInterval, func(now time.Time) {
		send(uptimeTickMsg{at: now})
	})
}
