package widgets

import "github.com/charmbracelet/lipgloss"

// FeedState describes whether the dashboard is receiving ticks.
type FeedState int

const (
	// FeedWaiting means no metrics tick has arrived yet.
	FeedWaiting FeedState = iota
	// FeedLive means ticks are being applied.
	FeedLive
	// FeedPaused means ticks arrive but metrics updates are held.
	FeedPaused
)

var feedIcons = map[FeedState]string{
	FeedWaiting: "○",
	FeedLive:    "●",
	FeedPaused:  "◌",
}

var feedLabels = map[FeedState]string{
	FeedWaiting: "waiting",
	FeedLive:    "live",
	FeedPaused:  "paused",
}

var feedColors = map[FeedState]lipgloss.Color{
	FeedWaiting: lipgloss.Color("#6B7280"),
	FeedLive:    lipgloss.Color("#22C55E"),
	FeedPaused:  lipgloss.Color("#EAB308"),
}

// String returns the feed label.
func (s FeedState) String() string {
	if l, ok := feedLabels[s]; ok {
		return l
	}
	return "unknown"
}

// RenderFeedStatus renders a colored dot followed by the feed label.
func RenderFeedStatus(s FeedState) string {
	icon, ok := feedIcons[s]
	if !ok {
		icon = "?"
	}
	return lipgloss.NewStyle().Foreground(feedColors[s]).Render(icon) + " " + s.String()
}
