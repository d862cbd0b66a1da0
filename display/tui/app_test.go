package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/sysdash/canvas"
	"gitlab.com/tinyland/lab/sysdash/chart"
	"gitlab.com/tinyland/lab/sysdash/dashboard"
	"gitlab.com/tinyland/lab/sysdash/display/render"
	"gitlab.com/tinyland/lab/sysdash/simulator"
	"gitlab.com/tinyland/lab/sysdash/status"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, p render.Protocol) Model {
	t.Helper()
	t.Cleanup(func() { ApplyTheme(GradientTheme) })

	charts := make(map[simulator.Channel]*canvas.Canvas)
	surfaces := make(map[simulator.Channel]chart.Surface)
	for _, ch := range dashboard.ChartedChannels {
		c, err := canvas.New(120, 60)
		if err != nil {
			t.Fatalf("canvas.New: %v", err)
		}
		charts[ch] = c
		surfaces[ch] = c
	}
	board := dashboard.NewBoard()
	dash, err := dashboard.New(dashboard.Options{
		Display:   board,
		Surfaces:  surfaces,
		Simulator: simulator.NewSeeded(7),
		StartedAt: epoch,
	})
	if err != nil {
		t.Fatalf("dashboard.New: %v", err)
	}
	return NewModel(Options{
		Dashboard: dash,
		Board:     board,
		Charts:    charts,
		Protocol:  p,
		Theme:     "gradient",
	})
}

// isQuitCmd executes a tea.Cmd and returns true if it produces a tea.QuitMsg.
func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		m = update(t, m, metricsTickMsg{at: epoch.Add(time.Duration(i+1) * time.Second)})
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)

	if m.Focus() != PanelCPU {
		t.Errorf("focus = %v, want CPU", m.Focus())
	}
	if m.ready {
		t.Error("expected ready to be false")
	}
	if m.Paused() {
		t.Error("expected feed not paused")
	}
	if m.zones != nil {
		t.Error("zones should be nil when mouse is off")
	}
	if m.Init() != nil {
		t.Error("expected Init() to return nil Cmd")
	}
}

func TestModel_ViewBeforeReady(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q, want Initializing...", got)
	}
}

func TestModel_Update_Quit(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		if !isQuitCmd(cmd) {
			t.Errorf("%q should quit", msg.String())
		}
	}
}

func TestModel_Update_MetricsTick(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	m = tick(t, m, 3)

	if got := m.dash.Ticks(); got != 3 {
		t.Errorf("Ticks() = %d, want 3", got)
	}
	if m.board.Text(dashboard.CPUValue) == "" {
		t.Error("CPU value not populated")
	}
	if m.feed.String() != "live" {
		t.Errorf("feed = %v, want live", m.feed)
	}
}

func TestModel_Update_UptimeTick(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	m = update(t, m, uptimeTickMsg{at: epoch.Add(3661 * time.Second)})

	if got := m.board.Text(dashboard.Uptime); got != "1h 1m 1s" {
		t.Errorf("uptime = %q, want %q", got, "1h 1m 1s")
	}
	if m.dash.Ticks() != 0 {
		t.Error("uptime tick should not sample metrics")
	}
}

func TestModel_Update_Pause(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	m = tick(t, m, 1)

	m = update(t, m, runes("p"))
	if !m.Paused() {
		t.Fatal("expected paused after p")
	}
	m = tick(t, m, 2)
	if got := m.dash.Ticks(); got != 1 {
		t.Errorf("Ticks() while paused = %d, want 1", got)
	}
	if m.feed.String() != "paused" {
		t.Errorf("feed = %v, want paused", m.feed)
	}

	// Uptime keeps running while paused.
	m = update(t, m, uptimeTickMsg{at: epoch.Add(5 * time.Second)})
	if got := m.board.Text(dashboard.Uptime); got != "0h 0m 5s" {
		t.Errorf("uptime = %q, want 0h 0m 5s", got)
	}

	m = update(t, m, runes("p"))
	m = tick(t, m, 1)
	if got := m.dash.Ticks(); got != 2 {
		t.Errorf("Ticks() after resume = %d, want 2", got)
	}
}

func TestModel_Update_PanelFocus(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focus() != PanelRAM {
		t.Errorf("after tab focus = %v, want Memory", m.Focus())
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focus() != PanelSystem {
		t.Errorf("shift+tab should wrap to System, got %v", m.Focus())
	}
	m = update(t, m, runes("l"))
	if m.Focus() != PanelCPU {
		t.Errorf("l should wrap to CPU, got %v", m.Focus())
	}
}

func TestModel_Update_ThemeCycle(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)

	want := []string{"ocean", "mono", "gradient"}
	for _, name := range want {
		m = update(t, m, runes("t"))
		if activeTheme.Name != name {
			t.Errorf("theme = %q, want %q", activeTheme.Name, name)
		}
	}
}

func TestModel_Update_Help(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	m = update(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Error("expected full help after ?")
	}
}

func TestModel_Update_MouseWithoutZones(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	m = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Focus() != PanelCPU {
		t.Errorf("focus changed without zones: %v", m.Focus())
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = tick(t, m, 3)

	view := m.View()
	for _, want := range []string{"sysdash", "CPU", "Memory", "Disk", "Network", "Processes", "System", "Uptime", "live"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_ChartsToggle(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = tick(t, m, 3)

	if !strings.Contains(m.chartText[simulator.CPU], "▀") {
		t.Error("expected half-block chart in normal layout")
	}
	m = update(t, m, runes("c"))
	if strings.Contains(m.chartText[simulator.CPU], "▀") {
		t.Error("expected sparkline after toggling charts off")
	}
}

func TestModel_ChartNeedsTwoSamples(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = tick(t, m, 1)

	if !strings.Contains(m.chartText[simulator.RAM], "collecting") {
		t.Errorf("chart with one sample = %q", m.chartText[simulator.RAM])
	}
}

func TestModel_CompactUsesSparklines(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	m = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 40})
	m = tick(t, m, 3)

	if strings.Contains(m.chartText[simulator.CPU], "▀") {
		t.Error("compact layout should not draw half-block charts")
	}
}

func TestModel_WithMouseZones(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	m = NewModel(Options{Dashboard: m.dash, Board: m.board, Charts: m.charts, Mouse: true})
	if m.zones == nil {
		t.Fatal("expected zone manager when mouse is on")
	}
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if !strings.Contains(m.View(), "Processes") {
		t.Error("View() with zones missing panels")
	}
}

func TestModel_HealthAfterTick(t *testing.T) {
	m := newTestModel(t, render.ProtocolUnicode)
	if m.Health().Overall != status.LevelUnknown {
		t.Errorf("health before first tick = %v, want unknown", m.Health().Overall)
	}
	m = tick(t, m, 1)
	if m.Health().Overall == status.LevelUnknown {
		t.Error("health still unknown after a metrics tick")
	}
	if len(m.Health().Components) != 3 {
		t.Errorf("components = %d, want 3", len(m.Health().Components))
	}
}

func TestRenderHealth(t *testing.T) {
	warn := status.SystemStatus{
		Overall:    status.LevelWarning,
		Components: []status.ComponentStatus{{Component: "cpu", Level: status.LevelWarning, Reason: "cpu at 75%"}},
	}
	if got := renderHealth(warn); !strings.Contains(got, "warning") || !strings.Contains(got, "cpu at 75%") {
		t.Errorf("renderHealth(warning) = %q", got)
	}
	ok := status.SystemStatus{Overall: status.LevelHealthy}
	if got := renderHealth(ok); !strings.Contains(got, "healthy") {
		t.Errorf("renderHealth(healthy) = %q", got)
	}
}

func TestNewModel_CustomThresholds(t *testing.T) {
	base := newTestModel(t, render.ProtocolUnicode)
	m := NewModel(Options{
		Dashboard: base.dash,
		Board:     base.board,
		Charts:    base.charts,
		Thresholds: status.EvaluatorConfig{
			CPU:  status.Thresholds{Warning: 99, Critical: 100},
			RAM:  status.Thresholds{Warning: 0, Critical: 1},
			Disk: status.Thresholds{Warning: 99, Critical: 100},
		},
	})
	m = tick(t, m, 1)
	if m.Health().Overall != status.LevelCritical {
		t.Errorf("Overall = %v, want critical with a 1%% RAM threshold", m.Health().Overall)
	}
}
