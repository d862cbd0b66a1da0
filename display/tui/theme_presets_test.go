package tui

import "testing"

func TestGetThemePreset(t *testing.T) {
	for _, name := range []string{"gradient", "ocean", "mono"} {
		if got := GetThemePreset(name).Name; got != name {
			t.Errorf("GetThemePreset(%q).Name = %q", name, got)
		}
	}
}

func TestGetThemePreset_Unknown(t *testing.T) {
	if got := GetThemePreset("nonexistent").Name; got != "gradient" {
		t.Errorf("unknown name should return gradient, got %q", got)
	}
}

func TestAllThemePresets_ReturnsCopy(t *testing.T) {
	presets := AllThemePresets()
	if len(presets) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(presets))
	}
	presets[0].Name = "mutated"
	if AllThemePresets()[0].Name == "mutated" {
		t.Error("AllThemePresets should return a copy")
	}
}

func TestThemePresets_ValidGaugeColors(t *testing.T) {
	for _, p := range AllThemePresets() {
		if p.GaugeFrom == "" || p.GaugeTo == "" {
			t.Errorf("%s: gauge endpoints missing", p.Name)
		}
		if p.Primary == "" || p.Secondary == "" || p.Background == "" {
			t.Errorf("%s: colors missing", p.Name)
		}
	}
}

func TestApplyTheme(t *testing.T) {
	t.Cleanup(func() { ApplyTheme(GradientTheme) })

	ApplyTheme(OceanTheme)
	if activeTheme.Name != "ocean" {
		t.Errorf("activeTheme = %q, want ocean", activeTheme.Name)
	}
	if len(gaugeRamp) != rampSteps {
		t.Errorf("gauge ramp has %d steps, want %d", len(gaugeRamp), rampSteps)
	}
	if got := gaugeRamp.At(0); got != "#22d3ee" {
		t.Errorf("ramp start = %q, want #22d3ee", got)
	}
}

func TestNextPreset(t *testing.T) {
	if got := nextPreset("mono").Name; got != "gradient" {
		t.Errorf("nextPreset(mono) = %q, want gradient", got)
	}
	if got := nextPreset("unknown").Name; got != "gradient" {
		t.Errorf("nextPreset(unknown) = %q, want gradient", got)
	}
}

func TestKeyHelp(t *testing.T) {
	entries := KeyHelp()
	if len(entries) != 7 {
		t.Fatalf("KeyHelp() returned %d entries, want 7", len(entries))
	}
	for _, e := range entries {
		if len(e.Keys) == 0 || e.Description == "" {
			t.Errorf("incomplete entry %+v", e)
		}
	}
}
