package tui

import (
	"strings"
	"testing"
	"time"

	"tunesync/internal/config"
)

func TestNewSession_SampleLibraryWhenNoMusicPath(t *testing.T) {
	m, err := NewSession(config.DefaultSettings())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if len(m.rows) == 0 {
		t.Fatal("expected editable rows over the sample library")
	}
	if m.simulate {
		t.Error("simulated network should be off by default")
	}
}

func TestNewSession_MissingMusicPathFails(t *testing.T) {
	settings := config.DefaultSettings()
	settings.MusicPath = "/does/not/exist"

	if _, err := NewSession(settings); err == nil {
		t.Fatal("expected error for unreadable music path")
	}
}

func TestNewSession_SimulateSettingsHonored(t *testing.T) {
	settings := config.DefaultSettings()
	settings.SimulateNetwork = true
	settings.SimulateIntervalSeconds = 2.5

	m, err := NewSession(settings)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if !m.simulate {
		t.Error("simulate toggle not carried into the model")
	}
	if m.simInterval != 2500*time.Millisecond {
		t.Errorf("simInterval = %v, want 2.5s", m.simInterval)
	}
	if m.Init() == nil {
		t.Error("Init should schedule commands when simulation is on")
	}
}

func TestSimTick_AppliesNetworkUpdateWithoutOutbound(t *testing.T) {
	settings := config.DefaultSettings()
	settings.SimulateNetwork = true

	m, err := NewSession(settings)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	updated, cmd := m.Update(simTickMsg{})
	next := updated.(Model)

	if cmd == nil {
		t.Error("tick should reschedule itself while simulation is on")
	}
	if next.nextSim != 1 {
		t.Errorf("nextSim = %d, want 1 after one tick", next.nextSim)
	}

	// The first canned message sets the artist's founding year.
	artist := next.lib.Artists[0]
	if got := artist.YearFounded.Get(); got != 1990 {
		t.Errorf("yearFounded = %d, want 1990 after simulated update", got)
	}

	// Network-origin updates refresh observers but never hit the
	// outbound channel, so the log pane has no outbound lines.
	for _, line := range next.logs.lines {
		if strings.Contains(line, "outbound") {
			t.Errorf("simulated update produced outbound line %q", line)
		}
	}
}

func TestSimTick_IgnoredWhenSimulationOff(t *testing.T) {
	m, err := NewSession(config.DefaultSettings())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	updated, cmd := m.Update(simTickMsg{})
	next := updated.(Model)

	if cmd != nil {
		t.Error("tick must not reschedule when simulation is off")
	}
	if next.nextSim != 0 {
		t.Errorf("nextSim = %d, want 0", next.nextSim)
	}
}
