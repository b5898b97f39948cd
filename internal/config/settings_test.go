package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	defaults := DefaultSettings()
	if settings.MaxConcurrentTagReads != defaults.MaxConcurrentTagReads {
		t.Errorf("MaxConcurrentTagReads = %d, want default %d",
			settings.MaxConcurrentTagReads, defaults.MaxConcurrentTagReads)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.MusicPath = "/music"
	settings.Verbose = true
	settings.SimulateNetwork = true
	settings.SimulateIntervalSeconds = 2.5

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if *loaded != *settings {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, settings)
	}
}
