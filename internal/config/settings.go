package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// MusicPath is the directory scanned for tagged .mp3 files to seed
	// the library. Empty means use the built-in sample library.
	MusicPath string `json:"music_path"`

	// MaxConcurrentTagReads bounds the tag-reading goroutines while
	// seeding the library.
	MaxConcurrentTagReads int `json:"max_concurrent_tag_reads"`

	// Verbose includes outbound debug lines in CLI output.
	Verbose bool `json:"verbose"`

	// SimulateNetwork enables the TUI's periodic simulated peer updates.
	SimulateNetwork bool `json:"simulate_network"`

	// SimulateIntervalSeconds is the delay between simulated peer updates.
	SimulateIntervalSeconds float64 `json:"simulate_interval_seconds"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		MusicPath:               "",
		MaxConcurrentTagReads:   8,
		Verbose:                 false,
		SimulateNetwork:         false,
		SimulateIntervalSeconds: 5.0,
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
