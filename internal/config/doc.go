// Package config provides configuration management for tunesync.
//
// Settings are stored as JSON. Loading a missing file silently falls back
// to DefaultSettings, so first runs need no setup:
//
//	settings, err := config.Load("/path/to/config.json")
//
// Saving creates parent directories as needed:
//
//	settings.MusicPath = "/home/user/Music"
//	err := settings.Save("/path/to/config.json")
package config
