package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Tracking    TrackingConfig    `toml:"tracking"`
	Leaderboard LeaderboardConfig `toml:"leaderboard"`
	IndexPath   *string           `toml:"index-path"`
}

// TrackingConfig maps tracking-related settings.
type TrackingConfig struct {
	Workspace   *string `toml:"workspace"`
	TickSeconds *int    `toml:"tick-seconds"`
}

// LeaderboardConfig maps leaderboard filtering settings.
type LeaderboardConfig struct {
	MinMinutes *int `toml:"min-minutes"`
	Limit      *int `toml:"limit"`
}

// LoadFile reads a TOML config from the given path. A missing file is not
// an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
