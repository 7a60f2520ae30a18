// Package config provides configuration for the focustime tools: defaults,
// an optional TOML file and environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultWorkspacePath is used when no workspace is configured.
const DefaultWorkspacePath = "~/Documents/notes"

// pluginDataDir is the plugin's data location inside a workspace, shared
// with the Obsidian plugin so both read the same files.
const pluginDataDir = ".obsidian/plugins/focus-time"

// Config holds the effective runtime configuration.
type Config struct {
	// WorkspacePath is the root of the host document workspace.
	WorkspacePath string
	// BlobPath is the plugin data blob (records + settings).
	BlobPath string
	// DataDir is the root handed to the snapshot file adapter.
	DataDir string
	// SnapshotDir is the snapshot directory inside DataDir.
	SnapshotDir string
	// TickInterval is the accrual granularity.
	TickInterval time.Duration
	// LeaderboardMinDuration is the leaderboard inclusion threshold.
	LeaderboardMinDuration time.Duration
	// LeaderboardLimit truncates the leaderboard; 0 means unlimited.
	LeaderboardLimit int
	// IndexPath is the derived history index database.
	IndexPath string
}

// Load builds the configuration: defaults, overlaid by the TOML file at
// DefaultConfigPath, overlaid by FOCUSTIME_* environment variables. A
// missing config file is not an error.
func Load() (Config, error) {
	cfg := Config{
		WorkspacePath:          DefaultWorkspacePath,
		TickInterval:           time.Second,
		LeaderboardMinDuration: time.Minute,
		IndexPath:              DefaultIndexPath(),
	}

	file, err := LoadFile(DefaultConfigPath())
	if err != nil {
		return Config{}, err
	}
	cfg.applyFile(file)
	cfg.applyEnv()

	cfg.SetWorkspace(cfg.WorkspacePath)
	cfg.SnapshotDir = "data"
	return cfg, nil
}

// SetWorkspace points the configuration at a workspace root and recomputes
// the data paths derived from it.
func (c *Config) SetWorkspace(path string) {
	c.WorkspacePath = path
	c.DataDir = filepath.Join(path, pluginDataDir)
	c.BlobPath = filepath.Join(c.DataDir, "data.json")
}

func (c *Config) applyFile(file FileConfig) {
	t := file.Tracking
	if t.Workspace != nil {
		c.WorkspacePath = *t.Workspace
	}
	if t.TickSeconds != nil && *t.TickSeconds > 0 {
		c.TickInterval = time.Duration(*t.TickSeconds) * time.Second
	}
	l := file.Leaderboard
	if l.MinMinutes != nil && *l.MinMinutes >= 0 {
		c.LeaderboardMinDuration = time.Duration(*l.MinMinutes) * time.Minute
	}
	if l.Limit != nil && *l.Limit >= 0 {
		c.LeaderboardLimit = *l.Limit
	}
	if file.IndexPath != nil {
		c.IndexPath = *file.IndexPath
	}
}

func (c *Config) applyEnv() {
	if env := os.Getenv("FOCUSTIME_WORKSPACE"); env != "" {
		c.WorkspacePath = env
	}
	if env := os.Getenv("FOCUSTIME_TICK_SECONDS"); env != "" {
		if secs, err := strconv.Atoi(env); err == nil && secs > 0 {
			c.TickInterval = time.Duration(secs) * time.Second
		}
	}
	if env := os.Getenv("FOCUSTIME_INDEX"); env != "" {
		c.IndexPath = env
	}
}
