package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astradev123/obsidian-focus-time/internal/adapters/filesystem"
	"github.com/astradev123/obsidian-focus-time/internal/adapters/tui"
	"github.com/astradev123/obsidian-focus-time/internal/config"
	"github.com/astradev123/obsidian-focus-time/internal/plugin"
	"github.com/astradev123/obsidian-focus-time/internal/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("focustime: %v", err)
	}

	workspacePath := filesystem.ExpandHome(cfg.WorkspacePath)
	blob := filesystem.NewBlobFile(filesystem.ExpandHome(cfg.BlobPath))
	files := filesystem.NewDataDir(filesystem.ExpandHome(cfg.DataDir))
	workspace := filesystem.NewWorkspace(workspacePath)

	p := plugin.New(blob, files, workspace, plugin.Options{
		SnapshotDir:  cfg.SnapshotDir,
		TickInterval: cfg.TickInterval,
	})

	app := tui.NewApp(p.Stats, stats.LeaderboardOptions{
		MinDuration: cfg.LeaderboardMinDuration,
		Limit:       cfg.LeaderboardLimit,
	})

	prog := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
