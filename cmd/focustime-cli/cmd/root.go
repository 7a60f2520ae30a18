package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astradev123/obsidian-focus-time/internal/adapters/filesystem"
	"github.com/astradev123/obsidian-focus-time/internal/config"
	"github.com/astradev123/obsidian-focus-time/internal/plugin"
)

var (
	workspaceFlag string
	cfg           config.Config
	engine        *plugin.Plugin
)

var rootCmd = &cobra.Command{
	Use:   "focustime-cli",
	Short: "CLI for Obsidian reading-time stats",
	Long: `focustime-cli reads the data recorded by the Focus Time Obsidian
plugin and reports reading-time statistics.

It provides commands to inspect daily, weekly, monthly, yearly and
all-time stats, rank the most-read notes, record reading sessions from
an event stream, and maintain a derived SQLite history index.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if workspaceFlag != "" {
			cfg.SetWorkspace(workspaceFlag)
		}

		blob := filesystem.NewBlobFile(filesystem.ExpandHome(cfg.BlobPath))
		files := filesystem.NewDataDir(filesystem.ExpandHome(cfg.DataDir))
		workspace := filesystem.NewWorkspace(filesystem.ExpandHome(cfg.WorkspacePath))

		engine = plugin.New(blob, files, workspace, plugin.Options{
			SnapshotDir:  cfg.SnapshotDir,
			TickInterval: cfg.TickInterval,
		})
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceFlag, "workspace", "w", "", "path to the document workspace")
}

// GetPlugin returns the initialized tracking engine
func GetPlugin() *plugin.Plugin {
	return engine
}
