package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

var statusIcon bool

var statusCmd = &cobra.Command{
	Use:   "status [path]",
	Short: "One-line status for a note or for today",
	Long: `Print the status-bar line the plugin shows: the accumulated reading
time of a note, or today's total when no path is given. Meant for shell
prompts and window-manager bars.

Examples:
  focustime-cli status
  focustime-cli status notes/today.md --icon`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style := domain.StatusTextOnly
		if statusIcon {
			style = domain.StatusIconText
		}

		var duration int64
		if len(args) == 1 {
			rec, ok := GetPlugin().Store.Record(args[0])
			if ok {
				duration = rec.Duration
			}
		} else {
			if day := GetPlugin().Stats.Daily(domain.DateKey(time.Now())); day != nil {
				duration = day.TotalDuration
			}
		}

		fmt.Println(domain.StatusLine(style, duration))
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusIcon, "icon", false, "prefix with a timer glyph")
	rootCmd.AddCommand(statusCmd)
}
