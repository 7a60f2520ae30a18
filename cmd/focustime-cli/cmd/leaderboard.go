package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
	"github.com/astradev123/obsidian-focus-time/internal/stats"
)

var (
	leaderboardMinMinutes int
	leaderboardLimit      int
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Rank notes by accumulated reading time",
	Long: `Rank notes by accumulated reading time. Notes at or below the
threshold and notes deleted from the workspace are excluded.

Examples:
  focustime-cli leaderboard
  focustime-cli leaderboard --min-minutes 5 --limit 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := stats.LeaderboardOptions{
			MinDuration: cfg.LeaderboardMinDuration,
			Limit:       cfg.LeaderboardLimit,
		}
		if cmd.Flags().Changed("min-minutes") {
			opts.MinDuration = time.Duration(leaderboardMinMinutes) * time.Minute
		}
		if cmd.Flags().Changed("limit") {
			opts.Limit = leaderboardLimit
		}

		entries := GetPlugin().Stats.Leaderboard(opts)
		if len(entries) == 0 {
			fmt.Println("No notes above the reading-time threshold.")
			return nil
		}

		for i, entry := range entries {
			fmt.Printf("%2d. %-14s %s  (%d open(s))\n",
				i+1, domain.FormatReadingTime(entry.Duration), entry.FilePath, entry.OpenCount)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().IntVar(&leaderboardMinMinutes, "min-minutes", 1, "minimum reading minutes for inclusion")
	leaderboardCmd.Flags().IntVar(&leaderboardLimit, "limit", 0, "maximum entries to show (0 = all)")
	rootCmd.AddCommand(leaderboardCmd)
}
