package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/astradev123/obsidian-focus-time/internal/adapters/filesystem"
	"github.com/astradev123/obsidian-focus-time/internal/adapters/sqlite"
	"github.com/astradev123/obsidian-focus-time/internal/application"
	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

var (
	indexFrom     string
	indexTo       string
	indexTopLimit int
)

var indexCmd = &cobra.Command{
	Use:   "index [sync|totals|top]",
	Short: "Maintain and query the derived SQLite history index",
	Long: `Maintain and query a SQLite index derived from the daily snapshot
files. The index is disposable: sync rebuilds it in full from the
snapshots at any time.

Examples:
  focustime-cli index sync
  focustime-cli index totals --from 2026-08-01 --to 2026-08-31
  focustime-cli index top --limit 10`,
}

func openIndex() (*sqlite.Index, error) {
	idx := sqlite.NewIndex()
	if err := idx.Open(filesystem.ExpandHome(cfg.IndexPath)); err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}
	return idx, nil
}

var indexSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the index from the daily snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		result, err := idx.SyncFull(GetPlugin().Stats.History())
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %d day(s), %d note entr(ies) into %s\n",
			result.DaysIndexed, result.NotesIndexed, idx.Path())
		return nil
	},
}

var indexTotalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Per-day totals from the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		if indexFrom != "" {
			if err := application.ValidateDateKey("from", indexFrom); err != nil {
				return err
			}
		}
		if indexTo != "" {
			if err := application.ValidateDateKey("to", indexTo); err != nil {
				return err
			}
		}

		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		totals, err := idx.DayTotals(indexFrom, indexTo)
		if err != nil {
			return err
		}
		for _, day := range totals {
			fmt.Printf("%s  %-14s %d note(s)\n", day.Date, domain.FormatReadingTime(day.Duration), day.NoteCount)
		}
		return nil
	},
}

var indexTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Most-read notes from the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := openIndex()
		if err != nil {
			return err
		}
		defer idx.Close()

		minDuration := cfg.LeaderboardMinDuration
		if minDuration <= 0 {
			minDuration = time.Minute
		}
		entries, err := idx.TopDocuments(minDuration.Milliseconds(), indexTopLimit)
		if err != nil {
			return err
		}
		for i, entry := range entries {
			fmt.Printf("%2d. %-14s %s\n", i+1, domain.FormatReadingTime(entry.Duration), entry.FilePath)
		}
		return nil
	},
}

func init() {
	indexTotalsCmd.Flags().StringVar(&indexFrom, "from", "", "start date (YYYY-MM-DD, inclusive)")
	indexTotalsCmd.Flags().StringVar(&indexTo, "to", "", "end date (YYYY-MM-DD, inclusive)")
	indexTopCmd.Flags().IntVar(&indexTopLimit, "limit", 0, "maximum entries to show (0 = all)")

	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexSyncCmd)
	indexCmd.AddCommand(indexTotalsCmd)
	indexCmd.AddCommand(indexTopCmd)
}
