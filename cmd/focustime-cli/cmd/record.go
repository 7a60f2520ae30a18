package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/astradev123/obsidian-focus-time/internal/application"
	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

var recordCmd = &cobra.Command{
	Use:   "record <path>",
	Short: "Show the accumulated record for one note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := application.ValidateRequired("path", path); err != nil {
			return err
		}

		rec, ok := GetPlugin().Store.Record(path)
		if !ok {
			return fmt.Errorf("%w for %q", application.ErrNoData, path)
		}

		fmt.Printf("path        %s\n", rec.FilePath)
		fmt.Printf("id          %s\n", rec.ID)
		fmt.Printf("duration    %s\n", domain.FormatReadingTime(rec.Duration))
		fmt.Printf("opens       %d\n", rec.OpenCount)
		if rec.FirstStartTime > 0 {
			first := time.UnixMilli(rec.FirstStartTime)
			fmt.Printf("first read  %s\n", first.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)
}
