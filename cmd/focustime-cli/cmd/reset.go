package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astradev123/obsidian-focus-time/internal/application"
	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

var resetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset [path]",
	Short: "Delete accumulated reading time",
	Long: `Delete the accumulated reading record for one note, or every
record with --all. Daily snapshot files are kept; a deleted note simply
stops appearing in totals and the leaderboard.

Warning: this operation cannot be undone.

Examples:
  focustime-cli reset notes/scratch.md
  focustime-cli reset --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetPlugin().Store

		if resetAll {
			if len(args) != 0 {
				return fmt.Errorf("--all takes no path argument")
			}
			if err := store.DeleteCategory(domain.CategoryReadData); err != nil {
				return err
			}
			fmt.Println("Deleted all reading records.")
			return nil
		}

		if len(args) != 1 {
			return fmt.Errorf("expected a note path or --all")
		}
		path := args[0]
		if err := application.ValidateRequired("path", path); err != nil {
			return err
		}
		if _, ok := store.Record(path); !ok {
			return fmt.Errorf("%w for %q", application.ErrNoData, path)
		}
		if err := store.DeleteRecord(path); err != nil {
			return err
		}
		fmt.Printf("Deleted reading record for %s\n", path)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "delete every reading record")
	rootCmd.AddCommand(resetCmd)
}
