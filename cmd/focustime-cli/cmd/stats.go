package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/astradev123/obsidian-focus-time/internal/application"
	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats [day|week|month|year|recent|total]",
	Short: "Show reading-time statistics",
	Long: `Show reading-time statistics for a day, week, month, year, the
recent years, or all time.

Examples:
  focustime-cli stats day
  focustime-cli stats day 2026-08-29
  focustime-cli stats week 2026-08-29
  focustime-cli stats month 2026 8
  focustime-cli stats year 2026
  focustime-cli stats recent
  focustime-cli stats total`,
}

var statsDayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Stats for a single day (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := domain.DateKey(time.Now())
		if len(args) == 1 {
			date = args[0]
		}
		if err := application.ValidateDateKey("date", date); err != nil {
			return err
		}

		day := GetPlugin().Stats.Daily(date)
		if day == nil {
			fmt.Printf("No reading recorded on %s.\n", date)
			return nil
		}

		fmt.Printf("%s: %s across %d note(s)\n", day.Date, domain.FormatReadingTime(day.TotalDuration), day.NoteCount)
		for _, note := range day.Notes {
			fmt.Printf("  %-14s %s\n", domain.FormatReadingTime(note.Duration), note.FilePath)
		}
		return nil
	},
}

var statsWeekCmd = &cobra.Command{
	Use:   "week [date]",
	Short: "Stats for the week containing a day (default this week)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := domain.DateKey(time.Now())
		if len(args) == 1 {
			date = args[0]
		}

		week, err := GetPlugin().Stats.Weekly(date)
		if err != nil {
			return err
		}

		fmt.Printf("Week %s to %s: %s, %d note(s), %d focus day(s)\n",
			week.Start, week.End, domain.FormatReadingTime(week.TotalDuration), week.NoteCount, week.FocusDays)
		for _, day := range week.Days {
			if day.TotalDuration == 0 {
				continue
			}
			fmt.Printf("  %s  %s\n", day.Date, domain.FormatReadingTime(day.TotalDuration))
		}
		return nil
	},
}

var statsMonthCmd = &cobra.Command{
	Use:   "month [year month]",
	Short: "Stats for a calendar month (default this month)",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), int(now.Month())
		if len(args) >= 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			year = parsed
		}
		if len(args) == 2 {
			parsed, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid month %q", args[1])
			}
			month = parsed
		}
		if err := application.ValidateMonth("month", month); err != nil {
			return err
		}

		m := GetPlugin().Stats.Monthly(year, month)
		fmt.Printf("%04d-%02d: %s, %d note(s), %d focus day(s)\n",
			m.Year, m.Month, domain.FormatReadingTime(m.TotalDuration), m.NoteCount, m.FocusDays)
		for _, day := range m.Days {
			fmt.Printf("  %s  %s\n", day.Date, domain.FormatReadingTime(day.TotalDuration))
		}
		return nil
	},
}

var statsYearCmd = &cobra.Command{
	Use:   "year [year]",
	Short: "Stats for a calendar year (default this year)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		year := time.Now().Year()
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			year = parsed
		}

		y := GetPlugin().Stats.Yearly(year)
		fmt.Printf("%04d: %s, %d note(s), %d focus day(s)\n",
			y.Year, domain.FormatReadingTime(y.TotalDuration), y.NoteCount, y.FocusDays)
		for _, month := range y.Months {
			fmt.Printf("  %04d-%02d  %s\n", month.Year, month.Month, domain.FormatReadingTime(month.TotalDuration))
		}
		return nil
	},
}

var statsRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Yearly summaries for the trailing ten years",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, year := range GetPlugin().Stats.RecentYears() {
			fmt.Printf("%04d  %-14s %d note(s), %d focus day(s)\n",
				year.Year, domain.FormatReadingTime(year.TotalDuration), year.NoteCount, year.FocusDays)
		}
		return nil
	},
}

var statsTotalCmd = &cobra.Command{
	Use:   "total",
	Short: "All-time stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		total := GetPlugin().Stats.Total()
		fmt.Printf("All time: %s across %d note(s), %d focus day(s)\n",
			domain.FormatReadingTime(total.TotalDuration), total.NoteCount, total.FocusDays)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsDayCmd)
	statsCmd.AddCommand(statsWeekCmd)
	statsCmd.AddCommand(statsMonthCmd)
	statsCmd.AddCommand(statsYearCmd)
	statsCmd.AddCommand(statsRecentCmd)
	statsCmd.AddCommand(statsTotalCmd)
}
