package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
	"github.com/astradev123/obsidian-focus-time/internal/stats"
)

// RegisterStatsTools adds all read-only reading-stats tools to the MCP server.
func RegisterStatsTools(s *server.MCPServer, agg *stats.Aggregator) {
	s.AddTool(dailyStatsTool(), dailyStatsHandler(agg))
	s.AddTool(weeklyStatsTool(), weeklyStatsHandler(agg))
	s.AddTool(monthlyStatsTool(), monthlyStatsHandler(agg))
	s.AddTool(yearlyStatsTool(), yearlyStatsHandler(agg))
	s.AddTool(totalStatsTool(), totalStatsHandler(agg))
	s.AddTool(leaderboardTool(), leaderboardHandler(agg))
}

// --- daily_stats ---

func dailyStatsTool() mcp.Tool {
	return mcp.NewTool("daily_stats",
		mcp.WithDescription("Reading stats for a single day: total reading time and per-note breakdown."),
		mcp.WithString("date",
			mcp.Description("Day to report, YYYY-MM-DD. Omit for today."),
		),
	)
}

func dailyStatsHandler(agg *stats.Aggregator) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", "")
		if date == "" {
			date = domain.DateKey(time.Now())
		}
		if _, err := domain.ParseDateKey(date); err != nil {
			return toolError(fmt.Errorf("invalid date %q: want YYYY-MM-DD", date))
		}

		day := agg.Daily(date)
		if day == nil {
			return mcp.NewToolResultText(fmt.Sprintf("No reading recorded on %s.", date)), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s: %s across %d note(s)\n", day.Date, domain.FormatReadingTime(day.TotalDuration), day.NoteCount)
		for _, n := range day.Notes {
			fmt.Fprintf(&sb, "  %s  %s\n", domain.FormatReadingTime(n.Duration), n.FilePath)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- weekly_stats ---

func weeklyStatsTool() mcp.Tool {
	return mcp.NewTool("weekly_stats",
		mcp.WithDescription("Reading stats for the week containing a given day (weeks start on Sunday)."),
		mcp.WithString("date",
			mcp.Description("Any day inside the week, YYYY-MM-DD. Omit for the current week."),
		),
	)
}

func weeklyStatsHandler(agg *stats.Aggregator) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", "")
		if date == "" {
			date = domain.DateKey(time.Now())
		}

		week, err := agg.Weekly(date)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Week %s to %s: %s, %d note(s), %d focus day(s)\n",
			week.Start, week.End, domain.FormatReadingTime(week.TotalDuration), week.NoteCount, week.FocusDays)
		for _, d := range week.Days {
			if d.TotalDuration == 0 {
				continue
			}
			fmt.Fprintf(&sb, "  %s  %s\n", d.Date, domain.FormatReadingTime(d.TotalDuration))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- monthly_stats ---

func monthlyStatsTool() mcp.Tool {
	return mcp.NewTool("monthly_stats",
		mcp.WithDescription("Reading stats for a calendar month."),
		mcp.WithNumber("year",
			mcp.Description("Year, e.g. 2025. Omit for the current month."),
		),
		mcp.WithNumber("month",
			mcp.Description("Month number 1-12. Omit for the current month."),
		),
	)
}

func monthlyStatsHandler(agg *stats.Aggregator) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		now := time.Now()
		year := req.GetInt("year", now.Year())
		month := req.GetInt("month", int(now.Month()))
		if month < 1 || month > 12 {
			return toolError(fmt.Errorf("invalid month %d: want 1-12", month))
		}

		m := agg.Monthly(year, month)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%04d-%02d: %s, %d note(s), %d focus day(s)\n",
			m.Year, m.Month, domain.FormatReadingTime(m.TotalDuration), m.NoteCount, m.FocusDays)
		for _, d := range m.Days {
			fmt.Fprintf(&sb, "  %s  %s\n", d.Date, domain.FormatReadingTime(d.TotalDuration))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- yearly_stats ---

func yearlyStatsTool() mcp.Tool {
	return mcp.NewTool("yearly_stats",
		mcp.WithDescription("Reading stats for a calendar year, broken down by month."),
		mcp.WithNumber("year",
			mcp.Description("Year, e.g. 2025. Omit for the current year."),
		),
	)
}

func yearlyStatsHandler(agg *stats.Aggregator) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		year := req.GetInt("year", time.Now().Year())

		y := agg.Yearly(year)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%04d: %s, %d note(s), %d focus day(s)\n",
			y.Year, domain.FormatReadingTime(y.TotalDuration), y.NoteCount, y.FocusDays)
		for _, m := range y.Months {
			fmt.Fprintf(&sb, "  %04d-%02d  %s\n", m.Year, m.Month, domain.FormatReadingTime(m.TotalDuration))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- total_stats ---

func totalStatsTool() mcp.Tool {
	return mcp.NewTool("total_stats",
		mcp.WithDescription("All-time reading stats: total time, note count, and focus days."),
	)
}

func totalStatsHandler(agg *stats.Aggregator) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		total := agg.Total()
		text := fmt.Sprintf("All time: %s across %d note(s), %d focus day(s)",
			domain.FormatReadingTime(total.TotalDuration), total.NoteCount, total.FocusDays)
		return mcp.NewToolResultText(text), nil
	}
}

// --- leaderboard ---

func leaderboardTool() mcp.Tool {
	return mcp.NewTool("leaderboard",
		mcp.WithDescription("Most-read notes ranked by accumulated reading time."),
		mcp.WithNumber("min_minutes",
			mcp.Description("Only include notes read for more than this many minutes. Default 1."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of notes to return. Omit for all."),
		),
	)
}

func leaderboardHandler(agg *stats.Aggregator) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts := stats.LeaderboardOptions{
			Limit: req.GetInt("limit", 0),
		}
		if min := req.GetInt("min_minutes", 0); min > 0 {
			opts.MinDuration = time.Duration(min) * time.Minute
		}

		entries := agg.Leaderboard(opts)
		if len(entries) == 0 {
			return mcp.NewToolResultText("No notes above the reading-time threshold."), nil
		}

		var sb strings.Builder
		for i, e := range entries {
			fmt.Fprintf(&sb, "%d. %s  %s  (%d open(s))\n", i+1, domain.FormatReadingTime(e.Duration), e.FilePath, e.OpenCount)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
