// Package stats contains the read side of the focus-time engine: pure
// aggregations over the total store and the daily snapshots.
package stats

import (
	"sort"
	"time"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
	"github.com/astradev123/obsidian-focus-time/internal/ports"
	"github.com/astradev123/obsidian-focus-time/internal/tracking"
)

// recentYearsWindow is the trailing-years span of the recent-years rollup.
const recentYearsWindow = 10

// Aggregator computes day/week/month/year/total rollups. It is read-only
// over both stores. Documents whose path no longer resolves in the host
// workspace are excluded from every result.
type Aggregator struct {
	store     *tracking.Store
	daily     *tracking.DailyStore
	workspace ports.Workspace
	now       func() time.Time
}

// NewAggregator creates an aggregator over the given stores and workspace.
func NewAggregator(store *tracking.Store, daily *tracking.DailyStore, workspace ports.Workspace) *Aggregator {
	return &Aggregator{store: store, daily: daily, workspace: workspace, now: time.Now}
}

// Daily returns the stats for one date, or nil when no data remains after
// filtering deleted documents.
func (a *Aggregator) Daily(date string) *domain.DailyStats {
	entries := a.daily.LoadDay(date)
	if len(entries) == 0 {
		return nil
	}

	pathByID := a.pathsByID()
	stats := domain.DailyStats{Date: date}
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry := entries[id]
		if entry.Duration <= 0 {
			continue
		}
		path, ok := pathByID[id]
		if !ok || !a.workspace.Exists(path) {
			// Deleted documents are excluded entirely, not zeroed.
			continue
		}
		stats.TotalDuration += entry.Duration
		stats.Notes = append(stats.Notes, domain.NoteStat{
			FilePath: path,
			ID:       id,
			Duration: entry.Duration,
		})
	}

	stats.NoteCount = len(stats.Notes)
	if stats.NoteCount == 0 {
		return nil
	}
	return &stats
}

// Weekly returns the stats for the Sunday-start week containing the given
// date. Days always holds seven entries for charting; Notes sums each
// document across the week.
func (a *Aggregator) Weekly(date string) (*domain.WeeklyStats, error) {
	t, err := domain.ParseDateKey(date)
	if err != nil {
		return nil, err
	}
	start := domain.WeekStart(t)

	stats := domain.WeeklyStats{
		Start: domain.DateKey(start),
		End:   domain.DateKey(start.AddDate(0, 0, 6)),
		Days:  make([]domain.DailyStats, 7),
	}
	byID := map[string]*domain.NoteStat{}
	var order []string

	for i := 0; i < 7; i++ {
		key := domain.DateKey(start.AddDate(0, 0, i))
		stats.Days[i] = domain.DailyStats{Date: key}
		day := a.Daily(key)
		if day == nil {
			continue
		}
		stats.Days[i] = *day
		stats.TotalDuration += day.TotalDuration
		stats.FocusDays++
		for _, note := range day.Notes {
			if agg, ok := byID[note.ID]; ok {
				agg.Duration += note.Duration
				agg.FilePath = note.FilePath
			} else {
				copied := note
				byID[note.ID] = &copied
				order = append(order, note.ID)
			}
		}
	}

	for _, id := range order {
		stats.Notes = append(stats.Notes, *byID[id])
	}
	stats.NoteCount = len(stats.Notes)
	return &stats, nil
}

// Monthly returns the stats for a calendar month. Days holds only the
// days with reading activity.
func (a *Aggregator) Monthly(year, month int) *domain.MonthlyStats {
	stats := domain.MonthlyStats{Year: year, Month: month}
	noteSet := map[string]struct{}{}

	for day := 1; day <= domain.DaysInMonth(year, month); day++ {
		key := domain.DateKey(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
		dayStats := a.Daily(key)
		if dayStats == nil || dayStats.TotalDuration <= 0 {
			continue
		}
		stats.Days = append(stats.Days, *dayStats)
		stats.TotalDuration += dayStats.TotalDuration
		stats.FocusDays++
		for _, note := range dayStats.Notes {
			noteSet[note.ID] = struct{}{}
		}
	}

	stats.NoteCount = len(noteSet)
	return &stats
}

// Yearly returns the stats for a calendar year. Months holds only months
// with reading activity.
func (a *Aggregator) Yearly(year int) *domain.YearlyStats {
	stats := domain.YearlyStats{Year: year}
	noteSet := map[string]struct{}{}

	for month := 1; month <= 12; month++ {
		monthStats := a.Monthly(year, month)
		if monthStats.TotalDuration <= 0 {
			continue
		}
		stats.Months = append(stats.Months, *monthStats)
		stats.TotalDuration += monthStats.TotalDuration
		stats.FocusDays += monthStats.FocusDays
		for _, dayStats := range monthStats.Days {
			for _, note := range dayStats.Notes {
				noteSet[note.ID] = struct{}{}
			}
		}
	}

	stats.NoteCount = len(noteSet)
	return &stats
}

// RecentYears returns yearly summaries for the trailing ten years. Years
// without data are omitted except the current year, which is always
// included even when empty.
func (a *Aggregator) RecentYears() []domain.YearSummary {
	currentYear := a.now().Year()
	var out []domain.YearSummary
	for year := currentYear - (recentYearsWindow - 1); year <= currentYear; year++ {
		stats := a.Yearly(year)
		if stats.TotalDuration <= 0 && year != currentYear {
			continue
		}
		out = append(out, domain.YearSummary{
			Year:          year,
			TotalDuration: stats.TotalDuration,
			FocusDays:     stats.FocusDays,
			NoteCount:     stats.NoteCount,
		})
	}
	return out
}

// Total scans every stored snapshot file and sums the whole history. An
// unreadable file list yields an all-zero result rather than an error.
func (a *Aggregator) Total() domain.TotalStats {
	stats := domain.TotalStats{}
	noteSet := map[string]struct{}{}

	for _, date := range a.daily.Dates() {
		dayStats := a.Daily(date)
		if dayStats == nil || dayStats.TotalDuration <= 0 {
			continue
		}
		stats.TotalDuration += dayStats.TotalDuration
		stats.FocusDays++
		for _, note := range dayStats.Notes {
			noteSet[note.ID] = struct{}{}
		}
	}

	stats.NoteCount = len(noteSet)
	return stats
}

// History returns every stored day with its resolved notes, ascending by
// date. Used to feed the derived history index.
func (a *Aggregator) History() []domain.DayHistory {
	var out []domain.DayHistory
	for _, date := range a.daily.Dates() {
		dayStats := a.Daily(date)
		if dayStats == nil {
			continue
		}
		out = append(out, domain.DayHistory{Date: date, Notes: dayStats.Notes})
	}
	return out
}

// pathsByID builds the reverse index from immutable document id to the
// document's current path.
func (a *Aggregator) pathsByID() map[string]string {
	out := map[string]string{}
	for path, rec := range a.store.Records() {
		out[rec.ID] = path
	}
	return out
}
