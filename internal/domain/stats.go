package domain

// NoteStat is one document's contribution to an aggregation window.
type NoteStat struct {
	FilePath string
	ID       string
	Duration int64
}

// DailyStats summarizes one calendar day.
type DailyStats struct {
	Date          string
	NoteCount     int
	TotalDuration int64
	Notes         []NoteStat
}

// WeeklyStats summarizes a Sunday-start week. Days always holds seven
// entries, including zero days, for charting.
type WeeklyStats struct {
	Start         string
	End           string
	NoteCount     int
	TotalDuration int64
	FocusDays     int
	Days          []DailyStats
	Notes         []NoteStat
}

// MonthlyStats summarizes one calendar month. Days holds only the days
// that saw reading activity.
type MonthlyStats struct {
	Year          int
	Month         int
	NoteCount     int
	TotalDuration int64
	FocusDays     int
	Days          []DailyStats
}

// YearlyStats summarizes one calendar year. Months holds only months with
// reading activity.
type YearlyStats struct {
	Year          int
	NoteCount     int
	TotalDuration int64
	FocusDays     int
	Months        []MonthlyStats
}

// YearSummary is the per-year row of the recent-years rollup.
type YearSummary struct {
	Year          int
	TotalDuration int64
	FocusDays     int
	NoteCount     int
}

// TotalStats summarizes the entire stored history.
type TotalStats struct {
	NoteCount     int
	TotalDuration int64
	FocusDays     int
}

// LeaderboardEntry is one ranked document.
type LeaderboardEntry struct {
	FilePath  string
	ID        string
	Duration  int64
	OpenCount int
}

// DayHistory is one resolved day of snapshot history, used to feed the
// derived history index.
type DayHistory struct {
	Date  string
	Notes []NoteStat
}

// DayTotal is a per-day total returned by history index range queries.
type DayTotal struct {
	Date      string
	Duration  int64
	NoteCount int
}

// SyncStats reports the outcome of a full history index rebuild.
type SyncStats struct {
	DaysIndexed  int
	NotesIndexed int
}
