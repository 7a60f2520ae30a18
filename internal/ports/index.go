package ports

import "github.com/astradev123/obsidian-focus-time/internal/domain"

// HistoryIndex is a derived, fully-rebuildable index over the daily
// snapshot history. It is never the source of truth: a rebuild from the
// snapshot files restores it completely.
type HistoryIndex interface {
	Open(path string) error
	Close() error

	// SyncFull replaces the index contents with the given history.
	SyncFull(days []domain.DayHistory) (*domain.SyncStats, error)

	// DayTotals returns per-day totals for dates in [from, to], ascending.
	// Empty bounds are open-ended.
	DayTotals(from, to string) ([]domain.DayTotal, error)

	// TopDocuments ranks documents by summed duration, filtering entries
	// below minDuration milliseconds. limit <= 0 means unlimited.
	TopDocuments(minDuration int64, limit int) ([]domain.LeaderboardEntry, error)
}
