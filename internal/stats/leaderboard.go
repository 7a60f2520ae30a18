package stats

import (
	"sort"
	"time"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

// DefaultMinDuration is the default leaderboard inclusion threshold.
const DefaultMinDuration = time.Minute

// LeaderboardOptions control filtering of the ranked document list.
type LeaderboardOptions struct {
	// MinDuration excludes documents below this cumulative duration.
	// Zero means the default of one minute.
	MinDuration time.Duration
	// Limit truncates the result to the top N entries. Zero means unlimited.
	Limit int
}

// Leaderboard ranks documents by cumulative duration, descending. Documents
// that no longer exist in the workspace or fall below the threshold are
// discarded. Ties keep path order (stable sort).
func (a *Aggregator) Leaderboard(opts LeaderboardOptions) []domain.LeaderboardEntry {
	minDuration := opts.MinDuration
	if minDuration == 0 {
		minDuration = DefaultMinDuration
	}

	var entries []domain.LeaderboardEntry
	for _, path := range a.store.RecordPaths() {
		rec, ok := a.store.Record(path)
		if !ok {
			continue
		}
		if !a.workspace.Exists(path) {
			continue
		}
		if rec.Duration <= minDuration.Milliseconds() {
			continue
		}
		entries = append(entries, domain.LeaderboardEntry{
			FilePath:  path,
			ID:        rec.ID,
			Duration:  rec.Duration,
			OpenCount: rec.OpenCount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Duration > entries[j].Duration
	})

	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	return entries
}
