package sqlite

import (
	"fmt"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

// SyncFull performs a complete rebuild of the index from resolved snapshot
// history. Existing contents are discarded first.
func (idx *Index) SyncFull(days []domain.DayHistory) (*domain.SyncStats, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin sync: %w", err)
	}
	defer func() {
		if err != nil {
			// Best-effort rollback.
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM days`); err != nil {
		return nil, err
	}
	if _, err = tx.Exec(`DELETE FROM day_notes`); err != nil {
		return nil, err
	}

	dayStmt, err := tx.Prepare(`INSERT INTO days (date, duration, note_count) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer dayStmt.Close()

	noteStmt, err := tx.Prepare(`INSERT INTO day_notes (date, id, file_path, duration) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer noteStmt.Close()

	stats := &domain.SyncStats{}
	for _, day := range days {
		var total int64
		for _, note := range day.Notes {
			if _, err = noteStmt.Exec(day.Date, note.ID, note.FilePath, note.Duration); err != nil {
				return nil, err
			}
			total += note.Duration
			stats.NotesIndexed++
		}
		if _, err = dayStmt.Exec(day.Date, total, len(day.Notes)); err != nil {
			return nil, err
		}
		stats.DaysIndexed++
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sync: %w", err)
	}
	return stats, nil
}
