package sqlite

import (
	"strings"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

// DayTotals returns per-day totals for dates in [from, to], ascending.
// Empty bounds are open-ended.
func (idx *Index) DayTotals(from, to string) ([]domain.DayTotal, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if from != "" {
		clauses = append(clauses, "date >= ?")
		args = append(args, from)
	}
	if to != "" {
		clauses = append(clauses, "date <= ?")
		args = append(args, to)
	}

	rows, err := idx.db.Query(
		`SELECT date, duration, note_count FROM days WHERE `+strings.Join(clauses, " AND ")+` ORDER BY date ASC`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.DayTotal
	for rows.Next() {
		var t domain.DayTotal
		if err := rows.Scan(&t.Date, &t.Duration, &t.NoteCount); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// TopDocuments ranks documents by summed duration across the indexed
// history, filtering entries at or below minDuration milliseconds.
// limit <= 0 means unlimited.
func (idx *Index) TopDocuments(minDuration int64, limit int) ([]domain.LeaderboardEntry, error) {
	query := `SELECT id, MAX(file_path), SUM(duration) AS total
		FROM day_notes
		GROUP BY id
		HAVING total > ?
		ORDER BY total DESC, id ASC`
	args := []any{minDuration}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := idx.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.ID, &e.FilePath, &e.Duration); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
