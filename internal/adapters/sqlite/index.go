// Package sqlite implements the derived history index. The index mirrors
// the daily snapshot files for fast range and ranking queries; it is
// disposable and fully restored by a rebuild.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/astradev123/obsidian-focus-time/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

// Index implements ports.HistoryIndex using SQLite.
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements HistoryIndex
var _ ports.HistoryIndex = (*Index)(nil)

// NewIndex creates an unopened index.
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index database at the given path.
func (idx *Index) Open(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open index database: %w", err)
	}
	idx.db = db
	idx.dbPath = path

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS days (
			date TEXT PRIMARY KEY,
			duration INTEGER NOT NULL,
			note_count INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS day_notes (
			date TEXT NOT NULL,
			id TEXT NOT NULL,
			file_path TEXT NOT NULL,
			duration INTEGER NOT NULL,
			PRIMARY KEY (date, id)
		);
		CREATE INDEX IF NOT EXISTS idx_day_notes_id ON day_notes(id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup index schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (idx *Index) Close() error {
	if idx.db == nil {
		return nil
	}
	return idx.db.Close()
}

// Path returns the index database path.
func (idx *Index) Path() string {
	return idx.dbPath
}
