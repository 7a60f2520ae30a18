package tracking

import (
	"sort"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

// Typed accessors over the generic store. Read records are keyed by the
// document's current path; settings hold user preferences.

// Record returns the read record stored under a document path.
func (s *Store) Record(path string) (domain.ReadRecord, bool) {
	var rec domain.ReadRecord
	ok := s.Get(domain.CategoryReadData, path, &rec)
	return rec, ok
}

// PutRecord stores a read record under its document path.
func (s *Store) PutRecord(path string, rec domain.ReadRecord) error {
	return s.Put(domain.CategoryReadData, path, rec)
}

// DeleteRecord removes the read record stored under a document path.
func (s *Store) DeleteRecord(path string) error {
	return s.Delete(domain.CategoryReadData, path)
}

// RekeyRecord moves a read record to a new path key in one committed step.
func (s *Store) RekeyRecord(oldPath, newPath string, rec domain.ReadRecord) error {
	return s.Rekey(domain.CategoryReadData, oldPath, newPath, rec)
}

// Records returns all decoded read records keyed by path.
func (s *Store) Records() map[string]domain.ReadRecord {
	out := map[string]domain.ReadRecord{}
	for path := range s.Category(domain.CategoryReadData) {
		if rec, ok := s.Record(path); ok {
			out[path] = rec
		}
	}
	return out
}

// RecordPaths returns all record paths in ascending order.
func (s *Store) RecordPaths() []string {
	paths := make([]string, 0, len(s.Category(domain.CategoryReadData)))
	for path := range s.Category(domain.CategoryReadData) {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// PathByID resolves a document id to its current path. The store is keyed
// by path, so this scans; the record count is one per document.
func (s *Store) PathByID(id string) (string, bool) {
	for _, path := range s.RecordPaths() {
		if rec, ok := s.Record(path); ok && rec.ID == id {
			return path, true
		}
	}
	return "", false
}

// StrictMode reports whether accrual pauses when the host window is not
// focused. Defaults to true when unset.
func (s *Store) StrictMode() bool {
	var strict bool
	if !s.Get(domain.CategorySettings, "strictMode", &strict) {
		return true
	}
	return strict
}

// SetStrictMode persists the strict-mode setting.
func (s *Store) SetStrictMode(strict bool) error {
	return s.Put(domain.CategorySettings, "strictMode", strict)
}

// Language returns the persisted display language, empty when unset.
func (s *Store) Language() string {
	var lang string
	s.Get(domain.CategorySettings, "language", &lang)
	return lang
}

// SetLanguage persists the display language.
func (s *Store) SetLanguage(lang string) error {
	return s.Put(domain.CategorySettings, "language", lang)
}
