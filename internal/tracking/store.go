// Package tracking contains the write side of the focus-time engine: the
// persistent key-value store, the daily snapshot store, the time tracker
// and the rename reconciler.
package tracking

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/astradev123/obsidian-focus-time/internal/ports"
)

// Store is the process-wide category→key→value store backed by a single
// JSON blob. It is loaded once at startup and flushed as a whole after
// every mutation; there are no partial writes and the last writer wins.
type Store struct {
	blob   ports.BlobStore
	data   map[string]map[string]json.RawMessage
	logger *slog.Logger
}

// NewStore creates a store over the given blob. Call Load before use.
func NewStore(blob ports.BlobStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		blob:   blob,
		data:   map[string]map[string]json.RawMessage{},
		logger: logger,
	}
}

// Load reads the blob into memory. A missing or unreadable blob degrades
// to an empty store so tracking is never blocked.
func (s *Store) Load() error {
	raw, err := s.blob.Load()
	if err != nil {
		s.logger.Warn("store blob unreadable, starting empty", "error", err)
		s.data = map[string]map[string]json.RawMessage{}
		return nil
	}
	if len(raw) == 0 {
		s.data = map[string]map[string]json.RawMessage{}
		return nil
	}
	var data map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn("store blob malformed, starting empty", "error", err)
		s.data = map[string]map[string]json.RawMessage{}
		return nil
	}
	if data == nil {
		data = map[string]map[string]json.RawMessage{}
	}
	s.data = data
	return nil
}

// Put stores a value under category/key and flushes.
func (s *Store) Put(category, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", category, key, err)
	}
	if s.data[category] == nil {
		s.data[category] = map[string]json.RawMessage{}
	}
	s.data[category][key] = raw
	return s.flush()
}

// Get decodes the value under category/key into out. It reports whether
// the key was present and decodable.
func (s *Store) Get(category, key string, out any) bool {
	raw, ok := s.data[category][key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn("stored value malformed", "category", category, "key", key, "error", err)
		return false
	}
	return true
}

// Category returns the raw entries of a category, or nil when absent.
func (s *Store) Category(category string) map[string]json.RawMessage {
	return s.data[category]
}

// Delete removes category/key and flushes. Deleting an absent key is a no-op.
func (s *Store) Delete(category, key string) error {
	entries, ok := s.data[category]
	if !ok {
		return nil
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.flush()
}

// DeleteCategory removes an entire category and flushes.
func (s *Store) DeleteCategory(category string) error {
	if _, ok := s.data[category]; !ok {
		return nil
	}
	delete(s.data, category)
	return s.flush()
}

// Rekey moves the entry at category/oldKey to newKey with a replacement
// value, as a single mutation with a single flush. If the flush fails the
// in-memory state is rolled back, so the old key is never lost without the
// new key having been committed.
func (s *Store) Rekey(category, oldKey, newKey string, value any) error {
	entries, ok := s.data[category]
	if !ok {
		return nil
	}
	prev, ok := entries[oldKey]
	if !ok {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", category, newKey, err)
	}
	delete(entries, oldKey)
	entries[newKey] = raw
	if err := s.flush(); err != nil {
		delete(entries, newKey)
		entries[oldKey] = prev
		return err
	}
	return nil
}

func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store blob: %w", err)
	}
	if err := s.blob.Save(raw); err != nil {
		s.logger.Warn("store blob write failed", "error", err)
		return fmt.Errorf("save store blob: %w", err)
	}
	return nil
}
