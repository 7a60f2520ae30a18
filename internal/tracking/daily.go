package tracking

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
	"github.com/astradev123/obsidian-focus-time/internal/ports"
)

// DailyStore reads and writes the per-date snapshot files, one JSON file
// per calendar day. A day's file is created lazily on first accrual and
// entries only ever grow within the day.
type DailyStore struct {
	files  ports.FileAdapter
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// NewDailyStore creates a snapshot store rooted at dir inside the adapter.
// The directory is created eagerly; failure to create it is logged and the
// first write will retry.
func NewDailyStore(files ports.FileAdapter, dir string, logger *slog.Logger) *DailyStore {
	if logger == nil {
		logger = slog.Default()
	}
	d := &DailyStore{files: files, dir: dir, logger: logger, now: time.Now}
	if err := files.Mkdir(dir); err != nil {
		logger.Warn("snapshot dir create failed", "dir", dir, "error", err)
	}
	return d
}

// Accrue adds delta milliseconds to today's entry for the given document id.
func (d *DailyStore) Accrue(id string, delta int64) error {
	date := domain.DateKey(d.now())
	snapshot := d.loadSnapshot(date)
	entry := snapshot.DailyReadData[id]
	entry.ID = id
	entry.Duration += delta
	snapshot.DailyReadData[id] = entry
	return d.saveSnapshot(date, snapshot)
}

// LoadDay returns the entries stored for a date. A missing or malformed
// file yields an empty map, never an error.
func (d *DailyStore) LoadDay(date string) map[string]domain.DailyEntry {
	return d.loadSnapshot(date).DailyReadData
}

// Dates returns every date with a stored snapshot file, ascending. Legacy
// unpadded file names are normalized to YYYY-MM-DD.
func (d *DailyStore) Dates() []string {
	names, err := d.files.List(d.dir)
	if err != nil {
		d.logger.Warn("snapshot dir unreadable", "dir", d.dir, "error", err)
		return nil
	}
	var dates []string
	seen := map[string]bool{}
	for _, name := range names {
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		t, err := domain.ParseDateKey(strings.TrimSuffix(path.Base(name), ".json"))
		if err != nil {
			continue
		}
		// A legacy unpadded file can coexist with a padded one for the
		// same day; the date must appear once.
		key := domain.DateKey(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		dates = append(dates, key)
	}
	sort.Strings(dates)
	return dates
}

func (d *DailyStore) loadSnapshot(date string) domain.DailySnapshot {
	empty := domain.DailySnapshot{DailyReadData: map[string]domain.DailyEntry{}}
	filePath := d.filePath(date)

	exists, err := d.files.Exists(filePath)
	if err != nil {
		d.logger.Warn("snapshot stat failed", "path", filePath, "error", err)
		return empty
	}
	if !exists {
		// Older plugin versions wrote unpadded date names.
		if legacy, ok := d.legacyPath(date); ok {
			filePath = legacy
		} else {
			return empty
		}
	}

	raw, err := d.files.Read(filePath)
	if err != nil {
		d.logger.Warn("snapshot unreadable", "path", filePath, "error", err)
		return empty
	}
	var snapshot domain.DailySnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		d.logger.Warn("snapshot malformed", "path", filePath, "error", err)
		return empty
	}
	if snapshot.DailyReadData == nil {
		snapshot.DailyReadData = map[string]domain.DailyEntry{}
	}
	return snapshot
}

func (d *DailyStore) saveSnapshot(date string, snapshot domain.DailySnapshot) error {
	if err := d.files.Mkdir(d.dir); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", date, err)
	}
	if err := d.files.Write(d.filePath(date), raw); err != nil {
		d.logger.Warn("snapshot write failed", "date", date, "error", err)
		return fmt.Errorf("write snapshot %s: %w", date, err)
	}
	// The padded file now carries the merged data; an unpadded file left
	// behind would make the date show up twice.
	if legacy, ok := d.legacyPath(date); ok {
		if err := d.files.Remove(legacy); err != nil {
			d.logger.Warn("legacy snapshot remove failed", "path", legacy, "error", err)
		}
	}
	return nil
}

func (d *DailyStore) filePath(date string) string {
	return path.Join(d.dir, date+".json")
}

// legacyPath probes for an unpadded-date file matching the given date.
func (d *DailyStore) legacyPath(date string) (string, bool) {
	t, err := domain.ParseDateKey(date)
	if err != nil {
		return "", false
	}
	name := fmt.Sprintf("%d-%d-%d.json", t.Year(), int(t.Month()), t.Day())
	if name == date+".json" {
		return "", false
	}
	legacy := path.Join(d.dir, name)
	if exists, err := d.files.Exists(legacy); err == nil && exists {
		return legacy, true
	}
	return "", false
}
