package tracking

import (
	"strings"
	"time"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

// Tracker owns the "currently active document" pointer and accrues reading
// time on every tick. It has two states: idle (no active document) and
// tracking. All methods are driven from a single event loop and never run
// concurrently.
type Tracker struct {
	store         *Store
	daily         *DailyStore
	currentPath   string
	windowFocused bool
	now           func() time.Time
}

// NewTracker creates a tracker in the idle state with window focus assumed.
func NewTracker(store *Store, daily *DailyStore) *Tracker {
	return &Tracker{
		store:         store,
		daily:         daily,
		windowFocused: true,
		now:           time.Now,
	}
}

// HandleActiveDocumentChanged switches tracking to the given document path.
// An empty path means no document is active. Leaving a document counts as
// the end of a viewing session, so the left document's open count is
// incremented here rather than on entry.
func (t *Tracker) HandleActiveDocumentChanged(path string) {
	if t.currentPath != "" && t.currentPath != path {
		t.incrementOpenCount(t.currentPath)
	}
	t.currentPath = path
}

// HandleWindowFocused records that the host window regained input focus.
func (t *Tracker) HandleWindowFocused() {
	t.windowFocused = true
}

// HandleWindowBlurred records that the host window lost input focus.
func (t *Tracker) HandleWindowBlurred() {
	t.windowFocused = false
}

// Tick accrues one interval of attention to the active document, updating
// both the cumulative record and today's snapshot. Ticks while idle or
// suspended accrue nothing.
func (t *Tracker) Tick(interval time.Duration) {
	if t.currentPath == "" || t.suspended() {
		return
	}
	t.accrue(t.currentPath, interval.Milliseconds())
}

// HandleDocumentMoved repoints the active-document pointer when the
// document being read is renamed, so subsequent ticks keep accruing to
// the record the reconciler migrated instead of minting a new identity
// under the dead path.
func (t *Tracker) HandleDocumentMoved(newPath, oldPath string) {
	if t.currentPath != "" && t.currentPath == oldPath {
		t.currentPath = newPath
	}
}

// HandleFolderMoved repoints the active-document pointer when a folder
// containing it is renamed.
func (t *Tracker) HandleFolderMoved(newPath, oldPath string) {
	if t.currentPath == "" {
		return
	}
	oldPrefix := strings.TrimSuffix(oldPath, "/")
	newPrefix := strings.TrimSuffix(newPath, "/")
	if migrated, ok := migratedPath(t.currentPath, oldPrefix, newPrefix); ok {
		t.currentPath = migrated
	}
}

// ActiveDocument returns the path being tracked, empty when idle.
func (t *Tracker) ActiveDocument() string {
	return t.currentPath
}

// TotalReadData returns the cumulative record for a document path.
func (t *Tracker) TotalReadData(path string) (domain.ReadRecord, bool) {
	return t.store.Record(path)
}

func (t *Tracker) accrue(path string, deltaMs int64) {
	rec, ok := t.store.Record(path)
	if !ok {
		// First sight: assign the identity that will outlive renames.
		rec = domain.ReadRecord{
			ID:             domain.NewDocumentID(),
			FilePath:       path,
			OpenCount:      1,
			FirstStartTime: t.now().UnixMilli(),
		}
	}
	rec.Duration += deltaMs

	// Failed writes degrade silently: stores log, tracking continues.
	_ = t.daily.Accrue(rec.ID, deltaMs)
	_ = t.store.PutRecord(path, rec)
}

func (t *Tracker) incrementOpenCount(path string) {
	rec, ok := t.store.Record(path)
	if !ok {
		rec = domain.ReadRecord{
			ID:             domain.NewDocumentID(),
			FilePath:       path,
			FirstStartTime: t.now().UnixMilli(),
		}
	}
	rec.OpenCount++
	_ = t.store.PutRecord(path, rec)
}

// suspended reports whether accrual is paused: strict mode is on and the
// host window is not focused.
func (t *Tracker) suspended() bool {
	return t.store.StrictMode() && !t.windowFocused
}
