package tracking

import (
	"testing"
	"time"
)

func newTestTracker(t *testing.T) (*Tracker, *Store, *DailyStore) {
	t.Helper()
	store, _ := newTestStore()
	daily := NewDailyStore(newMemFiles(), "data", quietLogger())
	now := fixedClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	daily.now = now
	tracker := NewTracker(store, daily)
	tracker.now = now
	return tracker, store, daily
}

func TestTrackerAccruesPerTick(t *testing.T) {
	tracker, store, daily := newTestTracker(t)

	tracker.HandleActiveDocumentChanged("notes/a.md")
	for i := 0; i < 5; i++ {
		tracker.Tick(time.Second)
	}

	rec, ok := store.Record("notes/a.md")
	if !ok {
		t.Fatal("expected record after ticking")
	}
	if rec.Duration != 5000 {
		t.Errorf("duration = %d, want 5000", rec.Duration)
	}
	if rec.ID == "" {
		t.Error("record should carry an id")
	}
	if rec.OpenCount != 1 {
		t.Errorf("open count = %d, want 1", rec.OpenCount)
	}
	if rec.FirstStartTime == 0 {
		t.Error("first start time should be set on first accrual")
	}

	day := daily.LoadDay("2026-08-30")
	if day[rec.ID].Duration != 5000 {
		t.Errorf("daily duration = %d, want 5000", day[rec.ID].Duration)
	}
}

func TestTrackerIdleTicksAccrueNothing(t *testing.T) {
	tracker, store, _ := newTestTracker(t)

	tracker.Tick(time.Second)
	if paths := store.RecordPaths(); len(paths) != 0 {
		t.Errorf("idle tick created records: %v", paths)
	}

	tracker.HandleActiveDocumentChanged("notes/a.md")
	tracker.Tick(time.Second)
	tracker.HandleActiveDocumentChanged("")
	tracker.Tick(time.Second)

	rec, _ := store.Record("notes/a.md")
	if rec.Duration != 1000 {
		t.Errorf("duration = %d, want 1000 (no accrual after going idle)", rec.Duration)
	}
}

func TestTrackerStrictModeSuspension(t *testing.T) {
	t.Run("blur suspends, focus resumes", func(t *testing.T) {
		tracker, store, _ := newTestTracker(t)
		tracker.HandleActiveDocumentChanged("notes/a.md")

		tracker.Tick(time.Second)
		tracker.HandleWindowBlurred()
		tracker.Tick(time.Second)
		tracker.Tick(time.Second)
		tracker.HandleWindowFocused()
		tracker.Tick(time.Second)

		rec, _ := store.Record("notes/a.md")
		if rec.Duration != 2000 {
			t.Errorf("duration = %d, want 2000 (blurred ticks dropped)", rec.Duration)
		}
	})

	t.Run("strict mode off keeps accruing while blurred", func(t *testing.T) {
		tracker, store, _ := newTestTracker(t)
		if err := store.SetStrictMode(false); err != nil {
			t.Fatalf("SetStrictMode: %v", err)
		}
		tracker.HandleActiveDocumentChanged("notes/a.md")

		tracker.HandleWindowBlurred()
		tracker.Tick(time.Second)

		rec, _ := store.Record("notes/a.md")
		if rec.Duration != 1000 {
			t.Errorf("duration = %d, want 1000", rec.Duration)
		}
	})
}

func TestTrackerOpenCountOnLeaving(t *testing.T) {
	tracker, store, _ := newTestTracker(t)

	tracker.HandleActiveDocumentChanged("notes/a.md")
	tracker.Tick(time.Second)

	// Leaving a increments its count; the session that just ended is
	// what gets counted.
	tracker.HandleActiveDocumentChanged("notes/b.md")
	recA, _ := store.Record("notes/a.md")
	if recA.OpenCount != 2 {
		t.Errorf("a open count = %d, want 2 (initial + leave)", recA.OpenCount)
	}

	// Re-activating the same path is not a leave.
	tracker.HandleActiveDocumentChanged("notes/b.md")
	if _, ok := store.Record("notes/b.md"); ok {
		t.Error("b should have no record yet: never ticked, never left")
	}

	// Leaving b before any tick still records the visit.
	tracker.HandleActiveDocumentChanged("notes/a.md")
	recB, _ := store.Record("notes/b.md")
	if recB.OpenCount != 1 {
		t.Errorf("b open count = %d, want 1", recB.OpenCount)
	}
	if recB.Duration != 0 {
		t.Errorf("b duration = %d, want 0", recB.Duration)
	}
}

func TestTrackerActiveDocument(t *testing.T) {
	tracker, _, _ := newTestTracker(t)

	if got := tracker.ActiveDocument(); got != "" {
		t.Errorf("fresh tracker active = %q, want empty", got)
	}
	tracker.HandleActiveDocumentChanged("notes/a.md")
	if got := tracker.ActiveDocument(); got != "notes/a.md" {
		t.Errorf("active = %q, want notes/a.md", got)
	}
}

func TestTrackerHandleDocumentMoved(t *testing.T) {
	t.Run("active document follows the rename", func(t *testing.T) {
		tracker, store, _ := newTestTracker(t)

		tracker.HandleActiveDocumentChanged("notes/a.md")
		tracker.HandleDocumentMoved("notes/b.md", "notes/a.md")

		if got := tracker.ActiveDocument(); got != "notes/b.md" {
			t.Errorf("active = %q, want notes/b.md", got)
		}
		// Moving is not leaving: no open count side effect.
		if _, ok := store.Record("notes/a.md"); ok {
			t.Error("move should not have created a record for the old path")
		}
	})

	t.Run("other document renamed leaves pointer alone", func(t *testing.T) {
		tracker, _, _ := newTestTracker(t)

		tracker.HandleActiveDocumentChanged("notes/a.md")
		tracker.HandleDocumentMoved("notes/d.md", "notes/c.md")

		if got := tracker.ActiveDocument(); got != "notes/a.md" {
			t.Errorf("active = %q, want notes/a.md", got)
		}
	})

	t.Run("idle tracker stays idle", func(t *testing.T) {
		tracker, _, _ := newTestTracker(t)

		tracker.HandleDocumentMoved("notes/b.md", "notes/a.md")
		if got := tracker.ActiveDocument(); got != "" {
			t.Errorf("active = %q, want empty", got)
		}
	})
}

func TestTrackerHandleFolderMoved(t *testing.T) {
	tests := []struct {
		name       string
		active     string
		oldPath    string
		newPath    string
		wantActive string
	}{
		{
			name:       "nested document follows",
			active:     "old/deep/a.md",
			oldPath:    "old",
			newPath:    "new",
			wantActive: "new/deep/a.md",
		},
		{
			name:       "trailing slashes tolerated",
			active:     "old/a.md",
			oldPath:    "old/",
			newPath:    "new/",
			wantActive: "new/a.md",
		},
		{
			name:       "sibling prefix not confused",
			active:     "older/a.md",
			oldPath:    "old",
			newPath:    "new",
			wantActive: "older/a.md",
		},
		{
			name:       "unrelated folder ignored",
			active:     "notes/a.md",
			oldPath:    "archive",
			newPath:    "attic",
			wantActive: "notes/a.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, _, _ := newTestTracker(t)
			tracker.HandleActiveDocumentChanged(tt.active)
			tracker.HandleFolderMoved(tt.newPath, tt.oldPath)
			if got := tracker.ActiveDocument(); got != tt.wantActive {
				t.Errorf("active = %q, want %q", got, tt.wantActive)
			}
		})
	}
}
