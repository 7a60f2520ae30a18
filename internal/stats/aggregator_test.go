package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"testing"
	"time"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
	"github.com/astradev123/obsidian-focus-time/internal/tracking"
)

type memBlob struct {
	data []byte
}

func (m *memBlob) Load() ([]byte, error) { return m.data, nil }

func (m *memBlob) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	return nil
}

type memFiles struct {
	files map[string][]byte
}

func (m *memFiles) Exists(p string) (bool, error) {
	_, ok := m.files[p]
	return ok, nil
}

func (m *memFiles) Read(p string) ([]byte, error) {
	data, ok := m.files[p]
	if !ok {
		return nil, errors.New("no such file")
	}
	return data, nil
}

func (m *memFiles) Write(p string, data []byte) error {
	m.files[p] = append([]byte(nil), data...)
	return nil
}

func (m *memFiles) Mkdir(string) error { return nil }

func (m *memFiles) Remove(p string) error {
	delete(m.files, p)
	return nil
}

func (m *memFiles) List(dir string) ([]string, error) {
	var names []string
	for p := range m.files {
		if path.Dir(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	return names, nil
}

type memWorkspace struct {
	paths map[string]bool
}

func (w *memWorkspace) Exists(p string) bool { return w.paths[p] }

// buildAggregator assembles an aggregator over fixed records, per-date
// snapshot durations by document id, and the set of paths that still exist.
func buildAggregator(t *testing.T, records map[string]domain.ReadRecord, snapshots map[string]map[string]int64, existing []string) *Aggregator {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := tracking.NewStore(&memBlob{}, logger)
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for recPath, rec := range records {
		if err := store.PutRecord(recPath, rec); err != nil {
			t.Fatalf("PutRecord(%s): %v", recPath, err)
		}
	}

	files := &memFiles{files: map[string][]byte{}}
	for date, entries := range snapshots {
		snapshot := domain.DailySnapshot{DailyReadData: map[string]domain.DailyEntry{}}
		for id, duration := range entries {
			snapshot.DailyReadData[id] = domain.DailyEntry{ID: id, Duration: duration}
		}
		raw, err := json.Marshal(snapshot)
		if err != nil {
			t.Fatalf("marshal snapshot: %v", err)
		}
		files.files[fmt.Sprintf("data/%s.json", date)] = raw
	}
	daily := tracking.NewDailyStore(files, "data", logger)

	workspace := &memWorkspace{paths: map[string]bool{}}
	for _, p := range existing {
		workspace.paths[p] = true
	}
	return NewAggregator(store, daily, workspace)
}

func testRecords() map[string]domain.ReadRecord {
	return map[string]domain.ReadRecord{
		"notes/a.md":    {ID: "id-a", FilePath: "notes/a.md", Duration: 120000, OpenCount: 4},
		"notes/b.md":    {ID: "id-b", FilePath: "notes/b.md", Duration: 90000, OpenCount: 2},
		"notes/gone.md": {ID: "id-gone", FilePath: "notes/gone.md", Duration: 300000, OpenCount: 9},
	}
}

func TestAggregatorDaily(t *testing.T) {
	agg := buildAggregator(t, testRecords(), map[string]map[string]int64{
		"2026-08-10": {"id-a": 60000, "id-b": 30000, "id-gone": 45000},
	}, []string{"notes/a.md", "notes/b.md"})

	t.Run("sums surviving notes and excludes deleted documents", func(t *testing.T) {
		day := agg.Daily("2026-08-10")
		if day == nil {
			t.Fatal("expected stats for the day")
		}
		if day.TotalDuration != 90000 {
			t.Errorf("total = %d, want 90000 (deleted doc excluded)", day.TotalDuration)
		}
		if day.NoteCount != 2 {
			t.Errorf("note count = %d, want 2", day.NoteCount)
		}
		for _, note := range day.Notes {
			if note.ID == "id-gone" {
				t.Error("deleted document leaked into daily notes")
			}
		}
	})

	t.Run("day with no data is nil", func(t *testing.T) {
		if day := agg.Daily("2026-08-11"); day != nil {
			t.Errorf("expected nil, got %+v", day)
		}
	})

	t.Run("day where everything was deleted is nil", func(t *testing.T) {
		orphaned := buildAggregator(t, testRecords(), map[string]map[string]int64{
			"2026-08-10": {"id-gone": 45000},
		}, []string{"notes/a.md", "notes/b.md"})
		if day := orphaned.Daily("2026-08-10"); day != nil {
			t.Errorf("expected nil, got %+v", day)
		}
	})
}

func TestAggregatorWeekly(t *testing.T) {
	// 2026-08-10 is a Monday; its week runs 2026-08-09 through 2026-08-15.
	agg := buildAggregator(t, testRecords(), map[string]map[string]int64{
		"2026-08-10": {"id-a": 60000},
		"2026-08-12": {"id-a": 30000, "id-b": 30000},
	}, []string{"notes/a.md", "notes/b.md"})

	week, err := agg.Weekly("2026-08-10")
	if err != nil {
		t.Fatalf("Weekly: %v", err)
	}
	if week.Start != "2026-08-09" || week.End != "2026-08-15" {
		t.Errorf("week bounds = %s..%s, want 2026-08-09..2026-08-15", week.Start, week.End)
	}
	if len(week.Days) != 7 {
		t.Fatalf("days = %d, want 7 entries regardless of activity", len(week.Days))
	}
	if week.TotalDuration != 120000 {
		t.Errorf("total = %d, want 120000", week.TotalDuration)
	}
	if week.FocusDays != 2 {
		t.Errorf("focus days = %d, want 2", week.FocusDays)
	}
	if week.NoteCount != 2 {
		t.Errorf("note count = %d, want 2 distinct notes", week.NoteCount)
	}
	for _, note := range week.Notes {
		if note.ID == "id-a" && note.Duration != 90000 {
			t.Errorf("id-a weekly duration = %d, want 90000", note.Duration)
		}
	}
	if week.Days[0].TotalDuration != 0 {
		t.Errorf("empty Sunday should be zero, got %d", week.Days[0].TotalDuration)
	}

	if _, err := agg.Weekly("not-a-date"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestAggregatorMonthly(t *testing.T) {
	agg := buildAggregator(t, testRecords(), map[string]map[string]int64{
		"2026-08-10": {"id-a": 60000},
		"2026-08-20": {"id-a": 60000, "id-b": 30000},
		"2026-07-01": {"id-a": 10000},
	}, []string{"notes/a.md", "notes/b.md"})

	month := agg.Monthly(2026, 8)
	if month.TotalDuration != 150000 {
		t.Errorf("total = %d, want 150000 (July excluded)", month.TotalDuration)
	}
	if month.FocusDays != 2 {
		t.Errorf("focus days = %d, want 2", month.FocusDays)
	}
	if month.NoteCount != 2 {
		t.Errorf("note count = %d, want 2 distinct", month.NoteCount)
	}
	if len(month.Days) != 2 {
		t.Errorf("days = %d, want only the active days", len(month.Days))
	}
}

func TestAggregatorYearly(t *testing.T) {
	agg := buildAggregator(t, testRecords(), map[string]map[string]int64{
		"2026-03-05": {"id-a": 60000},
		"2026-08-10": {"id-b": 30000},
		"2025-12-31": {"id-a": 99000},
	}, []string{"notes/a.md", "notes/b.md"})

	year := agg.Yearly(2026)
	if year.TotalDuration != 90000 {
		t.Errorf("total = %d, want 90000", year.TotalDuration)
	}
	if year.FocusDays != 2 {
		t.Errorf("focus days = %d, want 2", year.FocusDays)
	}
	if len(year.Months) != 2 {
		t.Errorf("months = %d, want only active months", len(year.Months))
	}
	if year.NoteCount != 2 {
		t.Errorf("note count = %d, want 2", year.NoteCount)
	}
}

func TestAggregatorRecentYears(t *testing.T) {
	agg := buildAggregator(t, testRecords(), map[string]map[string]int64{
		"2026-08-10": {"id-a": 60000},
	}, []string{"notes/a.md"})
	agg.now = func() time.Time { return time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC) }

	years := agg.RecentYears()
	if len(years) != 2 {
		t.Fatalf("years = %d, want 2 (active 2026 + empty current)", len(years))
	}
	if years[0].Year != 2026 || years[0].TotalDuration != 60000 {
		t.Errorf("first = %+v, want 2026 with 60000", years[0])
	}
	if years[1].Year != 2027 || years[1].TotalDuration != 0 {
		t.Errorf("last = %+v, want empty current year 2027", years[1])
	}
}

func TestAggregatorTotal(t *testing.T) {
	agg := buildAggregator(t, testRecords(), map[string]map[string]int64{
		"2025-12-31": {"id-a": 60000},
		"2026-08-10": {"id-a": 60000, "id-b": 30000},
		"2026-08-11": {"id-gone": 45000},
	}, []string{"notes/a.md", "notes/b.md"})

	total := agg.Total()
	if total.TotalDuration != 150000 {
		t.Errorf("total = %d, want 150000 (deleted doc excluded)", total.TotalDuration)
	}
	if total.NoteCount != 2 {
		t.Errorf("note count = %d, want 2", total.NoteCount)
	}
	if total.FocusDays != 2 {
		t.Errorf("focus days = %d, want 2 (deleted-only day does not count)", total.FocusDays)
	}
}

func TestAggregatorHistory(t *testing.T) {
	agg := buildAggregator(t, testRecords(), map[string]map[string]int64{
		"2026-08-10": {"id-a": 60000},
		"2026-08-12": {"id-b": 30000},
	}, []string{"notes/a.md", "notes/b.md"})

	history := agg.History()
	if len(history) != 2 {
		t.Fatalf("history days = %d, want 2", len(history))
	}
	if history[0].Date != "2026-08-10" || history[1].Date != "2026-08-12" {
		t.Errorf("history dates = %s, %s", history[0].Date, history[1].Date)
	}
	if len(history[0].Notes) != 1 || history[0].Notes[0].ID != "id-a" {
		t.Errorf("first day notes = %+v", history[0].Notes)
	}
}
