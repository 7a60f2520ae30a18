package tracking

import (
	"reflect"
	"testing"
	"time"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

func TestDailyStoreAccrue(t *testing.T) {
	files := newMemFiles()
	daily := NewDailyStore(files, "data", quietLogger())
	daily.now = fixedClock(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	if err := daily.Accrue("id-a", 1000); err != nil {
		t.Fatalf("Accrue: %v", err)
	}
	if err := daily.Accrue("id-a", 2000); err != nil {
		t.Fatalf("Accrue: %v", err)
	}
	if err := daily.Accrue("id-b", 500); err != nil {
		t.Fatalf("Accrue: %v", err)
	}

	got := daily.LoadDay("2026-08-30")
	want := map[string]domain.DailyEntry{
		"id-a": {ID: "id-a", Duration: 3000},
		"id-b": {ID: "id-b", Duration: 500},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadDay = %v, want %v", got, want)
	}

	if _, ok := files.files["data/2026-08-30.json"]; !ok {
		t.Error("expected snapshot file under the padded date name")
	}
}

func TestDailyStoreLoadDayDegradesOpen(t *testing.T) {
	t.Run("missing day is empty", func(t *testing.T) {
		daily := NewDailyStore(newMemFiles(), "data", quietLogger())
		if got := daily.LoadDay("2026-01-01"); len(got) != 0 {
			t.Errorf("expected empty day, got %v", got)
		}
	})

	t.Run("malformed file is empty", func(t *testing.T) {
		files := newMemFiles()
		files.files["data/2026-01-01.json"] = []byte("{broken")
		daily := NewDailyStore(files, "data", quietLogger())
		if got := daily.LoadDay("2026-01-01"); len(got) != 0 {
			t.Errorf("expected empty day for malformed file, got %v", got)
		}
	})
}

func TestDailyStoreReadsLegacyUnpaddedFiles(t *testing.T) {
	files := newMemFiles()
	files.files["data/2024-8-3.json"] = []byte(`{"dailyReadData":{"id-a":{"id":"id-a","duration":60000}}}`)
	daily := NewDailyStore(files, "data", quietLogger())

	got := daily.LoadDay("2024-08-03")
	if got["id-a"].Duration != 60000 {
		t.Errorf("legacy file not read, got %v", got)
	}
}

func TestDailyStoreDates(t *testing.T) {
	files := newMemFiles()
	files.files["data/2024-8-3.json"] = []byte(`{"dailyReadData":{}}`)
	files.files["data/2024-01-15.json"] = []byte(`{"dailyReadData":{}}`)
	files.files["data/2024-02-01.json"] = []byte(`{"dailyReadData":{}}`)
	files.files["data/notes.txt"] = []byte("not a snapshot")
	daily := NewDailyStore(files, "data", quietLogger())

	got := daily.Dates()
	want := []string{"2024-01-15", "2024-02-01", "2024-08-03"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dates = %v, want %v", got, want)
	}

	t.Run("padded and legacy files for one day count once", func(t *testing.T) {
		files := newMemFiles()
		files.files["data/2024-8-3.json"] = []byte(`{"dailyReadData":{}}`)
		files.files["data/2024-08-03.json"] = []byte(`{"dailyReadData":{}}`)
		daily := NewDailyStore(files, "data", quietLogger())

		got := daily.Dates()
		want := []string{"2024-08-03"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Dates = %v, want %v", got, want)
		}
	})
}

func TestDailyStoreAccrueMigratesLegacyFile(t *testing.T) {
	files := newMemFiles()
	files.files["data/2024-8-3.json"] = []byte(`{"dailyReadData":{"id-a":{"id":"id-a","duration":60000}}}`)
	daily := NewDailyStore(files, "data", quietLogger())
	daily.now = fixedClock(time.Date(2024, 8, 3, 10, 0, 0, 0, time.UTC))

	if err := daily.Accrue("id-a", 1000); err != nil {
		t.Fatalf("Accrue: %v", err)
	}

	if _, ok := files.files["data/2024-08-03.json"]; !ok {
		t.Error("expected snapshot under the padded date name")
	}
	if _, ok := files.files["data/2024-8-3.json"]; ok {
		t.Error("legacy file should be removed after migrating")
	}
	if got := daily.LoadDay("2024-08-03")["id-a"].Duration; got != 61000 {
		t.Errorf("duration = %d, want 61000", got)
	}
	if got := daily.Dates(); !reflect.DeepEqual(got, []string{"2024-08-03"}) {
		t.Errorf("Dates = %v, want [2024-08-03]", got)
	}
}
