package views

import (
	"strings"
	"testing"
)

func TestBarLength(t *testing.T) {
	tests := []struct {
		name       string
		value, max int64
		width      int
		want       int
	}{
		{name: "zero value", value: 0, max: 100, width: 40, want: 0},
		{name: "full width at max", value: 100, max: 100, width: 40, want: 40},
		{name: "half width", value: 50, max: 100, width: 40, want: 20},
		{name: "tiny value still visible", value: 1, max: 1000000, width: 40, want: 1},
		{name: "zero max", value: 5, max: 0, width: 40, want: 0},
		{name: "zero width", value: 5, max: 10, width: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := barLength(tt.value, tt.max, tt.width); got != tt.want {
				t.Errorf("barLength(%d, %d, %d) = %d, want %d", tt.value, tt.max, tt.width, got, tt.want)
			}
		})
	}
}

func TestRenderBarChart(t *testing.T) {
	t.Run("empty rows show a placeholder", func(t *testing.T) {
		out := renderBarChart(nil, 80)
		if !strings.Contains(out, "No reading activity") {
			t.Errorf("empty chart = %q", out)
		}
	})

	t.Run("one line per row with labels", func(t *testing.T) {
		rows := []BarRow{
			{Label: "2026-08-10", Value: 60000, Detail: "1 minute"},
			{Label: "2026-08-11", Value: 120000, Detail: "2 minutes"},
		}
		out := renderBarChart(rows, 80)

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("lines = %d, want 2", len(lines))
		}
		for i, row := range rows {
			if !strings.Contains(lines[i], row.Label) {
				t.Errorf("line %d missing label %s: %q", i, row.Label, lines[i])
			}
			if !strings.Contains(lines[i], row.Detail) {
				t.Errorf("line %d missing detail %s: %q", i, row.Detail, lines[i])
			}
		}
		if strings.Count(lines[1], barRune) <= strings.Count(lines[0], barRune) {
			t.Error("larger value should render a longer bar")
		}
	})
}
