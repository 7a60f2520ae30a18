package views

import (
	"fmt"
	"strings"

	"github.com/astradev123/obsidian-focus-time/internal/adapters/tui/styles"
)

// BarRow is one labelled value in a horizontal bar chart.
type BarRow struct {
	Label  string
	Value  int64
	Detail string
}

const (
	barRune     = "█"
	minBarWidth = 10
)

// renderBarChart draws rows as horizontal bars scaled to the largest value.
// Rows with a zero value get an empty bar so the chart keeps its shape.
func renderBarChart(rows []BarRow, width int) string {
	if len(rows) == 0 {
		return styles.MutedText.Render("No reading activity in this period.")
	}

	labelWidth := 0
	var max int64
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if row.Value > max {
			max = row.Value
		}
	}

	barWidth := width - labelWidth - 20
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	var b strings.Builder
	for _, row := range rows {
		label := fmt.Sprintf("%-*s", labelWidth, row.Label)
		b.WriteString(styles.BarLabel.Render(label))
		b.WriteString("  ")
		b.WriteString(styles.BarFill.Render(strings.Repeat(barRune, barLength(row.Value, max, barWidth))))
		if row.Detail != "" {
			b.WriteString(" ")
			b.WriteString(row.Detail)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// barLength scales value against max into [0, width]. Any nonzero value
// renders at least one cell so short sessions stay visible.
func barLength(value, max int64, width int) int {
	if value <= 0 || max <= 0 || width <= 0 {
		return 0
	}
	n := int(value * int64(width) / max)
	if n == 0 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}
