package domain

// StatusStyle selects how the status indicator renders the current
// document's reading time.
type StatusStyle int

const (
	// StatusTextOnly renders just the formatted reading time.
	StatusTextOnly StatusStyle = iota
	// StatusIconText prefixes the reading time with a timer glyph.
	StatusIconText
)

// StatusLine renders the status indicator label for an accrued duration.
func StatusLine(style StatusStyle, ms int64) string {
	text := FormatReadingTime(ms)
	if style == StatusIconText {
		return "⏱ " + text
	}
	return text
}
