package domain

import "time"

// DateKeyLayout is the canonical format for daily snapshot keys and file names.
const DateKeyLayout = "2006-01-02"

// legacy layout written by older plugin versions (no zero padding)
const legacyDateKeyLayout = "2006-1-2"

// DateKey formats a time as a YYYY-MM-DD snapshot key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a snapshot key. Legacy unpadded keys ("2024-8-3")
// written by older plugin versions are accepted.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(legacyDateKeyLayout, s)
}

// WeekStart returns midnight of the Sunday starting the week containing t.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
