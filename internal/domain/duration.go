package domain

import "fmt"

// FormatReadingTime renders an accrued duration in milliseconds at minute
// granularity, truncating the sub-minute remainder.
func FormatReadingTime(ms int64) string {
	minutes := ms / 1000 / 60
	hours := minutes / 60
	minutes %= 60

	if hours == 0 {
		if minutes == 0 {
			return "less than 1 minute"
		}
		return fmt.Sprintf("%d %s", minutes, pluralize(minutes, "minute"))
	}
	if minutes == 0 {
		return fmt.Sprintf("%d %s", hours, pluralize(hours, "hour"))
	}
	return fmt.Sprintf("%d %s %d %s",
		hours, pluralize(hours, "hour"),
		minutes, pluralize(minutes, "minute"))
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
