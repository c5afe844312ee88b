package deadline

import (
	"fmt"
	"time"
)

// FormatClockTime renders t as a 12-hour time of day, e.g. "3:07 PM".
// Midnight and noon render as 12.
func FormatClockTime(t time.Time) string {
	hour12 := t.Hour() % 12
	if hour12 == 0 {
		hour12 = 12
	}
	suffix := "AM"
	if t.Hour() >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour12, t.Minute(), suffix)
}
