package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// TimestampLayout is the precise game-time format used by the schedule feed.
const TimestampLayout = "2006-01-02T15:04:05"

// Games without a published tip-off time default to 7:30pm local.
const (
	DefaultTipoffHour   = 19
	DefaultTipoffMinute = 30
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseGameTime resolves a game's start from a precise timestamp when present,
// falling back to the date-only field at the default tip-off time. An empty or
// unparseable timestamp is not an error as long as the date parses.
func ParseGameTime(timestamp, date string) (time.Time, error) {
	if timestamp != "" {
		if t, err := time.Parse(TimestampLayout, timestamp); err == nil {
			return t, nil
		}
	}
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable game date %q: %w", date, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), DefaultTipoffHour, DefaultTipoffMinute, 0, 0, d.Location()), nil
}
