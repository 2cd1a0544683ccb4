package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/fastlit/internal/constants"
)

// FormatDuration renders a duration as "<H>h <MM>m" with zero-padded minutes.
// Seconds are truncated, not rounded. Negative durations clamp to "0h 00m".
func FormatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	return fmt.Sprintf("%dh %02dm", h, m)
}

// FormatClock renders a wall-clock time honoring the 24-hour preference.
func FormatClock(t time.Time, is24h bool) string {
	if is24h {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// ParseWhen parses a user-supplied point in time. It accepts RFC3339
// timestamps, or a bare HH:MM interpreted on today's date in local time.
// An empty value returns the supplied now.
func ParseWhen(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(constants.TimeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (expected RFC3339 or HH:MM): %w", value, err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}
