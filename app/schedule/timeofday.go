package schedule

import (
	"fmt"
	"strings"
	"time"
)

// ComposeInstant combines a calendar date with an "HH:MM" wall-clock string
// into an absolute instant in loc. Start and end instants of a session are
// composed with the same date, so its duration is always end minus start
// regardless of which day the cascade lands it on.
func ComposeInstant(date time.Time, timeOfDay string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(timeOfDay)
	if trimmed == "" {
		return time.Time{}, ErrMissingTimeOfDay
	}
	parsed, err := time.Parse("15:04", trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, timeOfDay)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}

// DateOnly truncates an instant to midnight of its calendar day in loc.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
