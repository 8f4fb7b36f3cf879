package schedule

import (
	"fmt"
	"time"
)

// searchWindowDays bounds the day-by-day search for the next occurrence.
// Two months with no allowed, holiday-free weekday means the frequency or the
// holiday calendar is misconfigured.
const searchWindowDays = 60

// NextValidDate finds the first date strictly after from whose weekday is in
// weekdays and which is not a holiday. Candidates are examined one calendar
// day at a time up to searchWindowDays after from; exhausting the window
// returns ErrSearchExhausted.
func NextValidDate(from time.Time, weekdays []time.Weekday, holidays HolidaySet) (time.Time, error) {
	limit := from.AddDate(0, 0, searchWindowDays)
	for day := from.AddDate(0, 0, 1); !day.After(limit); day = day.AddDate(0, 0, 1) {
		if weekdayIn(weekdays, day.Weekday()) && !holidays.Contains(day) {
			return day, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w (searched %d days from %s)",
		ErrSearchExhausted, searchWindowDays, from.Format("2006-01-02"))
}

func weekdayIn(weekdays []time.Weekday, day time.Weekday) bool {
	for _, w := range weekdays {
		if w == day {
			return true
		}
	}
	return false
}
