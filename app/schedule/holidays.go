package schedule

import "time"

// HolidaySet is an immutable collection of excluded calendar dates. It is
// built once per planning operation from the holidays table and compared by
// calendar day, ignoring the time component.
type HolidaySet struct {
	days map[string]struct{}
}

// NewHolidaySet builds a holiday set from a list of dates.
func NewHolidaySet(dates []time.Time) HolidaySet {
	days := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		days[dateKey(date)] = struct{}{}
	}
	return HolidaySet{days: days}
}

// Contains reports whether the date's calendar day is a holiday.
func (s HolidaySet) Contains(date time.Time) bool {
	_, ok := s.days[dateKey(date)]
	return ok
}

// Len returns the number of holidays in the set.
func (s HolidaySet) Len() int {
	return len(s.days)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
