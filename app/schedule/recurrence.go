// Package schedule implements the cascade rescheduling engine: frequency
// lookup, holiday-aware date resolution, wall-clock composition and the
// forward-propagation planner. Everything in this package is pure and
// in-memory; persistence belongs to app/database.
package schedule

import (
	"fmt"
	"time"
)

// weekdaysByFrequency maps the frequency labels stored on classrooms to the
// weekdays a session may fall on. The labels are data written at classroom
// setup; the short forms are legacy values still present on older classrooms.
var weekdaysByFrequency = map[string][]time.Weekday{
	"Lun-Mié-Vie (3 veces/semana)":        {time.Monday, time.Wednesday, time.Friday},
	"Martes y Jueves (2 veces/semana)":    {time.Tuesday, time.Thursday},
	"Sábados y Domingos (2 veces/semana)": {time.Saturday, time.Sunday},
	"Lunes y Miércoles (2 veces/semana)":  {time.Monday, time.Wednesday},
	"Lun, Mié y Vie":                      {time.Monday, time.Wednesday, time.Friday},
	"Mar y Jue":                           {time.Tuesday, time.Thursday},
	"Sáb y Dom":                           {time.Saturday, time.Sunday},
	"Lun y Mié":                           {time.Monday, time.Wednesday},
}

// WeekdaysFor resolves a classroom frequency label to its allowed weekdays.
// An unrecognized label is a configuration error and must abort the whole
// operation before anything is planned.
func WeekdaysFor(frequency string) ([]time.Weekday, error) {
	days, ok := weekdaysByFrequency[frequency]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrequency, frequency)
	}
	return days, nil
}

// Frequencies lists the recognized frequency labels, for classroom setup forms.
func Frequencies() []string {
	labels := make([]string, 0, len(weekdaysByFrequency))
	for label := range weekdaysByFrequency {
		labels = append(labels, label)
	}
	return labels
}
