package database

import (
	"time"

	"github.com/ipchperu-tech/SFDV2/app/config"
)

// dateInZone reinterprets a scanned DATE value as midnight in the academy
// zone. The driver hands DATE columns back at UTC midnight; converting the
// instant would shift it to the previous day in UTC-5, so we rebuild from the
// calendar components instead.
func dateInZone(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, config.Location())
}

// nullableDateInZone is dateInZone for NULLable DATE columns.
func nullableDateInZone(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	normalized := dateInZone(*t)
	return &normalized
}
