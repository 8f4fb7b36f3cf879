package database

import (
	"database/sql"
	"time"

	"github.com/ipchperu-tech/SFDV2/app/models"
)

// GetHolidays retrieves all holidays ordered by date.
func GetHolidays(db *sql.DB) ([]models.Holiday, error) {
	query := `SELECT id, date, name, created_at FROM holidays ORDER BY date ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []models.Holiday
	for rows.Next() {
		var h models.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, err
		}
		h.Date = dateInZone(h.Date)
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// GetHolidayDates retrieves just the excluded dates, for building the
// planner's holiday set. Read once per planning operation.
func GetHolidayDates(db *sql.DB) ([]time.Time, error) {
	rows, err := db.Query(`SELECT date FROM holidays ORDER BY date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, dateInZone(d))
	}
	return dates, rows.Err()
}

// CreateHoliday adds an excluded date to the calendar.
func CreateHoliday(db *sql.DB, holiday *models.Holiday) error {
	query := `INSERT INTO holidays (date, name, created_at)
			  VALUES ($1, $2, NOW())
			  RETURNING id, created_at`
	return db.QueryRow(query, holiday.Date, holiday.Name).
		Scan(&holiday.ID, &holiday.CreatedAt)
}

// DeleteHoliday removes an excluded date by ID.
func DeleteHoliday(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM holidays WHERE id = $1`, id)
	return err
}
