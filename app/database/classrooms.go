package database

import (
	"database/sql"

	"github.com/ipchperu-tech/SFDV2/app/models"
)

// GetActiveClassrooms retrieves classrooms that still have sessions to manage
// (upcoming or in progress), ordered by code.
func GetActiveClassrooms(db *sql.DB) ([]models.Classroom, error) {
	query := `SELECT id, code, name, frequency, start_time, end_time, state,
				start_date, end_date, sessions_version, created_at, updated_at
			  FROM classrooms
			  WHERE state IN ('upcoming', 'in_progress')
			  ORDER BY code ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []models.Classroom
	for rows.Next() {
		var c models.Classroom
		var startDate, endDate sql.NullTime
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Name, &c.Frequency, &c.StartTime, &c.EndTime, &c.State,
			&startDate, &endDate, &c.SessionsVersion, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if startDate.Valid {
			c.StartDate = nullableDateInZone(&startDate.Time)
		}
		if endDate.Valid {
			c.EndDate = nullableDateInZone(&endDate.Time)
		}
		classrooms = append(classrooms, c)
	}
	return classrooms, rows.Err()
}

// GetClassroomByID retrieves a single classroom, including the current
// sessions_version used for optimistic concurrency on plan commits.
func GetClassroomByID(db *sql.DB, classroomID string) (*models.Classroom, error) {
	c := &models.Classroom{}
	var startDate, endDate sql.NullTime
	query := `SELECT id, code, name, frequency, start_time, end_time, state,
				start_date, end_date, sessions_version, created_at, updated_at
			  FROM classrooms WHERE id = $1`

	err := db.QueryRow(query, classroomID).Scan(
		&c.ID, &c.Code, &c.Name, &c.Frequency, &c.StartTime, &c.EndTime, &c.State,
		&startDate, &endDate, &c.SessionsVersion, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if startDate.Valid {
		c.StartDate = nullableDateInZone(&startDate.Time)
	}
	if endDate.Valid {
		c.EndDate = nullableDateInZone(&endDate.Time)
	}
	return c, nil
}

// RecalculateClassroomSpan recomputes a classroom's end date as the maximum
// session date. It runs outside the commit transaction as a best-effort
// follow-up; the end_date column is a denormalized convenience field.
func RecalculateClassroomSpan(db *sql.DB, classroomID string) error {
	var maxDate sql.NullTime
	err := db.QueryRow(`SELECT MAX(date) FROM sessions WHERE classroom_id = $1`, classroomID).
		Scan(&maxDate)
	if err != nil {
		return err
	}
	if !maxDate.Valid {
		// No sessions yet, nothing to write.
		return nil
	}

	_, err = db.Exec(`UPDATE classrooms SET end_date = $1, updated_at = NOW() WHERE id = $2`,
		dateInZone(maxDate.Time), classroomID)
	return err
}

// RollClassroomStates flips classroom lifecycle states from the session dates:
// upcoming classrooms whose first session date has arrived become in_progress,
// and in-progress classrooms whose last session is past become completed.
// Returns the number of classrooms changed.
func RollClassroomStates(db *sql.DB) (int64, error) {
	var changed int64

	res, err := db.Exec(`
		UPDATE classrooms c SET state = 'in_progress', updated_at = NOW()
		WHERE c.state = 'upcoming'
		  AND EXISTS (
			SELECT 1 FROM sessions s
			WHERE s.classroom_id = c.id AND s.date <= CURRENT_DATE
		  )`)
	if err != nil {
		return changed, err
	}
	if n, err := res.RowsAffected(); err == nil {
		changed += n
	}

	res, err = db.Exec(`
		UPDATE classrooms c SET state = 'completed', updated_at = NOW()
		WHERE c.state = 'in_progress'
		  AND NOT EXISTS (
			SELECT 1 FROM sessions s
			WHERE s.classroom_id = c.id AND s.date >= CURRENT_DATE
		  )`)
	if err != nil {
		return changed, err
	}
	if n, err := res.RowsAffected(); err == nil {
		changed += n
	}

	return changed, nil
}
