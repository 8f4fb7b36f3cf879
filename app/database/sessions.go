package database

import (
	"database/sql"
	"time"

	"github.com/ipchperu-tech/SFDV2/app/models"
)

// GetSessionsByClassroom retrieves the full ordered session list for a
// classroom. The cascade planner relies on this ordering.
func GetSessionsByClassroom(db *sql.DB, classroomID string) ([]models.ClassSession, error) {
	query := `SELECT id, classroom_id, number, date, starts_at, ends_at, state,
				instructor_id, created_at, updated_at
			  FROM sessions
			  WHERE classroom_id = $1
			  ORDER BY number ASC`
	rows, err := db.Query(query, classroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.ClassSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetManageableSessions retrieves a classroom's sessions that an incident can
// still target: scheduled or rescheduled, and not yet finished.
func GetManageableSessions(db *sql.DB, classroomID string, now time.Time) ([]models.ClassSession, error) {
	query := `SELECT id, classroom_id, number, date, starts_at, ends_at, state,
				instructor_id, created_at, updated_at
			  FROM sessions
			  WHERE classroom_id = $1
				AND state IN ('scheduled', 'rescheduled')
				AND ends_at > $2
			  ORDER BY number ASC`
	rows, err := db.Query(query, classroomID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.ClassSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func scanSession(rows *sql.Rows) (models.ClassSession, error) {
	var s models.ClassSession
	var instructorID sql.NullString
	if err := rows.Scan(
		&s.ID, &s.ClassroomID, &s.Number, &s.Date, &s.StartsAt, &s.EndsAt,
		&s.State, &instructorID, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return s, err
	}
	s.Date = dateInZone(s.Date)
	if instructorID.Valid {
		s.InstructorID = &instructorID.String
	}
	return s, nil
}
