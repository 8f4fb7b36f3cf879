package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ipchperu-tech/SFDV2/app/models"
	"github.com/ipchperu-tech/SFDV2/app/schedule"
)

// ErrVersionConflict means the classroom's session list changed between
// planning and commit. The whole operation can be retried from scratch.
var ErrVersionConflict = errors.New("classroom sessions changed since plan was built")

// ApplyReschedulePlan commits a cascade plan as one transaction: the target
// session update, every subsequent session update, and the incident record.
// Either all writes land or none do; a partial cascade is never observable.
//
// The classroom's sessions_version is compare-and-swapped first, so a plan
// built from a stale session list aborts with ErrVersionConflict.
func ApplyReschedulePlan(db *sql.DB, plan *schedule.ReschedulePlan) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin reschedule transaction: %w", err)
	}
	defer tx.Rollback()

	if err := bumpSessionsVersion(tx, plan.ClassroomID, plan.SessionsVersion); err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE sessions
			SET date = $1, starts_at = $2, ends_at = $3, state = $4, updated_at = NOW()
			WHERE id = $5 AND classroom_id = $6`,
		plan.Target.Date, plan.Target.StartsAt, plan.Target.EndsAt,
		models.SessionRescheduled, plan.Target.SessionID, plan.ClassroomID)
	if err != nil {
		return fmt.Errorf("update rescheduled session: %w", err)
	}

	// Subsequent sessions shift date and instants but keep their state.
	for _, update := range plan.Subsequent {
		_, err = tx.Exec(`UPDATE sessions
				SET date = $1, starts_at = $2, ends_at = $3, updated_at = NOW()
				WHERE id = $4 AND classroom_id = $5`,
			update.Date, update.StartsAt, update.EndsAt,
			update.SessionID, plan.ClassroomID)
		if err != nil {
			return fmt.Errorf("update session %d: %w", update.Number, err)
		}
	}

	if err := insertIncident(tx, &plan.Incident); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reschedule transaction: %w", err)
	}
	return nil
}

// ApplyReplacementPlan commits an instructor substitution and its incident
// record in one transaction.
func ApplyReplacementPlan(db *sql.DB, plan *schedule.ReplacementPlan) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin replacement transaction: %w", err)
	}
	defer tx.Rollback()

	if err := bumpSessionsVersion(tx, plan.ClassroomID, plan.SessionsVersion); err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE sessions
			SET instructor_id = $1, state = $2, updated_at = NOW()
			WHERE id = $3 AND classroom_id = $4`,
		plan.SubstituteInstructorID, models.SessionReplaced,
		plan.SessionID, plan.ClassroomID)
	if err != nil {
		return fmt.Errorf("update replaced session: %w", err)
	}

	if err := insertIncident(tx, &plan.Incident); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replacement transaction: %w", err)
	}
	return nil
}

func bumpSessionsVersion(tx *sql.Tx, classroomID string, expected int64) error {
	res, err := tx.Exec(`UPDATE classrooms
			SET sessions_version = sessions_version + 1, updated_at = NOW()
			WHERE id = $1 AND sessions_version = $2`,
		classroomID, expected)
	if err != nil {
		return fmt.Errorf("bump sessions_version: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bump sessions_version: %w", err)
	}
	if rows == 0 {
		return ErrVersionConflict
	}
	return nil
}

func insertIncident(tx *sql.Tx, incident *models.Incident) error {
	// The planner leaves the ID empty so replanning stays deterministic; the
	// identity is assigned here, at commit time.
	incident.ID = uuid.NewString()
	err := tx.QueryRow(`INSERT INTO incidents
			(id, classroom_id, classroom_code, session_number, original_date, kind,
			 substitute_instructor_id, new_date, reason, approval_state, recorded_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
			RETURNING created_at`,
		incident.ID, incident.ClassroomID, incident.ClassroomCode, incident.SessionNumber,
		incident.OriginalDate, incident.Kind, incident.SubstituteInstructorID,
		incident.NewDate, incident.Reason, incident.ApprovalState, incident.RecordedBy,
	).Scan(&incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert incident: %w", err)
	}
	return nil
}

// GetIncidents retrieves the incident log, newest first.
func GetIncidents(db *sql.DB, limit int) ([]models.Incident, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT id, classroom_id, classroom_code, session_number, original_date,
				kind, substitute_instructor_id, new_date, reason, approval_state,
				recorded_by, created_at
			  FROM incidents
			  ORDER BY created_at DESC
			  LIMIT $1`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []models.Incident
	for rows.Next() {
		var n models.Incident
		var substituteID sql.NullString
		var newDate sql.NullTime
		if err := rows.Scan(
			&n.ID, &n.ClassroomID, &n.ClassroomCode, &n.SessionNumber, &n.OriginalDate,
			&n.Kind, &substituteID, &newDate, &n.Reason, &n.ApprovalState,
			&n.RecordedBy, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		n.OriginalDate = dateInZone(n.OriginalDate)
		if substituteID.Valid {
			n.SubstituteInstructorID = &substituteID.String
		}
		if newDate.Valid {
			n.NewDate = nullableDateInZone(&newDate.Time)
		}
		incidents = append(incidents, n)
	}
	return incidents, rows.Err()
}

// GetIncidentsByClassroom retrieves the incident log for one classroom.
func GetIncidentsByClassroom(db *sql.DB, classroomID string) ([]models.Incident, error) {
	query := `SELECT id, classroom_id, classroom_code, session_number, original_date,
				kind, substitute_instructor_id, new_date, reason, approval_state,
				recorded_by, created_at
			  FROM incidents
			  WHERE classroom_id = $1
			  ORDER BY created_at DESC`
	rows, err := db.Query(query, classroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []models.Incident
	for rows.Next() {
		var n models.Incident
		var substituteID sql.NullString
		var newDate sql.NullTime
		if err := rows.Scan(
			&n.ID, &n.ClassroomID, &n.ClassroomCode, &n.SessionNumber, &n.OriginalDate,
			&n.Kind, &substituteID, &newDate, &n.Reason, &n.ApprovalState,
			&n.RecordedBy, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		n.OriginalDate = dateInZone(n.OriginalDate)
		if substituteID.Valid {
			n.SubstituteInstructorID = &substituteID.String
		}
		if newDate.Valid {
			n.NewDate = nullableDateInZone(&newDate.Time)
		}
		incidents = append(incidents, n)
	}
	return incidents, rows.Err()
}
