package database

import (
	"database/sql"

	"github.com/ipchperu-tech/SFDV2/app/models"
)

// GetActiveInstructors retrieves instructors available for assignment or
// substitution, ordered by name.
func GetActiveInstructors(db *sql.DB) ([]models.Instructor, error) {
	query := `SELECT id, full_name, email, phone, is_active, created_at, updated_at
			  FROM instructors
			  WHERE is_active = true AND deleted_at IS NULL
			  ORDER BY full_name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []models.Instructor
	for rows.Next() {
		var i models.Instructor
		var email, phone sql.NullString
		if err := rows.Scan(&i.ID, &i.FullName, &email, &phone,
			&i.IsActive, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		i.Email = email.String
		i.Phone = phone.String
		instructors = append(instructors, i)
	}
	return instructors, rows.Err()
}

// GetInstructorByID retrieves a single instructor.
func GetInstructorByID(db *sql.DB, instructorID string) (*models.Instructor, error) {
	i := &models.Instructor{}
	var email, phone sql.NullString
	query := `SELECT id, full_name, email, phone, is_active, created_at, updated_at
			  FROM instructors WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, instructorID).Scan(
		&i.ID, &i.FullName, &email, &phone, &i.IsActive, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	i.Email = email.String
	i.Phone = phone.String
	return i, nil
}
