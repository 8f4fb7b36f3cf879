package models

import "time"

// ClassSession represents one scheduled meeting of a classroom. Number is
// unique within the classroom and defines the cascade order; Date is a
// calendar day while StartsAt/EndsAt are the absolute instants composed from
// the classroom's wall-clock times.
type ClassSession struct {
	ID           string       `json:"id"`
	ClassroomID  string       `json:"classroom_id"`
	Number       int          `json:"number"`
	Date         time.Time    `json:"date"`
	StartsAt     time.Time    `json:"starts_at"`
	EndsAt       time.Time    `json:"ends_at"`
	State        SessionState `json:"state"`
	InstructorID *string      `json:"instructor_id,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
