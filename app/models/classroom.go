package models

import "time"

// Classroom represents a cohort with a fixed weekly meeting pattern.
// StartTime and EndTime are local wall-clock strings ("19:00"); EndDate is a
// denormalized convenience field recomputed after every reschedule cascade.
type Classroom struct {
	ID              string         `json:"id"`
	Code            string         `json:"code"`
	Name            string         `json:"name"`
	Frequency       string         `json:"frequency"`
	StartTime       string         `json:"start_time"`
	EndTime         string         `json:"end_time"`
	State           ClassroomState `json:"state"`
	StartDate       *time.Time     `json:"start_date,omitempty"`
	EndDate         *time.Time     `json:"end_date,omitempty"`
	SessionsVersion int64          `json:"sessions_version"`
	SessionCount    int            `json:"session_count,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
