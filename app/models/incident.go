package models

import "time"

// Incident is the append-only audit record for a schedule exception: either
// an instructor replacement or a date reschedule. It captures the affected
// session as it was before the change; records are never mutated once written.
type Incident struct {
	ID                     string        `json:"id"`
	ClassroomID            string        `json:"classroom_id"`
	ClassroomCode          string        `json:"classroom_code"`
	SessionNumber          int           `json:"session_number"`
	OriginalDate           time.Time     `json:"original_date"`
	Kind                   IncidentKind  `json:"kind"`
	SubstituteInstructorID *string       `json:"substitute_instructor_id,omitempty"`
	NewDate                *time.Time    `json:"new_date,omitempty"`
	Reason                 string        `json:"reason"`
	ApprovalState          ApprovalState `json:"approval_state"`
	RecordedBy             string        `json:"recorded_by"`
	CreatedAt              time.Time     `json:"created_at"`
}
