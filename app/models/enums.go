package models

// ClassroomState defines the lifecycle states of a classroom.
type ClassroomState string

const (
	ClassroomUpcoming   ClassroomState = "upcoming"
	ClassroomInProgress ClassroomState = "in_progress"
	ClassroomCompleted  ClassroomState = "completed"
	ClassroomCancelled  ClassroomState = "cancelled"
)

// SessionState defines the possible states of a class session.
type SessionState string

const (
	SessionScheduled   SessionState = "scheduled"
	SessionRescheduled SessionState = "rescheduled"
	SessionReplaced    SessionState = "replaced"
)

// IncidentKind defines the type of an audited schedule incident.
type IncidentKind string

const (
	IncidentReplacement IncidentKind = "replacement"
	IncidentReschedule  IncidentKind = "reschedule"
)

// ApprovalState defines the review status of an incident record.
type ApprovalState string

const (
	IncidentPending  ApprovalState = "pending"
	IncidentApproved ApprovalState = "approved"
	IncidentRejected ApprovalState = "rejected"
)
