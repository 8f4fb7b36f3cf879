package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/ipchperu-tech/SFDV2/app/models"
)

// SessionUpdate is one entry of a cascade plan: a session's new calendar date
// and its recomposed start/end instants.
type SessionUpdate struct {
	SessionID string
	Number    int
	Date      time.Time
	StartsAt  time.Time
	EndsAt    time.Time
}

// ReschedulePlan is the complete, not-yet-applied result of planning a
// reschedule: the target session pinned to the anchor date, every later
// session shifted onto the next valid occurrences, and the audit record.
// SessionsVersion carries the classroom version the session list was read at,
// checked again when the plan is committed.
type ReschedulePlan struct {
	ClassroomID     string
	SessionsVersion int64
	Target          SessionUpdate
	Subsequent      []SessionUpdate
	Incident        models.Incident
}

// ReplacementPlan substitutes the instructor on a single session. No cascade.
type ReplacementPlan struct {
	ClassroomID            string
	SessionsVersion        int64
	SessionID              string
	SessionNumber          int
	SubstituteInstructorID string
	Incident               models.Incident
}

// BuildReschedulePlan plans moving one session to the operator-chosen anchor
// date and re-derives the date of every later session in the classroom.
//
// The anchor is operator-authoritative: it is applied to the target verbatim,
// without weekday or holiday validation. Subsequent sessions are propagated
// strictly in sequence order, each one resolved from the previous newly
// computed date, which makes the resulting dates strictly increasing.
//
// The function is pure: it never touches storage and never mutates sessions.
// All preconditions are verified before the first plan element is produced.
func BuildReschedulePlan(
	classroom models.Classroom,
	sessions []models.ClassSession,
	sessionID string,
	anchor time.Time,
	reason string,
	recordedBy string,
	holidays HolidaySet,
	loc *time.Location,
) (*ReschedulePlan, error) {
	weekdays, err := WeekdaysFor(classroom.Frequency)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(classroom.StartTime) == "" || strings.TrimSpace(classroom.EndTime) == "" {
		return nil, ErrMissingTimeOfDay
	}

	ordered := orderedCopy(sessions)
	idx := indexOf(ordered, sessionID)
	if idx < 0 {
		return nil, ErrSessionNotFound
	}
	target := ordered[idx]

	anchorDate := DateOnly(anchor, loc)
	startsAt, err := ComposeInstant(anchorDate, classroom.StartTime, loc)
	if err != nil {
		return nil, err
	}
	endsAt, err := ComposeInstant(anchorDate, classroom.EndTime, loc)
	if err != nil {
		return nil, err
	}

	plan := &ReschedulePlan{
		ClassroomID:     classroom.ID,
		SessionsVersion: classroom.SessionsVersion,
		Target: SessionUpdate{
			SessionID: target.ID,
			Number:    target.Number,
			Date:      anchorDate,
			StartsAt:  startsAt,
			EndsAt:    endsAt,
		},
	}

	cursor := anchorDate
	for _, later := range ordered[idx+1:] {
		cursor, err = NextValidDate(cursor, weekdays, holidays)
		if err != nil {
			return nil, err
		}
		laterStart, err := ComposeInstant(cursor, classroom.StartTime, loc)
		if err != nil {
			return nil, err
		}
		laterEnd, err := ComposeInstant(cursor, classroom.EndTime, loc)
		if err != nil {
			return nil, err
		}
		plan.Subsequent = append(plan.Subsequent, SessionUpdate{
			SessionID: later.ID,
			Number:    later.Number,
			Date:      cursor,
			StartsAt:  laterStart,
			EndsAt:    laterEnd,
		})
	}

	plan.Incident = models.Incident{
		ClassroomID:   classroom.ID,
		ClassroomCode: classroom.Code,
		SessionNumber: target.Number,
		OriginalDate:  DateOnly(target.Date, loc),
		Kind:          models.IncidentReschedule,
		NewDate:       &anchorDate,
		Reason:        reason,
		ApprovalState: models.IncidentApproved,
		RecordedBy:    recordedBy,
	}
	return plan, nil
}

// BuildReplacementPlan plans an instructor substitution on a single session.
// The session keeps its date and times; only the assigned instructor and the
// session state change.
func BuildReplacementPlan(
	classroom models.Classroom,
	sessions []models.ClassSession,
	sessionID string,
	substituteInstructorID string,
	reason string,
	recordedBy string,
	loc *time.Location,
) (*ReplacementPlan, error) {
	ordered := orderedCopy(sessions)
	idx := indexOf(ordered, sessionID)
	if idx < 0 {
		return nil, ErrSessionNotFound
	}
	target := ordered[idx]

	return &ReplacementPlan{
		ClassroomID:            classroom.ID,
		SessionsVersion:        classroom.SessionsVersion,
		SessionID:              target.ID,
		SessionNumber:          target.Number,
		SubstituteInstructorID: substituteInstructorID,
		Incident: models.Incident{
			ClassroomID:            classroom.ID,
			ClassroomCode:          classroom.Code,
			SessionNumber:          target.Number,
			OriginalDate:           DateOnly(target.Date, loc),
			Kind:                   models.IncidentReplacement,
			SubstituteInstructorID: &substituteInstructorID,
			Reason:                 reason,
			ApprovalState:          models.IncidentApproved,
			RecordedBy:             recordedBy,
		},
	}, nil
}

func orderedCopy(sessions []models.ClassSession) []models.ClassSession {
	ordered := make([]models.ClassSession, len(sessions))
	copy(ordered, sessions)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})
	return ordered
}

func indexOf(sessions []models.ClassSession, sessionID string) int {
	for i, s := range sessions {
		if s.ID == sessionID {
			return i
		}
	}
	return -1
}
