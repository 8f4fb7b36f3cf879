package schedule

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/ipchperu-tech/SFDV2/app/models"
)

func testClassroom() models.Classroom {
	return models.Classroom{
		ID:              "aula-1",
		Code:            "SFD-2025-A",
		Frequency:       "Martes y Jueves (2 veces/semana)",
		StartTime:       "19:00",
		EndTime:         "21:00",
		State:           models.ClassroomInProgress,
		SessionsVersion: 3,
	}
}

// Four sessions on consecutive Tue/Thu leading into January 2025.
func testSessions(t *testing.T, classroom models.Classroom) []models.ClassSession {
	t.Helper()

	dates := []time.Time{
		date(2024, time.December, 24),
		date(2024, time.December, 26),
		date(2024, time.December, 31),
		date(2025, time.January, 2),
	}
	sessions := make([]models.ClassSession, len(dates))
	for i, d := range dates {
		start, err := ComposeInstant(d, classroom.StartTime, testZone)
		if err != nil {
			t.Fatalf("compose start: %v", err)
		}
		end, err := ComposeInstant(d, classroom.EndTime, testZone)
		if err != nil {
			t.Fatalf("compose end: %v", err)
		}
		sessions[i] = models.ClassSession{
			ID:          "ses-" + string(rune('1'+i)),
			ClassroomID: classroom.ID,
			Number:      i + 1,
			Date:        d,
			StartsAt:    start,
			EndsAt:      end,
			State:       models.SessionScheduled,
		}
	}
	return sessions
}

func TestBuildReschedulePlan(t *testing.T) {
	t.Parallel()

	t.Run("cascades over a holiday", func(t *testing.T) {
		t.Parallel()

		classroom := testClassroom()
		sessions := testSessions(t, classroom)
		holidays := NewHolidaySet([]time.Time{date(2025, time.January, 1)})
		anchor := date(2025, time.January, 1)

		plan, err := BuildReschedulePlan(classroom, sessions, "ses-2", anchor,
			"instructor travel", "admin@sfd.com", holidays, testZone)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		// The anchor is applied verbatim even though it is a holiday.
		if !plan.Target.Date.Equal(anchor) {
			t.Fatalf("expected target on %v, got %v", anchor, plan.Target.Date)
		}
		wantStart := time.Date(2025, time.January, 1, 19, 0, 0, 0, testZone)
		if !plan.Target.StartsAt.Equal(wantStart) {
			t.Fatalf("expected target start %v, got %v", wantStart, plan.Target.StartsAt)
		}

		// Session #3 lands on Thursday 2025-01-02, session #4 on Tuesday 2025-01-07.
		if len(plan.Subsequent) != 2 {
			t.Fatalf("expected 2 subsequent updates, got %d", len(plan.Subsequent))
		}
		if want := date(2025, time.January, 2); !plan.Subsequent[0].Date.Equal(want) {
			t.Fatalf("expected session 3 on %v, got %v", want, plan.Subsequent[0].Date)
		}
		if want := date(2025, time.January, 7); !plan.Subsequent[1].Date.Equal(want) {
			t.Fatalf("expected session 4 on %v, got %v", want, plan.Subsequent[1].Date)
		}

		// Audit record captures the original state of the target.
		incident := plan.Incident
		if incident.Kind != models.IncidentReschedule {
			t.Fatalf("expected reschedule incident, got %q", incident.Kind)
		}
		if incident.SessionNumber != 2 {
			t.Fatalf("expected session number 2, got %d", incident.SessionNumber)
		}
		if want := date(2024, time.December, 26); !incident.OriginalDate.Equal(want) {
			t.Fatalf("expected original date %v, got %v", want, incident.OriginalDate)
		}
		if incident.NewDate == nil || !incident.NewDate.Equal(anchor) {
			t.Fatalf("expected new date %v, got %v", anchor, incident.NewDate)
		}
		if plan.SessionsVersion != classroom.SessionsVersion {
			t.Fatalf("expected plan to carry version %d, got %d",
				classroom.SessionsVersion, plan.SessionsVersion)
		}
	})

	t.Run("produced dates are monotonic, on allowed weekdays, never holidays", func(t *testing.T) {
		t.Parallel()

		classroom := testClassroom()
		classroom.Frequency = "Lun-Mié-Vie (3 veces/semana)"
		var sessions []models.ClassSession
		day := date(2025, time.February, 3)
		for i := 0; i < 10; i++ {
			sessions = append(sessions, models.ClassSession{
				ID:          "s-" + string(rune('a'+i)),
				ClassroomID: classroom.ID,
				Number:      i + 1,
				Date:        day,
				State:       models.SessionScheduled,
			})
			day = day.AddDate(0, 0, 2)
		}
		holidays := NewHolidaySet([]time.Time{
			date(2025, time.February, 12),
			date(2025, time.February, 14),
			date(2025, time.February, 24),
		})

		plan, err := BuildReschedulePlan(classroom, sessions, "s-c",
			date(2025, time.February, 10), "venue conflict", "admin@sfd.com", holidays, testZone)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		allowed := map[time.Weekday]bool{time.Monday: true, time.Wednesday: true, time.Friday: true}
		previous := plan.Target.Date
		for _, update := range plan.Subsequent {
			if !update.Date.After(previous) {
				t.Fatalf("expected strictly increasing dates, got %v after %v", update.Date, previous)
			}
			if !allowed[update.Date.Weekday()] {
				t.Fatalf("session %d landed on %v", update.Number, update.Date.Weekday())
			}
			if holidays.Contains(update.Date) {
				t.Fatalf("session %d landed on holiday %v", update.Number, update.Date)
			}
			previous = update.Date
		}
	})

	t.Run("rescheduling the last session cascades nothing", func(t *testing.T) {
		t.Parallel()

		classroom := testClassroom()
		sessions := testSessions(t, classroom)

		plan, err := BuildReschedulePlan(classroom, sessions, "ses-4",
			date(2025, time.January, 9), "moved once", "admin@sfd.com", NewHolidaySet(nil), testZone)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(plan.Subsequent) != 0 {
			t.Fatalf("expected no subsequent updates, got %d", len(plan.Subsequent))
		}
	})

	t.Run("replanning with identical inputs yields an identical plan", func(t *testing.T) {
		t.Parallel()

		classroom := testClassroom()
		sessions := testSessions(t, classroom)
		holidays := NewHolidaySet([]time.Time{date(2025, time.January, 1)})
		anchor := date(2025, time.January, 1)

		first, err := BuildReschedulePlan(classroom, sessions, "ses-2", anchor,
			"instructor travel", "admin@sfd.com", holidays, testZone)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := BuildReschedulePlan(classroom, sessions, "ses-2", anchor,
			"instructor travel", "admin@sfd.com", holidays, testZone)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("expected identical plans\nfirst: %+v\nsecond: %+v", first, second)
		}
	})

	t.Run("does not mutate the input session list", func(t *testing.T) {
		t.Parallel()

		classroom := testClassroom()
		sessions := testSessions(t, classroom)
		originalDates := make([]time.Time, len(sessions))
		for i, s := range sessions {
			originalDates[i] = s.Date
		}

		_, err := BuildReschedulePlan(classroom, sessions, "ses-2",
			date(2025, time.January, 1), "instructor travel", "admin@sfd.com",
			NewHolidaySet(nil), testZone)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		for i, s := range sessions {
			if !s.Date.Equal(originalDates[i]) {
				t.Fatalf("session %d date changed from %v to %v", s.Number, originalDates[i], s.Date)
			}
		}
	})

	t.Run("aborts on unknown frequency before planning anything", func(t *testing.T) {
		t.Parallel()

		classroom := testClassroom()
		classroom.Frequency = "Cada luna llena"
		sessions := testSessions(t, testClassroom())

		plan, err := BuildReschedulePlan(classroom, sessions, "ses-2",
			date(2025, time.January, 1), "reason", "admin@sfd.com", NewHolidaySet(nil), testZone)
		if !errors.Is(err, ErrUnknownFrequency) {
			t.Fatalf("expected ErrUnknownFrequency, got %v", err)
		}
		if plan != nil {
			t.Fatal("expected no plan on configuration error")
		}
	})

	t.Run("aborts when the classroom has no wall-clock times", func(t *testing.T) {
		t.Parallel()

		classroom := testClassroom()
		classroom.EndTime = ""
		sessions := testSessions(t, testClassroom())

		_, err := BuildReschedulePlan(classroom, sessions, "ses-2",
			date(2025, time.January, 1), "reason", "admin@sfd.com", NewHolidaySet(nil), testZone)
		if !errors.Is(err, ErrMissingTimeOfDay) {
			t.Fatalf("expected ErrMissingTimeOfDay, got %v", err)
		}
	})

	t.Run("aborts when the session is not in the classroom", func(t *testing.T) {
		t.Parallel()

		classroom := testClassroom()
		sessions := testSessions(t, classroom)

		_, err := BuildReschedulePlan(classroom, sessions, "ses-99",
			date(2025, time.January, 1), "reason", "admin@sfd.com", NewHolidaySet(nil), testZone)
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("aborts wholesale when the calendar cannot fit the cascade", func(t *testing.T) {
		t.Parallel()

		classroom := testClassroom()
		sessions := testSessions(t, classroom)

		// Block every Tue/Thu for well past the search window.
		var blocked []time.Time
		from := date(2025, time.January, 1)
		for d := from; d.Before(from.AddDate(0, 0, 90)); d = d.AddDate(0, 0, 1) {
			if d.Weekday() == time.Tuesday || d.Weekday() == time.Thursday {
				blocked = append(blocked, d)
			}
		}

		plan, err := BuildReschedulePlan(classroom, sessions, "ses-2", from,
			"reason", "admin@sfd.com", NewHolidaySet(blocked), testZone)
		if !errors.Is(err, ErrSearchExhausted) {
			t.Fatalf("expected ErrSearchExhausted, got %v", err)
		}
		if plan != nil {
			t.Fatal("expected no partial plan on search exhaustion")
		}
	})
}

func TestBuildReplacementPlan(t *testing.T) {
	t.Parallel()

	t.Run("plans a single-session substitution", func(t *testing.T) {
		t.Parallel()

		classroom := testClassroom()
		sessions := testSessions(t, classroom)

		plan, err := BuildReplacementPlan(classroom, sessions, "ses-3",
			"docente-7", "original instructor is ill", "admin@sfd.com", testZone)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if plan.SessionID != "ses-3" || plan.SessionNumber != 3 {
			t.Fatalf("expected session ses-3/#3, got %s/#%d", plan.SessionID, plan.SessionNumber)
		}
		if plan.SubstituteInstructorID != "docente-7" {
			t.Fatalf("expected substitute docente-7, got %s", plan.SubstituteInstructorID)
		}

		incident := plan.Incident
		if incident.Kind != models.IncidentReplacement {
			t.Fatalf("expected replacement incident, got %q", incident.Kind)
		}
		if incident.NewDate != nil {
			t.Fatalf("replacement incident must not carry a new date, got %v", incident.NewDate)
		}
		if incident.SubstituteInstructorID == nil || *incident.SubstituteInstructorID != "docente-7" {
			t.Fatal("expected incident to record the substitute instructor")
		}
		if want := date(2024, time.December, 31); !incident.OriginalDate.Equal(want) {
			t.Fatalf("expected original date %v, got %v", want, incident.OriginalDate)
		}
	})

	t.Run("aborts when the session is not in the classroom", func(t *testing.T) {
		t.Parallel()

		classroom := testClassroom()
		sessions := testSessions(t, classroom)

		_, err := BuildReplacementPlan(classroom, sessions, "ses-99",
			"docente-7", "reason", "admin@sfd.com", testZone)
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}
