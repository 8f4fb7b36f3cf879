package schedule

import (
	"errors"
	"testing"
	"time"
)

var testZone = time.FixedZone("PET", -5*60*60)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, testZone)
}

func TestNextValidDate(t *testing.T) {
	t.Parallel()

	tueThu := []time.Weekday{time.Tuesday, time.Thursday}

	t.Run("finds the next allowed weekday", func(t *testing.T) {
		t.Parallel()

		// Monday 2025-01-06; next Tue/Thu is Tuesday 2025-01-07.
		got, err := NextValidDate(date(2025, time.January, 6), tueThu, NewHolidaySet(nil))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if want := date(2025, time.January, 7); !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("is strictly after the starting date", func(t *testing.T) {
		t.Parallel()

		// Tuesday itself is allowed but the search starts the next day.
		got, err := NextValidDate(date(2025, time.January, 7), tueThu, NewHolidaySet(nil))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if want := date(2025, time.January, 9); !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("skips holidays", func(t *testing.T) {
		t.Parallel()

		holidays := NewHolidaySet([]time.Time{date(2025, time.January, 7)})
		got, err := NextValidDate(date(2025, time.January, 6), tueThu, holidays)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if want := date(2025, time.January, 9); !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("exhausts when holidays cover every allowed weekday", func(t *testing.T) {
		t.Parallel()

		from := date(2025, time.January, 6)
		var blocked []time.Time
		for d := from; d.Before(from.AddDate(0, 0, 70)); d = d.AddDate(0, 0, 1) {
			if d.Weekday() == time.Tuesday || d.Weekday() == time.Thursday {
				blocked = append(blocked, d)
			}
		}

		_, err := NextValidDate(from, tueThu, NewHolidaySet(blocked))
		if !errors.Is(err, ErrSearchExhausted) {
			t.Fatalf("expected ErrSearchExhausted, got %v", err)
		}
	})

	t.Run("exhausts on an empty weekday set", func(t *testing.T) {
		t.Parallel()

		_, err := NextValidDate(date(2025, time.January, 6), nil, NewHolidaySet(nil))
		if !errors.Is(err, ErrSearchExhausted) {
			t.Fatalf("expected ErrSearchExhausted, got %v", err)
		}
	})
}

func TestWeekdaysFor(t *testing.T) {
	t.Parallel()

	t.Run("resolves a known label", func(t *testing.T) {
		t.Parallel()

		days, err := WeekdaysFor("Martes y Jueves (2 veces/semana)")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := []time.Weekday{time.Tuesday, time.Thursday}
		if len(days) != len(want) {
			t.Fatalf("expected %v, got %v", want, days)
		}
		for i := range want {
			if days[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, days)
			}
		}
	})

	t.Run("resolves legacy short labels", func(t *testing.T) {
		t.Parallel()

		days, err := WeekdaysFor("Sáb y Dom")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(days) != 2 || days[0] != time.Saturday || days[1] != time.Sunday {
			t.Fatalf("unexpected weekdays: %v", days)
		}
	})

	t.Run("rejects an unknown label", func(t *testing.T) {
		t.Parallel()

		_, err := WeekdaysFor("Cada luna llena")
		if !errors.Is(err, ErrUnknownFrequency) {
			t.Fatalf("expected ErrUnknownFrequency, got %v", err)
		}
	})
}

func TestHolidaySet(t *testing.T) {
	t.Parallel()

	set := NewHolidaySet([]time.Time{date(2025, time.January, 1), date(2025, time.May, 1)})

	if !set.Contains(date(2025, time.January, 1)) {
		t.Fatal("expected 2025-01-01 to be a holiday")
	}
	if set.Contains(date(2025, time.January, 2)) {
		t.Fatal("expected 2025-01-02 not to be a holiday")
	}
	// Comparison is by calendar day, not instant.
	if !set.Contains(time.Date(2025, time.May, 1, 18, 30, 0, 0, testZone)) {
		t.Fatal("expected an instant on 2025-05-01 to match the holiday")
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 holidays, got %d", set.Len())
	}
}
