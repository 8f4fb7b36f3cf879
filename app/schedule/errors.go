package schedule

import "errors"

var (
	// ErrUnknownFrequency means the classroom's frequency label is not in the
	// recurrence table. Fatal before any plan element is produced.
	ErrUnknownFrequency = errors.New("unknown frequency")

	// ErrSearchExhausted means no allowed, holiday-free weekday exists within
	// the search window. Fatal for the whole cascade, never a per-session skip.
	ErrSearchExhausted = errors.New("no valid date found within search window")

	// ErrMissingTimeOfDay means the classroom has no start or end wall-clock
	// time configured.
	ErrMissingTimeOfDay = errors.New("classroom has no start/end time configured")

	// ErrInvalidTimeOfDay means a wall-clock string is not in HH:MM form.
	ErrInvalidTimeOfDay = errors.New("invalid time of day")

	// ErrSessionNotFound means the targeted session is not part of the
	// classroom's session list.
	ErrSessionNotFound = errors.New("session not found in classroom")
)
