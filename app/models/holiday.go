package models

import "time"

// Holiday represents a calendar date excluded from session scheduling.
type Holiday struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
