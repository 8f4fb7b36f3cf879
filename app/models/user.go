package models

import "time"

// User is an operator account for the administration panel.
type User struct {
	ID        string     `json:"id" validate:"required,uuid"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"-" validate:"required,min=8"`
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
