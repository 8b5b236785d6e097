package models

import "time"

// Assignment is a standalone record with no foreign keys; listings are
// ordered newest first by creation time.
type Assignment struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"desc" validate:"required"`
	Deadline    time.Time `json:"deadline" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
