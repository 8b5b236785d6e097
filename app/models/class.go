package models

import "time"

// Class always references exactly one teacher; the student membership set may
// be empty but is always present on loaded records.
type Class struct {
	ID        string     `json:"id" validate:"required,uuid"`
	Name      string     `json:"name" validate:"required"`
	TeacherID string     `json:"teacher_id" validate:"required,uuid"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Teacher   *Teacher   `json:"teacher,omitempty"`
	Students  []*Student `json:"students"`
}
