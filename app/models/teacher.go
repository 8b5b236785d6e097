package models

import "time"

type Teacher struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"-" validate:"required,min=8"`
	Role      string    `json:"role"`
	HasClass  bool      `json:"has_class"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Classes   []*Class  `json:"classes,omitempty"`
}
