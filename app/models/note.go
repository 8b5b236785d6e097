package models

import "time"

type Note struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Name      string    `json:"name" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	StudentID string    `json:"student_id" validate:"required,uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
