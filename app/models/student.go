package models

import "time"

type Student struct {
	ID         string    `json:"id" validate:"required,uuid"`
	Name       string    `json:"name" validate:"required"`
	LastName   string    `json:"last_name" validate:"required"`
	Email      string    `json:"email" validate:"required,email"`
	Password   string    `json:"-" validate:"required,min=8"`
	Sex        string    `json:"sex,omitempty"`
	IsExternal bool      `json:"is_external"`
	IsExpelled bool      `json:"is_expelled"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
