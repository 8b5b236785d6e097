package database

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// NotFoundError reports a missing entity (or a missing related entity that a
// write depended on) by type and id.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

func notFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ErrStudentNotInClass distinguishes "class exists but the student is not a
// member" from a missing class.
var ErrStudentNotInClass = errors.New("student is not in the class")

// ErrEmailTaken reports a unique violation on the email column of students or
// teachers.
var ErrEmailTaken = errors.New("email is already registered")

// ErrTeacherHasClasses blocks deleting a teacher that still owns classes;
// every class must keep exactly one teacher.
var ErrTeacherHasClasses = errors.New("teacher is still assigned to a class")

// validID rejects malformed ids before they reach the store, so a garbage
// path parameter reads as a missing record instead of a driver error.
func validID(entity, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return notFound(entity, id)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
