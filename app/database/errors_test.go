package database

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := notFound("Student", "5f8d7a1e-0000-0000-0000-000000000000")
	want := "Student with ID 5f8d7a1e-0000-0000-0000-000000000000 not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsNotFoundThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading class roster: %w", notFound("Class", "abc"))
	if !IsNotFound(err) {
		t.Error("IsNotFound = false for a wrapped NotFoundError")
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatal("errors.As failed to unwrap NotFoundError")
	}
	if nf.Entity != "Class" {
		t.Errorf("Entity = %q, want %q", nf.Entity, "Class")
	}
}

func TestIsNotFoundOtherErrors(t *testing.T) {
	if IsNotFound(errors.New("boom")) {
		t.Error("IsNotFound = true for an unrelated error")
	}
	if IsNotFound(ErrStudentNotInClass) {
		t.Error("IsNotFound = true for ErrStudentNotInClass")
	}
}

func TestValidID(t *testing.T) {
	if err := validID("Note", "b6f4c5a2-9d1e-4f3a-8c7b-2e5d6a9f0b1c"); err != nil {
		t.Errorf("validID rejected a well-formed UUID: %v", err)
	}

	err := validID("Note", "42")
	if err == nil {
		t.Fatal("validID accepted a malformed ID")
	}
	if !IsNotFound(err) {
		t.Errorf("validID error is %T, want *NotFoundError", err)
	}
}
