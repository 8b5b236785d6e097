package classes

import "testing"

func TestAddStudentsRequestValidation(t *testing.T) {
	valid := addStudentsRequest{
		StudentIDs: []string{"b6f4c5a2-9d1e-4f3a-8c7b-2e5d6a9f0b1c"},
	}
	if err := validate.Struct(valid); err != nil {
		t.Errorf("valid batch rejected: %v", err)
	}

	if err := validate.Struct(addStudentsRequest{}); err == nil {
		t.Error("missing student_ids accepted")
	}
	if err := validate.Struct(addStudentsRequest{StudentIDs: []string{}}); err == nil {
		t.Error("empty batch accepted")
	}
	if err := validate.Struct(addStudentsRequest{StudentIDs: []string{"42"}}); err == nil {
		t.Error("malformed ID accepted")
	}
}

func TestCreateRequestValidation(t *testing.T) {
	valid := createRequest{
		Name:      "Grade 5 Science",
		TeacherID: "b6f4c5a2-9d1e-4f3a-8c7b-2e5d6a9f0b1c",
	}
	if err := validate.Struct(valid); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	if err := validate.Struct(createRequest{Name: "Grade 5 Science"}); err == nil {
		t.Error("missing teacher_id accepted")
	}
	if err := validate.Struct(createRequest{Name: "Grade 5 Science", TeacherID: "nope"}); err == nil {
		t.Error("malformed teacher_id accepted")
	}
}
