package database

import (
	"database/sql"

	"schooldesk/app/models"
)

const teacherColumns = `id, name, email, password, role, has_class, created_at, updated_at`

func scanTeacher(row rowScanner) (*models.Teacher, error) {
	t := &models.Teacher{}
	err := row.Scan(
		&t.ID, &t.Name, &t.Email, &t.Password, &t.Role, &t.HasClass,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTeacher inserts a new teacher record. The Password field must already
// be hashed by the caller.
func CreateTeacher(db *sql.DB, t *models.Teacher) error {
	if t.Role == "" {
		t.Role = "teacher"
	}

	query := `INSERT INTO teachers (name, email, password, role)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, has_class, created_at, updated_at`

	err := db.QueryRow(query, t.Name, t.Email, t.Password, t.Role).
		Scan(&t.ID, &t.HasClass, &t.CreatedAt, &t.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func GetTeacherByID(db *sql.DB, id string) (*models.Teacher, error) {
	if err := validID("Teacher", id); err != nil {
		return nil, err
	}

	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`
	t, err := scanTeacher(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, notFound("Teacher", id)
	}
	return t, err
}

func GetTeacherByEmail(db *sql.DB, email string) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE email = $1`
	return scanTeacher(db.QueryRow(query, email))
}

func GetAllTeachers(db *sql.DB) ([]*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers ORDER BY name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// GetClassesForTeacher lists the classes a teacher currently owns. The
// teacher must exist; an empty result is not an error.
func GetClassesForTeacher(db *sql.DB, teacherID string) ([]*models.Class, error) {
	if _, err := GetTeacherByID(db, teacherID); err != nil {
		return nil, err
	}

	query := `SELECT id, name, teacher_id, created_at, updated_at
			  FROM classes WHERE teacher_id = $1 ORDER BY name ASC`
	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		c := &models.Class{Students: []*models.Student{}}
		if err := rows.Scan(&c.ID, &c.Name, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// TeacherUpdate is the allow-list of fields a profile patch may touch.
type TeacherUpdate struct {
	Name  *string
	Email *string
}

func UpdateTeacher(db *sql.DB, id string, upd TeacherUpdate) (*models.Teacher, error) {
	if err := validID("Teacher", id); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists string
	err = tx.QueryRow(`SELECT id FROM teachers WHERE id = $1 FOR UPDATE`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, notFound("Teacher", id)
	}
	if err != nil {
		return nil, err
	}

	query := `UPDATE teachers SET
				name = COALESCE($2, name),
				email = COALESCE($3, email),
				updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + teacherColumns

	t, err := scanTeacher(tx.QueryRow(query, id, upd.Name, upd.Email))
	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	return t, tx.Commit()
}

// DeleteTeacher removes the record. The FK on classes.teacher_id blocks the
// delete while the teacher still owns a class.
func DeleteTeacher(db *sql.DB, id string) error {
	if err := validID("Teacher", id); err != nil {
		return err
	}

	res, err := db.Exec(`DELETE FROM teachers WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return ErrTeacherHasClasses
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("Teacher", id)
	}
	return nil
}
