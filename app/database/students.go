package database

import (
	"database/sql"

	"schooldesk/app/models"
)

const studentColumns = `id, name, last_name, email, password, sex, is_external, is_expelled, role, created_at, updated_at`

func scanStudent(row rowScanner) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.Name, &s.LastName, &s.Email, &s.Password, &s.Sex,
		&s.IsExternal, &s.IsExpelled, &s.Role, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func collectStudents(rows *sql.Rows) ([]*models.Student, error) {
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// CreateStudent inserts a new student record. The Password field must already
// be hashed by the caller.
func CreateStudent(db *sql.DB, s *models.Student) error {
	if s.Role == "" {
		s.Role = "student"
	}

	query := `INSERT INTO students (name, last_name, email, password, sex, is_external, is_expelled, role)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		s.Name, s.LastName, s.Email, s.Password, s.Sex, s.IsExternal, s.IsExpelled, s.Role,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	if err := validID("Student", id); err != nil {
		return nil, err
	}

	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	s, err := scanStudent(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, notFound("Student", id)
	}
	return s, err
}

func GetStudentByEmail(db *sql.DB, email string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`
	return scanStudent(db.QueryRow(query, email))
}

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return collectStudents(rows)
}

func GetExternalStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE is_external = true ORDER BY created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return collectStudents(rows)
}

func GetExternalStudentByID(db *sql.DB, id string) (*models.Student, error) {
	if err := validID("External student", id); err != nil {
		return nil, err
	}

	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND is_external = true`
	s, err := scanStudent(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, notFound("External student", id)
	}
	return s, err
}

func GetExpelledStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE is_expelled = true ORDER BY created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	return collectStudents(rows)
}

func GetExpelledStudentByID(db *sql.DB, id string) (*models.Student, error) {
	if err := validID("Expelled student", id); err != nil {
		return nil, err
	}

	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1 AND is_expelled = true`
	s, err := scanStudent(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, notFound("Expelled student", id)
	}
	return s, err
}

// StudentUpdate is the allow-list of fields a profile patch may touch. Nil
// fields are left unchanged.
type StudentUpdate struct {
	Name       *string
	LastName   *string
	Email      *string
	Sex        *string
	IsExternal *bool
	IsExpelled *bool
}

// UpdateStudent applies a partial update. The existence check and the write
// run in one transaction so a concurrent delete fails the whole operation.
func UpdateStudent(db *sql.DB, id string, upd StudentUpdate) (*models.Student, error) {
	if err := validID("Student", id); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists string
	err = tx.QueryRow(`SELECT id FROM students WHERE id = $1 FOR UPDATE`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, notFound("Student", id)
	}
	if err != nil {
		return nil, err
	}

	query := `UPDATE students SET
				name = COALESCE($2, name),
				last_name = COALESCE($3, last_name),
				email = COALESCE($4, email),
				sex = COALESCE($5, sex),
				is_external = COALESCE($6, is_external),
				is_expelled = COALESCE($7, is_expelled),
				updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + studentColumns

	s, err := scanStudent(tx.QueryRow(query, id,
		upd.Name, upd.LastName, upd.Email, upd.Sex, upd.IsExternal, upd.IsExpelled,
	))
	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	return s, tx.Commit()
}

// DeleteStudent removes the record physically; the student's notes and class
// memberships go with it via ON DELETE CASCADE.
func DeleteStudent(db *sql.DB, id string) error {
	if err := validID("Student", id); err != nil {
		return err
	}

	res, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("Student", id)
	}
	return nil
}

// GetStudentsPage returns one newest-first page of students plus the total
// count for pagination metadata.
func GetStudentsPage(db *sql.DB, page, pageSize int) ([]*models.Student, int, error) {
	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + studentColumns + ` FROM students
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := db.Query(query, pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, 0, err
	}

	students, err := collectStudents(rows)
	return students, total, err
}

// SearchStudents matches a case-insensitive substring against name, last name
// and email. An empty term returns the full list.
func SearchStudents(db *sql.DB, term string) ([]*models.Student, error) {
	if term == "" {
		return GetAllStudents(db)
	}

	query := `SELECT ` + studentColumns + ` FROM students
			  WHERE name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
			  ORDER BY created_at DESC`
	rows, err := db.Query(query, likePattern(term))
	if err != nil {
		return nil, err
	}
	return collectStudents(rows)
}
