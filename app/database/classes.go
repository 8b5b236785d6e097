package database

import (
	"database/sql"

	"schooldesk/app/models"

	"github.com/lib/pq"
)

const classColumns = `id, name, teacher_id, created_at, updated_at`

func scanClass(row rowScanner) (*models.Class, error) {
	c := &models.Class{Students: []*models.Student{}}
	err := row.Scan(&c.ID, &c.Name, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// lockClass pins the class row for the rest of the transaction so a
// concurrent delete cannot slip between the existence check and the write.
func lockClass(tx *sql.Tx, classID string) error {
	var id string
	err := tx.QueryRow(`SELECT id FROM classes WHERE id = $1 FOR UPDATE`, classID).Scan(&id)
	if err == sql.ErrNoRows {
		return notFound("Class", classID)
	}
	return err
}

func teacherExists(tx *sql.Tx, teacherID string) error {
	var id string
	err := tx.QueryRow(`SELECT id FROM teachers WHERE id = $1`, teacherID).Scan(&id)
	if err == sql.ErrNoRows {
		return notFound("Teacher", teacherID)
	}
	return err
}

// refreshHasClass recomputes the teacher's has_class flag from the classes
// that actually reference the teacher.
func refreshHasClass(tx *sql.Tx, teacherID string) error {
	_, err := tx.Exec(`UPDATE teachers
		SET has_class = EXISTS (SELECT 1 FROM classes WHERE teacher_id = $1),
		    updated_at = NOW()
		WHERE id = $1`, teacherID)
	return err
}

// loadMemberships attaches the student membership sets to the given classes
// in one query.
func loadMemberships(db *sql.DB, classes []*models.Class) error {
	if len(classes) == 0 {
		return nil
	}

	ids := make([]string, len(classes))
	byID := make(map[string]*models.Class, len(classes))
	for i, c := range classes {
		ids[i] = c.ID
		byID[c.ID] = c
	}

	query := `SELECT cs.class_id, ` + prefixColumns("s", studentColumns) + `
			  FROM class_students cs
			  JOIN students s ON s.id = cs.student_id
			  WHERE cs.class_id = ANY($1)
			  ORDER BY s.created_at DESC`
	rows, err := db.Query(query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var classID string
		s := &models.Student{}
		err := rows.Scan(
			&classID, &s.ID, &s.Name, &s.LastName, &s.Email, &s.Password, &s.Sex,
			&s.IsExternal, &s.IsExpelled, &s.Role, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if c, ok := byID[classID]; ok {
			c.Students = append(c.Students, s)
		}
	}
	return rows.Err()
}

// GetClassByID returns the class with its teacher and full membership set.
func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	if err := validID("Class", id); err != nil {
		return nil, err
	}

	c, err := scanClass(db.QueryRow(`SELECT `+classColumns+` FROM classes WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, notFound("Class", id)
	}
	if err != nil {
		return nil, err
	}

	if c.Teacher, err = GetTeacherByID(db, c.TeacherID); err != nil {
		return nil, err
	}
	if err := loadMemberships(db, []*models.Class{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// GetAllClasses returns every class with teacher and membership included.
func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT ` + prefixColumns("c", classColumns) + `, ` + prefixColumns("t", teacherColumns) + `
			  FROM classes c
			  JOIN teachers t ON t.id = c.teacher_id
			  ORDER BY c.created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		c := &models.Class{Students: []*models.Student{}, Teacher: &models.Teacher{}}
		t := c.Teacher
		err := rows.Scan(
			&c.ID, &c.Name, &c.TeacherID, &c.CreatedAt, &c.UpdatedAt,
			&t.ID, &t.Name, &t.Email, &t.Password, &t.Role, &t.HasClass,
			&t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := loadMemberships(db, classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// CreateClass creates a class bound to an existing teacher. The teacher check
// and the insert share one transaction so the class can never be committed
// against a teacher deleted in between.
func CreateClass(db *sql.DB, name, teacherID string) (*models.Class, error) {
	if err := validID("Teacher", teacherID); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := teacherExists(tx, teacherID); err != nil {
		return nil, err
	}

	c := &models.Class{Name: name, TeacherID: teacherID, Students: []*models.Student{}}
	err = tx.QueryRow(
		`INSERT INTO classes (name, teacher_id) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		name, teacherID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := refreshHasClass(tx, teacherID); err != nil {
		return nil, err
	}

	return c, tx.Commit()
}

// ClassUpdate is the allow-list of fields a class patch may touch.
type ClassUpdate struct {
	Name      *string
	TeacherID *string
}

func UpdateClass(db *sql.DB, id string, upd ClassUpdate) (*models.Class, error) {
	if err := validID("Class", id); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockClass(tx, id); err != nil {
		return nil, err
	}

	var oldTeacherID string
	if err := tx.QueryRow(`SELECT teacher_id FROM classes WHERE id = $1`, id).Scan(&oldTeacherID); err != nil {
		return nil, err
	}

	if upd.TeacherID != nil {
		if err := validID("Teacher", *upd.TeacherID); err != nil {
			return nil, err
		}
		if err := teacherExists(tx, *upd.TeacherID); err != nil {
			return nil, err
		}
	}

	query := `UPDATE classes SET
				name = COALESCE($2, name),
				teacher_id = COALESCE($3, teacher_id),
				updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + classColumns

	c, err := scanClass(tx.QueryRow(query, id, upd.Name, upd.TeacherID))
	if err != nil {
		return nil, err
	}

	if upd.TeacherID != nil && *upd.TeacherID != oldTeacherID {
		if err := refreshHasClass(tx, oldTeacherID); err != nil {
			return nil, err
		}
		if err := refreshHasClass(tx, *upd.TeacherID); err != nil {
			return nil, err
		}
	}

	return c, tx.Commit()
}

// AddStudentsToClass connects the listed students to the class membership
// set. Already-member students are skipped, so the operation is idempotent.
func AddStudentsToClass(db *sql.DB, classID string, studentIDs []string) (*models.Class, error) {
	if err := validID("Class", classID); err != nil {
		return nil, err
	}
	for _, sid := range studentIDs {
		if err := validID("Student", sid); err != nil {
			return nil, err
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockClass(tx, classID); err != nil {
		return nil, err
	}

	// Every listed student must exist before any membership row is written.
	rows, err := tx.Query(`SELECT id FROM students WHERE id = ANY($1)`, pq.Array(studentIDs))
	if err != nil {
		return nil, err
	}
	found := map[string]bool{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		found[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, sid := range studentIDs {
		if !found[sid] {
			return nil, notFound("Student", sid)
		}
	}

	_, err = tx.Exec(
		`INSERT INTO class_students (class_id, student_id)
		 SELECT $1, unnest($2::uuid[])
		 ON CONFLICT DO NOTHING`,
		classID, pq.Array(studentIDs),
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return GetClassByID(db, classID)
}

// RemoveStudentFromClass disconnects one current member. A missing class and
// a student that is not a member fail with distinct errors.
func RemoveStudentFromClass(db *sql.DB, classID, studentID string) (*models.Class, error) {
	if err := validID("Class", classID); err != nil {
		return nil, err
	}
	if err := validID("Student", studentID); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockClass(tx, classID); err != nil {
		return nil, err
	}

	res, err := tx.Exec(
		`DELETE FROM class_students WHERE class_id = $1 AND student_id = $2`,
		classID, studentID,
	)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrStudentNotInClass
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return GetClassByID(db, classID)
}

// RemoveAllStudentsFromClass clears the membership set. Clearing an
// already-empty class succeeds.
func RemoveAllStudentsFromClass(db *sql.DB, classID string) (*models.Class, error) {
	if err := validID("Class", classID); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockClass(tx, classID); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(`DELETE FROM class_students WHERE class_id = $1`, classID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return GetClassByID(db, classID)
}

// AssignTeacher replaces the class's teacher binding. This is a replace, not
// a remove: the class keeps a teacher at all times.
func AssignTeacher(db *sql.DB, classID, teacherID string) (*models.Class, error) {
	if err := validID("Class", classID); err != nil {
		return nil, err
	}
	if err := validID("Teacher", teacherID); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockClass(tx, classID); err != nil {
		return nil, err
	}
	if err := teacherExists(tx, teacherID); err != nil {
		return nil, err
	}

	var oldTeacherID string
	if err := tx.QueryRow(`SELECT teacher_id FROM classes WHERE id = $1`, classID).Scan(&oldTeacherID); err != nil {
		return nil, err
	}

	_, err = tx.Exec(`UPDATE classes SET teacher_id = $2, updated_at = NOW() WHERE id = $1`, classID, teacherID)
	if err != nil {
		return nil, err
	}

	if err := refreshHasClass(tx, teacherID); err != nil {
		return nil, err
	}
	if oldTeacherID != teacherID {
		if err := refreshHasClass(tx, oldTeacherID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return GetClassByID(db, classID)
}

// DeleteClass removes the class and its membership rows, then releases the
// owning teacher's has_class flag if this was the last class.
func DeleteClass(db *sql.DB, id string) error {
	if err := validID("Class", id); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var teacherID string
	err = tx.QueryRow(`SELECT teacher_id FROM classes WHERE id = $1 FOR UPDATE`, id).Scan(&teacherID)
	if err == sql.ErrNoRows {
		return notFound("Class", id)
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM classes WHERE id = $1`, id); err != nil {
		return err
	}
	if err := refreshHasClass(tx, teacherID); err != nil {
		return err
	}

	return tx.Commit()
}
