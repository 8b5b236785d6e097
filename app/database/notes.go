package database

import (
	"database/sql"

	"schooldesk/app/models"
)

const noteColumns = `id, name, content, student_id, created_at, updated_at`

func scanNote(row rowScanner) (*models.Note, error) {
	n := &models.Note{}
	err := row.Scan(&n.ID, &n.Name, &n.Content, &n.StudentID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func collectNotes(rows *sql.Rows) ([]*models.Note, error) {
	defer rows.Close()

	notes := []*models.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func studentExistsTx(tx *sql.Tx, studentID string) error {
	var id string
	err := tx.QueryRow(`SELECT id FROM students WHERE id = $1`, studentID).Scan(&id)
	if err == sql.ErrNoRows {
		return notFound("Student", studentID)
	}
	return err
}

func GetAllNotes(db *sql.DB) ([]*models.Note, error) {
	rows, err := db.Query(`SELECT ` + noteColumns + ` FROM notes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}

// GetNotesByStudent lists a student's notes, newest first. The student must
// exist; a student without notes yields an empty list.
func GetNotesByStudent(db *sql.DB, studentID string) ([]*models.Note, error) {
	if _, err := GetStudentByID(db, studentID); err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT `+noteColumns+` FROM notes WHERE student_id = $1 ORDER BY created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}

func GetNoteByID(db *sql.DB, id string) (*models.Note, error) {
	if err := validID("Note", id); err != nil {
		return nil, err
	}

	n, err := scanNote(db.QueryRow(`SELECT `+noteColumns+` FROM notes WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, notFound("Note", id)
	}
	return n, err
}

// CreateNote inserts a note after verifying, in the same transaction, that
// the referenced student exists.
func CreateNote(db *sql.DB, n *models.Note) error {
	if err := validID("Student", n.StudentID); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := studentExistsTx(tx, n.StudentID); err != nil {
		return err
	}

	err = tx.QueryRow(
		`INSERT INTO notes (name, content, student_id) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		n.Name, n.Content, n.StudentID,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// NoteUpdate is the allow-list of fields a note patch may touch.
type NoteUpdate struct {
	Name    *string
	Content *string
}

func UpdateNote(db *sql.DB, id string, upd NoteUpdate) (*models.Note, error) {
	if err := validID("Note", id); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists string
	err = tx.QueryRow(`SELECT id FROM notes WHERE id = $1 FOR UPDATE`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, notFound("Note", id)
	}
	if err != nil {
		return nil, err
	}

	query := `UPDATE notes SET
				name = COALESCE($2, name),
				content = COALESCE($3, content),
				updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + noteColumns

	n, err := scanNote(tx.QueryRow(query, id, upd.Name, upd.Content))
	if err != nil {
		return nil, err
	}

	return n, tx.Commit()
}

func DeleteNote(db *sql.DB, id string) error {
	if err := validID("Note", id); err != nil {
		return err
	}

	res, err := db.Exec(`DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("Note", id)
	}
	return nil
}

// GetStudentNotesPage returns one newest-first page of a student's notes plus
// the total count.
func GetStudentNotesPage(db *sql.DB, studentID string, page, pageSize int) ([]*models.Note, int, error) {
	if _, err := GetStudentByID(db, studentID); err != nil {
		return nil, 0, err
	}

	var total int
	err := db.QueryRow(`SELECT COUNT(*) FROM notes WHERE student_id = $1`, studentID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(
		`SELECT `+noteColumns+` FROM notes WHERE student_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		studentID, pageSize, offsetFor(page, pageSize),
	)
	if err != nil {
		return nil, 0, err
	}

	notes, err := collectNotes(rows)
	return notes, total, err
}

// SearchStudentNotes matches a case-insensitive substring against a
// student's note names and contents. An empty term returns all of the
// student's notes.
func SearchStudentNotes(db *sql.DB, studentID, term string) ([]*models.Note, error) {
	if term == "" {
		return GetNotesByStudent(db, studentID)
	}
	if _, err := GetStudentByID(db, studentID); err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT `+noteColumns+` FROM notes
		 WHERE student_id = $1 AND (name ILIKE $2 OR content ILIKE $2)
		 ORDER BY created_at DESC`,
		studentID, likePattern(term),
	)
	if err != nil {
		return nil, err
	}
	return collectNotes(rows)
}
