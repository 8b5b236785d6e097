package database

import (
	"database/sql"
	"fmt"
	"time"

	"schooldesk/app/models"
)

const assignmentColumns = `id, name, description, deadline, created_at, updated_at`

func scanAssignment(row rowScanner) (*models.Assignment, error) {
	a := &models.Assignment{}
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Deadline, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func CreateAssignment(db *sql.DB, a *models.Assignment) error {
	query := `INSERT INTO assignments (name, description, deadline)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, a.Name, a.Description, a.Deadline).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetAssignmentsPage returns one newest-first page, optionally narrowed by a
// case-insensitive keyword over name and description, plus the total count
// for the same filter.
func GetAssignmentsPage(db *sql.DB, page, pageSize int, keyword string) ([]*models.Assignment, int, error) {
	where := ``
	args := []any{}
	if keyword != "" {
		where = `WHERE name ILIKE $1 OR description ILIKE $1`
		args = append(args, likePattern(keyword))
	}

	var total int
	err := db.QueryRow(`SELECT COUNT(*) FROM assignments `+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+assignmentColumns+` FROM assignments `+where+`
			 ORDER BY created_at DESC
			 LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offsetFor(page, pageSize))

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	assignments := []*models.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, 0, err
		}
		assignments = append(assignments, a)
	}
	return assignments, total, rows.Err()
}

func GetAssignmentByID(db *sql.DB, id string) (*models.Assignment, error) {
	if err := validID("Assignment", id); err != nil {
		return nil, err
	}

	a, err := scanAssignment(db.QueryRow(`SELECT `+assignmentColumns+` FROM assignments WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, notFound("Assignment", id)
	}
	return a, err
}

// AssignmentUpdate is the allow-list of fields an assignment patch may touch.
type AssignmentUpdate struct {
	Name        *string
	Description *string
	Deadline    *time.Time
}

func UpdateAssignment(db *sql.DB, id string, upd AssignmentUpdate) (*models.Assignment, error) {
	if err := validID("Assignment", id); err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists string
	err = tx.QueryRow(`SELECT id FROM assignments WHERE id = $1 FOR UPDATE`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, notFound("Assignment", id)
	}
	if err != nil {
		return nil, err
	}

	query := `UPDATE assignments SET
				name = COALESCE($2, name),
				description = COALESCE($3, description),
				deadline = COALESCE($4, deadline),
				updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + assignmentColumns

	a, err := scanAssignment(tx.QueryRow(query, id, upd.Name, upd.Description, upd.Deadline))
	if err != nil {
		return nil, err
	}

	return a, tx.Commit()
}

func DeleteAssignment(db *sql.DB, id string) error {
	if err := validID("Assignment", id); err != nil {
		return err
	}

	res, err := db.Exec(`DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("Assignment", id)
	}
	return nil
}
