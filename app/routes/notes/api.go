package notes

import (
	"database/sql"

	"schooldesk/app/database"
	"schooldesk/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type createRequest struct {
	Name      string `json:"name" validate:"required"`
	Content   string `json:"content" validate:"required"`
	StudentID string `json:"student_id" validate:"required,uuid"`
}

type updateRequest struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
}

func GetNotesAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := database.GetAllNotes(db)
		if err != nil {
			return err
		}
		return c.JSON(notes)
	}
}

func GetStudentNotesAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := database.GetNotesByStudent(db, c.Params("studentId"))
		if err != nil {
			return err
		}
		return c.JSON(notes)
	}
}

// GetStudentNotesPageAPI serves one page of a student's notes
// (?page=1&limit=10) with the pager totals.
func GetStudentNotesPageAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)
		if page < 1 || limit < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "page and limit must be positive")
		}

		notes, total, err := database.GetStudentNotesPage(db, c.Params("studentId"), page, limit)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"notes":      notes,
			"totalCount": total,
			"totalPages": database.TotalPages(total, limit),
		})
	}
}

func SearchStudentNotesAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := database.SearchStudentNotes(db, c.Params("studentId"), c.Query("query"))
		if err != nil {
			return err
		}
		return c.JSON(notes)
	}
}

func GetNoteByIDAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := database.GetNoteByID(db, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(note)
	}
}

func CreateNoteAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		note := &models.Note{
			Name:      req.Name,
			Content:   req.Content,
			StudentID: req.StudentID,
		}
		if err := database.CreateNote(db, note); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(note)
	}
}

func UpdateNoteAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		note, err := database.UpdateNote(db, c.Params("id"), database.NoteUpdate{
			Name:    req.Name,
			Content: req.Content,
		})
		if err != nil {
			return err
		}

		return c.JSON(note)
	}
}

func DeleteNoteAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteNote(db, c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Note deleted successfully"})
	}
}
