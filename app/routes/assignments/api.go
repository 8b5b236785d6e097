package assignments

import (
	"database/sql"
	"time"

	"schooldesk/app/database"
	"schooldesk/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type createRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"desc" validate:"required"`
	Deadline    time.Time `json:"deadline" validate:"required"`
}

type updateRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"desc"`
	Deadline    *time.Time `json:"deadline"`
}

// GetAssignmentsAPI serves one newest-first page (?page=1&limit=10), with an
// optional ?keyword= filter matched against names and descriptions.
func GetAssignmentsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)
		if page < 1 || limit < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "page and limit must be positive")
		}

		assignments, total, err := database.GetAssignmentsPage(db, page, limit, c.Query("keyword"))
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"data":  assignments,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}

func GetAssignmentByIDAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		assignment, err := database.GetAssignmentByID(db, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(assignment)
	}
}

func CreateAssignmentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		assignment := &models.Assignment{
			Name:        req.Name,
			Description: req.Description,
			Deadline:    req.Deadline,
		}
		if err := database.CreateAssignment(db, assignment); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(assignment)
	}
}

func UpdateAssignmentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		assignment, err := database.UpdateAssignment(db, c.Params("id"), database.AssignmentUpdate{
			Name:        req.Name,
			Description: req.Description,
			Deadline:    req.Deadline,
		})
		if err != nil {
			return err
		}

		return c.JSON(assignment)
	}
}

func DeleteAssignmentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteAssignment(db, c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Assignment deleted successfully"})
	}
}
