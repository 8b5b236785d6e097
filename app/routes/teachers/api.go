package teachers

import (
	"database/sql"

	"schooldesk/app/database"
	"schooldesk/app/models"
	"schooldesk/app/routes/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func GetTeachersAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teachers, err := database.GetAllTeachers(db)
		if err != nil {
			return err
		}
		return c.JSON(teachers)
	}
}

func GetTeacherByIDAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teacher, err := database.GetTeacherByID(db, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(teacher)
	}
}

// GetTeacherClassesAPI lists the classes led by one teacher; a teacher with
// no classes gets an empty list, not an error.
func GetTeacherClassesAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		classes, err := database.GetClassesForTeacher(db, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(classes)
	}
}

func RegisterTeacherAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return err
		}

		teacher := &models.Teacher{
			Name:     req.Name,
			Email:    req.Email,
			Password: hash,
		}
		if err := database.CreateTeacher(db, teacher); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(teacher)
	}
}

func LoginTeacherAPI(db *sql.DB, tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		rejected := func() error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		}

		teacher, err := database.GetTeacherByEmail(db, req.Email)
		if err == sql.ErrNoRows {
			return rejected()
		}
		if err != nil {
			return err
		}
		if !auth.CheckPasswordHash(req.Password, teacher.Password) {
			return rejected()
		}

		token, err := tokens.Generate(teacher.ID, teacher.Email, teacher.Role)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{"access_token": token})
	}
}

func UpdateTeacherAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		teacher, err := database.UpdateTeacher(db, c.Params("id"), database.TeacherUpdate{
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			return err
		}

		return c.JSON(teacher)
	}
}

func DeleteTeacherAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteTeacher(db, c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Teacher deleted successfully"})
	}
}
