package students

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
	Name       string `json:"name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Sex        string `json:"sex"`
	IsExternal bool   `json:"is_external"`
	IsExpelled bool   `json:"is_expelled"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name       *string `json:"name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Sex        *string `json:"sex"`
	IsExternal *bool   `json:"is_external"`
	IsExpelled *bool   `json:"is_expelled"`
}

func GetStudentsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := database.GetAllStudents(db)
		if err != nil {
			return err
		}
		return c.JSON(students)
	}
}

func GetExternalStudentsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := database.GetExternalStudents(db)
		if err != nil {
			return err
		}
		return c.JSON(students)
	}
}

func GetExpelledStudentsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := database.GetExpelledStudents(db)
		if err != nil {
			return err
		}
		return c.JSON(students)
	}
}

// GetStudentsPageAPI serves one page of students (?page=1&limit=10) together
// with the total row and page counts for the pager.
func GetStudentsPageAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		limit := c.QueryInt("limit", 10)
		if page < 1 || limit < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "page and limit must be positive")
		}

		students, total, err := database.GetStudentsPage(db, page, limit)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"students":    students,
			"total_count": total,
			"total_pages": database.TotalPages(total, limit),
		})
	}
}

func SearchStudentsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := database.SearchStudents(db, c.Query("query"))
		if err != nil {
			return err
		}
		return c.JSON(students)
	}
}

func GetStudentByIDAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := database.GetStudentByID(db, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(student)
	}
}

func GetExternalStudentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := database.GetExternalStudentByID(db, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(student)
	}
}

func GetExpelledStudentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := database.GetExpelledStudentByID(db, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(student)
	}
}

func RegisterStudentAPI(db *sql.DB) fiber.Handler {
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

		student := &models.Student{
			Name:       req.Name,
			LastName:   req.LastName,
			Email:      req.Email,
			Password:   hash,
			Sex:        req.Sex,
			IsExternal: req.IsExternal,
			IsExpelled: req.IsExpelled,
		}
		if err := database.CreateStudent(db, student); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(student)
	}
}

// LoginStudentAPI exchanges valid credentials for a bearer token. Unknown
// emails and wrong passwords produce the same response, so callers cannot
// probe which addresses are registered.
func LoginStudentAPI(db *sql.DB, tokens *auth.TokenIssuer) fiber.Handler {
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

		student, err := database.GetStudentByEmail(db, req.Email)
		if err == sql.ErrNoRows {
			return rejected()
		}
		if err != nil {
			return err
		}
		if !auth.CheckPasswordHash(req.Password, student.Password) {
			return rejected()
		}

		token, err := tokens.Generate(student.ID, student.Email, student.Role)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{"access_token": token})
	}
}

func GetProfileAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := database.GetStudentByID(db, c.Locals("user_id").(string))
		if err != nil {
			return err
		}
		return c.JSON(student)
	}
}

func UpdateStudentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		student, err := database.UpdateStudent(db, c.Params("id"), database.StudentUpdate{
			Name:       req.Name,
			LastName:   req.LastName,
			Email:      req.Email,
			Sex:        req.Sex,
			IsExternal: req.IsExternal,
			IsExpelled: req.IsExpelled,
		})
		if err != nil {
			return err
		}

		return c.JSON(student)
	}
}

func DeleteStudentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteStudent(db, c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Student deleted successfully"})
	}
}
