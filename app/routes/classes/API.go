package classes

import (
	"database/sql"

	"schooldesk/app/database"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type createRequest struct {
	Name      string `json:"name" validate:"required"`
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
}

type updateRequest struct {
	Name      *string `json:"name"`
	TeacherID *string `json:"teacher_id" validate:"omitempty,uuid"`
}

type addStudentsRequest struct {
	StudentIDs []string `json:"student_ids" validate:"required,min=1,dive,uuid"`
}

type assignTeacherRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
}

func GetClassesAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		classes, err := database.GetAllClasses(db)
		if err != nil {
			return err
		}
		return c.JSON(classes)
	}
}

func GetClassByIDAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		class, err := database.GetClassByID(db, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(class)
	}
}

func CreateClassAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		class, err := database.CreateClass(db, req.Name, req.TeacherID)
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(class)
	}
}

func UpdateClassAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		class, err := database.UpdateClass(db, c.Params("id"), database.ClassUpdate{
			Name:      req.Name,
			TeacherID: req.TeacherID,
		})
		if err != nil {
			return err
		}

		return c.JSON(class)
	}
}

// AddStudentsAPI enrolls a batch of students. The whole batch is checked and
// applied in one transaction; students already enrolled are skipped.
func AddStudentsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req addStudentsRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		class, err := database.AddStudentsToClass(db, c.Params("id"), req.StudentIDs)
		if err != nil {
			return err
		}

		return c.JSON(class)
	}
}

func RemoveStudentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		class, err := database.RemoveStudentFromClass(db, c.Params("id"), c.Params("studentId"))
		if err != nil {
			return err
		}
		return c.JSON(class)
	}
}

func RemoveAllStudentsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		class, err := database.RemoveAllStudentsFromClass(db, c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(class)
	}
}

func AssignTeacherAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req assignTeacherRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return err
		}

		class, err := database.AssignTeacher(db, c.Params("id"), req.TeacherID)
		if err != nil {
			return err
		}

		return c.JSON(class)
	}
}

func DeleteClassAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteClass(db, c.Params("id")); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Class deleted successfully"})
	}
}
