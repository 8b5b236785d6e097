package classes

import (
	"database/sql"

	"schooldesk/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupClassesRoutes(app *fiber.App, db *sql.DB, tokens *auth.TokenIssuer) {
	api := app.Group("/classes")
	protected := auth.RequireAuth(tokens)

	api.Get("/", GetClassesAPI(db))
	api.Get("/:id", GetClassByIDAPI(db))
	api.Post("/", protected, CreateClassAPI(db))
	api.Post("/:id/students", protected, AddStudentsAPI(db))
	api.Patch("/:id/teacher", protected, AssignTeacherAPI(db))
	api.Patch("/:id", protected, UpdateClassAPI(db))
	api.Delete("/:id/students/:studentId", protected, RemoveStudentAPI(db))
	api.Delete("/:id/students", protected, RemoveAllStudentsAPI(db))
	api.Delete("/:id", protected, DeleteClassAPI(db))
}
