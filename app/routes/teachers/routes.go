package teachers

import (
	"database/sql"

	"schooldesk/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTeachersRoutes(app *fiber.App, db *sql.DB, tokens *auth.TokenIssuer) {
	api := app.Group("/teachers")

	api.Get("/", GetTeachersAPI(db))
	api.Post("/register", RegisterTeacherAPI(db))
	api.Post("/login", LoginTeacherAPI(db, tokens))

	api.Get("/:id", GetTeacherByIDAPI(db))
	api.Get("/:id/classes", GetTeacherClassesAPI(db))
	api.Put("/:id", auth.RequireAuth(tokens), UpdateTeacherAPI(db))
	api.Delete("/:id", auth.RequireAuth(tokens), DeleteTeacherAPI(db))
}
