package students

import (
	"database/sql"

	"schooldesk/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App, db *sql.DB, tokens *auth.TokenIssuer) {
	api := app.Group("/students")

	// Static paths first so /:id never shadows them
	api.Get("/", GetStudentsAPI(db))
	api.Get("/external", GetExternalStudentsAPI(db))
	api.Get("/expelled", GetExpelledStudentsAPI(db))
	api.Get("/pagination", GetStudentsPageAPI(db))  // ?page=1&limit=10
	api.Get("/search", SearchStudentsAPI(db))       // ?query=term
	api.Get("/profile", auth.RequireAuth(tokens), GetProfileAPI(db))
	api.Post("/register", RegisterStudentAPI(db))
	api.Post("/login", LoginStudentAPI(db, tokens))

	api.Get("/external/:id", GetExternalStudentAPI(db))
	api.Get("/expelled/:id", GetExpelledStudentAPI(db))
	api.Get("/:id", GetStudentByIDAPI(db))
	api.Put("/:id/profile", auth.RequireAuth(tokens), UpdateStudentAPI(db))
	api.Delete("/:id", auth.RequireAuth(tokens), DeleteStudentAPI(db))
}
