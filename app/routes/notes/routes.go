package notes

import (
	"database/sql"

	"schooldesk/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupNotesRoutes(app *fiber.App, db *sql.DB, tokens *auth.TokenIssuer) {
	api := app.Group("/notes")
	protected := auth.RequireAuth(tokens)

	api.Get("/", GetNotesAPI(db))
	api.Get("/student/:studentId/paginated", GetStudentNotesPageAPI(db)) // ?page=1&limit=10
	api.Get("/student/:studentId/search", SearchStudentNotesAPI(db))     // ?query=term
	api.Get("/student/:studentId", GetStudentNotesAPI(db))
	api.Get("/:id", GetNoteByIDAPI(db))
	api.Post("/", protected, CreateNoteAPI(db))
	api.Put("/:id", protected, UpdateNoteAPI(db))
	api.Delete("/:id", protected, DeleteNoteAPI(db))
}
