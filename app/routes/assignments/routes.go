package assignments

import (
	"database/sql"

	"schooldesk/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAssignmentsRoutes(app *fiber.App, db *sql.DB, tokens *auth.TokenIssuer) {
	api := app.Group("/assignments")
	protected := auth.RequireAuth(tokens)

	api.Get("/", GetAssignmentsAPI(db)) // ?page=1&limit=10&keyword=term
	api.Get("/:id", GetAssignmentByIDAPI(db))
	api.Post("/", protected, CreateAssignmentAPI(db))
	api.Patch("/:id", protected, UpdateAssignmentAPI(db))
	api.Delete("/:id", protected, DeleteAssignmentAPI(db))
}
