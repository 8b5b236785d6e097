package main

import (
	"errors"
	"log"

	"schooldesk/app/config"
	"schooldesk/app/database"
	"schooldesk/app/routes/assignments"
	"schooldesk/app/routes/auth"
	"schooldesk/app/routes/classes"
	"schooldesk/app/routes/notes"
	"schooldesk/app/routes/students"
	"schooldesk/app/routes/teachers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// customErrorHandler maps storage and validation errors onto JSON responses
// so handlers can return them directly.
func customErrorHandler(c *fiber.Ctx, err error) error {
	var notFound *database.NotFoundError
	if errors.As(err, &notFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFound.Error()})
	}

	switch {
	case errors.Is(err, database.ErrStudentNotInClass):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, database.ErrEmailTaken),
		errors.Is(err, database.ErrTeacherHasClasses):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": invalid.Error()})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	students.SetupStudentsRoutes(app, db, tokens)
	teachers.SetupTeachersRoutes(app, db, tokens)
	classes.SetupClassesRoutes(app, db, tokens)
	notes.SetupNotesRoutes(app, db, tokens)
	assignments.SetupAssignmentsRoutes(app, db, tokens)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	})

	log.Println("Server starting on :" + cfg.AppPort)
	log.Fatal(app.Listen(":" + cfg.AppPort))
}
