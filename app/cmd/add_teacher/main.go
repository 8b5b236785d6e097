package main

import (
	"flag"
	"fmt"
	"log"

	"schooldesk/app/config"
	"schooldesk/app/database"
	"schooldesk/app/models"
	"schooldesk/app/routes/auth"
)

// Seeds a teacher account from the command line, for bootstrapping a fresh
// database before any teacher can register over HTTP.
func main() {
	name := flag.String("name", "", "teacher's full name")
	email := flag.String("email", "", "teacher's email address")
	password := flag.String("password", "", "teacher's password")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		log.Fatal("all of -name, -email and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	teacher := &models.Teacher{
		Name:     *name,
		Email:    *email,
		Password: hash,
	}
	if err := database.CreateTeacher(db, teacher); err != nil {
		log.Fatal("Error creating teacher: ", err)
	}

	fmt.Printf("Teacher created successfully: %s (%s)\n", teacher.Name, teacher.Email)
}
