package main

import (
	"flag"
	"log"

	"schooldesk/app/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Applies the versioned migrations under migrations/ against the configured
// database. The server also applies the schema on startup; this tool exists
// for running migrations out of band, and for rolling back.
func main() {
	down := flag.Bool("down", false, "roll back all migrations instead of applying them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	m, err := migrate.New("file://migrations", cfg.URL())
	if err != nil {
		log.Fatal("Failed to initialize migrations:", err)
	}
	defer m.Close()

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && err != migrate.ErrNoChange {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migrations applied successfully")
}
