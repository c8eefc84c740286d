package main

import (
	"context"
	"database/sql"
	"iss-display-gadget/internal/adapters/repositories"
	"iss-display-gadget/internal/config"
	"iss-display-gadget/internal/platform/db"
	"log"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool prepares the observation database and optionally loads a JSON
// export of past observations into it.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver := config.Get("STORAGE_DRIVER", db.DriverSQLite)
	dsn := config.Get("STORAGE_DSN", "data/iss.db")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("STORAGE_DSN is required")
	}

	database, err := db.Open(driver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	importPath := config.Get("IMPORT_PATH", "")
	if err := initAndImport(database, driver, importPath); err != nil {
		log.Fatal(err)
	}
}

func initAndImport(database *sql.DB, driver, importPath string) error {
	log.Printf("Initializing database schema driver=%s...", driver)
	if err := repositories.InitSchema(database, driver); err != nil {
		return err
	}
	log.Println("Schema ready.")

	if importPath == "" {
		return nil
	}

	log.Printf("Importing observations path=%s...", importPath)
	repo := repositories.NewSQLObservationRepository(database, driver)
	n, err := repositories.ImportFromJSON(context.Background(), repo, importPath)
	if err != nil {
		return err
	}
	log.Printf("Import complete rows=%d.", n)

	return nil
}
