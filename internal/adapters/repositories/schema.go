package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the database schema for the given driver ("sqlite" or "postgres").
func InitSchema(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	floatType := "REAL"
	switch driver {
	case "sqlite":
	case "postgres":
		idColumn = "id BIGSERIAL PRIMARY KEY"
		floatType = "DOUBLE PRECISION"
	default:
		return fmt.Errorf("init schema: unsupported driver %q", driver)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS reverse_geocode_cache (
        coord_key TEXT PRIMARY KEY,
        country TEXT NOT NULL,
        city TEXT NOT NULL,
        suburb TEXT NOT NULL,
        state TEXT NOT NULL,
        cached_at BIGINT NOT NULL
    );
	`

	createObservationsQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS iss_observations (
		%s,
		observed_at BIGINT NOT NULL,
		lat %s NOT NULL,
		lon %s NOT NULL,
		distance_miles INTEGER NOT NULL,
		country TEXT NOT NULL,
		city TEXT NOT NULL
	);
	`, idColumn, floatType, floatType)

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_iss_observations_observed_at
    ON iss_observations(observed_at);
	`

	statements := []string{
		createGeocodeCacheQuery,
		createObservationsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
