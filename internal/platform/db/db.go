package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the storage backend named by driver ("sqlite" or
// "postgres") and verifies the connection.
func Open(driver, dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("openDB: %s dsn is empty", driver)
	}

	switch driver {
	case DriverSQLite:
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dsn, err)
		}

		// An in-memory database lives only as long as its connection.
		db.SetMaxOpenConns(1)

		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dsn, err)
		}
		return db, nil

	case DriverPostgres:
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("openDB: open postgres database: %w", err)
		}

		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(4)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("openDB: unsupported driver %q", driver)
	}
}
