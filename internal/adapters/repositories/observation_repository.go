package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iss-display-gadget/internal/domain"
	"time"
)

// SQL-backed implementation of the ObservationRepository port.
// Driver selects the placeholder dialect ("sqlite" or "postgres").
type SQLObservationRepository struct {
	DB     *sql.DB
	Driver string
}

func NewSQLObservationRepository(db *sql.DB, driver string) *SQLObservationRepository {
	return &SQLObservationRepository{DB: db, Driver: driver}
}

// Append one observation.
func (s *SQLObservationRepository) Record(ctx context.Context, o domain.Observation) error {
	if s.DB == nil {
		return errors.New("observation repository: DB is nil")
	}

	query := `
	INSERT INTO iss_observations (
		observed_at,
		lat,
		lon,
		distance_miles,
		country,
		city
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	if s.Driver == "postgres" {
		query = `
	INSERT INTO iss_observations (observed_at, lat, lon, distance_miles, country, city)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	}

	observedAt := o.ObservedAt
	if observedAt.IsZero() {
		observedAt = time.Now()
	}

	_, err := s.DB.ExecContext(ctx, query,
		observedAt.UnixMilli(), o.Position.Lat, o.Position.Lon, o.DistanceMiles, o.Country, o.City)
	if err != nil {
		return fmt.Errorf("record observation: insert: %w", err)
	}

	return nil
}

// Return the most recent observations, newest first.
func (s *SQLObservationRepository) Recent(ctx context.Context, limit int) ([]domain.Observation, error) {
	if s.DB == nil {
		return nil, errors.New("observation repository: DB is nil")
	}

	if limit <= 0 {
		return []domain.Observation{}, nil
	}

	query := `
	SELECT
		id,
		observed_at,
		lat,
		lon,
		distance_miles,
		country,
		city
	FROM iss_observations
	ORDER BY observed_at DESC, id DESC
	LIMIT ?;
	`
	if s.Driver == "postgres" {
		query = `
	SELECT id, observed_at, lat, lon, distance_miles, country, city
	FROM iss_observations
	ORDER BY observed_at DESC, id DESC
	LIMIT $1;
	`
	}

	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent observations: query iss_observations table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Observation, 0, limit)
	for rows.Next() {
		var o domain.Observation
		var observedAt int64
		if err := rows.Scan(&o.ID, &observedAt, &o.Position.Lat, &o.Position.Lon, &o.DistanceMiles, &o.Country, &o.City); err != nil {
			return nil, fmt.Errorf("recent observations: scan row: %w", err)
		}
		o.ObservedAt = time.UnixMilli(observedAt).UTC()
		out = append(out, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent observations: row iteration: %w", err)
	}

	return out, nil
}
