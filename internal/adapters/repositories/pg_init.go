package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"smart-routing-service/internal/geo"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWilayasQuery := `
	CREATE TABLE IF NOT EXISTS wilayas (
		code INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		southern BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createRoutePlansQuery := `
	CREATE TABLE IF NOT EXISTS route_plans (
		plan_id UUID PRIMARY KEY,
		driver_wilaya TEXT NOT NULL,
		stops_count INTEGER NOT NULL,
		total_distance_km DOUBLE PRECISION NOT NULL,
		total_estimated_minutes INTEGER NOT NULL,
		response JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_plans_created_at
	ON route_plans(created_at DESC);
	`

	statements := []string{
		createWilayasQuery,
		createRoutePlansQuery,
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

// Populate the wilayas reference table from the static in-process table.
// Rows are upserted so re-running against an existing database is safe.
func SeedWilayas(db *sql.DB) error {
	if db == nil {
		return errors.New("seed wilayas: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed wilayas: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO wilayas (code, name, lat, lng, southern)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (code) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		southern = EXCLUDED.southern;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed wilayas: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range geo.All() {
		if _, err := stmt.Exec(w.Code, w.Name, w.Coords.Lat, w.Coords.Lng, w.Southern); err != nil {
			return fmt.Errorf("seed wilayas: insert code=%d: %w", w.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed wilayas: commit tx: %w", err)
	}

	return nil
}
