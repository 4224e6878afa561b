package store

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the latest schema version supported by the migrator.
// Every statement below is idempotent, so upgrading from any earlier
// version re-runs the whole block safely.
const SchemaVersion = 2

// Migrate ensures the SQLite schema exists and is upgraded to SchemaVersion.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}

	if current >= SchemaVersion {
		return nil
	}

	// transaction groups schema changes so the migration is applied atomically.
	transaction, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate: begin transaction: %w", err)
	}
	defer func() {
		_ = transaction.Rollback()
	}()

	_, err = transaction.Exec(`
		CREATE TABLE IF NOT EXISTS pet_stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			pet_id TEXT NOT NULL,
			name TEXT NOT NULL,
			fullness REAL, happiness REAL, energy REAL, health REAL,
			discipline REAL, cleanliness REAL,
			care_mistakes INTEGER, coins INTEGER,
			is_alive INTEGER NOT NULL DEFAULT 1,
			birth_time REAL NOT NULL,
			last_update REAL NOT NULL,
			life_stage TEXT NOT NULL,
			state TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate: create pet_stats table: %w", err)
	}

	_, err = transaction.Exec(`
		CREATE TABLE IF NOT EXISTS notified_needs (
			need TEXT PRIMARY KEY,
			last_notified REAL NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate: create notified_needs table: %w", err)
	}

	_, err = transaction.Exec(`
		CREATE TABLE IF NOT EXISTS inventory (
			item_id TEXT PRIMARY KEY,
			quantity INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate: create inventory table: %w", err)
	}

	_, err = transaction.Exec(`
		CREATE TABLE IF NOT EXISTS garden_plots (
			plot_id INTEGER PRIMARY KEY CHECK (plot_id BETWEEN 1 AND 4),
			plant TEXT NOT NULL DEFAULT '',
			planted_at REAL NOT NULL DEFAULT 0,
			watered_at REAL NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate: create garden_plots table: %w", err)
	}

	_, err = transaction.Exec(`INSERT OR IGNORE INTO schema_migrations(version) VALUES (?);`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("migrate: record schema version: %w", err)
	}

	err = transaction.Commit()
	if err != nil {
		return fmt.Errorf("migrate: commit transaction: %w", err)
	}

	return nil
}
