package storage

import (
	"database/sql"
	"fmt"
)

// latestSchemaVersion is stored in sqlite's user_version pragma after a
// successful migration.
const latestSchemaVersion = 1

// LatestSchemaVersion returns the schema version this binary expects.
func LatestSchemaVersion() int {
	return latestSchemaVersion
}

// MigrateDB brings the database schema up to the latest version.
// PRE: db is a valid database connection
// POST: All tables exist, user_version equals LatestSchemaVersion
func MigrateDB(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version >= latestSchemaVersion {
		return nil
	}

	if err := InitDB(db); err != nil {
		return err
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", latestSchemaVersion)); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}
	return nil
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS service (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		duration_minutes INTEGER NOT NULL,
		price INTEGER NOT NULL,
		image_file TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS trainer (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		specialization TEXT NOT NULL,
		work_start TEXT NOT NULL,
		work_end TEXT NOT NULL,
		image_file TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS appointment (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		trainer_id TEXT NOT NULL,
		service_id TEXT NOT NULL,
		starts_at TEXT NOT NULL,
		price INTEGER NOT NULL,
		confirmed INTEGER NOT NULL DEFAULT 0,
		rejected INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		FOREIGN KEY (member_id) REFERENCES account(id)
	);

	CREATE INDEX IF NOT EXISTS idx_appointment_member ON appointment(member_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
