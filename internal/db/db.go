// Package db archives detection runs into a local SQLite database.
// It is used only by the CLI behind the -archive flag; the engine
// itself performs no I/O.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	sql *sql.DB
}

// Open opens (or creates) the archive database at path and runs
// migrations.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate() error {
	version := 0
	d.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := d.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS runs (
				id            INTEGER PRIMARY KEY AUTOINCREMENT,
				timestamp     TEXT NOT NULL,
				name          TEXT NOT NULL,
				strategy      TEXT NOT NULL,
				atoms         INTEGER NOT NULL,
				alpha_spheres INTEGER NOT NULL,
				clusters      INTEGER NOT NULL,
				params        TEXT NOT NULL
			);

			CREATE TABLE IF NOT EXISTS pockets (
				id                 INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id             INTEGER NOT NULL,
				pocket_id          INTEGER NOT NULL,
				center_x           REAL NOT NULL,
				center_y           REAL NOT NULL,
				center_z           REAL NOT NULL,
				n_spheres          INTEGER NOT NULL,
				avg_sphere_radius  REAL NOT NULL,
				volume             REAL NOT NULL,
				residues           TEXT NOT NULL,
				avg_hydrophobicity REAL NOT NULL,
				polar_frac         REAL NOT NULL,
				solvent_exposure   REAL NOT NULL,
				druggability       REAL NOT NULL
			);

			INSERT INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("schema v1: %w", err)
		}
	}
	return nil
}
