package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order; PRAGMA user_version records how many
// have run. Append new steps, never edit shipped ones.
var migrations = [][]string{
	// 1: simulations and chat messages
	{
		`CREATE TABLE IF NOT EXISTS simulations (
			id          TEXT PRIMARY KEY,
			short_id    TEXT NOT NULL DEFAULT '',
			title       TEXT NOT NULL,
			client      TEXT NOT NULL DEFAULT '',
			status      TEXT NOT NULL DEFAULT 'created'
			            CHECK(status IN ('created','requirements_sent','in_progress','completed','cancelled')),
			deadline    TEXT,
			archived_at TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_simulations_short_id ON simulations(short_id) WHERE short_id != ''`,
		`CREATE INDEX IF NOT EXISTS idx_simulations_status ON simulations(status)`,

		`CREATE TABLE IF NOT EXISTS messages (
			id            TEXT PRIMARY KEY,
			simulation_id TEXT NOT NULL REFERENCES simulations(id) ON DELETE CASCADE,
			sender        TEXT NOT NULL CHECK(sender IN ('user','client')),
			body          TEXT NOT NULL,
			sent_at       TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_simulation ON messages(simulation_id, sent_at)`,
	},
	// 2: imported records carry a message count with no stored messages
	{
		`ALTER TABLE simulations ADD COLUMN imported_messages INTEGER NOT NULL DEFAULT 0`,
	},
}

// SchemaVersion is the user_version after all migrations have run.
func SchemaVersion() int {
	return len(migrations)
}

// Migrate applies every migration newer than the database's user_version,
// each step in its own transaction.
func Migrate(db *sql.DB) error {
	var current int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for v := current; v < len(migrations); v++ {
		if err := applyMigration(db, v+1, migrations[v]); err != nil {
			return fmt.Errorf("migration %d: %w", v+1, err)
		}
	}
	return nil
}

func applyMigration(db *sql.DB, version int, stmts []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return tx.Commit()
}
