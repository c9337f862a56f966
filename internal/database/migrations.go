package database

import "database/sql"

// runMigrations creates the database schema
func runMigrations(db *sql.DB) error {
	// Items table: activities and projects share one table, discriminated
	// by kind. Column membership is derived from status, so there is no
	// columns table here; column configuration lives in per-board JSON.
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			priority TEXT NOT NULL DEFAULT 'medium',
			owner TEXT NOT NULL DEFAULT '',
			due_date DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Create index for efficient board queries
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_items_kind_status
		ON items(kind, status)
	`)
	if err != nil {
		return err
	}

	return nil
}
