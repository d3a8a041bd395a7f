package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS login_session (
		id           TEXT PRIMARY KEY CHECK (id = 'default'),
		username     TEXT NOT NULL,
		first_name   TEXT NOT NULL DEFAULT '',
		last_name    TEXT NOT NULL DEFAULT '',
		employee_id  TEXT NOT NULL DEFAULT '',
		role         TEXT NOT NULL,
		token        TEXT NOT NULL,
		expires_at   TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE IF NOT EXISTS grid_drafts (
		username    TEXT NOT NULL,
		month_year  TEXT NOT NULL,
		payload     TEXT NOT NULL,
		updated_at  TEXT NOT NULL DEFAULT (datetime('now')),
		PRIMARY KEY (username, month_year)
	)`,
}

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
