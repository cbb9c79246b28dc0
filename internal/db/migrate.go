package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Statements are idempotent so it is safe to run
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// days and method hold the raw backend arrays as JSON text, exactly as
// received. Decoded tokens are never written back.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS reminders (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL DEFAULT '',
		schedule    TEXT NOT NULL,
		repeat      TEXT NOT NULL DEFAULT 'none'
		            CHECK(repeat IN ('none','daily','weekly','monthly')),
		days        TEXT NOT NULL DEFAULT '[]',
		method      TEXT NOT NULL DEFAULT '[]',
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','paused','done')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reminders_status ON reminders(status)`,
	`CREATE INDEX IF NOT EXISTS idx_reminders_schedule ON reminders(schedule)`,
}
