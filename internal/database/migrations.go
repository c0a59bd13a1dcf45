package database

import (
	"database/sql"
	"fmt"
	"log"
)

// migration is one versioned schema step. Statements must be idempotent so a
// partially applied step can be retried safely.
type migration struct {
	version int
	name    string
	stmts   []string
}

// migrations is the ordered schema history. Append only; never edit or reorder
// an entry that has shipped.
var migrations = []migration{
	{
		version: 1,
		name:    "create users",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				username VARCHAR(20) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				display_name VARCHAR(100),
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			)`,
			`CREATE INDEX IF NOT EXISTS idx_users_username_lower ON users(LOWER(username))`,
		},
	},
	{
		version: 2,
		name:    "create habits",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS habits (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				name VARCHAR(255) NOT NULL,
				priority VARCHAR(20) NOT NULL,
				color VARCHAR(7) NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			)`,
			`CREATE INDEX IF NOT EXISTS idx_habits_user_id ON habits(user_id)`,
		},
	},
	{
		version: 3,
		name:    "create habit_log",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS habit_log (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				habit_id UUID NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
				day DATE NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				UNIQUE(habit_id, day)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_habit_log_day ON habit_log(day)`,
		},
	},
	{
		version: 4,
		name:    "create planner_tasks",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS planner_tasks (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				task TEXT NOT NULL,
				day DATE NOT NULL,
				completed BOOLEAN NOT NULL DEFAULT FALSE,
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			)`,
			`CREATE INDEX IF NOT EXISTS idx_planner_tasks_user_day ON planner_tasks(user_id, day)`,
		},
	},
}

// Migrate applies all pending migrations in order. Each step runs in its own
// transaction and is recorded in schema_migrations once committed.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	current := 0
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}

		for _, stmt := range m.stmts {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
			}
		}

		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.version, m.name); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}

		log.Printf("✅ Applied migration %d: %s", m.version, m.name)
	}

	return nil
}
