package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// Single-row document header; key is always 'main'.
		`CREATE TABLE IF NOT EXISTS profile (
			key TEXT PRIMARY KEY,
			last_login TEXT NOT NULL,
			social_weekly_count INTEGER NOT NULL DEFAULT 0,
			social_week_start TEXT NOT NULL,
			screen_weekly_violations INTEGER NOT NULL DEFAULT 0,
			income_monthly_goal INTEGER NOT NULL DEFAULT 0,
			income_current_month INTEGER NOT NULL DEFAULT 0,
			income_target_month TEXT NOT NULL DEFAULT '',
			income_manual_override INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS life_areas (
			name TEXT PRIMARY KEY,
			category TEXT NOT NULL,
			subskill TEXT NOT NULL DEFAULT '',
			level INTEGER NOT NULL DEFAULT 1,
			xp INTEGER NOT NULL DEFAULT 0,
			last_active TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			value INTEGER NOT NULL,
			deadline TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			completion_date TEXT,
			created TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY,
			task TEXT NOT NULL,
			area TEXT NOT NULL,
			base_xp INTEGER NOT NULL,
			deadline TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			completion_date TEXT,
			created TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS habits (
			key TEXT PRIMARY KEY,
			streak INTEGER NOT NULL DEFAULT 0,
			last_done TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS pushup_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			count INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS epic_milestones (
			key TEXT PRIMARY KEY,
			completed INTEGER NOT NULL DEFAULT 0,
			xp_reward INTEGER NOT NULL,
			description TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS screen_time_log (
			date TEXT PRIMARY KEY,
			hours REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS daily_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			score INTEGER NOT NULL,
			grade TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			name TEXT PRIMARY KEY
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
