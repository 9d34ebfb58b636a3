package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// EnsureSchema creates the game tables if they do not exist yet.
// Statements are idempotent, so running it on every start is safe.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS words (
			id BIGINT PRIMARY KEY,
			headword TEXT NOT NULL,
			meaning TEXT NOT NULL,
			example TEXT NOT NULL DEFAULT '',
			audio_key TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS word_progress (
			word_id BIGINT PRIMARY KEY REFERENCES words (id),
			correct INT NOT NULL DEFAULT 0,
			wrong INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS game_meta (
			key TEXT PRIMARY KEY,
			value INT NOT NULL DEFAULT 0
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return nil
}
