package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap creates the tables the bot needs if they do not exist yet.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id         BIGINT PRIMARY KEY,
			username   TEXT NOT NULL DEFAULT '',
			first_name TEXT NOT NULL DEFAULT '',
			wins       INTEGER NOT NULL DEFAULT 0,
			losses     INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS quiz_polls (
			poll_id       TEXT PRIMARY KEY,
			category      TEXT NOT NULL,
			correct_index INTEGER NOT NULL,
			chat_id       BIGINT NOT NULL,
			answer_count  INTEGER NOT NULL DEFAULT 0,
			sent_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_polls_sent_at ON quiz_polls (sent_at)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return nil
}
