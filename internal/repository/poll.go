package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workglows/quizdude/internal/domain/entities"
)

// PollRepository keeps a durable record of every dispatched quiz poll. The
// in-memory correlator answers is-correct lookups; these rows exist for
// accounting and survive restarts until the retention job prunes them.
type PollRepository struct {
	db *pgxpool.Pool
}

// NewPollRepository creates a new PollRepository with the provided database pool.
func NewPollRepository(db *pgxpool.Pool) *PollRepository {
	return &PollRepository{db: db}
}

// Record stores a freshly dispatched poll.
func (r *PollRepository) Record(ctx context.Context, poll entities.PendingPoll) error {
	query := `
	INSERT INTO quiz_polls (poll_id, category, correct_index, chat_id, sent_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (poll_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query,
		poll.PollID, poll.Category, poll.CorrectIndex, poll.ChatID, poll.SentAt,
	)
	if err != nil {
		return fmt.Errorf("record poll: %w", err)
	}

	return nil
}

// MarkAnswered bumps the answer counter for a poll. Missing rows are not an
// error: the row may already have been pruned.
func (r *PollRepository) MarkAnswered(ctx context.Context, pollID string) error {
	query := "UPDATE quiz_polls SET answer_count = answer_count + 1 WHERE poll_id = $1"
	if _, err := r.db.Exec(ctx, query, pollID); err != nil {
		return fmt.Errorf("mark poll answered: %w", err)
	}

	return nil
}

// DeleteOlderThan removes poll rows dispatched before the cutoff and returns
// how many were dropped.
func (r *PollRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM quiz_polls WHERE sent_at < $1", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune polls: %w", err)
	}

	return tag.RowsAffected(), nil
}
