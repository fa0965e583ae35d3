package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workglows/quizdude/internal/domain/entities"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository provides access to player data in the database.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository with the provided database pool.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureUser inserts the player if they are not known yet. Calling it again for
// an existing player refreshes display fields and never touches the score.
func (r *UserRepository) EnsureUser(ctx context.Context, user *entities.User) error {
	query := `
	INSERT INTO users (id, username, first_name)
	VALUES ($1, $2, $3)
	ON CONFLICT (id) DO UPDATE
	SET username = EXCLUDED.username, first_name = EXCLUDED.first_name
	`
	if _, err := r.db.Exec(ctx, query, user.ID, user.Username, user.FirstName); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	return nil
}

// IncrementScore bumps the player's win or loss counter by one.
func (r *UserRepository) IncrementScore(ctx context.Context, userID int64, won bool) error {
	query := "UPDATE users SET losses = losses + 1 WHERE id = $1"
	if won {
		query = "UPDATE users SET wins = wins + 1 WHERE id = $1"
	}

	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("increment score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// GetByID returns a single player.
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*entities.User, error) {
	query := `
	SELECT id, username, first_name, wins, losses, created_at
	FROM users
	WHERE id = $1
	`

	var u entities.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&u.ID, &u.Username, &u.FirstName, &u.Wins, &u.Losses, &u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

// Leaderboard returns the top players ordered by wins descending, losses
// ascending as the tie breaker.
func (r *UserRepository) Leaderboard(ctx context.Context, limit int) ([]*entities.User, error) {
	query := `
	SELECT id, username, first_name, wins, losses, created_at
	FROM users
	ORDER BY wins DESC, losses ASC
	LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.Wins, &u.Losses, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard rows: %w", err)
	}

	return users, nil
}
