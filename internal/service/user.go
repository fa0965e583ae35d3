package service

import (
	"context"

	"github.com/workglows/quizdude/internal/domain/entities"
)

// UserRepository is the persistence contract for players and scores.
type UserRepository interface {
	EnsureUser(ctx context.Context, user *entities.User) error
	IncrementScore(ctx context.Context, userID int64, won bool) error
	GetByID(ctx context.Context, userID int64) (*entities.User, error)
	Leaderboard(ctx context.Context, limit int) ([]*entities.User, error)
}

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser makes sure the player exists before any score update. Safe to
// call on every interaction.
func (s *UserService) EnsureUser(ctx context.Context, userID int64, username, firstName string) error {
	return s.repository.EnsureUser(ctx, entities.NewUser(userID, username, firstName))
}

// RecordAnswer increments the player's win or loss counter.
func (s *UserService) RecordAnswer(ctx context.Context, userID int64, won bool) error {
	return s.repository.IncrementScore(ctx, userID, won)
}

// Stats returns the player's own record.
func (s *UserService) Stats(ctx context.Context, userID int64) (*entities.User, error) {
	return s.repository.GetByID(ctx, userID)
}

// Leaderboard returns the top players.
func (s *UserService) Leaderboard(ctx context.Context, limit int) ([]*entities.User, error) {
	return s.repository.Leaderboard(ctx, limit)
}
