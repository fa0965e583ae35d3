package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/workglows/quizdude/internal/domain/entities"
)

var ErrPollNotFound = errors.New("poll not registered")

// PollStore is the in-memory correlation map between dispatched polls and
// their correct option.
type PollStore interface {
	Put(poll entities.PendingPoll)
	Get(pollID string) (entities.PendingPoll, bool)
}

// PollRepo is the durable record of dispatched polls.
type PollRepo interface {
	Record(ctx context.Context, poll entities.PendingPoll) error
	MarkAnswered(ctx context.Context, pollID string) error
}

// AnswerResult is the outcome of resolving a poll-answer event.
type AnswerResult struct {
	Correct  bool
	Category string
}

// QuizService ties the question bank to the poll correlator: it picks the
// next question for a category, registers the dispatched poll, and resolves
// incoming answers to win/loss outcomes.
type QuizService struct {
	bank     *QuestionBank
	store    PollStore
	pollRepo PollRepo
}

func NewQuizService(bank *QuestionBank, store PollStore, pollRepo PollRepo) *QuizService {
	return &QuizService{
		bank:     bank,
		store:    store,
		pollRepo: pollRepo,
	}
}

// NextQuestion returns the next question from the category's shuffle bag.
func (s *QuizService) NextQuestion(category string) (entities.Question, error) {
	return s.bank.Next(category)
}

// RegisterPoll records a dispatched poll so its answer can be resolved later.
// It is called synchronously right after the transport returns the poll ID,
// before any answer event referencing that ID can arrive.
func (s *QuizService) RegisterPoll(ctx context.Context, pollID, category string, correctIndex int, chatID int64, messageID int) error {
	poll := entities.PendingPoll{
		PollID:       pollID,
		Category:     category,
		CorrectIndex: correctIndex,
		ChatID:       chatID,
		MessageID:    messageID,
		SentAt:       time.Now(),
	}

	s.store.Put(poll)

	if err := s.pollRepo.Record(ctx, poll); err != nil {
		return fmt.Errorf("record dispatched poll: %w", err)
	}

	return nil
}

// ResolveAnswer matches a poll-answer event to its registered poll and reports
// whether the selected option was correct. An unknown poll ID (never
// registered, or expired, or sent before a restart) returns ErrPollNotFound
// and the caller must not update any score. Resolution is repeatable: every
// user answering the same group poll is scored.
func (s *QuizService) ResolveAnswer(ctx context.Context, pollID string, selectedIndex int) (AnswerResult, error) {
	poll, ok := s.store.Get(pollID)
	if !ok {
		return AnswerResult{}, fmt.Errorf("%w: %s", ErrPollNotFound, pollID)
	}

	if err := s.pollRepo.MarkAnswered(ctx, pollID); err != nil {
		return AnswerResult{}, err
	}

	return AnswerResult{
		Correct:  selectedIndex == poll.CorrectIndex,
		Category: poll.Category,
	}, nil
}
