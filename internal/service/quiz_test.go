package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workglows/quizdude/internal/domain/entities"
	"github.com/workglows/quizdude/internal/storage"
)

type fakePollRepo struct {
	recorded []entities.PendingPoll
	answered []string
}

func (f *fakePollRepo) Record(_ context.Context, poll entities.PendingPoll) error {
	f.recorded = append(f.recorded, poll)
	return nil
}

func (f *fakePollRepo) MarkAnswered(_ context.Context, pollID string) error {
	f.answered = append(f.answered, pollID)
	return nil
}

func newQuizService(t *testing.T, questions map[string][]string) (*QuizService, *fakePollRepo) {
	t.Helper()
	repo := &fakePollRepo{}
	bank := NewQuestionBank(makeCategories(questions))
	return NewQuizService(bank, storage.NewPollStore(time.Minute), repo), repo
}

func TestQuizService_RegisterAndResolve(t *testing.T) {
	ctx := context.Background()
	svc, repo := newQuizService(t, map[string][]string{"squiz": {"S1"}})

	require.NoError(t, svc.RegisterPoll(ctx, "p1", "squiz", 0, 42, 7))
	require.Len(t, repo.recorded, 1)
	assert.Equal(t, "p1", repo.recorded[0].PollID)

	result, err := svc.ResolveAnswer(ctx, "p1", 0)
	require.NoError(t, err)
	assert.True(t, result.Correct)
	assert.Equal(t, "squiz", result.Category)

	result, err = svc.ResolveAnswer(ctx, "p1", 2)
	require.NoError(t, err)
	assert.False(t, result.Correct)

	// Both answers hit the durable record.
	assert.Equal(t, []string{"p1", "p1"}, repo.answered)
}

func TestQuizService_ResolveUnknownPoll(t *testing.T) {
	ctx := context.Background()
	svc, repo := newQuizService(t, map[string][]string{"squiz": {"S1"}})

	_, err := svc.ResolveAnswer(ctx, "unknown-id", 0)
	require.ErrorIs(t, err, ErrPollNotFound)
	assert.Empty(t, repo.answered)
}

func TestQuizService_SingleQuestionScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newQuizService(t, map[string][]string{"squiz": {"S1"}})

	q, err := svc.NextQuestion("squiz")
	require.NoError(t, err)
	assert.Equal(t, "S1", q.Prompt)

	require.NoError(t, svc.RegisterPoll(ctx, "p1", "squiz", q.CorrectIndex, 1, 1))

	result, err := svc.ResolveAnswer(ctx, "p1", q.CorrectIndex)
	require.NoError(t, err)
	assert.True(t, result.Correct)

	// The bag reshuffles with its single element and serves it again.
	q, err = svc.NextQuestion("squiz")
	require.NoError(t, err)
	assert.Equal(t, "S1", q.Prompt)
}

func TestQuizService_FiveQuestionsNoRepeats(t *testing.T) {
	prompts := []string{"X1", "X2", "X3", "X4", "X5"}
	svc, _ := newQuizService(t, map[string][]string{"xquiz": prompts})

	seen := make(map[string]bool)
	for range prompts {
		q, err := svc.NextQuestion("xquiz")
		require.NoError(t, err)
		require.False(t, seen[q.Prompt], "question %s repeated within a cycle", q.Prompt)
		seen[q.Prompt] = true
	}

	require.Len(t, seen, len(prompts))
}
