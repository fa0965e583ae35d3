package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workglows/quizdude/internal/domain/entities"
)

func makeCategories(questions map[string][]string) map[string]entities.Category {
	categories := make(map[string]entities.Category, len(questions))
	for name, prompts := range questions {
		c := entities.Category{Name: name}
		for _, p := range prompts {
			c.Questions = append(c.Questions, entities.Question{
				Prompt:       p,
				Options:      []string{"A", "B", "C"},
				CorrectIndex: 0,
			})
		}
		categories[name] = c
	}
	return categories
}

func TestQuestionBank_UnknownCategory(t *testing.T) {
	bank := NewQuestionBank(makeCategories(map[string][]string{
		"xquiz": {"Q1", "Q2"},
	}))

	_, err := bank.Next("nope")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestQuestionBank_FullCycleCoverage(t *testing.T) {
	prompts := []string{"Q1", "Q2", "Q3", "Q4", "Q5"}
	bank := NewQuestionBank(makeCategories(map[string][]string{
		"xquiz": prompts,
	}))

	seen := make(map[string]int)
	for range prompts {
		q, err := bank.Next("xquiz")
		require.NoError(t, err)
		seen[q.Prompt]++
	}

	require.Len(t, seen, len(prompts))
	for _, p := range prompts {
		assert.Equal(t, 1, seen[p], "question %s should be served exactly once per cycle", p)
	}
}

func TestQuestionBank_TwoCyclesServeEachQuestionTwice(t *testing.T) {
	prompts := []string{"Q1", "Q2", "Q3"}
	bank := NewQuestionBank(makeCategories(map[string][]string{
		"cquiz": prompts,
	}))

	seen := make(map[string]int)
	for i := 0; i < 2*len(prompts); i++ {
		q, err := bank.Next("cquiz")
		require.NoError(t, err)
		seen[q.Prompt]++
	}

	for _, p := range prompts {
		assert.Equal(t, 2, seen[p])
	}
}

func TestQuestionBank_NoBackToBackRepeatAcrossRefill(t *testing.T) {
	bank := NewQuestionBank(makeCategories(map[string][]string{
		"hquiz": {"Q1", "Q2", "Q3"},
	}))

	prev := ""
	for i := 0; i < 300; i++ {
		q, err := bank.Next("hquiz")
		require.NoError(t, err)
		require.NotEqual(t, prev, q.Prompt, "call %d served the same question twice in a row", i)
		prev = q.Prompt
	}
}

func TestQuestionBank_SingleQuestionCategoryRepeats(t *testing.T) {
	bank := NewQuestionBank(makeCategories(map[string][]string{
		"squiz": {"S1"},
	}))

	for i := 0; i < 3; i++ {
		q, err := bank.Next("squiz")
		require.NoError(t, err)
		assert.Equal(t, "S1", q.Prompt)
	}
}

func TestQuestionBank_CategoriesAreIndependent(t *testing.T) {
	bank := NewQuestionBank(makeCategories(map[string][]string{
		"xquiz": {"X1", "X2"},
		"fquiz": {"F1"},
	}))

	q, err := bank.Next("fquiz")
	require.NoError(t, err)
	assert.Equal(t, "F1", q.Prompt)

	// Draining fquiz must not touch xquiz's bag.
	_, err = bank.Next("xquiz")
	require.NoError(t, err)
	assert.Equal(t, 1, bank.Remaining("xquiz"))
}
