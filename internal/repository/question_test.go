package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workglows/quizdude/internal/domain/entities"
)

func writeQuestionFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewQuestionRepository_LoadsAndAggregates(t *testing.T) {
	path := writeQuestionFile(t, `{
		"categories": {
			"xquiz": [
				{"prompt": "X1?", "options": ["A", "B", "C"], "correct_index": 0},
				{"prompt": "X2?", "options": ["A", "B"], "correct_index": 1}
			],
			"squiz": [
				{"prompt": "S1?", "options": ["A", "B", "C"], "correct_index": 2}
			]
		}
	}`)

	repo, err := NewQuestionRepository(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"aquiz", "squiz", "xquiz"}, repo.Names())

	mixed, ok := repo.Get(MixedCategory)
	require.True(t, ok)
	assert.Len(t, mixed.Questions, 3)

	x, ok := repo.Get("xquiz")
	require.True(t, ok)
	assert.Equal(t, "X1?", x.Questions[0].Prompt)

	_, ok = repo.Get("nope")
	assert.False(t, ok)
}

func TestNewQuestionRepository_RejectsEmptyCategory(t *testing.T) {
	path := writeQuestionFile(t, `{"categories": {"xquiz": []}}`)

	_, err := NewQuestionRepository(path)
	require.ErrorIs(t, err, entities.ErrEmptyCategory)
}

func TestNewQuestionRepository_RejectsBadCorrectIndex(t *testing.T) {
	path := writeQuestionFile(t, `{
		"categories": {
			"xquiz": [{"prompt": "X1?", "options": ["A", "B"], "correct_index": 5}]
		}
	}`)

	_, err := NewQuestionRepository(path)
	require.ErrorIs(t, err, entities.ErrCorrectIndexRange)
}

func TestNewQuestionRepository_RejectsTooFewOptions(t *testing.T) {
	path := writeQuestionFile(t, `{
		"categories": {
			"xquiz": [{"prompt": "X1?", "options": ["A"], "correct_index": 0}]
		}
	}`)

	_, err := NewQuestionRepository(path)
	require.ErrorIs(t, err, entities.ErrTooFewOptions)
}

func TestNewQuestionRepository_RejectsEmptyFile(t *testing.T) {
	path := writeQuestionFile(t, `{"categories": {}}`)

	_, err := NewQuestionRepository(path)
	require.ErrorIs(t, err, ErrNoCategories)
}

func TestNewQuestionRepository_MissingFile(t *testing.T) {
	_, err := NewQuestionRepository(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
