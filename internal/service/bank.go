package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/workglows/quizdude/internal/domain/entities"
)

var ErrUnknownCategory = errors.New("unknown quiz category")

// QuestionBank hands out questions one at a time from per-category shuffle
// bags. A bag is a randomly permuted working copy of the category's full
// question list; when it runs out it is rebuilt as a fresh permutation, so
// within one cycle every question is served exactly once.
//
// Handlers run on separate goroutines, so all bag state is guarded by a mutex.
type QuestionBank struct {
	mu         sync.Mutex
	categories map[string]entities.Category
	bags       map[string][]entities.Question
	lastServed map[string]string // last prompt per category, to avoid a back-to-back repeat
	rng        *rand.Rand
}

// NewQuestionBank creates a bank over the given categories. Bags are created
// lazily on first request per category.
func NewQuestionBank(categories map[string]entities.Category) *QuestionBank {
	return &QuestionBank{
		categories: categories,
		bags:       make(map[string][]entities.Question, len(categories)),
		lastServed: make(map[string]string, len(categories)),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next returns the next question for the category. An unknown category is a
// caller error and returns ErrUnknownCategory.
func (b *QuestionBank) Next(category string) (entities.Question, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.categories[category]
	if !ok {
		return entities.Question{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	bag := b.bags[category]
	if len(bag) == 0 {
		bag = b.refill(c, b.lastServed[category])
	}

	q := bag[len(bag)-1]
	b.bags[category] = bag[:len(bag)-1]
	b.lastServed[category] = q.Prompt

	return q, nil
}

// refill builds a fresh uniform permutation of the category's question list.
// If the new bag would serve the just-served question again immediately, it is
// swapped away from the end, so a cycle boundary never produces a back-to-back
// repeat in categories with more than one question.
func (b *QuestionBank) refill(c entities.Category, lastPrompt string) []entities.Question {
	bag := make([]entities.Question, len(c.Questions))
	copy(bag, c.Questions)

	b.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})

	last := len(bag) - 1
	if len(bag) > 1 && bag[last].Prompt == lastPrompt {
		j := b.rng.Intn(last)
		bag[last], bag[j] = bag[j], bag[last]
	}

	return bag
}

// Remaining reports how many questions are left in the category's current bag.
func (b *QuestionBank) Remaining(category string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.bags[category])
}
