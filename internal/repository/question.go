package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/workglows/quizdude/internal/domain/entities"
)

var ErrNoCategories = errors.New("question file contains no categories")

// MixedCategory is the synthetic category made of every other category's
// questions, in file order.
const MixedCategory = "aquiz"

// QuestionRepository provides access to the category question lists loaded
// from a JSON file at startup. The lists are immutable once loaded.
type QuestionRepository struct {
	categories map[string]entities.Category
	names      []string
}

// NewQuestionRepository loads and validates the question file. Empty
// categories and malformed questions are rejected here, not at request time.
func NewQuestionRepository(path string) (*QuestionRepository, error) {
	categories, err := loadCategories(path)
	if err != nil {
		return nil, err
	}

	return &QuestionRepository{
		categories: categories,
		names:      sortedNames(categories),
	}, nil
}

// Get returns a category by name.
func (r *QuestionRepository) Get(name string) (entities.Category, bool) {
	c, ok := r.categories[name]
	return c, ok
}

// Names returns all category names, mixed category included, sorted.
func (r *QuestionRepository) Names() []string {
	return r.names
}

// Categories returns every loaded category keyed by name.
func (r *QuestionRepository) Categories() map[string]entities.Category {
	return r.categories
}

func loadCategories(path string) (map[string]entities.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}

	var wrapper struct {
		Categories map[string][]entities.Question `json:"categories"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("unmarshal question file: %w", err)
	}

	if len(wrapper.Categories) == 0 {
		return nil, ErrNoCategories
	}

	categories := make(map[string]entities.Category, len(wrapper.Categories)+1)
	var all []entities.Question

	// Deterministic order for the mixed category.
	names := make([]string, 0, len(wrapper.Categories))
	for name := range wrapper.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c := entities.Category{Name: name, Questions: wrapper.Categories[name]}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		categories[name] = c
		all = append(all, c.Questions...)
	}

	mixed := entities.Category{Name: MixedCategory, Questions: all}
	if err := mixed.Validate(); err != nil {
		return nil, err
	}
	categories[MixedCategory] = mixed

	return categories, nil
}

func sortedNames(categories map[string]entities.Category) []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
