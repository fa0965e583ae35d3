package entities

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewOptions     = errors.New("question needs at least two options")
	ErrCorrectIndexRange = errors.New("correct index is out of range")
	ErrEmptyPrompt       = errors.New("question prompt is empty")
	ErrEmptyCategory     = errors.New("category has no questions")
	ErrEmptyCategoryName = errors.New("category name is empty")
)

// Question is a single multiple-choice quiz question. Instances are built once
// at startup and never mutated afterwards.
type Question struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// Validate checks the structural invariants of a question.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return ErrEmptyPrompt
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: %q has %d", ErrTooFewOptions, q.Prompt, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("%w: %q has index %d of %d options",
			ErrCorrectIndexRange, q.Prompt, q.CorrectIndex, len(q.Options))
	}
	return nil
}

// Category is a named, ordered list of questions. Categories are immutable
// after the question file is loaded.
type Category struct {
	Name      string
	Questions []Question
}

// Validate checks the category and every question in it.
func (c Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	if len(c.Questions) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyCategory, c.Name)
	}
	for _, q := range c.Questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("category %q: %w", c.Name, err)
		}
	}
	return nil
}
