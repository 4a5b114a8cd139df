package trivia

import (
	"fmt"
	"slices"
	"strings"
)

// MinOptions is the smallest number of options a question may have.
const MinOptions = 2

// Question is one multiple-choice trivia item. It is immutable once built;
// use New to construct one.
type Question struct {
	text         string
	options      []string
	correctIndex int
	difficulty   Difficulty
	category     string
}

// New builds a Question and checks its invariants. Violations are returned
// as *ConfigurationError.
func New(text string, options []string, correctIndex int, difficulty Difficulty, category string) (Question, error) {
	q := Question{
		text:         text,
		options:      slices.Clone(options),
		correctIndex: correctIndex,
		difficulty:   difficulty,
		category:     category,
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// MustNew is like New but panics on invalid input. Intended for fixtures.
func MustNew(text string, options []string, correctIndex int, difficulty Difficulty) Question {
	q, err := New(text, options, correctIndex, difficulty, "")
	if err != nil {
		panic(err)
	}
	return q
}

// Validate checks the question invariants.
func (q Question) Validate() error {
	if strings.TrimSpace(q.text) == "" {
		return &ConfigurationError{Reason: "question text is empty"}
	}
	if len(q.options) < MinOptions {
		return &ConfigurationError{Reason: fmt.Sprintf("question %q has %d options, need at least %d", q.text, len(q.options), MinOptions)}
	}
	if q.correctIndex < 0 || q.correctIndex >= len(q.options) {
		return &ConfigurationError{Reason: fmt.Sprintf("question %q has correct index %d outside [0,%d)", q.text, q.correctIndex, len(q.options))}
	}
	if !q.difficulty.Valid() {
		return &ConfigurationError{Reason: fmt.Sprintf("question %q has unrecognized difficulty %q", q.text, string(q.difficulty))}
	}
	return nil
}

// Text returns the question prompt.
func (q Question) Text() string { return q.text }

// Options returns a copy of the answer options in display order.
func (q Question) Options() []string { return slices.Clone(q.options) }

// NumOptions returns the number of answer options.
func (q Question) NumOptions() int { return len(q.options) }

// Option returns the option at i, or "" when i is out of range.
func (q Question) Option(i int) string {
	if i < 0 || i >= len(q.options) {
		return ""
	}
	return q.options[i]
}

// CorrectIndex returns the index of the correct option.
func (q Question) CorrectIndex() int { return q.correctIndex }

// CorrectAnswer returns the text of the correct option.
func (q Question) CorrectAnswer() string { return q.Option(q.correctIndex) }

// Difficulty returns the difficulty tag.
func (q Question) Difficulty() Difficulty { return q.difficulty }

// Category returns the source category, if any.
func (q Question) Category() string { return q.category }

// CheckAnswer reports whether selected is the correct option.
func (q Question) CheckAnswer(selected int) bool {
	return selected == q.correctIndex
}

// DifficultyValue returns the base points of the question:
// easy=100, medium=200, hard=300.
func (q Question) DifficultyValue() (int, error) {
	return q.difficulty.Value()
}
