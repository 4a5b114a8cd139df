package source

import (
	"fmt"
	"strings"

	"github.com/abhisek/triviaz/internal/trivia"
)

// MaxTextLength bounds question and option text.
const MaxTextLength = 500

// Validator checks a fetched question before it enters a pool.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages.
	Name() string

	// Validate returns nil if the question passes.
	Validate(q trivia.Question) *ValidationError
}

// ValidationError describes why a question was rejected.
type ValidationError struct {
	Validator string
	Question  string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators is the chain applied by every built-in source.
func DefaultValidators() []Validator {
	return []Validator{&StructuralValidator{}, &DistinctOptionsValidator{}}
}

// Filter runs each question through the validators in order and keeps the
// ones that pass every check. Rejections are returned alongside.
func Filter(questions []trivia.Question, validators []Validator) ([]trivia.Question, []*ValidationError) {
	kept := make([]trivia.Question, 0, len(questions))
	var rejected []*ValidationError

next:
	for _, q := range questions {
		for _, v := range validators {
			if verr := v.Validate(q); verr != nil {
				verr.Question = q.Text()
				rejected = append(rejected, verr)
				continue next
			}
		}
		kept = append(kept, q)
	}
	return kept, rejected
}

// StructuralValidator checks field presence and lengths.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q trivia.Question) *ValidationError {
	if err := q.Validate(); err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if len(q.Text()) > MaxTextLength {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("question text exceeds %d characters", MaxTextLength),
		}
	}
	for i, opt := range q.Options() {
		if strings.TrimSpace(opt) == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is empty", i),
			}
		}
		if len(opt) > MaxTextLength {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d exceeds %d characters", i, MaxTextLength),
			}
		}
	}
	return nil
}

// DistinctOptionsValidator rejects questions whose options repeat, ignoring
// case and surrounding space.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(q trivia.Question) *ValidationError {
	seen := make(map[string]int, q.NumOptions())
	for i, opt := range q.Options() {
		key := strings.ToLower(strings.TrimSpace(opt))
		if j, ok := seen[key]; ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("options %d and %d are both %q", j, i, opt),
			}
		}
		seen[key] = i
	}
	return nil
}
