// Package source fetches pools of trivia questions from remote APIs, LLMs,
// the built-in bank and local files.
package source

import (
	"context"
	"fmt"

	"github.com/abhisek/triviaz/internal/trivia"
)

// Query describes the pool a caller wants.
type Query struct {
	Amount   int
	Category string
}

// Source produces a pool of questions for one session.
type Source interface {
	// Name identifies the source in logs and events, e.g. "opentdb".
	Name() string

	// Fetch returns up to q.Amount questions. Implementations may return
	// fewer, including none.
	Fetch(ctx context.Context, q Query) ([]trivia.Question, error)
}

// Load fetches a pool and treats a failed fetch and an empty result alike:
// both are reported as trivia.ErrEmptyPool. A failure's cause stays
// reachable through errors.Unwrap.
func Load(ctx context.Context, src Source, q Query) ([]trivia.Question, error) {
	pool, err := src.Fetch(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("fetch from %s: %w", src.Name(), &poolError{cause: err})
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("fetch from %s: %w", src.Name(), trivia.ErrEmptyPool)
	}
	return pool, nil
}

// poolError is ErrEmptyPool with the underlying fetch failure attached.
type poolError struct {
	cause error
}

func (e *poolError) Error() string {
	return fmt.Sprintf("%v: %v", trivia.ErrEmptyPool, e.cause)
}

func (e *poolError) Unwrap() []error {
	return []error{trivia.ErrEmptyPool, e.cause}
}
