// Package scoring turns a question and a streak multiplier into points.
package scoring

import (
	"fmt"

	"github.com/abhisek/triviaz/internal/trivia"
)

// Policy computes the points awarded for a correct answer.
type Policy interface {
	PointsFor(q trivia.Question, multiplier int) (int, error)
}

// DifficultyPolicy awards the question's difficulty value times the multiplier.
type DifficultyPolicy struct{}

// Default returns the standard scoring policy.
func Default() Policy {
	return DifficultyPolicy{}
}

// PointsFor returns q.DifficultyValue() * multiplier. A multiplier of zero
// yields zero points.
func (DifficultyPolicy) PointsFor(q trivia.Question, multiplier int) (int, error) {
	if multiplier < 0 {
		return 0, fmt.Errorf("negative multiplier %d", multiplier)
	}
	value, err := q.DifficultyValue()
	if err != nil {
		return 0, err
	}
	return value * multiplier, nil
}
