package scoring

import (
	"errors"
	"testing"

	"github.com/abhisek/triviaz/internal/trivia"
)

func TestPointsFor(t *testing.T) {
	tests := []struct {
		difficulty trivia.Difficulty
		multiplier int
		want       int
	}{
		{trivia.DifficultyEasy, 1, 100},
		{trivia.DifficultyEasy, 2, 200},
		{trivia.DifficultyMedium, 1, 200},
		{trivia.DifficultyMedium, 2, 400},
		{trivia.DifficultyHard, 1, 300},
		{trivia.DifficultyHard, 2, 600},
		{trivia.DifficultyHard, 0, 0},
	}

	p := Default()
	for _, tt := range tests {
		q := trivia.MustNew("q", []string{"a", "b"}, 0, tt.difficulty)
		got, err := p.PointsFor(q, tt.multiplier)
		if err != nil {
			t.Fatalf("PointsFor(%s, %d): %v", tt.difficulty, tt.multiplier, err)
		}
		if got != tt.want {
			t.Errorf("PointsFor(%s, %d) = %d, want %d", tt.difficulty, tt.multiplier, got, tt.want)
		}
	}
}

func TestPointsFor_InvalidQuestion(t *testing.T) {
	_, err := Default().PointsFor(trivia.Question{}, 1)
	var cfgErr *trivia.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *trivia.ConfigurationError", err)
	}
}

func TestPointsFor_NegativeMultiplier(t *testing.T) {
	q := trivia.MustNew("q", []string{"a", "b"}, 0, trivia.DifficultyEasy)
	if _, err := Default().PointsFor(q, -1); err == nil {
		t.Error("expected error for negative multiplier")
	}
}
