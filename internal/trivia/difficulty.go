package trivia

import (
	"fmt"
	"strings"
)

// Difficulty is the difficulty tag of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns the recognized difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is one of the three recognized difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Value returns the base point value for the difficulty.
func (d Difficulty) Value() (int, error) {
	switch d {
	case DifficultyEasy:
		return 100, nil
	case DifficultyMedium:
		return 200, nil
	case DifficultyHard:
		return 300, nil
	}
	return 0, &ConfigurationError{Reason: fmt.Sprintf("unrecognized difficulty %q", string(d))}
}

// Harder returns the next difficulty up. Hard stays hard.
func (d Difficulty) Harder() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium, DifficultyHard:
		return DifficultyHard
	}
	return d
}

// Easier returns the next difficulty down. Easy stays easy.
func (d Difficulty) Easier() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium, DifficultyEasy:
		return DifficultyEasy
	}
	return d
}

// Label returns a display label, e.g. "Medium".
func (d Difficulty) Label() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// ParseDifficulty parses a case-insensitive difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", &ConfigurationError{Reason: fmt.Sprintf("unrecognized difficulty %q", s)}
	}
	return d, nil
}
