// Package difficulty tracks answer streaks and the target difficulty of an
// adaptive quiz.
package difficulty

import "github.com/abhisek/triviaz/internal/trivia"

const (
	// EscalateEvery escalates the target each time the correct streak reaches
	// a positive multiple of this length.
	EscalateEvery = 2

	// DeescalateAfter is the wrong-streak length that lowers the target.
	// The wrong streak resets once it fires, so it must rebuild from zero.
	DeescalateAfter = 2

	// BonusStreak is the correct-streak length from which answers score double.
	BonusStreak = 3

	// StartDifficulty is the target at the beginning of every session.
	StartDifficulty = trivia.DifficultyMedium
)

// State is the streak and target state of one session.
// At least one of ConsecutiveCorrect and ConsecutiveWrong is always zero.
type State struct {
	Current            trivia.Difficulty
	ConsecutiveCorrect int
	ConsecutiveWrong   int
}

// Change describes the effect of one recorded answer.
type Change struct {
	Correct  bool
	Previous trivia.Difficulty
	Current  trivia.Difficulty

	// Multiplier is 2 on a correct answer with a streak of BonusStreak or more,
	// 1 on any other correct answer, and 0 on a wrong answer.
	Multiplier int

	ConsecutiveCorrect int
	ConsecutiveWrong   int
}

// Escalated reports whether the target moved up this turn.
func (c Change) Escalated() bool {
	return c.Current != c.Previous && c.Previous.Harder() == c.Current
}

// Deescalated reports whether the target moved down this turn.
func (c Change) Deescalated() bool {
	return c.Current != c.Previous && c.Previous.Easier() == c.Current
}

// Controller is a pure state machine over State. It is not safe for
// concurrent use.
type Controller struct {
	state State
}

// NewController returns a controller at {medium, 0, 0}.
func NewController() *Controller {
	return &Controller{state: State{Current: StartDifficulty}}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state
}

// Target returns the current target difficulty.
func (c *Controller) Target() trivia.Difficulty {
	return c.state.Current
}

// Peek returns the Change RecordAnswer(correct) would produce without
// recording it.
func (c *Controller) Peek(correct bool) Change {
	change, _ := c.state.next(correct)
	return change
}

// RecordAnswer updates the streaks and target for one answer.
func (c *Controller) RecordAnswer(correct bool) Change {
	change, next := c.state.next(correct)
	c.state = next
	return change
}

// next computes the state after one answer. s is a copy, so the receiver's
// owner is untouched.
func (s State) next(correct bool) (Change, State) {
	prev := s.Current
	multiplier := 0

	if correct {
		s.ConsecutiveCorrect++
		s.ConsecutiveWrong = 0
		if s.ConsecutiveCorrect%EscalateEvery == 0 {
			s.Current = s.Current.Harder()
		}
		multiplier = 1
		if s.ConsecutiveCorrect >= BonusStreak {
			multiplier = 2
		}
	} else {
		s.ConsecutiveWrong++
		s.ConsecutiveCorrect = 0
		if s.ConsecutiveWrong >= DeescalateAfter {
			s.Current = s.Current.Easier()
			s.ConsecutiveWrong = 0
		}
	}

	return Change{
		Correct:            correct,
		Previous:           prev,
		Current:            s.Current,
		Multiplier:         multiplier,
		ConsecutiveCorrect: s.ConsecutiveCorrect,
		ConsecutiveWrong:   s.ConsecutiveWrong,
	}, s
}
