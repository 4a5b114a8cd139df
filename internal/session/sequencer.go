package session

import (
	"fmt"
	"slices"

	"github.com/abhisek/triviaz/internal/difficulty"
	"github.com/abhisek/triviaz/internal/scoring"
	"github.com/abhisek/triviaz/internal/trivia"
)

// Turn is the outcome of one answered question.
type Turn struct {
	// Number is the 1-based turn number.
	Number int

	Question trivia.Question
	Selected int
	Correct  bool

	// Points is what this answer added to the score.
	Points int

	// Change is the difficulty controller's update for this answer.
	Change difficulty.Change

	// Next is the question to show next, nil once the session is complete.
	Next *trivia.Question

	// Completed is set on the last turn, together with FinalScore.
	Completed  bool
	FinalScore int
}

// Sequencer drives the fixed-length adaptive session: it serves questions,
// scores answers and reorders the pending pool toward the target difficulty.
//
// A Sequencer has a single writer. It does no locking and must not be driven
// from more than one goroutine.
type Sequencer struct {
	user       *User
	policy     scoring.Policy
	controller *difficulty.Controller

	pool     []trivia.Question
	position int
	phase    Phase
	answered int
	turns    []Turn
}

// NewSequencer creates a sequencer that credits points to user. A nil user
// gets an anonymous one and a nil policy the default.
func NewSequencer(user *User, policy scoring.Policy) *Sequencer {
	if user == nil {
		user = &User{}
	}
	if policy == nil {
		policy = scoring.Default()
	}
	return &Sequencer{
		user:   user,
		policy: policy,
	}
}

// Start validates the pool, moves the first medium question to the front and
// returns it as the current question. An empty pool yields trivia.ErrEmptyPool;
// a pool shorter than Length or holding an invalid question yields a
// *trivia.ConfigurationError. On error no session state is created.
func (s *Sequencer) Start(questions []trivia.Question) (trivia.Question, error) {
	if s.phase != PhaseNotStarted {
		return trivia.Question{}, &InvalidStateError{Op: "Start", Phase: s.phase}
	}
	if len(questions) == 0 {
		return trivia.Question{}, trivia.ErrEmptyPool
	}
	if len(questions) < Length {
		return trivia.Question{}, &trivia.ConfigurationError{
			Reason: fmt.Sprintf("pool has %d questions, a session needs %d", len(questions), Length),
		}
	}
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return trivia.Question{}, &trivia.ConfigurationError{
				Reason: fmt.Sprintf("question %d", i),
				Err:    err,
			}
		}
	}

	pool := slices.Clone(questions)
	// No medium question leaves the order as given.
	promoteFirst(pool, 0, trivia.DifficultyMedium)

	s.pool = pool
	s.position = 0
	s.answered = 0
	s.turns = nil
	s.controller = difficulty.NewController()
	s.phase = PhaseInProgress

	return s.pool[0], nil
}

// SubmitAnswer records the answer to the current question. It is only valid
// while in progress; otherwise it returns *InvalidStateError and changes
// nothing.
func (s *Sequencer) SubmitAnswer(selected int) (Turn, error) {
	if s.phase != PhaseInProgress {
		return Turn{}, &InvalidStateError{Op: "SubmitAnswer", Phase: s.phase}
	}

	q := s.pool[s.position]
	correct := q.CheckAnswer(selected)

	// Score against the would-be change first so a policy error leaves the
	// streaks untouched.
	points := 0
	if m := s.controller.Peek(correct).Multiplier; m > 0 {
		p, err := s.policy.PointsFor(q, m)
		if err != nil {
			return Turn{}, fmt.Errorf("score answer: %w", err)
		}
		points = p
	}
	change := s.controller.RecordAnswer(correct)
	s.user.Score += points
	s.answered++

	if next := s.position + 1; next < len(s.pool) {
		promoteFirst(s.pool, next, change.Current)
	}

	turn := Turn{
		Number:   s.answered,
		Question: q,
		Selected: selected,
		Correct:  correct,
		Points:   points,
		Change:   change,
	}

	if s.position == Length-1 {
		s.phase = PhaseCompleted
		turn.Completed = true
		turn.FinalScore = s.user.Score
	} else {
		s.position++
		next := s.pool[s.position]
		turn.Next = &next
	}

	s.turns = append(s.turns, turn)
	return turn, nil
}

// Phase returns the current lifecycle phase.
func (s *Sequencer) Phase() Phase { return s.phase }

// Current returns the question awaiting an answer. ok is false unless the
// session is in progress.
func (s *Sequencer) Current() (q trivia.Question, ok bool) {
	if s.phase != PhaseInProgress {
		return trivia.Question{}, false
	}
	return s.pool[s.position], true
}

// Position returns the 0-based index of the current question.
func (s *Sequencer) Position() int { return s.position }

// Answered returns the number of questions answered so far.
func (s *Sequencer) Answered() int { return s.answered }

// Pool returns a copy of the pool in its current order.
func (s *Sequencer) Pool() []trivia.Question { return slices.Clone(s.pool) }

// Turns returns a copy of the answered turns in order.
func (s *Sequencer) Turns() []Turn { return slices.Clone(s.turns) }

// DifficultyState returns the controller state. Before Start it reports the
// starting state.
func (s *Sequencer) DifficultyState() difficulty.State {
	if s.controller == nil {
		return difficulty.NewController().State()
	}
	return s.controller.State()
}

// promoteFirst moves the first question at or after start whose difficulty is
// d to index start, shifting the ones in between back by one. It reports
// whether such a question was found.
func promoteFirst(pool []trivia.Question, start int, d trivia.Difficulty) bool {
	for i := start; i < len(pool); i++ {
		if pool[i].Difficulty() != d {
			continue
		}
		if i != start {
			q := pool[i]
			copy(pool[start+1:i+1], pool[start:i])
			pool[start] = q
		}
		return true
	}
	return false
}
