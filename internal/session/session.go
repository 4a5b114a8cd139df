package session

import (
	"time"

	"github.com/abhisek/triviaz/internal/scoring"
	"github.com/abhisek/triviaz/internal/trivia"
	"github.com/google/uuid"
)

// QuizSession is one player's run through a quiz. It owns the sequencer and
// the player's score.
//
// A QuizSession has a single writer: callers must not invoke Answer
// concurrently on the same session.
type QuizSession struct {
	id        string
	user      User
	seq       *Sequencer
	completed bool
	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time
}

// Option configures a QuizSession.
type Option func(*QuizSession)

// WithPolicy overrides the scoring policy.
func WithPolicy(p scoring.Policy) Option {
	return func(s *QuizSession) {
		if p != nil {
			s.seq.policy = p
		}
	}
}

// WithID sets the session id instead of a random UUID.
func WithID(id string) Option {
	return func(s *QuizSession) {
		s.id = id
	}
}

// WithClock sets the time source used for start and end timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *QuizSession) {
		s.now = now
	}
}

// New creates a session for the named player.
func New(playerName string, opts ...Option) *QuizSession {
	s := &QuizSession{
		id:   uuid.New().String(),
		user: User{Name: playerName},
		now:  time.Now,
	}
	s.seq = NewSequencer(&s.user, scoring.Default())
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the session and returns the first question. An empty pool
// returns trivia.ErrEmptyPool and starts nothing.
func (s *QuizSession) Start(questions []trivia.Question) (trivia.Question, error) {
	q, err := s.seq.Start(questions)
	if err != nil {
		return trivia.Question{}, err
	}
	s.startedAt = s.now()
	return q, nil
}

// Answer submits the selected option index for the current question. The
// returned Turn carries either the next question or, on the last turn, the
// final score.
func (s *QuizSession) Answer(selected int) (Turn, error) {
	turn, err := s.seq.SubmitAnswer(selected)
	if err != nil {
		return Turn{}, err
	}
	if turn.Completed && !s.completed {
		s.completed = true
		s.endedAt = s.now()
	}
	return turn, nil
}

// CurrentScore returns the player's cumulative score.
func (s *QuizSession) CurrentScore() int { return s.user.Score }

// ID returns the session id.
func (s *QuizSession) ID() string { return s.id }

// User returns a snapshot of the player.
func (s *QuizSession) User() User { return s.user }

// Completed reports whether the final score has been produced.
func (s *QuizSession) Completed() bool { return s.completed }

// Phase returns the sequencer phase.
func (s *QuizSession) Phase() Phase { return s.seq.Phase() }

// Current returns the question awaiting an answer.
func (s *QuizSession) Current() (trivia.Question, bool) { return s.seq.Current() }

// QuestionsAnswered returns the number of answered questions.
func (s *QuizSession) QuestionsAnswered() int { return s.seq.Answered() }

// Target returns the difficulty the sequencer currently prefers.
func (s *QuizSession) Target() trivia.Difficulty { return s.seq.DifficultyState().Current }

// Turns returns the answered turns in order.
func (s *QuizSession) Turns() []Turn { return s.seq.Turns() }

// StartedAt returns when Start succeeded, or the zero time.
func (s *QuizSession) StartedAt() time.Time { return s.startedAt }

// Elapsed returns the session duration so far, or its total once completed.
func (s *QuizSession) Elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	if s.completed {
		return s.endedAt.Sub(s.startedAt)
	}
	return s.now().Sub(s.startedAt)
}
