package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/scoring"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/summary"
	"github.com/abhisek/triviaz/internal/session"
	"github.com/abhisek/triviaz/internal/source"
	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/trivia"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/format"
	"github.com/abhisek/triviaz/internal/ui/layout"
)

// Config carries the dependencies of a quiz screen.
type Config struct {
	Source  source.Source
	Query   source.Query
	Repo    store.EventRepo
	Player  string
	Printer *format.Printer

	// Policy overrides the scoring policy; nil uses the default.
	Policy scoring.Policy

	// Now overrides the clock.
	Now func() time.Time
}

// QuizScreen plays one session: it loads a pool from the configured
// source, serves questions, reveals each answer and hands off to the
// summary screen when the session completes.
type QuizScreen struct {
	cfg Config

	sess     *session.QuizSession
	current  trivia.Question
	choice   components.MultiChoice
	askedAt  time.Time
	lastTurn *session.Turn

	loading         bool
	spinnerFrame    int
	showingFeedback bool
	showingQuit     bool
	errMsg          string
	retryable       bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen.
func New(cfg Config) *QuizScreen {
	if cfg.Printer == nil {
		cfg.Printer = format.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Query.Amount == 0 {
		cfg.Query.Amount = session.Length
	}
	return &QuizScreen{cfg: cfg}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.load()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Status returns the player and running score for the header.
func (s *QuizScreen) Status() string {
	if s.sess == nil {
		return s.cfg.Player
	}
	return s.cfg.Player + "  ★ " + s.cfg.Printer.Number(s.sess.CurrentScore())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		if s.retryable {
			return []layout.KeyHint{
				{Key: "R", Description: "Retry"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.sess == nil:
		return nil
	case s.showingQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit game"},
			{Key: "N", Description: "Keep playing"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case poolLoadedMsg:
		return s.handlePoolLoaded(msg)

	case spinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick()

	case timerTickMsg:
		if s.sess == nil || s.sess.Completed() {
			return s, nil
		}
		return s, tickCmd()

	case components.ChoiceMsg:
		return s.submitAnswer(msg.Index)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// load fetches a fresh pool asynchronously.
func (s *QuizScreen) load() tea.Cmd {
	s.loading = true
	s.errMsg = ""
	src, q := s.cfg.Source, s.cfg.Query
	fetch := func() tea.Msg {
		if src == nil {
			return poolLoadedMsg{Err: trivia.ErrEmptyPool}
		}
		ctx, stats := source.WithStats(context.Background())
		questions, err := source.Load(ctx, src, q)
		return poolLoadedMsg{Questions: questions, Rejected: len(stats.Rejected()), Err: err}
	}
	return tea.Batch(fetch, spinnerTick())
}

func (s *QuizScreen) handlePoolLoaded(msg poolLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		s.fail(withRejections(msg.Err, msg.Rejected))
		return s, nil
	}

	var opts []session.Option
	if s.cfg.Policy != nil {
		opts = append(opts, session.WithPolicy(s.cfg.Policy))
	}
	opts = append(opts, session.WithClock(s.cfg.Now))

	qs := session.New(s.cfg.Player, opts...)
	first, err := qs.Start(msg.Questions)
	if err != nil {
		s.fail(withRejections(err, msg.Rejected))
		return s, nil
	}
	s.sess = qs

	if s.cfg.Repo != nil {
		_ = s.cfg.Repo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: qs.ID(),
			Player:    s.cfg.Player,
			Action:    store.ActionStart,
			Source:    s.sourceName(),
		})
	}

	s.serve(first)
	return s, tickCmd()
}

// withRejections notes how many fetched questions failed validation when
// that explains a short or empty pool.
func withRejections(err error, rejected int) error {
	if rejected == 0 {
		return err
	}
	return fmt.Errorf("%w; %d fetched questions failed validation", err, rejected)
}

func (s *QuizScreen) fail(err error) {
	s.errMsg = err.Error()
	var cfgErr *trivia.ConfigurationError
	s.retryable = errors.Is(err, trivia.ErrEmptyPool) || errors.As(err, &cfgErr)
}

func (s *QuizScreen) serve(q trivia.Question) {
	s.current = q
	s.choice = components.NewMultiChoice(q.Options())
	s.askedAt = s.cfg.Now()
	s.showingFeedback = false
	s.lastTurn = nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		if s.retryable && (key == "r" || key == "R") {
			return s, s.load()
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.sess == nil {
		return s, nil
	}

	if s.showingQuit {
		switch key {
		case "y", "Y":
			s.showingQuit = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuit = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s.advance()
	}

	if key == "esc" {
		s.showingQuit = true
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

// submitAnswer scores the chosen option and shows the reveal.
func (s *QuizScreen) submitAnswer(index int) (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.showingFeedback {
		return s, nil
	}

	timeMs := int(s.cfg.Now().Sub(s.askedAt).Milliseconds())
	turn, err := s.sess.Answer(index)
	if err != nil {
		s.fail(err)
		return s, nil
	}
	s.lastTurn = &turn

	q := turn.Question
	if s.cfg.Repo != nil {
		_ = s.cfg.Repo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:      s.sess.ID(),
			Turn:           turn.Number,
			QuestionText:   q.Text(),
			Category:       q.Category(),
			Difficulty:     string(q.Difficulty()),
			CorrectAnswer:  q.CorrectAnswer(),
			SelectedAnswer: q.Option(turn.Selected),
			Correct:        turn.Correct,
			Points:         turn.Points,
			Multiplier:     turn.Change.Multiplier,
			NextDifficulty: string(turn.Change.Current),
			TimeMs:         timeMs,
		})
	}

	s.choice.Reveal(q.CorrectIndex())
	s.showingFeedback = true
	return s, nil
}

// advance moves past the feedback overlay to the next question or the
// summary.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	turn := s.lastTurn
	if turn == nil {
		s.showingFeedback = false
		return s, nil
	}
	if turn.Completed || turn.Next == nil {
		return s.finish()
	}
	s.serve(*turn.Next)
	return s, nil
}

func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	sum := session.BuildSummary(s.sess)
	ctx := context.Background()

	var best int
	if s.cfg.Repo != nil {
		if rec, err := s.cfg.Repo.BestSession(ctx); err == nil && rec != nil {
			best = rec.Score
		}
		_ = s.cfg.Repo.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       sum.SessionID,
			Player:          sum.PlayerName,
			Action:          store.ActionEnd,
			Source:          s.sourceName(),
			QuestionsServed: sum.Answered,
			CorrectAnswers:  sum.Correct,
			Score:           sum.Score,
			BestStreak:      sum.BestStreak,
			FinalDifficulty: string(sum.FinalDifficulty),
			DurationSecs:    int(sum.Duration.Seconds()),
		})
	}

	cfg := s.cfg
	next := summary.New(sum, cfg.Printer, best, func() screen.Screen { return New(cfg) })
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *QuizScreen) sourceName() string {
	if s.cfg.Source == nil {
		return ""
	}
	return s.cfg.Source.Name()
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
