package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/ui/format"
	"github.com/abhisek/triviaz/internal/ui/layout"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

// Limit caps the number of sessions listed.
const Limit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Err      error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerEventRecord
	Err       error
}

// HistoryScreen lists completed sessions, newest first. Enter expands a
// session to show its answers.
type HistoryScreen struct {
	eventRepo store.EventRepo
	printer   *format.Printer
	sessions  []store.SessionSummaryRecord
	answers   map[string][]store.AnswerEventRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo, printer *format.Printer) *HistoryScreen {
	if printer == nil {
		printer = format.Default()
	}
	return &HistoryScreen{
		eventRepo: eventRepo,
		printer:   printer,
		answers:   make(map[string][]store.AnswerEventRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		sessions, err := repo.QuerySessionSummaries(context.Background(), store.QueryOpts{Limit: Limit})
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) loadAnswers(sessionID string) tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		answers, err := repo.QueryAnswerEvents(context.Background(), sessionID)
		return answersLoadedMsg{SessionID: sessionID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.answers[msg.SessionID] = msg.Answers
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected >= len(s.sessions) {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			id := s.sessions[s.selected].SessionID
			if _, cached := s.answers[id]; s.expanded[s.selected] && !cached {
				return s, s.loadAnswers(id)
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Go play one!")
	}

	p := s.printer
	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		var accuracy float64
		if sess.QuestionsServed > 0 {
			accuracy = float64(sess.CorrectAnswers) / float64(sess.QuestionsServed)
		}

		line := fmt.Sprintf("  %s   %-12s %8s pts   %d/%d (%s)   streak %d   %s   %s",
			sess.Timestamp.Local().Format("Jan 02 15:04"),
			truncate(sess.Player, 12),
			p.Number(sess.Score),
			sess.CorrectAnswers, sess.QuestionsServed, p.Percent(accuracy),
			sess.BestStreak,
			format.Duration(time.Duration(sess.DurationSecs)*time.Second),
			sess.Source,
		)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = theme.Selected
			line = "▸" + line[1:]
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(sess.SessionID))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAnswers(sessionID string) string {
	answers, ok := s.answers[sessionID]
	if !ok {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("      loading...") + "\n"
	}
	if len(answers) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("      no answers recorded") + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		mark := theme.Correct.Render("✓")
		detail := s.printer.Points(a.Points)
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
			detail = "answer: " + a.CorrectAnswer
		}
		line := fmt.Sprintf("      %s %2d. [%s] %s  %s",
			mark, a.Turn, a.Difficulty, truncate(a.QuestionText, 60),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
