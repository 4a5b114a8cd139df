package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/session"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/format"
	"github.com/abhisek/triviaz/internal/ui/layout"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

// SummaryScreen displays the result of a finished session.
type SummaryScreen struct {
	summary   *session.Summary
	printer   *format.Printer
	bestScore int
	playAgain func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. bestScore is the best score on record
// before this session. playAgain builds a fresh quiz screen; when nil the
// replay key is disabled.
func New(summary *session.Summary, printer *format.Printer, bestScore int, playAgain func() screen.Screen) *SummaryScreen {
	if printer == nil {
		printer = format.Default()
	}
	return &SummaryScreen{
		summary:   summary,
		printer:   printer,
		bestScore: bestScore,
		playAgain: playAgain,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Final Score"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Home"}}
	if s.playAgain != nil {
		hints = append([]layout.KeyHint{{Key: "Enter", Description: "Play again"}}, hints...)
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "p":
		if s.playAgain == nil {
			return s, nil
		}
		next := s.playAgain()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case "esc", "h":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

// NewBest reports whether the session beat the previous best score.
func (s *SummaryScreen) NewBest() bool {
	return s.summary != nil && s.summary.Completed && s.summary.Score > s.bestScore
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	p := s.printer

	var b strings.Builder

	headline := "Game over!"
	if sum.PlayerName != "" {
		headline = fmt.Sprintf("Game over, %s!", sum.PlayerName)
	}
	b.WriteString(theme.Centered(headline, width, theme.Primary))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Gold).
		Bold(true).
		Render(p.Number(sum.Score) + " POINTS")
	b.WriteString(score)
	b.WriteString("\n")
	if s.NewBest() {
		b.WriteString(theme.Centered("★ NEW HIGH SCORE ★", width, theme.Accent))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	statsLine := fmt.Sprintf("Correct: %d/%d      Accuracy: %s      Best streak: %d      Time: %s",
		sum.Correct, sum.Answered, p.Percent(sum.Accuracy), sum.BestStreak, format.Duration(sum.Duration))
	b.WriteString(theme.Centered(statsLine, width, theme.Text))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("By difficulty")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, tally := range sum.ByDifficulty {
		line := fmt.Sprintf("%s   %d/%d correct   %s pts",
			components.DifficultyBadge(string(tally.Difficulty)),
			tally.Correct, tally.Asked, p.Number(tally.Points))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if sum.FinalDifficulty != "" {
		b.WriteString("\n")
		b.WriteString(theme.Centered("Finished at "+sum.FinalDifficulty.Label()+" difficulty", width, theme.TextDim))
	}

	return b.String()
}
