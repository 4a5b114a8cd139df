package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/session"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/format"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return s.renderError(width, height)
	case s.sess == nil:
		return s.renderLoading(width, height)
	case s.showingQuit:
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderLoading(width, height int) string {
	frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
	label := "Fetching questions"
	if s.cfg.Source != nil {
		label += " from " + s.cfg.Source.Name()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame+" "+label+"..."))
}

func (s *QuizScreen) renderError(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Could not start the game"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Render(s.errMsg))
	b.WriteString("\n\n")
	hint := "Press any key to go back"
	if s.retryable {
		hint = "Press R to try again, Esc to go back"
	}
	b.WriteString(theme.Hint.Render(hint))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func renderQuitConfirm(width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render("Quit this game?\n\nYour score will not be saved.\n\n" +
			theme.Hint.Render("Y to quit, N to keep playing"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *QuizScreen) renderQuestion(width int) string {
	p := s.cfg.Printer
	q := s.current

	var b strings.Builder

	number := s.sess.QuestionsAnswered() + 1
	if s.showingFeedback {
		number = s.sess.QuestionsAnswered()
	}

	infoLeft := "  " + components.DifficultyBadge(string(q.Difficulty()))
	if q.Category() != "" {
		infoLeft += lipgloss.NewStyle().Foreground(theme.Secondary).Render("  " + q.Category())
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d   %s %s   %s",
			number, session.Length,
			lipgloss.NewStyle().Foreground(theme.Gold).Render("★"),
			p.Number(s.sess.CurrentScore()),
			format.Duration(s.sess.Elapsed()),
		))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 2; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ProgressBar{
		Done:  s.sess.QuestionsAnswered(),
		Total: session.Length,
		Width: cw,
	}.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().
			Width(min(width-8, 72)).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(q.Text())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n")

	if s.showingFeedback {
		b.WriteString(s.renderFeedback(width))
	} else {
		b.WriteString(theme.Centered("Select (1-4) or use arrows + Enter", width, theme.TextDim))
	}
	return b.String()
}

// renderFeedback renders the result of the last answer below the options.
func (s *QuizScreen) renderFeedback(width int) string {
	turn := s.lastTurn
	if turn == nil {
		return ""
	}
	p := s.cfg.Printer

	var b strings.Builder
	if turn.Correct {
		line := "Correct! " + p.Points(turn.Points)
		if turn.Change.Multiplier > 1 {
			line += fmt.Sprintf("  (x%d streak bonus)", turn.Change.Multiplier)
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(line))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(theme.Centered("Answer: "+turn.Question.CorrectAnswer(), width, theme.TextDim))
	}
	b.WriteString("\n")

	switch {
	case turn.Change.Escalated():
		b.WriteString(theme.Centered("▲ Stepping up to "+turn.Change.Current.Label(), width, theme.Accent))
		b.WriteString("\n")
	case turn.Change.Deescalated():
		b.WriteString(theme.Centered("▼ Easing off to "+turn.Change.Current.Label(), width, theme.Secondary))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	next := "Press any key for the next question"
	if turn.Completed {
		next = "Press any key to see your score"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(next)))
	return b.String()
}
