package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/ui/theme"
)

// ProgressBar shows how far through the session the player is, as a
// segmented bar with one cell per question.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// View renders the bar followed by a "done/total" counter.
func (p ProgressBar) View() string {
	if p.Total <= 0 {
		return ""
	}
	counter := fmt.Sprintf("  %d/%d", p.Done, p.Total)
	barWidth := max(p.Width-lipgloss.Width(counter), p.Total)

	filled := min(barWidth*p.Done/p.Total, barWidth)
	empty := barWidth - filled

	return lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", empty)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
}
