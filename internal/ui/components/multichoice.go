package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/ui/theme"
)

// ChoiceMsg is emitted when the player locks in an option.
type ChoiceMsg struct {
	Index int
}

// MultiChoice is a four-way answer picker. Options can be chosen with the
// arrow keys and enter, or directly with 1-4 / a-d. Once Reveal is called it
// stops accepting input and colors the correct and chosen options.
type MultiChoice struct {
	Options     []string
	Selected    int
	Locked      bool
	ChosenIndex int
	RevealIndex int
}

// NewMultiChoice creates a new answer picker.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:     options,
		ChosenIndex: -1,
		RevealIndex: -1,
	}
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Locked {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter":
		return m.lock(m.Selected)
	}

	if i, ok := hotkeyIndex(key); ok && i < len(m.Options) {
		m.Selected = i
		return m.lock(i)
	}
	return m, nil
}

func (m MultiChoice) lock(i int) (MultiChoice, tea.Cmd) {
	m.Locked = true
	m.ChosenIndex = i
	return m, func() tea.Msg { return ChoiceMsg{Index: i} }
}

func hotkeyIndex(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
		return n - 1, true
	}
	if key[0] >= 'a' && key[0] <= 'i' {
		return int(key[0] - 'a'), true
	}
	return 0, false
}

// Reveal marks correct as the right answer.
func (m *MultiChoice) Reveal(correct int) {
	m.Locked = true
	m.RevealIndex = correct
}

// View renders the options.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.RevealIndex >= 0 && i == m.RevealIndex:
			style = theme.Correct
		case m.RevealIndex >= 0 && i == m.ChosenIndex:
			style = theme.Incorrect
		case m.RevealIndex >= 0:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		}
		s += style.Render(line) + "\n"
	}
	return s
}
