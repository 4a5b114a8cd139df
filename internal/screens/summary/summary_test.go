package summary

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/session"
	"github.com/abhisek/triviaz/internal/trivia"
)

func testSummary() *session.Summary {
	return &session.Summary{
		SessionID:       "s-1",
		PlayerName:      "ada",
		Score:           1200,
		Answered:        10,
		Correct:         8,
		Accuracy:        0.8,
		BestStreak:      5,
		FinalDifficulty: trivia.DifficultyHard,
		Duration:        3*time.Minute + 7*time.Second,
		ByDifficulty: []session.DifficultyTally{
			{Difficulty: trivia.DifficultyMedium, Asked: 4, Correct: 3, Points: 600},
			{Difficulty: trivia.DifficultyHard, Asked: 6, Correct: 5, Points: 600},
		},
		Completed: true,
	}
}

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                           { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                    { return "quiz" }
func (stubScreen) Title() string                           { return "Quiz" }

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil, 0, nil)
	assert.Equal(t, "Final Score", s.Title())
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), nil, 0, nil)
	view := s.View(100, 30)

	assert.Contains(t, view, "Game over, ada!")
	assert.Contains(t, view, "1,200 POINTS")
	assert.Contains(t, view, "8/10")
	assert.Contains(t, view, "80%")
	assert.Contains(t, view, "3:07")
	assert.Contains(t, view, "Hard difficulty")
}

func TestSummaryScreen_NewBest(t *testing.T) {
	assert.True(t, New(testSummary(), nil, 900, nil).NewBest())
	assert.False(t, New(testSummary(), nil, 1200, nil).NewBest())
	assert.Contains(t, New(testSummary(), nil, 0, nil).View(100, 30), "NEW HIGH SCORE")
}

func TestSummaryScreen_PlayAgain(t *testing.T) {
	calls := 0
	s := New(testSummary(), nil, 0, func() screen.Screen {
		calls++
		return stubScreen{}
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	assert.Equal(t, "Quiz", msg.Screen.Title())
	assert.Equal(t, 1, calls)
}

func TestSummaryScreen_PlayAgainDisabled(t *testing.T) {
	s := New(testSummary(), nil, 0, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Len(t, s.KeyHints(), 1)
}

func TestSummaryScreen_EscGoesHome(t *testing.T) {
	s := New(testSummary(), nil, 0, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopToRootMsg)
	assert.True(t, ok, "expected PopToRootMsg")
}
