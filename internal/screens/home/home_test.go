package home

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/history"
	"github.com/abhisek/triviaz/internal/store"
)

type mockEventRepo struct {
	store.EventRepo
	sessions []store.SessionSummaryRecord
	err      error
}

func (m *mockEventRepo) QuerySessionSummaries(context.Context, store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return m.sessions, m.err
}

func (m *mockEventRepo) BestSession(context.Context) (*store.SessionSummaryRecord, error) {
	var best *store.SessionSummaryRecord
	for i := range m.sessions {
		if best == nil || m.sessions[i].Score > best.Score {
			best = &m.sessions[i]
		}
	}
	return best, m.err
}

type stubScreen struct{ player string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "quiz" }
func (s *stubScreen) Title() string                           { return "Quiz" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }

func testHome(repo store.EventRepo) *HomeScreen {
	return New(Config{
		Repo:   repo,
		Player: "ada",
		NewQuiz: func(player string) screen.Screen {
			return &stubScreen{player: player}
		},
	})
}

func loadStats(t *testing.T, h *HomeScreen) {
	t.Helper()
	cmd := h.Init()
	require.NotNil(t, cmd)
	h.Update(cmd())
}

func TestHome_PlayPushesQuizForPlayer(t *testing.T) {
	h := testHome(&mockEventRepo{})

	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	quiz, ok := msg.Screen.(*stubScreen)
	require.True(t, ok)
	assert.Equal(t, "ada", quiz.player)
}

func TestHome_PlayDisabledWithoutQuizFactory(t *testing.T) {
	h := New(Config{Player: "ada"})
	assert.Equal(t, itemPlayer, h.menu.Selected, "first enabled item is selected")
	assert.True(t, h.menu.Items[itemHistory].Disabled)
}

func TestHome_HistoryPushesHistoryScreen(t *testing.T) {
	h := testHome(&mockEventRepo{})
	h.Update(down())
	h.Update(down())

	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = msg.Screen.(*history.HistoryScreen)
	assert.True(t, ok, "expected history screen")
}

func TestHome_EditPlayerName(t *testing.T) {
	h := testHome(&mockEventRepo{})
	h.Update(down())
	h.Update(enter())
	require.True(t, h.Editing())

	// Clear the prefilled name, then type a new one.
	for range len("ada") {
		h.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	}
	for _, r := range "grace" {
		h.Update(keyPress(r))
	}
	h.Update(enter())

	assert.False(t, h.Editing())
	assert.Equal(t, "grace", h.Player())
	assert.Equal(t, "PLAYER: grace", h.menu.Items[itemPlayer].Label)
	assert.Equal(t, itemPlayer, h.menu.Selected)
}

func TestHome_EditCancelKeepsName(t *testing.T) {
	h := testHome(&mockEventRepo{})
	h.Update(down())
	h.Update(enter())
	h.Update(keyPress('x'))
	h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	assert.False(t, h.Editing())
	assert.Equal(t, "ada", h.Player())
}

func TestHome_StatsAndStatus(t *testing.T) {
	repo := &mockEventRepo{sessions: []store.SessionSummaryRecord{
		{SessionID: "s-3", Score: 800},
		{SessionID: "s-2", Score: 2400},
		{SessionID: "s-1", Score: 1200},
	}}
	h := testHome(repo)
	loadStats(t, h)

	assert.Equal(t, 3, h.stats.Games)
	assert.Equal(t, 2400, h.stats.Best.Score)
	assert.Equal(t, "s-3", h.stats.Last.SessionID)
	assert.Equal(t, "ada  ★ best 2,400", h.Status())

	view := h.View(100, 34)
	assert.Contains(t, view, "3 GAMES")
	assert.Contains(t, view, "BEST 2,400")
}

func TestHome_NoGames(t *testing.T) {
	h := testHome(&mockEventRepo{})
	loadStats(t, h)
	assert.Equal(t, "ada", h.Status())
	assert.Contains(t, h.View(100, 34), "No games yet")
}

func TestHome_StatsError(t *testing.T) {
	h := testHome(&mockEventRepo{err: errors.New("locked")})
	loadStats(t, h)
	assert.Contains(t, h.View(100, 34), "locked")
}

func TestHome_ResumeReloadsStats(t *testing.T) {
	repo := &mockEventRepo{}
	h := testHome(repo)
	loadStats(t, h)
	assert.Equal(t, 0, h.stats.Games)

	repo.sessions = []store.SessionSummaryRecord{{SessionID: "s-1", Score: 600}}
	cmd := h.Resume()
	require.NotNil(t, cmd)
	h.Update(cmd())
	assert.Equal(t, 1, h.stats.Games)
}

func TestHome_QuitItem(t *testing.T) {
	h := testHome(&mockEventRepo{})
	for range 3 {
		h.Update(down())
	}
	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
