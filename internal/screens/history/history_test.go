package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/store"
)

type mockEventRepo struct {
	store.EventRepo
	sessions    []store.SessionSummaryRecord
	answers     map[string][]store.AnswerEventRecord
	answerCalls int
	sessionsErr error
	lastOpts    store.QueryOpts
}

func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, opts store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	m.lastOpts = opts
	return m.sessions, m.sessionsErr
}

func (m *mockEventRepo) QueryAnswerEvents(_ context.Context, sessionID string) ([]store.AnswerEventRecord, error) {
	m.answerCalls++
	return m.answers[sessionID], nil
}

func testRepo() *mockEventRepo {
	ts := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	return &mockEventRepo{
		sessions: []store.SessionSummaryRecord{
			{SessionID: "s-2", Player: "ada", Source: "bank", Timestamp: ts, QuestionsServed: 10, CorrectAnswers: 9, Score: 2400, BestStreak: 7, DurationSecs: 95},
			{SessionID: "s-1", Player: "grace", Source: "opentdb", Timestamp: ts.Add(-time.Hour), QuestionsServed: 10, CorrectAnswers: 4, Score: 800, BestStreak: 2, DurationSecs: 60},
		},
		answers: map[string][]store.AnswerEventRecord{
			"s-2": {
				{AnswerEventData: store.AnswerEventData{SessionID: "s-2", Turn: 1, QuestionText: "Capital of France?", Difficulty: "medium", CorrectAnswer: "Paris", Correct: true, Points: 200}},
				{AnswerEventData: store.AnswerEventData{SessionID: "s-2", Turn: 2, QuestionText: "Largest planet?", Difficulty: "medium", CorrectAnswer: "Jupiter", Correct: false}},
			},
		},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestHistory_ListsSessions(t *testing.T) {
	repo := testRepo()
	s := New(repo, nil)
	load(t, s)

	assert.Equal(t, Limit, repo.lastOpts.Limit)
	view := s.View(120, 30)
	assert.Contains(t, view, "ada")
	assert.Contains(t, view, "2,400")
	assert.Contains(t, view, "9/10 (90%)")
	assert.Contains(t, view, "1:35")
	assert.Contains(t, view, "grace")
}

func TestHistory_Empty(t *testing.T) {
	s := New(&mockEventRepo{}, nil)
	load(t, s)
	assert.Contains(t, s.View(80, 24), "No games yet")
}

func TestHistory_LoadError(t *testing.T) {
	s := New(&mockEventRepo{sessionsErr: errors.New("disk gone")}, nil)
	load(t, s)
	assert.Contains(t, s.View(80, 24), "disk gone")
}

func TestHistory_ExpandLoadsAnswersOnce(t *testing.T) {
	repo := testRepo()
	s := New(repo, nil)
	load(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Contains(t, s.View(120, 30), "loading...")
	s.Update(cmd())

	view := s.View(120, 30)
	assert.Contains(t, view, "Capital of France?")
	assert.Contains(t, view, "answer: Jupiter")

	// Collapse and expand again: served from cache.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, repo.answerCalls)
}

func TestHistory_Navigation(t *testing.T) {
	s := New(testRepo(), nil)
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
