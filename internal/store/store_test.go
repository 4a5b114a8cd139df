package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"session_events", "answer_events", "fetch_events", "llm_request_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestOpenTwiceOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triviaz.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendFetchEvent(context.Background(), FetchEventData{Source: "bank", Success: true}))
	require.NoError(t, s.Close())

	// Re-migrating an existing database keeps its rows.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	events, err := s.EventRepo().QueryFetchEvents(context.Background(), QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	// Open already seeded the counter; a second init must not reset it.
	sc, err := newSequenceCounter(db)
	require.NoError(t, err)

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		require.NoError(t, err)
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendFetchEvent(ctx, FetchEventData{Source: "opentdb", Requested: 10, Received: 10, Success: true}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionStart}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", Turn: 1, QuestionText: "q", Difficulty: "medium"}))

	fetches, err := repo.QueryFetchEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, fetches, 1)

	answers, err := repo.QueryAnswerEvents(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, answers, 1)

	assert.Equal(t, int64(1), fetches[0].Sequence)
	assert.Equal(t, int64(3), answers[0].Sequence)
}

func TestFetchEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendFetchEvent(ctx, FetchEventData{
		Source: "llm", Category: "science", Requested: 10, Received: 7, Rejected: 3,
		LatencyMs: 420, Success: true,
	}))
	require.NoError(t, repo.AppendFetchEvent(ctx, FetchEventData{
		Source: "opentdb", Requested: 10, ErrorMessage: "response code 1",
	}))

	events, err := repo.QueryFetchEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "opentdb", events[0].Source)
	assert.Equal(t, 0, events[0].Rejected)
	assert.False(t, events[0].Success)
	assert.Equal(t, "response code 1", events[0].ErrorMessage)

	assert.Equal(t, "llm", events[1].Source)
	assert.Equal(t, 7, events[1].Received)
	assert.Equal(t, 3, events[1].Rejected)
	assert.True(t, events[1].Success)
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	scores := []int{800, 2400, 1200}
	for i, score := range scores {
		id := fmt.Sprintf("s%d", i+1)
		require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: id, Player: "ada", Action: ActionStart, Source: "bank",
		}))
		require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:       id,
			Player:          "ada",
			Action:          ActionEnd,
			Source:          "bank",
			QuestionsServed: 10,
			CorrectAnswers:  7,
			Score:           score,
			BestStreak:      4,
			FinalDifficulty: "hard",
			DurationSecs:    95,
		}))
	}

	summaries, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, summaries, 3, "only end events are summaries")

	// Newest first.
	assert.Equal(t, "s3", summaries[0].SessionID)
	assert.Equal(t, "s1", summaries[2].SessionID)
	assert.Equal(t, 1200, summaries[0].Score)
	assert.Equal(t, "hard", summaries[0].FinalDifficulty)
	assert.Equal(t, "ada", summaries[0].Player)
	assert.WithinDuration(t, time.Now(), summaries[0].Timestamp, time.Minute)

	limited, err := repo.QuerySessionSummaries(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	best, err := repo.BestSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "s2", best.SessionID)
	assert.Equal(t, 2400, best.Score)
}

func TestSessionEventValidation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	assert.Error(t, repo.AppendSessionEvent(ctx, SessionEventData{Action: ActionStart}))
	assert.Error(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "x", Action: "pause"}))
}

func TestBestSessionEmpty(t *testing.T) {
	s := openTestStore(t)

	best, err := s.EventRepo().BestSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestAnswerEventsInTurnOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for turn := 1; turn <= 3; turn++ {
		require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:      "s1",
			Turn:           turn,
			QuestionText:   fmt.Sprintf("question %d", turn),
			Category:       "Science",
			Difficulty:     "medium",
			CorrectAnswer:  "a",
			SelectedAnswer: "a",
			Correct:        turn != 2,
			Points:         200,
			Multiplier:     1,
			NextDifficulty: "medium",
			TimeMs:         1500,
		}))
	}
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "other", Turn: 1, QuestionText: "x", Difficulty: "easy"}))

	answers, err := repo.QueryAnswerEvents(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, answers, 3)
	for i, a := range answers {
		assert.Equal(t, i+1, a.Turn)
	}
	assert.False(t, answers[1].Correct)
	assert.True(t, answers[2].Correct)
	assert.Equal(t, "Science", answers[0].Category)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "m1", Purpose: "trivia-gen",
		InputTokens: 120, OutputTokens: 800, LatencyMs: 900, Success: true,
		RequestBody: "[user]\nten questions\n", ResponseBody: `{"questions":[]}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "m2", Purpose: "trivia-gen", Success: false, ErrorMessage: "rate limited",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "openai", events[0].Provider)
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)
	assert.Equal(t, 800, events[1].OutputTokens)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: events[1].Sequence})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "openai", after[0].Provider)

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "[user]\nten questions\n", got.RequestBody)
	assert.Equal(t, `{"questions":[]}`, got.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionEnd, Score: 100}))
	require.NoError(t, repo.AppendFetchEvent(ctx, FetchEventData{Source: "bank", Success: true}))

	require.NoError(t, s.Reset(ctx))

	summaries, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, summaries)

	fetches, err := repo.QueryFetchEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, fetches)

	// Sequence numbers keep growing after a reset.
	require.NoError(t, repo.AppendFetchEvent(ctx, FetchEventData{Source: "bank", Success: true}))
	fetches, err = repo.QueryFetchEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, fetches, 1)
	assert.Equal(t, int64(3), fetches[0].Sequence)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "db.sqlite")
		t.Setenv("TRIVIAZ_DB", want)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.DirExists(t, filepath.Dir(want))
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("TRIVIAZ_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "triviaz", "triviaz.db"), got)
	})
}
