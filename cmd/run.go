package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/triviaz/internal/app"
	"github.com/abhisek/triviaz/internal/source"
	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/ui/format"
)

// avoidSessions is how many recent sessions feed the llm source's list of
// questions not to repeat.
const avoidSessions = 3

// runApp loads configuration, opens the store, builds the question source
// and launches the TUI.
func runApp(cmd *cobra.Command, skipSplash bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	avoid, err := recentQuestions(ctx, eventRepo, avoidSessions)
	if err != nil {
		warnf("could not read recent questions: %v", err)
	}

	src, err := source.New(ctx, cfg, eventRepo, avoid)
	if err != nil {
		return fmt.Errorf("question source: %w", err)
	}

	tag, err := cfg.Language()
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		EventRepo:  eventRepo,
		Source:     src,
		Query:      source.Query{Amount: cfg.PoolSize, Category: cfg.Category},
		Player:     cfg.Player,
		Printer:    format.New(tag),
		SkipSplash: skipSplash,
	})
}

// recentQuestions returns the question texts of the last n completed
// sessions.
func recentQuestions(ctx context.Context, repo store.EventRepo, n int) ([]string, error) {
	sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: n})
	if err != nil {
		return nil, err
	}
	var texts []string
	for _, s := range sessions {
		answers, err := repo.QueryAnswerEvents(ctx, s.SessionID)
		if err != nil {
			return texts, err
		}
		for _, a := range answers {
			texts = append(texts, a.QuestionText)
		}
	}
	return texts, nil
}
