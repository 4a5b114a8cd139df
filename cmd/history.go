package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/ui/format"
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "Show recent games, or the answers of one game",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		fetches, _ := cmd.Flags().GetBool("fetches")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()
		if len(args) == 1 {
			return printAnswers(ctx, repo, args[0])
		}
		if fetches {
			return printFetches(ctx, repo, limit)
		}

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No games played yet.")
			return nil
		}

		p := format.Default()
		fmt.Printf("%-36s  %-16s  %-12s  %8s  %7s  %6s  %6s  %s\n",
			"Session", "Played", "Player", "Score", "Correct", "Streak", "Time", "Source")
		fmt.Println(strings.Repeat("─", 118))
		for _, sess := range sessions {
			fmt.Printf("%-36s  %-16s  %-12s  %8s  %4d/%-2d  %6d  %6s  %s\n",
				sess.SessionID,
				sess.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(sess.Player, 12),
				p.Number(sess.Score),
				sess.CorrectAnswers, sess.QuestionsServed,
				sess.BestStreak,
				format.Duration(time.Duration(sess.DurationSecs)*time.Second),
				sess.Source,
			)
		}

		best, err := repo.BestSession(ctx)
		if err != nil {
			return fmt.Errorf("query best session: %w", err)
		}
		if best != nil {
			fmt.Printf("\nBest: %s by %s on %s\n",
				p.Number(best.Score), best.Player, best.Timestamp.Local().Format("2006-01-02"))
		}
		return nil
	},
}

func printAnswers(ctx context.Context, repo store.EventRepo, sessionID string) error {
	answers, err := repo.QueryAnswerEvents(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("query answers: %w", err)
	}
	if len(answers) == 0 {
		return fmt.Errorf("no answers recorded for session %s", sessionID)
	}

	for _, a := range answers {
		mark := "✓"
		if !a.Correct {
			mark = "✗"
		}
		fmt.Printf("%s %2d. [%s] %s\n", mark, a.Turn, a.Difficulty, a.QuestionText)
		if a.Correct {
			fmt.Printf("        %s  (+%d, x%d)  %dms\n", a.SelectedAnswer, a.Points, a.Multiplier, a.TimeMs)
		} else {
			fmt.Printf("        chose %s, answer %s  %dms\n", a.SelectedAnswer, a.CorrectAnswer, a.TimeMs)
		}
	}
	return nil
}

func printFetches(ctx context.Context, repo store.EventRepo, limit int) error {
	events, err := repo.QueryFetchEvents(ctx, store.QueryOpts{Limit: limit})
	if err != nil {
		return fmt.Errorf("query fetches: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No fetches recorded.")
		return nil
	}

	fmt.Printf("%-19s  %-8s  %-20s  %5s  %5s  %5s  %7s  %s\n",
		"Timestamp", "Source", "Category", "Asked", "Got", "Drop", "Ms", "OK")
	fmt.Println(strings.Repeat("─", 91))
	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗ " + truncate(e.ErrorMessage, 40)
		}
		fmt.Printf("%-19s  %-8s  %-20s  %5d  %5d  %5d  %7d  %s\n",
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Source,
			truncate(e.Category, 20),
			e.Requested, e.Received, e.Rejected, e.LatencyMs,
			ok,
		)
	}
	return nil
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of rows to show")
	historyCmd.Flags().Bool("fetches", false, "List question source fetches instead of games")
}
