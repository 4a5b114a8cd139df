package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/triviaz/internal/source"
	"github.com/abhisek/triviaz/internal/store"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a question pool without playing",
	Long: `Fetch questions from the configured source and print them.

Useful for checking a source works, or, with --out, for building a JSON
question file to play offline with --source file.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntP("amount", "n", 0, "Number of questions (default: configured pool size)")
	fetchCmd.Flags().StringP("out", "o", "", "Write the pool to a JSON question file")
	fetchCmd.Flags().Bool("answers", false, "Mark the correct option")
	fetchCmd.Flags().Bool("no-log", false, "Do not record the fetch in the event log")
}

func runFetch(cmd *cobra.Command, args []string) error {
	amount, _ := cmd.Flags().GetInt("amount")
	out, _ := cmd.Flags().GetString("out")
	showAnswers, _ := cmd.Flags().GetBool("answers")
	noLog, _ := cmd.Flags().GetBool("no-log")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if amount <= 0 {
		amount = cfg.PoolSize
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var repo store.EventRepo
	if !noLog {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		repo = st.EventRepo()
	}

	src, err := source.New(ctx, cfg, repo, nil)
	if err != nil {
		return fmt.Errorf("question source: %w", err)
	}

	ctx, stats := source.WithStats(ctx)
	questions, err := source.Load(ctx, src, source.Query{Amount: amount, Category: cfg.Category})
	for _, r := range stats.Rejected() {
		warnf("dropped %q: %v", truncate(r.Question, 60), r)
	}
	if err != nil {
		return err
	}

	if out != "" {
		if err := source.WriteFile(out, questions); err != nil {
			return err
		}
		fmt.Printf("Wrote %d questions to %s\n", len(questions), out)
		return nil
	}

	for i, q := range questions {
		header := fmt.Sprintf("── %d/%d  [%s]", i+1, len(questions), q.Difficulty())
		if q.Category() != "" {
			header += "  " + q.Category()
		}
		fmt.Println(header)
		fmt.Println(q.Text())
		for j, opt := range q.Options() {
			mark := " "
			if showAnswers && j == q.CorrectIndex() {
				mark = "✓"
			}
			fmt.Printf("  %s %d) %s\n", mark, j+1, opt)
		}
		fmt.Println()
	}
	fmt.Printf("%d questions from %s\n", len(questions), src.Name())
	if len(questions) < amount {
		warnf("asked for %d, got %d", amount, len(questions))
	}
	return nil
}
