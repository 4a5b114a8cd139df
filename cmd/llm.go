package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/ui/format"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect logged requests made by the llm question source",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent model requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failedOnly, _ := cmd.Flags().GetBool("failed")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		var shown []store.LLMRequestEventRecord
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			if failedOnly && e.Success {
				continue
			}
			shown = append(shown, e)
		}
		if len(shown) == 0 {
			fmt.Println("No model requests logged.")
			return nil
		}

		p := format.Default()
		fmt.Printf("%5s  %-16s  %-10s  %-28s  %8s  %8s  %7s\n",
			"ID", "When", "Provider", "Model", "In", "Out", "Ms")
		fmt.Println(strings.Repeat("─", 94))

		var in, out int
		for _, e := range shown {
			line := fmt.Sprintf("%5d  %-16s  %-10s  %-28s  %8s  %8s  %7d",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				e.Provider,
				truncate(e.Model, 28),
				p.Number(e.InputTokens),
				p.Number(e.OutputTokens),
				e.LatencyMs,
			)
			if !e.Success {
				line += "  ✗ " + truncate(e.ErrorMessage, 40)
			}
			fmt.Println(line)
			in += e.InputTokens
			out += e.OutputTokens
		}
		fmt.Println(strings.Repeat("─", 94))
		fmt.Printf("%d requests, %s tokens in, %s tokens out\n", len(shown), p.Number(in), p.Number(out))
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply of one request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("no request with id %d", id)
		}

		status := "ok"
		if !e.Success {
			status = "failed: " + e.ErrorMessage
		}
		fmt.Printf("#%d  %s  %s/%s  (%s)\n", e.ID, e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Provider, e.Model, e.Purpose)
		fmt.Printf("%d tokens in, %d out, %dms, %s\n", e.InputTokens, e.OutputTokens, e.LatencyMs, status)

		printSection("Prompt", e.RequestBody)
		printSection("Reply", e.ResponseBody)
		return nil
	},
}

func printSection(title, body string) {
	fmt.Printf("\n── %s %s\n", title, strings.Repeat("─", 56-len(title)))
	if body == "" {
		body = "(empty)"
	}
	fmt.Println(strings.TrimRight(body, "\n"))
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to read")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show this purpose, e.g. trivia-gen")
	llmListCmd.Flags().Bool("failed", false, "Only show failed requests")

	llmCmd.AddCommand(llmListCmd, llmViewCmd)
}
