package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/abhisek/triviaz/internal/llm"
	"github.com/abhisek/triviaz/internal/trivia"
)

// TriviaSchema is the JSON schema an LLM must follow for a batch of questions.
var TriviaSchema = &llm.Schema{
	Name:        "trivia-batch",
	Description: "A batch of multiple-choice trivia questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt, self-contained and unambiguous",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 distinct answer options",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct option",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"category": map[string]any{
							"type":        "string",
							"description": "Short topic label, e.g. Science or History",
						},
					},
					"required":             []any{"question", "options", "correct_index", "difficulty", "category"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

const llmSystemPrompt = `You are a quiz master writing multiple-choice trivia questions for adults.

Rules:
- Every question has exactly 4 options and exactly one correct answer.
- Options must be distinct and plausible. Avoid "all of the above" and "none of the above".
- Facts must be accurate and not time-sensitive.
- Use plain text. No markdown, no HTML entities.
- Mix difficulties: roughly a quarter easy, half medium, a quarter hard.
- Do not repeat any question from the "already asked" list.`

// LLMConfig controls the LLM source.
type LLMConfig struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds one fetch including provider retries. Zero means no
	// limit beyond the caller's context.
	Timeout time.Duration

	// Avoid lists recently asked questions to keep out of new batches.
	Avoid    []string
	MaxAvoid int

	Validators []Validator
}

// DefaultLLMConfig returns the recommended LLM source settings.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		MaxTokens:   4096,
		Temperature: 0.8,
		MaxAvoid:    20,
		Validators:  DefaultValidators(),
	}
}

// LLM generates question pools with a language model.
type LLM struct {
	provider llm.Provider
	config   LLMConfig
}

// NewLLM creates an LLM source.
func NewLLM(provider llm.Provider, cfg LLMConfig) *LLM {
	if cfg.Validators == nil {
		cfg.Validators = DefaultValidators()
	}
	return &LLM{provider: provider, config: cfg}
}

func (s *LLM) Name() string { return "llm" }

type llmBatch struct {
	Questions []record `json:"questions"`
}

func (s *LLM) Fetch(ctx context.Context, q Query) ([]trivia.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTriviaGen)
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      llmSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(q, s.config)}},
		Schema:      TriviaSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	var batch llmBatch
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, fmt.Errorf("parse generated questions: %w", err)
	}
	if q.Category != "" {
		for i := range batch.Questions {
			if batch.Questions[i].Category == "" {
				batch.Questions[i].Category = q.Category
			}
		}
	}

	pool, rejected := buildPool(batch.Questions, s.config.Validators)
	noteRejected(ctx, rejected)
	if q.Amount > 0 && len(pool) > q.Amount {
		pool = pool[:q.Amount]
	}
	return pool, nil
}

func buildUserMessage(q Query, cfg LLMConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of questions: %d\n", max(q.Amount, 1))
	category := q.Category
	if category == "" {
		category = "any (mix several topics)"
	}
	fmt.Fprintf(&b, "Category: %s\n", category)

	b.WriteString("\nAlready asked:\n")
	b.WriteString(buildAvoidList(cfg.Avoid, cfg.MaxAvoid))

	return b.String()
}

// buildAvoidList formats recent questions for the prompt, keeping only the
// most recent max of them. Returns "None" when there are none.
func buildAvoidList(asked []string, max int) string {
	if len(asked) == 0 {
		return "None"
	}
	if max > 0 && len(asked) > max {
		asked = asked[len(asked)-max:]
	}

	var b strings.Builder
	for i, q := range asked {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
