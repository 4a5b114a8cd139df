package source

import (
	"strings"
	"testing"

	"github.com/abhisek/triviaz/internal/trivia"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		q         trivia.Question
		validator string
	}{
		{
			name: "valid",
			q:    trivia.MustNew("Capital of Chile?", []string{"Santiago", "Lima", "Quito"}, 0, trivia.DifficultyMedium),
		},
		{
			name:      "long text",
			q:         trivia.MustNew(strings.Repeat("x", MaxTextLength+1), []string{"a", "b"}, 0, trivia.DifficultyEasy),
			validator: "structural",
		},
		{
			name:      "blank option",
			q:         trivia.MustNew("Blank?", []string{"a", "  "}, 0, trivia.DifficultyEasy),
			validator: "structural",
		},
		{
			name:      "long option",
			q:         trivia.MustNew("Long option?", []string{"a", strings.Repeat("b", MaxTextLength+1)}, 0, trivia.DifficultyEasy),
			validator: "structural",
		},
		{
			name:      "duplicate options",
			q:         trivia.MustNew("Dupes?", []string{"Paris", "Rome", " paris"}, 0, trivia.DifficultyHard),
			validator: "distinct-options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, rejected := Filter([]trivia.Question{tt.q}, DefaultValidators())
			if tt.validator == "" {
				if len(kept) != 1 || len(rejected) != 0 {
					t.Fatalf("expected question kept, got rejections %v", rejected)
				}
				return
			}
			if len(kept) != 0 || len(rejected) != 1 {
				t.Fatalf("expected one rejection, got kept=%d rejected=%d", len(kept), len(rejected))
			}
			if rejected[0].Validator != tt.validator {
				t.Errorf("rejected by %q, want %q", rejected[0].Validator, tt.validator)
			}
			if rejected[0].Question != tt.q.Text() {
				t.Errorf("rejection question = %q", rejected[0].Question)
			}
		})
	}
}

func TestFilter_KeepsOrder(t *testing.T) {
	qs := []trivia.Question{
		trivia.MustNew("one", []string{"a", "b"}, 0, trivia.DifficultyEasy),
		trivia.MustNew("two", []string{"a", "a"}, 0, trivia.DifficultyEasy),
		trivia.MustNew("three", []string{"a", "b"}, 1, trivia.DifficultyHard),
	}
	kept, rejected := Filter(qs, DefaultValidators())
	if len(kept) != 2 || kept[0].Text() != "one" || kept[1].Text() != "three" {
		t.Fatalf("kept = %v", kept)
	}
	if len(rejected) != 1 {
		t.Fatalf("rejected = %v", rejected)
	}
}

func TestRecordToQuestion_Invalid(t *testing.T) {
	tests := []record{
		{Question: "", Options: []string{"a", "b"}, Difficulty: "easy"},
		{Question: "one option", Options: []string{"a"}, Difficulty: "easy"},
		{Question: "bad index", Options: []string{"a", "b"}, CorrectIndex: -1, Difficulty: "easy"},
		{Question: "bad difficulty", Options: []string{"a", "b"}, Difficulty: "extreme"},
	}
	for _, r := range tests {
		if _, verr := r.toQuestion(); verr == nil {
			t.Errorf("record %q should be rejected", r.Question)
		}
	}
}
