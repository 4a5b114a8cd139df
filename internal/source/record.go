package source

import (
	"github.com/abhisek/triviaz/internal/trivia"
)

// record is the on-disk and LLM wire form of a question.
type record struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category,omitempty"`
}

func (r record) toQuestion() (trivia.Question, *ValidationError) {
	d, err := trivia.ParseDifficulty(r.Difficulty)
	if err == nil {
		var q trivia.Question
		if q, err = trivia.New(r.Question, r.Options, r.CorrectIndex, d, r.Category); err == nil {
			return q, nil
		}
	}
	return trivia.Question{}, &ValidationError{
		Validator: "structural",
		Question:  r.Question,
		Message:   err.Error(),
	}
}

func fromQuestion(q trivia.Question) record {
	return record{
		Question:     q.Text(),
		Options:      q.Options(),
		CorrectIndex: q.CorrectIndex(),
		Difficulty:   string(q.Difficulty()),
		Category:     q.Category(),
	}
}

// buildPool converts records and runs the validator chain. Records that
// cannot become questions are rejected like any other validation failure.
func buildPool(records []record, validators []Validator) ([]trivia.Question, []*ValidationError) {
	var rejected []*ValidationError
	questions := make([]trivia.Question, 0, len(records))
	for _, r := range records {
		q, verr := r.toQuestion()
		if verr != nil {
			rejected = append(rejected, verr)
			continue
		}
		questions = append(questions, q)
	}
	kept, failed := Filter(questions, validators)
	return kept, append(rejected, failed...)
}
