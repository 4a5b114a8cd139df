package source

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/goccy/go-json"

	"github.com/abhisek/triviaz/internal/trivia"
)

// File serves questions from a JSON file in the bank format: an array of
// objects with question, options, correct_index, difficulty and category.
type File struct {
	path       string
	rng        *rand.Rand
	validators []Validator
}

// NewFile creates a File source. The file is read on every Fetch.
func NewFile(path string, cfg LocalConfig) *File {
	cfg = cfg.withDefaults()
	return &File{path: path, rng: cfg.Rand, validators: cfg.Validators}
}

func (f *File) Name() string { return "file" }

func (f *File) Fetch(ctx context.Context, q Query) ([]trivia.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	records, err := decodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("decode question file %s: %w", f.path, err)
	}
	pool, rejected := selectPool(records, q, f.rng, f.validators)
	noteRejected(ctx, rejected)
	return pool, nil
}

// WriteFile writes questions to path in the format File reads.
func WriteFile(path string, questions []trivia.Question) error {
	records := make([]record, len(questions))
	for i, q := range questions {
		records[i] = fromQuestion(q)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write question file: %w", err)
	}
	return nil
}
