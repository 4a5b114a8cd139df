package source

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/abhisek/triviaz/internal/trivia"
)

//go:embed bank.json
var bankJSON []byte

// Bank serves questions from the built-in offline question bank.
type Bank struct {
	records    []record
	rng        *rand.Rand
	validators []Validator
}

// LocalConfig configures the Bank and File sources.
type LocalConfig struct {
	// Rand picks and orders questions. Nil uses a randomly seeded generator.
	Rand       *rand.Rand
	Validators []Validator
}

func (c LocalConfig) withDefaults() LocalConfig {
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.Validators == nil {
		c.Validators = DefaultValidators()
	}
	return c
}

// NewBank creates a Bank source.
func NewBank(cfg LocalConfig) (*Bank, error) {
	records, err := decodeRecords(bankJSON)
	if err != nil {
		return nil, fmt.Errorf("decode built-in bank: %w", err)
	}
	cfg = cfg.withDefaults()
	return &Bank{records: records, rng: cfg.Rand, validators: cfg.Validators}, nil
}

func (b *Bank) Name() string { return "bank" }

// Fetch returns a random selection of q.Amount questions, restricted to
// q.Category when it is set. Category matching ignores case.
func (b *Bank) Fetch(ctx context.Context, q Query) ([]trivia.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pool, rejected := selectPool(b.records, q, b.rng, b.validators)
	noteRejected(ctx, rejected)
	return pool, nil
}

// Categories lists the bank's categories in sorted order.
func (b *Bank) Categories() []string {
	return categories(b.records)
}

func decodeRecords(data []byte) ([]record, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func selectPool(records []record, q Query, rng *rand.Rand, validators []Validator) ([]trivia.Question, []*ValidationError) {
	var picked []record
	for _, r := range records {
		if q.Category == "" || strings.EqualFold(r.Category, q.Category) {
			picked = append(picked, r)
		}
	}
	rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })

	pool, rejected := buildPool(picked, validators)
	if q.Amount > 0 && len(pool) > q.Amount {
		pool = pool[:q.Amount]
	}
	return pool, rejected
}

func categories(records []record) []string {
	var out []string
	for _, r := range records {
		if r.Category != "" && !slices.Contains(out, r.Category) {
			out = append(out, r.Category)
		}
	}
	slices.Sort(out)
	return out
}
