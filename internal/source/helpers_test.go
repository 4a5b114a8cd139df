package source

import (
	"math/rand/v2"

	"github.com/abhisek/triviaz/internal/trivia"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func countDifficulty(pool []trivia.Question, d trivia.Difficulty) int {
	n := 0
	for _, q := range pool {
		if q.Difficulty() == d {
			n++
		}
	}
	return n
}
