package session

import (
	"time"

	"github.com/abhisek/triviaz/internal/trivia"
)

// DifficultyTally counts answers for one difficulty.
type DifficultyTally struct {
	Difficulty trivia.Difficulty
	Asked      int
	Correct    int
	Points     int
}

// Summary holds the data displayed when a session ends.
type Summary struct {
	SessionID       string
	PlayerName      string
	Score           int
	Answered        int
	Correct         int
	Accuracy        float64
	BestStreak      int
	FinalDifficulty trivia.Difficulty
	Duration        time.Duration
	ByDifficulty    []DifficultyTally
	Completed       bool
}

// BuildSummary creates a Summary from the session's answered turns.
func BuildSummary(s *QuizSession) *Summary {
	turns := s.Turns()

	tallies := make(map[trivia.Difficulty]*DifficultyTally)
	var correct, streak, best int
	for _, t := range turns {
		d := t.Question.Difficulty()
		tally := tallies[d]
		if tally == nil {
			tally = &DifficultyTally{Difficulty: d}
			tallies[d] = tally
		}
		tally.Asked++
		tally.Points += t.Points

		if t.Correct {
			correct++
			tally.Correct++
			streak++
			if streak > best {
				best = streak
			}
		} else {
			streak = 0
		}
	}

	var byDifficulty []DifficultyTally
	for _, d := range trivia.AllDifficulties() {
		if tally, ok := tallies[d]; ok {
			byDifficulty = append(byDifficulty, *tally)
		}
	}

	var accuracy float64
	if len(turns) > 0 {
		accuracy = float64(correct) / float64(len(turns))
	}

	return &Summary{
		SessionID:       s.ID(),
		PlayerName:      s.User().Name,
		Score:           s.CurrentScore(),
		Answered:        len(turns),
		Correct:         correct,
		Accuracy:        accuracy,
		BestStreak:      best,
		FinalDifficulty: s.Target(),
		Duration:        s.Elapsed(),
		ByDifficulty:    byDifficulty,
		Completed:       s.Completed(),
	}
}
