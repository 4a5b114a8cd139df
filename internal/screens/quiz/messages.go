package quiz

import (
	"time"

	"github.com/abhisek/triviaz/internal/trivia"
)

// poolLoadedMsg is sent when the question source returns.
type poolLoadedMsg struct {
	Questions []trivia.Question
	Rejected  int // questions dropped by validation
	Err       error
}

// timerTickMsg is sent every second to update the elapsed clock.
type timerTickMsg time.Time

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
