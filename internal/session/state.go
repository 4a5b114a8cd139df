package session

import "fmt"

// Length is the number of turns in every session.
const Length = 10

// Phase is the lifecycle phase of a sequencer.
type Phase int

const (
	PhaseNotStarted Phase = iota // Waiting for Start
	PhaseInProgress              // Serving questions
	PhaseCompleted               // Final score reported; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// User is the player of a session. Score only ever grows, and only through
// scoring a correct answer.
type User struct {
	Name  string
	Score int
}
