package session

import "fmt"

// InvalidStateError reports an operation called in a phase that does not
// allow it. It is a caller bug; the session is left untouched.
type InvalidStateError struct {
	Op    string
	Phase Phase
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s called while %s", e.Op, e.Phase)
}
