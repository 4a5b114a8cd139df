package trivia

import (
	"errors"
	"fmt"
)

// ErrEmptyPool is returned when a question source yields no questions,
// whether because the fetch failed or because it returned nothing.
var ErrEmptyPool = errors.New("question pool is empty")

// ConfigurationError reports a pool or question that cannot back a session:
// too few questions, or a question with invalid fields.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
