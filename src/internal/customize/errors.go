package customize

import (
	"errors"
	"fmt"
)

// ErrNoPageDigits is returned by PageEndash when pages holds no number.
var ErrNoPageDigits = errors.New("pages field has no digits")

// StepError records which pipeline step failed for which entry.
type StepError struct {
	Step  string
	Entry string
	Err   error
}

func (e *StepError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s (entry %s): %v", e.Step, e.Entry, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// IsNoPageDigits reports whether err comes from a digit-less pages field.
func IsNoPageDigits(err error) bool {
	return errors.Is(err, ErrNoPageDigits)
}
