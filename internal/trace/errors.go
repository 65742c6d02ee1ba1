package trace

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAction = errors.New("trace: unknown action")

	// ErrEmptyTrace indicates a step sequence with no steps at all.
	ErrEmptyTrace = errors.New("trace: empty step sequence")

	ErrBadStart = errors.New("trace: first step must be an unmodified start")
	ErrBadEnd   = errors.New("trace: last step must be a sorted done step")

	// ErrNotPermutation indicates a step whose state gained, lost or
	// duplicated an element.
	ErrNotPermutation = errors.New("trace: step state is not a permutation of the input")

	ErrHighlightBounds = errors.New("trace: highlight outside array bounds")
)

// StepError ties a validation failure to the offending step.
type StepError struct {
	Index   int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Index, e.Wrapped)
}

func (e *StepError) Unwrap() error { return e.Wrapped }
