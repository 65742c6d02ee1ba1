package trace

import "slices"

// Validate checks the structural invariants every step sequence must hold
// for the given input.
func Validate(input Array, steps []Step) error {
	if len(steps) == 0 {
		return ErrEmptyTrace
	}
	first, last := steps[0], steps[len(steps)-1]
	if first.Action != ActionStart || !slices.Equal(first.State, input) {
		return &StepError{Index: 0, Wrapped: ErrBadStart}
	}
	if last.Action != ActionDone || !last.State.IsSorted() {
		return &StepError{Index: len(steps) - 1, Wrapped: ErrBadEnd}
	}
	if len(input) > 0 && !coversAll(last, len(input)) {
		return &StepError{Index: len(steps) - 1, Wrapped: ErrBadEnd}
	}
	for i, s := range steps {
		if !input.SameElements(s.State) {
			return &StepError{Index: i, Wrapped: ErrNotPermutation}
		}
		if !inBounds(s, len(input)) {
			return &StepError{Index: i, Wrapped: ErrHighlightBounds}
		}
	}
	return nil
}

func coversAll(s Step, n int) bool {
	for _, r := range s.Ranges {
		if r.Start == 0 && r.End == n-1 {
			return true
		}
	}
	return false
}

func inBounds(s Step, n int) bool {
	for _, h := range s.Indices {
		for _, i := range h.Indices {
			if i < 0 || i >= n {
				return false
			}
		}
	}
	for _, r := range s.Ranges {
		if r.Start < 0 || r.End >= n || r.Start > r.End {
			return false
		}
	}
	return true
}
