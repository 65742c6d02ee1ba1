package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Bubble compares each adjacent pair left to right and swaps when the left
// value is larger. After pass i the suffix [n-i, n-1] holds its final values.
func Bubble(input trace.Array) []trace.Step {
	if steps, ok := trace.Trivial(input); ok {
		return steps
	}
	r := trace.NewRecorder(input)
	n := r.Len()

	for i := 0; i < n-1; i++ {
		sorted := trace.SortedRange(n-i, n-1)
		for j := 0; j < n-i-1; j++ {
			pair := []trace.IndexHighlight{trace.Mark(trace.ToneRed, "", j, j+1)}
			r.Emit(trace.ActionCompare, pair, sorted)
			if r.Value(j) > r.Value(j+1) {
				r.Swap(j, j+1)
				r.Emit(trace.ActionSwap, pair, sorted)
			}
		}
	}
	return r.Finish()
}
