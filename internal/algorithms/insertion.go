package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Insertion sinks element i leftwards through the sorted prefix [0, i-1]
// until its left neighbour is no larger.
func Insertion(input trace.Array) []trace.Step {
	if steps, ok := trace.Trivial(input); ok {
		return steps
	}
	r := trace.NewRecorder(input)
	n := r.Len()

	for i := 1; i < n; i++ {
		sorted := trace.SortedRange(0, i-1)
		for j := i; j > 0; j-- {
			r.Emit(trace.ActionCompare, []trace.IndexHighlight{
				trace.Mark(trace.ToneRed, "", j-1, j),
			}, sorted)
			if r.Value(j-1) <= r.Value(j) {
				break
			}
			r.Swap(j-1, j)
			r.Emit(trace.ActionSwap, []trace.IndexHighlight{
				trace.Mark(trace.ToneRed, "", j-1),
			}, sorted)
		}
	}
	return r.Finish()
}
