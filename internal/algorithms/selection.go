package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Selection scans the unsorted suffix for its minimum and swaps it onto the
// boundary of the sorted prefix.
func Selection(input trace.Array) []trace.Step {
	if steps, ok := trace.Trivial(input); ok {
		return steps
	}
	r := trace.NewRecorder(input)
	n := r.Len()

	for i := 0; i < n; i++ {
		minIdx := i
		sorted := trace.SortedRange(0, i-1)

		for j := i + 1; j < n; j++ {
			r.Emit(trace.ActionCompare, []trace.IndexHighlight{
				trace.Mark(trace.ToneGreen, trace.LabelMin, minIdx),
				trace.Mark(trace.ToneRed, "", j),
			}, sorted)
			if r.Value(j) < r.Value(minIdx) {
				minIdx = j
				r.Emit(trace.ActionCompare, []trace.IndexHighlight{
					trace.Mark(trace.ToneGreen, trace.LabelMin, minIdx),
				}, sorted)
			}
		}

		if minIdx == i {
			r.Emit(trace.ActionCompare, []trace.IndexHighlight{
				trace.Mark(trace.ToneGreen, trace.LabelMin, i),
			}, sorted)
			continue
		}
		r.Emit(trace.ActionCompare, []trace.IndexHighlight{
			trace.Mark(trace.ToneGreen, trace.LabelMin, minIdx),
			trace.Mark(trace.ToneRed, "", i),
		}, sorted)
		r.Swap(i, minIdx)
		r.Emit(trace.ActionSwap, []trace.IndexHighlight{
			trace.Mark(trace.ToneGreen, trace.LabelMin, i),
		}, sorted)
	}
	return r.Finish()
}
