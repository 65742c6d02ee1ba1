package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Merge is the bottom-up iterative merge sort. Block width doubles from 1
// while it does not exceed n; each pass merges adjacent block pairs.
func Merge(input trace.Array) []trace.Step {
	if steps, ok := trace.Trivial(input); ok {
		return steps
	}
	r := trace.NewRecorder(input)
	n := r.Len()

	for size := 1; size <= n; size *= 2 {
		for lo := 0; lo < n; lo += 2 * size {
			mid := min(lo+size, n)
			hi := min(lo+2*size, n)

			blocks := []trace.RangeHighlight{
				{Start: lo, End: mid - 1, Tone: trace.ToneRed, Label: trace.LabelLeft},
			}
			if mid < n {
				blocks = append(blocks, trace.RangeHighlight{
					Start: mid, End: hi - 1, Tone: trace.ToneGreen, Label: trace.LabelRight,
				})
			}
			r.Emit(trace.ActionCompare, nil, blocks)

			merged, fromLeft, fromRight := mergeBlocks(r.Array()[lo:mid], r.Array()[mid:hi], lo)
			r.Splice(lo, merged)
			r.Emit(trace.ActionSwap, []trace.IndexHighlight{
				{Indices: fromLeft, Tone: trace.ToneRed, Label: trace.LabelLeft},
				{Indices: fromRight, Tone: trace.ToneGreen, Label: trace.LabelRight},
			}, nil)
		}
	}
	return r.Finish()
}

// mergeBlocks merges two sorted runs, taking from left on ties, and
// reports which final positions (offset by base) came from each side.
func mergeBlocks(left, right trace.Array, base int) (trace.Array, []int, []int) {
	merged := make(trace.Array, 0, len(left)+len(right))
	fromLeft := make([]int, 0, len(left))
	fromRight := make([]int, 0, len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if left[i].Value <= right[j].Value {
			fromLeft = append(fromLeft, base+len(merged))
			merged = append(merged, left[i])
			i++
		} else {
			fromRight = append(fromRight, base+len(merged))
			merged = append(merged, right[j])
			j++
		}
	}
	for ; i < len(left); i++ {
		fromLeft = append(fromLeft, base+len(merged))
		merged = append(merged, left[i])
	}
	for ; j < len(right); j++ {
		fromRight = append(fromRight, base+len(merged))
		merged = append(merged, right[j])
	}
	return merged, fromLeft, fromRight
}
