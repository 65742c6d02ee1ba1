package algorithms

import (
	"slices"

	"github.com/san-kum/sortviz/internal/trace"
)

// Quick is an in-place quicksort over [start, end]. The pivot is the
// median of the values at start, (start+end)/2 and end, moved to end
// before a Lomuto-style partition.
func Quick(input trace.Array) []trace.Step {
	if steps, ok := trace.Trivial(input); ok {
		return steps
	}
	r := trace.NewRecorder(input)
	quickSort(r, 0, r.Len()-1)
	return r.Finish()
}

func quickSort(r *trace.Recorder, start, end int) {
	if start >= end {
		return
	}
	active := []trace.RangeHighlight{{Start: start, End: end, Label: trace.LabelSorting}}
	mid := (start + end) / 2

	r.Emit(trace.ActionCompare, []trace.IndexHighlight{
		trace.Mark(trace.ToneRed, "", start),
		trace.Mark(trace.ToneRed, "", mid),
		trace.Mark(trace.ToneRed, "", end),
	}, active)

	median := medianOfThree(r, start, mid, end)
	r.Emit(trace.ActionCompare, []trace.IndexHighlight{
		trace.Mark(trace.ToneRed, trace.LabelMedian, median),
	}, active)

	placed := trace.ActionCompare
	if median != end {
		r.Swap(median, end)
		placed = trace.ActionSwap
	}
	r.Emit(placed, []trace.IndexHighlight{
		trace.Mark(trace.ToneGreen, trace.LabelPivot, end),
	}, active)

	pivot := r.Value(end)
	j := start - 1
	for i := start; i <= end; i++ {
		r.Emit(trace.ActionCompare, pointers(start, i, j, end), active)
		if r.Value(i) > pivot {
			continue
		}
		j++
		r.Emit(trace.ActionCompare, pointers(start, i, j, end), active)
		if i > j {
			r.Swap(i, j)
			r.Emit(trace.ActionSwap, pointers(start, i, j, end), active)
		}
	}

	quickSort(r, start, j-1)
	quickSort(r, j+1, end)
}

// medianOfThree orders the three candidates by value, keeping position
// order among equal values, and returns the middle one's index.
func medianOfThree(r *trace.Recorder, a, b, c int) int {
	candidates := []int{a, b, c}
	slices.SortStableFunc(candidates, func(x, y int) int {
		return r.Value(x) - r.Value(y)
	})
	return candidates[1]
}

// pointers highlights i, the pivot at end and j once j has entered the
// partition.
func pointers(start, i, j, end int) []trace.IndexHighlight {
	h := []trace.IndexHighlight{trace.Mark(trace.ToneRed, trace.LabelI, i)}
	if j >= start {
		h = append(h, trace.Mark(trace.ToneRed, trace.LabelJ, j))
	}
	return append(h, trace.Mark(trace.ToneGreen, trace.LabelPivot, end))
}
