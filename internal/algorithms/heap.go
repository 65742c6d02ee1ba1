package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Heap builds a max-heap in place, then repeatedly swaps the root behind
// the heap and percolates the new root down. The trailing sorted range
// [heapSize, n-1] is shown on every step of the extraction phase.
func Heap(input trace.Array) []trace.Step {
	if steps, ok := trace.Trivial(input); ok {
		return steps
	}
	r := trace.NewRecorder(input)
	n := r.Len()

	for i := n/2 - 1; i >= 0; i-- {
		percolate(r, i, n)
	}
	r.Emit(trace.ActionCompare, nil, []trace.RangeHighlight{
		{Start: 0, End: n - 1, Tone: trace.ToneGreen, Label: trace.LabelMaxHeap},
	})

	for i := n - 1; i >= 0; i-- {
		r.Emit(trace.ActionCompare, []trace.IndexHighlight{
			trace.Mark(trace.ToneGreen, trace.LabelRoot, 0),
			trace.Mark(trace.ToneRed, "", i),
		}, trace.SortedRange(i+1, n-1))
		r.Swap(0, i)
		r.Emit(trace.ActionSwap, []trace.IndexHighlight{
			trace.Mark(trace.ToneRed, trace.LabelRoot, 0),
		}, trace.SortedRange(i, n-1))
		percolate(r, 0, i)
	}
	return r.Finish()
}

func percolate(r *trace.Recorder, index, heapSize int) {
	left, right := 2*index+1, 2*index+2
	if left >= heapSize {
		return
	}
	sorted := trace.SortedRange(heapSize, r.Len()-1)
	largest := index

	r.Emit(trace.ActionCompare, []trace.IndexHighlight{
		trace.Mark(trace.ToneGreen, trace.LabelParent, index),
		trace.Mark(trace.ToneRed, trace.LabelLeftChild, left),
	}, sorted)
	if r.Value(left) > r.Value(largest) {
		largest = left
	}

	if right < heapSize {
		r.Emit(trace.ActionCompare, []trace.IndexHighlight{
			trace.Mark(trace.ToneGreen, trace.LabelParent, index),
			trace.Mark(trace.ToneRed, trace.LabelRightChild, right),
		}, sorted)
		if r.Value(right) > r.Value(largest) {
			largest = right
		}
	}

	if largest == index {
		r.Emit(trace.ActionCompare, []trace.IndexHighlight{
			trace.Mark(trace.ToneGreen, trace.LabelSettled, index),
		}, sorted)
		return
	}

	r.Emit(trace.ActionCompare, []trace.IndexHighlight{
		trace.Mark(trace.ToneGreen, trace.LabelParent, index),
		trace.Mark(trace.ToneRed, trace.LabelLargestChild, largest),
	}, sorted)
	r.Swap(index, largest)
	r.Emit(trace.ActionSwap, []trace.IndexHighlight{
		trace.Mark(trace.ToneGreen, trace.LabelLargestChild, index),
		trace.Mark(trace.ToneRed, trace.LabelParent, largest),
	}, sorted)
	percolate(r, largest, heapSize)
}
