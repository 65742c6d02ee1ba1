package trace

// Recorder executes an algorithm once against a private copy of the input
// and appends a Step for every observable instant.
type Recorder struct {
	arr   Array
	steps []Step
}

// NewRecorder copies input and records the start step.
func NewRecorder(input Array) *Recorder {
	r := &Recorder{arr: input.Clone()}
	r.steps = append(r.steps, Step{
		State:   r.arr.Clone(),
		Indices: []IndexHighlight{},
		Action:  ActionStart,
	})
	return r
}

// Array exposes the working array. Generators read and compare through it
// but move elements only via Swap or Splice.
func (r *Recorder) Array() Array { return r.arr }

func (r *Recorder) Len() int { return len(r.arr) }

func (r *Recorder) Value(i int) int { return r.arr[i].Value }

func (r *Recorder) Swap(i, j int) { r.arr.Swap(i, j) }

// Splice overwrites positions [at, at+len(src)) with src.
func (r *Recorder) Splice(at int, src Array) { copy(r.arr[at:], src) }

func (r *Recorder) Emit(action Action, indices []IndexHighlight, ranges []RangeHighlight) {
	r.steps = append(r.steps, Step{
		State:   r.arr.Clone(),
		Indices: indices,
		Ranges:  ranges,
		Action:  action,
	})
}

// Finish records the done step with the whole array marked sorted and
// returns the sequence. The recorder must not be used afterwards.
func (r *Recorder) Finish() []Step {
	var ranges []RangeHighlight
	if len(r.arr) > 0 {
		ranges = []RangeHighlight{{Start: 0, End: len(r.arr) - 1, Tone: ToneGreen, Label: LabelSorted}}
	}
	r.steps = append(r.steps, Step{
		State:  r.arr.Clone(),
		Ranges: ranges,
		Action: ActionDone,
	})
	steps := r.steps
	r.steps = nil
	return steps
}

// Steps returns what has been recorded so far.
func (r *Recorder) Steps() []Step { return r.steps }

// Mark is shorthand for a single index group.
func Mark(tone Tone, label string, indices ...int) IndexHighlight {
	return IndexHighlight{Indices: indices, Tone: tone, Label: label}
}

// SortedRange returns a one-element green "Sorted" range, or nil when the
// span is empty.
func SortedRange(start, end int) []RangeHighlight {
	if start > end {
		return nil
	}
	return []RangeHighlight{{Start: start, End: end, Tone: ToneGreen, Label: LabelSorted}}
}

// Trivial handles arrays too small to need any work: start then done.
func Trivial(input Array) ([]Step, bool) {
	if len(input) > 1 {
		return nil, false
	}
	return NewRecorder(input).Finish(), true
}
