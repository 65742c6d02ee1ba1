package trace

import (
	"fmt"
	"slices"
)

// Element is one bar. ID is assigned once and follows the value through
// every position it visits.
type Element struct {
	ID    string `json:"id" yaml:"id"`
	Value int    `json:"value" yaml:"value"`
}

type Array []Element

func (a Array) Clone() Array {
	c := make(Array, len(a))
	copy(c, a)
	return c
}

func (a Array) Swap(i, j int) { a[i], a[j] = a[j], a[i] }

func (a Array) Values() []int {
	v := make([]int, len(a))
	for i, e := range a {
		v[i] = e.Value
	}
	return v
}

func (a Array) IDs() []string {
	ids := make([]string, len(a))
	for i, e := range a {
		ids[i] = e.ID
	}
	return ids
}

// IsSorted reports whether values are non-decreasing.
func (a Array) IsSorted() bool {
	for i := 1; i < len(a); i++ {
		if a[i-1].Value > a[i].Value {
			return false
		}
	}
	return true
}

// SameElements reports whether b holds exactly the ids of a, in any order.
func (a Array) SameElements(b Array) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := a.IDs(), b.IDs()
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

type Action string

const (
	ActionStart   Action = "start"
	ActionCompare Action = "compare"
	ActionSwap    Action = "swap"
	ActionDone    Action = "done"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionStart, ActionCompare, ActionSwap, ActionDone:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Tone is the colour role a renderer maps to an actual colour.
type Tone string

const (
	ToneRed    Tone = "red"
	ToneGreen  Tone = "green"
	ToneYellow Tone = "yellow"
)

// Labels used by the step generators.
const (
	LabelSorted       = "Sorted"
	LabelMin          = "Min"
	LabelParent       = "Parent"
	LabelLeftChild    = "Left Child"
	LabelRightChild   = "Right Child"
	LabelLargestChild = "Largest Child"
	LabelSettled      = "Settled"
	LabelRoot         = "Root"
	LabelMaxHeap      = "Max Heap"
	LabelLeft         = "Left"
	LabelRight        = "Right"
	LabelMedian       = "Median"
	LabelPivot        = "Pivot"
	LabelSorting      = "Sorting"
	LabelI            = "i"
	LabelJ            = "j"
)

type IndexHighlight struct {
	Indices []int  `json:"indices"`
	Tone    Tone   `json:"tone,omitempty"`
	Label   string `json:"label,omitempty"`
}

// RangeHighlight marks the inclusive span [Start, End].
type RangeHighlight struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Tone  Tone   `json:"tone,omitempty"`
	Label string `json:"label,omitempty"`
}

func (r RangeHighlight) Contains(i int) bool { return i >= r.Start && i <= r.End }

// Step is an immutable snapshot. State never aliases a working array.
type Step struct {
	State   Array            `json:"state"`
	Indices []IndexHighlight `json:"indices,omitempty"`
	Ranges  []RangeHighlight `json:"ranges,omitempty"`
	Action  Action           `json:"action"`
}

// Highlight returns the first index highlight covering position i.
func (s Step) Highlight(i int) (IndexHighlight, bool) {
	for _, h := range s.Indices {
		if slices.Contains(h.Indices, i) {
			return h, true
		}
	}
	return IndexHighlight{}, false
}

// Range returns the first range highlight covering position i.
func (s Step) Range(i int) (RangeHighlight, bool) {
	for _, r := range s.Ranges {
		if r.Contains(i) {
			return r, true
		}
	}
	return RangeHighlight{}, false
}

// Generator turns an input array into its full, finite step sequence.
// Implementations never mutate input.
type Generator func(input Array) []Step
