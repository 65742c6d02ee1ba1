package metrics

import "github.com/san-kum/sortviz/internal/trace"

// AdjacentInversions counts positions i where a[i-1].Value > a[i].Value.
func AdjacentInversions(a trace.Array) int {
	n := 0
	for i := 1; i < len(a); i++ {
		if a[i-1].Value > a[i].Value {
			n++
		}
	}
	return n
}

// InitialInversions reports the adjacent inversions of the start step.
type InitialInversions struct {
	value int
	seen  bool
}

func NewInitialInversions() *InitialInversions { return &InitialInversions{} }

func (m *InitialInversions) Name() string { return InitialInversionsName }

func (m *InitialInversions) Observe(step trace.Step) {
	if m.seen {
		return
	}
	m.value = AdjacentInversions(step.State)
	m.seen = true
}

func (m *InitialInversions) Value() float64 { return float64(m.value) }

func (m *InitialInversions) Reset() {
	m.value = 0
	m.seen = false
}

// Sortedness is the fraction of ordered adjacent pairs in the most recently
// observed state. A single element counts as fully sorted.
type Sortedness struct {
	pairs, ordered int
}

func NewSortedness() *Sortedness { return &Sortedness{} }

func (m *Sortedness) Name() string { return SortednessName }

func (m *Sortedness) Observe(step trace.Step) {
	m.pairs = max(len(step.State)-1, 0)
	m.ordered = m.pairs - AdjacentInversions(step.State)
}

func (m *Sortedness) Value() float64 {
	if m.pairs == 0 {
		return 1
	}
	return float64(m.ordered) / float64(m.pairs)
}

func (m *Sortedness) Reset() {
	m.pairs = 0
	m.ordered = 0
}
