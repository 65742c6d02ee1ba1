package algorithms

import (
	"slices"

	"github.com/san-kum/sortviz/internal/trace"
)

var names = []string{"bubble", "selection", "insertion", "heap", "merge", "quick"}

var generators = map[string]trace.Generator{
	"bubble":    Bubble,
	"selection": Selection,
	"insertion": Insertion,
	"heap":      Heap,
	"merge":     Merge,
	"quick":     Quick,
}

// Lookup returns the step generator registered under name.
func Lookup(name string) (trace.Generator, bool) {
	g, ok := generators[name]
	return g, ok
}

// Names lists generator names in menu order.
func Names() []string { return slices.Clone(names) }
