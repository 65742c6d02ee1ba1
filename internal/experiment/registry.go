package experiment

import (
	"errors"
	"fmt"
	"slices"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/datagen"
	"github.com/san-kum/sortviz/internal/reference"
	"github.com/san-kum/sortviz/internal/trace"
)

var ErrUnknownAlgorithm = errors.New("experiment: unknown algorithm")

// Complexity is the asymptotic cost of an algorithm in big-O notation.
type Complexity struct {
	Best    string `json:"best" yaml:"best"`
	Average string `json:"average" yaml:"average"`
	Worst   string `json:"worst" yaml:"worst"`
	Space   string `json:"space" yaml:"space"`
}

// Algorithm is a registered step generator and what the UI says about it.
type Algorithm struct {
	Name        string          `json:"name" yaml:"name"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Complexity  Complexity      `json:"complexity" yaml:"complexity"`
	Stable      bool            `json:"stable" yaml:"stable"`
	Generate    trace.Generator `json:"-" yaml:"-"`
	Reference   reference.Sort  `json:"-" yaml:"-"`
}

type Registry struct {
	algorithms map[string]Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]Algorithm)}
	for _, a := range builtins {
		gen, ok := algorithms.Lookup(a.Name)
		if !ok {
			panic("experiment: no step generator for " + a.Name)
		}
		a.Generate = gen
		a.Reference = reference.ByName[a.Name]
		r.Register(a)
	}
	return r
}

// Register adds or replaces an algorithm.
func (r *Registry) Register(a Algorithm) {
	r.algorithms[a.Name] = a
}

func (r *Registry) Algorithm(name string) (Algorithm, error) {
	a, ok := r.algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// Algorithms returns registered names in alphabetical order.
func (r *Registry) Algorithms() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) Orders() []datagen.Order { return datagen.Orders() }

var builtins = []Algorithm{
	{
		Name:  "bubble",
		Title: "Bubble Sort",
		Description: "Walks the list comparing neighbours and swapping any pair that is out of order. " +
			"After each pass the largest remaining value has bubbled up to the end, so the sorted tail grows by one.",
		Complexity: Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
		Stable:     true,
	},
	{
		Name:  "selection",
		Title: "Selection Sort",
		Description: "Scans the unsorted part for its minimum and swaps it onto the end of the sorted prefix. " +
			"It always performs the same number of comparisons but at most n-1 swaps.",
		Complexity: Complexity{Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
	},
	{
		Name:  "insertion",
		Title: "Insertion Sort",
		Description: "Takes each element in turn and moves it left past larger neighbours until it fits " +
			"the sorted prefix. Cheap on small or nearly sorted input.",
		Complexity: Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
		Stable:     true,
	},
	{
		Name:  "heap",
		Title: "Heap Sort",
		Description: "Arranges the list into a max heap, where every parent is at least as large as its children, " +
			"then repeatedly swaps the root to the end and restores the heap over the shrinking prefix.",
		Complexity: Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(1)"},
	},
	{
		Name:  "merge",
		Title: "Merge Sort",
		Description: "Merges neighbouring blocks of width 1, 2, 4 and so on into sorted runs until a single run " +
			"covers the list. Ties take the left element first.",
		Complexity: Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(n)"},
		Stable:     true,
	},
	{
		Name:  "quick",
		Title: "Quick Sort",
		Description: "Picks the median of the first, middle and last elements as pivot, moves it to the end, " +
			"and partitions so smaller or equal values sit left of it. Both sides are then sorted recursively.",
		Complexity: Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)", Space: "O(log n)"},
	},
}
