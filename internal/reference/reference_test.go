package reference

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/trace"
)

var cases = []struct {
	name string
	in   []int
}{
	{"empty", nil},
	{"single", []int{7}},
	{"pair", []int{2, 1}},
	{"sorted", []int{1, 2, 3, 4, 5}},
	{"reversed", []int{5, 4, 3, 2, 1}},
	{"duplicates", []int{3, 1, 3, 2, 1, 3}},
	{"all equal", []int{4, 4, 4, 4}},
	{"mixed", []int{5, 3, 8, 1, 9, 2, 7}},
}

func TestSorts(t *testing.T) {
	for name, sort := range ByName {
		for _, tt := range cases {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				in := slices.Clone(tt.in)
				got := sort(in)
				want := slices.Clone(tt.in)
				slices.Sort(want)
				if !slices.Equal(got, want) {
					t.Errorf("%s(%v) = %v, want %v", name, tt.in, got, want)
				}
				if !slices.Equal(in, tt.in) {
					t.Errorf("%s mutated input: %v", name, in)
				}
			})
		}
	}
}

func TestMatchesInstrumented(t *testing.T) {
	instrumented := map[string]trace.Generator{
		"bubble":    algorithms.Bubble,
		"selection": algorithms.Selection,
		"insertion": algorithms.Insertion,
		"heap":      algorithms.Heap,
		"merge":     algorithms.Merge,
		"quick":     algorithms.Quick,
	}
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(40) + 1
		input := make(trace.Array, n)
		values := make([]int, n)
		for i := range input {
			values[i] = rng.Intn(50) + 1
			input[i] = trace.Element{ID: string(rune('A' + i)), Value: values[i]}
		}
		for name, gen := range instrumented {
			steps := gen(input)
			got := steps[len(steps)-1].State.Values()
			want := ByName[name](values)
			if !slices.Equal(got, want) {
				t.Fatalf("%s: instrumented %v, reference %v", name, got, want)
			}
		}
	}
}
