package algorithms

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/sortviz/internal/trace"
)

func elements(values ...int) trace.Array {
	a := make(trace.Array, len(values))
	for i, v := range values {
		a[i] = trace.Element{ID: fmt.Sprintf("e%d", i), Value: v}
	}
	return a
}

func randomElements(seed int64, n, maxValue int) trace.Array {
	rng := rand.New(rand.NewSource(seed))
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(maxValue) + 1
	}
	return elements(values...)
}

func actions(steps []trace.Step) []trace.Action {
	a := make([]trace.Action, len(steps))
	for i, s := range steps {
		a[i] = s.Action
	}
	return a
}

func count(steps []trace.Step, action trace.Action) int {
	n := 0
	for _, s := range steps {
		if s.Action == action {
			n++
		}
	}
	return n
}

var all = map[string]trace.Generator{
	"bubble":    Bubble,
	"selection": Selection,
	"insertion": Insertion,
	"heap":      Heap,
	"merge":     Merge,
	"quick":     Quick,
}
