package datagen

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/san-kum/sortviz/internal/trace"
)

type Order string

const (
	Random                 Order = "random"
	SortedAscending        Order = "sortedAscending"
	SortedDescending       Order = "sortedDescending"
	AlmostSortedAscending  Order = "almostSortedAscending"
	AlmostSortedDescending Order = "almostSortedDescending"
)

// PerturbProbability is the per-index chance of a local swap in the
// almost-sorted orders.
const PerturbProbability = 0.3

var orders = []Order{Random, SortedAscending, SortedDescending, AlmostSortedAscending, AlmostSortedDescending}

func Orders() []Order { return slices.Clone(orders) }

// ParseOrder accepts the canonical names case-insensitively, plus dashed
// forms such as "almost-sorted-ascending".
func ParseOrder(s string) (Order, error) {
	key := strings.ToLower(strings.ReplaceAll(s, "-", ""))
	key = strings.ReplaceAll(key, "_", "")
	for _, o := range orders {
		if strings.ToLower(string(o)) == key {
			return o, nil
		}
	}
	return "", fmt.Errorf("datagen: unknown sort order %q", s)
}

type Generator struct {
	rng   *rand.Rand
	newID func() string
}

type Option func(*Generator)

// WithIDFunc replaces the uuid source, mostly for readable test ids.
func WithIDFunc(f func() string) Option {
	return func(g *Generator) { g.newID = f }
}

func New(seed int64, opts ...Option) *Generator {
	g := &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns count fresh elements with values in [minValue, maxValue]
// arranged by order. count < 1 or minValue > maxValue is a caller bug and
// panics; validate configuration before calling.
func (g *Generator) Generate(count, minValue, maxValue int, order Order) trace.Array {
	if count < 1 {
		panic(fmt.Sprintf("datagen: count must be at least 1, got %d", count))
	}
	if minValue > maxValue {
		panic(fmt.Sprintf("datagen: min value %d exceeds max value %d", minValue, maxValue))
	}

	a := g.random(count, minValue, maxValue)
	switch order {
	case SortedAscending:
		sortAscending(a)
	case SortedDescending:
		sortDescending(a)
	case AlmostSortedAscending:
		sortAscending(a)
		g.perturb(a)
	case AlmostSortedDescending:
		sortDescending(a)
		g.perturb(a)
	}
	return a
}

func (g *Generator) random(count, minValue, maxValue int) trace.Array {
	a := make(trace.Array, count)
	span := maxValue - minValue + 1
	for i := range a {
		a[i] = trace.Element{ID: g.newID(), Value: g.rng.Intn(span) + minValue}
	}
	return a
}

// perturb swaps each index, with PerturbProbability, with a neighbour one
// or two places ahead, clamped to the last index.
func (g *Generator) perturb(a trace.Array) {
	last := len(a) - 1
	for i := range a {
		if g.rng.Float64() < PerturbProbability {
			a.Swap(i, min(i+g.rng.Intn(2)+1, last))
		}
	}
}

func sortAscending(a trace.Array) {
	slices.SortStableFunc(a, func(x, y trace.Element) int { return x.Value - y.Value })
}

func sortDescending(a trace.Array) {
	slices.SortStableFunc(a, func(x, y trace.Element) int { return y.Value - x.Value })
}
