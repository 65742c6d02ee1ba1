package metrics

import "github.com/san-kum/sortviz/internal/trace"

const (
	StepsName             = "steps"
	ComparisonsName       = "comparisons"
	SwapsName             = "swaps"
	InitialInversionsName = "initial_inversions"
	SortednessName        = "sortedness"
)

// ActionCount counts steps, optionally only those with one action.
type ActionCount struct {
	name   string
	action trace.Action
	count  int
}

func NewSteps() *ActionCount { return &ActionCount{name: StepsName} }

func NewComparisons() *ActionCount {
	return &ActionCount{name: ComparisonsName, action: trace.ActionCompare}
}

func NewSwaps() *ActionCount {
	return &ActionCount{name: SwapsName, action: trace.ActionSwap}
}

func (c *ActionCount) Name() string { return c.name }

func (c *ActionCount) Observe(step trace.Step) {
	if c.action == "" || step.Action == c.action {
		c.count++
	}
}

func (c *ActionCount) Value() float64 { return float64(c.count) }

func (c *ActionCount) Reset() { c.count = 0 }
