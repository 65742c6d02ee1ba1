package metrics

import "github.com/san-kum/sortviz/internal/trace"

// Metric accumulates a single number over a step trace.
type Metric interface {
	Name() string
	Observe(step trace.Step)
	Value() float64
	Reset()
}

// Default returns fresh instances of every built-in metric.
func Default() []Metric {
	return []Metric{NewSteps(), NewComparisons(), NewSwaps(), NewInitialInversions(), NewSortedness()}
}

// Collect resets each metric, feeds it the whole trace and returns the
// values keyed by metric name.
func Collect(steps []trace.Step, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, s := range steps {
			m.Observe(s)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
