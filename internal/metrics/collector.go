package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector exports per-algorithm trace metrics on its own registry so
// repeated construction never collides with the default one.
type Collector struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	steps       *prometheus.CounterVec
	comparisons *prometheus.CounterVec
	swaps       *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func NewCollector() *Collector {
	labels := []string{"algorithm"}
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortviz_runs_total",
			Help: "Number of generated step traces.",
		}, labels),
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortviz_steps_total",
			Help: "Steps emitted by step generators.",
		}, labels),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortviz_comparisons_total",
			Help: "Compare steps emitted by step generators.",
		}, labels),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortviz_swaps_total",
			Help: "Swap steps emitted by step generators.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sortviz_generate_duration_seconds",
			Help:    "Time spent generating a step trace.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, labels),
	}
	c.registry.MustRegister(c.runs, c.steps, c.comparisons, c.swaps, c.duration)
	return c
}

// Record adds one run's values, as returned by Collect, to the counters.
func (c *Collector) Record(algorithm string, values map[string]float64, elapsed time.Duration) {
	c.runs.WithLabelValues(algorithm).Inc()
	c.steps.WithLabelValues(algorithm).Add(values[StepsName])
	c.comparisons.WithLabelValues(algorithm).Add(values[ComparisonsName])
	c.swaps.WithLabelValues(algorithm).Add(values[SwapsName])
	c.duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// WriteText dumps every family in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
