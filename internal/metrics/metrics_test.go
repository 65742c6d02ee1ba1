package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/trace"
)

func arr(values ...int) trace.Array {
	a := make(trace.Array, len(values))
	for i, v := range values {
		a[i] = trace.Element{ID: string(rune('a' + i)), Value: v}
	}
	return a
}

func sampleTrace() []trace.Step {
	return []trace.Step{
		{State: arr(3, 1, 2), Action: trace.ActionStart},
		{State: arr(3, 1, 2), Action: trace.ActionCompare},
		{State: arr(1, 3, 2), Action: trace.ActionSwap},
		{State: arr(1, 3, 2), Action: trace.ActionCompare},
		{State: arr(1, 2, 3), Action: trace.ActionSwap},
		{State: arr(1, 2, 3), Action: trace.ActionDone},
	}
}

func TestAdjacentInversions(t *testing.T) {
	assert.Equal(t, 0, AdjacentInversions(nil))
	assert.Equal(t, 0, AdjacentInversions(arr(1, 1, 2)))
	assert.Equal(t, 2, AdjacentInversions(arr(3, 2, 1)))
	assert.Equal(t, 1, AdjacentInversions(arr(1, 3, 2, 4)))
}

func TestCollect(t *testing.T) {
	got := Collect(sampleTrace())
	assert.Equal(t, 6.0, got[StepsName])
	assert.Equal(t, 2.0, got[ComparisonsName])
	assert.Equal(t, 2.0, got[SwapsName])
	assert.Equal(t, 1.0, got[InitialInversionsName])
	assert.Equal(t, 1.0, got[SortednessName])
}

func TestCollect_ResetsBetweenRuns(t *testing.T) {
	m := NewSwaps()
	Collect(sampleTrace(), m)
	got := Collect(sampleTrace(), m)
	assert.Equal(t, 2.0, got[SwapsName])
}

func TestSortedness(t *testing.T) {
	m := NewSortedness()
	assert.Equal(t, 1.0, m.Value())
	m.Observe(trace.Step{State: arr(3, 2, 1)})
	assert.Equal(t, 0.0, m.Value())
	m.Observe(trace.Step{State: arr(1, 3, 2)})
	assert.Equal(t, 0.5, m.Value())
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	values := Collect(sampleTrace())
	c.Record("bubble", values, time.Millisecond)
	c.Record("bubble", values, time.Millisecond)
	c.Record("quick", values, time.Millisecond)

	assert.Equal(t, 12.0, testutil.ToFloat64(c.steps.WithLabelValues("bubble")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.swaps.WithLabelValues("quick")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.runs.WithLabelValues("bubble")))
	count, err := testutil.GatherAndCount(c.registry)
	require.NoError(t, err)
	assert.Equal(t, 10, count)

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	out := buf.String()
	assert.True(t, strings.Contains(out, `sortviz_comparisons_total{algorithm="bubble"} 4`), out)
	assert.Contains(t, out, "sortviz_generate_duration_seconds_bucket")
}
