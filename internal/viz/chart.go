package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/trace"
)

// CumulativeSeries returns running totals of compare and swap steps for
// steps[0..upto]. Both series have at least two points so they always plot.
func CumulativeSeries(steps []trace.Step, upto int) (compares, swaps []float64) {
	upto = max(0, min(upto, len(steps)-1))
	compares = make([]float64, 0, upto+2)
	swaps = make([]float64, 0, upto+2)
	var c, s float64
	for i := 0; i <= upto && i < len(steps); i++ {
		switch steps[i].Action {
		case trace.ActionCompare:
			c++
		case trace.ActionSwap:
			s++
		}
		compares = append(compares, c)
		swaps = append(swaps, s)
	}
	for len(compares) < 2 {
		compares = append(compares, c)
		swaps = append(swaps, s)
	}
	return compares, swaps
}

// ProgressChart plots cumulative comparisons (red) and swaps (green) up to
// the cursor.
func ProgressChart(steps []trace.Step, cursor, width, height int, caption string) string {
	compares, swaps := CumulativeSeries(steps, cursor)
	return asciigraph.PlotMany([][]float64{compares, swaps},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green),
		asciigraph.Caption(caption),
	)
}
