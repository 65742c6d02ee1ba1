// Package algorithms holds the instrumented step generators. Each one runs
// its sort exactly once over a private copy of the input and records every
// comparison and move as a trace.Step, so playback can move in either
// direction by indexing instead of re-running the sort.
package algorithms
