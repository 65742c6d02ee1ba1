package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/datagen"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/viz"
)

func newRunCmd() *cobra.Command {
	var check, asJSON bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "record one sort and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			opts := []experiment.Option{experiment.WithLogger(logger())}
			if check {
				opts = append(opts, experiment.WithCheck())
			}
			exp, err := experiment.New(cfg, opts...)
			if err != nil {
				return err
			}
			res, err := exp.Run(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printSummary(res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "validate the recorded trace")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}

func printSummary(res *experiment.Result) {
	p := termenv.ColorProfile()
	title := termenv.String(res.Algorithm).Foreground(p.Color("#00ffff")).Bold()
	ok := termenv.String("sorted").Foreground(p.Color("#2ecc71"))
	if !res.Final().IsSorted() {
		ok = termenv.String("NOT sorted").Foreground(p.Color("#e74c3c"))
	}

	fmt.Printf("%s  seed %d  %s\n", title, res.Seed, ok)
	fmt.Printf("  input:  %v\n", res.Input.Values())
	fmt.Printf("  output: %v\n", res.Final().Values())
	fmt.Printf("  steps %s  comparisons %s  swaps %s  in %v\n",
		count(res.Metrics[metrics.StepsName]),
		count(res.Metrics[metrics.ComparisonsName]),
		count(res.Metrics[metrics.SwapsName]),
		res.Elapsed.Round(time.Microsecond))
	fmt.Printf("  initial inversions %s\n", count(res.Metrics[metrics.InitialInversionsName]))
}

func count(v float64) string { return humanize.Comma(int64(v)) }

func newStepsCmd() *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "list every recorded step",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runOnce(cmd)
			if err != nil {
				return err
			}
			steps := res.Steps
			if limit > 0 && limit < len(steps) {
				steps = steps[:limit]
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(steps)
			}

			tbl := table.NewWriter()
			tbl.SetOutputMirror(os.Stdout)
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"#", "Action", "Values", "Highlights"})
			for i, s := range steps {
				tbl.AppendRow(table.Row{i, s.Action, fmt.Sprint(s.State.Values()), describe(s)})
			}
			tbl.AppendFooter(table.Row{"", "", "total", humanize.Comma(int64(len(res.Steps)))})
			tbl.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print only the first N steps")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the steps as JSON")
	return cmd
}

// describe renders the highlights of a step as "Label[i,j] Label[s..e]".
func describe(s trace.Step) string {
	var parts []string
	for _, h := range s.Indices {
		idx := make([]string, len(h.Indices))
		for i, v := range h.Indices {
			idx[i] = strconv.Itoa(v)
		}
		parts = append(parts, fmt.Sprintf("%s[%s]", label(h.Label, h.Tone), strings.Join(idx, ",")))
	}
	for _, r := range s.Ranges {
		parts = append(parts, fmt.Sprintf("%s[%d..%d]", label(r.Label, r.Tone), r.Start, r.End))
	}
	return strings.Join(parts, " ")
}

func label(l string, tone trace.Tone) string {
	if l != "" {
		return l
	}
	return string(tone)
}

func runOnce(cmd *cobra.Command) (*experiment.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	exp, err := experiment.New(cfg, experiment.WithLogger(logger()))
	if err != nil {
		return nil, err
	}
	return exp.Run(cmd.Context())
}

func newPlotCmd() *cobra.Command {
	var width, height, frame int

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "plot cumulative comparisons and swaps, or draw one frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runOnce(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("frame") {
				if frame < 0 || frame >= len(res.Steps) {
					return fmt.Errorf("frame %d out of range [0, %d)", frame, len(res.Steps))
				}
				step := res.Steps[frame]
				t := viz.GetTheme(theme)
				fmt.Println(viz.RenderBars(step, viz.BarOptions{
					Height:     height,
					MaxValue:   maxOf(res.Input),
					BarWidth:   max(viz.FitBarWidth(len(step.State), width, 1), 1),
					Gap:        1,
					ShowValues: true,
				}, t))
				fmt.Println(viz.Legend(step, t))
				return nil
			}

			caption := fmt.Sprintf("%s: comparisons (red), swaps (green) over %d steps", res.Algorithm, len(res.Steps))
			fmt.Println(viz.ProgressChart(res.Steps, len(res.Steps)-1, width, height, caption))
			fmt.Println()
			fmt.Println(asciigraph.Plot(toFloats(res.Final().Values()),
				asciigraph.Height(height/2+1),
				asciigraph.Caption("sorted values")))
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 60, "plot width")
	cmd.Flags().IntVar(&height, "height", 12, "plot height")
	cmd.Flags().IntVar(&frame, "frame", 0, "draw the bars of this step instead of the chart")
	return cmd
}

func maxOf(a trace.Array) int {
	m := 0
	for _, e := range a {
		m = max(m, e.Value)
	}
	return m
}

func toFloats(vs []int) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}

func newBenchCmd() *cobra.Command {
	var trials int
	var sizes []int
	var dumpMetrics bool

	cmd := &cobra.Command{
		Use:   "bench [algorithm...]",
		Short: "average step counts over seeded trials",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				names = experiment.NewRegistry().Algorithms()
			}
			if len(sizes) == 0 {
				sizes = []int{cfg.NumBars}
			}

			collector := metrics.NewCollector()
			start := time.Now()
			points, err := automation.RunSweep(cmd.Context(), &automation.Sweep{
				Algorithms: names,
				Sizes:      sizes,
				Order:      cfg.SortOrder,
				Trials:     trials,
				Seed:       cfg.Seed,
			}, experiment.WithLogger(logger()), experiment.WithCollector(collector))
			if err != nil {
				return err
			}

			tbl := table.NewWriter()
			tbl.SetOutputMirror(os.Stdout)
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"Algorithm", "Size", "Steps", "Comparisons", "Swaps"})
			for _, p := range points {
				tbl.AppendRow(table.Row{
					p.Algorithm,
					p.Size,
					humanize.CommafWithDigits(p.MeanSteps, 1),
					humanize.CommafWithDigits(p.MeanComparisons, 1),
					humanize.CommafWithDigits(p.MeanSwaps, 1),
				})
			}
			runs := len(names) * len(sizes) * max(trials, 1)
			tbl.AppendFooter(table.Row{"", "", "", humanize.Comma(int64(runs)) + " runs", time.Since(start).Round(time.Millisecond)})
			tbl.Render()

			if dumpMetrics {
				fmt.Println()
				return collector.WriteText(os.Stdout)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&trials, "trials", "t", 10, "trials per algorithm and size")
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "input sizes (default --bars)")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "print the Prometheus metrics after the table")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var scenarioFile string
	var orders []string

	cmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "run several algorithms over the same datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := buildScenario(cmd, scenarioFile, orders, args)
			if err != nil {
				return err
			}
			results, err := automation.RunScenario(cmd.Context(), scenario, experiment.WithLogger(logger()))
			if err != nil {
				return err
			}

			tbl := table.NewWriter()
			tbl.SetOutputMirror(os.Stdout)
			tbl.SetStyle(table.StyleLight)
			if scenario.Name != "" {
				tbl.SetTitle(scenario.Name)
			}
			tbl.AppendHeader(table.Row{"Order", "Algorithm", "Steps", "Comparisons", "Swaps", "Sorted", "Time"})
			for _, r := range results {
				tbl.AppendRow(table.Row{
					r.Order,
					r.Algorithm,
					count(r.Metrics[metrics.StepsName]),
					count(r.Metrics[metrics.ComparisonsName]),
					count(r.Metrics[metrics.SwapsName]),
					r.Sorted,
					r.Elapsed.Round(time.Microsecond),
				})
			}
			tbl.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario YAML file")
	cmd.Flags().StringSliceVar(&orders, "orders", nil, "data orders to compare (default --order)")
	return cmd
}

func buildScenario(cmd *cobra.Command, path string, orders, names []string) (*automation.Scenario, error) {
	if path != "" {
		return automation.LoadScenario(path)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	scenario := automation.DefaultScenario()
	scenario.Dataset = automation.Dataset{
		NumBars:  cfg.NumBars,
		MinValue: cfg.MinValue,
		MaxValue: cfg.MaxValue,
		Seed:     cfg.Seed,
	}
	if len(names) > 0 {
		scenario.Algorithms = names
	}
	scenario.Orders = []datagen.Order{cfg.SortOrder}
	if len(orders) > 0 {
		scenario.Orders = scenario.Orders[:0]
		for _, o := range orders {
			parsed, err := datagen.ParseOrder(o)
			if err != nil {
				return nil, err
			}
			scenario.Orders = append(scenario.Orders, parsed)
		}
	}
	return scenario, nil
}
