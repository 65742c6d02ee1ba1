package automation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/datagen"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/metrics"
)

var ErrNoAlgorithms = errors.New("automation: scenario lists no algorithms")

// Dataset describes the shared input of a scenario.
type Dataset struct {
	NumBars  int   `yaml:"num_bars"`
	MinValue int   `yaml:"min_value"`
	MaxValue int   `yaml:"max_value"`
	Seed     int64 `yaml:"seed"`
}

// Scenario runs every listed algorithm over one dataset per order.
type Scenario struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Dataset     Dataset         `yaml:"dataset"`
	Algorithms  []string        `yaml:"algorithms"`
	Orders      []datagen.Order `yaml:"orders"`
	Check       bool            `yaml:"check"`
}

type Result struct {
	Order     datagen.Order      `json:"order" yaml:"order"`
	Algorithm string             `json:"algorithm" yaml:"algorithm"`
	Elements  int                `json:"elements" yaml:"elements"`
	Metrics   map[string]float64 `json:"metrics" yaml:"metrics"`
	Elapsed   time.Duration      `json:"elapsed" yaml:"elapsed"`
	Sorted    bool               `json:"sorted" yaml:"sorted"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// DefaultScenario compares every built-in algorithm on a random dataset of
// the default size.
func DefaultScenario() *Scenario {
	cfg := config.DefaultConfig()
	return &Scenario{
		Name:       "default",
		Dataset:    Dataset{NumBars: cfg.NumBars, MinValue: cfg.MinValue, MaxValue: cfg.MaxValue},
		Algorithms: experiment.NewRegistry().Algorithms(),
		Orders:     []datagen.Order{datagen.Random},
	}
}

func (s *Scenario) config(order datagen.Order) *config.Config {
	cfg := config.DefaultConfig()
	if s.Dataset.NumBars != 0 {
		cfg.NumBars = s.Dataset.NumBars
	}
	if s.Dataset.MinValue != 0 {
		cfg.MinValue = s.Dataset.MinValue
	}
	if s.Dataset.MaxValue != 0 {
		cfg.MaxValue = s.Dataset.MaxValue
	}
	cfg.Seed = s.Dataset.Seed
	cfg.Algorithm = s.Algorithms[0]
	if o, err := datagen.ParseOrder(string(order)); err == nil {
		cfg.SortOrder = o
	} else {
		cfg.SortOrder = order
	}
	return cfg
}

// RunScenario runs the algorithms one after another. Results gathered before
// a failure are returned alongside the error.
func RunScenario(ctx context.Context, scenario *Scenario, opts ...experiment.Option) ([]Result, error) {
	if len(scenario.Algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}
	orders := scenario.Orders
	if len(orders) == 0 {
		orders = []datagen.Order{config.DefaultSortOrder}
	}
	if scenario.Check {
		opts = append(opts, experiment.WithCheck())
	}

	results := make([]Result, 0, len(orders)*len(scenario.Algorithms))
	for _, order := range orders {
		exp, err := experiment.New(scenario.config(order), opts...)
		if err != nil {
			return results, fmt.Errorf("order %s: %w", order, err)
		}
		input := exp.Input()

		for i, name := range scenario.Algorithms {
			res, err := exp.RunOn(ctx, name, input)
			if err != nil {
				return results, fmt.Errorf("order %s, algorithm %d (%s): %w", order, i+1, name, err)
			}
			results = append(results, Result{
				Order:     order,
				Algorithm: name,
				Elements:  len(input),
				Metrics:   res.Metrics,
				Elapsed:   res.Elapsed,
				Sorted:    res.Final().IsSorted(),
			})
		}
	}
	return results, nil
}

// Sweep measures how step counts grow with input size, averaging several
// seeded trials per size.
type Sweep struct {
	Algorithms []string
	Sizes      []int
	Order      datagen.Order
	Trials     int
	Seed       int64
}

type SweepPoint struct {
	Algorithm       string  `json:"algorithm"`
	Size            int     `json:"size"`
	MeanSteps       float64 `json:"mean_steps"`
	MeanComparisons float64 `json:"mean_comparisons"`
	MeanSwaps       float64 `json:"mean_swaps"`
}

func RunSweep(ctx context.Context, sweep *Sweep, opts ...experiment.Option) ([]SweepPoint, error) {
	if len(sweep.Algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}
	trials := max(sweep.Trials, 1)
	order := sweep.Order
	if order == "" {
		order = config.DefaultSortOrder
	}

	points := make([]SweepPoint, 0, len(sweep.Algorithms)*len(sweep.Sizes))
	for _, name := range sweep.Algorithms {
		for _, size := range sweep.Sizes {
			var sum [3]float64
			for trial := 0; trial < trials; trial++ {
				cfg := config.DefaultConfig()
				cfg.Algorithm = name
				cfg.NumBars = size
				cfg.SortOrder = order
				cfg.Seed = sweep.Seed + int64(trial) + 1

				exp, err := experiment.New(cfg, opts...)
				if err != nil {
					return points, fmt.Errorf("%s, size %d: %w", name, size, err)
				}
				res, err := exp.Run(ctx)
				if err != nil {
					return points, fmt.Errorf("%s, size %d: %w", name, size, err)
				}
				sum[0] += res.Metrics[metrics.StepsName]
				sum[1] += res.Metrics[metrics.ComparisonsName]
				sum[2] += res.Metrics[metrics.SwapsName]
			}
			n := float64(trials)
			points = append(points, SweepPoint{
				Algorithm:       name,
				Size:            size,
				MeanSteps:       sum[0] / n,
				MeanComparisons: sum[1] / n,
				MeanSwaps:       sum[2] / n,
			})
		}
	}
	return points, nil
}
