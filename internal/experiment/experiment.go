package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/datagen"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/trace"
)

type Result struct {
	Algorithm string             `json:"algorithm"`
	Seed      int64              `json:"seed"`
	Input     trace.Array        `json:"input"`
	Steps     []trace.Step       `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
	Elapsed   time.Duration      `json:"elapsed"`
}

// Final is the state of the last step.
func (r *Result) Final() trace.Array { return r.Steps[len(r.Steps)-1].State }

type Experiment struct {
	cfg       *config.Config
	seed      int64
	registry  *Registry
	logger    *slog.Logger
	newID     func() string
	check     bool
	collector *metrics.Collector
}

type Option func(*Experiment)

func WithRegistry(r *Registry) Option { return func(e *Experiment) { e.registry = r } }

func WithLogger(l *slog.Logger) Option { return func(e *Experiment) { e.logger = l } }

func WithIDFunc(f func() string) Option { return func(e *Experiment) { e.newID = f } }

// WithCheck validates every produced trace before returning it.
func WithCheck() Option { return func(e *Experiment) { e.check = true } }

// WithCollector records each run on a Prometheus collector.
func WithCollector(c *metrics.Collector) Option { return func(e *Experiment) { e.collector = c } }

func New(cfg *config.Config, opts ...Option) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Experiment{
		cfg:      cfg.Clone(),
		seed:     cfg.ResolveSeed(),
		registry: NewRegistry(),
		logger:   logging.NewNop(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Experiment) Seed() int64 { return e.seed }

// Input builds the dataset described by the configuration. The same
// Experiment always yields the same values.
func (e *Experiment) Input() trace.Array {
	gen := datagen.New(e.seed, datagen.WithIDFunc(e.newID))
	return gen.Generate(e.cfg.NumBars, e.cfg.MinValue, e.cfg.MaxValue, e.cfg.SortOrder)
}

// Run generates the configured dataset and steps the configured algorithm
// over it.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	return e.RunOn(ctx, e.cfg.Algorithm, e.Input())
}

// RunOn steps the named algorithm over an existing dataset.
func (e *Experiment) RunOn(ctx context.Context, algorithm string, input trace.Array) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	alg, err := e.registry.Algorithm(algorithm)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	steps := alg.Generate(input)
	elapsed := time.Since(start)

	if e.check {
		if err := trace.Validate(input, steps); err != nil {
			return nil, fmt.Errorf("%s produced an invalid trace: %w", algorithm, err)
		}
	}

	values := metrics.Collect(steps)
	if e.collector != nil {
		e.collector.Record(algorithm, values, elapsed)
	}
	e.logger.Debug("generated steps",
		"algorithm", algorithm,
		"elements", len(input),
		"steps", len(steps),
		"elapsed", elapsed)

	return &Result{
		Algorithm: algorithm,
		Seed:      e.seed,
		Input:     input,
		Steps:     steps,
		Metrics:   values,
		Elapsed:   elapsed,
	}, nil
}
