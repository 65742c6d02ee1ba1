package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/datagen"
)

const (
	DefaultAlgorithm = "bubble"
	DefaultNumBars   = 15
	DefaultMinValue  = 1
	DefaultMaxValue  = 100
	DefaultSpeed     = 1.0
	DefaultSortOrder = datagen.Random

	MinNumBars = 5
	MaxNumBars = 100
	MinValue   = 1
	MaxValue   = 100
	MinSpeed   = 0.25
	MaxSpeed   = 10.0
)

var (
	ErrAlgorithm  = errors.New("config: unknown algorithm")
	ErrNumBars    = errors.New("config: number of bars out of range")
	ErrValueRange = errors.New("config: value range invalid")
	ErrSpeed      = errors.New("config: speed out of range")
	ErrSortOrder  = errors.New("config: unknown sort order")
)

// Config is what the visualizer needs to build a dataset and play it. A zero
// Seed asks for a time-based seed.
type Config struct {
	Algorithm string        `yaml:"algorithm" mapstructure:"algorithm"`
	NumBars   int           `yaml:"num_bars" mapstructure:"num_bars"`
	MinValue  int           `yaml:"min_value" mapstructure:"min_value"`
	MaxValue  int           `yaml:"max_value" mapstructure:"max_value"`
	Speed     float64       `yaml:"speed" mapstructure:"speed"`
	SortOrder datagen.Order `yaml:"sort_order" mapstructure:"sort_order"`
	Seed      int64         `yaml:"seed" mapstructure:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		NumBars:   DefaultNumBars,
		MinValue:  DefaultMinValue,
		MaxValue:  DefaultMaxValue,
		Speed:     DefaultSpeed,
		SortOrder: DefaultSortOrder,
	}
}

// Validate reports every violated bound at once.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := algorithms.Lookup(c.Algorithm); !ok {
		errs = append(errs, fmt.Errorf("%w: %q (want one of %v)", ErrAlgorithm, c.Algorithm, algorithms.Names()))
	}
	if c.NumBars < MinNumBars || c.NumBars > MaxNumBars {
		errs = append(errs, fmt.Errorf("%w: %d not in [%d, %d]", ErrNumBars, c.NumBars, MinNumBars, MaxNumBars))
	}
	if c.MinValue < MinValue || c.MaxValue > MaxValue || c.MinValue > c.MaxValue {
		errs = append(errs, fmt.Errorf("%w: [%d, %d] must lie within [%d, %d] with min <= max",
			ErrValueRange, c.MinValue, c.MaxValue, MinValue, MaxValue))
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		errs = append(errs, fmt.Errorf("%w: %g not in [%g, %g]", ErrSpeed, c.Speed, MinSpeed, MaxSpeed))
	}
	if _, err := datagen.ParseOrder(string(c.SortOrder)); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrSortOrder, c.SortOrder))
	}
	return errors.Join(errs...)
}

// Clamp pulls every field back into range in place. Unknown names fall back
// to their defaults and an inverted value range collapses onto its minimum.
func (c *Config) Clamp() *Config {
	if _, ok := algorithms.Lookup(c.Algorithm); !ok {
		c.Algorithm = DefaultAlgorithm
	}
	c.NumBars = clamp(c.NumBars, MinNumBars, MaxNumBars)
	c.MinValue = clamp(c.MinValue, MinValue, MaxValue)
	c.MaxValue = clamp(c.MaxValue, MinValue, MaxValue)
	if c.MaxValue < c.MinValue {
		c.MaxValue = c.MinValue
	}
	c.Speed = ClampSpeed(c.Speed)
	if order, err := datagen.ParseOrder(string(c.SortOrder)); err == nil {
		c.SortOrder = order
	} else {
		c.SortOrder = DefaultSortOrder
	}
	return c
}

func ClampSpeed(s float64) float64 { return clamp(s, MinSpeed, MaxSpeed) }

func clamp[T int | float64](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// normalize rewrites accepted spellings of the sort order to the canonical
// name, leaving unknown values for Validate to report.
func (c *Config) normalize() {
	if order, err := datagen.ParseOrder(string(c.SortOrder)); err == nil {
		c.SortOrder = order
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Equal reports whether two configurations would produce the same run.
func (c *Config) Equal(o *Config) bool { return *c == *o }

// ResolveSeed returns Seed, or a time-based seed when Seed is zero.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
