package playback

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/datagen"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/trace"
)

// Controller owns one materialized step trace and a cursor into it. All
// methods are safe for concurrent use; timer callbacks and UI events are
// serialized on the same mutex.
type Controller struct {
	mu sync.Mutex

	cfg      *config.Config
	registry *experiment.Registry
	data     *datagen.Generator
	newID    func() string
	sched    Scheduler
	logger   *slog.Logger

	input  trace.Array
	steps  []trace.Step
	cursor int
	state  State

	// epoch invalidates scheduled ticks; it changes whenever the schedule
	// is cancelled so a tick already in flight becomes a no-op.
	epoch uint64
	timer Timer

	subscribers []func(Snapshot)
}

type Option func(*Controller)

func WithScheduler(s Scheduler) Option { return func(c *Controller) { c.sched = s } }

func WithLogger(l *slog.Logger) Option { return func(c *Controller) { c.logger = l } }

func WithIDFunc(f func() string) Option { return func(c *Controller) { c.newID = f } }

func WithRegistry(r *experiment.Registry) Option { return func(c *Controller) { c.registry = r } }

// New validates cfg, generates the first dataset and computes its steps.
func New(cfg *config.Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:      cfg.Clone(),
		registry: experiment.NewRegistry(),
		newID:    uuid.NewString,
		sched:    realScheduler{},
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if _, err := c.registry.Algorithm(c.cfg.Algorithm); err != nil {
		return nil, err
	}
	c.data = datagen.New(c.cfg.ResolveSeed(), datagen.WithIDFunc(c.newID))
	c.regenerateLocked()
	return c, nil
}

// Subscribe registers f to receive a snapshot after every change. f runs
// outside the controller lock and may call back into the controller.
func (c *Controller) Subscribe(f func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, f)
}

// Generate discards the current trace, builds fresh data with the configured
// order and recomputes the steps. The cursor returns to 0 and playback idles.
func (c *Controller) Generate() {
	c.update(func() bool {
		c.regenerateLocked()
		return true
	})
}

// GenerateWith switches the configured order and regenerates.
func (c *Controller) GenerateWith(order datagen.Order) error {
	parsed, err := datagen.ParseOrder(string(order))
	if err != nil {
		return err
	}
	c.update(func() bool {
		c.cfg.SortOrder = parsed
		c.regenerateLocked()
		return true
	})
	return nil
}

// SetAlgorithm keeps the current data and replaces the trace with the one
// produced by the named algorithm.
func (c *Controller) SetAlgorithm(name string) error {
	var err error
	c.update(func() bool {
		if _, err = c.registry.Algorithm(name); err != nil {
			return false
		}
		c.cfg.Algorithm = name
		c.recomputeLocked()
		return true
	})
	return err
}

// SetConfig replaces the whole configuration and regenerates.
func (c *Controller) SetConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := c.registry.Algorithm(cfg.Algorithm); err != nil {
		return err
	}
	c.update(func() bool {
		if cfg.Seed != 0 && cfg.Seed != c.cfg.Seed {
			c.data = datagen.New(cfg.Seed, datagen.WithIDFunc(c.newID))
		}
		c.cfg = cfg.Clone()
		c.regenerateLocked()
		return true
	})
	return nil
}

// SetSpeed clamps s into the configured bounds. A pending tick keeps its
// interval; every later tick uses the new one.
func (c *Controller) SetSpeed(s float64) {
	c.update(func() bool {
		s = config.ClampSpeed(s)
		if s == c.cfg.Speed {
			return false
		}
		c.cfg.Speed = s
		c.logger.Debug("speed changed", "speed", s, "interval", c.intervalLocked())
		return true
	})
}

func (c *Controller) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Speed
}

func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.intervalLocked()
}

// StepForward advances the cursor. At the last step it only drops to idle.
func (c *Controller) StepForward() {
	c.update(c.forwardLocked)
}

// StepBackward moves the cursor back; at 0 it does nothing.
func (c *Controller) StepBackward() {
	c.update(func() bool {
		if c.cursor == 0 {
			return false
		}
		c.cursor--
		return true
	})
}

func (c *Controller) JumpToStart() { c.update(func() bool { return c.seekLocked(0) }) }

func (c *Controller) JumpToEnd() {
	c.update(func() bool { return c.seekLocked(len(c.steps) - 1) })
}

// Seek moves the cursor to i, clamped to the trace.
func (c *Controller) Seek(i int) { c.update(func() bool { return c.seekLocked(i) }) }

func (c *Controller) seekLocked(i int) bool {
	i = max(0, min(i, len(c.steps)-1))
	if i == c.cursor {
		return false
	}
	c.cursor = i
	return true
}

// Play starts ticking at the current interval. Each tick behaves like
// StepForward, so playing from the last step idles on the first tick.
func (c *Controller) Play() {
	c.update(func() bool {
		if c.state == Playing {
			return false
		}
		c.state = Playing
		c.scheduleLocked()
		c.logger.Debug("playback started", "cursor", c.cursor, "interval", c.intervalLocked())
		return true
	})
}

// Pause cancels the schedule. No tick scheduled before Pause returns will
// move the cursor.
func (c *Controller) Pause() {
	c.update(func() bool {
		c.cancelLocked()
		if c.state == Paused {
			return false
		}
		c.state = Paused
		c.logger.Debug("playback paused", "cursor", c.cursor)
		return true
	})
}

func (c *Controller) Toggle() {
	c.mu.Lock()
	playing := c.state == Playing
	c.mu.Unlock()
	if playing {
		c.Pause()
	} else {
		c.Play()
	}
}

// Stop cancels playback and rewinds to the first step.
func (c *Controller) Stop() {
	c.update(func() bool {
		c.cancelLocked()
		changed := c.state != Idle || c.cursor != 0
		c.state = Idle
		c.cursor = 0
		return changed
	})
}

func (c *Controller) Current() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.steps)
}

func (c *Controller) PlayState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Steps returns the current trace. Steps are immutable and must not be
// modified by the caller.
func (c *Controller) Steps() []trace.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps
}

// Input returns a copy of the dataset the trace was built from.
func (c *Controller) Input() trace.Array {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input.Clone()
}

func (c *Controller) Config() *config.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Clone()
}

func (c *Controller) String() string {
	s := c.Current()
	return fmt.Sprintf("%s %d/%d %s x%g", s.Algorithm, s.Cursor+1, s.Len, s.State, s.Speed)
}

// update runs fn under the lock and, if it reports a change, notifies
// subscribers after unlocking.
func (c *Controller) update(fn func() bool) {
	c.mu.Lock()
	changed := fn()
	snap := c.snapshotLocked()
	subs := c.subscribers
	c.mu.Unlock()
	if !changed {
		return
	}
	for _, f := range subs {
		f(snap)
	}
}

func (c *Controller) tick(epoch uint64) {
	c.update(func() bool {
		if epoch != c.epoch || c.state != Playing {
			return false
		}
		c.timer = nil
		changed := c.forwardLocked()
		if c.state == Playing {
			c.scheduleLocked()
		}
		return changed
	})
}

func (c *Controller) forwardLocked() bool {
	if c.cursor < len(c.steps)-1 {
		c.cursor++
		return true
	}
	if c.state == Idle {
		return false
	}
	c.cancelLocked()
	c.state = Idle
	c.logger.Debug("playback reached end", "steps", len(c.steps))
	return true
}

func (c *Controller) scheduleLocked() {
	epoch := c.epoch
	c.timer = c.sched.AfterFunc(c.intervalLocked(), func() { c.tick(epoch) })
}

func (c *Controller) cancelLocked() {
	c.epoch++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) intervalLocked() time.Duration {
	return time.Duration(float64(BaseInterval) / c.cfg.Speed)
}

func (c *Controller) regenerateLocked() {
	c.input = c.data.Generate(c.cfg.NumBars, c.cfg.MinValue, c.cfg.MaxValue, c.cfg.SortOrder)
	c.recomputeLocked()
}

func (c *Controller) recomputeLocked() {
	c.cancelLocked()
	alg, err := c.registry.Algorithm(c.cfg.Algorithm)
	if err != nil {
		// Guarded by New and SetAlgorithm.
		panic(err)
	}
	c.steps = alg.Generate(c.input)
	c.cursor = 0
	c.state = Idle
	c.logger.Debug("steps computed",
		"algorithm", c.cfg.Algorithm,
		"order", c.cfg.SortOrder,
		"elements", len(c.input),
		"steps", len(c.steps))
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Step:      c.steps[c.cursor],
		Cursor:    c.cursor,
		Len:       len(c.steps),
		State:     c.state,
		Speed:     c.cfg.Speed,
		Algorithm: c.cfg.Algorithm,
	}
}
