package playback

import (
	"time"

	"github.com/san-kum/sortviz/internal/trace"
)

// BaseInterval is the tick period at speed 1.
const BaseInterval = 250 * time.Millisecond

type State int

const (
	Idle State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Snapshot is what a renderer needs for one frame.
type Snapshot struct {
	Step      trace.Step
	Cursor    int
	Len       int
	State     State
	Speed     float64
	Algorithm string
}

// AtEnd reports whether the cursor sits on the last step.
func (s Snapshot) AtEnd() bool { return s.Cursor == s.Len-1 }

// Progress is the cursor position as a fraction of the trace.
func (s Snapshot) Progress() float64 {
	if s.Len <= 1 {
		return 1
	}
	return float64(s.Cursor) / float64(s.Len-1)
}

// Timer is the handle returned by a Scheduler.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. time.AfterFunc satisfies it through
// realScheduler; tests substitute a manual clock.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
