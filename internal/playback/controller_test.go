package playback_test

import (
	"fmt"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/datagen"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/trace"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("el-%d", n)
	}
}

var _ = Describe("Controller", func() {
	var (
		cfg   *config.Config
		sched *manualScheduler
		ctrl  *playback.Controller
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.NumBars = 8
		cfg.Seed = 3
		sched = &manualScheduler{}
		var err error
		ctrl, err = playback.New(cfg, playback.WithScheduler(sched), playback.WithIDFunc(seqIDs()))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("starts idle on the first step", func() {
			snap := ctrl.Current()
			Expect(snap.Cursor).To(Equal(0))
			Expect(snap.State).To(Equal(playback.Idle))
			Expect(snap.Step.Action).To(Equal(trace.ActionStart))
			Expect(snap.Len).To(BeNumerically(">=", 2))
			Expect(trace.Validate(ctrl.Input(), ctrl.Steps())).To(Succeed())
		})

		It("rejects an invalid configuration", func() {
			bad := config.DefaultConfig()
			bad.NumBars = 0
			_, err := playback.New(bad)
			Expect(err).To(MatchError(config.ErrNumBars))
		})

		It("does not keep a reference to the caller's config", func() {
			cfg.Algorithm = "quick"
			Expect(ctrl.Config().Algorithm).To(Equal("bubble"))
		})
	})

	Describe("manual stepping", func() {
		It("ignores StepBackward at the first step", func() {
			ctrl.StepBackward()
			Expect(ctrl.Cursor()).To(Equal(0))
			Expect(ctrl.PlayState()).To(Equal(playback.Idle))
		})

		It("moves one step at a time in both directions", func() {
			ctrl.StepForward()
			ctrl.StepForward()
			Expect(ctrl.Cursor()).To(Equal(2))
			ctrl.StepBackward()
			Expect(ctrl.Cursor()).To(Equal(1))
			Expect(ctrl.Current().Step).To(Equal(ctrl.Steps()[1]))
		})

		It("stops at the last step and drops to idle", func() {
			ctrl.JumpToEnd()
			last := ctrl.Len() - 1
			Expect(ctrl.Cursor()).To(Equal(last))

			ctrl.Play()
			ctrl.StepForward()
			Expect(ctrl.Cursor()).To(Equal(last))
			Expect(ctrl.PlayState()).To(Equal(playback.Idle))
			Expect(ctrl.Current().AtEnd()).To(BeTrue())
		})

		It("jumps and seeks within bounds", func() {
			ctrl.Seek(1000)
			Expect(ctrl.Cursor()).To(Equal(ctrl.Len() - 1))
			ctrl.Seek(-5)
			Expect(ctrl.Cursor()).To(Equal(0))
			ctrl.Seek(3)
			ctrl.JumpToStart()
			Expect(ctrl.Cursor()).To(Equal(0))
		})
	})

	Describe("timed playback", func() {
		It("schedules ticks at the base interval divided by speed", func() {
			ctrl.Play()
			Expect(ctrl.PlayState()).To(Equal(playback.Playing))
			Expect(sched.Pending()).To(Equal(1))
			Expect(sched.Last().d).To(Equal(playback.BaseInterval))

			ctrl.SetSpeed(2)
			Expect(sched.Fire()).To(BeTrue())
			Expect(ctrl.Cursor()).To(Equal(1))
			Expect(sched.Last().d).To(Equal(125 * time.Millisecond))
		})

		It("ignores Play while already playing", func() {
			ctrl.Play()
			ctrl.Play()
			Expect(sched.Pending()).To(Equal(1))
		})

		It("advances exactly once per tick across speed changes", func() {
			ctrl.Play()
			for i := 1; i <= 4; i++ {
				ctrl.SetSpeed(float64(i))
				Expect(sched.Fire()).To(BeTrue())
				Expect(ctrl.Cursor()).To(Equal(i))
			}
		})

		It("plays to the end and idles", func() {
			ctrl.Play()
			ticks := sched.Drain(10_000)
			Expect(ctrl.Cursor()).To(Equal(ctrl.Len() - 1))
			Expect(ctrl.PlayState()).To(Equal(playback.Idle))
			Expect(ticks).To(Equal(ctrl.Len()))
			Expect(sched.Pending()).To(BeZero())
		})

		It("idles on the first tick when played from the end", func() {
			ctrl.JumpToEnd()
			ctrl.Play()
			Expect(sched.Fire()).To(BeTrue())
			Expect(ctrl.PlayState()).To(Equal(playback.Idle))
			Expect(sched.Pending()).To(BeZero())
		})

		It("clamps the speed", func() {
			ctrl.SetSpeed(100)
			Expect(ctrl.Speed()).To(Equal(config.MaxSpeed))
			Expect(ctrl.Interval()).To(Equal(25 * time.Millisecond))
			ctrl.SetSpeed(0)
			Expect(ctrl.Speed()).To(Equal(config.MinSpeed))
			Expect(ctrl.Interval()).To(Equal(time.Second))
		})
	})

	Describe("pausing", func() {
		It("cancels the pending tick", func() {
			ctrl.Play()
			sched.Fire()
			pending := sched.Last()
			ctrl.Pause()
			Expect(ctrl.PlayState()).To(Equal(playback.Paused))
			Expect(sched.Pending()).To(BeZero())

			pending.FireStale()
			Expect(ctrl.Cursor()).To(Equal(1))
		})

		It("does not let an old tick advance after resuming", func() {
			ctrl.Play()
			stale := sched.Last()
			ctrl.Pause()
			ctrl.Play()

			stale.FireStale()
			Expect(ctrl.Cursor()).To(Equal(0))
			Expect(sched.Fire()).To(BeTrue())
			Expect(ctrl.Cursor()).To(Equal(1))
		})

		It("toggles between playing and paused", func() {
			ctrl.Toggle()
			Expect(ctrl.PlayState()).To(Equal(playback.Playing))
			ctrl.Toggle()
			Expect(ctrl.PlayState()).To(Equal(playback.Paused))
		})

		It("stops back to the first step", func() {
			ctrl.Play()
			sched.Fire()
			sched.Fire()
			ctrl.Stop()
			Expect(ctrl.Cursor()).To(Equal(0))
			Expect(ctrl.PlayState()).To(Equal(playback.Idle))
			Expect(sched.Pending()).To(BeZero())
		})
	})

	Describe("regeneration", func() {
		It("discards the old trace and resets playback", func() {
			before := ctrl.Input()
			ctrl.Play()
			sched.Fire()
			stale := sched.Last()

			ctrl.Generate()
			Expect(ctrl.Cursor()).To(Equal(0))
			Expect(ctrl.PlayState()).To(Equal(playback.Idle))
			Expect(ctrl.Input().IDs()).NotTo(ContainElement(before[0].ID))
			Expect(trace.Validate(ctrl.Input(), ctrl.Steps())).To(Succeed())

			stale.FireStale()
			Expect(ctrl.Cursor()).To(Equal(0))
		})

		It("regenerates with a new order", func() {
			Expect(ctrl.GenerateWith(datagen.SortedDescending)).To(Succeed())
			Expect(ctrl.Config().SortOrder).To(Equal(datagen.SortedDescending))
			values := ctrl.Input().Values()
			for i := 1; i < len(values); i++ {
				Expect(values[i-1]).To(BeNumerically(">=", values[i]))
			}
			Expect(ctrl.GenerateWith("shuffled")).NotTo(Succeed())
		})

		It("switches algorithm over the same data", func() {
			input := ctrl.Input()
			ctrl.Seek(4)
			Expect(ctrl.SetAlgorithm("merge")).To(Succeed())
			Expect(ctrl.Input()).To(Equal(input))
			Expect(ctrl.Cursor()).To(Equal(0))
			Expect(ctrl.Current().Algorithm).To(Equal("merge"))

			merge, _ := experiment.NewRegistry().Algorithm("merge")
			Expect(ctrl.Steps()).To(Equal(merge.Generate(input)))
		})

		It("rejects an unknown algorithm without touching the trace", func() {
			ctrl.Seek(2)
			steps := ctrl.Steps()
			Expect(ctrl.SetAlgorithm("bogo")).To(MatchError(experiment.ErrUnknownAlgorithm))
			Expect(ctrl.Cursor()).To(Equal(2))
			Expect(ctrl.Steps()).To(Equal(steps))
		})

		It("applies a whole new configuration", func() {
			next := config.DefaultConfig()
			next.Algorithm = "heap"
			next.NumBars = 20
			Expect(ctrl.SetConfig(next)).To(Succeed())
			Expect(ctrl.Input()).To(HaveLen(20))
			Expect(ctrl.Current().Algorithm).To(Equal("heap"))

			next.NumBars = 1
			Expect(ctrl.SetConfig(next)).To(MatchError(config.ErrNumBars))
			Expect(ctrl.Input()).To(HaveLen(20))
		})
	})

	Describe("subscribers", func() {
		It("receive a snapshot for every change", func() {
			var got []playback.Snapshot
			ctrl.Subscribe(func(s playback.Snapshot) { got = append(got, s) })

			ctrl.StepForward()
			ctrl.StepBackward()
			ctrl.StepBackward()
			ctrl.Play()

			Expect(got).To(HaveLen(3))
			Expect(got[0].Cursor).To(Equal(1))
			Expect(got[1].Cursor).To(Equal(0))
			Expect(got[2].State).To(Equal(playback.Playing))
		})

		It("may call back into the controller", func() {
			cursors := []int{}
			ctrl.Subscribe(func(playback.Snapshot) { cursors = append(cursors, ctrl.Cursor()) })
			ctrl.StepForward()
			Expect(cursors).To(Equal([]int{1}))
		})
	})
})

var _ = Describe("Controller with the real clock", func() {
	It("plays a short trace to the end", func() {
		cfg := config.DefaultConfig()
		cfg.NumBars = config.MinNumBars
		cfg.Speed = config.MaxSpeed
		cfg.SortOrder = datagen.SortedAscending
		ctrl, err := playback.New(cfg)
		Expect(err).NotTo(HaveOccurred())

		done := make(chan struct{})
		ctrl.Subscribe(func(s playback.Snapshot) {
			if s.State == playback.Idle && s.AtEnd() {
				close(done)
			}
		})
		ctrl.Play()
		Eventually(done, 5*time.Second).Should(BeClosed())
		Expect(ctrl.Cursor()).To(Equal(ctrl.Len() - 1))
	})

	It("keeps the cursor in bounds under concurrent use", func() {
		cfg := config.DefaultConfig()
		cfg.Speed = config.MaxSpeed
		ctrl, err := playback.New(cfg)
		Expect(err).NotTo(HaveOccurred())
		defer ctrl.Stop()

		var wg sync.WaitGroup
		ops := []func(){ctrl.StepForward, ctrl.StepBackward, ctrl.Toggle, ctrl.JumpToEnd, ctrl.JumpToStart}
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(op func()) {
				defer wg.Done()
				for j := 0; j < 50; j++ {
					op()
				}
			}(ops[i%len(ops)])
		}
		wg.Wait()

		Expect(ctrl.Cursor()).To(BeNumerically(">=", 0))
		Expect(ctrl.Cursor()).To(BeNumerically("<", ctrl.Len()))
	})
})
