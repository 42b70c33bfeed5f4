// Package loop converts real elapsed time into fixed logical ticks.
package loop

import (
	"context"
	"log"
	"time"
)

const (
	// ReferenceRate is the tick rate all motion constants are tuned for.
	ReferenceRate = 60.0
	// DefaultMaxCatchUp caps the ticks run for one frame, which keeps a
	// stalled frame from snowballing. 60 / 5 = 12 fps minimum.
	DefaultMaxCatchUp = 5
)

// Stepper accumulates elapsed time and hands out whole ticks.
type Stepper struct {
	frameRate  float64
	maxCatchUp int
	interval   time.Duration
	acc        time.Duration
	last       time.Time
	ticks      uint64
	dropped    time.Duration
}

// NewStepper returns a stepper ticking frameRate times per second. Each tick
// advances the simulation by Step() reference steps.
func NewStepper(frameRate float64, maxCatchUp int) *Stepper {
	if frameRate <= 0 {
		frameRate = ReferenceRate
	}
	if maxCatchUp <= 0 {
		maxCatchUp = DefaultMaxCatchUp
	}
	return &Stepper{
		frameRate:  frameRate,
		maxCatchUp: maxCatchUp,
		interval:   time.Duration(float64(time.Second) / frameRate),
	}
}

// Step is the logical step multiplier for one tick: 1 at 60 Hz.
func (s *Stepper) Step() float64 {
	return ReferenceRate / s.frameRate
}

// Interval is the real time covered by one tick.
func (s *Stepper) Interval() time.Duration { return s.interval }

// Ticks is the number of ticks handed out so far.
func (s *Stepper) Ticks() uint64 { return s.ticks }

// Dropped is the total time discarded by the catch-up cap.
func (s *Stepper) Dropped() time.Duration { return s.dropped }

// Advance adds elapsed time and returns how many ticks to run now.
func (s *Stepper) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		s.acc += elapsed
	}

	n := int(s.acc / s.interval)
	if n > s.maxCatchUp {
		s.dropped += s.acc - time.Duration(s.maxCatchUp)*s.interval
		n = s.maxCatchUp
		s.acc = 0
	} else {
		s.acc -= time.Duration(n) * s.interval
	}

	s.ticks += uint64(n)
	return n
}

// Frame advances by the wall time since the previous call. The first call
// only records the clock.
func (s *Stepper) Frame(now time.Time) int {
	if s.last.IsZero() {
		s.last = now
		return 0
	}
	elapsed := now.Sub(s.last)
	s.last = now
	return s.Advance(elapsed)
}

// Run drives update from a ticker until ctx is done. It is the windowless
// host; the ebiten host calls Frame from its own Update.
func (s *Stepper) Run(ctx context.Context, update func(dt float64) error) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("Loop started at %.0f ticks/second", s.frameRate)

	s.Frame(time.Now())
	for {
		select {
		case <-ctx.Done():
			log.Printf("Loop stopped after %d ticks", s.ticks)
			return nil
		case now := <-ticker.C:
			for range s.Frame(now) {
				if err := update(s.Step()); err != nil {
					return err
				}
			}
		}
	}
}
