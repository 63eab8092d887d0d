// Package playback gates synthesis advances on elapsed wall-clock time.
//
// A [Scheduler] accumulates time deltas and authorizes one advance each
// call once a full sample period has accumulated. The threshold is
// subtracted rather than the accumulator zeroed, so jitter does not lose
// time. The scheduler never reads a clock itself; callers pass deltas or
// timestamps, which keeps runs reproducible.
package playback

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tonal/dsp/core"
)

// thresholdULPs is how many units in the last place of the sample period
// the accumulator may fall short and still authorize an advance. It covers
// rounding in delta sums that equal one period in exact arithmetic and
// nothing coarser.
const thresholdULPs = 8

// Scheduler is a monotonic-time gate for sample advances.
type Scheduler struct {
	threshold   float64
	minimum     float64
	accumulated float64
	last        float64
	started     bool
}

// NewScheduler returns a scheduler that authorizes one advance per
// 1/sampleRate seconds of accumulated time.
func NewScheduler(sampleRate float64) (*Scheduler, error) {
	if !(sampleRate > 0) || core.IsNonFinite(sampleRate) {
		return nil, fmt.Errorf("playback: sample rate must be > 0: %v: %w", sampleRate, core.ErrConfiguration)
	}
	t := 1 / sampleRate
	ulp := math.Nextafter(t, math.Inf(1)) - t
	return &Scheduler{threshold: t, minimum: t - thresholdULPs*ulp}, nil
}

// Threshold returns the sample period in seconds.
func (s *Scheduler) Threshold() float64 { return s.threshold }

// Accumulated returns the time carried toward the next advance.
func (s *Scheduler) Accumulated() float64 { return s.accumulated }

// Tick adds deltaSeconds to the accumulator and reports whether one
// advance is authorized. Negative and non-finite deltas count as zero.
func (s *Scheduler) Tick(deltaSeconds float64) bool {
	if deltaSeconds > 0 && !core.IsNonFinite(deltaSeconds) {
		s.accumulated += deltaSeconds
	}
	if s.accumulated < s.minimum {
		return false
	}
	s.accumulated -= s.threshold
	if s.accumulated < 0 {
		s.accumulated = 0
	}
	return true
}

// DropBacklog discards whole periods carried beyond the next advance, so
// the accumulator holds less than one period, and returns how many were
// dropped. Drivers that cap advances per frame call it to keep the
// carried time bounded.
func (s *Scheduler) DropBacklog() int {
	if s.accumulated < s.threshold {
		return 0
	}
	n := int(s.accumulated / s.threshold)
	s.accumulated = math.Mod(s.accumulated, s.threshold)
	return n
}

// Observe ticks with the time elapsed since the previous observed
// timestamp. The first call only records now.
func (s *Scheduler) Observe(nowSeconds float64) bool {
	if !s.started {
		s.started = true
		s.last = nowSeconds
		return false
	}
	delta := nowSeconds - s.last
	s.last = nowSeconds
	return s.Tick(delta)
}

// Reset clears the accumulator and the last observed timestamp.
func (s *Scheduler) Reset() {
	s.accumulated = 0
	s.last = 0
	s.started = false
}
