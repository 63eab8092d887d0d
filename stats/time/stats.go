package time

import (
	"math"

	"github.com/cwbudde/algo-tonal/dsp/core"
	"github.com/cwbudde/algo-tonal/dsp/signal"
)

// Axis holds statistics of one signal component.
//
//nolint:revive
type Axis struct {
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Max            float64
	MaxPos         int
	Min            float64
	MinPos         int
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS
	CrestFactor_dB float64
	ZeroCrossings  int
	Variance       float64
}

// Stats holds statistics of a phase-amplitude sample sequence.
//
//nolint:revive
type Stats struct {
	Length        int
	X             Axis
	Y             Axis
	PeakRadius    float64
	PeakRadius_dB float64
	MeanRadius    float64
	RMSRadius     float64
}

func emptyAxis() Axis {
	return Axis{
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

func emptyStats() Stats {
	return Stats{X: emptyAxis(), Y: emptyAxis(), PeakRadius_dB: math.Inf(-1)}
}

// axisAcc accumulates one component with Welford's update.
type axisAcc struct {
	mean, m2      float64
	sumSq         float64
	maxVal        float64
	maxPos        int
	minVal        float64
	minPos        int
	zeroCrossings int
	last          float64
}

func (a *axisAcc) push(i int, x float64) {
	ni := float64(i + 1)
	delta := x - a.mean
	a.mean += delta / ni
	a.m2 += delta * (x - a.mean)
	a.sumSq += x * x

	if i == 0 {
		a.maxVal, a.maxPos = x, 0
		a.minVal, a.minPos = x, 0
	} else {
		if x > a.maxVal {
			a.maxVal, a.maxPos = x, i
		}
		if x < a.minVal {
			a.minVal, a.minPos = x, i
		}
		if a.last*x < 0 {
			a.zeroCrossings++
		}
	}
	a.last = x
}

func (a *axisAcc) result(n int) Axis {
	nf := float64(n)
	rms := math.Sqrt(a.sumSq / nf)
	peak := math.Max(math.Abs(a.maxVal), math.Abs(a.minVal))

	var crest, crestdB float64
	if rms > 0 {
		crest = peak / rms
		crestdB = core.LinearToDB(crest)
	}

	return Axis{
		DC:             a.mean,
		RMS:            rms,
		RMS_dB:         core.LinearToDB(rms),
		Max:            a.maxVal,
		MaxPos:         a.maxPos,
		Min:            a.minVal,
		MinPos:         a.minPos,
		Peak:           peak,
		Peak_dB:        core.LinearToDB(peak),
		CrestFactor:    crest,
		CrestFactor_dB: crestdB,
		ZeroCrossings:  a.zeroCrossings,
		Variance:       a.m2 / nf,
	}
}

// Accumulator builds [Stats] one sample at a time.
type Accumulator struct {
	n      int
	x, y   axisAcc
	peakR  float64
	sumR   float64
	sumSqR float64
	radii  []float64
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Push adds one sample.
func (a *Accumulator) Push(s signal.Sample) {
	a.push(s.X, s.Y, s.Radius())
}

// PushBuffer adds every sample of buf in index order. Radii are computed
// for the whole block at once.
func (a *Accumulator) PushBuffer(buf signal.Buffer) {
	a.radii = buf.Radii(a.radii)
	for i, r := range a.radii {
		a.push(buf.X[i], buf.Y[i], r)
	}
}

func (a *Accumulator) push(x, y, r float64) {
	a.x.push(a.n, x)
	a.y.push(a.n, y)
	if r > a.peakR {
		a.peakR = r
	}
	a.sumR += r
	a.sumSqR += r * r
	a.n++
}

// Len returns the number of samples pushed.
func (a *Accumulator) Len() int {
	return a.n
}

// Result returns the statistics of all samples pushed so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return emptyStats()
	}
	nf := float64(a.n)
	return Stats{
		Length:        a.n,
		X:             a.x.result(a.n),
		Y:             a.y.result(a.n),
		PeakRadius:    a.peakR,
		PeakRadius_dB: core.LinearToDB(a.peakR),
		MeanRadius:    a.sumR / nf,
		RMSRadius:     math.Sqrt(a.sumSqR / nf),
	}
}

// Reset clears the accumulator for reuse.
func (a *Accumulator) Reset() {
	*a = Accumulator{radii: a.radii[:0]}
}

// Calculate computes the statistics of buf in a single pass.
func Calculate(buf signal.Buffer) Stats {
	var a Accumulator
	a.PushBuffer(buf)
	return a.Result()
}
