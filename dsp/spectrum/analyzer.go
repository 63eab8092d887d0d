package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tonal/dsp/band"
	"github.com/cwbudde/algo-tonal/dsp/core"
	"github.com/cwbudde/algo-tonal/dsp/signal"
)

// Analyzer computes amplitude spectra of fixed-length sample buffers.
type Analyzer struct {
	sampleRate float64
	length     int
	fftSize    int
	plan       *algofft.Plan[complex128]
	window     []float64
	scale      float64

	wx, wy []float64
	in     []complex128
	out    []complex128
	mag    []float64
}

// NewAnalyzer prepares an analyzer for buffers of length samples at
// sampleRate. The FFT size is the next power of two >= length.
func NewAnalyzer(sampleRate float64, length int) (*Analyzer, error) {
	cfg := core.ProcessorConfig{SampleRate: sampleRate, SampleCount: length}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	fftSize := nextPowerOf2(length)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	window := hann(length)
	sum := 0.0
	for _, w := range window {
		sum += w
	}
	scale := 0.0
	if sum > 0 {
		scale = 1 / sum
	}

	return &Analyzer{
		sampleRate: sampleRate,
		length:     length,
		fftSize:    fftSize,
		plan:       plan,
		window:     window,
		scale:      scale,
		wx:         make([]float64, length),
		wy:         make([]float64, length),
		in:         make([]complex128, fftSize),
		out:        make([]complex128, fftSize),
		mag:        make([]float64, fftSize),
	}, nil
}

// FFTSize returns the transform length.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// BinCount returns the number of positive-frequency bins, DC through Nyquist.
func (a *Analyzer) BinCount() int { return a.fftSize/2 + 1 }

// BinFrequency returns the center frequency of bin k in Hz.
func (a *Analyzer) BinFrequency(k int) float64 {
	return float64(k) * a.sampleRate / float64(a.fftSize)
}

// Amplitudes returns the positive-frequency amplitude spectrum of buf,
// scaled so a lone generator on a bin center reads its amplitude. The
// returned slice is reused by the next call.
func (a *Analyzer) Amplitudes(buf signal.Buffer) ([]float64, error) {
	if buf.Len() != a.length {
		return nil, fmt.Errorf("spectrum: buffer has %d samples, want %d", buf.Len(), a.length)
	}

	vecmath.MulBlock(a.wx, buf.X, a.window)
	vecmath.MulBlock(a.wy, buf.Y, a.window)
	clear(a.in)
	for k := range a.wx {
		a.in[k] = complex(a.wx[k], a.wy[k])
	}
	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := a.mag[:a.BinCount()]
	MagnitudeInto(bins, a.out[:len(bins)])
	vecmath.ScaleBlock(bins, bins, a.scale)
	return bins, nil
}

// BandLevels writes the peak amplitude of the bins falling in each band of
// m into dst and returns it. Bands holding no bin read zero.
func (a *Analyzer) BandLevels(dst []float64, buf signal.Buffer, m *band.Mapper) ([]float64, error) {
	n := m.Len()
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	clear(dst)

	bins, err := a.Amplitudes(buf)
	if err != nil {
		return nil, err
	}
	for k, v := range bins {
		idx, ok := m.Locate(a.BinFrequency(k))
		if ok && v > dst[idx] {
			dst[idx] = v
		}
	}
	return dst, nil
}

// hann returns a periodic Hann window. Its transform is non-zero only on
// the center bin and its two neighbours, so on-bin generators do not leak
// into each other. Length 1 yields {1}.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
