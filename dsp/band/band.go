package band

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tonal/dsp/core"
	"github.com/cwbudde/algo-tonal/dsp/palette"
)

// Default spectrum span: twelve octaves from about 8 Hz to 32 kHz.
const (
	DefaultMinFrequency = 8.025
	DefaultMaxFrequency = 32039.0
)

// PitchClasses is the number of pitch classes per octave.
const PitchClasses = 12

// PitchClassMix is the blend weight toward the pitch-class color.
const PitchClassMix = 0.56

// Band is one sub-interval of the spectrum. It contains frequencies in the
// half-open interval [Start, End).
type Band struct {
	Index int
	Start float64
	End   float64
}

// Contains reports whether freqHz lies in [Start, End).
func (b Band) Contains(freqHz float64) bool {
	return freqHz >= b.Start && freqHz < b.End
}

// Center returns the midpoint frequency.
func (b Band) Center() float64 {
	return 0.5 * (b.Start + b.End)
}

// Color returns the blended color of the band.
func (b Band) Color() palette.RGB {
	return Color(b.Index)
}

// Range returns the start and end frequency of band n out of count.
func Range(n, count int, minFreq, maxFreq float64) (start, end float64) {
	span := maxFreq - minFreq
	start = minFreq + float64(n)*span/float64(count)
	end = minFreq + float64(n+1)*span/float64(count)
	return start, end
}

// ValidateSpan reports an error wrapping core.ErrConfiguration unless
// 0 <= minFreq < maxFreq and both are finite.
func ValidateSpan(minFreq, maxFreq float64) error {
	if core.IsNonFinite(minFreq) || core.IsNonFinite(maxFreq) {
		return fmt.Errorf("band: frequency span must be finite: [%v, %v]: %w", minFreq, maxFreq, core.ErrConfiguration)
	}
	if minFreq < 0 {
		return fmt.Errorf("band: min frequency must be >= 0: %v: %w", minFreq, core.ErrConfiguration)
	}
	if !(minFreq < maxFreq) {
		return fmt.Errorf("band: min frequency must be < max frequency: %v >= %v: %w", minFreq, maxFreq, core.ErrConfiguration)
	}
	return nil
}

// Partition returns all count bands over [minFreq, maxFreq].
func Partition(count int, minFreq, maxFreq float64) ([]Band, error) {
	if count <= 0 {
		return nil, fmt.Errorf("band: count must be > 0: %d: %w", count, core.ErrConfiguration)
	}
	if err := ValidateSpan(minFreq, maxFreq); err != nil {
		return nil, err
	}
	bands := make([]Band, count)
	for n := range bands {
		start, end := Range(n, count, minFreq, maxFreq)
		bands[n] = Band{Index: n, Start: start, End: end}
	}
	return bands, nil
}

// Octave returns the octave index of band n.
func Octave(n int) int {
	return n / PitchClasses
}

// PitchClass returns the pitch-class index of band n.
func PitchClass(n int) int {
	return n % PitchClasses
}

// Color blends the octave color of n with its pitch-class color.
// Indices past the palette fall back to black.
func Color(n int) palette.RGB {
	octave := palette.Octave(Octave(n)).RGB()
	pitch := palette.Octave(PitchClass(n)).RGB()
	return palette.Blend(octave, pitch, PitchClassMix)
}

// Find returns the index of the first band containing freqHz.
func Find(freqHz float64, bands []Band) (int, bool) {
	for i, b := range bands {
		if b.Contains(freqHz) {
			return i, true
		}
	}
	return 0, false
}

// Mapper caches the partition for one resolution and span.
type Mapper struct {
	resolution Resolution
	minFreq    float64
	maxFreq    float64
	bands      []Band
}

// NewMapper partitions [minFreq, maxFreq] at level r.
func NewMapper(r Resolution, minFreq, maxFreq float64) (*Mapper, error) {
	count, err := r.Subdivisions()
	if err != nil {
		return nil, err
	}
	bands, err := Partition(count, minFreq, maxFreq)
	if err != nil {
		return nil, err
	}
	return &Mapper{resolution: r, minFreq: minFreq, maxFreq: maxFreq, bands: bands}, nil
}

// Resolution returns the partition level.
func (m *Mapper) Resolution() Resolution { return m.resolution }

// Len returns the number of bands.
func (m *Mapper) Len() int { return len(m.bands) }

// Bands returns the partition. Callers must not modify it.
func (m *Mapper) Bands() []Band { return m.bands }

// Span returns the partitioned frequency range.
func (m *Mapper) Span() (minFreq, maxFreq float64) { return m.minFreq, m.maxFreq }

// Locate returns the index of the band containing freqHz. It agrees with
// Find but computes the index directly.
func (m *Mapper) Locate(freqHz float64) (int, bool) {
	if !(freqHz >= m.minFreq) || core.IsNonFinite(freqHz) {
		return 0, false
	}
	count := len(m.bands)
	guess := int(math.Floor((freqHz - m.minFreq) / (m.maxFreq - m.minFreq) * float64(count)))
	for n := max(guess-1, 0); n <= min(guess+1, count-1); n++ {
		if m.bands[n].Contains(freqHz) {
			return n, true
		}
	}
	return 0, false
}

// Tone is a frequency/amplitude pair placed into the histogram.
type Tone struct {
	Frequency float64
	Amplitude float64
}

// Levels returns one level per band: the summed amplitude of every tone
// whose frequency falls in that band. Tones outside the span are dropped.
// dst is reused when it has enough capacity.
func (m *Mapper) Levels(dst []float64, tones ...Tone) []float64 {
	n := len(m.bands)
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	clear(dst)
	for _, t := range tones {
		if idx, ok := m.Locate(t.Frequency); ok {
			dst[idx] += t.Amplitude
		}
	}
	return dst
}
