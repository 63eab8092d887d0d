package signal

import (
	"cmp"
	"fmt"

	"github.com/cwbudde/algo-tonal/dsp/core"
	"github.com/cwbudde/algo-tonal/dsp/palette"
)

// Oscillator is one configured generator: frequency, amplitude, a running
// phase accumulator, a color tag, a sample buffer and a playback cursor.
//
// The buffer is generated on construction and keeps its length for the
// lifetime of the oscillator.
type Oscillator struct {
	freqHz    float64
	amplitude float64
	step      float64
	phase     float64
	color     palette.Name
	buf       Buffer
	cursor    int
}

// Option configures an Oscillator.
type Option func(*Oscillator)

// WithColor sets the color tag used when drawing the oscillator.
func WithColor(name palette.Name) Option {
	return func(o *Oscillator) {
		o.color = name
	}
}

// WithPhase sets the initial phase accumulator in radians.
func WithPhase(phase float64) Option {
	return func(o *Oscillator) {
		o.phase = phase
	}
}

// NewOscillator validates cfg and the tone parameters and generates the
// initial buffer. Errors wrap core.ErrConfiguration.
func NewOscillator(cfg core.ProcessorConfig, freqHz, amplitude float64, opts ...Option) (*Oscillator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	if err := validateTone(freqHz, amplitude); err != nil {
		return nil, err
	}

	o := &Oscillator{
		freqHz:    freqHz,
		amplitude: amplitude,
		step:      phaseStep(freqHz, cfg.SampleRate),
		color:     palette.White,
		buf:       NewBuffer(cfg.SampleCount),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if core.IsNonFinite(o.phase) {
		return nil, fmt.Errorf("signal: phase must be finite: %v: %w", o.phase, core.ErrConfiguration)
	}
	o.phase = core.WrapPhase(o.phase)
	fill(o.buf, o.phase, o.step, o.amplitude)
	return o, nil
}

// Frequency returns the frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.freqHz }

// Amplitude returns the amplitude.
func (o *Oscillator) Amplitude() float64 { return o.amplitude }

// Phase returns the phase accumulator in [0, 2π).
func (o *Oscillator) Phase() float64 { return o.phase }

// Step returns the phase increment per sample in radians.
func (o *Oscillator) Step() float64 { return o.step }

// Color returns the color tag.
func (o *Oscillator) Color() palette.Name { return o.color }

// Buffer returns the sample buffer. Callers must not modify it.
func (o *Oscillator) Buffer() Buffer { return o.buf }

// Len returns the buffer length.
func (o *Oscillator) Len() int { return o.buf.Len() }

// Cursor returns the playback cursor position.
func (o *Oscillator) Cursor() int { return o.cursor }

// Current returns the sample under the cursor.
func (o *Oscillator) Current() Sample { return o.buf.At(o.cursor) }

// Advance moves the cursor forward by one, wrapping modulo the buffer
// length, adds one phase step to the accumulator and returns the sample at
// the new cursor position.
func (o *Oscillator) Advance() Sample {
	o.cursor = core.WrapIndex(o.cursor, o.buf.Len())
	o.phase = core.WrapPhase(o.phase + o.step)
	return o.buf.At(o.cursor)
}

// Regenerate refills the buffer in place starting at the current phase
// accumulator. The length and cursor are unchanged.
func (o *Oscillator) Regenerate() {
	fill(o.buf, o.phase, o.step, o.amplitude)
}

// CompareByFrequency orders oscillators by ascending frequency.
func CompareByFrequency(a, b *Oscillator) int {
	return cmp.Compare(a.freqHz, b.freqHz)
}
