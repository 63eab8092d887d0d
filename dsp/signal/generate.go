package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tonal/dsp/core"
)

// Generator creates deterministic phasor buffers from a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{cfg: core.ApplyProcessorOptions(opts...)}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Phasor generates cfg.SampleCount samples of a signal starting at phase 0.
func (g *Generator) Phasor(freqHz, amplitude float64) (Buffer, error) {
	return g.PhasorFrom(0, freqHz, amplitude)
}

// PhasorFrom generates cfg.SampleCount samples starting at phase0 radians.
func (g *Generator) PhasorFrom(phase0, freqHz, amplitude float64) (Buffer, error) {
	if err := g.cfg.Validate(); err != nil {
		return Buffer{}, fmt.Errorf("signal: %w", err)
	}
	if err := validateTone(freqHz, amplitude); err != nil {
		return Buffer{}, err
	}
	out := NewBuffer(g.cfg.SampleCount)
	fill(out, phase0, phaseStep(freqHz, g.cfg.SampleRate), amplitude)
	return out, nil
}

// Generate returns sampleCount samples of a signal with the given frequency
// and amplitude, starting at phase 0.
func Generate(freqHz, amplitude float64, sampleCount int, sampleRate float64) (Buffer, error) {
	g := NewGenerator(core.WithSampleRate(sampleRate), core.WithSampleCount(sampleCount))
	return g.Phasor(freqHz, amplitude)
}

func validateTone(freqHz, amplitude float64) error {
	if !(freqHz > 0) || core.IsNonFinite(freqHz) {
		return fmt.Errorf("signal: frequency must be > 0: %v: %w", freqHz, core.ErrConfiguration)
	}
	if !(amplitude >= 0) || core.IsNonFinite(amplitude) {
		return fmt.Errorf("signal: amplitude must be >= 0: %v: %w", amplitude, core.ErrConfiguration)
	}
	return nil
}

func phaseStep(freqHz, sampleRate float64) float64 {
	return 2 * math.Pi * freqHz / sampleRate
}

// fill writes amplitude·(cos θ_k, sin θ_k) with θ_k = phase0 + k·step.
// The phase is computed from k rather than accumulated to avoid drift.
func fill(buf Buffer, phase0, step, amplitude float64) {
	for k := range buf.X {
		sin, cos := math.Sincos(phase0 + step*float64(k))
		buf.X[k] = amplitude * cos
		buf.Y[k] = amplitude * sin
	}
}
