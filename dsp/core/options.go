package core

import (
	"errors"
	"fmt"
)

// ErrConfiguration is wrapped by every construction-time validation failure.
var ErrConfiguration = errors.New("configuration error")

// ProcessorConfig defines common synthesis settings.
type ProcessorConfig struct {
	SampleRate  float64
	SampleCount int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults used by the visualizer:
// 44.1 kHz and a 64-sample buffer.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:  44100,
		SampleCount: 64,
	}
}

// WithSampleRate sets the sample rate in Hz.
// Non-positive values are kept and rejected by Validate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.SampleRate = sampleRate
	}
}

// WithSampleCount sets the buffer length in samples.
// Non-positive values are kept and rejected by Validate.
func WithSampleCount(sampleCount int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.SampleCount = sampleCount
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports an error wrapping ErrConfiguration when the sample rate
// or sample count is not positive.
func (cfg ProcessorConfig) Validate() error {
	if !(cfg.SampleRate > 0) || IsNonFinite(cfg.SampleRate) {
		return fmt.Errorf("sample rate must be > 0: %v: %w", cfg.SampleRate, ErrConfiguration)
	}
	if cfg.SampleCount <= 0 {
		return fmt.Errorf("sample count must be > 0: %d: %w", cfg.SampleCount, ErrConfiguration)
	}
	return nil
}

// SamplePeriod returns the duration of one sample in seconds.
func (cfg ProcessorConfig) SamplePeriod() float64 {
	return 1 / cfg.SampleRate
}
