package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-tonal/dsp/band"
	"github.com/cwbudde/algo-tonal/dsp/core"
	"github.com/cwbudde/algo-tonal/dsp/palette"
	"github.com/cwbudde/algo-tonal/viz/frame"
)

// BandSource selects how band levels are computed.
type BandSource string

// Band level sources.
const (
	// SourceGenerators places each generator's amplitude in the band
	// containing its frequency.
	SourceGenerators BandSource = "generators"
	// SourceSpectrum measures the composite with a windowed FFT and keeps
	// the peak bin per band.
	SourceSpectrum BandSource = "spectrum"
)

// Valid reports whether s is a known source. The empty source selects
// SourceGenerators.
func (s BandSource) Valid() bool {
	switch s {
	case "", SourceGenerators, SourceSpectrum:
		return true
	}
	return false
}

// GeneratorConfig describes one oscillator.
type GeneratorConfig struct {
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	// Phase is the initial phase accumulator in radians.
	Phase float64 `json:"phase,omitempty"`
	// Color tags the generator's points. Black, the zero value and the
	// background, selects White.
	Color palette.Name `json:"color,omitempty"`
}

// Panels holds explicit panel geometry.
type Panels struct {
	Strip  frame.Frame `json:"strip"`
	Radial frame.Frame `json:"radial"`
	Bands  frame.Frame `json:"bands"`
}

// Config is the engine configuration.
type Config struct {
	SampleRate   float64         `json:"sample_rate"`
	SampleCount  int             `json:"sample_count"`
	MinFrequency float64         `json:"min_frequency"`
	MaxFrequency float64         `json:"max_frequency"`
	Resolution   band.Resolution `json:"resolution"`

	// Width, Height and Spacing describe the viewport. They are split into
	// the three panels by frame.Layout unless Panels is set.
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Spacing float64 `json:"spacing"`
	Panels  *Panels `json:"panels,omitempty"`

	Generators []GeneratorConfig `json:"generators"`

	// Scroll regenerates every buffer from its running phase on each
	// advance, so the strip view travels.
	Scroll     bool       `json:"scroll"`
	BandSource BandSource `json:"band_source"`
	// HistoryLength is the number of recent samples kept per generator.
	// Zero selects SampleCount.
	HistoryLength int `json:"history_length"`
}

// DefaultConfig returns a single 432 Hz generator in a 1600x1200 viewport.
func DefaultConfig() Config {
	proc := core.DefaultProcessorConfig()
	return Config{
		SampleRate:   proc.SampleRate,
		SampleCount:  proc.SampleCount,
		MinFrequency: band.DefaultMinFrequency,
		MaxFrequency: band.DefaultMaxFrequency,
		Resolution:   band.Semitone,
		Width:        1600,
		Height:       1200,
		Spacing:      10,
		Generators: []GeneratorConfig{
			{Frequency: 432, Amplitude: 100, Color: palette.White},
		},
		BandSource: SourceGenerators,
	}
}

// ProcessorConfig returns the synthesis settings of c.
func (c Config) ProcessorConfig() core.ProcessorConfig {
	return core.ApplyProcessorOptions(
		core.WithSampleRate(c.SampleRate),
		core.WithSampleCount(c.SampleCount),
	)
}

// Frames returns the strip, radial and band panels.
func (c Config) Frames() (strip, radial, bands frame.Frame) {
	if c.Panels != nil {
		return c.Panels.Strip, c.Panels.Radial, c.Panels.Bands
	}
	return frame.Layout(c.Width, c.Height, c.Spacing)
}

// Validate checks c. Failures wrap core.ErrConfiguration, or
// band.ErrInvalidResolution for an undefined resolution.
func (c Config) Validate() error {
	if err := c.ProcessorConfig().Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if err := band.ValidateSpan(c.MinFrequency, c.MaxFrequency); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if _, err := c.Resolution.Subdivisions(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}

	strip, radial, bands := c.Frames()
	for _, p := range []struct {
		name string
		f    frame.Frame
	}{{"strip", strip}, {"radial", radial}, {"bands", bands}} {
		if err := p.f.Validate(); err != nil {
			return fmt.Errorf("scene: %s panel: %w", p.name, err)
		}
	}

	for i, g := range c.Generators {
		if err := g.validate(); err != nil {
			return fmt.Errorf("scene: generator %d: %w", i, err)
		}
	}
	if !c.BandSource.Valid() {
		return fmt.Errorf("scene: unknown band source %q: %w", c.BandSource, core.ErrConfiguration)
	}
	if c.HistoryLength < 0 {
		return fmt.Errorf("scene: history length must be >= 0: %d: %w", c.HistoryLength, core.ErrConfiguration)
	}
	return nil
}

func (g GeneratorConfig) validate() error {
	if !(g.Frequency > 0) || core.IsNonFinite(g.Frequency) {
		return fmt.Errorf("frequency must be > 0: %v: %w", g.Frequency, core.ErrConfiguration)
	}
	if !(g.Amplitude >= 0) || core.IsNonFinite(g.Amplitude) {
		return fmt.Errorf("amplitude must be >= 0: %v: %w", g.Amplitude, core.ErrConfiguration)
	}
	if core.IsNonFinite(g.Phase) {
		return fmt.Errorf("phase must be finite: %v: %w", g.Phase, core.ErrConfiguration)
	}
	if !g.Color.Valid() {
		return fmt.Errorf("invalid color %d: %w", int(g.Color), core.ErrConfiguration)
	}
	return nil
}

func (c Config) historyLength() int {
	if c.HistoryLength == 0 {
		return c.SampleCount
	}
	return c.HistoryLength
}

// ReadConfig decodes JSON from r over DefaultConfig and validates the
// result. Unknown fields are rejected.
func ReadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("scene: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a JSON configuration file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()
	return ReadConfig(f)
}
