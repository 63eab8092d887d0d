package scene

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-tonal/dsp/band"
	"github.com/cwbudde/algo-tonal/dsp/palette"
	"github.com/cwbudde/algo-tonal/dsp/playback"
	"github.com/cwbudde/algo-tonal/dsp/signal"
	"github.com/cwbudde/algo-tonal/dsp/spectrum"
	"github.com/cwbudde/algo-tonal/dsp/superpose"
	stats "github.com/cwbudde/algo-tonal/stats/time"
	"github.com/cwbudde/algo-tonal/viz/frame"
)

// octaveDividers is the number of columns the band panel guide splits into.
const octaveDividers = 12

// Engine owns every component of the visualizer.
type Engine struct {
	cfg Config

	strip, radial, bands frame.Frame

	oscs      []*signal.Oscillator
	histories []*signal.History
	mix       *superpose.Superposition
	scheduler *playback.Scheduler
	mapper    *band.Mapper
	analyzer  *spectrum.Analyzer
	emitted   *stats.Accumulator

	levels   []float64
	advances uint64
}

// LegendEntry describes one generator for display.
type LegendEntry struct {
	Index     int
	Frequency float64
	Amplitude float64
	Color     palette.Name
}

// New validates cfg and builds the engine. Generators are registered in
// configuration order.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sched, err := playback.NewScheduler(cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	mapper, err := band.NewMapper(cfg.Resolution, cfg.MinFrequency, cfg.MaxFrequency)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	mix, err := superpose.New()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	e := &Engine{
		cfg:       cfg,
		mix:       mix,
		scheduler: sched,
		mapper:    mapper,
		emitted:   stats.NewAccumulator(),
	}
	e.strip, e.radial, e.bands = cfg.Frames()

	if cfg.BandSource == SourceSpectrum {
		e.analyzer, err = spectrum.NewAnalyzer(cfg.SampleRate, cfg.SampleCount)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}

	configured := cfg.Generators
	e.cfg.Generators = nil
	for i, g := range configured {
		if err := e.AddGenerator(g); err != nil {
			return nil, fmt.Errorf("scene: generator %d: %w", i, err)
		}
	}
	return e, nil
}

// Config returns the configuration the engine currently runs, including
// runtime edits.
func (e *Engine) Config() Config {
	cfg := e.cfg
	cfg.Generators = slices.Clone(e.cfg.Generators)
	return cfg
}

// Tick feeds elapsed wall-clock time to the scheduler and advances one
// sample when it authorizes it. It reports whether the state changed.
func (e *Engine) Tick(deltaSeconds float64) bool {
	if !e.scheduler.Tick(deltaSeconds) {
		return false
	}
	e.advance()
	return true
}

// Observe is Tick driven by an absolute monotonic timestamp in seconds.
// The first call only records the timestamp.
func (e *Engine) Observe(nowSeconds float64) bool {
	if !e.scheduler.Observe(nowSeconds) {
		return false
	}
	e.advance()
	return true
}

// DropBacklog discards carried time beyond the next advance without
// advancing and returns the number of sample periods dropped.
func (e *Engine) DropBacklog() int {
	return e.scheduler.DropBacklog()
}

// Step advances one sample unconditionally.
func (e *Engine) Step() {
	e.advance()
}

// advance moves every oscillator in registration order, then the
// composite.
func (e *Engine) advance() {
	for i, o := range e.oscs {
		e.histories[i].Push(o.Advance())
		if e.cfg.Scroll {
			o.Regenerate()
		}
	}
	if e.cfg.Scroll {
		// Every member keeps its length, so this can not fail.
		_ = e.mix.Recombine()
	}
	e.emitted.Push(e.mix.Advance())
	e.advances++
}

// Advances returns the number of samples advanced so far.
func (e *Engine) Advances() uint64 { return e.advances }

// Current returns the composite sample under the playback cursor.
func (e *Engine) Current() signal.Sample { return e.mix.Current() }

// Composite returns the composite buffer. Callers must not modify it.
func (e *Engine) Composite() signal.Buffer { return e.mix.Composite() }

// Oscillators returns the generators in registration order.
func (e *Engine) Oscillators() []*signal.Oscillator { return slices.Clone(e.oscs) }

// Stats summarizes the composite buffer.
func (e *Engine) Stats() stats.Stats { return stats.Calculate(e.mix.Composite()) }

// EmittedStats summarizes every composite sample advanced to so far.
func (e *Engine) EmittedStats() stats.Stats { return e.emitted.Result() }

// Resolution returns the current band resolution.
func (e *Engine) Resolution() band.Resolution { return e.mapper.Resolution() }

// Mapper returns the current band partition.
func (e *Engine) Mapper() *band.Mapper { return e.mapper }

// SetResolution repartitions the spectrum at r.
func (e *Engine) SetResolution(r band.Resolution) error {
	mapper, err := band.NewMapper(r, e.cfg.MinFrequency, e.cfg.MaxFrequency)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	e.mapper = mapper
	e.cfg.Resolution = r
	return nil
}

// AddGenerator registers a generator after the existing ones and
// recombines the composite.
func (e *Engine) AddGenerator(g GeneratorConfig) error {
	if err := g.validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	color := g.Color
	if color == palette.Black {
		color = palette.White
	}

	osc, err := signal.NewOscillator(e.cfg.ProcessorConfig(), g.Frequency, g.Amplitude,
		signal.WithColor(color), signal.WithPhase(g.Phase))
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if err := e.mix.Add(osc); err != nil {
		return fmt.Errorf("scene: %w", err)
	}

	e.oscs = append(e.oscs, osc)
	e.histories = append(e.histories, signal.NewHistory(e.cfg.historyLength()))
	e.cfg.Generators = append(e.cfg.Generators, g)
	return nil
}

// RemoveGenerator unregisters the generator at index i and recombines.
func (e *Engine) RemoveGenerator(i int) error {
	if i < 0 || i >= len(e.oscs) {
		return fmt.Errorf("scene: generator index out of range: %d", i)
	}
	if err := e.mix.Remove(i); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	e.oscs = slices.Delete(e.oscs, i, i+1)
	e.histories = slices.Delete(e.histories, i, i+1)
	e.cfg.Generators = slices.Delete(e.cfg.Generators, i, i+1)
	return nil
}

// Legend lists the generators ordered by frequency. Equal frequencies keep
// registration order.
func (e *Engine) Legend() []LegendEntry {
	order := make([]int, len(e.oscs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return signal.CompareByFrequency(e.oscs[a], e.oscs[b])
	})

	out := make([]LegendEntry, len(order))
	for i, idx := range order {
		o := e.oscs[idx]
		out[i] = LegendEntry{Index: idx, Frequency: o.Frequency(), Amplitude: o.Amplitude(), Color: o.Color()}
	}
	return out
}

// Scale returns the amplitude that maps to the panel extent: the sum of
// generator amplitudes, at least 1.
func (e *Engine) Scale() float64 {
	return math.Max(e.mix.TotalAmplitude(), 1)
}

// Levels returns one level per band of the current resolution. The slice
// is reused by the next call.
func (e *Engine) Levels() ([]float64, error) {
	if e.analyzer == nil {
		tones := make([]band.Tone, len(e.oscs))
		for i, o := range e.oscs {
			tones[i] = band.Tone{Frequency: o.Frequency(), Amplitude: o.Amplitude()}
		}
		e.levels = e.mapper.Levels(e.levels, tones...)
		return e.levels, nil
	}
	if e.mix.Len() == 0 {
		e.levels = e.mapper.Levels(e.levels)
		return e.levels, nil
	}

	levels, err := e.analyzer.BandLevels(e.levels, e.mix.Composite(), e.mapper)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	e.levels = levels
	return levels, nil
}

// Primitives returns everything to render for the current state, panel by
// panel: frame border and guides first, then data.
func (e *Engine) Primitives() ([]Primitive, error) {
	levels, err := e.Levels()
	if err != nil {
		return nil, err
	}

	var out []Primitive
	out = e.appendStrip(out)
	out = e.appendRadial(out)
	out = e.appendBands(out, levels)
	return out, nil
}

func appendFrame(out []Primitive, panel Panel, f frame.Frame) []Primitive {
	for _, s := range f.Border() {
		out = append(out, line(panel, s, frameColor))
	}
	return out
}

func (e *Engine) appendStrip(out []Primitive) []Primitive {
	out = appendFrame(out, PanelStrip, e.strip)
	out = append(out, line(PanelStrip, e.strip.Midline(), guideColor))

	scale := e.Scale()
	for _, o := range e.oscs {
		c := o.Color().RGB()
		buf := o.Buffer()
		for k, y := range buf.Y {
			out = append(out, point(PanelStrip, e.strip.StripOffset(k, len(buf.Y), y, scale), PointRadius, c))
		}
	}

	comp := e.mix.Composite()
	for k, y := range comp.Y {
		out = append(out, point(PanelStrip, e.strip.StripOffset(k, len(comp.Y), y, scale), PointRadius, compositeColor))
	}
	if n := comp.Len(); n > 0 {
		cur := e.mix.Cursor()
		at := e.strip.StripOffset(cur, n, comp.Y[cur], scale)
		out = append(out, point(PanelStrip, at, HighlightRadius, highlightColor))
	}
	return out
}

func (e *Engine) appendRadial(out []Primitive) []Primitive {
	out = appendFrame(out, PanelRadial, e.radial)
	for _, s := range e.radial.Cross() {
		out = append(out, line(PanelRadial, s, guideColor))
	}

	scale := e.Scale()
	for i, o := range e.oscs {
		c := o.Color().RGB()
		for _, s := range e.histories[i].Samples() {
			out = append(out, point(PanelRadial, e.radial.RadialOffset(s.X, scale, s.Y, scale), PointRadius, c))
		}
	}
	if e.mix.Len() > 0 {
		cur := e.mix.Current()
		out = append(out, point(PanelRadial, e.radial.RadialOffset(cur.X, scale, cur.Y, scale), HighlightRadius, highlightColor))
	}
	return out
}

func (e *Engine) appendBands(out []Primitive, levels []float64) []Primitive {
	out = appendFrame(out, PanelBands, e.bands)
	for _, s := range e.bands.Dividers(octaveDividers) {
		out = append(out, line(PanelBands, s, guideColor))
	}

	scale := e.Scale()
	total := len(levels)
	width := e.bands.BandWidth(total)
	for n, level := range levels {
		if !(level > 0) {
			continue
		}
		level = math.Min(level, scale)
		at := e.bands.BandOffset(n, total, level, scale)
		half := e.bands.BarHeight(level, scale) / 2
		out = append(out, rect(PanelBands,
			frame.Point{X: at.X, Y: at.Y - half},
			frame.Point{X: at.X + width, Y: at.Y + half},
			band.Color(n)))
	}
	return out
}
