package signal

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/cwbudde/algo-tonal/dsp/core"
	"github.com/cwbudde/algo-tonal/dsp/palette"
)

func newTestOscillator(t *testing.T, freq, amp float64, count int, opts ...Option) *Oscillator {
	t.Helper()
	cfg := core.ApplyProcessorOptions(core.WithSampleRate(44100), core.WithSampleCount(count))
	o, err := NewOscillator(cfg, freq, amp, opts...)
	if err != nil {
		t.Fatalf("NewOscillator() error = %v", err)
	}
	return o
}

func TestOscillatorCursorWraps(t *testing.T) {
	const n = 16
	o := newTestOscillator(t, 432, 1, n)
	if o.Cursor() != 0 {
		t.Fatalf("initial cursor = %d, want 0", o.Cursor())
	}
	for i := 1; i <= n; i++ {
		o.Advance()
		if want := i % n; o.Cursor() != want {
			t.Fatalf("after %d advances cursor = %d, want %d", i, o.Cursor(), want)
		}
	}
	if o.Cursor() != 0 {
		t.Fatalf("cursor after %d advances = %d, want 0", n, o.Cursor())
	}
}

func TestOscillatorAdvanceReturnsNewCursorSample(t *testing.T) {
	o := newTestOscillator(t, 1000, 2, 8)
	got := o.Advance()
	if want := o.Buffer().At(1); got != want {
		t.Fatalf("Advance() = %v, want buffer[1] = %v", got, want)
	}
	if o.Current() != got {
		t.Fatalf("Current() = %v, want %v", o.Current(), got)
	}
}

func TestOscillatorCursorOfLengthOne(t *testing.T) {
	o := newTestOscillator(t, 100, 1, 1)
	for range 3 {
		o.Advance()
		if o.Cursor() != 0 {
			t.Fatalf("cursor = %d, want 0", o.Cursor())
		}
	}
}

func TestOscillatorPhaseAccumulates(t *testing.T) {
	o := newTestOscillator(t, 441, 1, 4)
	step := 2 * math.Pi * 441 / 44100
	if math.Abs(o.Step()-step) > 1e-15 {
		t.Fatalf("Step() = %v, want %v", o.Step(), step)
	}
	for range 5 {
		o.Advance()
	}
	if math.Abs(o.Phase()-5*step) > 1e-12 {
		t.Fatalf("Phase() = %v, want %v", o.Phase(), 5*step)
	}
}

func TestOscillatorRegenerateContinuesPhase(t *testing.T) {
	const n = 32
	o := newTestOscillator(t, 2000, 1, n)
	reference := o.Buffer().Clone()

	o.Advance()
	o.Advance()
	o.Regenerate()

	if o.Len() != n {
		t.Fatalf("len after Regenerate = %d, want %d", o.Len(), n)
	}
	for k := 0; k < n-2; k++ {
		got := o.Buffer().At(k)
		want := reference.At(k + 2)
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Fatalf("regenerated[%d] = %v, want original[%d] = %v", k, got, k+2, want)
		}
	}
}

func TestOscillatorOptions(t *testing.T) {
	o := newTestOscillator(t, 100, 1, 4, WithColor(palette.Octave3), WithPhase(math.Pi))
	if o.Color() != palette.Octave3 {
		t.Fatalf("Color() = %v, want o3", o.Color())
	}
	s := o.Buffer().At(0)
	if math.Abs(s.X+1) > 1e-12 || math.Abs(s.Y) > 1e-12 {
		t.Fatalf("sample[0] = %v, want {-1 0}", s)
	}
}

func TestNewOscillatorValidation(t *testing.T) {
	bad := core.ApplyProcessorOptions(core.WithSampleRate(0))
	if _, err := NewOscillator(bad, 440, 1); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("NewOscillator(sr=0) error = %v, want ErrConfiguration", err)
	}
	good := core.DefaultProcessorConfig()
	if _, err := NewOscillator(good, 0, 1); !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("NewOscillator(f=0) error = %v, want ErrConfiguration", err)
	}
	for _, phase := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		o, err := NewOscillator(good, 440, 1, WithPhase(phase))
		if !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("NewOscillator(phase=%v) error = %v, want ErrConfiguration", phase, err)
		}
		if o != nil {
			t.Fatalf("NewOscillator(phase=%v) returned an oscillator with an error", phase)
		}
	}
}

func TestOscillatorPhaseWrapped(t *testing.T) {
	o := newTestOscillator(t, 100, 1, 4, WithPhase(-math.Pi/2))
	if got, want := o.Phase(), 3*math.Pi/2; math.Abs(got-want) > 1e-12 {
		t.Fatalf("Phase() = %v, want %v", got, want)
	}
}

func TestCompareByFrequency(t *testing.T) {
	a := newTestOscillator(t, 880, 1, 4)
	b := newTestOscillator(t, 220, 1, 4)
	c := newTestOscillator(t, 440, 1, 4)

	oscs := []*Oscillator{a, b, c}
	slices.SortStableFunc(oscs, CompareByFrequency)

	got := []float64{oscs[0].Frequency(), oscs[1].Frequency(), oscs[2].Frequency()}
	want := []float64{220, 440, 880}
	if !slices.Equal(got, want) {
		t.Fatalf("sorted = %v, want %v", got, want)
	}
}
