// Package superpose sums generator buffers into a composite buffer.
//
// A [Superposition] keeps its member oscillators in registration order,
// holds a snapshot of their elementwise sum and a playback cursor that moves
// independently of the members' cursors. The snapshot is recomputed when
// membership changes or when [Superposition.Recombine] is called; it never
// observes member buffers on its own.
package superpose

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-tonal/dsp/core"
	"github.com/cwbudde/algo-tonal/dsp/signal"
	"github.com/cwbudde/algo-vecmath"
)

// ErrDimensionMismatch is returned when buffers of different length are
// combined.
var ErrDimensionMismatch = errors.New("superpose: buffer lengths differ")

// Combine returns the elementwise sum of bufs. All buffers must have the
// same length. Combining no buffers yields an empty buffer.
func Combine(bufs ...signal.Buffer) (signal.Buffer, error) {
	if len(bufs) == 0 {
		return signal.Buffer{}, nil
	}
	out := signal.NewBuffer(bufs[0].Len())
	if err := combineInto(out, bufs); err != nil {
		return signal.Buffer{}, err
	}
	return out, nil
}

// combineInto writes the sum of bufs into dst, which must already have the
// common length.
func combineInto(dst signal.Buffer, bufs []signal.Buffer) error {
	n := dst.Len()
	for i, b := range bufs {
		if b.Len() != n || len(b.Y) != n {
			return fmt.Errorf("%w: buffer %d has %d samples, want %d", ErrDimensionMismatch, i, b.Len(), n)
		}
	}
	if n == 0 {
		return nil
	}

	if len(bufs) == 0 {
		clear(dst.X)
		clear(dst.Y)
		return nil
	}
	copy(dst.X, bufs[0].X)
	copy(dst.Y, bufs[0].Y)
	for _, b := range bufs[1:] {
		vecmath.AddBlockInPlace(dst.X, b.X)
		vecmath.AddBlockInPlace(dst.Y, b.Y)
	}
	return nil
}

// Superposition owns an ordered set of oscillators and their composite.
type Superposition struct {
	members   []*signal.Oscillator
	composite signal.Buffer
	cursor    int
}

// New creates a superposition of oscs in the given order. Every oscillator
// must have the same buffer length.
func New(oscs ...*signal.Oscillator) (*Superposition, error) {
	s := &Superposition{members: slices.Clone(oscs)}
	if err := s.Recombine(); err != nil {
		return nil, err
	}
	return s, nil
}

// Add registers osc after the existing members and recombines. On error the
// membership is left unchanged.
func (s *Superposition) Add(osc *signal.Oscillator) error {
	if osc == nil {
		return fmt.Errorf("superpose: nil oscillator: %w", core.ErrConfiguration)
	}
	s.members = append(s.members, osc)
	if err := s.Recombine(); err != nil {
		s.members = s.members[:len(s.members)-1]
		return err
	}
	return nil
}

// Remove unregisters the member at index i and recombines. The cursor is
// reset when the composite length changes.
func (s *Superposition) Remove(i int) error {
	if i < 0 || i >= len(s.members) {
		return fmt.Errorf("superpose: member index out of range: %d", i)
	}
	s.members = slices.Delete(s.members, i, i+1)
	return s.Recombine()
}

// Recombine recomputes the composite from the members' current buffers.
// The composite keeps its storage when the length is unchanged.
func (s *Superposition) Recombine() error {
	bufs := make([]signal.Buffer, len(s.members))
	for i, m := range s.members {
		if m == nil {
			return fmt.Errorf("superpose: nil oscillator at %d: %w", i, core.ErrConfiguration)
		}
		bufs[i] = m.Buffer()
	}

	n := 0
	if len(bufs) > 0 {
		n = bufs[0].Len()
	}
	target := s.composite
	if target.Len() != n {
		target = signal.NewBuffer(n)
	}
	if err := combineInto(target, bufs); err != nil {
		return err
	}
	if target.Len() != s.composite.Len() {
		s.cursor = 0
	}
	s.composite = target
	return nil
}

// Members returns the oscillators in registration order.
func (s *Superposition) Members() []*signal.Oscillator {
	return slices.Clone(s.members)
}

// Composite returns the combined buffer. Callers must not modify it.
func (s *Superposition) Composite() signal.Buffer { return s.composite }

// Len returns the composite length.
func (s *Superposition) Len() int { return s.composite.Len() }

// Cursor returns the composite playback cursor.
func (s *Superposition) Cursor() int { return s.cursor }

// Current returns the composite sample under the cursor. An empty
// superposition yields the zero sample.
func (s *Superposition) Current() signal.Sample {
	if s.composite.Len() == 0 {
		return signal.Sample{}
	}
	return s.composite.At(s.cursor)
}

// Advance moves the composite cursor forward by one, wrapping modulo the
// composite length, and returns the sample at the new position.
func (s *Superposition) Advance() signal.Sample {
	s.cursor = core.WrapIndex(s.cursor, s.composite.Len())
	return s.Current()
}

// TotalAmplitude returns the sum of member amplitudes, the largest radius
// the composite can reach.
func (s *Superposition) TotalAmplitude() float64 {
	total := 0.0
	for _, m := range s.members {
		total += m.Amplitude()
	}
	return total
}
