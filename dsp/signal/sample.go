package signal

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Sample is one instant of a signal in phase-amplitude space.
type Sample struct {
	X float64 // amplitude·cos θ
	Y float64 // amplitude·sin θ
}

// AddSamples returns the component-wise sum of a and b.
func AddSamples(a, b Sample) Sample {
	return Sample{X: a.X + b.X, Y: a.Y + b.Y}
}

// Radius returns the vector length of s, which equals the amplitude for a
// single generator.
func (s Sample) Radius() float64 {
	return math.Hypot(s.X, s.Y)
}

// Buffer is a fixed-length sequence of samples stored as two parallel
// component slices so block operations can run on each axis.
//
// X and Y always have the same length. Buffers handed out by this module
// must be treated as read-only.
type Buffer struct {
	X []float64
	Y []float64
}

// NewBuffer returns a zero-filled buffer of length n.
func NewBuffer(n int) Buffer {
	if n < 0 {
		n = 0
	}
	return Buffer{X: make([]float64, n), Y: make([]float64, n)}
}

// Len returns the number of samples.
func (b Buffer) Len() int {
	return len(b.X)
}

// At returns sample k.
func (b Buffer) At(k int) Sample {
	return Sample{X: b.X[k], Y: b.Y[k]}
}

// Samples returns a copy of the buffer as a slice of samples.
func (b Buffer) Samples() []Sample {
	out := make([]Sample, b.Len())
	for k := range out {
		out[k] = b.At(k)
	}
	return out
}

// Clone returns a deep copy of b.
func (b Buffer) Clone() Buffer {
	out := NewBuffer(b.Len())
	copy(out.X, b.X)
	copy(out.Y, b.Y)
	return out
}

// Radii writes the vector length of every sample into dst, growing it when
// needed, and returns it.
func (b Buffer) Radii(dst []float64) []float64 {
	n := b.Len()
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	if n == 0 {
		return dst
	}
	vecmath.Magnitude(dst, b.X, b.Y)
	return dst
}
