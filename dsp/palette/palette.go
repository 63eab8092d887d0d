// Package palette defines the named colors used by the visualizer and a
// linear blend between RGB triples.
//
// Colors form a closed set of [Name] values mapped to RGB triples through a
// lookup table. The eleven octave colors are addressed by index with
// [Octave]; indices outside the table fall back to [Black].
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/cwbudde/algo-tonal/dsp/core"
)

// ErrUnknownName is returned when a color name cannot be parsed.
var ErrUnknownName = errors.New("palette: unknown color name")

// RGB is a color triple with channels in [0, 255]. Channels are kept as
// float64 so blends stay exact until they are quantized for rendering.
type RGB struct {
	R, G, B float64
}

// Name identifies an entry in the palette.
type Name int

// Palette entries.
const (
	Black Name = iota
	Gray
	White
	Blue
	Octave1
	Octave2
	Octave3
	Octave4
	Octave5
	Octave6
	Octave7
	Octave8
	Octave9
	Octave10
	Octave11
)

// OctaveCount is the number of colors addressable through Octave.
const OctaveCount = int(Octave11-Octave1) + 1

var table = [...]RGB{
	Black:    {33, 33, 33},
	Gray:     {128, 128, 128},
	White:    {222, 222, 222},
	Blue:     {33, 128, 222},
	Octave1:  {102, 6, 120},
	Octave2:  {61, 20, 99},
	Octave3:  {38, 20, 99},
	Octave4:  {12, 33, 105},
	Octave5:  {49, 110, 133},
	Octave6:  {31, 105, 90},
	Octave7:  {36, 120, 65},
	Octave8:  {99, 156, 59},
	Octave9:  {110, 138, 10},
	Octave10: {163, 154, 47},
	Octave11: {150, 71, 2},
}

var names = [...]string{
	Black:    "black",
	Gray:     "gray",
	White:    "white",
	Blue:     "blue",
	Octave1:  "o1",
	Octave2:  "o2",
	Octave3:  "o3",
	Octave4:  "o4",
	Octave5:  "o5",
	Octave6:  "o6",
	Octave7:  "o7",
	Octave8:  "o8",
	Octave9:  "o9",
	Octave10: "o10",
	Octave11: "o11",
}

// Valid reports whether n is a palette entry.
func (n Name) Valid() bool {
	return n >= Black && int(n) < len(table)
}

// RGB returns the triple for n. Invalid names map to Black.
func (n Name) RGB() RGB {
	if !n.Valid() {
		return table[Black]
	}
	return table[n]
}

// String returns the lowercase name used in configuration files.
func (n Name) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return names[n]
}

// ParseName resolves a configuration color name.
func ParseName(s string) (Name, error) {
	for i, name := range names {
		if name == s {
			return Name(i), nil
		}
	}
	return Black, fmt.Errorf("%w: %q", ErrUnknownName, s)
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownName, int(n))
	}
	return []byte(names[n]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Octave returns the palette entry for octave index idx. Indices outside
// [0, OctaveCount) return Black.
func Octave(idx int) Name {
	if idx < 0 || idx >= OctaveCount {
		return Black
	}
	return Octave1 + Name(idx)
}

// Blend interpolates each channel linearly from a (t=0) to b (t=1).
// t is not clamped.
func Blend(a, b RGB, t float64) RGB {
	return RGB{
		R: core.Lerp(a.R, b.R, t),
		G: core.Lerp(a.G, b.G, t),
		B: core.Lerp(a.B, b.B, t),
	}
}

// NRGBA quantizes c to an opaque 8-bit color.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}

func channel(v float64) uint8 {
	return uint8(math.Round(core.Clamp(v, 0, 255)))
}
