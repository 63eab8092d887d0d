// Package frame maps signal values onto the pixel space of a rectangular
// panel.
//
// A [Frame] is pure geometry: an origin, a size and an inset spacing. It
// never draws; the offset functions return positions and the guide queries
// return line segments for an external renderer.
package frame

import (
	"fmt"

	"github.com/cwbudde/algo-tonal/dsp/core"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Segment is a straight line from From to To.
type Segment struct {
	From, To Point
}

// Frame is a panel of the viewport.
type Frame struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Spacing float64 `json:"spacing"`
}

// Validate reports an error wrapping core.ErrConfiguration unless width and
// height are positive and spacing is non-negative.
func (f Frame) Validate() error {
	if !(f.Width > 0) || !(f.Height > 0) || core.IsNonFinite(f.Width) || core.IsNonFinite(f.Height) {
		return fmt.Errorf("frame: size must be > 0: %vx%v: %w", f.Width, f.Height, core.ErrConfiguration)
	}
	if !(f.Spacing >= 0) || core.IsNonFinite(f.Spacing) {
		return fmt.Errorf("frame: spacing must be >= 0: %v: %w", f.Spacing, core.ErrConfiguration)
	}
	if core.IsNonFinite(f.X) || core.IsNonFinite(f.Y) {
		return fmt.Errorf("frame: origin must be finite: (%v, %v): %w", f.X, f.Y, core.ErrConfiguration)
	}
	return nil
}

// Center returns the panel center.
func (f Frame) Center() Point {
	return Point{X: f.X + f.Width/2, Y: f.Y + f.Height/2}
}

// StripOffset places sample index out of total along the width and value
// on a vertical axis centered on the panel midline:
//
//	x = index·(width/total) + originX
//	y = value·((height/2)/(scale·2)) + originY + height/2
//
// Index 0 maps to the left edge and index total to the right edge.
func (f Frame) StripOffset(index, total int, value, scale float64) Point {
	return Point{
		X: float64(index)*(f.Width/float64(total)) + f.X,
		Y: value*((f.Height/2)/(scale*2)) + f.Y + f.Height/2,
	}
}

// RadialOffset places a phase-amplitude vector around the panel center:
//
//	x = xValue·((width/2)/(xScale·2)) + originX + width/2
//	y = yValue·((height/2)/(yScale·2)) + originY + height/2
func (f Frame) RadialOffset(xValue, xScale, yValue, yScale float64) Point {
	return Point{
		X: xValue*((f.Width/2)/(xScale*2)) + f.X + f.Width/2,
		Y: yValue*((f.Height/2)/(yScale*2)) + f.Y + f.Height/2,
	}
}

// BandOffset returns the left edge of band index out of total and the
// vertical center of a bar of height amplitude·height/amplitudeRange
// anchored to the bottom edge:
//
//	top = originY + height - barHeight + barHeight/2
func (f Frame) BandOffset(index, total int, amplitude, amplitudeRange float64) Point {
	barHeight := f.BarHeight(amplitude, amplitudeRange)
	return Point{
		X: f.X + float64(index)*(f.Width/float64(total)),
		Y: f.Y + f.Height - barHeight + barHeight/2,
	}
}

// BarHeight returns the bar height for amplitude out of amplitudeRange.
func (f Frame) BarHeight(amplitude, amplitudeRange float64) float64 {
	return amplitude * (f.Height / amplitudeRange)
}

// BandWidth returns the width of one band out of total.
func (f Frame) BandWidth(total int) float64 {
	return f.Width / float64(total)
}

// inset returns the edges of the panel shrunk by the spacing.
func (f Frame) inset() (left, top, right, bottom float64) {
	return f.X + f.Spacing, f.Y + f.Spacing, f.X + f.Width - f.Spacing, f.Y + f.Height - f.Spacing
}

// Border returns the four inset edges clockwise from the top.
func (f Frame) Border() [4]Segment {
	left, top, right, bottom := f.inset()
	return [4]Segment{
		{From: Point{left, top}, To: Point{right, top}},
		{From: Point{right, top}, To: Point{right, bottom}},
		{From: Point{right, bottom}, To: Point{left, bottom}},
		{From: Point{left, bottom}, To: Point{left, top}},
	}
}

// Cross returns the inset horizontal and vertical center lines.
func (f Frame) Cross() [2]Segment {
	left, top, right, bottom := f.inset()
	c := f.Center()
	return [2]Segment{
		{From: Point{left, c.Y}, To: Point{right, c.Y}},
		{From: Point{c.X, top}, To: Point{c.X, bottom}},
	}
}

// Midline returns the full-width horizontal center line.
func (f Frame) Midline() Segment {
	y := f.Y + f.Height/2
	return Segment{From: Point{f.X, y}, To: Point{f.X + f.Width, y}}
}

// Dividers splits the panel into n equal columns and returns the n-1
// interior full-height lines. n < 2 yields none.
func (f Frame) Dividers(n int) []Segment {
	if n < 2 {
		return nil
	}
	step := f.Width / float64(n)
	out := make([]Segment, 0, n-1)
	for i := 1; i < n; i++ {
		x := f.X + float64(i)*step
		out = append(out, Segment{From: Point{x, f.Y}, To: Point{x, f.Y + f.Height}})
	}
	return out
}

// Layout partitions a viewport into the three panels: the top half for the
// time strip, and the bottom half split into the radial plot on the left
// and the band histogram on the right.
func Layout(width, height, spacing float64) (strip, radial, bands Frame) {
	halfH := height / 2
	halfW := width / 2
	strip = Frame{X: 0, Y: 0, Width: width, Height: halfH, Spacing: spacing}
	radial = Frame{X: 0, Y: halfH, Width: halfW, Height: halfH, Spacing: spacing}
	bands = Frame{X: halfW, Y: halfH, Width: halfW, Height: halfH, Spacing: spacing}
	return strip, radial, bands
}
