// Package raster renders scene primitives into an in-memory image without
// a window, using the anti-aliasing rasterizer of golang.org/x/image/vector.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/cwbudde/algo-tonal/dsp/core"
	"github.com/cwbudde/algo-tonal/dsp/palette"
	"github.com/cwbudde/algo-tonal/viz/frame"
	"github.com/cwbudde/algo-tonal/viz/scene"
)

// circleSegments is the polygon resolution used for points.
const circleSegments = 16

// Canvas is a fixed-size target for primitives.
type Canvas struct {
	img *image.NRGBA
	r   *vector.Rasterizer
}

// NewCanvas returns a canvas filled with background.
func NewCanvas(width, height int, background palette.RGB) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: size must be > 0: %dx%d: %w", width, height, core.ErrConfiguration)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background.NRGBA()), image.Point{}, draw.Src)
	return &Canvas{img: img, r: &vector.Rasterizer{}}, nil
}

// Image returns the rendered image.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// Draw renders prims in order.
func (c *Canvas) Draw(prims []scene.Primitive) {
	for _, p := range prims {
		switch p.Kind {
		case scene.KindLine:
			c.line(p.From, p.To, 1, p.Color)
		case scene.KindPoint:
			c.circle(p.From, p.Radius, p.Color)
		case scene.KindRectangle:
			c.rect(p.From, p.To, p.Color)
		}
	}
}

// Text writes s with its baseline starting at (x, y). Lines are split on
// newlines.
func (c *Canvas) Text(s string, x, y int, col palette.RGB) {
	face := basicfont.Face7x13
	d := font.Drawer{Dst: c.img, Src: image.NewUniform(col.NRGBA()), Face: face}
	lineHeight := face.Metrics().Height
	start := fixed.P(x, y)
	line := 0
	for _, chunk := range strings.Split(s, "\n") {
		d.Dot = start.Add(fixed.Point26_6{Y: lineHeight * fixed.Int26_6(line)})
		d.DrawString(chunk)
		line++
	}
}

// fill rasterizes the closed polygon pts into its pixel bounding box,
// clipped to the image, so the cost of a shape scales with its own area.
func (c *Canvas) fill(pts []frame.Point, col palette.RGB) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if core.IsNonFinite(minX) || core.IsNonFinite(maxX) || core.IsNonFinite(minY) || core.IsNonFinite(maxY) {
		return
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	c.r.Reset(box.Dx(), box.Dy())
	c.r.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		c.r.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	c.r.ClosePath()
	c.r.Draw(c.img, box, image.NewUniform(col.NRGBA()), image.Point{})
}

// line strokes a segment as a quad of the given width.
func (c *Canvas) line(from, to frame.Point, width float64, col palette.RGB) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.circle(from, width/2, col)
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	c.fill([]frame.Point{
		{X: from.X + nx, Y: from.Y + ny},
		{X: to.X + nx, Y: to.Y + ny},
		{X: to.X - nx, Y: to.Y - ny},
		{X: from.X - nx, Y: from.Y - ny},
	}, col)
}

func (c *Canvas) circle(center frame.Point, radius float64, col palette.RGB) {
	if !(radius > 0) {
		return
	}
	var pts [circleSegments]frame.Point
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / circleSegments
		sin, cos := math.Sincos(theta)
		pts[i] = frame.Point{X: center.X + radius*cos, Y: center.Y + radius*sin}
	}
	c.fill(pts[:], col)
}

func (c *Canvas) rect(topLeft, bottomRight frame.Point, col palette.RGB) {
	c.fill([]frame.Point{
		topLeft,
		{X: bottomRight.X, Y: topLeft.Y},
		bottomRight,
		{X: topLeft.X, Y: bottomRight.Y},
	}, col)
}

// Render draws prims on a background-filled canvas of the given size.
func Render(prims []scene.Primitive, width, height int) (*image.NRGBA, error) {
	c, err := NewCanvas(width, height, palette.Black.RGB())
	if err != nil {
		return nil, err
	}
	c.Draw(prims)
	return c.Image(), nil
}

// EncodePNG writes img to w.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
