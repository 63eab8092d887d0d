package scene

import (
	"fmt"

	"github.com/cwbudde/algo-tonal/dsp/palette"
	"github.com/cwbudde/algo-tonal/viz/frame"
)

// Kind is the shape of a primitive.
type Kind int

// Primitive kinds.
const (
	KindPoint Kind = iota
	KindRectangle
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindRectangle:
		return "rectangle"
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Panel identifies one of the three views.
type Panel int

// Panels, top to bottom and left to right.
const (
	PanelStrip Panel = iota
	PanelRadial
	PanelBands
)

func (p Panel) String() string {
	switch p {
	case PanelStrip:
		return "strip"
	case PanelRadial:
		return "radial"
	case PanelBands:
		return "bands"
	default:
		return fmt.Sprintf("Panel(%d)", int(p))
	}
}

// Primitive is one drawable element.
//
//   - KindPoint: a filled circle of Radius centered on From.
//   - KindLine: a segment from From to To.
//   - KindRectangle: a filled box with corners From (top-left) and To
//     (bottom-right).
type Primitive struct {
	Kind   Kind
	Panel  Panel
	From   frame.Point
	To     frame.Point
	Radius float64
	Color  palette.RGB
}

// Colors of the fixed scene elements.
var (
	frameColor     = palette.White.RGB()
	guideColor     = palette.Blue.RGB()
	compositeColor = palette.Gray.RGB()
	highlightColor = palette.White.RGB()
)

// Point radii.
const (
	PointRadius     = 1.0
	HighlightRadius = 4.0
)

func point(panel Panel, at frame.Point, radius float64, c palette.RGB) Primitive {
	return Primitive{Kind: KindPoint, Panel: panel, From: at, To: at, Radius: radius, Color: c}
}

func line(panel Panel, s frame.Segment, c palette.RGB) Primitive {
	return Primitive{Kind: KindLine, Panel: panel, From: s.From, To: s.To, Color: c}
}

func rect(panel Panel, topLeft, bottomRight frame.Point, c palette.RGB) Primitive {
	return Primitive{Kind: KindRectangle, Panel: panel, From: topLeft, To: bottomRight, Color: c}
}
