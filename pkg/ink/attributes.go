// Package ink turns pointer strokes into live preview and permanent ink.
//
// While the pen is down, a Renderer shows the raw samples as a polyline.
// In parallel a Fitter collects the same samples; when the stroke ends the
// fitted rendering segments become a permanent path of cubic Bezier curves
// and the preview is discarded.
package ink

import (
	"fmt"
	"image/color"

	"github.com/akeil/picnotes/pkg/scene"
)

// PenTip is the shape of the pen.
type PenTip int

const (
	Circle PenTip = iota
	Rectangle
)

func (p PenTip) String() string {
	switch p {
	case Circle:
		return "circle"
	case Rectangle:
		return "rectangle"
	}
	return fmt.Sprintf("PenTip(%d)", int(p))
}

// ParsePenTip maps "circle" and "rectangle" to a PenTip.
func ParsePenTip(s string) (PenTip, error) {
	switch s {
	case "circle":
		return Circle, nil
	case "rectangle":
		return Rectangle, nil
	}
	return Circle, fmt.Errorf("invalid pen tip %q", s)
}

// Some colors used as defaults.
var (
	Black     = color.RGBA{0, 0, 0, 255}
	Turquoise = color.RGBA{64, 224, 208, 255}
)

// Attributes describe how a stroke is drawn.
type Attributes struct {
	Color color.RGBA
	// Size is the stroke width.
	Size   float64
	PenTip PenTip
	// FitToCurve selects smooth Bezier segments instead of straight ones.
	FitToCurve bool
}

// DefaultAttributes returns a thin black circular pen that fits curves.
func DefaultAttributes() Attributes {
	return Attributes{
		Color:      Black,
		Size:       1.0,
		PenTip:     Circle,
		FitToCurve: true,
	}
}

// LineJoin returns the join style that best represents the pen tip.
func (a Attributes) LineJoin() scene.LineJoin {
	if a.PenTip == Circle {
		return scene.RoundJoin
	}
	return scene.MiterJoin
}

// LineCap returns the cap style that best represents the pen tip.
func (a Attributes) LineCap() scene.LineCap {
	if a.PenTip == Circle {
		return scene.RoundCap
	}
	return scene.SquareCap
}
