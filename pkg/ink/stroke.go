package ink

import (
	"github.com/akeil/picnotes/pkg/scene"
)

// Point is a single pointer sample.
type Point struct {
	X, Y float64
}

func (p Point) toScene() scene.Point {
	return scene.Point{X: p.X, Y: p.Y}
}

func (p Point) add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Segment is one fitted piece of a stroke: a cubic Bezier curve ending at
// Position. For the first segment of a stroke only Position is meaningful;
// it is the start point of the path.
type Segment struct {
	Control1 Point
	Control2 Point
	Position Point
}

// Stroke is a finished stroke.
// A Stroke does not change after the Fitter has returned it.
type Stroke struct {
	Points   []Point
	Segments []Segment
}

// RenderingSegments returns the fitted segments.
func (s Stroke) RenderingSegments() []Segment {
	return s.Segments
}

// Fitter converts a stream of raw points into smooth strokes.
//
// Points must be delivered in chronological order.
type Fitter interface {
	Down(p Point)
	Move(p Point)
	// Up ends the current stroke and returns it.
	Up(p Point) Stroke
	// Strokes returns all finished strokes.
	Strokes() []Stroke
	// Clear drops all finished strokes and any stroke in progress.
	Clear()
}
