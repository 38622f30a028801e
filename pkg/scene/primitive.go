// Package scene holds the drawable primitives a surface declares.
//
// The core never paints pixels; it adds, replaces and removes primitives on
// a Target. Scene is the in-memory Target used by the surfaces and read by
// the renderer.
package scene

import (
	"fmt"
	"image/color"

	"github.com/akeil/picnotes/pkg/affine"
)

// Handle addresses a primitive on a Target.
// Handles are never reused by the same Scene.
type Handle uint64

// Point is a position in target coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// LineJoin is the style used where two path segments meet.
type LineJoin int

const (
	MiterJoin LineJoin = iota
	RoundJoin
)

// LineCap is the style at the ends of an open path.
type LineCap int

const (
	SquareCap LineCap = iota
	RoundCap
	ButtCap
)

// SegmentKind tells straight segments from cubic Bezier curves.
type SegmentKind int

const (
	Line SegmentKind = iota
	Cubic
)

// Segment is one piece of a path. Control points are only used for Cubic
// segments.
type Segment struct {
	Kind     SegmentKind
	Control1 Point
	Control2 Point
	To       Point
}

// Primitive is something that can be placed on a Target.
type Primitive interface {
	// ZIndex orders primitives; higher values are painted later.
	ZIndex() int
}

// Path is a stroked (never filled) path.
type Path struct {
	Start     Point
	Segments  []Segment
	Color     color.RGBA
	Width     float64
	Join      LineJoin
	Cap       LineCap
	Transform affine.Matrix
	Z         int
}

// NewPath starts a path at p with an identity transform.
func NewPath(p Point) Path {
	return Path{
		Start:     p,
		Transform: affine.Identity(),
	}
}

// LineTo appends a straight segment.
func (p *Path) LineTo(to Point) {
	p.Segments = append(p.Segments, Segment{Kind: Line, To: to})
}

// CubicTo appends a cubic Bezier segment.
func (p *Path) CubicTo(c1, c2, to Point) {
	p.Segments = append(p.Segments, Segment{Kind: Cubic, Control1: c1, Control2: c2, To: to})
}

// Count returns the number of segments of the given kind.
func (p Path) Count(k SegmentKind) int {
	n := 0
	for _, s := range p.Segments {
		if s.Kind == k {
			n++
		}
	}
	return n
}

// Clone returns a copy that does not share the segment list.
func (p Path) Clone() Path {
	c := p
	c.Segments = append([]Segment(nil), p.Segments...)
	return c
}

func (p Path) ZIndex() int {
	return p.Z
}

// Image is a picture placed at a position with its own transform.
// The transform applies in image-local coordinates before the position
// offset.
type Image struct {
	Source    string
	X, Y      float64
	Width     float64
	Height    float64
	Transform affine.Matrix
	Z         int
}

func (i Image) ZIndex() int {
	return i.Z
}

// Placement returns the complete transform from image-local coordinates to
// target coordinates.
func (i Image) Placement() affine.Matrix {
	return i.Transform.Mul(affine.Translation(i.X, i.Y))
}

// Contains reports whether the target point p hits the (transformed) image.
func (i Image) Contains(p Point) bool {
	inv, ok := i.Placement().Invert()
	if !ok {
		return false
	}
	x, y := inv.Apply(p.X, p.Y)
	return Rect{Width: i.Width, Height: i.Height}.Contains(Point{x, y})
}

func (i Image) String() string {
	return fmt.Sprintf("image %q at %g,%g", i.Source, i.X, i.Y)
}
