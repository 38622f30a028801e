package ink

import (
	"github.com/akeil/picnotes/internal/logging"
)

// Manager is the default Fitter.
//
// It fits a Catmull-Rom spline through the samples, expressed as cubic
// Bezier segments. Consecutive duplicate samples are dropped; a stroke with
// less than two distinct points has no segments.
type Manager struct {
	FitToCurve bool
	current    []Point
	down       bool
	strokes    []Stroke
}

// NewManager creates a Manager that fits curves.
func NewManager() *Manager {
	return &Manager{FitToCurve: true}
}

// Down starts a new stroke. A stroke in progress is discarded.
func (m *Manager) Down(p Point) {
	if m.down {
		logging.Debug("ink: discard unfinished stroke with %d points", len(m.current))
	}
	m.current = []Point{p}
	m.down = true
}

// Move adds a point to the stroke in progress.
func (m *Manager) Move(p Point) {
	if !m.down {
		return
	}
	m.append(p)
}

// Up finishes the stroke in progress.
func (m *Manager) Up(p Point) Stroke {
	if !m.down {
		return Stroke{}
	}
	m.append(p)
	m.down = false

	s := Stroke{
		Points:   m.current,
		Segments: fit(m.current, m.FitToCurve),
	}
	m.current = nil
	if len(s.Segments) > 0 {
		m.strokes = append(m.strokes, s)
	}
	logging.Debug("ink: finished stroke, %d points, %d segments", len(s.Points), len(s.Segments))
	return s
}

// Strokes implements Fitter.
func (m *Manager) Strokes() []Stroke {
	return m.strokes
}

// Clear implements Fitter.
func (m *Manager) Clear() {
	m.strokes = nil
	m.current = nil
	m.down = false
}

func (m *Manager) append(p Point) {
	if n := len(m.current); n > 0 && m.current[n-1] == p {
		return
	}
	m.current = append(m.current, p)
}

// fit returns the rendering segments for the given points.
//
// The first segment holds the start point. Point i (i > 0) ends segment i,
// whose control points follow the Catmull-Rom tangents
//
//  c1 = p[i-1] + (p[i] - p[i-2]) / 6
//  c2 = p[i]   - (p[i+1] - p[i-1]) / 6
//
// with indices clamped to the ends of the stroke. Without curve fitting
// the control points sit on the chord and the segments are straight.
func fit(pts []Point, smooth bool) []Segment {
	n := len(pts)
	if n < 2 {
		return nil
	}

	at := func(i int) Point {
		if i < 0 {
			i = 0
		} else if i >= n {
			i = n - 1
		}
		return pts[i]
	}

	segs := make([]Segment, 0, n)
	segs = append(segs, Segment{Position: pts[0]})
	for i := 1; i < n; i++ {
		p0 := at(i - 1)
		p1 := at(i)
		var c1, c2 Point
		if smooth {
			c1 = p0.add(p1.sub(at(i - 2)).scale(1.0 / 6))
			c2 = p1.sub(at(i + 1).sub(p0).scale(1.0 / 6))
		} else {
			c1 = p0.add(p1.sub(p0).scale(1.0 / 3))
			c2 = p0.add(p1.sub(p0).scale(2.0 / 3))
		}
		segs = append(segs, Segment{Control1: c1, Control2: c2, Position: p1})
	}
	return segs
}
