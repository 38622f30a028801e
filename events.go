package picnotes

import (
	"fmt"
	"strings"

	"github.com/akeil/picnotes/pkg/gesture"
	"github.com/akeil/picnotes/pkg/ink"
	"github.com/akeil/picnotes/pkg/scene"
)

// PointerKind is the type of a pointer event.
type PointerKind int

const (
	Down PointerKind = iota
	Move
	Up
)

var pointerKinds = map[string]PointerKind{
	"down": Down,
	"move": Move,
	"up":   Up,
}

func (k PointerKind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	}
	return fmt.Sprintf("PointerKind(%d)", int(k))
}

// ParsePointerKind maps "down", "move" and "up" to a PointerKind.
func ParsePointerKind(s string) (PointerKind, error) {
	k, ok := pointerKinds[strings.ToLower(s)]
	if !ok {
		return Down, fmt.Errorf("invalid pointer event kind %q", s)
	}
	return k, nil
}

// Device is the kind of input device that produced an event.
type Device int

const (
	Mouse Device = iota
	Pen
	Touch
)

var devices = map[string]Device{
	"mouse": Mouse,
	"pen":   Pen,
	"touch": Touch,
}

func (d Device) String() string {
	switch d {
	case Mouse:
		return "mouse"
	case Pen:
		return "pen"
	case Touch:
		return "touch"
	}
	return fmt.Sprintf("Device(%d)", int(d))
}

// ParseDevice maps "mouse", "pen" and "touch" to a Device.
func ParseDevice(s string) (Device, error) {
	d, ok := devices[strings.ToLower(s)]
	if !ok {
		return Mouse, fmt.Errorf("invalid device %q", s)
	}
	return d, nil
}

// PointerEvent is a single pointer event in surface coordinates.
type PointerEvent struct {
	Kind   PointerKind
	ID     uint32
	Device Device
	// Position is the current pointer position.
	Position scene.Point
	// Intermediate holds the samples batched by the input layer since the
	// previous event, newest first. When set, its first element is the
	// current position.
	Intermediate []scene.Point
	// InContact is false for a hovering pen or a mouse without pressed
	// button.
	InContact bool
}

// Samples returns the positions of this event in chronological order.
func (e PointerEvent) Samples() []scene.Point {
	if len(e.Intermediate) == 0 {
		return []scene.Point{e.Position}
	}
	n := len(e.Intermediate)
	pts := make([]scene.Point, n)
	for i, p := range e.Intermediate {
		pts[n-1-i] = p
	}
	return pts
}

func (e PointerEvent) String() string {
	return fmt.Sprintf("%v %v#%d at %g,%g", e.Kind, e.Device, e.ID, e.Position.X, e.Position.Y)
}

func inkPoint(p scene.Point) ink.Point {
	return ink.Point{X: p.X, Y: p.Y}
}

func sample(id uint32, p scene.Point) gesture.Sample {
	return gesture.Sample{ID: id, X: p.X, Y: p.Y}
}
