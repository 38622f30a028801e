package picnotes

import (
	"github.com/akeil/picnotes/internal/logging"
	"github.com/akeil/picnotes/pkg/affine"
	"github.com/akeil/picnotes/pkg/gesture"
	"github.com/akeil/picnotes/pkg/scene"
)

// Z-index of canvas images.
const (
	imageZ       = 1
	activeImageZ = 2
)

// CanvasImage is a picture on the canvas that can be moved, scaled and
// rotated with touch gestures.
//
// The image owns its transform. A gesture never changes the transform
// incrementally; every event recomputes it from the transform at the start
// of the gesture and the cumulative values of the gesture.
type CanvasImage struct {
	source    string
	x, y      float64
	size      float64
	transform affine.Matrix
	previous  affine.Matrix
	session   gesture.Session
	rec       *gesture.Recognizer
	// frame maps target points into image-local points; it is fixed on
	// first contact.
	frame  affine.Matrix
	target scene.Target
	handle scene.Handle
}

// NewCanvasImage places an image with the given source at pos.
func NewCanvasImage(t scene.Target, source string, pos scene.Point, size float64) *CanvasImage {
	c := &CanvasImage{
		source:    source,
		x:         pos.X,
		y:         pos.Y,
		size:      size,
		transform: affine.Identity(),
		previous:  affine.Identity(),
		frame:     affine.Identity(),
		target:    t,
	}
	c.rec = gesture.NewRecognizer(gesture.All, c)
	c.handle = t.Add(c.primitive())
	return c
}

// Source returns the image source reference.
func (c *CanvasImage) Source() string {
	return c.source
}

// Position returns the top left corner of the untransformed image.
func (c *CanvasImage) Position() scene.Point {
	return scene.Point{X: c.x, Y: c.y}
}

// Transform returns the current transform.
func (c *CanvasImage) Transform() affine.Matrix {
	return c.transform
}

// SceneHandle returns the handle of the image primitive.
func (c *CanvasImage) SceneHandle() scene.Handle {
	return c.handle
}

// Active reports whether a manipulation is in progress.
func (c *CanvasImage) Active() bool {
	return c.session.Active()
}

// Contains reports whether the target point p hits the image.
func (c *CanvasImage) Contains(p scene.Point) bool {
	return c.primitive().Contains(p)
}

// Down adds a touch contact at target point p.
func (c *CanvasImage) Down(id uint32, p scene.Point) {
	if !c.rec.Active() {
		inv, ok := c.primitive().Placement().Invert()
		if !ok {
			logging.Warning("image %q has a singular transform", c.source)
			return
		}
		c.frame = inv
	}
	c.rec.Down(sample(id, c.local(p)))
}

// Move updates a touch contact with the given points, oldest first.
func (c *CanvasImage) Move(id uint32, pts ...scene.Point) {
	samples := make([]gesture.Sample, len(pts))
	for i, p := range pts {
		samples[i] = sample(id, c.local(p))
	}
	c.rec.Move(samples...)
}

// Up ends a touch contact.
func (c *CanvasImage) Up(id uint32, p scene.Point) {
	c.rec.Up(sample(id, c.local(p)))
}

// Handle implements gesture.Handler.
func (c *CanvasImage) Handle(e gesture.Event) {
	if !c.session.Apply(e) {
		logging.Debug("image %q: ignore %v", c.source, e.Kind)
		return
	}

	if e.Kind == gesture.Started {
		c.previous = c.transform
	}
	c.transform = c.compose(e.Cumulative)
	c.update()
}

func (c *CanvasImage) compose(d gesture.Delta) affine.Matrix {
	pivot := c.size / 2
	return affine.Pivoted(
		affine.Translation(-pivot, -pivot),
		affine.Translation(pivot, pivot),
		affine.Scale(d.Scale),
		affine.Translation(d.TranslationX, d.TranslationY),
		affine.Rotation(d.Rotation),
		c.previous)
}

func (c *CanvasImage) local(p scene.Point) scene.Point {
	x, y := c.frame.Apply(p.X, p.Y)
	return scene.Point{X: x, Y: y}
}

func (c *CanvasImage) primitive() scene.Image {
	z := imageZ
	if c.session.Active() {
		z = activeImageZ
	}
	return scene.Image{
		Source:    c.source,
		X:         c.x,
		Y:         c.y,
		Width:     c.size,
		Height:    c.size,
		Transform: c.transform,
		Z:         z,
	}
}

func (c *CanvasImage) update() {
	err := c.target.Replace(c.handle, c.primitive())
	if err != nil {
		logging.Warning("image %q: %v", c.source, err)
	}
}
