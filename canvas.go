package picnotes

import (
	"image/color"

	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/internal/logging"
	"github.com/akeil/picnotes/pkg/gesture"
	"github.com/akeil/picnotes/pkg/ink"
	"github.com/akeil/picnotes/pkg/scene"
)

// Canvas is the inking surface.
//
// Pen and mouse input draws ink: a live preview while the pointer is down
// and a permanent path once it is lifted. Touch input manipulates the
// images on the canvas. Only one pointer draws at a time.
type Canvas struct {
	target    scene.Target
	renderer  *ink.Renderer
	fitter    ink.Fitter
	attrs     ink.Attributes
	imageSize float64
	guard     gesture.Guard
	images    []*CanvasImage
	touches   map[uint32]*CanvasImage
}

// NewCanvas creates a canvas that draws onto t.
// If f is nil, an ink.Manager is used to fit strokes.
func NewCanvas(t scene.Target, cfg Config, f ink.Fitter) (*Canvas, error) {
	if t == nil {
		return nil, errors.NewConfigError("canvas needs a render target")
	}
	r, err := ink.NewRenderer(t)
	if err != nil {
		return nil, err
	}
	r.UseActiveColor = cfg.UseActiveColor
	r.ActiveColor = cfg.PreviewColor
	r.ActiveWidth = cfg.PreviewWidth

	if f == nil {
		f = ink.NewManager()
	}

	c := &Canvas{
		target:    t,
		renderer:  r,
		fitter:    f,
		imageSize: cfg.ImageSize,
		touches:   make(map[uint32]*CanvasImage),
	}
	c.SetAttributes(cfg.Ink)
	return c, nil
}

// HandlePointer processes a pointer event in canvas coordinates.
// It returns false if the event was ignored.
func (c *Canvas) HandlePointer(e PointerEvent) bool {
	if e.Device == Touch {
		return c.handleTouch(e)
	}

	switch e.Kind {
	case Down:
		return c.penDown(e)
	case Move:
		if !c.guard.Holds(e.ID) {
			return false
		}
		if !e.InContact {
			return c.penUp(e)
		}
		return c.penMove(e)
	case Up:
		if !c.guard.Holds(e.ID) {
			return false
		}
		return c.penUp(e)
	}
	return false
}

func (c *Canvas) penDown(e PointerEvent) bool {
	if !e.InContact {
		return false
	}
	if !c.guard.Acquire(e.ID) {
		logging.Debug("canvas: ignore %v, pointer busy", e)
		return false
	}
	logging.Debug("canvas: start stroke %v", e)

	pts := e.Samples()
	first := inkPoint(pts[0])
	if !c.renderer.Start(e.ID, first, c.attrs) {
		c.guard.Release(e.ID)
		return false
	}
	c.fitter.Down(first)
	c.feed(e.ID, pts[1:])
	return true
}

func (c *Canvas) penMove(e PointerEvent) bool {
	c.feed(e.ID, e.Samples())
	return true
}

func (c *Canvas) feed(id uint32, pts []scene.Point) {
	if len(pts) == 0 {
		return
	}
	ipts := make([]ink.Point, len(pts))
	for i, p := range pts {
		ipts[i] = inkPoint(p)
		c.fitter.Move(ipts[i])
	}
	c.renderer.Update(id, ipts...)
}

func (c *Canvas) penUp(e PointerEvent) bool {
	stroke := c.fitter.Up(inkPoint(e.Position))
	c.renderer.Finish(e.ID)
	if _, ok := c.renderer.AddPermanent(stroke, c.attrs); !ok {
		logging.Debug("canvas: stroke without segments")
	}
	c.guard.Release(e.ID)
	return true
}

func (c *Canvas) handleTouch(e PointerEvent) bool {
	switch e.Kind {
	case Down:
		img := c.imageAt(e.Position)
		if img == nil {
			return false
		}
		c.touches[e.ID] = img
		img.Down(e.ID, e.Position)
	case Move:
		img, ok := c.touches[e.ID]
		if !ok {
			return false
		}
		img.Move(e.ID, e.Samples()...)
	case Up:
		img, ok := c.touches[e.ID]
		if !ok {
			return false
		}
		delete(c.touches, e.ID)
		img.Up(e.ID, e.Position)
	default:
		return false
	}
	return true
}

// imageAt returns the topmost image at p.
func (c *Canvas) imageAt(p scene.Point) *CanvasImage {
	var hit *CanvasImage
	z := 0
	for i := len(c.images) - 1; i >= 0; i-- {
		img := c.images[i]
		if !img.Contains(p) {
			continue
		}
		iz := img.primitive().Z
		if hit == nil || iz > z {
			hit = img
			z = iz
		}
	}
	return hit
}

// AddImage places a picture with its top left corner at pos.
func (c *Canvas) AddImage(source string, pos scene.Point) *CanvasImage {
	img := NewCanvasImage(c.target, source, pos, c.imageSize)
	c.images = append(c.images, img)
	logging.Debug("canvas: add %q at %g,%g", source, pos.X, pos.Y)
	return img
}

// Clear removes all ink and all images.
func (c *Canvas) Clear() error {
	c.renderer.Cancel()
	c.guard.Reset()
	c.fitter.Clear()
	err := c.renderer.ClearPermanent()

	for _, img := range c.images {
		rmErr := c.target.Remove(img.SceneHandle())
		if rmErr != nil && err == nil {
			err = errors.Wrap(rmErr, "clear images")
		}
	}
	c.images = nil
	c.touches = make(map[uint32]*CanvasImage)
	return err
}

// Images returns the images on the canvas.
func (c *Canvas) Images() []*CanvasImage {
	return c.images
}

// Strokes returns the finished strokes.
func (c *Canvas) Strokes() []ink.Stroke {
	return c.fitter.Strokes()
}

// Ink returns the handles of the permanent ink paths.
func (c *Canvas) Ink() []scene.Handle {
	return c.renderer.Permanent()
}

// Attributes returns the attributes for new strokes.
func (c *Canvas) Attributes() ink.Attributes {
	return c.attrs
}

// SetAttributes sets the attributes for new strokes.
func (c *Canvas) SetAttributes(a ink.Attributes) {
	c.attrs = a
	if m, ok := c.fitter.(*ink.Manager); ok {
		m.FitToCurve = a.FitToCurve
	}
}

// SetColor sets the ink color.
func (c *Canvas) SetColor(col color.RGBA) {
	c.attrs.Color = col
}

// SetPenTip sets the pen tip.
func (c *Canvas) SetPenTip(t ink.PenTip) {
	c.attrs.PenTip = t
}

// SetPenSize sets the stroke width.
func (c *Canvas) SetPenSize(size float64) {
	c.attrs.Size = size
}
