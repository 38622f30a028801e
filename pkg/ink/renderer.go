package ink

import (
	"image/color"

	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/internal/logging"
	"github.com/akeil/picnotes/pkg/scene"
)

// Z-index for ink primitives; ink is painted above images.
const (
	PermanentZ = 10
	PreviewZ   = 11
)

// DefaultPreviewWidth is the stroke width of the live preview.
const DefaultPreviewWidth = 3.0

type preview struct {
	id     uint32
	handle scene.Handle
	path   scene.Path
}

// Renderer maintains the live preview of the stroke in progress and the
// permanent ink on a render target.
type Renderer struct {
	// UseActiveColor draws the preview in ActiveColor instead of the
	// stroke color.
	UseActiveColor bool
	ActiveColor    color.RGBA
	ActiveWidth    float64

	target    scene.Target
	live      *preview
	permanent []scene.Handle
}

// NewRenderer creates a Renderer that draws onto t.
func NewRenderer(t scene.Target) (*Renderer, error) {
	if t == nil {
		return nil, errors.NewConfigError("ink renderer needs a render target")
	}
	return &Renderer{
		UseActiveColor: true,
		ActiveColor:    Turquoise,
		ActiveWidth:    DefaultPreviewWidth,
		target:         t,
	}, nil
}

// Start begins a live preview for pointer id at p.
// It reports false while another pointer owns the preview.
func (r *Renderer) Start(id uint32, p Point, a Attributes) bool {
	if r.live != nil {
		logging.Debug("ink: ignore pointer %d, preview owned by %d", id, r.live.id)
		return false
	}

	c := a.Color
	if r.UseActiveColor {
		c = r.ActiveColor
	}
	path := scene.NewPath(p.toScene())
	path.Color = c
	path.Width = r.ActiveWidth
	path.Join = a.LineJoin()
	path.Cap = a.LineCap()
	path.Z = PreviewZ

	r.live = &preview{
		id:     id,
		handle: r.target.Add(path),
		path:   path,
	}
	return true
}

// Update extends the preview with the given points, oldest first.
// It reports false if no preview for pointer id is active.
func (r *Renderer) Update(id uint32, points ...Point) bool {
	if r.live == nil || r.live.id != id {
		return false
	}
	for _, p := range points {
		r.live.path.LineTo(p.toScene())
	}
	err := r.target.Replace(r.live.handle, r.live.path.Clone())
	if err != nil {
		logging.Warning("ink: update preview: %v", err)
		return false
	}
	return true
}

// Finish removes the preview for pointer id.
func (r *Renderer) Finish(id uint32) bool {
	if r.live == nil || r.live.id != id {
		return false
	}
	r.Cancel()
	return true
}

// Cancel removes any live preview.
func (r *Renderer) Cancel() {
	if r.live == nil {
		return
	}
	err := r.target.Remove(r.live.handle)
	if err != nil {
		logging.Debug("ink: remove preview: %v", err)
	}
	r.live = nil
}

// Active returns the pointer id of the live preview.
func (r *Renderer) Active() (uint32, bool) {
	if r.live == nil {
		return 0, false
	}
	return r.live.id, true
}

// AddPermanent adds the fitted stroke as a permanent path.
//
// The first rendering segment gives the start point, each further segment
// becomes a cubic Bezier curve. Strokes without segments add nothing.
func (r *Renderer) AddPermanent(s Stroke, a Attributes) (scene.Handle, bool) {
	segs := s.RenderingSegments()
	if len(segs) == 0 {
		return 0, false
	}

	path := scene.NewPath(segs[0].Position.toScene())
	for _, seg := range segs[1:] {
		path.CubicTo(seg.Control1.toScene(), seg.Control2.toScene(), seg.Position.toScene())
	}
	path.Color = a.Color
	path.Width = a.Size
	path.Join = a.LineJoin()
	path.Cap = a.LineCap()
	path.Z = PermanentZ

	h := r.target.Add(path)
	r.permanent = append(r.permanent, h)
	return h, true
}

// Permanent returns the handles of all permanent paths.
func (r *Renderer) Permanent() []scene.Handle {
	return r.permanent
}

// ClearPermanent removes all permanent paths.
// The first error from the target is returned after all removals were
// attempted.
func (r *Renderer) ClearPermanent() error {
	var first error
	for _, h := range r.permanent {
		err := r.target.Remove(h)
		if err != nil && first == nil {
			first = errors.Wrap(err, "clear ink")
		}
	}
	r.permanent = nil
	return first
}
