package picnotes

import (
	"image/color"

	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/internal/logging"
	"github.com/akeil/picnotes/pkg/affine"
	"github.com/akeil/picnotes/pkg/gesture"
	"github.com/akeil/picnotes/pkg/scene"
)

// Drop notifies about a picture dropped on the canvas.
type Drop struct {
	Source string
	// Position is the top left corner of the picture in canvas
	// coordinates.
	Position scene.Point
}

var sliderColor = color.RGBA{160, 160, 160, 255}

type pickerItem struct {
	source string
	handle scene.Handle
	left   float64
	top    float64
	dx, dy float64
	z      int
}

type itemDrag struct {
	id   uint32
	item *pickerItem
	// finger is the pointer position relative to the item.
	finger scene.Point
}

// Picker is a vertical list of pictures with a slider.
//
// Pictures can be dragged out of the picker; a picture released over the
// canvas produces a Drop. The dragged picture itself always returns to its
// place in the list.
type Picker struct {
	// OnDrop is called when a picture is dropped on the canvas.
	OnDrop func(Drop)

	cfg          Config
	target       scene.Target
	items        []*pickerItem
	slider       *gesture.Slider
	sliderRec    *gesture.Recognizer
	sliderID     uint32
	sliderActive bool
	thumb        scene.Handle
	scroll       float64
	drag         *itemDrag
	dragRec      *gesture.Recognizer
}

// NewPicker creates a picker that lists the given sources.
func NewPicker(t scene.Target, cfg Config, sources ...string) (*Picker, error) {
	if t == nil {
		return nil, errors.NewConfigError("picker needs a render target")
	}
	p := &Picker{
		cfg:    cfg,
		target: t,
		slider: gesture.NewSlider(),
	}
	p.sliderRec = gesture.NewRecognizer(gesture.Translate, gesture.HandlerFunc(p.handleSlider))
	p.dragRec = gesture.NewRecognizer(gesture.Translate, gesture.HandlerFunc(p.handleDrag))
	p.thumb = t.Add(p.thumbPath())

	for _, s := range sources {
		p.Add(s)
	}
	return p, nil
}

// Add appends a picture to the list.
func (p *Picker) Add(source string) {
	top := p.cfg.ItemInset + p.cfg.ItemPitch*float64(len(p.items))
	item := &pickerItem{
		source: source,
		left:   p.cfg.ItemInset,
		top:    top,
	}
	item.handle = p.target.Add(p.itemImage(item))
	p.items = append(p.items, item)

	p.slider.Resize(p.cfg.PickerFrame.Height, p.ContentHeight())
	p.scroll = 0
	p.refresh()
}

// Len returns the number of pictures.
func (p *Picker) Len() int {
	return len(p.items)
}

// ContentHeight returns the height of the complete list.
func (p *Picker) ContentHeight() float64 {
	if len(p.items) == 0 {
		return 0
	}
	return p.items[len(p.items)-1].top + p.cfg.ImageSize
}

// Slider returns the slider state.
func (p *Picker) Slider() *gesture.Slider {
	return p.slider
}

// ItemPosition returns the current top left corner of item i.
func (p *Picker) ItemPosition(i int) (scene.Point, bool) {
	if i < 0 || i >= len(p.items) {
		return scene.Point{}, false
	}
	item := p.items[i]
	return p.itemOrigin(item), true
}

// Dragging reports whether a picture is being dragged.
func (p *Picker) Dragging() bool {
	return p.drag != nil
}

// HandlePointer processes a pointer event in picker coordinates.
// It returns false if the event was ignored.
func (p *Picker) HandlePointer(e PointerEvent) bool {
	switch e.Kind {
	case Down:
		if p.onThumb(e.Position) {
			return p.sliderDown(e)
		}
		return p.itemDown(e)
	case Move:
		if p.sliderActive && e.ID == p.sliderID {
			p.sliderRec.Move(samples(e)...)
			return true
		}
		if p.drag != nil && e.ID == p.drag.id && !p.sliderActive {
			p.dragRec.Move(samples(e)...)
			return true
		}
	case Up:
		if p.sliderActive && e.ID == p.sliderID {
			return p.sliderUp(e)
		}
		if p.drag != nil && e.ID == p.drag.id && !p.sliderActive {
			return p.itemUp(e)
		}
	}
	return false
}

func (p *Picker) sliderDown(e PointerEvent) bool {
	if p.sliderActive {
		return false
	}
	p.sliderActive = true
	p.sliderID = e.ID
	p.sliderRec.Complete()
	p.sliderRec.Down(sample(e.ID, e.Position))
	return true
}

func (p *Picker) sliderUp(e PointerEvent) bool {
	p.sliderActive = false
	p.sliderRec.Up(sample(e.ID, e.Position))
	p.sliderRec.Complete()
	return true
}

func (p *Picker) handleSlider(e gesture.Event) {
	p.slider.Handle(e)
	p.scroll = p.slider.ContentOffset()
	p.refresh()
}

func (p *Picker) itemDown(e PointerEvent) bool {
	if p.drag != nil || p.sliderActive {
		logging.Debug("picker: ignore %v", e)
		return false
	}
	item := p.itemAt(e.Position)
	if item == nil {
		return false
	}

	origin := p.itemOrigin(item)
	p.drag = &itemDrag{
		id:   e.ID,
		item: item,
		finger: scene.Point{
			X: e.Position.X - origin.X,
			Y: e.Position.Y - origin.Y,
		},
	}
	item.z = 1
	p.replace(item)
	p.dragRec.Down(sample(e.ID, e.Position))
	return true
}

func (p *Picker) handleDrag(e gesture.Event) {
	if p.drag == nil {
		return
	}
	item := p.drag.item
	switch e.Kind {
	case gesture.Started, gesture.Updated:
		item.dx = e.Cumulative.TranslationX
		item.dy = e.Cumulative.TranslationY
	case gesture.Completed:
		item.dx = 0
		item.dy = 0
	}
	p.replace(item)
}

func (p *Picker) itemUp(e PointerEvent) bool {
	d := p.drag
	if !e.InContact {
		p.dragRec.Up(sample(e.ID, e.Position))
	}
	p.dragRec.Complete()

	canvasPoint := p.cfg.PickerToCanvas(e.Position)
	dropTarget := scene.Rect{Width: p.cfg.CanvasFrame.Width, Height: p.cfg.CanvasFrame.Height}
	bounds := scene.Rect{Width: p.cfg.PickerFrame.Width, Height: p.cfg.PickerFrame.Height}
	if p.OnDrop != nil && dropTarget.Contains(canvasPoint) && !bounds.Contains(e.Position) {
		drop := Drop{
			Source: d.item.source,
			Position: scene.Point{
				X: canvasPoint.X - d.finger.X,
				Y: canvasPoint.Y - d.finger.Y,
			},
		}
		logging.Debug("picker: drop %q at %g,%g", drop.Source, drop.Position.X, drop.Position.Y)
		p.OnDrop(drop)
	}

	d.item.dx = 0
	d.item.dy = 0
	d.item.z = 0
	p.replace(d.item)
	p.drag = nil
	return true
}

func (p *Picker) onThumb(pt scene.Point) bool {
	if p.cfg.SliderWidth <= 0 {
		return false
	}
	r := scene.Rect{
		X:      p.cfg.PickerFrame.Width - p.cfg.SliderWidth,
		Y:      p.slider.Offset(),
		Width:  p.cfg.SliderWidth,
		Height: p.slider.Thumb(),
	}
	return r.Contains(pt)
}

func (p *Picker) itemAt(pt scene.Point) *pickerItem {
	for _, item := range p.items {
		o := p.itemOrigin(item)
		r := scene.Rect{X: o.X, Y: o.Y, Width: p.cfg.ImageSize, Height: p.cfg.ImageSize}
		if r.Contains(pt) {
			return item
		}
	}
	return nil
}

func (p *Picker) itemOrigin(item *pickerItem) scene.Point {
	return scene.Point{
		X: item.left + item.dx,
		Y: item.top - p.scroll + item.dy,
	}
}

func (p *Picker) itemImage(item *pickerItem) scene.Image {
	o := p.itemOrigin(item)
	return scene.Image{
		Source:    item.source,
		X:         o.X,
		Y:         o.Y,
		Width:     p.cfg.ImageSize,
		Height:    p.cfg.ImageSize,
		Transform: affine.Identity(),
		Z:         item.z,
	}
}

func (p *Picker) thumbPath() scene.Path {
	x := p.cfg.PickerFrame.Width - p.cfg.SliderWidth/2
	y := p.slider.Offset()
	path := scene.NewPath(scene.Point{X: x, Y: y})
	path.LineTo(scene.Point{X: x, Y: y + p.slider.Thumb()})
	path.Width = p.cfg.SliderWidth
	path.Color = sliderColor
	path.Cap = scene.ButtCap
	path.Z = 2
	return path
}

func (p *Picker) refresh() {
	for _, item := range p.items {
		p.replace(item)
	}
	err := p.target.Replace(p.thumb, p.thumbPath())
	if err != nil {
		logging.Warning("picker: slider: %v", err)
	}
}

func (p *Picker) replace(item *pickerItem) {
	err := p.target.Replace(item.handle, p.itemImage(item))
	if err != nil {
		logging.Warning("picker: %q: %v", item.source, err)
	}
}

func samples(e PointerEvent) []gesture.Sample {
	pts := e.Samples()
	s := make([]gesture.Sample, len(pts))
	for i, pt := range pts {
		s[i] = sample(e.ID, pt)
	}
	return s
}
