package gesture

import (
	"math"

	"github.com/akeil/picnotes/internal/logging"
)

// Settings select the manipulations a Recognizer reports.
type Settings uint

const (
	TranslateX Settings = 1 << iota
	TranslateY
	Scale
	Rotate

	Translate = TranslateX | TranslateY
	All       = Translate | Scale | Rotate
)

// Sample is a single pointer position.
type Sample struct {
	ID   uint32
	X, Y float64
}

type contact struct {
	id   uint32
	x, y float64
}

// geometry describes the current contacts.
// Distance and angle are only meaningful for two or more contacts.
type geometry struct {
	n        int
	cx, cy   float64
	distance float64
	angle    float64
}

// Recognizer converts raw pointer samples into manipulation events.
//
// One contact produces a translation. With two contacts, the centroid
// gives the translation, the change in distance gives the scale and the
// change in angle gives the rotation. Further contacts are tracked but
// ignored. A down/up without movement produces no events.
type Recognizer struct {
	settings Settings
	handler  Handler
	contacts []contact
	ref      geometry
	base     Delta
	started  bool
}

// NewRecognizer creates a recognizer that reports the manipulations
// selected by s to h.
func NewRecognizer(s Settings, h Handler) *Recognizer {
	return &Recognizer{
		settings: s,
		handler:  h,
		base:     Neutral,
	}
}

// Down adds a contact.
func (r *Recognizer) Down(s Sample) {
	if r.index(s.ID) >= 0 {
		logging.Debug("gesture: duplicate down for pointer %d", s.ID)
		return
	}
	r.rebase()
	r.contacts = append(r.contacts, contact{id: s.ID, x: s.X, y: s.Y})
	r.ref = r.measure()
}

// Move updates contacts from the given samples, applied in the given
// order, and emits a single event for the new state.
func (r *Recognizer) Move(samples ...Sample) {
	moved := false
	for _, s := range samples {
		i := r.index(s.ID)
		if i < 0 {
			continue
		}
		r.contacts[i].x = s.X
		r.contacts[i].y = s.Y
		moved = true
	}
	if !moved {
		return
	}

	cum := r.Cumulative()
	if !r.started {
		if cum == Neutral {
			return
		}
		r.started = true
		r.emit(Started, cum)
		return
	}
	r.emit(Updated, cum)
}

// Up removes a contact. When the last contact is lifted, the gesture
// is completed.
func (r *Recognizer) Up(s Sample) {
	i := r.index(s.ID)
	if i < 0 {
		return
	}
	r.contacts[i].x = s.X
	r.contacts[i].y = s.Y
	r.rebase()
	r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
	r.ref = r.measure()

	if len(r.contacts) == 0 {
		r.Complete()
	}
}

// Complete ends the current gesture. If a manipulation was started, a
// Completed event with the final cumulative values is emitted.
// All contacts are dropped.
func (r *Recognizer) Complete() {
	if r.started {
		r.emit(Completed, r.Cumulative())
	}
	r.contacts = r.contacts[:0]
	r.ref = geometry{}
	r.base = Neutral
	r.started = false
}

// Active reports whether the recognizer tracks any contact.
func (r *Recognizer) Active() bool {
	return len(r.contacts) > 0
}

// Started reports whether a manipulation is in progress.
func (r *Recognizer) Started() bool {
	return r.started
}

// Cumulative returns the manipulation since the gesture began.
func (r *Recognizer) Cumulative() Delta {
	cur := r.measure()
	d := Neutral
	if cur.n > 0 && cur.n == r.ref.n {
		d.TranslationX = cur.cx - r.ref.cx
		d.TranslationY = cur.cy - r.ref.cy
		if cur.n >= 2 && r.ref.distance > 0 {
			d.Scale = cur.distance / r.ref.distance
			d.Rotation = normalizeDegrees(degrees(cur.angle - r.ref.angle))
		}
	}
	d = r.mask(d)

	return Delta{
		TranslationX: r.base.TranslationX + d.TranslationX,
		TranslationY: r.base.TranslationY + d.TranslationY,
		Scale:        r.base.Scale * d.Scale,
		Rotation:     r.base.Rotation + d.Rotation,
	}
}

// rebase folds the manipulation so far into the base so that cumulative
// values stay continuous when contacts are added or removed.
func (r *Recognizer) rebase() {
	r.base = r.Cumulative()
}

func (r *Recognizer) mask(d Delta) Delta {
	if r.settings&TranslateX == 0 {
		d.TranslationX = 0
	}
	if r.settings&TranslateY == 0 {
		d.TranslationY = 0
	}
	if r.settings&Scale == 0 {
		d.Scale = 1
	}
	if r.settings&Rotate == 0 {
		d.Rotation = 0
	}
	return d
}

func (r *Recognizer) measure() geometry {
	g := geometry{n: len(r.contacts)}
	switch {
	case g.n == 0:
		return g
	case g.n == 1:
		g.cx = r.contacts[0].x
		g.cy = r.contacts[0].y
	default:
		p0 := r.contacts[0]
		p1 := r.contacts[1]
		g.cx = (p0.x + p1.x) / 2
		g.cy = (p0.y + p1.y) / 2
		dx := p1.x - p0.x
		dy := p1.y - p0.y
		g.distance = math.Sqrt(dx*dx + dy*dy)
		g.angle = math.Atan2(dy, dx)
	}
	return g
}

func (r *Recognizer) index(id uint32) int {
	for i, c := range r.contacts {
		if c.id == id {
			return i
		}
	}
	return -1
}

func (r *Recognizer) emit(k Kind, d Delta) {
	logging.Debug("gesture: %v %+v", k, d)
	if r.handler != nil {
		r.handler.Handle(Event{Kind: k, Cumulative: d})
	}
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// normalizeDegrees maps an angle to (-180, 180].
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}
