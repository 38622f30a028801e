package scene

import (
	"sort"
	"sync"

	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/internal/logging"
)

// Target is an ordered collection of primitives.
type Target interface {
	// Add places a primitive and returns its handle.
	Add(p Primitive) Handle
	// Replace swaps the primitive for an existing handle.
	Replace(h Handle, p Primitive) error
	// Remove deletes the primitive for a handle.
	Remove(h Handle) error
}

type entry struct {
	handle Handle
	prim   Primitive
}

// Scene is the in-memory Target.
//
// Primitives are painted by ascending z-index; primitives with the same
// z-index keep insertion order.
type Scene struct {
	Width   float64
	Height  float64
	mx      sync.RWMutex
	entries []entry
	next    Handle
}

// New creates an empty scene of the given size.
func New(width, height float64) *Scene {
	return &Scene{
		Width:  width,
		Height: height,
	}
}

// Add implements Target.
func (s *Scene) Add(p Primitive) Handle {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.next++
	s.entries = append(s.entries, entry{handle: s.next, prim: p})
	return s.next
}

// Replace implements Target.
func (s *Scene) Replace(h Handle, p Primitive) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	i := s.index(h)
	if i < 0 {
		return errors.NewNotFound("no primitive with handle %d", h)
	}
	s.entries[i].prim = p
	return nil
}

// Remove implements Target.
func (s *Scene) Remove(h Handle) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	i := s.index(h)
	if i < 0 {
		return errors.NewNotFound("no primitive with handle %d", h)
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return nil
}

// Clear removes all primitives.
func (s *Scene) Clear() {
	s.mx.Lock()
	defer s.mx.Unlock()

	logging.Debug("scene: clear %d primitives", len(s.entries))
	s.entries = nil
}

// Get returns the primitive for a handle.
func (s *Scene) Get(h Handle) (Primitive, bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	i := s.index(h)
	if i < 0 {
		return nil, false
	}
	return s.entries[i].prim, true
}

// Len returns the number of primitives.
func (s *Scene) Len() int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return len(s.entries)
}

// Primitives returns a snapshot of all primitives in paint order.
func (s *Scene) Primitives() []Primitive {
	s.mx.RLock()
	ordered := make([]entry, len(s.entries))
	copy(ordered, s.entries)
	s.mx.RUnlock()

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].prim.ZIndex() < ordered[j].prim.ZIndex()
	})

	prims := make([]Primitive, len(ordered))
	for i, e := range ordered {
		prims[i] = e.prim
	}
	return prims
}

// Paths returns all path primitives in paint order.
func (s *Scene) Paths() []Path {
	var paths []Path
	for _, p := range s.Primitives() {
		if path, ok := p.(Path); ok {
			paths = append(paths, path)
		}
	}
	return paths
}

// Images returns all image primitives in paint order.
func (s *Scene) Images() []Image {
	var images []Image
	for _, p := range s.Primitives() {
		if img, ok := p.(Image); ok {
			images = append(images, img)
		}
	}
	return images
}

func (s *Scene) index(h Handle) int {
	for i, e := range s.entries {
		if e.handle == h {
			return i
		}
	}
	return -1
}
