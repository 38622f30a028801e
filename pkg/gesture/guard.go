package gesture

// Guard admits a single active pointer per input surface.
//
// The zero value is ready to use.
type Guard struct {
	id     uint32
	active bool
}

// Acquire makes id the active pointer.
// It fails if another pointer is already active.
func (g *Guard) Acquire(id uint32) bool {
	if g.active {
		return g.id == id
	}
	g.id = id
	g.active = true
	return true
}

// Release clears the active pointer if it is id.
func (g *Guard) Release(id uint32) bool {
	if !g.Holds(id) {
		return false
	}
	g.Reset()
	return true
}

// Holds reports whether id is the active pointer.
func (g *Guard) Holds(id uint32) bool {
	return g.active && g.id == id
}

// Active returns the active pointer, if any.
func (g *Guard) Active() (uint32, bool) {
	return g.id, g.active
}

// Reset clears the guard unconditionally.
func (g *Guard) Reset() {
	g.id = 0
	g.active = false
}
