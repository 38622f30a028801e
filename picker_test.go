package picnotes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/picnotes/pkg/scene"
)

func pickerConfig() Config {
	cfg := DefaultConfig()
	cfg.PickerFrame = scene.Rect{X: 0, Y: 0, Width: 300, Height: 400}
	cfg.CanvasFrame = scene.Rect{X: 400, Y: 0, Width: 200, Height: 200}
	return cfg
}

func newTestPicker(t *testing.T, n int) (*Picker, *[]Drop) {
	t.Helper()
	sources := make([]string, n)
	for i := range sources {
		sources[i] = fmt.Sprintf("picture-%d.png", i)
	}
	p, err := NewPicker(scene.New(300, 400), pickerConfig(), sources...)
	require.NoError(t, err)

	var drops []Drop
	p.OnDrop = func(d Drop) {
		drops = append(drops, d)
	}
	return p, &drops
}

func finger(k PointerKind, id uint32, x, y float64) PointerEvent {
	return touch(k, id, x, y)
}

func TestPickerLayout(t *testing.T) {
	p, _ := newTestPicker(t, 3)

	pos, ok := p.ItemPosition(2)
	require.True(t, ok)
	assert.Equal(t, pt(7.5, 322.5), pos)
	assert.InDelta(t, 472.5, p.ContentHeight(), 1e-9)

	_, ok = p.ItemPosition(3)
	assert.False(t, ok)
}

func TestPickerDrop(t *testing.T) {
	p, drops := newTestPicker(t, 3)

	require.True(t, p.HandlePointer(finger(Down, 1, 20, 20)))
	require.True(t, p.Dragging())
	p.HandlePointer(finger(Move, 1, 200, 40))

	pos, _ := p.ItemPosition(0)
	assert.Equal(t, pt(187.5, 27.5), pos)

	p.HandlePointer(finger(Move, 1, 450, 50))
	require.True(t, p.HandlePointer(finger(Up, 1, 450, 50)))

	require.Len(t, *drops, 1)
	d := (*drops)[0]
	assert.Equal(t, "picture-0.png", d.Source)
	assert.InDelta(t, 37.5, d.Position.X, 1e-9)
	assert.InDelta(t, 37.5, d.Position.Y, 1e-9)

	// the dragged picture returns to its place
	pos, _ = p.ItemPosition(0)
	assert.Equal(t, pt(7.5, 7.5), pos)
	assert.False(t, p.Dragging())
}

func TestPickerUpInContact(t *testing.T) {
	p, drops := newTestPicker(t, 3)

	p.HandlePointer(finger(Down, 1, 20, 20))
	p.HandlePointer(finger(Move, 1, 450, 50))
	up := finger(Up, 1, 450, 50)
	up.InContact = true
	require.True(t, p.HandlePointer(up))

	require.Len(t, *drops, 1)
	assert.InDelta(t, 37.5, (*drops)[0].Position.X, 1e-9)
	pos, _ := p.ItemPosition(0)
	assert.Equal(t, pt(7.5, 7.5), pos)
	assert.False(t, p.Dragging())
	assert.False(t, p.dragRec.Active())

	// the next drag starts from scratch
	require.True(t, p.HandlePointer(finger(Down, 2, 20, 20)))
	assert.True(t, p.Dragging())
}

func TestPickerNoDrop(t *testing.T) {
	p, drops := newTestPicker(t, 3)

	// released inside the picker
	p.HandlePointer(finger(Down, 1, 20, 20))
	p.HandlePointer(finger(Move, 1, 100, 100))
	p.HandlePointer(finger(Up, 1, 100, 100))

	// released outside both
	p.HandlePointer(finger(Down, 1, 20, 20))
	p.HandlePointer(finger(Move, 1, 350, 300))
	p.HandlePointer(finger(Up, 1, 350, 300))

	assert.Empty(t, *drops)
}

func TestPickerSingleDrag(t *testing.T) {
	p, drops := newTestPicker(t, 3)

	require.True(t, p.HandlePointer(finger(Down, 1, 20, 20)))
	assert.False(t, p.HandlePointer(finger(Down, 2, 20, 180)))
	assert.False(t, p.HandlePointer(finger(Move, 2, 450, 50)))
	assert.False(t, p.HandlePointer(finger(Up, 2, 450, 50)))
	p.HandlePointer(finger(Up, 1, 20, 20))

	assert.Empty(t, *drops)
}

func TestPickerSlider(t *testing.T) {
	p, _ := newTestPicker(t, 5)

	content := 7.5 + 4*157.5 + 150
	ratio := 400 / content
	s := p.Slider()
	assert.InDelta(t, ratio, s.ViewRatio(), 1e-9)
	assert.InDelta(t, 400*ratio, s.Thumb(), 1e-9)
	assert.InDelta(t, 400-400*ratio, s.MaxOffset(), 1e-9)

	require.True(t, p.HandlePointer(finger(Down, 1, 290, 10)))

	// no picture drag while the slider is active
	assert.False(t, p.HandlePointer(finger(Down, 2, 20, 20)))

	p.HandlePointer(finger(Move, 1, 290, 110))
	require.True(t, p.HandlePointer(finger(Up, 1, 290, 110)))

	assert.InDelta(t, 100, s.Offset(), 1e-9)
	pos, _ := p.ItemPosition(0)
	assert.InDelta(t, 7.5-100/ratio, pos.Y, 1e-9)

	// the next gesture continues from the current offset and is clamped
	p.HandlePointer(finger(Down, 1, 290, 150))
	p.HandlePointer(finger(Move, 1, 290, 500))
	p.HandlePointer(finger(Up, 1, 290, 500))
	assert.InDelta(t, s.MaxOffset(), s.Offset(), 1e-9)
}

func TestPickerAdd(t *testing.T) {
	p, _ := newTestPicker(t, 0)
	assert.Equal(t, 0, p.Len())

	p.Add("one.png")
	p.Add("two.png")
	assert.Equal(t, 2, p.Len())
	assert.InDelta(t, 7.5+157.5+150, p.ContentHeight(), 1e-9)
}
