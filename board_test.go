package picnotes

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/pkg/ink"
)

func TestBoardDrop(t *testing.T) {
	b, err := NewBoard(pickerConfig(), "bear.png", "cat.png")
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)

	events := []Event{
		{Surface: PickerSurface, Pointer: finger(Down, 1, 20, 180)},
		{Surface: PickerSurface, Pointer: finger(Move, 1, 450, 50)},
		{Surface: PickerSurface, Pointer: finger(Up, 1, 450, 50)},
	}
	for _, e := range events {
		ok, err := b.Dispatch(e)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	images := b.Canvas().Images()
	require.Len(t, images, 1)
	assert.Equal(t, "cat.png", images[0].Source())
	assert.Equal(t, pt(37.5, 35), images[0].Position())
	assert.Len(t, b.CanvasScene().Images(), 1)
}

func TestBoardCommands(t *testing.T) {
	b, err := NewBoard(DefaultConfig())
	require.NoError(t, err)

	cmds := []Command{
		{Name: CmdColor, Value: "#ff8000"},
		{Name: CmdPen, Value: "rectangle"},
		{Name: CmdSize, Value: "2.5"},
		{Name: CmdAddPicture, Value: "owl.png"},
	}
	for _, c := range cmds {
		c := c
		_, err := b.Dispatch(Event{Command: &c})
		require.NoError(t, err, c.Name)
	}

	a := b.Canvas().Attributes()
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, a.Color)
	assert.Equal(t, ink.Rectangle, a.PenTip)
	assert.Equal(t, 2.5, a.Size)
	assert.Equal(t, 1, b.Picker().Len())

	b.Dispatch(Event{Surface: CanvasSurface, Pointer: pen(Down, 1, 0, 0)})
	b.Dispatch(Event{Surface: CanvasSurface, Pointer: pen(Up, 1, 40, 40)})
	require.Equal(t, 1, b.CanvasScene().Len())

	_, err = b.Dispatch(Event{Command: &Command{Name: CmdClear}})
	require.NoError(t, err)
	assert.Equal(t, 0, b.CanvasScene().Len())

	bad := []Command{
		{Name: "explode"},
		{Name: CmdSize, Value: "-1"},
		{Name: CmdPen, Value: "brush"},
		{Name: CmdColor, Value: "#12"},
		{Name: CmdAddPicture},
	}
	for _, c := range bad {
		c := c
		_, err := b.Dispatch(Event{Command: &c})
		if !errors.IsValidation(err) {
			t.Errorf("expected validation error for %v, got %v", c, err)
		}
	}
}

func TestBoardInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImageSize = 0
	_, err := NewBoard(cfg)
	if !errors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Turquoise")
	require.NoError(t, err)
	assert.Equal(t, ink.Turquoise, c)

	c, err = ParseColor("#10203040")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x10, 0x20, 0x30, 0x40}, c)

	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}

func TestParseNames(t *testing.T) {
	k, err := ParsePointerKind("Move")
	require.NoError(t, err)
	assert.Equal(t, Move, k)

	d, err := ParseDevice("touch")
	require.NoError(t, err)
	assert.Equal(t, Touch, d)

	s, err := ParseSurface("picker")
	require.NoError(t, err)
	assert.Equal(t, PickerSurface, s)

	_, err = ParseDevice("trackball")
	assert.Error(t, err)
}
