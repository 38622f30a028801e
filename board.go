package picnotes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/internal/logging"
	"github.com/akeil/picnotes/pkg/ink"
	"github.com/akeil/picnotes/pkg/scene"
)

// Surface identifies the input surface of an event.
type Surface int

const (
	CanvasSurface Surface = iota
	PickerSurface
)

func (s Surface) String() string {
	switch s {
	case CanvasSurface:
		return "canvas"
	case PickerSurface:
		return "picker"
	}
	return fmt.Sprintf("Surface(%d)", int(s))
}

// ParseSurface maps "canvas" and "picker" to a Surface.
func ParseSurface(s string) (Surface, error) {
	switch strings.ToLower(s) {
	case "canvas":
		return CanvasSurface, nil
	case "picker":
		return PickerSurface, nil
	}
	return CanvasSurface, fmt.Errorf("invalid surface %q", s)
}

// Commands understood by a Board.
const (
	CmdClear      = "clear"
	CmdColor      = "color"
	CmdPen        = "pen"
	CmdSize       = "size"
	CmdAddPicture = "add-picture"
)

// Command changes settings or content of a Board.
type Command struct {
	Name  string
	Value string
}

// Event is either a pointer event for a surface or a command.
type Event struct {
	Surface Surface
	Pointer PointerEvent
	Command *Command
}

// Board combines a picker and a canvas. Pictures dropped from the picker
// are placed on the canvas.
type Board struct {
	ID     string
	cfg    Config
	canvas *Canvas
	picker *Picker
	cs     *scene.Scene
	ps     *scene.Scene
}

// NewBoard creates a board with the given pictures in the picker.
func NewBoard(cfg Config, pictures ...string) (*Board, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	b := &Board{
		ID:  uuid.New().String(),
		cfg: cfg,
		cs:  scene.New(cfg.CanvasFrame.Width, cfg.CanvasFrame.Height),
		ps:  scene.New(cfg.PickerFrame.Width, cfg.PickerFrame.Height),
	}

	b.canvas, err = NewCanvas(b.cs, cfg, nil)
	if err != nil {
		return nil, err
	}
	b.picker, err = NewPicker(b.ps, cfg, pictures...)
	if err != nil {
		return nil, err
	}
	b.picker.OnDrop = func(d Drop) {
		b.canvas.AddImage(d.Source, d.Position)
	}

	return b, nil
}

// Canvas returns the canvas.
func (b *Board) Canvas() *Canvas {
	return b.canvas
}

// Picker returns the picker.
func (b *Board) Picker() *Picker {
	return b.picker
}

// CanvasScene returns the primitives of the canvas.
func (b *Board) CanvasScene() *scene.Scene {
	return b.cs
}

// PickerScene returns the primitives of the picker.
func (b *Board) PickerScene() *scene.Scene {
	return b.ps
}

// Config returns the configuration of the board.
func (b *Board) Config() Config {
	return b.cfg
}

// Dispatch handles a single event.
// It returns false if the event was ignored.
func (b *Board) Dispatch(e Event) (bool, error) {
	if e.Command != nil {
		return true, b.exec(*e.Command)
	}

	switch e.Surface {
	case CanvasSurface:
		return b.canvas.HandlePointer(e.Pointer), nil
	case PickerSurface:
		return b.picker.HandlePointer(e.Pointer), nil
	}
	return false, errors.NewValidationError("unknown surface %v", e.Surface)
}

func (b *Board) exec(c Command) error {
	logging.Debug("board: command %q %q", c.Name, c.Value)
	switch c.Name {
	case CmdClear:
		return b.canvas.Clear()
	case CmdColor:
		col, err := ParseColor(c.Value)
		if err != nil {
			return err
		}
		b.canvas.SetColor(col)
	case CmdPen:
		tip, err := ink.ParsePenTip(c.Value)
		if err != nil {
			return errors.NewValidationError("%v", err)
		}
		b.canvas.SetPenTip(tip)
	case CmdSize:
		size, err := strconv.ParseFloat(c.Value, 64)
		if err != nil || size <= 0 {
			return errors.NewValidationError("invalid pen size %q", c.Value)
		}
		b.canvas.SetPenSize(size)
	case CmdAddPicture:
		if c.Value == "" {
			return errors.NewValidationError("missing picture source")
		}
		b.picker.Add(c.Value)
	default:
		return errors.NewValidationError("unknown command %q", c.Name)
	}
	return nil
}

var namedColors = map[string]color.RGBA{
	"black":     ink.Black,
	"white":     {255, 255, 255, 255},
	"red":       {255, 0, 0, 255},
	"green":     {0, 128, 0, 255},
	"blue":      {0, 0, 255, 255},
	"yellow":    {255, 255, 0, 255},
	"orange":    {255, 165, 0, 255},
	"purple":    {128, 0, 128, 255},
	"turquoise": ink.Turquoise,
}

// ParseColor parses a color name or a hex value like "#ff8000".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, errors.NewValidationError("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.NewValidationError("invalid color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
