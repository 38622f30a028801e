package picnotes

import (
	"image/color"

	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/pkg/ink"
	"github.com/akeil/picnotes/pkg/scene"
)

// Config holds the layout and default settings for a Board.
//
// Frames are given in window coordinates; the picker and the canvas each
// use their own local coordinates with the origin at the top left corner
// of their frame.
type Config struct {
	// PickerFrame is the position and size of the picture picker.
	PickerFrame scene.Rect
	// CanvasFrame is the position and size of the canvas (the drop target).
	CanvasFrame scene.Rect

	// ImageSize is the display size of pictures, both in the picker and
	// on the canvas.
	ImageSize float64
	// ItemInset is the left and top margin of picker items.
	ItemInset float64
	// ItemPitch is the vertical distance between two picker items.
	ItemPitch   float64
	SliderWidth float64

	Ink          ink.Attributes
	PreviewColor color.RGBA
	PreviewWidth float64
	// UseActiveColor draws the live preview in PreviewColor instead of
	// the ink colour.
	UseActiveColor bool
}

// DefaultConfig returns the standard layout: a 300 units wide picker on
// the left and a 1024x768 canvas next to it.
func DefaultConfig() Config {
	return Config{
		PickerFrame:    scene.Rect{X: 0, Y: 0, Width: 300, Height: 768},
		CanvasFrame:    scene.Rect{X: 310, Y: 0, Width: 1024, Height: 768},
		ImageSize:      150,
		ItemInset:      7.5,
		ItemPitch:      157.5,
		SliderWidth:    20,
		Ink:            ink.DefaultAttributes(),
		PreviewColor:   ink.Turquoise,
		PreviewWidth:   ink.DefaultPreviewWidth,
		UseActiveColor: false,
	}
}

// Validate checks that sizes are usable.
func (c Config) Validate() error {
	if c.PickerFrame.Width <= 0 || c.PickerFrame.Height <= 0 {
		return errors.NewValidationError("picker frame must have a positive size")
	}
	if c.CanvasFrame.Width <= 0 || c.CanvasFrame.Height <= 0 {
		return errors.NewValidationError("canvas frame must have a positive size")
	}
	if c.ImageSize <= 0 {
		return errors.NewValidationError("invalid image size %v", c.ImageSize)
	}
	if c.ItemPitch < c.ImageSize {
		return errors.NewValidationError("item pitch %v is smaller than image size %v", c.ItemPitch, c.ImageSize)
	}
	if c.SliderWidth < 0 || c.SliderWidth >= c.PickerFrame.Width {
		return errors.NewValidationError("invalid slider width %v", c.SliderWidth)
	}
	if c.Ink.Size <= 0 {
		return errors.NewValidationError("invalid pen size %v", c.Ink.Size)
	}
	if c.PreviewWidth <= 0 {
		return errors.NewValidationError("invalid preview width %v", c.PreviewWidth)
	}
	return nil
}

// PickerToCanvas maps a point from picker coordinates to canvas
// coordinates.
func (c Config) PickerToCanvas(p scene.Point) scene.Point {
	return scene.Point{
		X: p.X + c.PickerFrame.X - c.CanvasFrame.X,
		Y: p.Y + c.PickerFrame.Y - c.CanvasFrame.Y,
	}
}
