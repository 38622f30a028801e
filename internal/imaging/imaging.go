// Package imaging loads and prepares picture sources for rendering.
package imaging

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Load decodes the image file at path.
// PNG, JPEG and WebP files are supported.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	i, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// Resize creates a copy of the given image, scaled to width x height.
func Resize(i image.Image, width, height float64) image.Image {
	r := image.Rect(0, 0, int(math.Round(width)), int(math.Round(height)))
	dst := image.NewRGBA(r)
	draw.BiLinear.Scale(dst, r, i, i.Bounds(), draw.Over, nil)
	return dst
}

var (
	placeholderFill   = color.RGBA{230, 230, 230, 255}
	placeholderBorder = color.RGBA{160, 160, 160, 255}
)

// Placeholder returns a gray box with a border and a diagonal cross.
// It stands in for pictures that cannot be loaded.
func Placeholder(width, height float64) image.Image {
	w := int(math.Round(width))
	h := int(math.Round(height))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(placeholderFill), image.Point{}, draw.Src)

	for x := 0; x < w; x++ {
		dst.Set(x, 0, placeholderBorder)
		dst.Set(x, h-1, placeholderBorder)
	}
	for y := 0; y < h; y++ {
		dst.Set(0, y, placeholderBorder)
		dst.Set(w-1, y, placeholderBorder)
	}
	if w > 0 && h > 0 {
		for x := 0; x < w; x++ {
			y := x * h / w
			dst.Set(x, y, placeholderBorder)
			dst.Set(x, h-1-y, placeholderBorder)
		}
	}
	return dst
}
