package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/picnotes/pkg/affine"
	"github.com/akeil/picnotes/pkg/scene"
)

var red = color.RGBA{255, 0, 0, 255}

func writePicture(t *testing.T, dir, name string, c color.Color) {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			src.Set(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, src))
}

func testScene() *scene.Scene {
	s := scene.New(200, 100)
	path := scene.NewPath(scene.Point{X: 10, Y: 50})
	path.LineTo(scene.Point{X: 90, Y: 50})
	path.Color = red
	path.Width = 4
	path.Cap = scene.RoundCap
	path.Join = scene.RoundJoin
	s.Add(path)
	return s
}

func TestRasterPath(t *testing.T) {
	c := NewContext(t.TempDir())
	dst := c.Raster(testScene())

	assert.Equal(t, image.Rect(0, 0, 200, 100), dst.Bounds())
	r, g, b, _ := dst.At(50, 50).RGBA()
	assert.True(t, r > 0xc000 && g < 0x4000 && b < 0x4000, "expected red at stroke, got %v", dst.At(50, 50))

	r, g, b, _ = dst.At(50, 80).RGBA()
	assert.True(t, r == 0xffff && g == 0xffff && b == 0xffff, "expected background, got %v", dst.At(50, 80))
}

func TestRasterPicture(t *testing.T) {
	dir := t.TempDir()
	writePicture(t, dir, "blue.png", color.RGBA{0, 0, 255, 255})

	s := scene.New(200, 100)
	s.Add(scene.Image{
		Source:    "blue.png",
		X:         120,
		Y:         20,
		Width:     30,
		Height:    30,
		Transform: affine.Identity(),
	})
	s.Add(scene.Image{
		Source:    "missing.png",
		X:         10,
		Y:         10,
		Width:     30,
		Height:    30,
		Transform: affine.Identity(),
	})

	c := NewContext(dir)
	dst := c.Raster(s)

	r, g, b, _ := dst.At(135, 35).RGBA()
	assert.True(t, b > 0xc000 && r < 0x4000 && g < 0x4000, "expected blue picture, got %v", dst.At(135, 35))

	// placeholder is gray, not background white
	r, g, b, _ = dst.At(25, 12).RGBA()
	assert.True(t, r < 0xffff && r == g && g == b, "expected placeholder, got %v", dst.At(25, 12))
}

func TestRasterTransform(t *testing.T) {
	s := scene.New(200, 100)
	path := scene.NewPath(scene.Point{X: 10, Y: 10})
	path.LineTo(scene.Point{X: 40, Y: 10})
	path.Color = red
	path.Width = 4
	path.Transform = affine.Translation(100, 40)
	s.Add(path)

	dst := DefaultContext().Raster(s)
	r, g, _, _ := dst.At(125, 50).RGBA()
	assert.True(t, r > 0xc000 && g < 0x4000, "expected moved stroke, got %v", dst.At(125, 50))
	r, g, _, _ = dst.At(25, 10).RGBA()
	assert.True(t, r == 0xffff && g == 0xffff, "expected background at original place, got %v", dst.At(25, 10))
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	err := NewContext(t.TempDir()).PNG(testScene(), &buf)
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestPDF(t *testing.T) {
	dir := t.TempDir()
	writePicture(t, dir, "blue.png", color.RGBA{0, 0, 255, 255})

	s := testScene()
	curve := scene.NewPath(scene.Point{X: 0, Y: 0})
	curve.CubicTo(scene.Point{X: 10, Y: 0}, scene.Point{X: 20, Y: 10}, scene.Point{X: 30, Y: 30})
	curve.Width = 1
	s.Add(curve)
	s.Add(scene.Image{
		Source:    "blue.png",
		X:         120,
		Y:         20,
		Width:     30,
		Height:    30,
		Transform: affine.Rotation(30),
	})

	var buf bytes.Buffer
	opts := PDFOptions{Title: "test", Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	err := NewContext(dir).PDF(s, opts, &buf)
	require.NoError(t, err)

	out := buf.Bytes()
	require.True(t, len(out) > 0)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "not a PDF")
	assert.True(t, bytes.Contains(out, []byte("%%EOF")), "incomplete PDF")
}
