package render

import (
	"image"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/draw"

	"github.com/akeil/picnotes/pkg/scene"
)

// PNG paints the scene and writes the result as PNG to the given writer.
func (c *Context) PNG(s *scene.Scene, w io.Writer) error {
	dst := c.Raster(s)
	return png.Encode(w, dst)
}

// Raster paints all primitives of the scene onto a new image.
func (c *Context) Raster(s *scene.Scene) *image.RGBA {
	r := image.Rect(0, 0, int(math.Ceil(s.Width)), int(math.Ceil(s.Height)))
	dst := image.NewRGBA(r)
	draw.Draw(dst, r, image.NewUniform(c.Background), image.Point{}, draw.Src)

	gc := draw2dimg.NewGraphicContext(dst)
	for _, p := range s.Primitives() {
		switch prim := p.(type) {
		case scene.Path:
			strokePath(gc, prim)
		case scene.Image:
			c.drawPicture(gc, prim)
		}
	}
	return dst
}

func strokePath(gc draw2d.GraphicContext, p scene.Path) {
	gc.Save()
	defer gc.Restore()

	gc.SetMatrixTransform(draw2d.Matrix(p.Transform.Array()))
	gc.SetStrokeColor(p.Color)
	gc.SetLineWidth(p.Width)
	gc.SetLineCap(lineCap(p.Cap))
	gc.SetLineJoin(lineJoin(p.Join))

	gc.BeginPath()
	gc.MoveTo(p.Start.X, p.Start.Y)
	if len(p.Segments) == 0 {
		// a dot
		gc.LineTo(p.Start.X, p.Start.Y)
	}
	for _, seg := range p.Segments {
		switch seg.Kind {
		case scene.Cubic:
			gc.CubicCurveTo(seg.Control1.X, seg.Control1.Y, seg.Control2.X, seg.Control2.Y, seg.To.X, seg.To.Y)
		default:
			gc.LineTo(seg.To.X, seg.To.Y)
		}
	}
	gc.Stroke()
}

func (c *Context) drawPicture(gc draw2d.GraphicContext, img scene.Image) {
	gc.Save()
	defer gc.Restore()

	gc.SetMatrixTransform(draw2d.Matrix(img.Placement().Array()))
	gc.DrawImage(c.picture(img))
}

func lineCap(c scene.LineCap) draw2d.LineCap {
	switch c {
	case scene.RoundCap:
		return draw2d.RoundCap
	case scene.ButtCap:
		return draw2d.ButtCap
	default:
		return draw2d.SquareCap
	}
}

func lineJoin(j scene.LineJoin) draw2d.LineJoin {
	if j == scene.RoundJoin {
		return draw2d.RoundJoin
	}
	return draw2d.MiterJoin
}
