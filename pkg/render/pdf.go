package render

import (
	"bytes"
	"image/png"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/picnotes/internal/logging"
	"github.com/akeil/picnotes/pkg/affine"
	"github.com/akeil/picnotes/pkg/scene"
)

// PDFOptions hold document metadata.
type PDFOptions struct {
	Title   string
	Created time.Time
}

// PDF renders the scene as a single PDF page and writes the result to the
// given writer. Paths are written as vector graphics, one unit in the
// scene is one point on the page.
func (c *Context) PDF(s *scene.Scene, opts PDFOptions, w io.Writer) error {
	logging.Debug("Render PDF %q, %gx%g", opts.Title, s.Width, s.Height)
	pdf := setupPDF(s.Width, s.Height, opts)
	pdf.AddPage()

	pdf.SetFillColor(int(c.Background.R), int(c.Background.G), int(c.Background.B))
	pdf.Rect(0, 0, s.Width, s.Height, "F")

	// PDF user space has its origin at the bottom left
	flip := affine.Matrix{A: 1, D: -1, OffsetY: s.Height}

	for _, p := range s.Primitives() {
		switch prim := p.(type) {
		case scene.Path:
			beginTransform(pdf, flip, prim.Transform)
			pathToPDF(pdf, prim)
			pdf.TransformEnd()
		case scene.Image:
			beginTransform(pdf, flip, prim.Placement())
			c.pictureToPDF(pdf, prim)
			pdf.TransformEnd()
		}
	}

	return pdf.Output(w)
}

func setupPDF(width, height float64, opts PDFOptions) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	size := gofpdf.SizeType{Wd: width, Ht: height}
	if width > height {
		orientation = "L"
		size = gofpdf.SizeType{Wd: height, Ht: width}
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           size,
	})

	pdf.SetMargins(0, 0, 0) // left, top, right
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer("picnotes", true)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if !opts.Created.IsZero() {
		created := opts.Created.UTC()
		pdf.SetCreationDate(created)
		pdf.SetModificationDate(created)
	}

	return pdf
}

// beginTransform starts a transformation for a matrix that works in scene
// coordinates.
func beginTransform(pdf *gofpdf.Fpdf, flip, m affine.Matrix) {
	cm := flip.Mul(m).Mul(flip)
	pdf.TransformBegin()
	pdf.Transform(gofpdf.TransformMatrix{
		A: cm.A,
		B: cm.B,
		C: cm.C,
		D: cm.D,
		E: cm.OffsetX,
		F: cm.OffsetY,
	})
}

func pathToPDF(pdf *gofpdf.Fpdf, p scene.Path) {
	pdf.SetDrawColor(int(p.Color.R), int(p.Color.G), int(p.Color.B))
	pdf.SetAlpha(float64(p.Color.A)/255, "Normal")
	pdf.SetLineWidth(p.Width)
	pdf.SetLineCapStyle(capStyle(p.Cap))
	pdf.SetLineJoinStyle(joinStyle(p.Join))

	pdf.MoveTo(p.Start.X, p.Start.Y)
	if len(p.Segments) == 0 {
		pdf.LineTo(p.Start.X, p.Start.Y)
	}
	for _, seg := range p.Segments {
		switch seg.Kind {
		case scene.Cubic:
			pdf.CurveBezierCubicTo(seg.Control1.X, seg.Control1.Y, seg.Control2.X, seg.Control2.Y, seg.To.X, seg.To.Y)
		default:
			pdf.LineTo(seg.To.X, seg.To.Y)
		}
	}
	pdf.DrawPath("D")
	pdf.SetAlpha(1, "Normal")
}

func (c *Context) pictureToPDF(pdf *gofpdf.Fpdf, img scene.Image) {
	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}

	var buf bytes.Buffer
	err := png.Encode(&buf, c.picture(img))
	if err != nil {
		logging.Warning("encode picture %q: %v", img.Source, err)
		return
	}
	pdf.RegisterImageOptionsReader(name, opts, &buf)

	x := 0.0
	y := 0.0
	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, x, y, img.Width, img.Height, flow, opts, link, linkStr)
}

func capStyle(c scene.LineCap) string {
	switch c {
	case scene.RoundCap:
		return "round"
	case scene.ButtCap:
		return "butt"
	default:
		return "square"
	}
}

func joinStyle(j scene.LineJoin) string {
	if j == scene.RoundJoin {
		return "round"
	}
	return "miter"
}
