// Package export writes editor frames to documents through the same
// renderer the live canvas uses.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"PolyBoard/internal/render"
	"PolyBoard/internal/state"
)

// PDFSurface renders a frame onto a single PDF page, one point per canvas
// pixel.
type PDFSurface struct {
	pdf    *gofpdf.Fpdf
	w, h   float64
	path   []state.Point
	images int
}

// NewPDFSurface creates a one-page document of the given canvas size.
func NewPDFSurface(w, h float64) *PDFSurface {
	// "L" would swap the custom size, so the page is always "P".
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	return &PDFSurface{pdf: p, w: w, h: h}
}

func (s *PDFSurface) Size() (float64, float64) { return s.w, s.h }

func (s *PDFSurface) Clear() {
	s.pdf.SetFillColor(255, 255, 255)
	s.pdf.Rect(0, 0, s.w, s.h, "F")
}

func (s *PDFSurface) DrawImage(img image.Image, x, y, w, h float64) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		s.pdf.SetError(fmt.Errorf("encode background: %w", err))
		return
	}
	s.images++
	name := fmt.Sprintf("background-%d", s.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	s.pdf.RegisterImageOptionsReader(name, opts, &buf)
	s.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// BeginPath starts buffering; gofpdf cannot change colors mid path.
func (s *PDFSurface) BeginPath() { s.path = s.path[:0] }

func (s *PDFSurface) MoveTo(x, y float64) {
	s.path = append(s.path[:0], state.Point{X: x, Y: y})
}

func (s *PDFSurface) LineTo(x, y float64) {
	s.path = append(s.path, state.Point{X: x, Y: y})
}

func (s *PDFSurface) Stroke(c color.Color, width float64) {
	if len(s.path) < 2 {
		return
	}
	r, g, b := rgb(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetLineWidth(width)
	s.pdf.MoveTo(s.path[0].X, s.path[0].Y)
	for _, p := range s.path[1:] {
		s.pdf.LineTo(p.X, p.Y)
	}
	s.pdf.DrawPath("D")
	s.path = s.path[:0]
}

func (s *PDFSurface) DrawDisc(center state.Point, radius float64, c color.Color) {
	r, g, b := rgb(c)
	s.pdf.SetFillColor(r, g, b)
	s.pdf.Circle(center.X, center.Y, radius, "F")
}

// Write finishes the document.
func (s *PDFSurface) Write(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WritePDF renders f on a w x h page and writes it out.
func WritePDF(out io.Writer, w, h float64, f render.Frame) error {
	s := NewPDFSurface(w, h)
	render.Draw(s, f)
	return s.Write(out)
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
