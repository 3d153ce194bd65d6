package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"PolyBoard/internal/state"
)

// fyneSurface turns render primitives into fyne canvas objects. The object
// list is rebuilt on every frame.
type fyneSurface struct {
	size       fyne.Size
	objects    []fyne.CanvasObject
	background *canvas.Rectangle
	path       []fyne.Position

	bgSource image.Image
	bgImage  *canvas.Image
}

func newFyneSurface(size fyne.Size) *fyneSurface {
	return &fyneSurface{
		size:       size,
		background: canvas.NewRectangle(color.White),
	}
}

func (s *fyneSurface) Size() (float64, float64) {
	return float64(s.size.Width), float64(s.size.Height)
}

func (s *fyneSurface) Clear() {
	s.background.Move(fyne.NewPos(0, 0))
	s.background.Resize(s.size)
	s.objects = append(s.objects[:0], s.background)
	s.path = s.path[:0]
}

func (s *fyneSurface) DrawImage(img image.Image, x, y, w, h float64) {
	// keep one canvas.Image per decoded bitmap so the texture is not
	// re-uploaded every frame
	if s.bgImage == nil || s.bgSource != img {
		s.bgImage = canvas.NewImageFromImage(img)
		s.bgImage.FillMode = canvas.ImageFillStretch
		s.bgSource = img
	}
	s.bgImage.Move(fyne.NewPos(float32(x), float32(y)))
	s.bgImage.Resize(fyne.NewSize(float32(w), float32(h)))
	s.objects = append(s.objects, s.bgImage)
}

func (s *fyneSurface) BeginPath() { s.path = s.path[:0] }

func (s *fyneSurface) MoveTo(x, y float64) {
	s.path = append(s.path[:0], fyne.NewPos(float32(x), float32(y)))
}

func (s *fyneSurface) LineTo(x, y float64) {
	s.path = append(s.path, fyne.NewPos(float32(x), float32(y)))
}

func (s *fyneSurface) Stroke(c color.Color, width float64) {
	for i := 1; i < len(s.path); i++ {
		segment := canvas.NewLine(c)
		segment.StrokeWidth = float32(width)
		segment.Position1 = s.path[i-1]
		segment.Position2 = s.path[i]
		s.objects = append(s.objects, segment)
	}
	s.path = s.path[:0]
}

func (s *fyneSurface) DrawDisc(center state.Point, radius float64, c color.Color) {
	disc := canvas.NewCircle(c)
	r := float32(radius)
	disc.Move(fyne.NewPos(float32(center.X)-r, float32(center.Y)-r))
	disc.Resize(fyne.NewSize(2*r, 2*r))
	s.objects = append(s.objects, disc)
}
