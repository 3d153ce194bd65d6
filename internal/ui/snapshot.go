package ui

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/software"

	"PolyBoard/internal/render"
)

// Snapshot rasterizes f with fyne's software painter, producing the same
// picture the window shows.
func Snapshot(f render.Frame, size fyne.Size) image.Image {
	s := newFyneSurface(size)
	render.Draw(s, f)

	c := software.NewCanvas()
	c.SetPadded(false)
	c.SetContent(container.NewWithoutLayout(s.objects...))
	c.Resize(size)
	return c.Capture()
}

// WritePNG encodes a snapshot of f.
func WritePNG(w io.Writer, f render.Frame, size fyne.Size) error {
	if err := png.Encode(w, Snapshot(f, size)); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
