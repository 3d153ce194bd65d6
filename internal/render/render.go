// Package render draws an editor frame onto any Surface. It keeps no state
// of its own.
package render

import (
	"image"
	"image/color"

	"PolyBoard/internal/state"
)

const (
	LineWidth = 2.0
	PinRadius = 10.0
)

var (
	LineColor   = color.NRGBA{B: 255, A: 255}
	AnchorColor = color.NRGBA{G: 128, A: 255}
	ActiveColor = color.NRGBA{R: 255, A: 255}
)

// Surface is the drawing capability the renderer issues primitives to.
type Surface interface {
	Size() (w, h float64)
	Clear()
	DrawImage(img image.Image, x, y, w, h float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke(c color.Color, width float64)
	DrawDisc(center state.Point, radius float64, c color.Color)
}

// Frame is everything one frame depends on.
type Frame struct {
	Vertices    []state.Vertex
	PulseRadius float64
	Background  image.Image
	PinRadius   float64
}

// Draw paints f: background, then polyline, then pins. Undefined vertices
// are skipped.
func Draw(s Surface, f Frame) {
	s.Clear()
	w, h := s.Size()
	if f.Background != nil {
		s.DrawImage(f.Background, 0, 0, w, h)
	}

	vs := f.Vertices
	if len(vs) > 1 {
		started := false
		s.BeginPath()
		for _, v := range vs {
			if !v.Defined {
				continue
			}
			if !started {
				s.MoveTo(v.Pos.X, v.Pos.Y)
				started = true
				continue
			}
			s.LineTo(v.Pos.X, v.Pos.Y)
		}
		s.Stroke(LineColor, LineWidth)
	}

	pin := f.PinRadius
	if pin <= 0 {
		pin = PinRadius
	}
	if len(vs) > 0 && vs[0].Defined {
		s.DrawDisc(vs[0].Pos, pin, AnchorColor)
	}
	if len(vs) > 1 {
		if last := vs[len(vs)-1]; last.Defined {
			s.DrawDisc(last.Pos, f.PulseRadius, ActiveColor)
		}
	}
}
