package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PolyBoard/internal/editor"
	"PolyBoard/internal/state"
)

// EditorWidget is the polygon canvas. It forwards pointer input to the
// editor and redraws on every animation frame.
type EditorWidget struct {
	widget.BaseWidget
	editor  *editor.Editor
	size    fyne.Size
	anim    *fyne.Animation
	surface *fyneSurface
}

var _ fyne.Widget = (*EditorWidget)(nil)
var _ fyne.Draggable = (*EditorWidget)(nil)
var _ fyne.Tappable = (*EditorWidget)(nil)
var _ desktop.Mouseable = (*EditorWidget)(nil)

// NewEditorWidget creates a canvas of the given size for ed.
func NewEditorWidget(ed *editor.Editor, width, height float32) *EditorWidget {
	w := &EditorWidget{
		editor: ed,
		size:   fyne.NewSize(width, height),
	}
	w.surface = newFyneSurface(w.size)
	w.ExtendBaseWidget(w)
	return w
}

// Editor returns the editor behind the canvas.
func (w *EditorWidget) Editor() *editor.Editor { return w.editor }

// StartAnimation runs the pulse and redraw loop until StopAnimation.
func (w *EditorWidget) StartAnimation() {
	if w.anim != nil {
		return
	}
	w.anim = fyne.NewAnimation(time.Second, func(float32) {
		w.editor.Tick()
		w.Refresh()
	})
	w.anim.Curve = fyne.AnimationLinear
	w.anim.RepeatCount = fyne.AnimationRepeatForever
	w.anim.Start()
}

// StopAnimation halts the frame loop.
func (w *EditorWidget) StopAnimation() {
	if w.anim != nil {
		w.anim.Stop()
		w.anim = nil
	}
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (w *EditorWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.editor.Press(toPoint(e.Position))
	}
}

func (w *EditorWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.editor.Release()
	}
}

func (w *EditorWidget) Dragged(e *fyne.DragEvent) {
	w.editor.Move(toPoint(e.Position))
}

func (w *EditorWidget) DragEnd() {
	w.editor.Release()
}

// Tapped is a click without movement: place a point.
func (w *EditorWidget) Tapped(e *fyne.PointEvent) {
	w.editor.Click(toPoint(e.Position))
}

func (w *EditorWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &editorWidgetRenderer{widget: w}
	r.draw()
	return r
}

type editorWidgetRenderer struct {
	widget *EditorWidget
}

func (r *editorWidgetRenderer) draw() {
	r.widget.editor.Render(r.widget.surface)
}

func (r *editorWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.widget.surface.objects
}

func (r *editorWidgetRenderer) Refresh() {
	r.draw()
	canvas.Refresh(r.widget)
}

func (r *editorWidgetRenderer) Layout(fyne.Size) {
	// the frame stays at the configured canvas size so coordinates match
	// exported points
	r.draw()
}

func (r *editorWidgetRenderer) MinSize() fyne.Size { return r.widget.size }
func (r *editorWidgetRenderer) Destroy()           { r.widget.StopAnimation() }
