package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"PolyBoard/internal/editor"
)

// AppOptions describe one window.
type AppOptions struct {
	Title     string
	Width     float32
	Height    float32
	ShareLink string
	ReadOnly  bool
}

// SubscribeUndo routes the undo key on c to ed. The returned func releases
// the subscription.
func SubscribeUndo(c fyne.Canvas, ed *editor.Editor) (release func()) {
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		ed.KeyDown(string(ev.Name))
	})
	return func() { c.SetOnTypedKey(nil) }
}

// RunApp shows the editor window and blocks until it is closed.
func RunApp(ed *editor.Editor, opts AppOptions) {
	myApp := app.New()
	myWindow := myApp.NewWindow(opts.Title)

	board := NewEditorWidget(ed, opts.Width, opts.Height)
	panel := NewPanel(board, myWindow)
	ed.SetOnStatus(panel.SetStatus)

	var top fyne.CanvasObject = widget.NewLabel("Viewing shared polygon (read only)")
	var bottom fyne.CanvasObject = panel.Status
	if !opts.ReadOnly {
		top = NewToolbar(panel)
		bottom = panel.Content()
	}
	if opts.ShareLink != "" {
		link := widget.NewEntry()
		link.SetText(opts.ShareLink)
		top = container.NewVBox(top, container.NewBorder(nil, nil, widget.NewLabel("Share:"), nil, link))
	}

	content := container.NewBorder(top, container.NewVScroll(bottom), nil, nil, container.NewCenter(board))
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(opts.Width+40, opts.Height+420))

	release := SubscribeUndo(myWindow.Canvas(), ed)
	myWindow.SetOnClosed(func() {
		release()
		board.StopAnimation()
		ed.Close()
		log.Println("[UI] Window closed")
	})

	board.StartAnimation()
	myWindow.ShowAndRun()
}
