package ui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PolyBoard/internal/editor"
	"PolyBoard/internal/export"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Panel holds the JSON and background controls under the canvas.
type Panel struct {
	Output *widget.Entry
	Input  *widget.Entry
	Status *widget.Label

	board *EditorWidget
	win   fyne.Window
}

// NewPanel wires the controls to board.
func NewPanel(board *EditorWidget, win fyne.Window) *Panel {
	p := &Panel{
		Output: widget.NewMultiLineEntry(),
		Input:  widget.NewMultiLineEntry(),
		Status: widget.NewLabel(""),
		board:  board,
		win:    win,
	}
	p.Output.SetPlaceHolder("Points as JSON")
	p.Output.SetMinRowsVisible(4)
	p.Input.SetPlaceHolder("Paste points JSON to redraw")
	p.Input.SetMinRowsVisible(4)
	p.Status.Wrapping = fyne.TextWrapWord
	return p
}

// SetStatus shows msg; safe from any goroutine.
func (p *Panel) SetStatus(msg string, sev editor.Severity) {
	fyne.Do(func() {
		p.Status.Importance = widget.SuccessImportance
		if sev == editor.SeverityError {
			p.Status.Importance = widget.DangerImportance
		}
		p.Status.SetText(msg)
	})
}

// GenerateJSON fills the output box with the current points.
func (p *Panel) GenerateJSON() {
	data, err := p.board.Editor().ExportJSON()
	if err != nil {
		log.Printf("[UI] Export failed: %v", err)
		p.SetStatus("Could not export points.", editor.SeverityError)
		return
	}
	p.Output.SetText(string(data))
}

// RedrawFromJSON starts an animated redraw from the input box.
func (p *Panel) RedrawFromJSON() {
	// the editor reports success or failure through the status label
	_ = p.board.Editor().ImportJSON([]byte(strings.TrimSpace(p.Input.Text)))
}

// StopRedraw cancels a running redraw, keeping the points drawn so far.
func (p *Panel) StopRedraw() {
	ed := p.board.Editor()
	if !ed.Redrawing() {
		return
	}
	ed.StopRedraw()
	p.SetStatus(fmt.Sprintf("Redraw stopped at %d points.", len(ed.Vertices())), editor.SeveritySuccess)
}

// ChooseBackground opens a file picker and loads the chosen image.
func (p *Panel) ChooseBackground() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.win)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		data, err := io.ReadAll(reader)
		if err != nil {
			log.Printf("[UI] Error reading %s: %v", reader.URI(), err)
			p.SetStatus("Error reading file", editor.SeverityError)
			return
		}
		p.board.Editor().LoadBackground(reader.URI().Name(), data, nil)
	}, p.win)
	fd.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	fd.Show()
}

// SaveSnapshot asks for a file and writes the current frame as PNG or PDF
// depending on pdf.
func (p *Panel) SaveSnapshot(pdf bool) {
	ext := ".png"
	if pdf {
		ext = ".pdf"
	}
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.win)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("[UI] Error closing writer: %v", err)
			}
		}()
		frame := p.board.Editor().Frame()
		size := p.board.size
		if pdf {
			err = export.WritePDF(writer, float64(size.Width), float64(size.Height), frame)
		} else {
			err = WritePNG(writer, frame, size)
		}
		if err != nil {
			log.Printf("[EXPORT] %v", err)
			p.SetStatus("Export failed", editor.SeverityError)
			return
		}
		p.SetStatus(fmt.Sprintf("Saved %s", writer.URI().Name()), editor.SeveritySuccess)
	}, p.win)
	fd.SetFileName("polygon" + ext)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	fd.Show()
}

// NewToolbar builds the action row above the canvas.
func NewToolbar(p *Panel) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.FileImageIcon(), p.ChooseBackground),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() { p.SaveSnapshot(false) }),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() { p.SaveSnapshot(true) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { p.board.Editor().Undo() }),
		widget.NewToolbarAction(theme.MediaStopIcon(), p.StopRedraw),
	)
	return container.NewHBox(
		widget.NewLabel("Click to add points, drag the last pin, Backspace to undo"),
		tb,
	)
}

// Content lays out the JSON boxes and buttons.
func (p *Panel) Content() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabel("Points as JSON"),
		p.Output,
		widget.NewButton("Generate Points JSON", p.GenerateJSON),
		widget.NewLabel("Paste Points JSON to Redraw"),
		p.Input,
		container.NewHBox(
			widget.NewButton("Redraw from JSON (Animated)", p.RedrawFromJSON),
			widget.NewButton("Stop Redraw", p.StopRedraw),
		),
		widget.NewButton("Upload Background Image", p.ChooseBackground),
		p.Status,
	)
}
