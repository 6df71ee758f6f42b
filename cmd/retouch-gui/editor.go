package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/retouch"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// editor wires a Session to the window. Widget fields are only touched on
// the UI goroutine; renders run on a background goroutine.
type editor struct {
	session *retouch.Session
	win     fyne.Window

	preview *canvas.Image
	status  *widget.Label
	sliders [len(retouch.FilterKinds)]*widget.Slider
	values  [len(retouch.FilterKinds)]*widget.Label
	save    *widget.Button

	// syncing suppresses slider callbacks while controls follow the session.
	syncing bool

	requests  chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newEditor(w fyne.Window, s *retouch.Session) *editor {
	e := &editor{
		session:  s,
		win:      w,
		requests: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}

	e.preview = canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	e.preview.FillMode = canvas.ImageFillContain
	e.preview.ScaleMode = canvas.ImageScaleSmooth
	e.preview.SetMinSize(fyne.NewSize(retouch.DefaultMaxWidth/2, retouch.DefaultMaxHeight/2))
	e.status = widget.NewLabel("Open or drop an image to start")

	w.SetContent(container.NewBorder(
		e.toolbar(), e.status, nil, e.controls(),
		container.NewPadded(e.preview),
	))
	w.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) > 0 {
			e.loadURI(uris[0])
		}
	})

	go e.renderLoop()
	e.syncControls()
	return e
}

// Close stops the render goroutine and releases the session. Render
// requests made afterwards are ignored.
func (e *editor) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
		e.session.Close()
	})
}

func (e *editor) toolbar() fyne.CanvasObject {
	open := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), e.showOpen)
	e.save = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), e.showSave)
	return container.NewHBox(open, e.save)
}

func (e *editor) controls() fyne.CanvasObject {
	form := container.NewVBox()
	for i, k := range retouch.FilterKinds {
		r := k.Range()
		s := widget.NewSlider(r.Min, r.Max)
		s.Step = r.Step
		s.Value = r.Default
		s.OnChanged = func(v float64) {
			e.values[i].SetText(formatValue(k, v))
			if e.syncing {
				return
			}
			e.session.SetFilter(k, v)
			e.requestRender()
		}
		e.sliders[i] = s
		e.values[i] = widget.NewLabel(formatValue(k, r.Default))

		form.Add(container.NewBorder(nil, nil, widget.NewLabel(sliderLabel(k)), e.values[i]))
		form.Add(s)
	}

	edit := func(fn func()) func() {
		return func() {
			fn()
			e.syncStatus()
			e.requestRender()
		}
	}
	transform := container.NewGridWithColumns(2,
		widget.NewButtonWithIcon("Rotate Left", theme.ContentUndoIcon(), edit(e.session.RotateLeft)),
		widget.NewButtonWithIcon("Rotate Right", theme.ContentRedoIcon(), edit(e.session.RotateRight)),
		widget.NewButton("Flip Horizontal", edit(e.session.ToggleFlipH)),
		widget.NewButton("Flip Vertical", edit(e.session.ToggleFlipV)),
	)
	reset := widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() {
		e.session.Reset()
		e.syncControls()
		e.requestRender()
	})

	panel := container.NewVBox(
		widget.NewCard("Adjustments", "", form),
		widget.NewCard("Transform", "", transform),
		reset,
	)
	return container.NewVScroll(panel)
}

var title = cases.Title(language.English)

func sliderLabel(k retouch.FilterKind) string {
	return title.String(k.String())
}

func formatValue(k retouch.FilterKind, v float64) string {
	if k == retouch.Blur {
		return fmt.Sprintf("%.1f px", v)
	}
	return fmt.Sprintf("%.0f%%", v)
}

// syncControls moves every slider to the session's values.
func (e *editor) syncControls() {
	p := e.session.Filters()
	e.syncing = true
	for i, k := range retouch.FilterKinds {
		e.sliders[i].SetValue(p.Get(k))
		e.values[i].SetText(formatValue(k, p.Get(k)))
	}
	e.syncing = false
	e.syncStatus()
}

func (e *editor) syncStatus() {
	if e.session.HasImage() {
		e.save.Enable()
	} else {
		e.save.Disable()
	}
}

// requestRender asks the render goroutine for a new frame. Requests made
// while one is pending collapse into it.
func (e *editor) requestRender() {
	select {
	case <-e.done:
		return
	default:
	}
	select {
	case e.requests <- struct{}{}:
	default:
	}
}

func (e *editor) renderLoop() {
	for {
		select {
		case <-e.done:
			return
		case <-e.requests:
		}

		pm, rev, err := e.session.RenderRevision()
		if errors.Is(err, retouch.ErrNoImage) {
			continue
		}
		img := pm.ToImage()
		t := e.session.Transform().Normalized()
		status := fmt.Sprintf("%d×%d, rotated %d°", pm.Width(), pm.Height(), t.Rotation)
		if t.FlipH {
			status += ", flipped horizontally"
		}
		if t.FlipV {
			status += ", flipped vertically"
		}

		fyne.Do(func() {
			// A newer edit has its own request queued.
			if rev != e.session.Revision() {
				return
			}
			e.preview.Image = img
			e.preview.Refresh()
			e.status.SetText(status)
		})
	}
}

func (e *editor) showOpen() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, e.win)
			return
		}
		if r == nil {
			return
		}
		go e.load(r)
	}, e.win)
	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	d.Show()
}

func (e *editor) loadURI(u fyne.URI) {
	r, err := storage.Reader(u)
	if err != nil {
		dialog.ShowError(err, e.win)
		return
	}
	go e.load(r)
}

func (e *editor) loadFile(path string) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		dialog.ShowError(err, e.win)
		return
	}
	go func() {
		defer f.Close()
		e.finishLoad(filepath.Base(path), e.session.Load(f))
	}()
}

func (e *editor) load(r fyne.URIReadCloser) {
	defer r.Close()
	data, err := io.ReadAll(r)
	if err == nil {
		err = e.session.LoadBytes(data)
	}
	e.finishLoad(r.URI().Name(), err)
}

// finishLoad reports the outcome of a load. A failed load leaves the
// previous image on screen.
func (e *editor) finishLoad(name string, err error) {
	fyne.Do(func() {
		if err != nil {
			dialog.ShowError(fmt.Errorf("could not open %s: %w", name, err), e.win)
			return
		}
		e.win.SetTitle("Retouch - " + name)
		e.syncControls()
		e.requestRender()
	})
}

func (e *editor) showSave() {
	if !e.session.HasImage() {
		dialog.ShowInformation("No Image", "Please open an image first", e.win)
		return
	}

	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, e.win)
			return
		}
		if w == nil {
			return
		}
		go e.export(w)
	}, e.win)
	d.SetFileName(retouch.DefaultExportName)
	d.Show()
}

func (e *editor) export(w fyne.URIWriteCloser) {
	f, err := retouch.FormatFromName(w.URI().Name())
	if err != nil {
		f = retouch.FormatPNG
	}
	err = e.session.Export(w, f)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fyne.Do(func() { dialog.ShowError(err, e.win) })
	}
}
