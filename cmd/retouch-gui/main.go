// Command retouch-gui is a desktop image editor: open an image, adjust it
// with sliders, rotate or flip it and save the result.
package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"

	"github.com/gogpu/retouch"
)

const appID = "io.github.gogpu.retouch"

func main() {
	debug := pflag.Bool("debug", false, "log every render to stderr")
	workers := pflag.Int("workers", 0, "render goroutines, 0 for one per CPU")
	pflag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	retouch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	a := app.NewWithID(appID)
	w := a.NewWindow("Retouch")
	w.Resize(fyne.NewSize(1100, 720))

	ed := newEditor(w, retouch.NewSession(retouch.WithWorkers(*workers)))
	defer ed.Close()

	if path := pflag.Arg(0); path != "" {
		ed.loadFile(path)
	}
	w.ShowAndRun()
}
