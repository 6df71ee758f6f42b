package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/retouch"
)

type renderFlags struct {
	edit      editFlags
	output    string
	format    string
	maxWidth  int
	maxHeight int
	interp    string
	workers   int
	watch     bool
}

func newRenderCmd() *cobra.Command {
	f := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render INPUT",
		Short: "Render an edited copy of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, args[0])
		},
	}

	fs := cmd.Flags()
	f.edit.register(fs)
	fs.StringVarP(&f.output, "output", "o", retouch.DefaultExportName, "output file")
	fs.StringVar(&f.format, "format", "", "output format: png, jpeg, bmp or tiff (default from the output name)")
	fs.IntVar(&f.maxWidth, "max-width", retouch.DefaultMaxWidth, "display box width, 0 for unbounded")
	fs.IntVar(&f.maxHeight, "max-height", retouch.DefaultMaxHeight, "display box height, 0 for unbounded")
	fs.StringVar(&f.interp, "interp", retouch.InterpBilinear.String(), "resampler: bilinear, nearest, approx-bilinear or catmull-rom")
	fs.IntVar(&f.workers, "workers", 0, "worker goroutines, 0 for one per CPU")
	fs.BoolVarP(&f.watch, "watch", "w", false, "render again whenever the input or preset file changes")
	return cmd
}

func (f *renderFlags) run(cmd *cobra.Command, input string) error {
	interp, err := retouch.ParseInterpolation(f.interp)
	if err != nil {
		return err
	}
	format, err := f.outputFormat()
	if err != nil {
		return err
	}

	s := retouch.NewSession(
		retouch.WithMaxSize(f.maxWidth, f.maxHeight),
		retouch.WithInterpolation(interp),
		retouch.WithWorkers(f.workers),
	)
	defer s.Close()

	job := &renderJob{
		session: s,
		input:   input,
		output:  f.output,
		format:  format,
		edit:    &f.edit,
		flags:   cmd.Flags(),
		out:     cmd.OutOrStdout(),
	}
	if err := job.run(); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}

	paths := []string{input}
	if f.edit.preset != "" {
		paths = append(paths, f.edit.preset)
	}
	w, err := newWatcher(paths...)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Fprintf(job.out, "watching %s, press Ctrl+C to stop\n", strings.Join(paths, ", "))
	return w.run(ctx, job.run)
}

func (f *renderFlags) outputFormat() (retouch.Format, error) {
	if f.format != "" {
		return retouch.ParseFormat(f.format)
	}
	return retouch.FormatFromName(f.output)
}

// renderJob loads the input, applies the edit flags and writes the output.
type renderJob struct {
	session *retouch.Session
	input   string
	output  string
	format  retouch.Format
	edit    *editFlags
	flags   *pflag.FlagSet
	out     io.Writer
}

func (j *renderJob) run() error {
	data, err := os.ReadFile(filepath.Clean(j.input))
	if err != nil {
		return err
	}
	if err := j.session.LoadBytes(data); err != nil {
		return fmt.Errorf("%s: %w", j.input, err)
	}

	p, err := j.edit.build(j.flags)
	if err != nil {
		return err
	}
	j.session.ApplyPreset(p)

	pm, err := j.session.Render()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := pm.Encode(&buf, j.format); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(j.output), buf.Bytes(), 0o644); err != nil {
		return err
	}

	printer := message.NewPrinter(language.English)
	printer.Fprintf(j.out, "%s: %d×%d %s, %d bytes\n", j.output, pm.Width(), pm.Height(), j.format, buf.Len())
	return nil
}
