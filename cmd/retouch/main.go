// Command retouch edits images from the command line.
//
// Usage:
//
//	retouch render photo.jpg -o edited.png --brightness 120 --rotate 90
//	retouch render photo.jpg --preset look.toml --watch
//	retouch preset --sepia 80 --flip-h -o look.toml
//
// Every render is shrunk to fit the display box (800×600 unless
// --max-width/--max-height say otherwise), then rotated, flipped, colour
// adjusted and blurred.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/retouch"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "retouch",
		Short:        "Adjust, rotate and flip images",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			retouch.SetLogger(logger)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log loads and renders to stderr")

	root.AddCommand(newRenderCmd(), newPresetCmd())
	return root
}
