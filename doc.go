// Package retouch is the pixel pipeline of a simple photo editor.
//
// # Overview
//
// A photo is decoded once into an immutable [Source]. Every edit is a pure
// function of that source, a [FilterParams] value and a [Transform]: the
// output is re-derived from the original on every change, so repeated edits
// never accumulate rounding drift.
//
// # Quick Start
//
//	src, err := retouch.DecodeSource(f)
//	if err != nil {
//		return err // wraps retouch.ErrInvalidImage
//	}
//
//	p := retouch.DefaultFilterParams()
//	p.Contrast = 130
//	p.Blur = 1.5
//
//	t := retouch.Transform{}.RotateRight()
//
//	pm := retouch.Render(src, p, t)
//	err = pm.Save("edited-image.png")
//
// # Pipeline
//
// [Render] runs three stages in a fixed order:
//   - geometry: fit the source into the display box (800×600 by default)
//     and rasterize it rotated about the buffer centre, then flipped
//   - colour: brightness, contrast, saturation, grayscale, sepia, invert,
//     applied per pixel in that order
//   - blur: a clipped box blur of radius floor(Blur), only when non-zero
//
// # Sessions
//
// [Session] holds the state an editor UI works on: the loaded source, the
// current parameters and transform. UI callbacks mutate it; [Session.Render]
// and [Session.Export] produce output from a consistent snapshot. A session
// keeps the last few geometry stage results, so moving a filter slider only
// reruns the colour and blur stages.
//
// # Logging
//
// retouch is silent by default. Call [SetLogger] to receive debug records
// for each render and warnings for rejected uploads.
package retouch
