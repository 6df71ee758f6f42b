package retouch

import (
	"image"
	"time"

	"github.com/gogpu/retouch/internal/filter"
	"github.com/gogpu/retouch/internal/geometry"
	"github.com/gogpu/retouch/internal/parallel"
)

// Display box used when no WithMaxSize option is given.
const (
	DefaultMaxWidth  = geometry.MaxWidth
	DefaultMaxHeight = geometry.MaxHeight
)

// Interpolation selects how the source is resampled when it is scaled or
// rotated by something other than a quarter turn.
type Interpolation = geometry.Interpolation

// Interpolation modes.
const (
	InterpBilinear       = geometry.Bilinear
	InterpNearest        = geometry.NearestNeighbor
	InterpApproxBilinear = geometry.ApproxBilinear
	InterpCatmullRom     = geometry.CatmullRom
)

// ParseInterpolation parses "bilinear", "nearest", "approx-bilinear" or
// "catmull-rom".
func ParseInterpolation(s string) (Interpolation, error) {
	return geometry.ParseInterpolation(s)
}

// RenderOption configures Render and NewSession.
//
// Example:
//
//	pm := retouch.Render(src, p, t,
//		retouch.WithMaxSize(1920, 1080),
//		retouch.WithInterpolation(retouch.InterpCatmullRom))
type RenderOption func(*renderOptions)

type renderOptions struct {
	maxWidth  int
	maxHeight int
	interp    Interpolation
	workers   int
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		maxWidth:  DefaultMaxWidth,
		maxHeight: DefaultMaxHeight,
		interp:    InterpBilinear,
	}
}

func applyRenderOptions(opts []RenderOption) renderOptions {
	o := defaultRenderOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithMaxSize sets the display box the image is shrunk to fit.
// A bound <= 0 leaves that side unconstrained.
func WithMaxSize(width, height int) RenderOption {
	return func(o *renderOptions) {
		o.maxWidth = width
		o.maxHeight = height
	}
}

// WithInterpolation sets the resampler.
func WithInterpolation(i Interpolation) RenderOption {
	return func(o *renderOptions) {
		o.interp = i
	}
}

// WithWorkers sets how many goroutines the colour and blur stages use.
// 1 keeps rendering on the calling goroutine; 0 (the default) shares a
// process-wide pool sized to GOMAXPROCS. Output does not depend on it.
func WithWorkers(n int) RenderOption {
	return func(o *renderOptions) {
		o.workers = n
	}
}

// pool returns the worker pool for o and a function releasing it.
func (o renderOptions) pool() (*parallel.WorkerPool, func()) {
	switch {
	case o.workers == 1:
		return nil, func() {}
	case o.workers <= 0:
		return parallel.Default(), func() {}
	default:
		p := parallel.NewWorkerPool(o.workers)
		return p, p.Close
	}
}

// Render produces the edited image for src. It is a pure function of its
// arguments: identical inputs give byte-identical output. Out-of-range
// parameters are clamped. A nil src yields nil.
func Render(src *Source, p FilterParams, t Transform, opts ...RenderOption) *Pixmap {
	if src == nil {
		return nil
	}
	o := applyRenderOptions(opts)
	pool, release := o.pool()
	defer release()
	return render(src, p, t, o, pool)
}

func render(src *Source, p FilterParams, t Transform, o renderOptions, pool *parallel.WorkerPool) *Pixmap {
	start := time.Now()
	return filterStages(geometryStage(src, t, o), p, t, pool, start)
}

// geometryStage fits src into the display box and applies t. Areas not
// covered by the source are transparent.
func geometryStage(src *Source, t Transform, o renderOptions) *image.NRGBA {
	w, h := geometry.FitSize(src.Width(), src.Height(), o.maxWidth, o.maxHeight)
	buf := image.NewNRGBA(image.Rect(0, 0, w, h))
	geometry.Rasterize(buf, src.img, t.matrix(src.Width(), src.Height(), w, h), o.interp)
	return buf
}

// filterStages runs the colour chain and the blur over buf, which it takes
// ownership of.
func filterStages(buf *image.NRGBA, p FilterParams, t Transform, pool *parallel.WorkerPool, start time.Time) *Pixmap {
	p = p.Clamped()
	w, h := buf.Rect.Dx(), buf.Rect.Dy()

	filter.ApplyColor(buf.Pix, w, h, p.colorValues(), pool)

	data := buf.Pix
	radius := p.BlurRadius()
	if radius > 0 {
		data = filter.BoxBlur(data, w, h, radius, pool)
	}

	Logger().Debug("retouch: render",
		"width", w,
		"height", h,
		"rotation", t.Normalized().Rotation,
		"blur_radius", radius,
		"workers", pool.Workers(),
		"elapsed", time.Since(start))

	return &Pixmap{width: w, height: h, data: data}
}
