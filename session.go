package retouch

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/retouch/internal/cache"
	"github.com/gogpu/retouch/internal/parallel"
)

// geometryCacheSize is how many transformed frames a session keeps. Four
// covers every quarter turn of one image.
const geometryCacheSize = 4

// geometryKey identifies the output of the geometry stage. Display box and
// interpolation are fixed per session.
type geometryKey struct {
	src       *Source
	transform Transform
}

// Session is the state of one editor: the loaded image, the current filter
// parameters and the current transform. UI callbacks call its setters; the
// render entry points work on a consistent snapshot.
//
// Thread safety: Session is safe for concurrent use. Renders started
// concurrently each see the state at the moment they began.
type Session struct {
	source atomic.Pointer[Source]

	mu        sync.Mutex
	filters   FilterParams
	transform Transform

	revision atomic.Uint64

	// geometry holds geometry stage output so that filter changes only
	// rerun the colour and blur stages. Entries are never modified.
	geometry *cache.Cache[geometryKey, *image.NRGBA]

	opts    renderOptions
	pool    *parallel.WorkerPool
	release func()
}

// NewSession creates an empty session. opts apply to every render.
func NewSession(opts ...RenderOption) *Session {
	s := &Session{
		filters:  DefaultFilterParams(),
		geometry: cache.New[geometryKey, *image.NRGBA](geometryCacheSize),
		opts:     applyRenderOptions(opts),
	}
	s.pool, s.release = s.opts.pool()
	return s
}

// Close releases the session's workers. The session must not be rendered
// after Close.
func (s *Session) Close() {
	s.release()
}

// Load decodes r and makes it the session image, resetting filters and
// transform. On failure the previous image and settings are kept and the
// error wraps ErrInvalidImage.
func (s *Session) Load(r io.Reader) error {
	src, err := DecodeSource(r)
	if err != nil {
		Logger().Warn("retouch: upload rejected", "error", err)
		return err
	}
	s.Replace(src)
	return nil
}

// LoadBytes is Load for an in-memory upload.
func (s *Session) LoadBytes(data []byte) error {
	if len(data) == 0 {
		err := fmt.Errorf("%w: %w", ErrInvalidImage, ErrEmptyData)
		Logger().Warn("retouch: upload rejected", "error", err)
		return err
	}
	return s.Load(bytes.NewReader(data))
}

// Replace swaps in an already decoded source and resets filters and
// transform. A nil src is the same as Clear.
func (s *Session) Replace(src *Source) {
	s.mu.Lock()
	s.source.Store(src)
	s.filters = DefaultFilterParams()
	s.transform = Transform{}
	s.revision.Add(1)
	s.geometry.Clear()
	s.mu.Unlock()

	if src != nil {
		Logger().Info("retouch: image loaded", "width", src.Width(), "height", src.Height())
	}
}

// Clear drops the image. Filters and transform are reset.
func (s *Session) Clear() {
	s.Replace(nil)
}

// HasImage reports whether an image is loaded.
func (s *Session) HasImage() bool {
	return s.source.Load() != nil
}

// Source returns the loaded image, or nil.
func (s *Session) Source() *Source {
	return s.source.Load()
}

// Filters returns the current parameters.
func (s *Session) Filters() FilterParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetFilter sets one parameter, clamped to its range.
func (s *Session) SetFilter(k FilterKind, v float64) {
	s.update(func() { s.filters = s.filters.With(k, v) })
}

// SetFilters replaces all parameters, clamped to their ranges.
func (s *Session) SetFilters(p FilterParams) {
	s.update(func() { s.filters = p.Clamped() })
}

// Transform returns the current transform.
func (s *Session) Transform() Transform {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transform
}

// SetTransform replaces the transform.
func (s *Session) SetTransform(t Transform) {
	s.update(func() { s.transform = t })
}

// RotateLeft turns the image a quarter counter-clockwise.
func (s *Session) RotateLeft() {
	s.update(func() { s.transform = s.transform.RotateLeft() })
}

// RotateRight turns the image a quarter clockwise.
func (s *Session) RotateRight() {
	s.update(func() { s.transform = s.transform.RotateRight() })
}

// ToggleFlipH toggles the horizontal flip.
func (s *Session) ToggleFlipH() {
	s.update(func() { s.transform = s.transform.ToggleFlipH() })
}

// ToggleFlipV toggles the vertical flip.
func (s *Session) ToggleFlipV() {
	s.update(func() { s.transform = s.transform.ToggleFlipV() })
}

// Reset restores default filters and the identity transform. The image is
// kept.
func (s *Session) Reset() {
	s.update(func() {
		s.filters = DefaultFilterParams()
		s.transform = Transform{}
	})
}

// Preset returns the current settings as a preset.
func (s *Session) Preset() Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Preset{Filters: s.filters, Transform: s.transform}
}

// ApplyPreset replaces filters and transform with those of p.
func (s *Session) ApplyPreset(p Preset) {
	s.update(func() {
		s.filters = p.Filters.Clamped()
		s.transform = p.Transform
	})
}

// Revision increases on every change of image, filters or transform.
// A UI can compare it against the revision a render started from and drop
// stale results.
func (s *Session) Revision() uint64 {
	return s.revision.Load()
}

func (s *Session) update(fn func()) {
	s.mu.Lock()
	fn()
	s.revision.Add(1)
	s.mu.Unlock()
}

// snapshot returns a consistent view of the session.
func (s *Session) snapshot() (*Source, FilterParams, Transform, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source.Load(), s.filters, s.transform, s.revision.Load()
}

// Render renders the current state. It returns ErrNoImage when nothing is
// loaded.
func (s *Session) Render() (*Pixmap, error) {
	pm, _, err := s.RenderRevision()
	return pm, err
}

// RenderRevision is Render that also reports the revision it rendered.
func (s *Session) RenderRevision() (*Pixmap, uint64, error) {
	start := time.Now()
	src, p, t, rev := s.snapshot()
	if src == nil {
		return nil, rev, ErrNoImage
	}

	geo := s.geometryStage(src, t)
	buf := &image.NRGBA{Pix: bytes.Clone(geo.Pix), Stride: geo.Stride, Rect: geo.Rect}
	return filterStages(buf, p, t, s.pool, start), rev, nil
}

// geometryStage returns the cached geometry stage output for src and t,
// computing it on a miss. The result must not be modified. Output for a
// source that was replaced while it was computed is not cached.
func (s *Session) geometryStage(src *Source, t Transform) *image.NRGBA {
	key := geometryKey{src: src, transform: t.Normalized()}
	if geo, ok := s.geometry.Get(key); ok {
		return geo
	}
	geo := geometryStage(src, t, s.opts)

	s.mu.Lock()
	if s.source.Load() == src {
		s.geometry.Set(key, geo)
	}
	s.mu.Unlock()
	return geo
}

// Export renders the current state and writes it to w in format f.
func (s *Session) Export(w io.Writer, f Format) error {
	pm, err := s.Render()
	if err != nil {
		return err
	}
	if err := pm.Encode(w, f); err != nil {
		Logger().Warn("retouch: export failed", "format", f, "error", err)
		return fmt.Errorf("retouch: export: %w", err)
	}
	return nil
}

// ExportPNG renders the current state and returns it as PNG bytes.
func (s *Session) ExportPNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Export(&buf, FormatPNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
