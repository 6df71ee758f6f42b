package retouch

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"golang.org/x/image/draw"

	"github.com/gogpu/retouch/internal/codec"
)

// Source is a decoded upload. It is never modified after creation; every
// render reads from it.
type Source struct {
	img *image.NRGBA
}

// NewSource copies img into a new Source.
func NewSource(img image.Image) (*Source, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty bounds", ErrInvalidImage)
	}
	return &Source{img: toNRGBA(img)}, nil
}

// DecodeSource decodes an image from r. PNG, JPEG, GIF, BMP, TIFF and WebP
// are accepted; an EXIF orientation tag is applied. Errors wrap
// ErrInvalidImage.
func DecodeSource(r io.Reader) (*Source, error) {
	img, err := codec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return NewSource(img)
}

// DecodeSourceBytes is DecodeSource for an in-memory upload.
func DecodeSourceBytes(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, ErrEmptyData)
	}
	return DecodeSource(bytes.NewReader(data))
}

// Width returns the natural width of the image.
func (s *Source) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the natural height of the image.
func (s *Source) Height() int {
	return s.img.Rect.Dy()
}

// Bounds returns the natural bounds, anchored at the origin.
func (s *Source) Bounds() image.Rectangle {
	return s.img.Rect
}

// Image returns a copy of the decoded pixels.
func (s *Source) Image() *image.NRGBA {
	return toNRGBA(s.img)
}

// toNRGBA copies img into a new origin-anchored, tightly packed NRGBA image.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst
}
