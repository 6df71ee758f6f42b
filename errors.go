package retouch

import (
	"errors"

	"github.com/gogpu/retouch/internal/codec"
)

var (
	// ErrInvalidImage is returned when uploaded data cannot be decoded.
	// A session keeps its previous image when this happens.
	ErrInvalidImage = errors.New("retouch: invalid image")

	// ErrEmptyData is returned together with ErrInvalidImage for empty input.
	ErrEmptyData = errors.New("retouch: empty image data")

	// ErrNoImage is returned by Session.Render and Session.Export before an
	// image has been loaded.
	ErrNoImage = errors.New("retouch: no image loaded")

	// ErrInvalidPixmap is returned when encoding a nil or empty pixmap, or
	// one whose data does not match its size.
	ErrInvalidPixmap = errors.New("retouch: invalid pixmap")

	// ErrUnsupportedFormat is returned for unknown export or preset formats.
	ErrUnsupportedFormat = codec.ErrUnsupportedFormat
)
