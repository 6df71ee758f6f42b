// Package codec decodes uploaded images and encodes rendered buffers.
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Registered for image.Decode.
	_ "image/gif"

	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned for an export format that has no encoder.
var ErrUnsupportedFormat = errors.New("retouch: unsupported format")

// JPEGQuality is the quality used for JPEG export.
const JPEGQuality = 92

// Format is an export file format.
type Format uint8

// Export formats.
const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// Extension returns the usual file extension including the dot.
func (f Format) Extension() string {
	switch f {
	case JPEG:
		return ".jpg"
	case BMP:
		return ".bmp"
	case TIFF:
		return ".tiff"
	default:
		return ".png"
	}
}

// ParseFormat parses a format name such as "png" or "jpg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return PNG, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromName picks the format from a file name's extension.
// A name without an extension is PNG.
func FormatFromName(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return PNG, nil
	}
	return ParseFormat(ext)
}

// Decode reads an image and applies its EXIF orientation, if any.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}
	return img, nil
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", f, err)
	}
	return nil
}
