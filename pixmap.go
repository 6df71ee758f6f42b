package retouch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/retouch/internal/codec"
)

// Pixmap is a rendered pixel buffer: width×height pixels of non-premultiplied
// 8-bit R, G, B, A, row-major with no padding.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// PixmapFromImage copies any image into a new pixmap.
func PixmapFromImage(img image.Image) *Pixmap {
	n := toNRGBA(img)
	return &Pixmap{width: n.Rect.Dx(), height: n.Rect.Dy(), data: n.Pix}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data. len(Data()) == Width()*Height()*4.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// PixelAt returns the channels of pixel (x, y), or zeros outside the pixmap.
func (p *Pixmap) PixelAt(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i], p.data[i+1], p.data[i+2], p.data[i+3]
}

// Clone returns a deep copy.
func (p *Pixmap) Clone() *Pixmap {
	return &Pixmap{width: p.width, height: p.height, data: bytes.Clone(p.data)}
}

// Equal reports whether both pixmaps have the same size and bytes.
func (p *Pixmap) Equal(other *Pixmap) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.width == other.width && p.height == other.height && bytes.Equal(p.data, other.data)
}

// ToImage returns a copy of the pixmap as an *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// Encode writes the pixmap to w in format f.
func (p *Pixmap) Encode(w io.Writer, f Format) error {
	if p == nil || len(p.data) != p.width*p.height*4 || len(p.data) == 0 {
		return ErrInvalidPixmap
	}
	return codec.Encode(w, p.view(), f)
}

// EncodePNG writes the pixmap to w as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return p.Encode(w, FormatPNG)
}

// Save writes the pixmap to path, picking the format from the extension.
func (p *Pixmap) Save(path string) error {
	f, err := FormatFromName(path)
	if err != nil {
		return err
	}

	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("retouch: create file: %w", err)
	}
	if err := p.Encode(out, f); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// view wraps the pixel data without copying.
func (p *Pixmap) view() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.PixelAt(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
