package retouch

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewSource(t *testing.T) {
	img := randomImage(9, 4, 1)
	src, err := NewSource(img)
	if err != nil {
		t.Fatalf("NewSource() error: %v", err)
	}
	if src.Width() != 9 || src.Height() != 4 {
		t.Errorf("size = %dx%d, want 9x4", src.Width(), src.Height())
	}
	if src.Bounds() != image.Rect(0, 0, 9, 4) {
		t.Errorf("Bounds() = %v", src.Bounds())
	}

	// The source owns its pixels.
	img.Pix[0] ^= 0xff
	if src.Image().Pix[0] == img.Pix[0] {
		t.Error("Source shares memory with the input image")
	}
	cp := src.Image()
	cp.Pix[1] ^= 0xff
	if src.Image().Pix[1] == cp.Pix[1] {
		t.Error("Image() returned shared memory")
	}
}

func TestNewSourceInvalid(t *testing.T) {
	for _, img := range []image.Image{nil, image.NewNRGBA(image.Rect(0, 0, 0, 5))} {
		if _, err := NewSource(img); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("NewSource(%v) error = %v, want ErrInvalidImage", img, err)
		}
	}
}

func TestNewSourceConvertsColorModel(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(1, 0, color.Gray{Y: 77})

	src, err := NewSource(gray)
	if err != nil {
		t.Fatal(err)
	}
	got := src.Image().NRGBAAt(1, 0)
	if want := (color.NRGBA{R: 77, G: 77, B: 77, A: 255}); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestDecodeSourceBytes(t *testing.T) {
	img := randomImage(5, 5, 2)
	src, err := DecodeSourceBytes(encodePNG(t, img))
	if err != nil {
		t.Fatalf("DecodeSourceBytes() error: %v", err)
	}
	assertPixmapEqual(t, PixmapFromImage(src.Image()), PixmapFromImage(img))

	if _, err := DecodeSourceBytes(nil); !errors.Is(err, ErrEmptyData) || !errors.Is(err, ErrInvalidImage) {
		t.Errorf("DecodeSourceBytes(nil) error = %v, want ErrInvalidImage and ErrEmptyData", err)
	}
	if _, err := DecodeSourceBytes([]byte{0x89, 'P', 'N', 'G'}); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("DecodeSourceBytes(truncated) error = %v, want ErrInvalidImage", err)
	}
}
