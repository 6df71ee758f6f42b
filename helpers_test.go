package retouch

import (
	"bytes"
	"image"
	"image/png"
	"math/rand/v2"
	"testing"
)

// Test helper functions shared across package tests.

// randomImage creates an opaque w×h image of reproducible noise.
func randomImage(w, h int, seed uint64) *image.NRGBA {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		if i%4 == 3 {
			img.Pix[i] = 255
			continue
		}
		img.Pix[i] = uint8(rng.IntN(256))
	}
	return img
}

// randomSource wraps randomImage in a Source.
func randomSource(t testing.TB, w, h int, seed uint64) *Source {
	t.Helper()
	src, err := NewSource(randomImage(w, h, seed))
	if err != nil {
		t.Fatalf("NewSource() error: %v", err)
	}
	return src
}

// encodePNG encodes img as PNG bytes.
func encodePNG(t testing.TB, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error: %v", err)
	}
	return buf.Bytes()
}

// assertPixmapEqual fails the test if got and want differ.
func assertPixmapEqual(t *testing.T, got, want *Pixmap) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	g, w := got.Data(), want.Data()
	for i := range w {
		if g[i] != w[i] {
			t.Fatalf("byte %d (pixel %d, channel %d) = %d, want %d", i, i/4, i%4, g[i], w[i])
		}
	}
}
