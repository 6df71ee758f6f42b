package filter

import "math/rand/v2"

// Test helper functions shared across filter tests.

// newBuffer creates a w×h RGBA buffer filled with one colour.
func newBuffer(w, h int, r, g, b, a uint8) []uint8 {
	data := make([]uint8, w*h*4)
	for i := 0; i < len(data); i += 4 {
		data[i] = r
		data[i+1] = g
		data[i+2] = b
		data[i+3] = a
	}
	return data
}

// randomBuffer creates a w×h RGBA buffer of reproducible noise.
func randomBuffer(w, h int, seed uint64) []uint8 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make([]uint8, w*h*4)
	for i := range data {
		data[i] = uint8(rng.IntN(256))
	}
	return data
}

// naiveBoxBlur is the direct two-dimensional form of BoxBlur.
func naiveBoxBlur(src []uint8, w, h, radius int) []uint8 {
	dst := make([]uint8, len(src))
	for y := range h {
		for x := range w {
			var r, g, b, n int32
			for ky := -radius; ky <= radius; ky++ {
				for kx := -radius; kx <= radius; kx++ {
					nx, ny := x+kx, y+ky
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					i := (ny*w + nx) * 4
					r += int32(src[i])
					g += int32(src[i+1])
					b += int32(src[i+2])
					n++
				}
			}
			i := (y*w + x) * 4
			dst[i] = roundDiv(r, n)
			dst[i+1] = roundDiv(g, n)
			dst[i+2] = roundDiv(b, n)
			dst[i+3] = src[i+3]
		}
	}
	return dst
}

// firstDiff returns the index of the first differing byte, or -1.
func firstDiff(a, b []uint8) int {
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
