package geometry

import (
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/image/draw"
)

// Interpolation selects the resampler used when the mapping is not an exact
// pixel permutation.
type Interpolation uint8

const (
	// Bilinear is the default; close to a browser canvas with smoothing on.
	Bilinear Interpolation = iota
	// NearestNeighbor copies the closest source pixel.
	NearestNeighbor
	// ApproxBilinear is a faster, slightly lower quality bilinear.
	ApproxBilinear
	// CatmullRom is the sharpest and slowest option.
	CatmullRom
)

// String returns the flag spelling of the mode.
func (i Interpolation) String() string {
	switch i {
	case Bilinear:
		return "bilinear"
	case NearestNeighbor:
		return "nearest"
	case ApproxBilinear:
		return "approx-bilinear"
	case CatmullRom:
		return "catmull-rom"
	default:
		return "unknown"
	}
}

// ParseInterpolation parses the String form of a mode.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bilinear":
		return Bilinear, nil
	case "nearest":
		return NearestNeighbor, nil
	case "approx-bilinear":
		return ApproxBilinear, nil
	case "catmull-rom":
		return CatmullRom, nil
	}
	return Bilinear, fmt.Errorf("geometry: unknown interpolation %q", s)
}

func (i Interpolation) interpolator() draw.Interpolator {
	switch i {
	case NearestNeighbor:
		return draw.NearestNeighbor
	case ApproxBilinear:
		return draw.ApproxBiLinear
	case CatmullRom:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

// Rasterize clears dst to transparent and draws src into it under m, which
// maps source pixel space to dst pixel space. Pixels of dst that no source
// pixel lands on stay transparent.
//
// Quarter turns and flips without scaling copy pixels exactly; everything
// else is resampled with interp.
func Rasterize(dst, src *image.NRGBA, m Affine, interp Interpolation) {
	clear(dst.Pix)

	if p, ok := permutationOf(m); ok {
		p.copy(dst, src)
		return
	}

	interp.interpolator().Transform(dst, m.Aff3(), src, src.Bounds(), draw.Src, nil)
}

// permutation maps buffer pixel (x, y) to source pixel
// (x0 + ax*x + bx*y, y0 + ay*x + by*y).
type permutation struct {
	x0, ax, bx int
	y0, ay, by int
}

// permutationOf reports whether m sends pixel centres onto pixel centres with
// a unit linear part, and returns the inverse as integer offsets.
func permutationOf(m Affine) (permutation, bool) {
	inv, ok := m.Invert()
	if !ok {
		return permutation{}, false
	}

	var p permutation
	for _, v := range []struct {
		in  float64
		out *int
	}{
		{inv.a, &p.ax}, {inv.b, &p.bx}, {inv.d, &p.ay}, {inv.e, &p.by},
	} {
		n, ok := exactInt(v.in)
		if !ok || n < -1 || n > 1 {
			return permutation{}, false
		}
		*v.out = n
	}
	if p.ax*p.by-p.bx*p.ay == 0 {
		return permutation{}, false
	}

	// Centre of buffer pixel (0,0) in source space, shifted to an index.
	sx, sy := inv.TransformPoint(0.5, 0.5)
	x0, okX := exactInt(sx - 0.5)
	y0, okY := exactInt(sy - 0.5)
	if !okX || !okY {
		return permutation{}, false
	}
	p.x0, p.y0 = x0, y0
	return p, true
}

func (p permutation) copy(dst, src *image.NRGBA) {
	dw, dh := dst.Rect.Dx(), dst.Rect.Dy()
	sw, sh := src.Rect.Dx(), src.Rect.Dy()

	for y := range dh {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+dw*4]
		for x := range dw {
			sx := p.x0 + p.ax*x + p.bx*y
			sy := p.y0 + p.ay*x + p.by*y
			if sx < 0 || sx >= sw || sy < 0 || sy >= sh {
				continue
			}
			si := sy*src.Stride + sx*4
			copy(row[x*4:x*4+4], src.Pix[si:si+4])
		}
	}
}

// exactInt rounds v to an int if it is within rounding noise of one.
func exactInt(v float64) (int, bool) {
	r := math.Round(v)
	if math.Abs(v-r) > 1e-9 {
		return 0, false
	}
	return int(r), true
}
