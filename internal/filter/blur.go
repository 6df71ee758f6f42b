package filter

import (
	"sync"

	"github.com/gogpu/retouch/internal/parallel"
)

// sumPool holds scratch buffers for the horizontal pass.
var sumPool = sync.Pool{
	New: func() any { return new([]int32) },
}

func getSums(n int) *[]int32 {
	p := sumPool.Get().(*[]int32)
	if cap(*p) < n {
		*p = make([]int32, n)
	}
	*p = (*p)[:n]
	return p
}

// BoxBlur returns src blurred with an unweighted (2*radius+1)² box.
//
// The window is clipped at the buffer edges and the divisor is the number of
// pixels actually inside it. Alpha is copied from src. With radius <= 0 src
// itself is returned.
//
// The sum is computed in two integer passes (horizontal window sums, then a
// vertical sum over those), which gives exactly the same totals as the direct
// two-dimensional loop.
func BoxBlur(src []uint8, width, height, radius int, pool *parallel.WorkerPool) []uint8 {
	if radius <= 0 || width <= 0 || height <= 0 {
		return src
	}

	scratch := getSums(width * height * 3)
	defer sumPool.Put(scratch)
	hsum := *scratch

	pool.Rows(height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			horizontalSums(src[y*width*4:(y+1)*width*4], hsum[y*width*3:(y+1)*width*3], width, radius)
		}
	})

	dst := make([]uint8, len(src))
	pool.Rows(height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			y0 := max(y-radius, 0)
			y1 := min(y+radius, height-1)
			rows := int32(y1 - y0 + 1)

			for x := range width {
				x0 := max(x-radius, 0)
				x1 := min(x+radius, width-1)
				count := rows * int32(x1-x0+1)

				var r, g, b int32
				for yy := y0; yy <= y1; yy++ {
					k := (yy*width + x) * 3
					r += hsum[k]
					g += hsum[k+1]
					b += hsum[k+2]
				}

				i := (y*width + x) * 4
				dst[i] = roundDiv(r, count)
				dst[i+1] = roundDiv(g, count)
				dst[i+2] = roundDiv(b, count)
				dst[i+3] = src[i+3]
			}
		}
	})

	return dst
}

// horizontalSums writes, for every pixel of row, the R, G and B sums over the
// clipped window [x-radius, x+radius].
func horizontalSums(row []uint8, out []int32, width, radius int) {
	var r, g, b int32
	for x := 0; x <= radius && x < width; x++ {
		r += int32(row[x*4])
		g += int32(row[x*4+1])
		b += int32(row[x*4+2])
	}

	for x := range width {
		k := x * 3
		out[k] = r
		out[k+1] = g
		out[k+2] = b

		if in := x + radius + 1; in < width {
			r += int32(row[in*4])
			g += int32(row[in*4+1])
			b += int32(row[in*4+2])
		}
		if gone := x - radius; gone >= 0 {
			r -= int32(row[gone*4])
			g -= int32(row[gone*4+1])
			b -= int32(row[gone*4+2])
		}
	}
}

// roundDiv returns sum/count rounded half to even.
func roundDiv(sum, count int32) uint8 {
	q, rem := sum/count, sum%count
	if 2*rem > count || (2*rem == count && q&1 == 1) {
		q++
	}
	return uint8(q)
}
