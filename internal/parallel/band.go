package parallel

// MinBandRows is the smallest band handed to a worker. Buffers shorter than
// two bands are processed on the calling goroutine.
const MinBandRows = 16

// Band is a half-open row range [Lo, Hi).
type Band struct {
	Lo, Hi int
}

// SplitRows divides rows into at most n contiguous bands of near-equal height,
// none shorter than MinBandRows unless rows itself is.
func SplitRows(rows, n int) []Band {
	if rows <= 0 {
		return nil
	}
	if maxBands := rows / MinBandRows; n > maxBands {
		n = maxBands
	}
	if n < 1 {
		n = 1
	}

	bands := make([]Band, 0, n)
	base, extra := rows/n, rows%n
	lo := 0
	for i := range n {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Band{Lo: lo, Hi: lo + h})
		lo += h
	}
	return bands
}

// Rows runs fn over every row of a buffer of the given height, split into
// bands across the pool, and returns when all bands are done. A nil pool or a
// single-worker pool runs fn(0, rows) inline.
func (p *WorkerPool) Rows(rows int, fn func(lo, hi int)) {
	if rows <= 0 {
		return
	}
	if p.Workers() <= 1 || !p.IsRunning() {
		fn(0, rows)
		return
	}

	bands := SplitRows(rows, p.Workers())
	if len(bands) == 1 {
		fn(0, rows)
		return
	}

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b.Lo, b.Hi) }
	}
	p.ExecuteAll(work)
}
