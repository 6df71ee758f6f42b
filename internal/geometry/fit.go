package geometry

// Default display box.
const (
	MaxWidth  = 800
	MaxHeight = 600
)

// FitSize returns the largest size with the aspect ratio of w×h that fits in
// maxW×maxH, using a single scale factor min(maxW/w, maxH/h, 1). Images that
// already fit keep their natural size. A bound <= 0 leaves that side
// unconstrained. Each returned side is at least 1.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if maxW <= 0 {
		maxW = w
	}
	if maxH <= 0 {
		maxH = h
	}
	if w <= maxW && h <= maxH {
		return w, h
	}

	// maxW/w <= maxH/h without division.
	if int64(maxW)*int64(h) <= int64(maxH)*int64(w) {
		return maxW, max(int(int64(h)*int64(maxW)/int64(w)), 1)
	}
	return max(int(int64(w)*int64(maxH)/int64(h)), 1), maxH
}
