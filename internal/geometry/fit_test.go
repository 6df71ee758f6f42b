package geometry

import (
	"math"
	"testing"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"fits", 640, 480, MaxWidth, MaxHeight, 640, 480},
		{"exact box", 800, 600, MaxWidth, MaxHeight, 800, 600},
		{"wide", 1600, 900, MaxWidth, MaxHeight, 800, 450},
		{"tall", 900, 1600, MaxWidth, MaxHeight, 337, 600},
		{"only width exceeds", 1000, 100, MaxWidth, MaxHeight, 800, 80},
		{"only height exceeds", 100, 1200, MaxWidth, MaxHeight, 50, 600},
		{"both exceed, height binds", 1000, 1000, MaxWidth, MaxHeight, 600, 600},
		{"extreme panorama", 100000, 10, MaxWidth, MaxHeight, 800, 1},
		{"extreme strip", 3, 90000, MaxWidth, MaxHeight, 1, 600},
		{"unbounded width", 5000, 300, 0, MaxHeight, 5000, 300},
		{"empty", 0, 10, MaxWidth, MaxHeight, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitSize(tt.w, tt.h, tt.maxW, tt.maxH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("FitSize(%d, %d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.w, tt.h, tt.maxW, tt.maxH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitSizeKeepsAspect(t *testing.T) {
	sizes := [][2]int{{1600, 900}, {4032, 3024}, {3000, 4000}, {1234, 567}, {801, 601}}
	for _, s := range sizes {
		w, h := FitSize(s[0], s[1], MaxWidth, MaxHeight)
		if w > MaxWidth || h > MaxHeight {
			t.Errorf("FitSize(%v) = %dx%d exceeds the box", s, w, h)
		}
		if w != MaxWidth && h != MaxHeight {
			t.Errorf("FitSize(%v) = %dx%d touches neither bound", s, w, h)
		}
		// Flooring loses at most one pixel on the derived side.
		want := float64(s[0]) / float64(s[1])
		lo := float64(w) / float64(h+1)
		hi := float64(w+1) / float64(h)
		if want < lo || want > hi || math.IsNaN(want) {
			t.Errorf("FitSize(%v) = %dx%d, aspect %.4f outside [%.4f, %.4f]", s, w, h, want, lo, hi)
		}
	}
}
