package retouch

import "testing"

func TestTransformRotate(t *testing.T) {
	tr := Transform{}
	tr = tr.RotateRight().RotateRight().RotateRight()
	if tr.Rotation != 270 {
		t.Errorf("Rotation = %d, want 270", tr.Rotation)
	}
	tr = tr.RotateLeft()
	if tr.Rotation != 180 {
		t.Errorf("Rotation = %d, want 180", tr.Rotation)
	}

	// Accumulates without wrapping.
	left := Transform{}
	for range 5 {
		left = left.RotateLeft()
	}
	if left.Rotation != -450 {
		t.Errorf("Rotation = %d, want -450", left.Rotation)
	}
	if got := left.Normalized().Rotation; got != 270 {
		t.Errorf("Normalized().Rotation = %d, want 270", got)
	}
}

func TestTransformToggleFlip(t *testing.T) {
	tr := Transform{}.ToggleFlipH()
	if !tr.FlipH || tr.FlipV {
		t.Errorf("after ToggleFlipH = %+v", tr)
	}
	tr = tr.ToggleFlipV().ToggleFlipH()
	if tr.FlipH || !tr.FlipV {
		t.Errorf("after ToggleFlipV, ToggleFlipH = %+v", tr)
	}
}

func TestTransformIsIdentity(t *testing.T) {
	tests := []struct {
		tr   Transform
		want bool
	}{
		{Transform{}, true},
		{Transform{Rotation: 360}, true},
		{Transform{Rotation: -720}, true},
		{Transform{Rotation: 90}, false},
		{Transform{FlipH: true}, false},
		{Transform{}.ToggleFlipV().ToggleFlipV(), true},
	}
	for _, tt := range tests {
		if got := tt.tr.IsIdentity(); got != tt.want {
			t.Errorf("%+v.IsIdentity() = %v, want %v", tt.tr, got, tt.want)
		}
	}
}
