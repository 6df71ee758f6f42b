package retouch

import "github.com/gogpu/retouch/internal/geometry"

// Transform is the geometric part of an edit. Rotation is in degrees,
// clockwise on screen, and accumulates without wrapping; only its value
// modulo 360 matters. Flips are applied after the rotation.
type Transform struct {
	Rotation int  `toml:"rotation" yaml:"rotation"`
	FlipH    bool `toml:"flip_horizontal" yaml:"flip_horizontal"`
	FlipV    bool `toml:"flip_vertical" yaml:"flip_vertical"`
}

// RotateLeft returns t turned a quarter counter-clockwise.
func (t Transform) RotateLeft() Transform {
	t.Rotation -= 90
	return t
}

// RotateRight returns t turned a quarter clockwise.
func (t Transform) RotateRight() Transform {
	t.Rotation += 90
	return t
}

// ToggleFlipH returns t with the horizontal flip toggled.
func (t Transform) ToggleFlipH() Transform {
	t.FlipH = !t.FlipH
	return t
}

// ToggleFlipV returns t with the vertical flip toggled.
func (t Transform) ToggleFlipV() Transform {
	t.FlipV = !t.FlipV
	return t
}

// Normalized returns t with Rotation in [0, 360).
func (t Transform) Normalized() Transform {
	t.Rotation = geometry.NormalizeDegrees(t.Rotation)
	return t
}

// IsIdentity reports whether t leaves the image unchanged.
func (t Transform) IsIdentity() bool {
	return t.Normalized() == Transform{}
}

// matrix maps source pixels into a dstW×dstH buffer.
func (t Transform) matrix(srcW, srcH, dstW, dstH int) geometry.Affine {
	return geometry.Matrix(srcW, srcH, dstW, dstH, t.Rotation, t.FlipH, t.FlipV)
}
