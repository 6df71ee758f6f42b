package retouch

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/gogpu/retouch/internal/filter"
)

// FilterKind names one adjustable parameter. The colour kinds are listed in
// the order they are applied.
type FilterKind uint8

// Adjustable parameters.
const (
	Brightness FilterKind = iota
	Contrast
	Saturation
	Grayscale
	Sepia
	Invert
	Blur
)

// FilterKinds lists every parameter, colour steps first in application order.
var FilterKinds = [...]FilterKind{Brightness, Contrast, Saturation, Grayscale, Sepia, Invert, Blur}

// String returns the lower-case parameter name.
func (k FilterKind) String() string {
	if k == Blur {
		return "blur"
	}
	if int(k) < filter.NumKinds {
		return filter.Kind(k).String()
	}
	return "unknown"
}

// ParseFilterKind parses the String form of a kind.
func ParseFilterKind(s string) (FilterKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range FilterKinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("retouch: unknown filter %q", s)
}

// Range is the accepted domain of one parameter.
type Range struct {
	Min, Max, Step, Default float64
}

var ranges = [...]Range{
	Brightness: {Min: 0, Max: 200, Step: 1, Default: 100},
	Contrast:   {Min: 0, Max: 200, Step: 1, Default: 100},
	Saturation: {Min: 0, Max: 200, Step: 1, Default: 100},
	Grayscale:  {Min: 0, Max: 100, Step: 1, Default: 0},
	Sepia:      {Min: 0, Max: 100, Step: 1, Default: 0},
	Invert:     {Min: 0, Max: 100, Step: 1, Default: 0},
	Blur:       {Min: 0, Max: 10, Step: 0.1, Default: 0},
}

// Range returns the domain of k.
func (k FilterKind) Range() Range {
	if int(k) >= len(ranges) {
		return Range{}
	}
	return ranges[k]
}

// Clamp limits v to the domain of k. NaN becomes the default value.
func (k FilterKind) Clamp(v float64) float64 {
	r := k.Range()
	if math.IsNaN(v) {
		return r.Default
	}
	return lo.Clamp(v, r.Min, r.Max)
}

// FilterParams holds the seven adjustable parameters. Brightness, Contrast,
// Saturation, Grayscale, Sepia and Invert are percentages; Blur is a radius
// in pixels.
type FilterParams struct {
	Brightness float64 `toml:"brightness" yaml:"brightness"`
	Contrast   float64 `toml:"contrast" yaml:"contrast"`
	Saturation float64 `toml:"saturation" yaml:"saturation"`
	Grayscale  float64 `toml:"grayscale" yaml:"grayscale"`
	Sepia      float64 `toml:"sepia" yaml:"sepia"`
	Invert     float64 `toml:"invert" yaml:"invert"`
	Blur       float64 `toml:"blur" yaml:"blur"`
}

// DefaultFilterParams returns the parameters that leave an image unchanged.
func DefaultFilterParams() FilterParams {
	var p FilterParams
	for _, k := range FilterKinds {
		*p.field(k) = k.Range().Default
	}
	return p
}

func (p *FilterParams) field(k FilterKind) *float64 {
	switch k {
	case Brightness:
		return &p.Brightness
	case Contrast:
		return &p.Contrast
	case Saturation:
		return &p.Saturation
	case Grayscale:
		return &p.Grayscale
	case Sepia:
		return &p.Sepia
	case Invert:
		return &p.Invert
	case Blur:
		return &p.Blur
	}
	return nil
}

// Get returns the value of k, or 0 for an unknown kind.
func (p FilterParams) Get(k FilterKind) float64 {
	if f := p.field(k); f != nil {
		return *f
	}
	return 0
}

// With returns a copy of p with k set to v, clamped to its range.
func (p FilterParams) With(k FilterKind, v float64) FilterParams {
	if f := p.field(k); f != nil {
		*f = k.Clamp(v)
	}
	return p
}

// Clamped returns p with every field limited to its range.
func (p FilterParams) Clamped() FilterParams {
	for _, k := range FilterKinds {
		f := p.field(k)
		*f = k.Clamp(*f)
	}
	return p
}

// IsDefault reports whether p equals DefaultFilterParams after clamping.
func (p FilterParams) IsDefault() bool {
	return p.Clamped() == DefaultFilterParams()
}

// BlurRadius returns the integer blur radius: the clamped Blur, floored.
// Values below 1 disable the blur.
func (p FilterParams) BlurRadius() int {
	return int(math.Floor(Blur.Clamp(p.Blur)))
}

// colorValues returns the colour-step parameters in application order.
func (p FilterParams) colorValues() filter.Values {
	var v filter.Values
	for _, s := range filter.Steps {
		v[s.Kind] = FilterKind(s.Kind).Clamp(p.Get(FilterKind(s.Kind)))
	}
	return v
}
