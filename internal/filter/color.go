package filter

import (
	"math"

	"github.com/gogpu/retouch/internal/parallel"
)

// Kind identifies one colour step.
type Kind uint8

// Colour steps in application order.
const (
	Brightness Kind = iota
	Contrast
	Saturation
	Grayscale
	Sepia
	Invert

	// NumKinds is the number of colour steps.
	NumKinds = int(Invert) + 1
)

// String returns the lower-case step name.
func (k Kind) String() string {
	switch k {
	case Brightness:
		return "brightness"
	case Contrast:
		return "contrast"
	case Saturation:
		return "saturation"
	case Grayscale:
		return "grayscale"
	case Sepia:
		return "sepia"
	case Invert:
		return "invert"
	default:
		return "unknown"
	}
}

// Values holds one parameter per Kind, in percent.
type Values [NumKinds]float64

// stepFunc maps the current channel values through one step.
// f is the parameter divided by 100.
type stepFunc func(r, g, b, f float64) (float64, float64, float64)

// Step is one entry of the colour chain.
type Step struct {
	Kind Kind

	// Identity is the parameter value at which the step leaves every pixel
	// unchanged.
	Identity float64

	apply stepFunc
}

// Steps is the colour chain. Each step reads the output of the previous one;
// the order is part of the output format.
var Steps = [NumKinds]Step{
	{Kind: Brightness, Identity: 100, apply: brightness},
	{Kind: Contrast, Identity: 100, apply: contrast},
	{Kind: Saturation, Identity: 100, apply: saturation},
	{Kind: Grayscale, Identity: 0, apply: grayscale},
	{Kind: Sepia, Identity: 0, apply: sepia},
	{Kind: Invert, Identity: 0, apply: invert},
}

// IdentityValues returns the parameter set that leaves every pixel unchanged.
func IdentityValues() Values {
	var v Values
	for _, s := range Steps {
		v[s.Kind] = s.Identity
	}
	return v
}

func brightness(r, g, b, f float64) (float64, float64, float64) {
	return r * f, g * f, b * f
}

func contrast(r, g, b, f float64) (float64, float64, float64) {
	intercept := 128 * (1 - f)
	return r*f + intercept, g*f + intercept, b*f + intercept
}

func saturation(r, g, b, f float64) (float64, float64, float64) {
	const (
		lumR = 0.3086
		lumG = 0.6094
		lumB = 0.0820
	)
	gray := lumR*r + lumG*g + lumB*b
	inv := 1 - f
	return gray*inv + r*f, gray*inv + g*f, gray*inv + b*f
}

func grayscale(r, g, b, f float64) (float64, float64, float64) {
	gray := r*0.299 + g*0.587 + b*0.114
	inv := 1 - f
	return r*inv + gray*f, g*inv + gray*f, b*inv + gray*f
}

func sepia(r, g, b, f float64) (float64, float64, float64) {
	sr := r*0.393 + g*0.769 + b*0.189
	sg := r*0.349 + g*0.686 + b*0.168
	sb := r*0.272 + g*0.534 + b*0.131
	inv := 1 - f
	return r*inv + sr*f, g*inv + sg*f, b*inv + sb*f
}

func invert(r, g, b, f float64) (float64, float64, float64) {
	inv := 1 - f
	return r*inv + (255-r)*f, g*inv + (255-g)*f, b*inv + (255-b)*f
}

// boundStep is a step with its factor resolved.
type boundStep struct {
	apply stepFunc
	f     float64
}

// chain returns the non-identity steps of v in application order.
func chain(v Values) []boundStep {
	out := make([]boundStep, 0, NumKinds)
	for _, s := range Steps {
		value := v[s.Kind]
		if value == s.Identity {
			continue
		}
		out = append(out, boundStep{apply: s.apply, f: value / 100})
	}
	return out
}

// ApplyPixel runs the colour chain on a single pixel.
func ApplyPixel(r, g, b uint8, v Values) (uint8, uint8, uint8) {
	fr, fg, fb := float64(r), float64(g), float64(b)
	for _, s := range chain(v) {
		fr, fg, fb = s.apply(fr, fg, fb, s.f)
	}
	return toByte(fr), toByte(fg), toByte(fb)
}

// ApplyColor runs the colour chain over every pixel of data in place.
// Alpha is never touched.
func ApplyColor(data []uint8, width, height int, v Values, pool *parallel.WorkerPool) {
	steps := chain(v)
	if len(steps) == 0 || width <= 0 || height <= 0 {
		return
	}

	stride := width * 4
	pool.Rows(height, func(lo, hi int) {
		px := data[lo*stride : hi*stride]
		for i := 0; i < len(px); i += 4 {
			r, g, b := float64(px[i]), float64(px[i+1]), float64(px[i+2])
			for _, s := range steps {
				r, g, b = s.apply(r, g, b, s.f)
			}
			px[i] = toByte(r)
			px[i+1] = toByte(g)
			px[i+2] = toByte(b)
		}
	})
}

// toByte clamps v to [0, 255] and rounds half to even.
func toByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}
