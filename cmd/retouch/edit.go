package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/gogpu/retouch"
)

// editFlags are the edit settings shared by render and preset.
type editFlags struct {
	values [len(retouch.FilterKinds)]float64
	rotate int
	flipH  bool
	flipV  bool
	preset string
}

func (e *editFlags) register(fs *pflag.FlagSet) {
	for i, k := range retouch.FilterKinds {
		r := k.Range()
		fs.Float64Var(&e.values[i], k.String(), r.Default, fmt.Sprintf("%s, %g to %g", k, r.Min, r.Max))
	}
	fs.IntVar(&e.rotate, "rotate", 0, "clockwise rotation in degrees")
	fs.BoolVar(&e.flipH, "flip-h", false, "mirror left to right")
	fs.BoolVar(&e.flipV, "flip-v", false, "mirror top to bottom")
	fs.StringVar(&e.preset, "preset", "", "start from a TOML or YAML preset file")
}

// build returns the --preset file, or the defaults, with every flag the user
// set explicitly layered on top. The preset file is read on every call.
func (e *editFlags) build(fs *pflag.FlagSet) (retouch.Preset, error) {
	p := retouch.DefaultPreset()
	if e.preset != "" {
		var err error
		if p, err = retouch.LoadPreset(e.preset); err != nil {
			return retouch.Preset{}, err
		}
	}

	for i, k := range retouch.FilterKinds {
		if fs.Changed(k.String()) {
			p.Filters = p.Filters.With(k, e.values[i])
		}
	}
	if fs.Changed("rotate") {
		p.Transform.Rotation = e.rotate
	}
	if fs.Changed("flip-h") {
		p.Transform.FlipH = e.flipH
	}
	if fs.Changed("flip-v") {
		p.Transform.FlipV = e.flipV
	}
	return p, nil
}
