package retouch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Preset is a saved set of edit settings. It stores parameters only, never
// pixels.
//
// TOML form:
//
//	[filters]
//	brightness = 110
//	contrast = 120
//	blur = 1.5
//
//	[transform]
//	rotation = 90
//	flip_horizontal = true
type Preset struct {
	Filters   FilterParams `toml:"filters" yaml:"filters"`
	Transform Transform    `toml:"transform" yaml:"transform"`
}

// DefaultPreset returns default filters and the identity transform.
func DefaultPreset() Preset {
	return Preset{Filters: DefaultFilterParams()}
}

// PresetFormat is the file format of a preset.
type PresetFormat uint8

// Preset formats.
const (
	PresetTOML PresetFormat = iota
	PresetYAML
)

// String returns the format name.
func (f PresetFormat) String() string {
	switch f {
	case PresetTOML:
		return "toml"
	case PresetYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// PresetFormatFromName picks the preset format from a file extension:
// .toml, .yaml or .yml.
func PresetFormatFromName(name string) (PresetFormat, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return PresetTOML, nil
	case ".yaml", ".yml":
		return PresetYAML, nil
	}
	return 0, fmt.Errorf("%w: preset %q", ErrUnsupportedFormat, name)
}

// ParsePreset decodes a preset. Keys that are absent keep their default
// value; unknown keys are an error. Values are clamped to their ranges.
func ParsePreset(data []byte, f PresetFormat) (Preset, error) {
	p := DefaultPreset()

	switch f {
	case PresetTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return Preset{}, fmt.Errorf("retouch: preset: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Preset{}, fmt.Errorf("retouch: preset: unknown keys %s", strings.Join(keys, ", "))
		}
	case PresetYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return Preset{}, fmt.Errorf("retouch: preset: %w", err)
		}
	default:
		return Preset{}, fmt.Errorf("%w: preset format %d", ErrUnsupportedFormat, f)
	}

	p.Filters = p.Filters.Clamped()
	return p, nil
}

// LoadPreset reads a preset file; the format comes from its extension.
func LoadPreset(path string) (Preset, error) {
	f, err := PresetFormatFromName(path)
	if err != nil {
		return Preset{}, err
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Preset{}, fmt.Errorf("retouch: preset: %w", err)
	}
	return ParsePreset(data, f)
}

// Encode writes p to w.
func (p Preset) Encode(w io.Writer, f PresetFormat) error {
	switch f {
	case PresetTOML:
		if err := toml.NewEncoder(w).Encode(p); err != nil {
			return fmt.Errorf("retouch: preset: %w", err)
		}
		return nil
	case PresetYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("retouch: preset: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: preset format %d", ErrUnsupportedFormat, f)
}

// Save writes p to path; the format comes from its extension.
func (p Preset) Save(path string) error {
	f, err := PresetFormatFromName(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := p.Encode(&buf, f); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("retouch: preset: %w", err)
	}
	return nil
}
