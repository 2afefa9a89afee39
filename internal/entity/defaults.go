package entity

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults is the YAML definition for a kind's default canonical data
// (e.g. assets/primitives/sphere.yaml). Zero fields fall back to the
// compiled-in values, so partial files are fine.
type Defaults struct {
	Center    [3]float32 `yaml:"center,omitempty"`
	Radius    float32    `yaml:"radius,omitempty"`
	Size      [3]float32 `yaml:"size,omitempty"`
	Color     [3]float32 `yaml:"color,omitempty"`
	Intensity [3]float32 `yaml:"intensity,omitempty"`
	Direction [3]float32 `yaml:"direction,omitempty"`
}

// BuiltinDefaults returns the compiled-in per-kind defaults: a unit-radius
// sphere resting above the grid, a unit cube on the grid, and a point light
// overhead pointing down.
func BuiltinDefaults() map[Kind]Defaults {
	return map[Kind]Defaults{
		KindSphere: {
			Center: [3]float32{0, 1, 0},
			Radius: 1,
			Color:  [3]float32{0.7, 0.7, 0.7},
		},
		KindCube: {
			Center: [3]float32{0, 0.5, 0},
			Size:   [3]float32{1, 1, 1},
			Color:  [3]float32{0.7, 0.7, 0.7},
		},
		KindLight: {
			Center:    [3]float32{0, 4, 0},
			Intensity: [3]float32{1, 1, 1},
			Direction: [3]float32{0, -1, 0},
		},
	}
}

// LoadDefaults reads per-kind default files (<dir>/sphere.yaml etc.) over the
// builtin defaults. Missing or invalid files leave the builtin values for that
// kind; LoadDefaults itself never fails.
func LoadDefaults(dir string) map[Kind]Defaults {
	out := BuiltinDefaults()
	for _, k := range []Kind{KindSphere, KindCube, KindLight} {
		data, err := os.ReadFile(filepath.Join(dir, k.String()+".yaml"))
		if err != nil {
			continue
		}
		// Unmarshal over a copy of the current defaults so a file can
		// override just one field.
		d := out[k]
		if err := yaml.Unmarshal(data, &d); err != nil {
			continue
		}
		out[k] = d
	}
	return out
}
