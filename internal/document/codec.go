package document

import (
	"encoding/json"
	"errors"
	"fmt"

	"scene-editor/internal/entity"
)

// ErrMalformedDocument is wrapped by every decode failure: text that is not
// valid JSON, a missing camera block, or a record missing a required field.
// Decode never partially succeeds, so a caller that imports only after a nil
// error keeps the prior scene intact on failure.
var ErrMalformedDocument = errors.New("malformed scene document")

// Raw decode targets. Required fields are pointers so "absent" is
// distinguishable from a present zero value.
type rawScene struct {
	Camera  *rawCamera  `json:"camera"`
	Objects []rawObject `json:"objects"`
	Lights  []rawLight  `json:"lights"`
}

type rawCamera struct {
	Position *[3]float64 `json:"position"`
	LookAt   *[3]float64 `json:"look_at"`
	Up       *[3]float64 `json:"up"`
	Fov      *float64    `json:"fov"`
	Width    *int        `json:"width"`
	Height   *int        `json:"height"`
}

type rawObject struct {
	Type   string      `json:"type"`
	Center *[3]float64 `json:"center"`
	Radius *float64    `json:"radius"`
	Min    *[3]float64 `json:"min"`
	Max    *[3]float64 `json:"max"`
	Color  *[3]float64 `json:"color"`
}

type rawLight struct {
	Type      string      `json:"type"`
	Position  *[3]float64 `json:"position"`
	Intensity *[3]float64 `json:"intensity"`
	Direction *[3]float64 `json:"direction"`
}

// Defaults applied to missing optional fields, matching what the offline
// renderer assumes.
var (
	defaultUp        = [3]float64{0, 1, 0}
	defaultColor     = [3]float64{1, 1, 1}
	defaultIntensity = [3]float64{1, 1, 1}
)

const (
	defaultFov    = 60.0
	defaultWidth  = 320
	defaultHeight = 240
)

// Decode parses a scene document into its normalized form: optional fields
// take their defaults, records with an unknown type tag are silently skipped
// (forward compatibility), and records of a known type missing a required
// field fail with ErrMalformedDocument. Decode is pure; it never touches a
// registry.
func Decode(data []byte) (*Scene, error) {
	var raw rawScene
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if raw.Camera == nil {
		return nil, fmt.Errorf("%w: missing camera", ErrMalformedDocument)
	}
	if raw.Camera.Position == nil {
		return nil, fmt.Errorf("%w: camera missing position", ErrMalformedDocument)
	}
	if raw.Camera.LookAt == nil {
		return nil, fmt.Errorf("%w: camera missing look_at", ErrMalformedDocument)
	}

	s := &Scene{
		Camera: Camera{
			Position: *raw.Camera.Position,
			LookAt:   *raw.Camera.LookAt,
			Up:       defaultUp,
			Fov:      defaultFov,
			Width:    defaultWidth,
			Height:   defaultHeight,
		},
	}
	if raw.Camera.Up != nil {
		s.Camera.Up = *raw.Camera.Up
	}
	if raw.Camera.Fov != nil {
		s.Camera.Fov = *raw.Camera.Fov
	}
	if raw.Camera.Width != nil {
		if *raw.Camera.Width <= 0 {
			return nil, fmt.Errorf("%w: camera width must be positive", ErrMalformedDocument)
		}
		s.Camera.Width = *raw.Camera.Width
	}
	if raw.Camera.Height != nil {
		if *raw.Camera.Height <= 0 {
			return nil, fmt.Errorf("%w: camera height must be positive", ErrMalformedDocument)
		}
		s.Camera.Height = *raw.Camera.Height
	}

	for i, o := range raw.Objects {
		obj, ok, err := decodeObject(o)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		if ok {
			s.Objects = append(s.Objects, obj)
		}
	}
	for i, l := range raw.Lights {
		light, ok, err := decodeLight(l)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		if ok {
			s.Lights = append(s.Lights, light)
		}
	}
	return s, nil
}

// decodeObject normalizes one object record. ok is false for unknown types.
func decodeObject(o rawObject) (Object, bool, error) {
	color := defaultColor
	if o.Color != nil {
		color = *o.Color
	}
	switch o.Type {
	case "sphere":
		if o.Center == nil {
			return Object{}, false, fmt.Errorf("%w: sphere missing center", ErrMalformedDocument)
		}
		if o.Radius == nil {
			return Object{}, false, fmt.Errorf("%w: sphere missing radius", ErrMalformedDocument)
		}
		return Object{Type: "sphere", Center: o.Center, Radius: o.Radius, Color: color}, true, nil
	case "cube":
		if o.Min == nil || o.Max == nil {
			return Object{}, false, fmt.Errorf("%w: cube missing min/max", ErrMalformedDocument)
		}
		return Object{Type: "cube", Min: o.Min, Max: o.Max, Color: color}, true, nil
	default:
		return Object{}, false, nil
	}
}

// decodeLight normalizes one light record. ok is false for unknown types.
func decodeLight(l rawLight) (Light, bool, error) {
	if l.Type != "point" {
		return Light{}, false, nil
	}
	if l.Position == nil {
		return Light{}, false, fmt.Errorf("%w: point light missing position", ErrMalformedDocument)
	}
	intensity := defaultIntensity
	if l.Intensity != nil {
		intensity = *l.Intensity
	}
	return Light{Type: "point", Position: *l.Position, Intensity: intensity, Direction: l.Direction}, true, nil
}

// Encode snapshots the registry's canonical data and the camera state into a
// scene document. Pure and deterministic: same registry contents and camera in,
// same document out. Colors are clamped to [0,1] and intensities floored at 0
// at this boundary.
func Encode(reg *entity.Registry, cam Camera) *Scene {
	s := &Scene{Camera: cam}
	for e := range reg.All() {
		switch e.Kind {
		case entity.KindSphere:
			center := vec64(e.Center)
			radius := float64(e.Radius)
			s.Objects = append(s.Objects, Object{
				Type:   "sphere",
				Center: &center,
				Radius: &radius,
				Color:  clamp01(vec64(e.Color)),
			})
		case entity.KindCube:
			min, max := cubeCorners(e.Center, e.Size)
			s.Objects = append(s.Objects, Object{
				Type:  "cube",
				Min:   &min,
				Max:   &max,
				Color: clamp01(vec64(e.Color)),
			})
		case entity.KindLight:
			l := Light{
				Type:      "point",
				Position:  vec64(e.Center),
				Intensity: floor0(vec64(e.Intensity)),
			}
			if e.DirectionSet {
				dir := vec64(e.Direction)
				l.Direction = &dir
			}
			s.Lights = append(s.Lights, l)
		}
	}
	return s
}

// Marshal renders a scene document as indented JSON.
func Marshal(s *Scene) ([]byte, error) {
	return json.MarshalIndent(s, "", "\t")
}

// CubeCenterSize converts wire min/max corners to the editor's center + full
// size form. The two forms are lossless inverses of each other.
func CubeCenterSize(min, max [3]float64) (center, size [3]float32) {
	for i := 0; i < 3; i++ {
		center[i] = float32((min[i] + max[i]) / 2)
		size[i] = float32(max[i] - min[i])
	}
	return center, size
}

// cubeCorners converts center + full size back to wire min/max corners.
func cubeCorners(center, size [3]float32) (min, max [3]float64) {
	for i := 0; i < 3; i++ {
		half := float64(size[i]) / 2
		min[i] = float64(center[i]) - half
		max[i] = float64(center[i]) + half
	}
	return min, max
}

func vec64(v [3]float32) [3]float64 {
	return [3]float64{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Vec32 narrows a wire vector to the editor's float32 form.
func Vec32(v [3]float64) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

func clamp01(v [3]float64) [3]float64 {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0
		}
		if v[i] > 1 {
			v[i] = 1
		}
	}
	return v
}

func floor0(v [3]float64) [3]float64 {
	for i := range v {
		if v[i] < 0 {
			v[i] = 0
		}
	}
	return v
}
