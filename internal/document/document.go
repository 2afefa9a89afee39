// Package document is the only place the scene interchange schema is produced
// or consumed. The exported JSON is what the offline renderer reads; field
// names and shapes are load-bearing.
package document

// Camera is the camera block of a scene document: pose, vertical field of view
// in degrees, and output image size in pixels.
type Camera struct {
	Position [3]float64 `json:"position"`
	LookAt   [3]float64 `json:"look_at"`
	Up       [3]float64 `json:"up"`
	Fov      float64    `json:"fov"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
}

// DefaultCamera returns the camera for a fresh editing session: the free
// camera's home pose with a render-friendly output size.
func DefaultCamera() Camera {
	return Camera{
		Position: [3]float64{10, 10, 10},
		LookAt:   [3]float64{0, 0, 0},
		Up:       [3]float64{0, 1, 0},
		Fov:      45,
		Width:    800,
		Height:   600,
	}
}

// Object is one geometry record. Spheres carry center/radius, cubes carry
// min/max corners; the unused fields are omitted from the wire form.
type Object struct {
	Type   string      `json:"type"`
	Center *[3]float64 `json:"center,omitempty"`
	Radius *float64    `json:"radius,omitempty"`
	Min    *[3]float64 `json:"min,omitempty"`
	Max    *[3]float64 `json:"max,omitempty"`
	Color  [3]float64  `json:"color"`
}

// Light is one point light record. Direction is advisory and omitted when it
// was never authored, so documents without it round-trip unchanged.
type Light struct {
	Type      string      `json:"type"`
	Position  [3]float64  `json:"position"`
	Intensity [3]float64  `json:"intensity"`
	Direction *[3]float64 `json:"direction,omitempty"`
}

// Scene is a complete scene document. Object and light lists are in insertion
// order on export; order carries no meaning on import.
type Scene struct {
	Camera  Camera   `json:"camera"`
	Objects []Object `json:"objects"`
	Lights  []Light  `json:"lights"`
}
