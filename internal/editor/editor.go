// Package editor ties the entity registry and camera state together as the
// context object every operation works against: import/export, console
// command handlers, and the numeric-edit entry points.
package editor

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"scene-editor/internal/document"
	"scene-editor/internal/entity"
)

// Editor is the per-session context: the registry (sole owner of entities),
// the canonical camera state used on export, and the current document path.
type Editor struct {
	Reg       *entity.Registry
	Camera    document.Camera
	ScenePath string

	// cameraDirty is set when an import replaced the camera state, so the
	// viewport repositions its navigable camera once.
	cameraDirty bool
}

// New returns an editor over the given registry with the default camera and
// document path.
func New(reg *entity.Registry) *Editor {
	return &Editor{
		Reg:       reg,
		Camera:    document.DefaultCamera(),
		ScenePath: "scene.json",
	}
}

// Export snapshots the current registry and camera into a scene document.
func (ed *Editor) Export() *document.Scene {
	return document.Encode(ed.Reg, ed.Camera)
}

// ExportFile writes the current scene document to path.
func (ed *Editor) ExportFile(path string) error {
	data, err := document.Marshal(ed.Export())
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Import decodes a scene document and, only if decoding succeeded, replaces
// the registry contents and camera state with it. A failed import leaves the
// prior scene fully intact. The selection is cleared after a successful
// import.
func (ed *Editor) Import(data []byte) error {
	s, err := document.Decode(data)
	if err != nil {
		return err
	}
	ed.apply(s)
	return nil
}

// ImportFile reads and imports the document at path.
func (ed *Editor) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return ed.Import(data)
}

// apply replaces the registry with the decoded scene. All writes go through
// the registry's mutation set so visual handles stay consistent with the
// imported canonical data.
func (ed *Editor) apply(s *document.Scene) {
	reg := ed.Reg
	reg.Clear()
	for _, o := range s.Objects {
		switch o.Type {
		case "sphere":
			e := reg.Create(entity.KindSphere)
			reg.SetCenter(e, document.Vec32(*o.Center))
			reg.SetRadius(e, float32(*o.Radius))
			reg.SetColor(e, document.Vec32(o.Color))
		case "cube":
			center, size := document.CubeCenterSize(*o.Min, *o.Max)
			e := reg.Create(entity.KindCube)
			reg.SetCenter(e, center)
			for axis := entity.AxisX; axis <= entity.AxisZ; axis++ {
				reg.SetSize(e, axis, size[axis])
			}
			reg.SetColor(e, document.Vec32(o.Color))
		}
	}
	for _, l := range s.Lights {
		e := reg.Create(entity.KindLight)
		reg.SetCenter(e, document.Vec32(l.Position))
		reg.SetIntensity(e, document.Vec32(l.Intensity))
		if l.Direction != nil {
			reg.SetDirection(e, document.Vec32(*l.Direction))
		} else {
			// Lights without a direction on the wire stay without one,
			// so re-export reproduces the document.
			e.Direction = [3]float32{}
			e.DirectionSet = false
		}
	}
	reg.Select(0)
	ed.Camera = s.Camera
	ed.cameraDirty = true
}

// CameraReset reports whether an import replaced the camera since the last
// call and clears the flag. The viewport polls this once per frame.
func (ed *Editor) CameraReset() bool {
	dirty := ed.cameraDirty
	ed.cameraDirty = false
	return dirty
}

// ParseComponent parses a numeric field edit. Input that does not parse as a
// finite number is rejected so NaN or infinity is never applied to an entity.
func ParseComponent(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return float32(v), nil
}
