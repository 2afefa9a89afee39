package entity

import (
	"scene-editor/internal/visual"
)

// ID identifies a live entity. Ids are allocated monotonically per registry
// and never reused, even after delete. 0 is never a valid id.
type ID uint64

// Kind is the fixed entity kind, set at creation and immutable afterwards.
type Kind int

const (
	KindSphere Kind = iota
	KindCube
	KindLight
)

// String returns the wire/console name of the kind ("sphere", "cube", "light").
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindCube:
		return "cube"
	case KindLight:
		return "light"
	}
	return "unknown"
}

// KindFromName returns the kind for a console/wire name.
func KindFromName(name string) (Kind, bool) {
	switch name {
	case "sphere":
		return KindSphere, true
	case "cube":
		return KindCube, true
	case "light":
		return KindLight, true
	}
	return 0, false
}

// Entity is one authored scene object: the canonical, serialization-ready
// record plus the owned visual handle. Which fields are meaningful depends on
// Kind. Center is always a read-back of the visual handle's transform (the
// handle is the writer of record for position); every other field is canonical
// and pushed to the handle as a derived scale or tint.
type Entity struct {
	ID     ID
	Kind   Kind
	Visual *visual.Node

	Center [3]float32 // all kinds; light position
	Color  [3]float32 // sphere, cube
	Radius float32    // sphere
	Size   [3]float32 // cube, full extent per axis (min/max corners on the wire)

	Intensity    [3]float32 // light, components >= 0
	Direction    [3]float32 // light, advisory; round-tripped but unused by shading
	DirectionSet bool       // false until a direction is authored or imported
}
