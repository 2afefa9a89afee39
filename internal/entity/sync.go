package entity

import (
	"github.com/chewxy/math32"
)

// Axis selects a component of a 3-vector for single-field edits.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// MinDimension is the floor for radius and cube sizes, so a bad edit can make
// an object small but never degenerate or invisible.
const MinDimension = 0.1

// The methods in this file are the one choke point for mutating an entity's
// geometric or appearance state, keeping the canonical record and the visual
// handle consistent. Position has one writer of record: the visual handle's
// transform (the gizmo drags it directly), so numeric position edits write
// through the handle and the canonical center is then re-derived from it.
// Every other property has the canonical record as writer of record and pushes
// a derived scale or tint into the handle. Non-finite values are discarded,
// leaving the prior state untouched.

// SetPosition writes one coordinate through the visual handle's transform and
// re-derives the canonical center from it.
func (r *Registry) SetPosition(e *Entity, axis Axis, v float32) {
	if e == nil || !finite(v) {
		return
	}
	p := e.Visual.Position
	p[axis] = v
	e.Visual.MoveTo(p)
	r.readBack(e)
}

// SetCenter writes a full position through the visual handle's transform and
// re-derives the canonical center. Used by document import.
func (r *Registry) SetCenter(e *Entity, p [3]float32) {
	if e == nil || !finiteVec(p) {
		return
	}
	e.Visual.MoveTo(p)
	r.readBack(e)
}

// CommitDrag re-reads the visual handle's transform into the canonical record
// after a gizmo drag gesture completes. The gizmo mutates the handle directly
// while dragging; this is where the canonical side catches up.
func (r *Registry) CommitDrag(e *Entity) {
	if e == nil {
		return
	}
	r.readBack(e)
}

// readBack derives the canonical center from the visual handle's transform,
// the only direction position ever flows into canonical data.
func (r *Registry) readBack(e *Entity) {
	e.Center = e.Visual.Position
}

// SetRadius sets a sphere's radius, floored at MinDimension, and pushes the
// derived uniform scale (base mesh radius 0.5) into the visual handle.
func (r *Registry) SetRadius(e *Entity, v float32) {
	if e == nil || e.Kind != KindSphere || !finite(v) {
		return
	}
	if v < MinDimension {
		v = MinDimension
	}
	e.Radius = v
	s := 2 * v
	e.Visual.Scale = [3]float32{s, s, s}
}

// SetSize sets one axis of a cube's size, floored at MinDimension, and pushes
// the derived per-axis scale (unit base mesh) into the visual handle.
func (r *Registry) SetSize(e *Entity, axis Axis, v float32) {
	if e == nil || e.Kind != KindCube || !finite(v) {
		return
	}
	if v < MinDimension {
		v = MinDimension
	}
	e.Size[axis] = v
	e.Visual.Scale = e.Size
}

// SetColor sets a sphere or cube color, clamped to [0,1] per channel, and
// pushes the tint into the visual handle's material.
func (r *Registry) SetColor(e *Entity, c [3]float32) {
	if e == nil || (e.Kind != KindSphere && e.Kind != KindCube) || !finiteVec(c) {
		return
	}
	e.Color = clamp01Vec(c)
	e.Visual.Color = e.Color
}

// SetIntensity sets a light's intensity with components floored at 0. The
// marker tint is the intensity clamped to [0,1]; the canonical value is not
// clamped above 1 (the renderer may interpret brighter lights).
func (r *Registry) SetIntensity(e *Entity, c [3]float32) {
	if e == nil || e.Kind != KindLight || !finiteVec(c) {
		return
	}
	for i := range c {
		if c[i] < 0 {
			c[i] = 0
		}
	}
	e.Intensity = c
	tint := clamp01Vec(c)
	e.Visual.Color = tint
	for _, child := range e.Visual.Children() {
		child.Color = tint
	}
}

// SetDirection sets a light's advisory direction. It has no visual effect and
// is round-tripped through the document unchanged.
func (r *Registry) SetDirection(e *Entity, d [3]float32) {
	if e == nil || e.Kind != KindLight || !finiteVec(d) {
		return
	}
	e.Direction = d
	e.DirectionSet = true
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

func finiteVec(v [3]float32) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}
