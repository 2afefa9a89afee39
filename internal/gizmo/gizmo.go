// Package gizmo implements the translate manipulator attached to the selected
// entity. While a drag is in flight the gizmo writes the visual handle's
// transform directly (the handle is the writer of record for position); the
// canonical record catches up once, on drag end, via the registry's
// CommitDrag.
package gizmo

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/editor"
	"scene-editor/internal/entity"
	"scene-editor/internal/picking"
)

const (
	// handleLength is the world-space length of each axis handle.
	handleLength = 1.6
	// grabDistance is how close (world units) the pointer ray must pass to an
	// axis handle to grab it.
	grabDistance = 0.18
	headLength   = 0.3
	headRadius   = 0.08
)

var axisColors = [3]rl.Color{
	rl.NewColor(220, 80, 80, 255),
	rl.NewColor(80, 220, 80, 255),
	rl.NewColor(80, 120, 220, 255),
}

var axisDirs = [3][3]float32{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Gizmo tracks one drag gesture at a time.
type Gizmo struct {
	dragging bool
	axis     entity.Axis
	target   entity.ID
	// grabOffset keeps the grabbed point fixed under the cursor: entity
	// coordinate along the axis minus the ray's closest axis parameter.
	grabOffset float32
}

// New returns an idle gizmo.
func New() *Gizmo {
	return &Gizmo{}
}

// Active reports whether a drag gesture is in flight.
func (g *Gizmo) Active() bool {
	return g.dragging
}

// Update advances the gesture for this frame's pointer ray. It returns true
// when the gizmo consumed the pointer (grabbed a handle or is mid-drag), so
// the caller skips picking. On release the canonical record is synced from
// the handle via CommitDrag.
func (g *Gizmo) Update(ed *editor.Editor, ray picking.Ray) bool {
	sel := ed.Reg.Selected()
	if sel == nil {
		g.cancel()
		return false
	}
	if g.dragging && g.target != sel.ID {
		// Selection changed mid-drag (e.g. via console); drop the gesture.
		g.cancel()
	}

	if !g.dragging {
		if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			return false
		}
		axis, ok := g.hitAxis(sel, ray)
		if !ok {
			return false
		}
		g.dragging = true
		g.axis = axis
		g.target = sel.ID
		t, ok := closestAxisParam(sel.Visual.Position, axisDirs[axis], ray)
		if !ok {
			t = 0
		}
		// Position + t is the grabbed world coordinate along the axis;
		// keeping -t as the offset pins that point under the cursor.
		g.grabOffset = -t
		return true
	}

	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		if t, ok := closestAxisParam(sel.Visual.Position, axisDirs[g.axis], ray); ok {
			p := sel.Visual.Position
			p[g.axis] = sel.Visual.Position[g.axis] + t + g.grabOffset
			sel.Visual.MoveTo(p)
		}
		return true
	}

	// Drag ended this frame: one commit, canonical catches up.
	ed.Reg.CommitDrag(sel)
	g.dragging = false
	return true
}

func (g *Gizmo) cancel() {
	g.dragging = false
	g.target = 0
}

// hitAxis returns the axis handle the ray grabs, preferring the closest pass.
func (g *Gizmo) hitAxis(sel *entity.Entity, ray picking.Ray) (entity.Axis, bool) {
	best := float32(grabDistance)
	bestAxis := entity.Axis(-1)
	for axis := entity.AxisX; axis <= entity.AxisZ; axis++ {
		d, ok := rayToSegmentDistance(ray, sel.Visual.Position, axisDirs[axis], handleLength)
		if ok && d < best {
			best = d
			bestAxis = axis
		}
	}
	return bestAxis, bestAxis >= 0
}

// Draw renders the axis handles at the selected entity. Call inside 3D mode.
// The active axis is drawn brighter while dragging.
func (g *Gizmo) Draw(ed *editor.Editor) {
	sel := ed.Reg.Selected()
	if sel == nil {
		return
	}
	origin := sel.Visual.Position
	for axis := entity.AxisX; axis <= entity.AxisZ; axis++ {
		c := axisColors[axis]
		if g.dragging && axis == g.axis {
			c = rl.NewColor(255, 255, 160, 255)
		}
		dir := axisDirs[axis]
		start := rl.NewVector3(origin[0], origin[1], origin[2])
		shaft := rl.NewVector3(
			origin[0]+dir[0]*(handleLength-headLength),
			origin[1]+dir[1]*(handleLength-headLength),
			origin[2]+dir[2]*(handleLength-headLength),
		)
		tip := rl.NewVector3(
			origin[0]+dir[0]*handleLength,
			origin[1]+dir[1]*handleLength,
			origin[2]+dir[2]*handleLength,
		)
		rl.DrawLine3D(start, shaft, c)
		rl.DrawCylinderEx(shaft, tip, headRadius, 0, 8, c)
	}
}

// closestAxisParam returns the parameter t along the axis line (origin +
// t*dir) closest to the pointer ray, or ok false when the ray is parallel to
// the axis.
func closestAxisParam(origin, dir [3]float32, ray picking.Ray) (float32, bool) {
	w0 := sub3(origin, ray.Origin)
	a := dot3(dir, dir)
	b := dot3(dir, ray.Direction)
	c := dot3(ray.Direction, ray.Direction)
	d := dot3(dir, w0)
	e := dot3(ray.Direction, w0)
	denom := a*c - b*b
	if math32.Abs(denom) < 1e-6 {
		return 0, false
	}
	return (b*e - c*d) / denom, true
}

// rayToSegmentDistance returns the shortest distance between the pointer ray
// and the axis segment from origin to origin + length*dir.
func rayToSegmentDistance(ray picking.Ray, origin, dir [3]float32, length float32) (float32, bool) {
	t, ok := closestAxisParam(origin, dir, ray)
	if !ok {
		return 0, false
	}
	if t < 0 {
		t = 0
	}
	if t > length {
		t = length
	}
	onAxis := [3]float32{origin[0] + dir[0]*t, origin[1] + dir[1]*t, origin[2] + dir[2]*t}
	// Closest point on the ray to that axis point; clamp behind-origin to 0.
	s := dot3(sub3(onAxis, ray.Origin), ray.Direction) / dot3(ray.Direction, ray.Direction)
	if s < 0 {
		s = 0
	}
	onRay := [3]float32{ray.Origin[0] + ray.Direction[0]*s, ray.Origin[1] + ray.Direction[1]*s, ray.Origin[2] + ray.Direction[2]*s}
	diff := sub3(onAxis, onRay)
	return math32.Sqrt(dot3(diff, diff)), true
}

func sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}
