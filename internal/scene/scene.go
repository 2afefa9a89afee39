package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/editor"
	"scene-editor/internal/entity"
	"scene-editor/internal/picking"
	"scene-editor/internal/primitives"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// selectionColor outlines the selected entity's bounds.
var selectionColor = rl.NewColor(255, 180, 40, 255)

// Viewport holds the navigable 3D camera and draws the live scene: grid,
// entity visual handles, and the selection outline. The camera pose is the
// writer of record for the document's camera position/look_at/up (mirroring
// how visual handles own entity positions); fov and output size flow the
// other way, from the editor's camera state.
type Viewport struct {
	Camera      rl.Camera3D
	GridVisible bool
	cache       *primitives.Cache
}

// New returns a viewport with a perspective camera at the editor's default
// pose. Grid is visible by default. Based on raylib's free-camera example.
func New(cache *primitives.Cache) *Viewport {
	v := &Viewport{cache: cache}
	v.Camera.Position = rl.NewVector3(10, 10, 10)
	v.Camera.Target = rl.NewVector3(0, 0, 0)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = 45
	v.Camera.Projection = rl.CameraPerspective
	v.GridVisible = true
	return v
}

// SetGridVisible sets whether the editor grid is drawn.
func (v *Viewport) SetGridVisible(visible bool) {
	v.GridVisible = visible
}

// Update runs once per frame: free-camera navigation while the right mouse
// button is held (left stays free for picking and the gizmo), then camera
// state sync with the editor. After an import the navigable camera jumps to
// the imported pose; otherwise the current pose is read back into the
// editor's camera state, which is what export snapshots.
func (v *Viewport) Update(ed *editor.Editor) {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		rl.UpdateCamera(&v.Camera, rl.CameraFree)
	}
	if ed.CameraReset() {
		v.Camera.Position = toVector3(ed.Camera.Position)
		v.Camera.Target = toVector3(ed.Camera.LookAt)
		v.Camera.Up = toVector3(ed.Camera.Up)
	}
	v.Camera.Fovy = float32(ed.Camera.Fov)
	ed.Camera.Position = fromVector3(v.Camera.Position)
	ed.Camera.LookAt = fromVector3(v.Camera.Target)
	ed.Camera.Up = fromVector3(v.Camera.Up)
}

// PointerRay returns the world-space ray under the mouse cursor.
func (v *Viewport) PointerRay() picking.Ray {
	r := rl.GetScreenToWorldRay(rl.GetMousePosition(), v.Camera)
	return picking.Ray{
		Origin:    [3]float32{r.Position.X, r.Position.Y, r.Position.Z},
		Direction: [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z},
	}
}

// Draw renders the 3D scene: grid, every entity's visual handle (root and
// sub-nodes), the selection outline, then overlay3D (e.g. the gizmo) still
// inside 3D mode.
func (v *Viewport) Draw(ed *editor.Editor, overlay3D func()) {
	pos := v.Camera.Position
	v.cache.SetView([3]float32{pos.X, pos.Y, pos.Z}, sceneLightDir(ed))
	rl.BeginMode3D(v.Camera)
	if v.GridVisible {
		drawEditorGrid()
	}
	for e := range ed.Reg.All() {
		v.cache.DrawNode(e.Visual)
		for _, c := range e.Visual.Children() {
			v.cache.DrawNode(c)
		}
	}
	if sel := ed.Reg.Selected(); sel != nil {
		drawSelectionOutline(sel)
	}
	if overlay3D != nil {
		overlay3D()
	}
	rl.EndMode3D()
}

// sceneLightDir picks the shading direction for the viewport: toward the
// first authored light, or from above-right when the scene has none. Viewport
// shading only; the exported document carries the real lights.
func sceneLightDir(ed *editor.Editor) [3]float32 {
	for e := range ed.Reg.All() {
		if e.Kind == entity.KindLight {
			d := e.Center
			len2 := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
			if len2 > 1e-6 {
				inv := 1 / math32.Sqrt(len2)
				return [3]float32{d[0] * inv, d[1] * inv, d[2] * inv}
			}
		}
	}
	return [3]float32{0.5, 1, 0.5}
}

// drawSelectionOutline draws a wire box around the selected entity's bounds.
func drawSelectionOutline(e *entity.Entity) {
	var size rl.Vector3
	switch e.Kind {
	case entity.KindSphere:
		d := 2 * e.Radius
		size = rl.NewVector3(d, d, d)
	case entity.KindCube:
		size = rl.NewVector3(e.Size[0], e.Size[1], e.Size[2])
	case entity.KindLight:
		s := e.Visual.Scale[0]
		for _, c := range e.Visual.Children() {
			if c.Scale[0] > s {
				s = c.Scale[0]
			}
		}
		size = rl.NewVector3(s, s, s)
	}
	center := rl.NewVector3(e.Center[0], e.Center[1], e.Center[2])
	rl.DrawCubeWiresV(center, size, selectionColor)
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis
// lines. Reuses start/end vectors to avoid per-frame allocations in the hot
// loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// Axis lines through origin (X=red, Y=green, Z=blue)
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}

func toVector3(v [3]float64) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}

func fromVector3(v rl.Vector3) [3]float64 {
	return [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
}
