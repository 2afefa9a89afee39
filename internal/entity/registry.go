package entity

import (
	"iter"

	"scene-editor/internal/visual"
)

// Light marker geometry: a small solid core with a wider translucent shell,
// both part of the light's one visual handle. Radii are in world units.
const (
	lightCoreRadius  = 0.15
	lightShellRadius = 0.35
)

// Registry owns the set of live entities: id allocation, the selection
// pointer, and the create/destroy lifecycle. All reads and writes of an
// entity's canonical or visual state go through the registry (see sync.go for
// the mutation side).
type Registry struct {
	nextID   ID
	order    []*Entity     // insertion order, live entities only
	byID     map[ID]*Entity
	selected ID // 0 = no selection
	defaults map[Kind]Defaults
	releaser func(*visual.Node) // resource release hook for new visual nodes
}

// NewRegistry returns an empty registry using the builtin kind defaults.
func NewRegistry() *Registry {
	return &Registry{
		nextID:   1,
		byID:     make(map[ID]*Entity),
		defaults: BuiltinDefaults(),
	}
}

// SetDefaults replaces the per-kind creation defaults (e.g. from LoadDefaults).
func (r *Registry) SetDefaults(d map[Kind]Defaults) {
	if d != nil {
		r.defaults = d
	}
}

// SetReleaser sets the hook attached to every new visual node, called exactly
// once per node when the entity is deleted. The presentation layer uses it to
// free GPU resources; tests leave it nil.
func (r *Registry) SetReleaser(release func(*visual.Node)) {
	r.releaser = release
}

// Create allocates a new entity of the given kind with default canonical data
// and a fresh visual handle at the kind's default position, inserts it, and
// selects it. Never fails.
func (r *Registry) Create(k Kind) *Entity {
	d := r.defaults[k]
	e := &Entity{
		ID:        r.nextID,
		Kind:      k,
		Center:    d.Center,
		Color:     d.Color,
		Radius:    d.Radius,
		Size:      d.Size,
		Intensity: d.Intensity,
	}
	r.nextID++
	if k == KindLight {
		e.Direction = d.Direction
		e.DirectionSet = true
	}
	e.Visual = r.buildNode(e)
	r.order = append(r.order, e)
	r.byID[e.ID] = e
	r.selected = e.ID
	return e
}

// buildNode constructs the visual handle for a new entity: a scaled sphere or
// box, or for lights a marker core with an emitter shell sub-node. Owner
// back-references are set on every node so picking can resolve sub-node hits.
func (r *Registry) buildNode(e *Entity) *visual.Node {
	var n *visual.Node
	switch e.Kind {
	case KindSphere:
		n = visual.NewNode(visual.ShapeSphere)
		s := 2 * e.Radius
		n.Scale = [3]float32{s, s, s}
		n.Color = e.Color
	case KindCube:
		n = visual.NewNode(visual.ShapeBox)
		n.Scale = e.Size
		n.Color = e.Color
	case KindLight:
		n = visual.NewNode(visual.ShapeSphere)
		s := 2 * float32(lightCoreRadius)
		n.Scale = [3]float32{s, s, s}
		n.Color = clamp01Vec(e.Intensity)
		shell := visual.NewNode(visual.ShapeSphere)
		ss := 2 * float32(lightShellRadius)
		shell.Scale = [3]float32{ss, ss, ss}
		shell.Color = n.Color
		shell.Alpha = 0.35
		n.AddChild(shell)
	}
	n.Owner = uint64(e.ID)
	for _, c := range n.Children() {
		c.Owner = uint64(e.ID)
	}
	n.MoveTo(e.Center)
	if r.releaser != nil {
		n.SetReleaser(r.releaser)
	}
	return n
}

// Select sets the selection to id if it names a live entity; any other id
// (including 0 and stale ids) clears the selection. Never an error: the UI may
// legitimately pass ids that were deleted since the frame was built.
func (r *Registry) Select(id ID) {
	if _, ok := r.byID[id]; ok {
		r.selected = id
		return
	}
	r.selected = 0
}

// SelectedID returns the id of the selected entity, or 0 when none.
func (r *Registry) SelectedID() ID {
	return r.selected
}

// Selected returns the selected entity, or nil when none.
func (r *Registry) Selected() *Entity {
	if r.selected == 0 {
		return nil
	}
	return r.byID[r.selected]
}

// Delete removes the entity, destroys its visual handle (releasing its
// rendering resources before Delete returns), and clears the selection if the
// deleted entity was selected. No-op for ids that are not live, so deleting
// the same id twice is harmless.
func (r *Registry) Delete(id ID) {
	e, ok := r.byID[id]
	if !ok {
		return
	}
	e.Visual.Destroy()
	delete(r.byID, id)
	for i, o := range r.order {
		if o.ID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.selected == id {
		r.selected = 0
	}
}

// Clear deletes every live entity and clears the selection. Ids are not
// reused afterwards. Used before repopulating from an imported document.
func (r *Registry) Clear() {
	for _, e := range r.order {
		e.Visual.Destroy()
		delete(r.byID, e.ID)
	}
	r.order = r.order[:0]
	r.selected = 0
}

// Get returns the entity with the given id, or ok false.
func (r *Registry) Get(id ID) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.order)
}

// All returns the live entities in insertion order as a restartable sequence.
func (r *Registry) All() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, e := range r.order {
			if !yield(e) {
				return
			}
		}
	}
}

func clamp01Vec(v [3]float32) [3]float32 {
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
