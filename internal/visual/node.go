package visual

// Shape selects the geometry a node is rendered and hit-tested with.
// Sphere nodes use a base mesh of radius 0.5 (diameter 1, matching the unit
// cube side length), so world radius = 0.5 * Scale[0]. Box nodes use a unit
// cube, so world size = Scale.
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeBox
)

// Node is one renderable element of an entity in the live scene: the entity's
// root node or one of its sub-nodes (e.g. a light's marker core and its wider
// emitter shell). The node state here is CPU-side; GPU resources (mesh,
// material) are owned via the release hook and freed exactly once by Destroy.
type Node struct {
	Owner    uint64 // id of the owning entity; set on the root and every sub-node
	Shape    Shape
	Position [3]float32 // world-space center
	Offset   [3]float32 // local offset from the root; zero for the root itself
	Scale    [3]float32
	Color    [3]float32 // linear RGB tint
	Alpha    float32    // 0..1 opacity; light emitter shells render translucent

	parent   *Node
	children []*Node
	released bool
	release  func(*Node) // optional; invoked once per node on Destroy
}

// NewNode returns a node with the given shape at the origin with unit scale.
func NewNode(shape Shape) *Node {
	return &Node{Shape: shape, Scale: [3]float32{1, 1, 1}, Alpha: 1}
}

// AddChild attaches a sub-node. The child's owner is inherited and its world
// position is derived from the parent position plus its offset.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	child.Owner = n.Owner
	child.Position = add3(n.Position, child.Offset)
	n.children = append(n.children, child)
}

// Parent returns the parent node, or nil for a root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the attached sub-nodes (nil for leaf nodes).
func (n *Node) Children() []*Node {
	return n.children
}

// Root walks parent links up to the entity's root node.
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// MoveTo sets the world position of the node and keeps sub-node positions in
// step (parent position + their offset).
func (n *Node) MoveTo(p [3]float32) {
	n.Position = p
	for _, c := range n.children {
		c.Position = add3(p, c.Offset)
	}
}

// Radius returns the world-space radius of a sphere node.
func (n *Node) Radius() float32 {
	return 0.5 * n.Scale[0]
}

// Bounds returns the world-space min/max corners of a box node.
func (n *Node) Bounds() (min, max [3]float32) {
	for i := 0; i < 3; i++ {
		half := 0.5 * n.Scale[i]
		min[i] = n.Position[i] - half
		max[i] = n.Position[i] + half
	}
	return min, max
}

// SetReleaser sets the resource release hook called by Destroy. The hook runs
// at most once per node even if Destroy is called again.
func (n *Node) SetReleaser(release func(*Node)) {
	n.release = release
	for _, c := range n.children {
		c.release = release
	}
}

// Destroy releases the node and all sub-nodes. Safe to call more than once;
// only the first call runs the release hooks.
func (n *Node) Destroy() {
	if n.released {
		return
	}
	n.released = true
	for _, c := range n.children {
		c.Destroy()
	}
	if n.release != nil {
		n.release(n)
	}
}

// Released reports whether Destroy has run.
func (n *Node) Released() bool {
	return n.released
}

func add3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}
