package visual

import "testing"

func TestMoveToCarriesChildren(t *testing.T) {
	root := NewNode(ShapeSphere)
	child := NewNode(ShapeSphere)
	child.Offset = [3]float32{0, 0.5, 0}
	root.AddChild(child)

	root.MoveTo([3]float32{1, 2, 3})
	if root.Position != ([3]float32{1, 2, 3}) {
		t.Fatalf("root at %v", root.Position)
	}
	if child.Position != ([3]float32{1, 2.5, 3}) {
		t.Fatalf("child at %v, want parent + offset", child.Position)
	}
}

func TestRootWalksUp(t *testing.T) {
	root := NewNode(ShapeBox)
	root.Owner = 7
	mid := NewNode(ShapeBox)
	leaf := NewNode(ShapeSphere)
	root.AddChild(mid)
	mid.AddChild(leaf)
	if leaf.Root() != root {
		t.Fatal("Root() did not reach the top")
	}
	if leaf.Root().Owner != 7 {
		t.Fatalf("owner via root = %d, want 7", leaf.Root().Owner)
	}
}

func TestSphereRadiusAndBoxBounds(t *testing.T) {
	s := NewNode(ShapeSphere)
	s.Scale = [3]float32{3, 3, 3}
	if s.Radius() != 1.5 {
		t.Fatalf("Radius() = %v, want 1.5 (base mesh radius 0.5)", s.Radius())
	}

	b := NewNode(ShapeBox)
	b.Scale = [3]float32{2, 4, 6}
	b.MoveTo([3]float32{1, 0, -1})
	min, max := b.Bounds()
	if min != ([3]float32{0, -2, -4}) || max != ([3]float32{2, 2, 2}) {
		t.Fatalf("bounds = %v / %v", min, max)
	}
}

func TestDestroyReleasesOncePerNode(t *testing.T) {
	var released []*Node
	root := NewNode(ShapeSphere)
	child := NewNode(ShapeSphere)
	root.AddChild(child)
	root.SetReleaser(func(n *Node) { released = append(released, n) })

	root.Destroy()
	root.Destroy()
	if len(released) != 2 {
		t.Fatalf("release ran %d times, want once per node", len(released))
	}
	if !root.Released() || !child.Released() {
		t.Fatal("nodes not marked released")
	}
	// children are released before their parent
	if released[0] != child || released[1] != root {
		t.Fatal("release order wrong")
	}
}
