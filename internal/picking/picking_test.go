package picking

import (
	"testing"

	"scene-editor/internal/entity"
)

// rayFromZ aims straight down the -Z axis from z=10 toward the given x/y.
func rayFromZ(x, y float32) Ray {
	return Ray{Origin: [3]float32{x, y, 10}, Direction: [3]float32{0, 0, -1}}
}

func TestPickSphere(t *testing.T) {
	reg := entity.NewRegistry()
	s := reg.Create(entity.KindSphere)
	reg.SetCenter(s, [3]float32{0, 0, 0})

	if id, ok := Pick(reg, rayFromZ(0, 0)); !ok || id != s.ID {
		t.Fatalf("Pick center ray = (%d, %v), want (%d, true)", id, ok, s.ID)
	}
	// default radius is 1, so x=0.9 grazes and x=1.1 misses
	if _, ok := Pick(reg, rayFromZ(0.9, 0)); !ok {
		t.Fatal("ray inside radius missed")
	}
	if id, ok := Pick(reg, rayFromZ(1.1, 0)); ok {
		t.Fatalf("ray outside radius hit %d", id)
	}
}

func TestPickCube(t *testing.T) {
	reg := entity.NewRegistry()
	c := reg.Create(entity.KindCube)
	reg.SetCenter(c, [3]float32{0, 0, 0})
	reg.SetSize(c, entity.AxisX, 2)

	tests := []struct {
		name string
		ray  Ray
		hit  bool
	}{
		{"through center", rayFromZ(0, 0), true},
		{"inside widened x", rayFromZ(0.9, 0), true},
		{"outside y", rayFromZ(0, 0.6), false},
		{"outside x", rayFromZ(1.1, 0), false},
		{"pointing away", Ray{Origin: [3]float32{0, 0, 10}, Direction: [3]float32{0, 0, 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Pick(reg, tt.ray)
			if ok != tt.hit {
				t.Fatalf("Pick = %v, want %v", ok, tt.hit)
			}
		})
	}
}

func TestPickNearestWins(t *testing.T) {
	reg := entity.NewRegistry()
	far := reg.Create(entity.KindSphere)
	reg.SetCenter(far, [3]float32{0, 0, -5})
	near := reg.Create(entity.KindSphere)
	reg.SetCenter(near, [3]float32{0, 0, 0})

	if id, _ := Pick(reg, rayFromZ(0, 0)); id != near.ID {
		t.Fatalf("Pick = %d, want nearer entity %d", id, near.ID)
	}
	// from the other side the far one is nearer
	back := Ray{Origin: [3]float32{0, 0, -10}, Direction: [3]float32{0, 0, 1}}
	if id, _ := Pick(reg, back); id != far.ID {
		t.Fatalf("Pick from behind = %d, want %d", id, far.ID)
	}
}

func TestPickLightShellResolvesOwner(t *testing.T) {
	reg := entity.NewRegistry()
	l := reg.Create(entity.KindLight)
	reg.SetCenter(l, [3]float32{0, 0, 0})

	// the emitter shell is wider than the core marker; a ray through the
	// shell but past the core must still resolve to the light
	shellOnly := rayFromZ(0.25, 0)
	id, ok := Pick(reg, shellOnly)
	if !ok || id != l.ID {
		t.Fatalf("Pick shell = (%d, %v), want (%d, true)", id, ok, l.ID)
	}
	if _, ok := Pick(reg, rayFromZ(0.4, 0)); ok {
		t.Fatal("ray outside shell radius hit")
	}
}

func TestPickMissReturnsZero(t *testing.T) {
	reg := entity.NewRegistry()
	if id, ok := Pick(reg, rayFromZ(0, 0)); ok || id != 0 {
		t.Fatalf("Pick on empty registry = (%d, %v), want (0, false)", id, ok)
	}
	s := reg.Create(entity.KindSphere)
	reg.SetCenter(s, [3]float32{100, 100, 100})
	if id, ok := Pick(reg, rayFromZ(0, 0)); ok || id != 0 {
		t.Fatalf("Pick far from everything = (%d, %v), want (0, false)", id, ok)
	}
}

func TestRayInsideSphereExitsForward(t *testing.T) {
	reg := entity.NewRegistry()
	s := reg.Create(entity.KindSphere)
	reg.SetCenter(s, [3]float32{0, 0, 0})
	inside := Ray{Origin: [3]float32{0, 0, 0}, Direction: [3]float32{0, 0, -1}}
	if id, ok := Pick(reg, inside); !ok || id != s.ID {
		t.Fatalf("Pick from inside = (%d, %v), want far-side hit", id, ok)
	}
}
