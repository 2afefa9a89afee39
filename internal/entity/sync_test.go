package entity

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSetPositionWritesThroughVisual(t *testing.T) {
	r := NewRegistry()
	e := r.Create(KindSphere)
	r.SetPosition(e, AxisX, 4)
	r.SetPosition(e, AxisZ, -2.5)
	want := [3]float32{4, 1, -2.5}
	if e.Visual.Position != want {
		t.Fatalf("visual position = %v, want %v", e.Visual.Position, want)
	}
	if e.Center != want {
		t.Fatalf("canonical center = %v, want %v (read back from visual)", e.Center, want)
	}
}

func TestSetCenterMovesLightShell(t *testing.T) {
	r := NewRegistry()
	l := r.Create(KindLight)
	r.SetCenter(l, [3]float32{3, 7, -1})
	shell := l.Visual.Children()[0]
	if shell.Position != l.Visual.Position {
		t.Fatalf("shell position = %v, core = %v", shell.Position, l.Visual.Position)
	}
}

func TestCommitDragReadsBackVisual(t *testing.T) {
	r := NewRegistry()
	e := r.Create(KindCube)
	// simulate a gizmo drag: the handle moves, canonical lags
	e.Visual.MoveTo([3]float32{5, 0.5, 5})
	if e.Center == e.Visual.Position {
		t.Fatal("canonical updated before commit")
	}
	r.CommitDrag(e)
	if e.Center != [3]float32{5, 0.5, 5} {
		t.Fatalf("center = %v after commit, want {5 0.5 5}", e.Center)
	}
}

func TestSetRadiusClampsAndScales(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"normal", 2.5, 2.5},
		{"below floor", 0.01, MinDimension},
		{"negative", -5, MinDimension},
		{"zero", 0, MinDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			e := r.Create(KindSphere)
			r.SetRadius(e, tt.in)
			if e.Radius != tt.want {
				t.Fatalf("radius = %v, want %v", e.Radius, tt.want)
			}
			wantScale := [3]float32{2 * tt.want, 2 * tt.want, 2 * tt.want}
			if e.Visual.Scale != wantScale {
				t.Fatalf("visual scale = %v, want %v", e.Visual.Scale, wantScale)
			}
			// setting again must not clamp further
			r.SetRadius(e, e.Radius)
			if e.Radius != tt.want {
				t.Fatalf("radius drifted to %v on re-apply", e.Radius)
			}
		})
	}
}

func TestSetSizePerAxis(t *testing.T) {
	r := NewRegistry()
	e := r.Create(KindCube)
	r.SetSize(e, AxisY, 3)
	r.SetSize(e, AxisZ, -1)
	want := [3]float32{1, 3, MinDimension}
	if e.Size != want {
		t.Fatalf("size = %v, want %v", e.Size, want)
	}
	if e.Visual.Scale != want {
		t.Fatalf("visual scale = %v, want %v", e.Visual.Scale, want)
	}
}

func TestSetRadiusIgnoresWrongKind(t *testing.T) {
	r := NewRegistry()
	c := r.Create(KindCube)
	r.SetRadius(c, 5)
	if c.Radius != 0 {
		t.Fatalf("cube gained radius %v", c.Radius)
	}
	s := r.Create(KindSphere)
	r.SetSize(s, AxisX, 5)
	if s.Size != ([3]float32{}) {
		t.Fatalf("sphere gained size %v", s.Size)
	}
}

func TestSetColorClamps(t *testing.T) {
	r := NewRegistry()
	e := r.Create(KindSphere)
	r.SetColor(e, [3]float32{1.5, -0.2, 0.5})
	want := [3]float32{1, 0, 0.5}
	if e.Color != want {
		t.Fatalf("color = %v, want %v", e.Color, want)
	}
	if e.Visual.Color != want {
		t.Fatalf("visual tint = %v, want %v", e.Visual.Color, want)
	}
}

func TestSetIntensityFloorsAtZero(t *testing.T) {
	r := NewRegistry()
	l := r.Create(KindLight)
	r.SetIntensity(l, [3]float32{2, -1, 0.5})
	want := [3]float32{2, 0, 0.5}
	if l.Intensity != want {
		t.Fatalf("intensity = %v, want %v (floored, not clamped above 1)", l.Intensity, want)
	}
	// marker tint is clamped to displayable range
	if l.Visual.Color != ([3]float32{1, 0, 0.5}) {
		t.Fatalf("marker tint = %v", l.Visual.Color)
	}
	if l.Visual.Children()[0].Color != l.Visual.Color {
		t.Fatal("shell tint out of sync with core")
	}
}

func TestNonFiniteEditsRejected(t *testing.T) {
	nan := math32.NaN()
	inf := math32.Inf(1)
	r := NewRegistry()
	e := r.Create(KindSphere)
	before := *e
	r.SetPosition(e, AxisX, nan)
	r.SetRadius(e, inf)
	r.SetColor(e, [3]float32{0.5, nan, 0.5})
	if e.Center != before.Center || e.Radius != before.Radius || e.Color != before.Color {
		t.Fatalf("non-finite edit mutated state: %+v", e)
	}

	l := r.Create(KindLight)
	r.SetIntensity(l, [3]float32{inf, 1, 1})
	r.SetDirection(l, [3]float32{nan, 0, 0})
	if l.Intensity != ([3]float32{1, 1, 1}) || l.Direction != ([3]float32{0, -1, 0}) {
		t.Fatalf("non-finite edit mutated light: %+v", l)
	}
}

func TestSetDirectionMarksSet(t *testing.T) {
	r := NewRegistry()
	l := r.Create(KindLight)
	l.DirectionSet = false
	r.SetDirection(l, [3]float32{1, 0, 0})
	if !l.DirectionSet || l.Direction != ([3]float32{1, 0, 0}) {
		t.Fatalf("direction = %v set=%v", l.Direction, l.DirectionSet)
	}
}
