package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scene-editor/internal/document"
	"scene-editor/internal/entity"
)

func newEditor() *Editor {
	return New(entity.NewRegistry())
}

const sampleDoc = `{
	"camera": {"position": [0, 2, -8], "look_at": [0, 1, 0], "width": 640, "height": 480},
	"objects": [
		{"type": "sphere", "center": [1, 2, 3], "radius": 0.75, "color": [0.5, 0.25, 0.25]},
		{"type": "cube", "min": [-2, -1, 3], "max": [-1, 1, 4]}
	],
	"lights": [
		{"type": "point", "position": [0, 5, 0], "intensity": [1, 1, 1]}
	]
}`

func TestImportPopulatesRegistry(t *testing.T) {
	ed := newEditor()
	if err := ed.Import([]byte(sampleDoc)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if ed.Reg.Len() != 3 {
		t.Fatalf("Len() = %d after import, want 3", ed.Reg.Len())
	}
	var kinds []string
	for e := range ed.Reg.All() {
		kinds = append(kinds, e.Kind.String())
	}
	if got := strings.Join(kinds, ","); got != "sphere,cube,light" {
		t.Fatalf("kinds = %s, want document order", got)
	}

	var cube *entity.Entity
	for e := range ed.Reg.All() {
		if e.Kind == entity.KindCube {
			cube = e
		}
	}
	if cube.Center != ([3]float32{-1.5, 0, 3.5}) || cube.Size != ([3]float32{1, 2, 1}) {
		t.Fatalf("cube center %v size %v, want [-1.5 0 3.5] and [1 2 1]", cube.Center, cube.Size)
	}
	if cube.Visual.Position != cube.Center {
		t.Fatal("visual handle out of step with imported center")
	}

	if ed.Camera.Position != ([3]float64{0, 2, -8}) || ed.Camera.Width != 640 {
		t.Fatalf("camera = %+v, want imported pose and output", ed.Camera)
	}
	if !ed.CameraReset() {
		t.Fatal("import did not flag a camera reset")
	}
	if ed.CameraReset() {
		t.Fatal("camera reset flag not cleared after poll")
	}
}

func TestImportClearsSelection(t *testing.T) {
	ed := newEditor()
	ed.Reg.Create(entity.KindSphere)
	if ed.Reg.SelectedID() == 0 {
		t.Fatal("create did not select")
	}
	if err := ed.Import([]byte(sampleDoc)); err != nil {
		t.Fatal(err)
	}
	if ed.Reg.SelectedID() != 0 {
		t.Fatalf("SelectedID() = %d after import, want 0", ed.Reg.SelectedID())
	}
}

func TestFailedImportKeepsScene(t *testing.T) {
	ed := newEditor()
	s := ed.Reg.Create(entity.KindSphere)
	ed.Reg.SetRadius(s, 2)
	camBefore := ed.Camera

	bad := `{"camera": {"position": [0, 0, 5]}}` // no look_at
	err := ed.Import([]byte(bad))
	if !errors.Is(err, document.ErrMalformedDocument) {
		t.Fatalf("Import err = %v, want ErrMalformedDocument", err)
	}
	if ed.Reg.Len() != 1 {
		t.Fatalf("Len() = %d after failed import, want untouched 1", ed.Reg.Len())
	}
	if got, _ := ed.Reg.Get(s.ID); got != s || got.Radius != 2 {
		t.Fatal("entity state disturbed by failed import")
	}
	if ed.Camera != camBefore {
		t.Fatal("camera disturbed by failed import")
	}
	if ed.CameraReset() {
		t.Fatal("failed import flagged a camera reset")
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	ed := newEditor()
	if err := ed.Import([]byte(sampleDoc)); err != nil {
		t.Fatal(err)
	}
	if err := ed.ExportFile(path); err != nil {
		t.Fatalf("ExportFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Fatal("exported file missing trailing newline")
	}

	other := newEditor()
	if err := other.ImportFile(path); err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if other.Reg.Len() != 3 {
		t.Fatalf("Len() = %d after file round trip, want 3", other.Reg.Len())
	}
	if other.Camera != ed.Camera {
		t.Fatalf("camera drifted: %+v vs %+v", other.Camera, ed.Camera)
	}
}

func TestImportLightWithoutDirectionStaysBare(t *testing.T) {
	ed := newEditor()
	if err := ed.Import([]byte(sampleDoc)); err != nil {
		t.Fatal(err)
	}
	var light *entity.Entity
	for e := range ed.Reg.All() {
		if e.Kind == entity.KindLight {
			light = e
		}
	}
	if light.DirectionSet {
		t.Fatal("light grew a direction on import")
	}
	out, err := document.Marshal(ed.Export())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), `"direction"`) {
		t.Fatal("re-export added a direction field")
	}
}

func TestParseComponent(t *testing.T) {
	tests := []struct {
		in      string
		want    float32
		wantErr bool
	}{
		{"1.5", 1.5, false},
		{"-0.25", -0.25, false},
		{"0", 0, false},
		{"1e2", 100, false},
		{"abc", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
		{"-Inf", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseComponent(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseComponent(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("ParseComponent(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
