package ui

import "fmt"

// Inspector is a right-side panel showing the selected entity's canonical
// fields: id/kind, position, then the kind-specific rows (radius or size,
// color or intensity and direction). It owns its nodes and updates their text
// when AppendNodes is called with visible true.
type Inspector struct {
	panel *Node
	title *Node
	name  *Node
	posn  *Node
	row1  *Node // radius (sphere), size (cube), intensity (light)
	row2  *Node // color (sphere/cube), direction (light)
}

// NewInspector creates an Inspector with nodes styled by the editor's CSS
// (.inspector, .inspector-title, etc.).
func NewInspector() *Inspector {
	return &Inspector{
		panel: NewNode("panel", "inspector", "", ""),
		title: NewNode("label", "inspector-title", "", "Inspector"),
		name:  NewNode("label", "inspector-name", "", ""),
		posn:  NewNode("label", "inspector-position", "", ""),
		row1:  NewNode("label", "inspector-row1", "", ""),
		row2:  NewNode("label", "inspector-row2", "", ""),
	}
}

// Selection holds the data shown in the inspector. The editor layer fills it
// from the selected entity; ui does not depend on the entity package.
type Selection struct {
	ID        uint64
	Kind      string // "sphere", "cube", "light"
	Position  [3]float32
	Radius    float32    // sphere
	Size      [3]float32 // cube
	Color     [3]float32 // sphere, cube
	Intensity [3]float32 // light
	Direction [3]float32 // light
	HasDir    bool
}

// AppendNodes appends inspector nodes to dst when visible is true, after
// updating labels from sel. When visible is false, dst is returned unchanged.
// Call every frame so visibility and content stay in sync.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, sel Selection) []*Node {
	if !visible {
		return dst
	}
	in.name.Text = fmt.Sprintf("%s #%d", sel.Kind, sel.ID)
	in.posn.Text = fmt.Sprintf("Position: %.2f, %.2f, %.2f", sel.Position[0], sel.Position[1], sel.Position[2])
	switch sel.Kind {
	case "sphere":
		in.row1.Text = fmt.Sprintf("Radius: %.2f", sel.Radius)
		in.row2.Text = fmt.Sprintf("Color: %.2f, %.2f, %.2f", sel.Color[0], sel.Color[1], sel.Color[2])
	case "cube":
		in.row1.Text = fmt.Sprintf("Size: %.2f, %.2f, %.2f", sel.Size[0], sel.Size[1], sel.Size[2])
		in.row2.Text = fmt.Sprintf("Color: %.2f, %.2f, %.2f", sel.Color[0], sel.Color[1], sel.Color[2])
	case "light":
		in.row1.Text = fmt.Sprintf("Intensity: %.2f, %.2f, %.2f", sel.Intensity[0], sel.Intensity[1], sel.Intensity[2])
		if sel.HasDir {
			in.row2.Text = fmt.Sprintf("Direction: %.2f, %.2f, %.2f", sel.Direction[0], sel.Direction[1], sel.Direction[2])
		} else {
			in.row2.Text = "Direction: (none)"
		}
	}
	return append(dst, in.panel, in.title, in.name, in.posn, in.row1, in.row2)
}
