package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// Node is a single UI element: panel or label. Class and id are matched
// against the stylesheet; Text is drawn for labels.
type Node struct {
	Type   string // "panel", "label"
	Class  string // e.g. "inspector" for .inspector
	ID     string // e.g. "main" for #main
	Bounds rl.Rectangle
	Text   string
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order. Resolved styles are cached and recomputed only
// when the sheet or node set changes, to avoid per-frame allocations.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a CSS file from path, replacing the current
// stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.sheet = sheet
	e.cacheValid = false
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from built-in CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// resolveProps returns merged properties for a node (class and id matched;
// last rule wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		match := (sel[0] == '.' && n.Class == sel[1:]) || (sel[0] == '#' && n.ID == sel[1:])
		if !match {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

// resolveBounds sets n.Bounds from style. Zero style size leaves the node's
// own size.
func resolveBounds(n *Node, style ComputedStyle) {
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
	n.Bounds.X = float32(style.Left)
	n.Bounds.Y = float32(style.Top)
}

// Draw draws all nodes: resolve style (cached), update bounds from style,
// then draw background, border, and text.
func (e *Engine) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	if !e.cacheValid {
		e.cachedStyles = make([]ComputedStyle, len(e.nodes))
		for i, n := range e.nodes {
			e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
			resolveBounds(n, e.cachedStyles[i])
		}
		e.cacheValid = true
	}
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		w := int32(n.Bounds.Width)
		h := int32(n.Bounds.Height)
		x := int32(n.Bounds.X)
		y := int32(n.Bounds.Y)
		if style.LeftPct >= 0 {
			x = (screenW - w) * style.LeftPct / 100
		}
		if style.TopPct >= 0 {
			y = (screenH - h) * style.TopPct / 100
		}

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			pad := style.Padding
			rl.DrawText(n.Text, x+pad, y+pad, defaultFontSize, style.Color)
		}
	}
}
