package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rule is a single CSS rule: one selector (.class or #id) and raw property
// values. Later rules override earlier for the same selector.
type Rule struct {
	Selector string
	Props    map[string]string
}

// Stylesheet is a list of rules (order matters).
type Stylesheet struct {
	Rules []Rule
}

// builtinCSS styles the inspector when no stylesheet file is found. Kept to
// the same rules the asset file carries so the editor works from any cwd.
const builtinCSS = `
.inspector { left: 98%; top: 2%; width: 240px; height: 170px; background: #16161c; border: #3a3a46; }
.inspector-title { left: 98%; top: 3%; width: 220px; height: 24px; color: #ffb428; }
.inspector-name { left: 98%; top: 6%; width: 220px; height: 20px; }
.inspector-position { left: 98%; top: 9%; width: 220px; height: 20px; color: #c8c8d0; }
.inspector-row1 { left: 98%; top: 12%; width: 220px; height: 20px; color: #c8c8d0; }
.inspector-row2 { left: 98%; top: 15%; width: 220px; height: 20px; color: #c8c8d0; }
`

// BuiltinStylesheet returns the compiled-in stylesheet.
func BuiltinStylesheet() *Stylesheet {
	sheet, _ := ParseCSS(builtinCSS)
	return sheet
}

// ParseCSS parses a primitive CSS file: ".class { key: value; }" blocks only,
// no combinators, no @rules. Blocks with unsupported selectors are skipped.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	content = stripComments(content)
	for {
		open := strings.Index(content, "{")
		if open == -1 {
			return sheet, nil
		}
		closing := strings.Index(content[open:], "}")
		if closing == -1 {
			return sheet, nil
		}
		closing += open
		selector := strings.TrimSpace(content[:open])
		body := content[open+1 : closing]
		content = content[closing+1:]
		if len(selector) < 2 || (selector[0] != '.' && selector[0] != '#') {
			continue
		}
		sheet.Rules = append(sheet.Rules, Rule{Selector: selector, Props: parseDeclarations(body)})
	}
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		open := strings.Index(s, "/*")
		if open == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:open])
		end := strings.Index(s[open+2:], "*/")
		if end == -1 {
			return b.String()
		}
		s = s[open+2+end+2:]
	}
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k != "" && v != "" {
			props[k] = v
		}
	}
	return props
}

// ComputedStyle holds resolved values used for drawing. LeftPct/TopPct are
// 0–100 for percentage positioning; -1 means use Left/Top as pixels. Padding
// is the text offset (pixels) from the node's left/top.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
}

// DefaultComputedStyle returns a minimal style (transparent background, white
// text, no border, zero size).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.White,
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
	}
}

// ResolveProps builds a ComputedStyle from a merged property map.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		}
	}
	return out
}

// ParseHexColor parses #RGB or #RRGGBB into rl.Color (alpha 255).
func ParseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return rl.Black, false
	}
	hex := s[1:]
	var r, g, b uint8
	switch len(hex) {
	case 3:
		r = hexByte(hex[0]) * 17
		g = hexByte(hex[1]) * 17
		b = hexByte(hex[2]) * 17
	case 6:
		r = hexByte(hex[0])<<4 + hexByte(hex[1])
		g = hexByte(hex[2])<<4 + hexByte(hex[3])
		b = hexByte(hex[4])<<4 + hexByte(hex[5])
	default:
		return rl.Black, false
	}
	return rl.NewColor(r, g, b, 255), true
}

func hexByte(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// ParsePx parses a number with optional "px" suffix. Unitless is pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to 0–100. Used for left/top percentage positioning.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}
