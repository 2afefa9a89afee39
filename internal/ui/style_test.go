package ui

import "testing"

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
		/* panel chrome */
		.inspector { width: 240px; background: #16161c; }
		#main { left: 50%; }
		div.unsupported { color: #fff; }
		.inspector { width: 300px; }
	`)
	if err != nil {
		t.Fatal(err)
	}
	if len(sheet.Rules) != 3 {
		t.Fatalf("rules = %d, want 3 (unsupported selector skipped)", len(sheet.Rules))
	}
	if sheet.Rules[0].Selector != ".inspector" || sheet.Rules[0].Props["width"] != "240px" {
		t.Fatalf("first rule = %+v", sheet.Rules[0])
	}
	// later rules override when merged by the engine
	if sheet.Rules[2].Props["width"] != "300px" {
		t.Fatalf("override rule = %+v", sheet.Rules[2])
	}
}

func TestResolveProps(t *testing.T) {
	style := ResolveProps(map[string]string{
		"background": "#102030",
		"width":      "240px",
		"left":       "98%",
		"top":        "12px",
		"border":     "#fff",
	})
	if style.Background.R != 0x10 || style.Background.G != 0x20 || style.Background.B != 0x30 {
		t.Fatalf("background = %+v", style.Background)
	}
	if style.Width != 240 {
		t.Fatalf("width = %d", style.Width)
	}
	if style.LeftPct != 98 {
		t.Fatalf("left pct = %d", style.LeftPct)
	}
	if style.TopPct != -1 || style.Top != 12 {
		t.Fatalf("top = %d pct %d, want px value", style.Top, style.TopPct)
	}
	if !style.HasBorder {
		t.Fatal("border not resolved")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"#fff", 255, 255, 255, true},
		{"#16161c", 0x16, 0x16, 0x1c, true},
		{"red", 0, 0, 0, false},
		{"#12", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, ok := ParseHexColor(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (c.R != tt.r || c.G != tt.g || c.B != tt.b) {
				t.Fatalf("color = %+v", c)
			}
		})
	}
}

func TestBuiltinStylesheet(t *testing.T) {
	sheet := BuiltinStylesheet()
	if sheet == nil || len(sheet.Rules) == 0 {
		t.Fatal("builtin stylesheet empty")
	}
	found := false
	for _, r := range sheet.Rules {
		if r.Selector == ".inspector" {
			found = true
		}
	}
	if !found {
		t.Fatal("builtin stylesheet missing .inspector")
	}
}
