package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays (FPS, heap alloc). All overlays are
// off by default; toggled via prefs and the fps/mem console commands.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn
// (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Draw renders any enabled debug overlays. Call after the scene and console
// in the draw loop. Text is only recomputed every updateInterval frames to
// limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(fpsPadding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		if text := d.lastFpsText; text != "" {
			w := rl.MeasureText(text, fpsFontSize)
			rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
		}
		y += fpsLineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		if text := d.lastMemText; text != "" {
			w := rl.MeasureText(text, fpsFontSize)
			rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
		}
	}
}
