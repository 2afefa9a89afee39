package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 800
	windowTitle  = "Scene Editor"
)

// Run starts the window and main loop. Each frame it calls update (input and
// state), then clears the screen and calls draw (3D viewport and 2D overlay).
// shutdown runs after the loop ends, before the window closes, so GPU
// resources can still be freed. ESC toggles the console, not quit; close via
// the window button.
func Run(update, draw, shutdown func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(18, 18, 22, 255))
		draw()
		rl.EndDrawing()
	}
	if shutdown != nil {
		shutdown()
	}
}
