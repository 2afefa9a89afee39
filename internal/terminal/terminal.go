package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/commands"
	"scene-editor/internal/logger"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
)

var (
	// Reused every frame when drawing the console bar to avoid per-frame color allocations.
	consoleBarColor  = rl.NewColor(40, 40, 40, 255)
	consoleLineColor = rl.NewColor(80, 80, 80, 255)
	consoleHistoryBg = rl.NewColor(24, 24, 24, 240)
)

// Console is the command input bar at the bottom of the screen, shown/hidden
// with ESC. Every submitted line is parsed as subcommand + flags and executed
// via the command registry; errors are echoed into the log above the bar.
// While open it captures typing; picking and the gizmo keep working since
// they are mouse driven.
type Console struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a Console that logs lines and runs them through reg. It starts
// closed (hidden); press ESC to open.
func New(log *logger.Logger, reg *commands.Registry) *Console {
	return &Console{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing keyboard input.
func (c *Console) IsOpen() bool {
	return c.open
}

// Update handles ESC (toggle open/closed), and when open: typing, backspace,
// enter. Call once per frame.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.open = !c.open
	}
	if !c.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			c.inputBuf += pasted
		}
	} else {
		for {
			ch := rl.GetCharPressed()
			if ch == 0 {
				break
			}
			c.inputBuf += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(c.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(c.inputBuf)
		c.inputBuf = c.inputBuf[:len(c.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && c.inputBuf != "" {
		line := c.inputBuf
		c.log.Log(line)
		c.inputBuf = ""

		if args, ok := commands.Parse(line); ok {
			if err := c.reg.Execute(args); err != nil {
				c.log.Log(err.Error())
			}
		}
	}
}

// Draw draws the input bar at the bottom when open, and the recent log lines
// above it. Uses GetScreenWidth/GetScreenHeight so the bar matches the 2D
// overlay coordinate system.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight

	// History area above the bar: last maxLinesOnScreen lines
	historyHeight := maxLinesOnScreen * lineHeight
	historyY := barY - historyHeight
	if historyY < 0 {
		historyHeight = barY
		historyY = 0
	}
	if historyHeight > 0 {
		rl.DrawRectangle(0, int32(historyY), int32(screenW), int32(historyHeight), consoleHistoryBg)
	}
	lines := c.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := historyY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		rl.DrawText(line, int32(padding), int32(y), int32(fontSize), rl.LightGray)
	}

	// Input bar
	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), consoleBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, consoleLineColor)
	rl.DrawText(prompt+c.inputBuf+"|", int32(padding), int32(barY+padding), int32(fontSize), rl.White)
}
