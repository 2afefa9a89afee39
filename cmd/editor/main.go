package main

import (
	"flag"
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-editor/internal/commands"
	"scene-editor/internal/debug"
	"scene-editor/internal/editor"
	"scene-editor/internal/editorconfig"
	"scene-editor/internal/entity"
	"scene-editor/internal/gizmo"
	"scene-editor/internal/graphics"
	"scene-editor/internal/logger"
	"scene-editor/internal/picking"
	"scene-editor/internal/primitives"
	"scene-editor/internal/scene"
	"scene-editor/internal/terminal"
	"scene-editor/internal/ui"
	"scene-editor/internal/watch"
)

const editorCSSPath = "assets/ui/editor.css"

func main() {
	prefs, _ := editorconfig.Load()
	log := logger.New()

	reg := entity.NewRegistry()
	reg.SetDefaults(entity.LoadDefaults("assets/primitives"))

	ed := editor.New(reg)
	if prefs.ScenePath != "" {
		ed.ScenePath = prefs.ScenePath
	}
	if prefs.OutputWidth > 0 {
		ed.Camera.Width = prefs.OutputWidth
	}
	if prefs.OutputHeight > 0 {
		ed.Camera.Height = prefs.OutputHeight
	}

	cmds := commands.NewRegistry()
	editor.RegisterCommands(cmds, ed, log)
	console := terminal.New(log, cmds)
	giz := gizmo.New()

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)

	uiEngine := ui.New()
	if err := uiEngine.LoadCSS(editorCSSPath); err != nil {
		log.Log(fmt.Sprintf("ui: %v, using built-in styles", err))
		uiEngine.SetStylesheet(ui.BuiltinStylesheet())
	}
	inspector := ui.NewInspector()

	// Raylib must be initialized before any mesh, material or shader is
	// created, so the viewport and the cache are set up inside graphics.Run's
	// caller frame only after InitWindow. graphics.Run opens the window first,
	// then calls update/draw each frame.
	var (
		cache   *primitives.Cache
		view    *scene.Viewport
		watcher *watch.Watcher
		watched string
	)

	rewatch := func() {
		if !prefs.AutoReload {
			return
		}
		cleaned := filepath.Clean(ed.ScenePath)
		if watcher != nil && watched == cleaned {
			return
		}
		if watcher != nil {
			watcher.Close()
			watcher = nil
		}
		w, err := watch.NewWatcher(ed.ScenePath)
		if err != nil {
			log.Log(fmt.Sprintf("watch %s: %v", ed.ScenePath, err))
			return
		}
		watcher = w
		watched = cleaned
	}

	drainWatcher := func() {
		if watcher == nil {
			return
		}
		reload := false
		for {
			select {
			case _, ok := <-watcher.Events:
				if !ok {
					watcher = nil
					return
				}
				reload = true
			case err, ok := <-watcher.Errors:
				if ok && err != nil {
					log.Log(fmt.Sprintf("watch: %v", err))
				}
			default:
				if reload {
					if err := ed.ImportFile(ed.ScenePath); err != nil {
						log.Log(fmt.Sprintf("reload %s: %v", ed.ScenePath, err))
					} else {
						log.Log(fmt.Sprintf("reloaded %s", ed.ScenePath))
					}
				}
				return
			}
		}
	}

	setup := func() {
		cache = primitives.NewCache()
		reg.SetReleaser(cache.Releaser())
		view = scene.New(cache)
		view.SetGridVisible(prefs.GridVisible)
		registerViewCommands(cmds, view, dbg, log)
		rewatch()
	}

	update := func() {
		if cache == nil {
			setup()
		}
		console.Update()
		view.Update(ed)

		ray := view.PointerRay()
		if !giz.Update(ed, ray) && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			// A miss keeps the current selection so a slightly off click
			// does not throw away an in-progress edit.
			if id, ok := picking.Pick(reg, ray); ok {
				reg.Select(id)
			}
		}

		rewatch()
		drainWatcher()
	}

	nodes := make([]*ui.Node, 0, 8)
	draw := func() {
		view.Draw(ed, func() { giz.Draw(ed) })

		sel := reg.Selected()
		nodes = inspector.AppendNodes(nodes[:0], sel != nil, selectionFor(sel))
		uiEngine.SetNodes(nodes)
		uiEngine.Draw()

		console.Draw()
		dbg.Draw()
	}

	shutdown := func() {
		if watcher != nil {
			watcher.Close()
		}
		reg.Clear()
		if cache != nil {
			cache.Unload()
		}
		prefs.ScenePath = ed.ScenePath
		if view != nil {
			prefs.GridVisible = view.GridVisible
		}
		prefs.ShowFPS = dbg.ShowFPS
		prefs.ShowMemAlloc = dbg.ShowMemAlloc
		prefs.OutputWidth = ed.Camera.Width
		prefs.OutputHeight = ed.Camera.Height
		if err := editorconfig.Save(prefs); err != nil {
			log.Log(fmt.Sprintf("save prefs: %v", err))
		}
	}

	graphics.Run(update, draw, shutdown)
}

// selectionFor converts the selected entity to the ui package's view of it.
// A nil entity yields the zero Selection; the inspector is hidden then anyway.
func selectionFor(e *entity.Entity) ui.Selection {
	if e == nil {
		return ui.Selection{}
	}
	return ui.Selection{
		ID:        uint64(e.ID),
		Kind:      e.Kind.String(),
		Position:  e.Visual.Position,
		Radius:    e.Radius,
		Size:      e.Size,
		Color:     e.Color,
		Intensity: e.Intensity,
		Direction: e.Direction,
		HasDir:    e.DirectionSet,
	}
}

// registerViewCommands wires console commands that touch presentation state
// (grid, overlays). Kept out of the editor package so it stays raylib-free.
func registerViewCommands(cmds *commands.Registry, view *scene.Viewport, dbg *debug.Debug, log *logger.Logger) {
	toggle := func(name string, set func(bool)) {
		fs := flag.NewFlagSet(name, flag.ContinueOnError)
		cmds.Register(name, fs, func() error {
			switch fs.Arg(0) {
			case "on":
				set(true)
			case "off":
				set(false)
			default:
				return fmt.Errorf("usage: %s on|off", name)
			}
			log.Log(fmt.Sprintf("%s %s", name, fs.Arg(0)))
			return nil
		})
	}
	toggle("grid", view.SetGridVisible)
	toggle("fps", dbg.SetShowFPS)
	toggle("mem", dbg.SetShowMemAlloc)
}
