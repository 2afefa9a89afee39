package editorconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the editor config file, relative to the process
// working directory.
const ConfigPath = "config/editor.json"

// Prefs holds editor-only preferences (debug overlays, grid, last document,
// output size for new sessions). Persisted across runs; the scene itself is
// not (a session starts empty or from an imported document).
type Prefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	GridVisible  bool   `json:"grid_visible"`
	ScenePath    string `json:"scene_path,omitempty"`
	AutoReload   bool   `json:"auto_reload"`
	OutputWidth  int    `json:"output_width,omitempty"`
	OutputHeight int    `json:"output_height,omitempty"`
}

// Default returns default preferences (overlays off, grid on, live reload on).
func Default() Prefs {
	return Prefs{
		ShowFPS:      false,
		ShowMemAlloc: false,
		GridVisible:  true,
		ScenePath:    "scene.json",
		AutoReload:   true,
		OutputWidth:  800,
		OutputHeight: 600,
	}
}

// Load reads preferences from config/editor.json. If the file is missing or
// invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/editor.json, creating the config
// directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}
