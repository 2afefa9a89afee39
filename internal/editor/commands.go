package editor

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"scene-editor/internal/commands"
	"scene-editor/internal/entity"
	"scene-editor/internal/logger"
)

// RegisterCommands wires the console commands that mutate the scene through
// the editor: entity lifecycle, property edits, and document import/export.
// Presentation-side toggles (grid, fps) are registered by the caller, which
// owns those systems.
func RegisterCommands(reg *commands.Registry, ed *Editor, log *logger.Logger) {
	reg.Register("help", flag.NewFlagSet("help", flag.ContinueOnError), func() error {
		log.Log("commands: " + strings.Join(reg.Names(), ", "))
		return nil
	})

	addFS := flag.NewFlagSet("add", flag.ContinueOnError)
	reg.Register("add", addFS, func() error {
		k, ok := entity.KindFromName(addFS.Arg(0))
		if !ok {
			return fmt.Errorf("usage: add <sphere|cube|light>")
		}
		e := ed.Reg.Create(k)
		log.Log(fmt.Sprintf("added %s #%d", e.Kind, e.ID))
		return nil
	})

	delFS := flag.NewFlagSet("delete", flag.ContinueOnError)
	reg.Register("delete", delFS, func() error {
		id := ed.Reg.SelectedID()
		if delFS.NArg() > 0 {
			n, err := strconv.ParseUint(delFS.Arg(0), 10, 64)
			if err != nil {
				return fmt.Errorf("usage: delete [id]")
			}
			id = entity.ID(n)
		}
		if id == 0 {
			return fmt.Errorf("nothing selected")
		}
		ed.Reg.Delete(id)
		log.Log(fmt.Sprintf("deleted #%d", id))
		return nil
	})

	selFS := flag.NewFlagSet("select", flag.ContinueOnError)
	reg.Register("select", selFS, func() error {
		arg := selFS.Arg(0)
		if arg == "" || arg == "none" {
			ed.Reg.Select(0)
			return nil
		}
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("usage: select <id|none>")
		}
		// Best effort: a stale id just clears the selection.
		ed.Reg.Select(entity.ID(n))
		return nil
	})

	listFS := flag.NewFlagSet("list", flag.ContinueOnError)
	reg.Register("list", listFS, func() error {
		n := 0
		for e := range ed.Reg.All() {
			marker := " "
			if e.ID == ed.Reg.SelectedID() {
				marker = "*"
			}
			log.Log(fmt.Sprintf("%s #%d %s at (%.2f, %.2f, %.2f)",
				marker, e.ID, e.Kind, e.Center[0], e.Center[1], e.Center[2]))
			n++
		}
		if n == 0 {
			log.Log("scene is empty")
		}
		return nil
	})

	setFS := flag.NewFlagSet("set", flag.ContinueOnError)
	reg.Register("set", setFS, func() error {
		e := ed.Reg.Selected()
		if e == nil {
			return fmt.Errorf("nothing selected")
		}
		if setFS.NArg() < 2 {
			return fmt.Errorf("usage: set <x|y|z|radius|sx|sy|sz> <value>")
		}
		v, err := ParseComponent(setFS.Arg(1))
		if err != nil {
			return err
		}
		switch setFS.Arg(0) {
		case "x":
			ed.Reg.SetPosition(e, entity.AxisX, v)
		case "y":
			ed.Reg.SetPosition(e, entity.AxisY, v)
		case "z":
			ed.Reg.SetPosition(e, entity.AxisZ, v)
		case "radius":
			if e.Kind != entity.KindSphere {
				return fmt.Errorf("radius applies to spheres")
			}
			ed.Reg.SetRadius(e, v)
		case "sx", "sy", "sz":
			if e.Kind != entity.KindCube {
				return fmt.Errorf("size applies to cubes")
			}
			axis := entity.Axis(setFS.Arg(0)[1] - 'x')
			ed.Reg.SetSize(e, axis, v)
		default:
			return fmt.Errorf("unknown field %q", setFS.Arg(0))
		}
		return nil
	})

	colorFS := flag.NewFlagSet("color", flag.ContinueOnError)
	reg.Register("color", colorFS, func() error {
		e := ed.Reg.Selected()
		if e == nil {
			return fmt.Errorf("nothing selected")
		}
		if e.Kind == entity.KindLight {
			return fmt.Errorf("use intensity for lights")
		}
		c, err := parseVec3(colorFS)
		if err != nil {
			return fmt.Errorf("usage: color <r> <g> <b>")
		}
		ed.Reg.SetColor(e, c)
		return nil
	})

	intensityFS := flag.NewFlagSet("intensity", flag.ContinueOnError)
	reg.Register("intensity", intensityFS, func() error {
		e := ed.Reg.Selected()
		if e == nil || e.Kind != entity.KindLight {
			return fmt.Errorf("select a light first")
		}
		c, err := parseVec3(intensityFS)
		if err != nil {
			return fmt.Errorf("usage: intensity <r> <g> <b>")
		}
		ed.Reg.SetIntensity(e, c)
		return nil
	})

	directionFS := flag.NewFlagSet("direction", flag.ContinueOnError)
	reg.Register("direction", directionFS, func() error {
		e := ed.Reg.Selected()
		if e == nil || e.Kind != entity.KindLight {
			return fmt.Errorf("select a light first")
		}
		d, err := parseVec3(directionFS)
		if err != nil {
			return fmt.Errorf("usage: direction <x> <y> <z>")
		}
		ed.Reg.SetDirection(e, d)
		return nil
	})

	fovFS := flag.NewFlagSet("fov", flag.ContinueOnError)
	reg.Register("fov", fovFS, func() error {
		v, err := ParseComponent(fovFS.Arg(0))
		if err != nil || v <= 0 || v >= 180 {
			return fmt.Errorf("usage: fov <degrees in (0,180)>")
		}
		ed.Camera.Fov = float64(v)
		return nil
	})

	outputFS := flag.NewFlagSet("output", flag.ContinueOnError)
	reg.Register("output", outputFS, func() error {
		w, err1 := strconv.Atoi(outputFS.Arg(0))
		h, err2 := strconv.Atoi(outputFS.Arg(1))
		if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
			return fmt.Errorf("usage: output <width> <height>")
		}
		ed.Camera.Width = w
		ed.Camera.Height = h
		return nil
	})

	exportFS := flag.NewFlagSet("export", flag.ContinueOnError)
	reg.Register("export", exportFS, func() error {
		path := ed.ScenePath
		if exportFS.NArg() > 0 {
			path = exportFS.Arg(0)
		}
		if err := ed.ExportFile(path); err != nil {
			return err
		}
		ed.ScenePath = path
		log.Log("exported " + path)
		return nil
	})

	importFS := flag.NewFlagSet("import", flag.ContinueOnError)
	reg.Register("import", importFS, func() error {
		path := ed.ScenePath
		if importFS.NArg() > 0 {
			path = importFS.Arg(0)
		}
		if err := ed.ImportFile(path); err != nil {
			return err
		}
		ed.ScenePath = path
		log.Log(fmt.Sprintf("imported %s (%d entities)", path, ed.Reg.Len()))
		return nil
	})
}

// parseVec3 parses three positional arguments as finite numbers.
func parseVec3(fs *flag.FlagSet) ([3]float32, error) {
	var out [3]float32
	if fs.NArg() < 3 {
		return out, fmt.Errorf("expected three components")
	}
	for i := 0; i < 3; i++ {
		v, err := ParseComponent(fs.Arg(i))
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}
