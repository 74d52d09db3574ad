// Package main is primview, a keyboard-driven primforge editor in a plain
// SDL window.
//
// Keys: 1-5 add box/sphere/cylinder/cone/torus, Q/W/E/R select/move/rotate/scale,
// G toggles snapping, Delete removes, F focuses, Home resets the view,
// Ctrl+D duplicates, Ctrl+S saves, Ctrl+E exports STL, Ctrl+N clears.
// Drag with the left button to use the tool, right button or shift to orbit,
// wheel to zoom.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/config"
	"github.com/Faultbox/primforge/internal/editor"
	"github.com/Faultbox/primforge/internal/engine/input"
	"github.com/Faultbox/primforge/internal/engine/renderer"
	"github.com/Faultbox/primforge/internal/engine/window"
	"github.com/Faultbox/primforge/internal/logger"
)

const (
	windowTitle    = "primforge"
	defaultProject = "scene.json"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== primview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := newViewer(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.close()

	v.run()
	logger.Info("viewer closed normally")
}

// viewer owns the window, renderer and editor.
type viewer struct {
	cfg      *config.Config
	win      *window.Window
	input    *input.Input
	renderer *renderer.Renderer
	editor   *editor.Editor

	projectPath string
	title       string
}

func newViewer(cfg *config.Config) (*viewer, error) {
	win, err := window.New(windowTitle, cfg.Window)
	if err != nil {
		return nil, err
	}
	if err := renderer.InitGL(); err != nil {
		win.Close()
		return nil, err
	}

	r, err := renderer.New(renderer.ConfigFrom(cfg))
	if err != nil {
		win.Close()
		return nil, err
	}

	v := &viewer{
		cfg:         cfg,
		win:         win,
		input:       input.New(),
		renderer:    r,
		editor:      editor.NewFromConfig(cfg),
		projectPath: cfg.Editor.Project,
	}
	v.resize()

	if v.projectPath != "" {
		if err := v.editor.LoadProject(v.projectPath); err != nil {
			logger.Warn("could not open project", zap.String("path", v.projectPath), zap.Error(err))
		}
	}
	return v, nil
}

func (v *viewer) close() {
	v.renderer.Close()
	v.win.Close()
}

func (v *viewer) run() {
	for {
		if v.input.Update() {
			return
		}
		for _, e := range v.input.Events() {
			if v.handle(e) {
				return
			}
		}

		v.renderer.Draw(v.editor.Frame())
		v.win.SwapBuffers()
		v.updateTitle()
	}
}

// handle applies one event. Returns true to quit.
func (v *viewer) handle(e input.Event) bool {
	ed := v.editor
	x, y := float32(e.MouseX), float32(e.MouseY)

	switch e.Type {
	case input.EventWindowResize:
		v.resize()
	case input.EventMouseDown:
		if b, ok := buttonFor(e.Button); ok {
			ed.PointerDown(x, y, b, e.Shift)
		}
	case input.EventMouseMove:
		ed.PointerMove(x, y)
	case input.EventMouseUp:
		ed.PointerUp()
	case input.EventMouseWheel:
		// Scrolling up zooms in.
		ed.Wheel(-e.WheelY * editor.WheelNotch)
	case input.EventKeyDown:
		return v.command(resolve(e.Key, e.Ctrl))
	}
	return false
}

func (v *viewer) command(b binding) bool {
	ed := v.editor

	switch b.cmd {
	case cmdAdd:
		ed.Add(b.primitive)
	case cmdTool:
		ed.SetTool(b.tool)
		ed.SetStatus("Tool: %s", b.tool)
	case cmdToggleSnap:
		snap := ed.Snap()
		ed.SetSnap(!snap.Enabled, snap.Step)
		ed.SetStatus("Snap %v (step %g)", !snap.Enabled, snap.Step)
	case cmdDelete:
		ed.DeleteSelected()
	case cmdDuplicate:
		ed.DuplicateSelected()
	case cmdFocus:
		ed.FocusSelected()
	case cmdResetView:
		ed.Camera.Reset()
	case cmdClear:
		ed.Clear()
	case cmdSave:
		path := v.projectPath
		if path == "" {
			path = defaultProject
		}
		if ed.SaveProject(path) == nil {
			v.projectPath = path
		}
	case cmdExport:
		path := v.projectPath
		if path == "" {
			path = defaultProject
		}
		out := strings.TrimSuffix(path, filepath.Ext(path)) + ".stl"
		_ = ed.ExportSTL(out, v.cfg.Export.Name, v.cfg.Export.Binary)
	case cmdQuit:
		return true
	}
	return false
}

// resize syncs the editor viewport (window coordinates, the space of mouse
// events) and the GL viewport (drawable pixels).
func (v *viewer) resize() {
	w, h := v.win.Size()
	v.editor.SetViewport(float32(w), float32(h))
	dw, dh := v.win.DrawableSize()
	v.renderer.Resize(dw, dh)
}

func (v *viewer) updateTitle() {
	title := fmt.Sprintf("%s - %s", windowTitle, v.editor.Tool())
	if s := v.editor.Status(); s != "" {
		title += " - " + s
	}
	if title != v.title {
		v.title = title
		v.win.SetTitle(title)
	}
}

// buttonFor maps an SDL mouse button to an editor button.
func buttonFor(b uint8) (editor.Button, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return editor.ButtonLeft, true
	case sdl.BUTTON_RIGHT:
		return editor.ButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return editor.ButtonMiddle, true
	}
	return 0, false
}
