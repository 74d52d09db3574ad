package main

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/primforge/internal/editor/scene"
	"github.com/Faultbox/primforge/internal/editor/session"
)

// shortcut binds a key chord to an editor action.
type shortcut struct {
	chord imgui.KeyChord
	run   func(app *App)
}

func ctrl(key imgui.Key) imgui.KeyChord {
	return imgui.KeyChord(imgui.ModCtrl) | imgui.KeyChord(key)
}

func key(k imgui.Key) imgui.KeyChord {
	return imgui.KeyChord(k)
}

func addShortcut(k imgui.Key, p scene.Primitive) shortcut {
	return shortcut{key(k), func(app *App) { app.editor.Add(p) }}
}

func toolShortcut(k imgui.Key, t session.Tool) shortcut {
	return shortcut{key(k), func(app *App) { app.editor.SetTool(t) }}
}

// shortcuts are checked in order; the first match wins.
var shortcuts = []shortcut{
	{ctrl(imgui.KeyS), (*App).saveProject},
	{ctrl(imgui.KeyO), func(app *App) { app.showDialog(dialogOpenProject) }},
	{ctrl(imgui.KeyE), func(app *App) { app.showDialog(dialogExportSTL) }},
	{ctrl(imgui.KeyD), func(app *App) { app.editor.DuplicateSelected() }},
	{ctrl(imgui.KeyN), func(app *App) {
		app.editor.Clear()
		app.setProjectPath("")
	}},

	addShortcut(imgui.Key1, scene.Box),
	addShortcut(imgui.Key2, scene.Sphere),
	addShortcut(imgui.Key3, scene.Cylinder),
	addShortcut(imgui.Key4, scene.Cone),
	addShortcut(imgui.Key5, scene.Torus),

	toolShortcut(imgui.KeyQ, session.ToolSelect),
	toolShortcut(imgui.KeyW, session.ToolMove),
	toolShortcut(imgui.KeyE, session.ToolRotate),
	toolShortcut(imgui.KeyR, session.ToolScale),

	{key(imgui.KeyG), func(app *App) {
		s := app.editor.Snap()
		app.editor.SetSnap(!s.Enabled, s.Step)
	}},
	{key(imgui.KeyDelete), func(app *App) { app.editor.DeleteSelected() }},
	{key(imgui.KeyBackspace), func(app *App) { app.editor.DeleteSelected() }},
	{key(imgui.KeyF), func(app *App) { app.editor.FocusSelected() }},
	{key(imgui.KeyHome), func(app *App) { app.editor.Camera.Reset() }},
	{key(imgui.KeyF12), (*App).captureScreenshot},
}

// handleShortcuts runs keyboard shortcuts. They are ignored while a text
// field or slider has focus.
func (app *App) handleShortcuts() {
	if imgui.IsAnyItemActive() {
		return
	}
	for _, s := range shortcuts {
		if imgui.IsKeyChordPressed(s.chord) {
			s.run(app)
			return
		}
	}
}
