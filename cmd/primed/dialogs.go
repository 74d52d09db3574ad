package main

import (
	"path/filepath"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/logger"
)

type dialogKind int

const (
	dialogOpenProject dialogKind = iota
	dialogSaveProject
	dialogExportSTL
)

// dialogResult is a path chosen in a native dialog. An empty path means
// the dialog was cancelled.
type dialogResult struct {
	kind dialogKind
	path string
}

// showDialog opens a native file dialog in a goroutine. SDL and Cocoa window
// operations must stay on the main thread, so the result is queued and
// handled by drainDialogs.
func (app *App) showDialog(kind dialogKind) {
	if app.dialogOpen {
		return
	}
	app.dialogOpen = true

	go func() {
		path, err := runDialog(kind)
		if err != nil && err != dialog.ErrCancelled {
			logger.Warn("file dialog error", zap.Error(err))
		}
		app.dialogs <- dialogResult{kind: kind, path: path}
	}()
}

func runDialog(kind dialogKind) (string, error) {
	switch kind {
	case dialogOpenProject:
		return dialog.File().
			Filter("Project Files", "json", "yaml", "yml").
			Filter("All Files", "*").
			Title("Open Project").
			Load()
	case dialogSaveProject:
		return dialog.File().
			Filter("JSON Project", "json").
			Filter("YAML Project", "yaml", "yml").
			Title("Save Project").
			Save()
	default:
		return dialog.File().
			Filter("STL Files", "stl").
			Title("Export STL").
			Save()
	}
}

// drainDialogs applies finished dialog results on the main thread.
func (app *App) drainDialogs() {
	for {
		select {
		case r := <-app.dialogs:
			app.dialogOpen = false
			if r.path != "" {
				app.applyDialog(r)
			}
		default:
			return
		}
	}
}

func (app *App) applyDialog(r dialogResult) {
	switch r.kind {
	case dialogOpenProject:
		app.openProject(r.path)
	case dialogSaveProject:
		path := withDefaultExt(r.path, ".json")
		if app.editor.SaveProject(path) == nil {
			app.setProjectPath(path)
		}
	case dialogExportSTL:
		path := withDefaultExt(r.path, ".stl")
		_ = app.editor.ExportSTL(path, app.cfg.Export.Name, app.cfg.Export.Binary)
	}
}

// withDefaultExt appends ext when path has no extension.
func withDefaultExt(path, ext string) string {
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}
