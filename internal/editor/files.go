package editor

import (
	"path/filepath"
	"strings"

	"github.com/Faultbox/primforge/internal/export/stl"
	"github.com/Faultbox/primforge/internal/project"
)

// LoadProject replaces the scene with a project file. On failure the scene
// is unchanged and the status line says why.
func (e *Editor) LoadProject(path string) error {
	e.Session.End()
	if err := project.LoadFile(path, e.Scene); err != nil {
		e.SetStatus("Load failed: %v", err)
		return err
	}
	e.SetStatus("Loaded %s (%d objects)", filepath.Base(path), e.Scene.Len())
	return nil
}

// SaveProject writes the scene to a project file.
func (e *Editor) SaveProject(path string) error {
	if err := project.SaveFile(path, e.Scene); err != nil {
		e.SetStatus("Save failed: %v", err)
		return err
	}
	e.SetStatus("Saved %s", filepath.Base(path))
	return nil
}

// ExportSTL writes every instance to an STL file. An empty name uses the
// file name without extension.
func (e *Editor) ExportSTL(path, name string, binary bool) error {
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := stl.WriteFile(path, name, e.Scene.Instances(), binary); err != nil {
		e.SetStatus("Export failed: %v", err)
		return err
	}
	e.SetStatus("Exported %s (%d facets)", filepath.Base(path), stl.FacetCount(e.Scene.Instances()))
	return nil
}
