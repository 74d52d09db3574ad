package editor

import (
	"github.com/Faultbox/primforge/internal/editor/scene"
	"github.com/Faultbox/primforge/pkg/math"
	"github.com/Faultbox/primforge/pkg/mesh"
)

// Item is one instance as the renderer sees it.
type Item struct {
	Mesh     *mesh.Mesh // upload once per pointer, shared between items
	Model    math.Mat4
	Color    scene.Color
	Selected bool
}

// Frame is the per-frame snapshot handed to the renderer.
type Frame struct {
	ViewProjection math.Mat4
	Eye            math.Vec3
	Items          []Item

	// World bounds of the selected instance, if any.
	Selection    math.AABB
	HasSelection bool
}

// Frame builds the render snapshot for the current state. It does not
// modify the editor.
func (e *Editor) Frame() Frame {
	f := Frame{
		ViewProjection: e.Camera.ViewProjection(e.Aspect()),
		Eye:            e.Camera.Eye(),
		Items:          make([]Item, 0, e.Scene.Len()),
	}

	selected, _ := e.Scene.SelectedID()
	for _, inst := range e.Scene.Instances() {
		item := Item{
			Mesh:     inst.Mesh,
			Model:    inst.ModelMatrix(),
			Color:    inst.Color,
			Selected: inst.ID == selected,
		}
		if item.Selected {
			item.Color = inst.Color.Highlight()
			f.Selection = inst.WorldBounds()
			f.HasSelection = true
		}
		f.Items = append(f.Items, item)
	}
	return f
}
