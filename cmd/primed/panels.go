package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/primforge/internal/editor/scene"
	"github.com/Faultbox/primforge/internal/editor/session"
	"github.com/Faultbox/primforge/pkg/math"
)

// Property slider ranges.
const (
	positionRange = 1000
	heightMin     = -200
	heightMax     = 600
	sizeMin       = 0.5
	sizeMax       = 600
)

// propertyBuffers holds text being edited in the property panel.
type propertyBuffers struct {
	id    scene.ID
	name  string
	color string
}

// sync reloads the buffers when the selection changed.
func (b *propertyBuffers) sync(inst *scene.Instance) {
	if b.id == inst.ID {
		return
	}
	b.id = inst.ID
	b.name = inst.Name
	b.color = inst.Color.Hex()
}

func (app *App) renderToolbox() {
	ed := app.editor

	imgui.Text("Add")
	for i, p := range scene.Primitives() {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.Button(primitiveLabel(p)) {
			ed.Add(p)
		}
		if imgui.IsItemHovered() {
			imgui.SetTooltip(fmt.Sprintf("Add %s (%d)", p, i+1))
		}
	}

	imgui.Spacing()
	imgui.Text("Tool")
	for _, t := range session.Tools() {
		if imgui.SelectableBoolV(toolLabel(t), ed.Tool() == t, 0, imgui.NewVec2(0, 0)) {
			ed.SetTool(t)
		}
	}

	imgui.Spacing()
	snap := ed.Snap()
	enabled, step := snap.Enabled, snap.Step
	changed := imgui.Checkbox("Snap to grid", &enabled)
	imgui.BeginDisabledV(!enabled)
	imgui.SetNextItemWidth(-1)
	changed = imgui.SliderFloatV("##SnapStep", &step, 1, 100, "step %.0f", imgui.SliderFlagsNone) || changed
	imgui.EndDisabled()
	if changed {
		ed.SetSnap(enabled, step)
	}
}

func (app *App) renderOutliner() {
	s := app.editor.Scene
	imgui.Text(fmt.Sprintf("Objects (%d)", s.Len()))

	if imgui.BeginChildStrV("OutlinerChild", imgui.NewVec2(0, 0), imgui.ChildFlagsBorders, 0) {
		selected, _ := s.SelectedID()
		for _, inst := range s.Instances() {
			label := fmt.Sprintf("%s##%d", inst.Name, inst.ID)
			if imgui.SelectableBoolV(label, inst.ID == selected, 0, imgui.NewVec2(0, 0)) {
				s.Select(inst.ID)
			}
		}
	}
	imgui.EndChild()
}

func (app *App) renderProperties() {
	ed := app.editor
	s := ed.Scene

	inst, ok := s.Selected()
	if !ok {
		imgui.TextDisabled("Nothing selected")
		imgui.TextDisabled("Click an object in the viewport")
		return
	}
	app.props.sync(inst)

	imgui.Text(fmt.Sprintf("%s #%d", inst.Type, inst.ID))
	imgui.Separator()

	// Name, applied on Enter
	imgui.Text("Name")
	imgui.SetNextItemWidth(-1)
	if imgui.InputTextWithHint("##Name", "name", &app.props.name, imgui.InputTextFlagsEnterReturnsTrue, nil) {
		s.Rename(inst.ID, app.props.name)
		app.props.name = inst.Name
	}

	imgui.Spacing()
	imgui.Text("Position")
	pos := inst.Position
	changed := sliderAxis("X##Pos", &pos.X, -positionRange, positionRange)
	changed = sliderAxis("Y##Pos", &pos.Y, heightMin, heightMax) || changed
	changed = sliderAxis("Z##Pos", &pos.Z, -positionRange, positionRange) || changed

	imgui.Text("Rotation")
	deg := math.Degrees(inst.RotationY)
	if sliderAxis("Y##Rot", &deg, -180, 180) {
		changed = true
	}

	if changed {
		s.SetTransform(inst.ID, pos, math.Radians(deg), inst.Scale)
	}

	imgui.Spacing()
	imgui.Text("Size")
	if size, ok := s.Size(inst.ID); ok {
		resized := sliderAxis("W##Size", &size.X, sizeMin, sizeMax)
		resized = sliderAxis("H##Size", &size.Y, sizeMin, sizeMax) || resized
		resized = sliderAxis("D##Size", &size.Z, sizeMin, sizeMax) || resized
		if resized {
			s.Resize(inst.ID, size.X, size.Y, size.Z)
		}
	}

	imgui.Spacing()
	imgui.Text("Color")
	c := inst.Color
	imgui.TextColored(imgui.NewVec4(c.R, c.G, c.B, 1), "■■■")
	imgui.SameLine()
	imgui.SetNextItemWidth(-1)
	if imgui.InputTextWithHint("##Color", "#rrggbb", &app.props.color, imgui.InputTextFlagsEnterReturnsTrue, nil) {
		if parsed, err := scene.ParseColor(app.props.color); err == nil {
			s.Recolor(inst.ID, parsed)
			app.props.color = parsed.Hex()
		} else {
			ed.SetStatus("Bad color %q", app.props.color)
			app.props.color = inst.Color.Hex()
		}
	}

	imgui.Spacing()
	imgui.Separator()
	bounds := inst.WorldBounds()
	imgui.TextDisabled(fmt.Sprintf("Bounds (%.1f, %.1f, %.1f)", bounds.Min.X, bounds.Min.Y, bounds.Min.Z))
	imgui.TextDisabled(fmt.Sprintf("       (%.1f, %.1f, %.1f)", bounds.Max.X, bounds.Max.Y, bounds.Max.Z))
	if g := inst.Geometry(); g != nil {
		imgui.TextDisabled(fmt.Sprintf("%d vertices, %d triangles", g.VertexCount(), g.TriangleCount()))
	}

	imgui.Spacing()
	if imgui.ButtonV("Focus Camera", imgui.NewVec2(-1, 0)) {
		ed.FocusSelected()
	}
	if imgui.ButtonV("Duplicate", imgui.NewVec2(-1, 0)) {
		ed.DuplicateSelected()
	}
	if imgui.ButtonV("Delete", imgui.NewVec2(-1, 0)) {
		ed.DeleteSelected()
	}
}

// sliderAxis draws a labelled full-width slider.
func sliderAxis(label string, v *float32, lo, hi float32) bool {
	imgui.SetNextItemWidth(-1)
	return imgui.SliderFloatV(label, v, lo, hi, label[:1]+" %.1f", imgui.SliderFlagsNone)
}

func primitiveLabel(p scene.Primitive) string {
	switch p {
	case scene.Box:
		return "Box"
	case scene.Sphere:
		return "Sphere"
	case scene.Cylinder:
		return "Cyl"
	case scene.Cone:
		return "Cone"
	case scene.Torus:
		return "Torus"
	}
	return p.String()
}

func toolLabel(t session.Tool) string {
	keys := map[session.Tool]string{
		session.ToolSelect: "Q",
		session.ToolMove:   "W",
		session.ToolRotate: "E",
		session.ToolScale:  "R",
	}
	return fmt.Sprintf("%s (%s)", t, keys[t])
}
