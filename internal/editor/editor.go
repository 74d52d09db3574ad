// Package editor ties the scene, camera and interaction session together.
//
// Editor is the single context object a shell owns. Every pointer, wheel and
// UI event goes through it on the main thread; Frame gives the renderer a
// read-only snapshot.
package editor

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/editor/scene"
	"github.com/Faultbox/primforge/internal/editor/session"
	"github.com/Faultbox/primforge/internal/engine/camera"
	"github.com/Faultbox/primforge/internal/engine/picking"
	"github.com/Faultbox/primforge/internal/logger"
	"github.com/Faultbox/primforge/pkg/math"
)

// WheelNotch converts one mouse wheel notch to a zoom delta.
const WheelNotch = 100

// Button is a pointer button.
type Button int

// Pointer buttons.
const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

var buttonNames = [...]string{"left", "right", "middle"}

func (b Button) String() string {
	if b < 0 || int(b) >= len(buttonNames) {
		return "unknown"
	}
	return buttonNames[b]
}

// Options configures a new Editor.
type Options struct {
	Tool        session.Tool
	SnapEnabled bool
	SnapStep    float32
}

// DefaultOptions returns the editor defaults: Move tool, snapping off, step 10.
func DefaultOptions() Options {
	return Options{
		Tool:     session.ToolMove,
		SnapStep: session.DefaultSnapStep,
	}
}

// Editor owns the scene, camera and interaction session.
type Editor struct {
	Scene   *scene.Scene
	Camera  *camera.OrbitCamera
	Session *session.Session

	tool           session.Tool
	viewportWidth  float32
	viewportHeight float32
	status         string
}

// New creates an editor with an empty scene.
func New(opts Options) *Editor {
	return &Editor{
		Scene:          scene.New(scene.NewLibrary()),
		Camera:         camera.NewOrbitCamera(),
		Session:        session.New(session.NewSnap(opts.SnapEnabled, opts.SnapStep)),
		tool:           opts.Tool,
		viewportWidth:  1,
		viewportHeight: 1,
	}
}

// Tool returns the active tool.
func (e *Editor) Tool() session.Tool {
	return e.tool
}

// SetTool changes the active tool. A drag in progress keeps its mode.
func (e *Editor) SetTool(t session.Tool) {
	e.tool = t
	logger.Debug("tool changed", zap.Stringer("tool", t))
}

// Snap returns the snap configuration.
func (e *Editor) Snap() session.Snap {
	return e.Session.Snap
}

// SetSnap changes the snap configuration. The step is floored at session.MinSnapStep.
func (e *Editor) SetSnap(enabled bool, step float32) {
	e.Session.Snap = session.NewSnap(enabled, step)
}

// SetViewport sets the size in pixels of the area pointer coordinates refer to.
func (e *Editor) SetViewport(width, height float32) {
	e.viewportWidth = max(width, 1)
	e.viewportHeight = max(height, 1)
}

// Viewport returns the viewport size in pixels.
func (e *Editor) Viewport() (width, height float32) {
	return e.viewportWidth, e.viewportHeight
}

// Aspect returns the viewport aspect ratio.
func (e *Editor) Aspect() float32 {
	return e.viewportWidth / e.viewportHeight
}

// Status returns the last status message for display.
func (e *Editor) Status() string {
	return e.status
}

// SetStatus replaces the status message.
func (e *Editor) SetStatus(format string, args ...any) {
	e.status = fmt.Sprintf(format, args...)
}

// Ray returns the world ray under a viewport pixel, from the current camera.
func (e *Editor) Ray(x, y float32) picking.Ray {
	return picking.FromCamera(e.Camera, x, y, e.viewportWidth, e.viewportHeight)
}

// Pick returns the instance whose world bounds the ray under (x, y) hits first.
func (e *Editor) Pick(x, y float32) (*scene.Instance, bool) {
	instances := e.Scene.Instances()
	i, _, ok := picking.Nearest(e.Ray(x, y), instances)
	if !ok {
		return nil, false
	}
	return instances[i], true
}

// PointerDown starts a gesture. The secondary button or a held shift key
// orbits the camera. Otherwise the pick under the pointer decides: with the
// Select tool it only changes the selection; with a transform tool a hit is
// selected and immediately dragged. A miss clears the selection.
func (e *Editor) PointerDown(x, y float32, button Button, shift bool) {
	at := math.Vec2{X: x, Y: y}

	if button == ButtonRight || shift {
		e.Session.BeginOrbit(at)
		return
	}
	if button != ButtonLeft {
		return
	}

	inst, hit := e.Pick(x, y)
	if !hit {
		e.Scene.ClearSelection()
		return
	}

	if sel, _ := e.Scene.SelectedID(); sel != inst.ID {
		e.Scene.Select(inst.ID)
	}

	mode, ok := e.tool.Mode()
	if !ok {
		return
	}
	switch mode {
	case session.ModeMove:
		ground, ok := e.Ray(x, y).IntersectGround()
		if !ok {
			return
		}
		e.Session.BeginMove(inst, at, ground)
	case session.ModeRotate:
		e.Session.BeginRotate(inst, at)
	case session.ModeScale:
		e.Session.BeginScale(inst, at)
	}
}

// PointerMove continues the current gesture.
func (e *Editor) PointerMove(x, y float32) {
	at := math.Vec2{X: x, Y: y}

	switch st := e.Session.State().(type) {
	case session.Orbiting:
		if d, ok := e.Session.OrbitDelta(at); ok {
			e.Camera.Orbit(d.X, d.Y)
		}
	case session.Dragging:
		inst, ok := e.Scene.Get(st.Target)
		if !ok {
			e.Session.End()
			return
		}
		p := session.Pointer{Screen: at}
		if st.Mode == session.ModeMove {
			p.Ground, p.OnGround = e.Ray(x, y).IntersectGround()
		}
		e.Session.Update(inst, p)
	}
}

// PointerUp ends any gesture.
func (e *Editor) PointerUp() {
	e.Session.End()
}

// Wheel zooms the camera. Positive deltas move away from the target; one
// wheel notch is WheelNotch.
func (e *Editor) Wheel(delta float32) {
	e.Camera.Zoom(delta)
}

// Add places a new primitive and reports it in the status line.
func (e *Editor) Add(p scene.Primitive) scene.ID {
	id := e.Scene.Add(p)
	if inst, ok := e.Scene.Get(id); ok {
		e.SetStatus("Added %s", inst.Name)
	}
	return id
}

// DeleteSelected removes the selected instance.
func (e *Editor) DeleteSelected() bool {
	id, ok := e.Scene.SelectedID()
	if !ok {
		return false
	}
	e.endDragOn(id)
	return e.Scene.Remove(id)
}

// DuplicateSelected duplicates the selected instance and selects the copy.
func (e *Editor) DuplicateSelected() (scene.ID, bool) {
	id, ok := e.Scene.SelectedID()
	if !ok {
		return scene.NoID, false
	}
	return e.Scene.Duplicate(id)
}

// Clear empties the scene.
func (e *Editor) Clear() {
	e.Session.End()
	e.Scene.Clear()
	e.SetStatus("Scene cleared")
}

// FocusSelected points the camera at the selected instance.
func (e *Editor) FocusSelected() bool {
	inst, ok := e.Scene.Selected()
	if !ok {
		return false
	}
	e.Camera.Focus(inst.WorldBounds().Center())
	return true
}

func (e *Editor) endDragOn(id scene.ID) {
	if d, ok := e.Session.Dragging(); ok && d.Target == id {
		e.Session.End()
	}
}
