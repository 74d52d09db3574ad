package main

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/primforge/internal/editor"
)

// renderViewport draws the scene into the offscreen framebuffer, shows it as
// an image filling the panel and forwards pointer input to the editor.
func (app *App) renderViewport() {
	avail := imgui.ContentRegionAvail()
	if avail.X < 1 || avail.Y < 1 {
		return
	}

	app.viewport.Resize(int32(avail.X), int32(avail.Y))
	app.editor.SetViewport(avail.X, avail.Y)

	tex := app.renderer.Render(app.viewport, app.editor.Frame())

	origin := imgui.CursorScreenPos()
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(tex))
	imgui.ImageV(*texRef,
		avail,
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0))

	app.handleViewportPointer(origin, imgui.IsItemHovered())
}

// handleViewportPointer turns polled mouse state into editor gestures.
// Gestures start only over the image but follow the pointer outside it
// until release.
func (app *App) handleViewportPointer(origin imgui.Vec2, hovered bool) {
	ed := app.editor
	p := &app.pointer

	mouse := imgui.MousePos()
	p.X = mouse.X - origin.X
	p.Y = mouse.Y - origin.Y
	p.LeftDown = imgui.IsMouseDown(imgui.MouseButtonLeft)
	p.RightDown = imgui.IsMouseDown(imgui.MouseButtonRight)
	p.MiddleDown = imgui.IsMouseDown(imgui.MouseButtonMiddle)
	p.Update()

	if hovered {
		shift := imgui.IsKeyDown(imgui.KeyLeftShift) || imgui.IsKeyDown(imgui.KeyRightShift)
		switch {
		case p.LeftPressed:
			ed.PointerDown(p.X, p.Y, editor.ButtonLeft, shift)
		case p.RightPressed:
			ed.PointerDown(p.X, p.Y, editor.ButtonRight, shift)
		}

		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
			ed.Wheel(-wheel * editor.WheelNotch)
		}
	}

	if !ed.Session.Idle() && p.Moved() {
		ed.PointerMove(p.X, p.Y)
	}
	if p.AnyReleased() {
		ed.PointerUp()
	}
}
