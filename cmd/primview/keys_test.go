package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/primforge/internal/editor/scene"
	"github.com/Faultbox/primforge/internal/editor/session"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		key  sdl.Scancode
		ctrl bool
		want binding
	}{
		{"add box", sdl.SCANCODE_1, false, binding{cmd: cmdAdd, primitive: scene.Box}},
		{"add torus", sdl.SCANCODE_5, false, binding{cmd: cmdAdd, primitive: scene.Torus}},
		{"rotate tool", sdl.SCANCODE_E, false, binding{cmd: cmdTool, tool: session.ToolRotate}},
		{"select tool", sdl.SCANCODE_Q, false, binding{cmd: cmdTool, tool: session.ToolSelect}},
		{"ctrl+e exports", sdl.SCANCODE_E, true, binding{cmd: cmdExport}},
		{"ctrl+s saves", sdl.SCANCODE_S, true, binding{cmd: cmdSave}},
		{"ctrl+d duplicates", sdl.SCANCODE_D, true, binding{cmd: cmdDuplicate}},
		{"snap toggle", sdl.SCANCODE_G, false, binding{cmd: cmdToggleSnap}},
		{"backspace deletes", sdl.SCANCODE_BACKSPACE, false, binding{cmd: cmdDelete}},
		{"unbound", sdl.SCANCODE_Z, false, binding{}},
		{"unbound with ctrl", sdl.SCANCODE_1, true, binding{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.key, tt.ctrl))
		})
	}
}

func TestButtonFor(t *testing.T) {
	b, ok := buttonFor(sdl.BUTTON_RIGHT)
	assert.True(t, ok)
	assert.Equal(t, "right", b.String())

	_, ok = buttonFor(sdl.BUTTON_X1)
	assert.False(t, ok)
}
