package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/primforge/internal/editor/scene"
	"github.com/Faultbox/primforge/internal/editor/session"
)

// command is a keyboard action.
type command int

const (
	cmdNone command = iota
	cmdAdd
	cmdTool
	cmdToggleSnap
	cmdDelete
	cmdDuplicate
	cmdFocus
	cmdResetView
	cmdClear
	cmdSave
	cmdExport
	cmdQuit
)

// binding is what a key press resolves to.
type binding struct {
	cmd       command
	primitive scene.Primitive
	tool      session.Tool
}

var addKeys = map[sdl.Scancode]scene.Primitive{
	sdl.SCANCODE_1: scene.Box,
	sdl.SCANCODE_2: scene.Sphere,
	sdl.SCANCODE_3: scene.Cylinder,
	sdl.SCANCODE_4: scene.Cone,
	sdl.SCANCODE_5: scene.Torus,
}

var toolKeys = map[sdl.Scancode]session.Tool{
	sdl.SCANCODE_Q: session.ToolSelect,
	sdl.SCANCODE_W: session.ToolMove,
	sdl.SCANCODE_E: session.ToolRotate,
	sdl.SCANCODE_R: session.ToolScale,
}

// resolve maps a key press to a command. Ctrl selects the file commands.
func resolve(key sdl.Scancode, ctrl bool) binding {
	if ctrl {
		switch key {
		case sdl.SCANCODE_S:
			return binding{cmd: cmdSave}
		case sdl.SCANCODE_E:
			return binding{cmd: cmdExport}
		case sdl.SCANCODE_D:
			return binding{cmd: cmdDuplicate}
		case sdl.SCANCODE_N:
			return binding{cmd: cmdClear}
		}
		return binding{}
	}

	if p, ok := addKeys[key]; ok {
		return binding{cmd: cmdAdd, primitive: p}
	}
	if t, ok := toolKeys[key]; ok {
		return binding{cmd: cmdTool, tool: t}
	}
	switch key {
	case sdl.SCANCODE_G:
		return binding{cmd: cmdToggleSnap}
	case sdl.SCANCODE_DELETE, sdl.SCANCODE_BACKSPACE:
		return binding{cmd: cmdDelete}
	case sdl.SCANCODE_F:
		return binding{cmd: cmdFocus}
	case sdl.SCANCODE_HOME:
		return binding{cmd: cmdResetView}
	case sdl.SCANCODE_ESCAPE:
		return binding{cmd: cmdQuit}
	}
	return binding{}
}
