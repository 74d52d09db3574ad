// Package input converts SDL2 events into editor input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	WheelY float32 // notches, positive away from the user
	Shift  bool    // shift held when the event fired
	Ctrl   bool    // control or command held
}

// Input handles all input processing.
type Input struct {
	events []Event
	mouseX int
	mouseY int
	shift  bool
	ctrl   bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.translate(event) {
			return true
		}
	}

	return false
}

func (i *Input) translate(event sdl.Event) (quit bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return false
		}
		t := EventKeyDown
		if e.Type == sdl.KEYUP {
			t = EventKeyUp
		}
		i.trackModifier(e.Keysym.Scancode, t == EventKeyDown)
		i.events = append(i.events, Event{
			Type:  t,
			Key:   e.Keysym.Scancode,
			Shift: i.shift,
			Ctrl:  i.ctrl,
		})

	case *sdl.MouseMotionEvent:
		i.mouseX, i.mouseY = int(e.X), int(e.Y)
		i.events = append(i.events, Event{
			Type:   EventMouseMove,
			MouseX: i.mouseX,
			MouseY: i.mouseY,
			Shift:  i.shift,
		})

	case *sdl.MouseButtonEvent:
		i.mouseX, i.mouseY = int(e.X), int(e.Y)
		t := EventMouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			t = EventMouseUp
		}
		i.events = append(i.events, Event{
			Type:   t,
			MouseX: i.mouseX,
			MouseY: i.mouseY,
			Button: e.Button,
			Shift:  i.shift,
		})

	case *sdl.MouseWheelEvent:
		y := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		i.events = append(i.events, Event{
			Type:   EventMouseWheel,
			MouseX: i.mouseX,
			MouseY: i.mouseY,
			WheelY: y,
			Shift:  i.shift,
		})
	}
	return false
}

func (i *Input) trackModifier(key sdl.Scancode, down bool) {
	switch key {
	case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
		i.shift = down
	case sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL, sdl.SCANCODE_LGUI, sdl.SCANCODE_RGUI:
		i.ctrl = down
	}
}

// Shift reports whether a shift key is held.
func (i *Input) Shift() bool {
	return i.shift
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
