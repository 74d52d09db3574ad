package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateMouse(t *testing.T) {
	in := New()

	in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, X: 10, Y: 20, Button: sdl.BUTTON_RIGHT})
	in.translate(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 15, Y: 25})
	in.translate(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2})
	in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, X: 15, Y: 25, Button: sdl.BUTTON_RIGHT})

	events := in.Events()
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}

	want := []EventType{EventMouseDown, EventMouseMove, EventMouseWheel, EventMouseUp}
	for i, e := range events {
		if e.Type != want[i] {
			t.Errorf("event %d type = %v, want %v", i, e.Type, want[i])
		}
	}
	if events[0].Button != sdl.BUTTON_RIGHT {
		t.Errorf("button = %d, want right", events[0].Button)
	}
	if w := events[2]; w.WheelY != 2 || w.MouseX != 15 || w.MouseY != 25 {
		t.Errorf("wheel event = %+v, want delta 2 at last pointer position", w)
	}
}

func TestTranslateShiftTracking(t *testing.T) {
	in := New()

	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_LSHIFT}})
	if !in.Shift() {
		t.Fatal("shift not tracked on key down")
	}
	in.translate(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT})
	if e := in.Events()[1]; !e.Shift {
		t.Error("mouse down should carry shift")
	}

	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_LSHIFT}})
	if in.Shift() {
		t.Error("shift still held after key up")
	}
}

func TestTranslateIgnoresKeyRepeat(t *testing.T) {
	in := New()
	in.translate(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_DELETE}})

	if in.IsKeyPressed(sdl.SCANCODE_DELETE) {
		t.Error("repeated key should be ignored")
	}
}

func TestTranslateQuit(t *testing.T) {
	in := New()
	if !in.translate(&sdl.QuitEvent{Type: sdl.QUIT}) {
		t.Error("quit event should request quit")
	}
}
