package input

// PointerState derives press and release edges from polled button state.
// Set the position and Down fields each frame, then call Update.
type PointerState struct {
	X, Y float32

	// Buttons held this frame
	LeftDown   bool
	RightDown  bool
	MiddleDown bool

	// Buttons pressed this frame
	LeftPressed   bool
	RightPressed  bool
	MiddlePressed bool

	// Buttons released this frame
	LeftReleased   bool
	RightReleased  bool
	MiddleReleased bool

	// Movement since the previous Update
	DeltaX, DeltaY float32

	prevLeft, prevRight, prevMiddle bool
	prevX, prevY                    float32
	primed                          bool
}

// Update computes edges and deltas against the previous frame.
// The first call reports no movement.
func (p *PointerState) Update() {
	if p.primed {
		p.DeltaX = p.X - p.prevX
		p.DeltaY = p.Y - p.prevY
	}
	p.primed = true

	p.LeftPressed = p.LeftDown && !p.prevLeft
	p.RightPressed = p.RightDown && !p.prevRight
	p.MiddlePressed = p.MiddleDown && !p.prevMiddle

	p.LeftReleased = !p.LeftDown && p.prevLeft
	p.RightReleased = !p.RightDown && p.prevRight
	p.MiddleReleased = !p.MiddleDown && p.prevMiddle

	p.prevLeft = p.LeftDown
	p.prevRight = p.RightDown
	p.prevMiddle = p.MiddleDown
	p.prevX = p.X
	p.prevY = p.Y
}

// Moved reports whether the pointer moved since the previous Update.
func (p *PointerState) Moved() bool {
	return p.DeltaX != 0 || p.DeltaY != 0
}

// AnyReleased reports whether any button was released this frame.
func (p *PointerState) AnyReleased() bool {
	return p.LeftReleased || p.RightReleased || p.MiddleReleased
}
