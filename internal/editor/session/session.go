// Package session implements the pointer interaction state machine:
// Idle, Orbiting, or Dragging one instance with a transform tool.
//
// Start state of a drag lives only inside the Dragging value, so a finished
// drag can never leak its anchor into the next one.
package session

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/editor/scene"
	"github.com/Faultbox/primforge/internal/logger"
	"github.com/Faultbox/primforge/pkg/math"
)

// Drag sensitivities.
const (
	RotateSensitivity = 0.01 // radians per pixel
	ScaleSensitivity  = 0.01 // log-scale per pixel
)

// Mode is the transform a drag applies.
type Mode int

// Drag modes.
const (
	ModeMove Mode = iota
	ModeRotate
	ModeScale
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeRotate:
		return "rotate"
	case ModeScale:
		return "scale"
	}
	return "unknown"
}

// State is one of Idle, Orbiting or Dragging.
type State interface {
	isState()
}

// Idle means no gesture is in progress.
type Idle struct{}

// Orbiting means the pointer is rotating the camera.
type Orbiting struct {
	Last math.Vec2 // pointer position at the previous event
}

// Dragging means the pointer is transforming one instance.
type Dragging struct {
	Mode   Mode
	Target scene.ID

	StartPointer  math.Vec2
	StartHit      math.Vec3 // ground point under the pointer at the start (Move)
	StartPosition math.Vec3
	StartYaw      float32
	StartScale    math.Vec3
}

func (Idle) isState()     {}
func (Orbiting) isState() {}
func (Dragging) isState() {}

// Pointer is the input for one pointer event.
type Pointer struct {
	Screen   math.Vec2
	Ground   math.Vec3 // ground-plane hit under the pointer
	OnGround bool      // false if the pointer ray misses the ground
}

// Session tracks the current gesture.
type Session struct {
	state State
	Snap  Snap
}

// New creates an idle session with the given snap settings.
func New(snap Snap) *Session {
	return &Session{state: Idle{}, Snap: snap}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Idle reports whether no gesture is in progress.
func (s *Session) Idle() bool {
	_, ok := s.state.(Idle)
	return ok
}

// Dragging returns the drag in progress.
func (s *Session) Dragging() (Dragging, bool) {
	d, ok := s.state.(Dragging)
	return d, ok
}

// BeginOrbit starts a camera orbit at the given pointer position.
func (s *Session) BeginOrbit(at math.Vec2) {
	s.state = Orbiting{Last: at}
}

// OrbitDelta returns the pointer motion since the previous orbit event.
// It reports false when not orbiting.
func (s *Session) OrbitDelta(at math.Vec2) (math.Vec2, bool) {
	o, ok := s.state.(Orbiting)
	if !ok {
		return math.Vec2{}, false
	}
	s.state = Orbiting{Last: at}
	return at.Sub(o.Last), true
}

// BeginMove starts moving inst. hit is the ground point under the pointer.
func (s *Session) BeginMove(inst *scene.Instance, at math.Vec2, hit math.Vec3) {
	s.begin(ModeMove, inst, at, hit)
}

// BeginRotate starts rotating inst about the vertical axis.
func (s *Session) BeginRotate(inst *scene.Instance, at math.Vec2) {
	s.begin(ModeRotate, inst, at, math.Vec3{})
}

// BeginScale starts scaling inst uniformly.
func (s *Session) BeginScale(inst *scene.Instance, at math.Vec2) {
	s.begin(ModeScale, inst, at, math.Vec3{})
}

func (s *Session) begin(mode Mode, inst *scene.Instance, at math.Vec2, hit math.Vec3) {
	s.state = Dragging{
		Mode:          mode,
		Target:        inst.ID,
		StartPointer:  at,
		StartHit:      hit,
		StartPosition: inst.Position,
		StartYaw:      inst.RotationY,
		StartScale:    inst.Scale,
	}
	logger.Debug("drag started", zap.Stringer("mode", mode), zap.Int("id", int(inst.ID)))
}

// Update applies the drag in progress to inst for a pointer event. Every
// result is computed from the captured start state, never incrementally.
// It reports whether inst changed.
func (s *Session) Update(inst *scene.Instance, p Pointer) bool {
	d, ok := s.state.(Dragging)
	if !ok || inst == nil || inst.ID != d.Target {
		return false
	}

	switch d.Mode {
	case ModeMove:
		if !p.OnGround {
			return false
		}
		delta := p.Ground.Sub(d.StartHit)
		x := d.StartPosition.X + delta.X
		z := d.StartPosition.Z + delta.Z
		if s.Snap.Enabled {
			x = s.Snap.Apply(x)
			z = s.Snap.Apply(z)
		}
		inst.Position = math.Vec3{X: x, Y: d.StartPosition.Y, Z: z}
	case ModeRotate:
		inst.RotationY = d.StartYaw + (p.Screen.X-d.StartPointer.X)*RotateSensitivity
	case ModeScale:
		factor := math32.Exp(-(p.Screen.Y - d.StartPointer.Y) * ScaleSensitivity)
		inst.Scale = d.StartScale.Scale(factor)
	default:
		return false
	}
	return true
}

// End stops any gesture and discards the start state. Changes already
// applied stay applied.
func (s *Session) End() {
	if d, ok := s.state.(Dragging); ok {
		logger.Debug("drag ended", zap.Stringer("mode", d.Mode), zap.Int("id", int(d.Target)))
	}
	s.state = Idle{}
}
