// Package camera provides the orbit camera used by the editor viewport.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/primforge/pkg/math"
)

// Default camera settings.
const (
	DefaultYaw             = math32.Pi / 4
	DefaultPitch           = 0.65
	DefaultDistance        = 520.0
	DefaultFOV             = 55.0 // degrees
	DefaultNear            = 0.1
	DefaultFar             = 5000.0
	DefaultDragSensitivity = 0.008
	DefaultZoomSensitivity = 0.0012
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	// Point to orbit around
	Target math.Vec3

	// Spherical coordinates
	Distance float32 // Distance from target
	Pitch    float32 // Vertical angle above the ground plane, radians
	Yaw      float32 // Horizontal angle from +X towards +Z, radians

	// Projection
	FOV       float32 // Vertical field of view, radians
	Near, Far float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32 // radians per pixel
	ZoomSensitivity float32 // log-distance per wheel unit
}

// NewOrbitCamera creates an orbit camera with the editor defaults.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		FOV:             math.Radians(DefaultFOV),
		Near:            DefaultNear,
		Far:             DefaultFar,
		MinDistance:     80,
		MaxDistance:     2500,
		MinPitch:        -0.1,
		MaxPitch:        1.45,
		DragSensitivity: DefaultDragSensitivity,
		ZoomSensitivity: DefaultZoomSensitivity,
	}
	c.Reset()
	return c
}

// Reset restores target, angles and distance to the defaults.
// Projection, limits and sensitivities are left alone.
func (c *OrbitCamera) Reset() {
	c.Target = math.Vec3{}
	c.Yaw = DefaultYaw
	c.Pitch = DefaultPitch
	c.Distance = math.Clamp(DefaultDistance, c.MinDistance, c.MaxDistance)
}

// Eye returns the camera position in world space.
func (c *OrbitCamera) Eye() math.Vec3 {
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)
	return c.Target.Add(math.Vec3{X: cp * cy, Y: sp, Z: cp * sy}.Scale(c.Distance))
}

// View returns the view matrix for this camera.
func (c *OrbitCamera) View() math.Mat4 {
	return math.LookAt(c.Eye(), c.Target, math.Up)
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *OrbitCamera) Projection(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjection returns View followed by Projection.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.View().Mul(c.Projection(aspect))
}

// Orbit rotates the camera by a pointer delta in pixels.
func (c *OrbitCamera) Orbit(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.DragSensitivity
	c.Pitch = math.Clamp(c.Pitch-deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// Zoom scales the distance exponentially by a wheel delta.
// Positive deltas move the camera away from the target.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance = math.Clamp(c.Distance*math32.Exp(delta*c.ZoomSensitivity), c.MinDistance, c.MaxDistance)
}

// Pan moves the target along the ground relative to the view direction.
func (c *OrbitCamera) Pan(forward, right, up float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	sy, cy := math32.Sincos(c.Yaw)
	fwd := math.Vec3{X: -cy, Z: -sy}
	side := math.Vec3{X: sy, Z: -cy}

	c.Target = c.Target.
		Add(fwd.Scale(forward * speed)).
		Add(side.Scale(right * speed)).
		Add(math.Up.Scale(up * speed))
}

// Focus moves the target to p without changing angles or distance.
func (c *OrbitCamera) Focus(p math.Vec3) {
	c.Target = p
}
