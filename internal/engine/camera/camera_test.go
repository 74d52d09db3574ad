package camera

import (
	"testing"

	"github.com/Faultbox/primforge/pkg/math"
)

func TestDefaults(t *testing.T) {
	c := NewOrbitCamera()

	if c.Distance != 520 || c.Pitch != 0.65 {
		t.Errorf("defaults: distance %v pitch %v, want 520 / 0.65", c.Distance, c.Pitch)
	}
	if got := c.Eye().Distance(c.Target); abs(got-520) > 0.01 {
		t.Errorf("Eye distance = %v, want 520", got)
	}
}

func TestEye(t *testing.T) {
	c := NewOrbitCamera()
	c.Yaw = 0
	c.Pitch = 0
	c.Distance = 100
	c.Target = math.Vec3{X: 1, Y: 2, Z: 3}

	got := c.Eye()
	want := math.Vec3{X: 101, Y: 2, Z: 3}
	if !got.ApproxEqual(want, 1e-4) {
		t.Errorf("Eye() = %v, want %v", got, want)
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	tests := []struct {
		name   string
		deltaY float32
		want   float32
	}{
		{"drag up hits max", -10000, 1.45},
		{"drag down hits min", 10000, -0.1},
		{"small drag", 10, 0.65 - 10*DefaultDragSensitivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.Orbit(0, tt.deltaY)
			if abs(c.Pitch-tt.want) > 1e-5 {
				t.Errorf("Pitch = %v, want %v", c.Pitch, tt.want)
			}
		})
	}
}

func TestOrbitYaw(t *testing.T) {
	c := NewOrbitCamera()
	before := c.Yaw
	c.Orbit(100, 0)
	if got, want := c.Yaw-before, 100*float32(DefaultDragSensitivity); abs(got-want) > 1e-5 {
		t.Errorf("yaw delta = %v, want %v", got, want)
	}
}

func TestZoom(t *testing.T) {
	c := NewOrbitCamera()
	c.Zoom(100)
	if c.Distance <= 520 {
		t.Errorf("Zoom(100): distance %v, want > 520", c.Distance)
	}

	c.Zoom(1e6)
	if c.Distance != 2500 {
		t.Errorf("Zoom far: distance %v, want 2500", c.Distance)
	}
	c.Zoom(-1e6)
	if c.Distance != 80 {
		t.Errorf("Zoom near: distance %v, want 80", c.Distance)
	}
}

func TestPanMovesTowardsView(t *testing.T) {
	c := NewOrbitCamera()
	eye := c.Eye()
	c.Pan(1, 0, 0)

	// Moving forward brings the target away from the eye on the ground plane.
	before := math.Vec3{X: eye.X, Z: eye.Z}.Length()
	after := math.Vec3{X: eye.X - c.Target.X, Z: eye.Z - c.Target.Z}.Length()
	if after <= before {
		t.Errorf("forward pan: horizontal distance %v, want > %v", after, before)
	}
	if c.Target.Y != 0 {
		t.Errorf("forward pan changed height: %v", c.Target.Y)
	}
}

func TestViewProjectionCentersTarget(t *testing.T) {
	c := NewOrbitCamera()
	c.Target = math.Vec3{X: 50, Y: 5, Z: -20}

	ndc := c.ViewProjection(16.0 / 9.0).TransformPoint(c.Target)
	if abs(ndc.X) > 1e-4 || abs(ndc.Y) > 1e-4 {
		t.Errorf("target projects to (%v, %v), want screen centre", ndc.X, ndc.Y)
	}
	if ndc.Z <= -1 || ndc.Z >= 1 {
		t.Errorf("target depth %v, want inside clip range", ndc.Z)
	}
}

func TestResetKeepsLimits(t *testing.T) {
	c := NewOrbitCamera()
	c.MaxDistance = 900
	c.Orbit(300, 40)
	c.Focus(math.Vec3{X: 10})
	c.Reset()

	if c.Target != (math.Vec3{}) || c.Yaw != DefaultYaw || c.MaxDistance != 900 {
		t.Errorf("Reset: target %v yaw %v max %v", c.Target, c.Yaw, c.MaxDistance)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
