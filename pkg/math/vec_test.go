package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"axis", Vec3{0, 0, 7}},
		{"diagonal", Vec3{3, 4, 12}},
		{"tiny", Vec3{1e-3, -2e-3, 5e-4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.v.Normalize().Length()
			if abs(l-1) > 1e-5 {
				t.Errorf("Normalize(%v).Length() = %v, want 1", tt.v, l)
			}
		})
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != Up {
		t.Errorf("Normalize(zero) = %v, want %v", got, Up)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -3}
	b := Vec3{2, -1, 0}
	if got, want := a.Min(b), (Vec3{1, -1, -3}); got != want {
		t.Errorf("Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{2, 5, 0}); got != want {
		t.Errorf("Max() = %v, want %v", got, want)
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		v, step, want float32
	}{
		{13.2, 10, 10},
		{27.9, 10, 30},
		{15, 10, 20},
		{-15, 10, -10},
		{0.26, 0.5, 0.5},
		{7, 0, 7},
	}

	for _, tt := range tests {
		if got := Snap(tt.v, tt.step); abs(got-tt.want) > 1e-5 {
			t.Errorf("Snap(%v, %v) = %v, want %v", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5, 0, 1) = %v, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5, 0, 1) = %v, want 0", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5, 0, 1) = %v, want 0.5", got)
	}
}

func TestDegreesRadians(t *testing.T) {
	for _, deg := range []float32{-180, -45, 0, 90, 360} {
		if got := Degrees(Radians(deg)); abs(got-deg) > 1e-4 {
			t.Errorf("Degrees(Radians(%v)) = %v", deg, got)
		}
	}
}

func TestAABB(t *testing.T) {
	b := EmptyAABB()
	if !b.IsEmpty() {
		t.Fatal("EmptyAABB should be empty")
	}
	b = b.Extend(Vec3{-1, 0, 2}).Extend(Vec3{3, 4, -2})
	if b.Min != (Vec3{-1, 0, -2}) || b.Max != (Vec3{3, 4, 2}) {
		t.Errorf("Extend: got %v", b)
	}
	if got, want := b.Extent(), (Vec3{4, 4, 4}); got != want {
		t.Errorf("Extent() = %v, want %v", got, want)
	}
	if got, want := b.Center(), (Vec3{1, 2, 0}); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestAABBTransform(t *testing.T) {
	b := NewAABB(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	got := b.Transform(Scale(2, 1, 1).Mul(Translate(5, 0, 0)))
	if !got.Min.ApproxEqual(Vec3{3, -1, -1}, 1e-5) || !got.Max.ApproxEqual(Vec3{7, 1, 1}, 1e-5) {
		t.Errorf("Transform: got %v", got)
	}

	// A 45 degree yaw widens the XZ footprint to the diagonal.
	rot := b.Transform(RotateY(float32(0.25 * 3.14159265)))
	if abs(rot.Max.X-1.41421) > 1e-3 {
		t.Errorf("rotated Max.X = %v, want ~1.414", rot.Max.X)
	}
}
