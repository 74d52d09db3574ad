package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateY(0.7))
	id := Identity()

	if got := m.Mul(id); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
	if got := id.Mul(m); got != m {
		t.Errorf("I * M = %v, want %v", got, m)
	}
}

func TestMulOrder(t *testing.T) {
	// Scale first, then translate: (1,0,0) -> (2,0,0) -> (12,0,0).
	m := Scale(2, 2, 2).Mul(Translate(10, 0, 0))
	got := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{12, 0, 0}
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("scale then translate: got %v, want %v", got, want)
	}

	// Translate first, then scale: (1,0,0) -> (11,0,0) -> (22,0,0).
	m = Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	got = m.TransformPoint(Vec3{1, 0, 0})
	want = Vec3{22, 0, 0}
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("translate then scale: got %v, want %v", got, want)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in the last row (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		p    Vec3
		want Vec3
	}{
		{"translate", Translate(10, 20, 30), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"rotateY 90", RotateY(float32(math.Pi / 2)), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"rotateX 90", RotateX(float32(math.Pi / 2)), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !got.ApproxEqual(tt.want, 0.001) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTransformPointHomogeneous(t *testing.T) {
	m := Identity()
	m[15] = 2
	got := m.TransformPoint(Vec3{2, 4, 6})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("TransformPoint with w=2: got %v, want %v", got, want)
	}
}

func TestTransformDirection(t *testing.T) {
	m := Translate(100, 100, 100).Mul(Scale(2, 2, 2))
	got := m.TransformDirection(Vec3{0, 1, 0})
	want := Vec3{0, 2, 0}
	if got != want {
		t.Errorf("TransformDirection: got %v, want %v", got, want)
	}
}

func TestMulVec4MatchesTransformPoint(t *testing.T) {
	m := Scale(3, 1, 2).Mul(RotateY(0.4)).Mul(Translate(-5, 7, 1))
	p := Vec3{1.5, -2, 4}
	v := m.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	got := Vec3{v[0], v[1], v[2]}
	want := m.TransformPoint(p)
	if !got.ApproxEqual(want, 1e-5) || v[3] != 1 {
		t.Errorf("MulVec4 = %v, want %v with w=1", v, want)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"identity", Identity()},
		{"translate", Translate(3, -4, 5)},
		{"model", Scale(2, 0.5, 3).Mul(RotateY(1.1)).Mul(Translate(10, 20, -30))},
		{"view", LookAt(Vec3{300, 200, 300}, Vec3{}, Up)},
		{"proj", Perspective(Radians(55), 1.5, 0.1, 5000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Mul(tt.m.Inverse())
			if !got.ApproxEqual(Identity(), 1e-3) {
				t.Errorf("M * M^-1 = %v, want identity", got)
			}
		})
	}
}

// A full view-projection is too ill-conditioned for an M * M^-1 check in
// float32, so the inverse is checked the way picking uses it.
func TestInverseUnprojectsNearPlane(t *testing.T) {
	tests := []struct {
		name string
		eye  Vec3
	}{
		{"close", Vec3{300, 200, 300}},
		{"far", Vec3{1500, 1200, 1600}},
		{"overhead", Vec3{0, 2500, 0.5}},
	}

	const near = 0.1
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := LookAt(tt.eye, Vec3{}, Up).Mul(Perspective(Radians(55), 1.5, near, 5000))
			p := vp.Inverse().TransformPoint(Vec3{0, 0, -1})

			want := tt.eye.Add(Vec3{}.Sub(tt.eye).Normalize().Scale(near))
			if !p.ApproxEqual(want, 0.01) {
				t.Errorf("near plane centre = %v, want %v (%.4f from eye)", p, want, p.Distance(tt.eye))
			}
		})
	}
}

func TestInverseSingularIsFinite(t *testing.T) {
	m := Scale(0, 1, 1)
	inv := m.Inverse()
	for i, v := range inv {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("Inverse of singular matrix: element %d = %v, want finite", i, v)
		}
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(1.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}

	// A point on the near plane maps to clip z = -1.
	got := m.TransformPoint(Vec3{0, 0, -near})
	if abs(got.Z+1) > 1e-4 {
		t.Errorf("near plane z = %f, want -1", got.Z)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Up)

	// The eye lands at the view-space origin and the target straight ahead (-Z).
	if got := m.TransformPoint(eye); !got.ApproxEqual(Vec3{}, 1e-5) {
		t.Errorf("LookAt eye: got %v, want origin", got)
	}
	if got := m.TransformPoint(Vec3{}); !got.ApproxEqual(Vec3{0, 0, -5}, 1e-5) {
		t.Errorf("LookAt target: got %v, want (0, 0, -5)", got)
	}
}

func TestTranspose(t *testing.T) {
	m := Translate(1, 2, 3)
	tr := m.Transpose()
	if tr[3] != 1 || tr[7] != 2 || tr[11] != 3 {
		t.Errorf("Transpose: got %v", tr)
	}
	if tr.Transpose() != m {
		t.Error("Transpose twice should be the original")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
