package mesh

import (
	"testing"

	"github.com/Faultbox/primforge/pkg/math"
)

func generators() []struct {
	name string
	mesh *Mesh
} {
	return []struct {
		name string
		mesh *Mesh
	}{
		{"box", Box(40, 20, 40)},
		{"sphere", Sphere(18, 28, 18)},
		{"cylinder", Cylinder(16, 16, 30, 32)},
		{"frustum", Cylinder(8, 16, 30, 12)},
		{"cone", Cone(18, 35, 32)},
		{"torus", Torus(18, 6, 40, 18)},
		{"degenerate sphere", Sphere(5, 0, 0)},
		{"degenerate torus", Torus(5, 1, 1, 1)},
	}
}

func TestIndicesInRange(t *testing.T) {
	for _, tt := range generators() {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.mesh
			if len(m.Positions) != len(m.Normals) || len(m.Positions)%3 != 0 {
				t.Fatalf("positions %d / normals %d are not parallel triples", len(m.Positions), len(m.Normals))
			}
			if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
				t.Fatalf("index count %d is not a positive multiple of 3", len(m.Indices))
			}
			for i, idx := range m.Indices {
				if int(idx) >= m.VertexCount() {
					t.Fatalf("index %d = %d, vertex count %d", i, idx, m.VertexCount())
				}
			}
		})
	}
}

func TestBoundsMatchPositions(t *testing.T) {
	for _, tt := range generators() {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.mesh
			want := math.EmptyAABB()
			for i := 0; i < m.VertexCount(); i++ {
				want = want.Extend(m.Vertex(i))
			}
			if m.Bounds != want {
				t.Errorf("Bounds = %v, want %v", m.Bounds, want)
			}
		})
	}
}

func TestUnitNormals(t *testing.T) {
	for _, tt := range generators() {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < tt.mesh.VertexCount(); i++ {
				if l := tt.mesh.Normal(i).Length(); l < 0.999 || l > 1.001 {
					t.Fatalf("vertex %d normal length %v, want 1", i, l)
				}
			}
		})
	}
}

func TestOutwardWinding(t *testing.T) {
	for _, tt := range generators() {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.mesh
			for i := 0; i < m.TriangleCount(); i++ {
				a, b, c := m.Triangle(i)
				face := b.Sub(a).Cross(c.Sub(a))
				if face.Length() < 1e-6 {
					continue
				}
				o := i * 3
				n := m.Normal(int(m.Indices[o])).
					Add(m.Normal(int(m.Indices[o+1]))).
					Add(m.Normal(int(m.Indices[o+2])))
				if face.Dot(n) <= 0 {
					t.Fatalf("triangle %d winds inward: face %v, vertex normals %v", i, face, n)
				}
			}
		})
	}
}

func TestBox(t *testing.T) {
	m := Box(40, 20, 40)

	if got := m.VertexCount(); got != 24 {
		t.Errorf("VertexCount() = %d, want 24", got)
	}
	if got := len(m.Indices); got != 36 {
		t.Errorf("index count = %d, want 36", got)
	}
	if m.Bounds.Min != (math.Vec3{X: -20, Y: -10, Z: -20}) || m.Bounds.Max != (math.Vec3{X: 20, Y: 10, Z: 20}) {
		t.Errorf("Bounds = %v, want ±(20, 10, 20)", m.Bounds)
	}

	// Each of the six axis normals is carried by exactly four vertices.
	counts := make(map[math.Vec3]int)
	for i := 0; i < m.VertexCount(); i++ {
		counts[m.Normal(i)]++
	}
	axes := []math.Vec3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	for _, n := range axes {
		if counts[n] != 4 {
			t.Errorf("normal %v on %d vertices, want 4", n, counts[n])
		}
	}
}

func TestSphereCounts(t *testing.T) {
	m := Sphere(18, 28, 18)
	if got, want := m.VertexCount(), 19*29; got != want {
		t.Errorf("VertexCount() = %d, want %d", got, want)
	}
	if got, want := m.TriangleCount(), 18*28*2; got != want {
		t.Errorf("TriangleCount() = %d, want %d", got, want)
	}
	if abs(m.Bounds.Max.Y-18) > 1e-4 || abs(m.Bounds.Min.Y+18) > 1e-4 {
		t.Errorf("Bounds Y = [%v, %v], want [-18, 18]", m.Bounds.Min.Y, m.Bounds.Max.Y)
	}
}

func TestSpherePolesExact(t *testing.T) {
	const segments, rings = 28, 18
	m := Sphere(18, segments, rings)
	row := segments + 1

	for x := 0; x < row; x++ {
		north := m.Vertex(x)
		south := m.Vertex(rings*row + x)
		if north != (math.Vec3{Y: 18}) {
			t.Errorf("north pole vertex %d = %v, want (0, 18, 0)", x, north)
		}
		if south != (math.Vec3{Y: -18}) {
			t.Errorf("south pole vertex %d = %v, want (0, -18, 0)", x, south)
		}
	}

	// The second triangle of every last-row quad collapses onto the pole.
	last := (rings - 1) * segments * 2
	a, b, c := m.Triangle(last + 1)
	if face := b.Sub(a).Cross(c.Sub(a)); face != (math.Vec3{}) {
		t.Errorf("south pole triangle has area: face %v", face)
	}
}

func TestSegmentMinimums(t *testing.T) {
	if got, want := Sphere(1, 1, 1).TriangleCount(), 2*3*2; got != want {
		t.Errorf("Sphere(1, 1, 1).TriangleCount() = %d, want %d", got, want)
	}
	if got, want := Cylinder(1, 1, 1, 0).TriangleCount(), 3*4; got != want {
		t.Errorf("Cylinder(1, 1, 1, 0).TriangleCount() = %d, want %d", got, want)
	}
	if got, want := Torus(2, 1, 0, 0).TriangleCount(), 3*3*2; got != want {
		t.Errorf("Torus(2, 1, 0, 0).TriangleCount() = %d, want %d", got, want)
	}
}

func TestCylinderNormals(t *testing.T) {
	m := Cylinder(8, 16, 30, 12)

	// Side normals stay radial even on a frustum.
	for i := 0; i < 2*13; i++ {
		if n := m.Normal(i); n.Y != 0 {
			t.Fatalf("side vertex %d normal %v has a Y component", i, n)
		}
	}
	if m.Bounds.Max.Y != 15 || m.Bounds.Min.Y != -15 {
		t.Errorf("Bounds Y = [%v, %v], want [-15, 15]", m.Bounds.Min.Y, m.Bounds.Max.Y)
	}
}

func TestTorusBounds(t *testing.T) {
	m := Torus(18, 6, 40, 18)
	if abs(m.Bounds.Max.X-24) > 1e-3 || abs(m.Bounds.Max.Y-6) > 0.1 {
		t.Errorf("Bounds.Max = %v, want X=24, Y≈6", m.Bounds.Max)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
