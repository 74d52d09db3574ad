// Package mesh generates indexed triangle meshes for the parametric primitives.
//
// All generators produce counter-clockwise triangles when viewed from outside
// the solid, with one normal per vertex. Meshes are immutable once built and are
// shared by pointer between every instance of the same primitive.
package mesh

import "github.com/Faultbox/primforge/pkg/math"

// Mesh holds indexed triangles as flat arrays plus the local-space bounds of
// all positions. Positions and Normals are parallel: vertex i occupies
// elements 3i..3i+2 of both.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
	Bounds    math.AABB
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) math.Vec3 {
	return math.Vec3{X: m.Positions[i*3], Y: m.Positions[i*3+1], Z: m.Positions[i*3+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) math.Vec3 {
	return math.Vec3{X: m.Normals[i*3], Y: m.Normals[i*3+1], Z: m.Normals[i*3+2]}
}

// Triangle returns the three corner positions of triangle i in winding order.
func (m *Mesh) Triangle(i int) (a, b, c math.Vec3) {
	o := i * 3
	return m.Vertex(int(m.Indices[o])), m.Vertex(int(m.Indices[o+1])), m.Vertex(int(m.Indices[o+2]))
}

// builder accumulates vertices and indices for a generator.
type builder struct {
	positions []float32
	normals   []float32
	indices   []uint32
	bounds    math.AABB
}

func newBuilder(vertexCap, indexCap int) *builder {
	return &builder{
		positions: make([]float32, 0, vertexCap*3),
		normals:   make([]float32, 0, vertexCap*3),
		indices:   make([]uint32, 0, indexCap),
		bounds:    math.EmptyAABB(),
	}
}

// vertex appends a vertex and returns its index.
func (b *builder) vertex(p, n math.Vec3) uint32 {
	b.positions = append(b.positions, p.X, p.Y, p.Z)
	b.normals = append(b.normals, n.X, n.Y, n.Z)
	b.bounds = b.bounds.Extend(p)
	return uint32(len(b.positions)/3 - 1)
}

// count returns the number of vertices added so far.
func (b *builder) count() uint32 {
	return uint32(len(b.positions) / 3)
}

func (b *builder) tri(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
}

func (b *builder) build() *Mesh {
	return &Mesh{
		Positions: b.positions,
		Normals:   b.normals,
		Indices:   b.indices,
		Bounds:    b.bounds,
	}
}

// Segment minimums applied to every generator.
const (
	minSegments = 3
	minRings    = 2
)

func atLeast(n, lo int) int {
	if n < lo {
		return lo
	}
	return n
}
