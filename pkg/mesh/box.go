package mesh

import "github.com/Faultbox/primforge/pkg/math"

// boxFaces lists each face as outward normal n plus in-plane axes u, v
// with u × v = n, so the corners n-u-v, n+u-v, n+u+v, n-u+v run counter-clockwise.
var boxFaces = [6][3]math.Vec3{
	{{X: 1}, {Z: -1}, {Y: 1}},  // +X
	{{X: -1}, {Z: 1}, {Y: 1}},  // -X
	{{Y: 1}, {X: 1}, {Z: -1}},  // +Y
	{{Y: -1}, {X: 1}, {Z: 1}},  // -Y
	{{Z: 1}, {X: 1}, {Y: 1}},   // +Z
	{{Z: -1}, {X: -1}, {Y: 1}}, // -Z
}

// Box returns an axis-aligned box of the given width (X), height (Y) and
// depth (Z), centred on the origin. Each face has its own four vertices so the
// normals stay flat: 24 vertices, 12 triangles.
func Box(w, h, d float32) *Mesh {
	half := math.Vec3{X: w / 2, Y: h / 2, Z: d / 2}
	b := newBuilder(24, 36)

	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		o := b.count()
		for _, c := range corners {
			p := n.Add(u.Scale(c[0])).Add(v.Scale(c[1])).Mul(half)
			b.vertex(p, n)
		}
		b.tri(o, o+1, o+2)
		b.tri(o, o+2, o+3)
	}

	return b.build()
}
