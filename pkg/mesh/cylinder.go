package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/primforge/pkg/math"
)

// Cylinder returns a capped cylinder (or frustum) of height h centred on the
// origin with its axis along Y. Side normals are purely radial and ignore the
// slant of a frustum. Each cap has its own centre vertex and its own copy of the
// rim so cap normals stay flat (±Y).
func Cylinder(topRadius, bottomRadius, h float32, segments int) *Mesh {
	segments = atLeast(segments, minSegments)
	top := h / 2
	bottom := -h / 2

	b := newBuilder(2*(segments+1)+2*(segments+2), segments*12)

	// Side wall: a top/bottom vertex pair per step.
	for i := 0; i <= segments; i++ {
		s, c := math32.Sincos(float32(i) / float32(segments) * 2 * math32.Pi)
		n := math.Vec3{X: c, Z: s}
		b.vertex(math.Vec3{X: c * topRadius, Y: top, Z: s * topRadius}, n)
		b.vertex(math.Vec3{X: c * bottomRadius, Y: bottom, Z: s * bottomRadius}, n)
	}
	for i := 0; i < segments; i++ {
		o := uint32(i * 2)
		b.tri(o, o+2, o+1)
		b.tri(o+1, o+2, o+3)
	}

	addCap := func(y, radius float32, n math.Vec3, up bool) {
		center := b.vertex(math.Vec3{Y: y}, n)
		for i := 0; i <= segments; i++ {
			s, c := math32.Sincos(float32(i) / float32(segments) * 2 * math32.Pi)
			b.vertex(math.Vec3{X: c * radius, Y: y, Z: s * radius}, n)
		}
		for i := 0; i < segments; i++ {
			rim := center + 1 + uint32(i)
			if up {
				b.tri(center, rim+1, rim)
			} else {
				b.tri(center, rim, rim+1)
			}
		}
	}
	addCap(top, topRadius, math.Up, true)
	addCap(bottom, bottomRadius, math.Vec3{Y: -1}, false)

	return b.build()
}

// Cone returns a cone of base radius r and height h: a cylinder whose top
// radius is zero.
func Cone(r, h float32, segments int) *Mesh {
	return Cylinder(0, r, h, segments)
}
