package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/primforge/pkg/math"
)

// Sphere returns a UV sphere of radius r centred on the origin.
// The grid has rings+1 rows from the north pole (+Y) down to the south pole
// and segments+1 columns; the seam column is duplicated. Normals are the unit
// position.
func Sphere(r float32, segments, rings int) *Mesh {
	segments = atLeast(segments, minSegments)
	rings = atLeast(rings, minRings)

	row := uint32(segments + 1)
	b := newBuilder((rings+1)*(segments+1), rings*segments*6)

	for y := 0; y <= rings; y++ {
		phi := float32(y) / float32(rings) * math32.Pi
		sinPhi, cosPhi := math32.Sincos(phi)
		switch y {
		case 0:
			sinPhi, cosPhi = 0, 1
		case rings:
			// float32 sin(Pi) is not zero
			sinPhi, cosPhi = 0, -1
		}
		for x := 0; x <= segments; x++ {
			theta := float32(x) / float32(segments) * 2 * math32.Pi
			sinTheta, cosTheta := math32.Sincos(theta)
			n := math.Vec3{X: cosTheta * sinPhi, Y: cosPhi, Z: sinTheta * sinPhi}
			b.vertex(n.Scale(r), n)
		}
	}

	for y := 0; y < rings; y++ {
		for x := 0; x < segments; x++ {
			a := uint32(y)*row + uint32(x)
			c := a + row
			b.tri(a, a+1, c)
			b.tri(c, a+1, c+1)
		}
	}

	return b.build()
}
