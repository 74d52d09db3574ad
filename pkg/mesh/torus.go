package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/primforge/pkg/math"
)

// Torus returns a ring torus in the XZ plane centred on the origin.
// majorRadius is the distance from the centre to the tube centre and
// minorRadius the tube radius. Normals point away from the tube centre line.
func Torus(majorRadius, minorRadius float32, majorSegments, minorSegments int) *Mesh {
	majorSegments = atLeast(majorSegments, minSegments)
	minorSegments = atLeast(minorSegments, minSegments)

	row := uint32(majorSegments + 1)
	b := newBuilder((minorSegments+1)*(majorSegments+1), minorSegments*majorSegments*6)

	for j := 0; j <= minorSegments; j++ {
		sv, cv := math32.Sincos(float32(j) / float32(minorSegments) * 2 * math32.Pi)
		for i := 0; i <= majorSegments; i++ {
			su, cu := math32.Sincos(float32(i) / float32(majorSegments) * 2 * math32.Pi)
			ring := majorRadius + minorRadius*cv
			p := math.Vec3{X: ring * cu, Y: minorRadius * sv, Z: ring * su}
			n := math.Vec3{X: cv * cu, Y: sv, Z: cv * su}
			b.vertex(p, n)
		}
	}

	for j := 0; j < minorSegments; j++ {
		for i := 0; i < majorSegments; i++ {
			a := uint32(j)*row + uint32(i)
			c := a + row
			b.tri(a, c, a+1)
			b.tri(c, c+1, a+1)
		}
	}

	return b.build()
}
