package debug

import "github.com/chewxy/math32"

// LineVertex is a colored line endpoint.
type LineVertex struct {
	X, Y, Z float32 // Position
	R, G, B float32 // Color
}

// LineVertexStride is the size in bytes of one LineVertex.
const LineVertexStride = 6 * 4

// Grid colors.
var (
	GridColor  = [3]float32{0.32, 0.33, 0.36}
	MajorColor = [3]float32{0.45, 0.46, 0.5}
	AxisXColor = [3]float32{0.8, 0.3, 0.3}
	AxisZColor = [3]float32{0.3, 0.45, 0.85}
)

// MajorEvery is how many grid cells lie between major lines.
const MajorEvery = 10

// GridLines generates the ground grid on y = 0, spanning [-halfSize, halfSize]
// on X and Z with a line every step. Lines through the origin use the axis
// colors. A non-positive size or step yields nil.
func GridLines(halfSize, step float32) []LineVertex {
	if halfSize <= 0 || step <= 0 {
		return nil
	}

	n := int(math32.Floor(halfSize / step))
	extent := float32(n) * step
	vertices := make([]LineVertex, 0, (2*n+1)*4)

	for i := -n; i <= n; i++ {
		c := float32(i) * step

		// Line parallel to Z at x = c; the one at x = 0 is the Z axis.
		color := lineColor(i, AxisZColor)
		vertices = append(vertices,
			LineVertex{c, 0, -extent, color[0], color[1], color[2]},
			LineVertex{c, 0, extent, color[0], color[1], color[2]},
		)

		// Line parallel to X at z = c; the one at z = 0 is the X axis.
		color = lineColor(i, AxisXColor)
		vertices = append(vertices,
			LineVertex{-extent, 0, c, color[0], color[1], color[2]},
			LineVertex{extent, 0, c, color[0], color[1], color[2]},
		)
	}

	return vertices
}

func lineColor(i int, axis [3]float32) [3]float32 {
	switch {
	case i == 0:
		return axis
	case i%MajorEvery == 0:
		return MajorColor
	default:
		return GridColor
	}
}
