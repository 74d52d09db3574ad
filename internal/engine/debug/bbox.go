// Package debug generates the line overlays drawn over the editor viewport
// and saves viewport screenshots.
package debug

import "github.com/Faultbox/primforge/pkg/math"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding for selection boxes.
const DefaultBBoxPadding = 1.0

// BBoxWireframe creates line vertices for the edges of box grown by padding
// on every side. Returns BBoxWireframeVertexCount vertices as [x, y, z]
// triples. An empty box yields nil.
func BBoxWireframe(box math.AABB, padding float32) []float32 {
	if box.IsEmpty() {
		return nil
	}
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	lo, hi := box.Min.Sub(pad), box.Max.Add(pad)
	return bboxEdges(lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
}

func bboxEdges(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face (4 edges)
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face (4 edges)
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges (4 edges)
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}
