// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/primforge/internal/engine/camera"
	"github.com/Faultbox/primforge/pkg/math"
)

const (
	// slabEpsilon replaces a zero direction component in the slab test.
	slabEpsilon = 1e-9
	// parallelEpsilon is the |n·d| below which a ray counts as parallel to a plane.
	parallelEpsilon = 1e-6
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // Flip Y

	near := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	far := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// FromCamera builds the ray under a pixel of a viewport looking through cam.
// The ray comes from the camera basis instead of an inverted view-projection:
// unprojecting the far plane in float32 bends the direction by a few
// thousandths at editor distances.
func FromCamera(cam *camera.OrbitCamera, screenX, screenY, viewportW, viewportH float32) Ray {
	aspect := float32(1)
	if viewportW > 0 && viewportH > 0 {
		aspect = viewportW / viewportH
	}
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	eye := cam.Eye()
	forward := cam.Target.Sub(eye).Normalize()
	right := forward.Cross(math.Up).Normalize()
	up := right.Cross(forward)

	tanHalf := math32.Tan(cam.FOV / 2)
	d := forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(up.Scale(ndcY * tanHalf))

	// d has unit depth along forward, so eye + d*near is on the near plane.
	return Ray{Origin: eye.Add(d.Scale(cam.Near)), Direction: d.Normalize()}
}

// IntersectPlane intersects the ray with the plane n·p + d = 0.
// Returns false if the ray is parallel to the plane or the hit is behind the origin.
func (r Ray) IntersectPlane(normal math.Vec3, d float32) (t float32, ok bool) {
	denom := normal.Dot(r.Direction)
	if math32.Abs(denom) < parallelEpsilon {
		return 0, false // Ray parallel to plane
	}

	t = -(normal.Dot(r.Origin) + d) / denom
	if t < 0 {
		return 0, false // Intersection behind ray origin
	}
	return t, true
}

// IntersectGround intersects the ray with the ground plane y = 0.
func (r Ray) IntersectGround() (math.Vec3, bool) {
	t, ok := r.IntersectPlane(math.Up, 0)
	if !ok {
		return math.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box math.AABB) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	for axis := 0; axis < 3; axis++ {
		d := dir[axis]
		if d == 0 {
			d = slabEpsilon
		}
		t1 := (lo[axis] - origin[axis]) / d
		t2 := (hi[axis] - origin[axis]) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
	}

	if tmax < 0 || tmin > tmax {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin >= 0 {
		return tmin, true
	}
	return tmax, true
}

// Pickable is anything with a world-space bounding box.
type Pickable interface {
	WorldBounds() math.AABB
}

// Nearest returns the index of the candidate whose box the ray hits first
// and the hit distance. Ties keep the earlier candidate.
func Nearest[T Pickable](r Ray, candidates []T) (index int, t float32, ok bool) {
	index = -1
	best := float32(math32.MaxFloat32)
	for i, c := range candidates {
		ht, hit := r.IntersectAABB(c.WorldBounds())
		if hit && ht < best {
			best = ht
			index = i
		}
	}
	if index < 0 {
		return -1, 0, false
	}
	return index, best, true
}
