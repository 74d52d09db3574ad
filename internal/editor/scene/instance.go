package scene

import (
	"github.com/Faultbox/primforge/pkg/math"
	"github.com/Faultbox/primforge/pkg/mesh"
)

// ID identifies an instance. IDs start at 1 and are never reused within a scene.
type ID int

// NoID is the zero ID, never assigned to an instance.
const NoID ID = 0

// DefaultPosition is where new instances are placed.
var DefaultPosition = math.Vec3{Y: 10}

// Instance is one placed primitive.
type Instance struct {
	ID        ID
	Type      Primitive
	Name      string
	Mesh      *mesh.Mesh // shared with every instance of the same Type
	Position  math.Vec3
	RotationY float32 // yaw, radians
	Scale     math.Vec3
	Color     Color
}

// NewInstance creates an instance with the default placement, scale and colour.
// The name defaults to the type tag.
func NewInstance(id ID, p Primitive, m *mesh.Mesh) *Instance {
	return &Instance{
		ID:       id,
		Type:     p,
		Name:     p.String(),
		Mesh:     m,
		Position: DefaultPosition,
		Scale:    math.One3,
		Color:    DefaultColor,
	}
}

// ModelMatrix returns the local-to-world transform: scale, then yaw, then translation.
func (inst *Instance) ModelMatrix() math.Mat4 {
	return math.ScaleVec(inst.Scale).
		Mul(math.RotateY(inst.RotationY)).
		Mul(math.TranslateVec(inst.Position))
}

// Geometry returns the shared mesh.
func (inst *Instance) Geometry() *mesh.Mesh {
	return inst.Mesh
}

// LocalBounds returns the mesh bounds, or a zero box at the origin without a mesh.
func (inst *Instance) LocalBounds() math.AABB {
	if inst.Mesh == nil {
		return math.AABB{}
	}
	return inst.Mesh.Bounds
}

// WorldBounds returns the axis-aligned box around the 8 transformed corners of
// the local bounds. Under yaw it is larger than the solid.
func (inst *Instance) WorldBounds() math.AABB {
	return inst.LocalBounds().Transform(inst.ModelMatrix())
}

// Size returns the world dimensions |local extent × scale| (yaw is ignored).
func (inst *Instance) Size() math.Vec3 {
	return inst.LocalBounds().Extent().Mul(inst.Scale).Abs()
}
