package scene

import (
	"sync"

	"github.com/Faultbox/primforge/pkg/mesh"
)

// Primitive is the closed set of parametric solids the editor can place.
type Primitive int

// Primitive kinds.
const (
	Box Primitive = iota
	Sphere
	Cylinder
	Cone
	Torus
)

var primitiveNames = [...]string{
	Box:      "box",
	Sphere:   "sphere",
	Cylinder: "cyl",
	Cone:     "cone",
	Torus:    "torus",
}

// Primitives returns every primitive kind in toolbar order.
func Primitives() []Primitive {
	return []Primitive{Box, Sphere, Cylinder, Cone, Torus}
}

// String returns the type tag used in names and project files.
func (p Primitive) String() string {
	if p.Valid() {
		return primitiveNames[p]
	}
	return "unknown"
}

// Valid reports whether p is one of the defined kinds.
func (p Primitive) Valid() bool {
	return p >= Box && p <= Torus
}

// ParsePrimitive maps a type tag back to its kind.
func ParsePrimitive(s string) (Primitive, bool) {
	for i, name := range primitiveNames {
		if name == s {
			return Primitive(i), true
		}
	}
	return 0, false
}

// Generate builds the default-sized mesh for p, or nil for an unknown kind.
func (p Primitive) Generate() *mesh.Mesh {
	switch p {
	case Box:
		return mesh.Box(40, 20, 40)
	case Sphere:
		return mesh.Sphere(18, 28, 18)
	case Cylinder:
		return mesh.Cylinder(16, 16, 30, 32)
	case Cone:
		return mesh.Cone(18, 35, 32)
	case Torus:
		return mesh.Torus(18, 6, 40, 18)
	}
	return nil
}

// Library hands out one shared mesh per primitive kind, generated on first use.
type Library struct {
	mu     sync.Mutex
	meshes map[Primitive]*mesh.Mesh
}

// NewLibrary creates an empty mesh library.
func NewLibrary() *Library {
	return &Library{meshes: make(map[Primitive]*mesh.Mesh)}
}

// Mesh returns the shared mesh for p, or nil for an unknown kind.
func (l *Library) Mesh(p Primitive) *mesh.Mesh {
	l.mu.Lock()
	defer l.mu.Unlock()

	if m, ok := l.meshes[p]; ok {
		return m
	}
	m := p.Generate()
	if m != nil {
		l.meshes[p] = m
	}
	return m
}
