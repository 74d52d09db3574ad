// Package scene holds the editable scene: an ordered list of placed primitives
// and at most one selected instance.
//
// Operations addressing an ID that does not exist do nothing and report false.
package scene

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/logger"
	"github.com/Faultbox/primforge/pkg/math"
)

// DuplicateOffset is added to the position of a duplicated instance.
var DuplicateOffset = math.Vec3{X: 20, Z: 20}

// Scene is the ordered collection of instances plus the selection.
type Scene struct {
	lib       *Library
	instances []*Instance
	selected  ID
	nextID    ID
}

// New creates an empty scene drawing meshes from lib.
func New(lib *Library) *Scene {
	if lib == nil {
		lib = NewLibrary()
	}
	return &Scene{lib: lib, nextID: 1}
}

// Library returns the shared mesh library.
func (s *Scene) Library() *Library {
	return s.lib
}

// Instances returns the instances in scene order. The slice must not be modified.
func (s *Scene) Instances() []*Instance {
	return s.instances
}

// Len returns the number of instances.
func (s *Scene) Len() int {
	return len(s.instances)
}

// NextID returns the ID the next added instance will get.
func (s *Scene) NextID() ID {
	return s.nextID
}

// Get returns the instance with the given ID.
func (s *Scene) Get(id ID) (*Instance, bool) {
	i := s.index(id)
	if i < 0 {
		return nil, false
	}
	return s.instances[i], true
}

func (s *Scene) index(id ID) int {
	for i, inst := range s.instances {
		if inst.ID == id {
			return i
		}
	}
	return -1
}

func (s *Scene) allocID() ID {
	id := s.nextID
	s.nextID++
	return id
}

// Add places a new default instance of p, selects it and returns its ID.
// An unknown primitive adds nothing and returns NoID.
func (s *Scene) Add(p Primitive) ID {
	m := s.lib.Mesh(p)
	if m == nil {
		return NoID
	}

	inst := NewInstance(s.allocID(), p, m)
	s.instances = append(s.instances, inst)
	inst.Name = fmt.Sprintf("%s_%d", p, len(s.instances))
	s.selected = inst.ID

	logger.Debug("instance added", zap.Int("id", int(inst.ID)), zap.String("name", inst.Name))
	return inst.ID
}

// Select makes id the selection. It reports false, leaving the selection
// unchanged, if id does not exist.
func (s *Scene) Select(id ID) bool {
	if s.index(id) < 0 {
		return false
	}
	s.selected = id
	return true
}

// ClearSelection deselects everything.
func (s *Scene) ClearSelection() {
	s.selected = NoID
}

// SelectedID returns the selected ID.
func (s *Scene) SelectedID() (ID, bool) {
	return s.selected, s.selected != NoID
}

// Selected returns the selected instance.
func (s *Scene) Selected() (*Instance, bool) {
	if s.selected == NoID {
		return nil, false
	}
	return s.Get(s.selected)
}

// Remove deletes an instance, clearing the selection if it was selected.
func (s *Scene) Remove(id ID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.instances = append(s.instances[:i], s.instances[i+1:]...)
	if s.selected == id {
		s.selected = NoID
	}
	logger.Debug("instance removed", zap.Int("id", int(id)))
	return true
}

// Duplicate copies an instance under a new ID, shifted by DuplicateOffset and
// with "_copy" appended to its name. The copy shares the mesh and is selected.
func (s *Scene) Duplicate(id ID) (ID, bool) {
	src, ok := s.Get(id)
	if !ok {
		return NoID, false
	}

	dup := &Instance{}
	if err := copier.Copy(dup, src); err != nil {
		logger.Warn("duplicate failed", zap.Int("id", int(id)), zap.Error(err))
		return NoID, false
	}
	// copier allocates a fresh Mesh for pointer fields; the copy must keep
	// drawing from the library.
	dup.Mesh = src.Mesh
	dup.ID = s.allocID()
	dup.Name = src.Name + "_copy"
	dup.Position = src.Position.Add(DuplicateOffset)

	s.instances = append(s.instances, dup)
	s.selected = dup.ID

	logger.Debug("instance duplicated", zap.Int("from", int(id)), zap.Int("id", int(dup.ID)))
	return dup.ID, true
}

// Rename sets the display name, trimmed of surrounding whitespace.
func (s *Scene) Rename(id ID, name string) bool {
	inst, ok := s.Get(id)
	if !ok {
		return false
	}
	inst.Name = strings.TrimSpace(name)
	return true
}

// Recolor sets the colour.
func (s *Scene) Recolor(id ID, c Color) bool {
	inst, ok := s.Get(id)
	if !ok {
		return false
	}
	inst.Color = c
	return true
}

// SetTransform sets position, yaw and scale at once.
func (s *Scene) SetTransform(id ID, pos math.Vec3, rotY float32, scale math.Vec3) bool {
	inst, ok := s.Get(id)
	if !ok {
		return false
	}
	inst.Position = pos
	inst.RotationY = rotY
	inst.Scale = scale
	return true
}

// Resize sets the scale so the instance measures w × h × d in world units.
// A non-positive request counts as 1; a zero local extent counts as 1.
func (s *Scene) Resize(id ID, w, h, d float32) bool {
	inst, ok := s.Get(id)
	if !ok {
		return false
	}

	extent := inst.LocalBounds().Extent()
	inst.Scale = math.Vec3{
		X: axisScale(w, extent.X),
		Y: axisScale(h, extent.Y),
		Z: axisScale(d, extent.Z),
	}
	return true
}

func axisScale(requested, extent float32) float32 {
	if requested <= 0 {
		requested = 1
	}
	if extent == 0 {
		extent = 1
	}
	return requested / extent
}

// Size returns the world dimensions of an instance.
func (s *Scene) Size(id ID) (math.Vec3, bool) {
	inst, ok := s.Get(id)
	if !ok {
		return math.Vec3{}, false
	}
	return inst.Size(), true
}

// Clear removes every instance and the selection. The ID counter keeps counting.
func (s *Scene) Clear() {
	s.instances = nil
	s.selected = NoID
	logger.Debug("scene cleared")
}

// Restore replaces the whole scene with instances (in order), clears the
// selection and resets the ID counter to one past the highest ID.
// Callers must ensure IDs are unique.
func (s *Scene) Restore(instances []*Instance) {
	s.instances = append([]*Instance(nil), instances...)
	s.selected = NoID
	s.nextID = 1
	for _, inst := range s.instances {
		if inst.ID >= s.nextID {
			s.nextID = inst.ID + 1
		}
	}
}
