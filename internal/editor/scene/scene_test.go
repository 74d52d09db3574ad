package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/primforge/pkg/math"
)

func TestAddBox(t *testing.T) {
	s := New(nil)

	id := s.Add(Box)
	inst, ok := s.Get(id)
	require.True(t, ok)

	assert.Equal(t, "box_1", inst.Name)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, inst.Scale)
	assert.Equal(t, math.Vec3{Y: 10}, inst.Position)
	assert.Equal(t, DefaultColor, inst.Color)
	assert.Equal(t, "#ff5533", inst.Color.Hex())

	sel, ok := s.SelectedID()
	assert.True(t, ok)
	assert.Equal(t, id, sel)
}

func TestAddNamesByCount(t *testing.T) {
	s := New(nil)
	s.Add(Box)
	id := s.Add(Sphere)
	s.Add(Cylinder)

	inst, _ := s.Get(id)
	assert.Equal(t, "sphere_2", inst.Name)
	assert.Equal(t, "cyl_3", s.Instances()[2].Name)
}

func TestAddSharesMesh(t *testing.T) {
	s := New(nil)
	a, _ := s.Get(s.Add(Torus))
	b, _ := s.Get(s.Add(Torus))
	c, _ := s.Get(s.Add(Cone))

	assert.Same(t, a.Mesh, b.Mesh)
	assert.NotSame(t, a.Mesh, c.Mesh)
}

func TestAddUnknownPrimitive(t *testing.T) {
	s := New(nil)
	assert.Equal(t, NoID, s.Add(Primitive(42)))
	assert.Equal(t, 0, s.Len())
}

func TestDuplicate(t *testing.T) {
	s := New(nil)
	id := s.Add(Box)
	require.True(t, s.Rename(id, "crate"))

	dupID, ok := s.Duplicate(id)
	require.True(t, ok)
	assert.NotEqual(t, id, dupID)

	orig, _ := s.Get(id)
	dup, _ := s.Get(dupID)
	assert.Equal(t, "crate_copy", dup.Name)
	assert.Equal(t, orig.Position.X+20, dup.Position.X)
	assert.Equal(t, orig.Position.Y, dup.Position.Y)
	assert.Equal(t, orig.Position.Z+20, dup.Position.Z)
	assert.Same(t, orig.Mesh, dup.Mesh)
	assert.Same(t, s.Library().Mesh(dup.Type), dup.Mesh)
	assert.NotSame(t, orig, dup)

	sel, _ := s.SelectedID()
	assert.Equal(t, dupID, sel)

	// Editing the copy leaves the original alone.
	s.Resize(dupID, 80, 20, 40)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, orig.Scale)
}

func TestRemoveClearsSelection(t *testing.T) {
	s := New(nil)
	a := s.Add(Box)
	b := s.Add(Sphere)

	require.True(t, s.Select(a))
	assert.True(t, s.Remove(b))
	sel, ok := s.SelectedID()
	assert.True(t, ok, "removing another instance keeps the selection")
	assert.Equal(t, a, sel)

	assert.True(t, s.Remove(a))
	_, ok = s.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestIDsNeverReused(t *testing.T) {
	s := New(nil)
	a := s.Add(Box)
	s.Remove(a)
	b := s.Add(Box)
	assert.Greater(t, b, a)

	s.Clear()
	c := s.Add(Box)
	assert.Greater(t, c, b)
}

func TestUnknownIDIsNoop(t *testing.T) {
	s := New(nil)
	id := s.Add(Box)
	missing := id + 100

	assert.False(t, s.Select(missing))
	assert.False(t, s.Remove(missing))
	assert.False(t, s.Rename(missing, "x"))
	assert.False(t, s.Recolor(missing, Color{}))
	assert.False(t, s.Resize(missing, 1, 1, 1))
	assert.False(t, s.SetTransform(missing, math.Vec3{}, 0, math.One3))
	_, ok := s.Duplicate(missing)
	assert.False(t, ok)
	_, ok = s.Size(missing)
	assert.False(t, ok)

	sel, _ := s.SelectedID()
	assert.Equal(t, id, sel)
	assert.Equal(t, 1, s.Len())
}

func TestResizeRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		p       Primitive
		w, h, d float32
	}{
		{"box", Box, 100, 5, 33},
		{"sphere", Sphere, 10, 10, 10},
		{"cone", Cone, 7.5, 80, 12},
		{"torus", Torus, 48, 3, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			id := s.Add(tt.p)
			require.True(t, s.Resize(id, tt.w, tt.h, tt.d))

			size, ok := s.Size(id)
			require.True(t, ok)
			assert.InDelta(t, tt.w, size.X, 1e-3)
			assert.InDelta(t, tt.h, size.Y, 1e-3)
			assert.InDelta(t, tt.d, size.Z, 1e-3)
		})
	}
}

func TestResizeNonPositiveRequest(t *testing.T) {
	s := New(nil)
	id := s.Add(Box)
	require.True(t, s.Resize(id, 0, -5, 40))

	size, _ := s.Size(id)
	assert.InDelta(t, 1, size.X, 1e-5)
	assert.InDelta(t, 1, size.Y, 1e-5)
	assert.InDelta(t, 40, size.Z, 1e-4)
}

func TestRenameTrims(t *testing.T) {
	s := New(nil)
	id := s.Add(Cone)
	s.Rename(id, "  spire \n")
	inst, _ := s.Get(id)
	assert.Equal(t, "spire", inst.Name)
}

func TestWorldBounds(t *testing.T) {
	s := New(nil)
	id := s.Add(Box)
	s.SetTransform(id, math.Vec3{X: 100, Y: 10}, 0, math.Vec3{X: 2, Y: 1, Z: 1})

	inst, _ := s.Get(id)
	b := inst.WorldBounds()
	assert.True(t, b.Min.ApproxEqual(math.Vec3{X: 60, Y: 0, Z: -20}, 1e-4), "min %v", b.Min)
	assert.True(t, b.Max.ApproxEqual(math.Vec3{X: 140, Y: 20, Z: 20}, 1e-4), "max %v", b.Max)
}

func TestRestore(t *testing.T) {
	s := New(nil)
	s.Add(Box)

	lib := s.Library()
	a := NewInstance(7, Sphere, lib.Mesh(Sphere))
	b := NewInstance(3, Box, lib.Mesh(Box))
	s.Restore([]*Instance{a, b})

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, ID(8), s.NextID())
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Equal(t, ID(7), s.Instances()[0].ID)
}

func TestPrimitiveTags(t *testing.T) {
	for _, p := range Primitives() {
		got, ok := ParsePrimitive(p.String())
		assert.True(t, ok, p.String())
		assert.Equal(t, p, got)
		assert.NotNil(t, p.Generate(), p.String())
	}

	_, ok := ParsePrimitive("pyramid")
	assert.False(t, ok)
	assert.Equal(t, "cyl", Cylinder.String())
	assert.Nil(t, Primitive(-1).Generate())
}

func TestColor(t *testing.T) {
	c, err := ParseColor("#3366CC")
	require.NoError(t, err)
	assert.Equal(t, "#3366cc", c.Hex())

	c, err = ParseColor("00ff00")
	require.NoError(t, err)
	assert.Equal(t, Color{G: 1}, c)

	_, err = ParseColor("#12345")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)

	h := Color{R: 1, G: 0.5}.Highlight()
	assert.Equal(t, float32(1), h.R)
	assert.InDelta(t, 0.675, h.G, 1e-5)
	assert.InDelta(t, 0.05, h.B, 1e-5)
}
