// Package stl writes placed solids as STL triangle soup.
//
// Every triangle of every solid is transformed to world space and written as
// a facet whose normal is recomputed from the transformed corners, keeping
// the mesh winding.
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/Faultbox/primforge/pkg/math"
	"github.com/Faultbox/primforge/pkg/mesh"
)

// DefaultName is the solid name used when none is given.
const DefaultName = "primforge"

// Solid is one mesh placed in the world.
type Solid interface {
	ModelMatrix() math.Mat4
	Geometry() *mesh.Mesh
}

// Facet is one world-space triangle with its face normal.
type Facet struct {
	Normal math.Vec3
	V      [3]math.Vec3
}

// FacetCount returns the number of facets the solids produce.
func FacetCount[S Solid](solids []S) int {
	n := 0
	for _, s := range solids {
		if m := s.Geometry(); m != nil {
			n += m.TriangleCount()
		}
	}
	return n
}

// Facets calls fn for every world-space facet, solids in order.
func Facets[S Solid](solids []S, fn func(Facet) error) error {
	for _, s := range solids {
		m := s.Geometry()
		if m == nil {
			continue
		}
		model := s.ModelMatrix()
		for i := 0; i < m.TriangleCount(); i++ {
			a, b, c := m.Triangle(i)
			a = model.TransformPoint(a)
			b = model.TransformPoint(b)
			c = model.TransformPoint(c)
			f := Facet{
				Normal: b.Sub(a).Cross(c.Sub(a)).Normalize(),
				V:      [3]math.Vec3{a, b, c},
			}
			if err := fn(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteASCII writes the solids as ASCII STL framed by "solid name" and
// "endsolid name".
func WriteASCII[S Solid](w io.Writer, name string, solids []S) error {
	if name == "" {
		name = DefaultName
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)

	err := Facets(solids, func(f Facet) error {
		bw.WriteString("  facet normal ")
		writeVec(bw, f.Normal)
		bw.WriteString("\n    outer loop\n")
		for _, v := range f.V {
			bw.WriteString("      vertex ")
			writeVec(bw, v)
			bw.WriteByte('\n')
		}
		_, err := bw.WriteString("    endloop\n  endfacet\n")
		return err
	})
	if err != nil {
		return fmt.Errorf("writing stl facets: %w", err)
	}

	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

func writeVec(bw *bufio.Writer, v math.Vec3) {
	bw.WriteString(formatFloat(v.X))
	bw.WriteByte(' ')
	bw.WriteString(formatFloat(v.Y))
	bw.WriteByte(' ')
	bw.WriteString(formatFloat(v.Z))
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// binaryFacet is the 50-byte little-endian record of binary STL.
type binaryFacet struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// WriteBinary writes the solids as binary STL: an 80-byte header holding
// the name (not prefixed with "solid", which readers take for ASCII), a facet count, then one 50-byte record per facet.
func WriteBinary[S Solid](w io.Writer, name string, solids []S) error {
	if name == "" {
		name = DefaultName
	}

	bw := bufio.NewWriter(w)

	var header [80]byte
	copy(header[:], name)
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("writing stl header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(FacetCount(solids))); err != nil {
		return fmt.Errorf("writing stl facet count: %w", err)
	}

	err := Facets(solids, func(f Facet) error {
		rec := binaryFacet{
			Normal:   f.Normal.Array(),
			Vertices: [3][3]float32{f.V[0].Array(), f.V[1].Array(), f.V[2].Array()},
		}
		return binary.Write(bw, binary.LittleEndian, &rec)
	})
	if err != nil {
		return fmt.Errorf("writing stl facets: %w", err)
	}

	return bw.Flush()
}
