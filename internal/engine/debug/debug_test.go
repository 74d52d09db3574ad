package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/primforge/pkg/math"
)

func TestBBoxWireframe(t *testing.T) {
	box := math.AABB{Min: math.Vec3{X: -1, Y: 0, Z: -2}, Max: math.Vec3{X: 1, Y: 3, Z: 2}}

	verts := BBoxWireframe(box, 0.5)

	if len(verts) != BBoxWireframeVertexCount*3 {
		t.Fatalf("got %d floats, want %d", len(verts), BBoxWireframeVertexCount*3)
	}

	got := math.EmptyAABB()
	for i := 0; i < len(verts); i += 3 {
		got = got.Extend(math.Vec3{X: verts[i], Y: verts[i+1], Z: verts[i+2]})
	}
	want := math.AABB{Min: math.Vec3{X: -1.5, Y: -0.5, Z: -2.5}, Max: math.Vec3{X: 1.5, Y: 3.5, Z: 2.5}}
	if got != want {
		t.Errorf("wireframe bounds = %v, want %v", got, want)
	}

	// Every edge runs along a single axis.
	for i := 0; i < len(verts); i += 6 {
		changed := 0
		for k := 0; k < 3; k++ {
			if verts[i+k] != verts[i+3+k] {
				changed++
			}
		}
		if changed != 1 {
			t.Errorf("edge %d changes %d coordinates, want 1", i/6, changed)
		}
	}
}

func TestBBoxWireframeEmpty(t *testing.T) {
	if verts := BBoxWireframe(math.EmptyAABB(), DefaultBBoxPadding); verts != nil {
		t.Errorf("empty box gave %d floats", len(verts))
	}
}

func TestGridLines(t *testing.T) {
	verts := GridLines(50, 10)

	// 11 positions per direction, two lines each, two vertices per line.
	if len(verts) != 11*4 {
		t.Fatalf("got %d vertices, want %d", len(verts), 11*4)
	}

	var axisX, axisZ int
	for _, v := range verts {
		if v.Y != 0 {
			t.Fatalf("grid vertex off the ground: %+v", v)
		}
		if v.X < -50 || v.X > 50 || v.Z < -50 || v.Z > 50 {
			t.Fatalf("grid vertex outside extent: %+v", v)
		}
		c := [3]float32{v.R, v.G, v.B}
		switch c {
		case AxisXColor:
			axisX++
			if v.Z != 0 {
				t.Errorf("X axis vertex at z=%v", v.Z)
			}
		case AxisZColor:
			axisZ++
			if v.X != 0 {
				t.Errorf("Z axis vertex at x=%v", v.X)
			}
		}
	}
	if axisX != 2 || axisZ != 2 {
		t.Errorf("axis vertices x=%d z=%d, want 2 each", axisX, axisZ)
	}
}

func TestGridLinesExtentSnapsToStep(t *testing.T) {
	verts := GridLines(25, 10)
	for _, v := range verts {
		if v.X > 20 || v.Z > 20 {
			t.Fatalf("vertex beyond last whole step: %+v", v)
		}
	}
}

func TestGridLinesInvalid(t *testing.T) {
	tests := []struct {
		name       string
		size, step float32
	}{
		{"zero size", 0, 10},
		{"zero step", 100, 0},
		{"negative step", 100, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if verts := GridLines(tt.size, tt.step); verts != nil {
				t.Errorf("got %d vertices, want nil", len(verts))
			}
		})
	}
}

func TestScreenshotCapture(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "viewport")
	sc.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.RGBA{R: 255, A: 255})

	path, err := sc.Capture(img)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if want := filepath.Join(dir, "viewport_2024-05-06_07-08-09.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, _, _ := decoded.At(1, 0).RGBA(); r != 0xffff {
		t.Errorf("pixel (1,0) red = %x, want ffff", r)
	}
}
