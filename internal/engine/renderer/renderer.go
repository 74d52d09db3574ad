// Package renderer draws editor frames with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/config"
	"github.com/Faultbox/primforge/internal/editor"
	"github.com/Faultbox/primforge/internal/engine/debug"
	"github.com/Faultbox/primforge/internal/engine/framebuffer"
	"github.com/Faultbox/primforge/internal/engine/lighting"
	"github.com/Faultbox/primforge/internal/engine/shader"
	"github.com/Faultbox/primforge/internal/logger"
	"github.com/Faultbox/primforge/pkg/mesh"
)

// Config holds renderer configuration.
type Config struct {
	GridSize   float32 // half-width of the ground grid
	GridStep   float32
	Background [3]float32
	Light      lighting.KeyLight
}

// DefaultConfig returns the editor look.
func DefaultConfig() Config {
	return Config{
		GridSize:   600,
		GridStep:   10,
		Background: [3]float32{0.11, 0.12, 0.14},
		Light:      lighting.DefaultKeyLight(),
	}
}

// ConfigFrom builds a renderer config from the editor settings.
func ConfigFrom(cfg *config.Config) Config {
	rc := DefaultConfig()
	rc.GridSize = cfg.Editor.GridSize
	rc.GridStep = cfg.Editor.GridStep
	rc.Light = cfg.Light
	return rc
}

// SelectionColor is the color of the selection box.
var SelectionColor = [3]float32{1, 0.85, 0.3}

// InitGL loads OpenGL function pointers for the current context.
// Call once after the context is created.
func InitGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return nil
}

// Renderer draws editor frames. All methods must run on the GL thread.
type Renderer struct {
	config Config
	log    *zap.Logger

	meshProgram *shader.Program
	lineProgram *shader.Program

	// Uploaded meshes, keyed by the shared library pointer.
	meshes map[*mesh.Mesh]*gpuMesh

	grid      lineBuffer
	selection lineBuffer
}

// New creates a renderer. The GL context must be current and initialized.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		meshes: make(map[*mesh.Mesh]*gpuMesh),
	}

	var err error
	if r.meshProgram, err = shader.New(meshVertexShader, meshFragmentShader); err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	if r.lineProgram, err = shader.New(lineVertexShader, lineFragmentShader); err != nil {
		r.meshProgram.Delete()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.grid = newLineBuffer(debug.GridLines(cfg.GridSize, cfg.GridStep), gl.STATIC_DRAW)
	r.selection = newLineBuffer(make([]debug.LineVertex, debug.BBoxWireframeVertexCount), gl.DYNAMIC_DRAW)

	r.log.Debug("renderer created",
		zap.Int32("grid_vertices", r.grid.count),
		zap.Uint32("mesh_program", r.meshProgram.ID()),
	)
	return r, nil
}

// Close releases every GL resource the renderer owns.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for m, g := range r.meshes {
		g.delete()
		delete(r.meshes, m)
	}
	r.grid.delete()
	r.selection.delete()
	r.meshProgram.Delete()
	r.lineProgram.Delete()
}

// Resize sets the default framebuffer viewport, in pixels.
func (r *Renderer) Resize(width, height int32) {
	gl.Viewport(0, 0, width, height)
	r.log.Debug("renderer resized", zap.Int32("width", width), zap.Int32("height", height))
}

// Render draws frame into fb and returns the color texture.
func (r *Renderer) Render(fb *framebuffer.Framebuffer, frame editor.Frame) uint32 {
	restore := fb.Bind()
	defer restore()

	r.Draw(frame)
	return fb.ColorTexture()
}

// Draw clears the bound target and draws frame into it.
func (r *Renderer) Draw(frame editor.Frame) {
	bg := r.config.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r.meshProgram.Use()
	r.meshProgram.SetMat4("uViewProj", frame.ViewProjection)
	r.meshProgram.SetVec3("uEye", frame.Eye)
	r.meshProgram.SetVec3("uLightDir", r.config.Light.Direction())
	r.meshProgram.SetColor("uLightWeights", r.lightWeights())
	for _, item := range frame.Items {
		g := r.upload(item.Mesh)
		if g == nil {
			continue
		}
		r.meshProgram.SetMat4("uModel", item.Model)
		r.meshProgram.SetMat4("uNormalMatrix", item.Model.Inverse().Transpose())
		r.meshProgram.SetColor("uColor", item.Color.Array())
		g.draw()
	}

	// Lines are never culled.
	gl.Disable(gl.CULL_FACE)
	r.lineProgram.Use()
	r.lineProgram.SetMat4("uViewProj", frame.ViewProjection)
	r.grid.draw()

	if frame.HasSelection {
		r.selection.update(colorLines(debug.BBoxWireframe(frame.Selection, debug.DefaultBBoxPadding), SelectionColor))
		gl.Disable(gl.DEPTH_TEST)
		r.selection.draw()
		gl.Enable(gl.DEPTH_TEST)
	}

	gl.UseProgram(0)
}

func (r *Renderer) lightWeights() [3]float32 {
	l := r.config.Light
	return [3]float32{l.Ambient, l.Headlight, l.Key}
}

// upload returns the GPU copy of m, creating it on first use.
func (r *Renderer) upload(m *mesh.Mesh) *gpuMesh {
	if m == nil || len(m.Indices) == 0 {
		return nil
	}
	if g, ok := r.meshes[m]; ok {
		return g
	}
	g := newGPUMesh(m)
	r.meshes[m] = g
	r.log.Debug("mesh uploaded",
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
	)
	return g
}

// gpuMesh is a mesh uploaded as two vertex buffers and an index buffer.
type gpuMesh struct {
	vao, positions, normals, ebo uint32
	indexCount                   int32
}

func newGPUMesh(m *mesh.Mesh) *gpuMesh {
	g := &gpuMesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	// Position attribute (location = 0)
	gl.GenBuffers(1, &g.positions)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.positions)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Positions)*4, gl.Ptr(m.Positions), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.GenBuffers(1, &g.normals)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.normals)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Normals)*4, gl.Ptr(m.Normals), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return g
}

func (g *gpuMesh) draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (g *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	buffers := []uint32{g.positions, g.normals, g.ebo}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
}

// lineBuffer holds colored line vertices.
type lineBuffer struct {
	vao, vbo uint32
	count    int32
}

func newLineBuffer(vertices []debug.LineVertex, usage uint32) lineBuffer {
	var b lineBuffer
	b.count = int32(len(vertices))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	var data unsafe.Pointer
	if len(vertices) > 0 {
		data = unsafe.Pointer(&vertices[0])
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*debug.LineVertexStride, data, usage)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, debug.LineVertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, debug.LineVertexStride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return b
}

// update overwrites the buffer contents. vertices must fit the allocation.
func (b *lineBuffer) update(vertices []debug.LineVertex) {
	b.count = int32(len(vertices))
	if b.count == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*debug.LineVertexStride, unsafe.Pointer(&vertices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (b *lineBuffer) draw() {
	if b.count == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.LINES, 0, b.count)
	gl.BindVertexArray(0)
}

func (b *lineBuffer) delete() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
}

// colorLines turns [x, y, z] triples into line vertices of one color.
func colorLines(xyz []float32, color [3]float32) []debug.LineVertex {
	out := make([]debug.LineVertex, 0, len(xyz)/3)
	for i := 0; i+2 < len(xyz); i += 3 {
		out = append(out, debug.LineVertex{
			X: xyz[i], Y: xyz[i+1], Z: xyz[i+2],
			R: color[0], G: color[1], B: color[2],
		})
	}
	return out
}
