package wireframe

import (
	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/profiling"
	"mini-voxel/internal/transform"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Slightly larger than a cell so the outline is not z-fighting the faces.
const outlineScale = 1.01

var outlineColor = mgl32.Vec3{0, 0, 0}

// Wireframe outlines the block under the crosshair.
type Wireframe struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

// NewWireframe creates a new wireframe renderable
func NewWireframe() *Wireframe {
	return &Wireframe{}
}

func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(graphics.OutlineVertexShader, graphics.OutlineFragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)
	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)

	edges := CubeEdges()
	gl.BufferData(gl.ARRAY_BUFFER, len(edges)*4, gl.Ptr(edges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)
	return nil
}

func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if !ctx.Target.Hit || ctx.Paused {
		return
	}
	defer profiling.Track("renderer.renderHighlightedBlock")()

	p := ctx.Target.HitPosition
	model := mgl32.Translate3D(float32(p[0]), float32(p[1]), float32(p[2])).
		Mul4(mgl32.Scale3D(outlineScale, outlineScale, outlineScale))

	w.shader.Use()
	w.shader.SetMatrix4("u_MVP", transform.Mul4(ctx.ViewProj, model))
	w.shader.SetVector3("u_Color", outlineColor)

	gl.BindVertexArray(w.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, 24)
	gl.BindVertexArray(0)
}

func (w *Wireframe) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources. Safe to call twice.
func (w *Wireframe) Dispose() {
	graphics.ReleaseVertexArray(&w.vao, &w.vbo)
	if w.shader != nil {
		w.shader.Delete()
	}
}

// CubeEdges returns the 12 edges of a unit cell centered on the origin as
// 24 line-list vertices.
func CubeEdges() []float32 {
	const h = 0.5
	corners := [8][3]float32{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	pairs := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	out := make([]float32, 0, 24*3)
	for _, e := range pairs {
		for _, i := range e {
			out = append(out, corners[i][0], corners[i][1], corners[i][2])
		}
	}
	return out
}
