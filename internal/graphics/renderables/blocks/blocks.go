package blocks

import (
	"mini-voxel/internal/graphics"
	renderer "mini-voxel/internal/graphics/renderer"
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	positionLocation = 0
	colorLocation    = 1
	floatSize        = 4
)

// Blocks draws the voxel mesh as one interleaved VBO.
type Blocks struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	cache  uploadCache
}

// NewBlocks creates a new blocks renderable
func NewBlocks() *Blocks {
	return &Blocks{}
}

// Init compiles the shader and creates the vertex array.
func (b *Blocks) Init() error {
	var err error
	b.shader, err = graphics.NewShader(graphics.VoxelVertexShader, graphics.VoxelFragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	stride := int32(meshing.VertexStride * floatSize)
	gl.EnableVertexAttribArray(positionLocation)
	gl.VertexAttribPointerWithOffset(positionLocation, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(colorLocation)
	gl.VertexAttribPointerWithOffset(colorLocation, 3, gl.FLOAT, false, stride, 3*floatSize)

	gl.BindVertexArray(0)
	return nil
}

// Upload replaces the GPU copy of the mesh built from grid revision rev.
// Unchanged buffers are skipped.
func (b *Blocks) Upload(rev uint64, buf meshing.VertexBuffer) {
	if !b.cache.changed(rev, buf) {
		return
	}
	defer profiling.Track("renderer.blocks.upload")()

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(buf) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*floatSize, gl.Ptr(buf), gl.DYNAMIC_DRAW)
}

// Render uploads the frame's mesh if needed and draws it.
func (b *Blocks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderBlocks")()

	b.Upload(ctx.MeshRevision, ctx.Mesh)
	count := b.cache.vertexCount()
	if count == 0 {
		return
	}

	b.shader.Use()
	b.shader.SetMatrix4("u_MVP", ctx.ViewProj)

	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, count)
	gl.BindVertexArray(0)
}

func (b *Blocks) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources. Safe to call twice.
func (b *Blocks) Dispose() {
	graphics.ReleaseVertexArray(&b.vao, &b.vbo)
	if b.shader != nil {
		b.shader.Delete()
	}
	b.cache = uploadCache{}
}
