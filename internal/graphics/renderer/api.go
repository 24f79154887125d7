package renderer

import (
	"mini-voxel/internal/meshing"
	"mini-voxel/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext is the per-frame input shared by all renderables.
type RenderContext struct {
	ViewProj     mgl32.Mat4
	Mesh         meshing.VertexBuffer
	MeshRevision uint64
	Target       physics.RaycastResult
	Aspect       float32
	Paused       bool
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
