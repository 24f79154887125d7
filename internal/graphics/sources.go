package graphics

import (
	_ "embed"
	"errors"
)

var (
	ErrShaderCompile = errors.New("graphics: shader compile failed")
	ErrShaderLink    = errors.New("graphics: program link failed")
)

// GLSL sources shipped with the binary.

//go:embed shaders/voxel.vert
var VoxelVertexShader string

//go:embed shaders/voxel.frag
var VoxelFragmentShader string

//go:embed shaders/crosshair.vert
var CrosshairVertexShader string

//go:embed shaders/crosshair.frag
var CrosshairFragmentShader string

//go:embed shaders/outline.vert
var OutlineVertexShader string

//go:embed shaders/outline.frag
var OutlineFragmentShader string
