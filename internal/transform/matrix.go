// Package transform composes the camera matrices into the per-frame clip transform.
//
// All matrices are column-major, matching mgl32 and OpenGL uniform upload
// without transposition. Voxel vertex positions are already world positions,
// so there is no model matrix.
package transform

import "github.com/go-gl/mathgl/mgl32"

// Mul4 returns a*b. Applied to a column vector, b acts first.
func Mul4(a, b mgl32.Mat4) mgl32.Mat4 {
	return a.Mul4(b)
}

// ViewProjection composes projection x view.
func ViewProjection(proj, view mgl32.Mat4) mgl32.Mat4 {
	return Mul4(proj, view)
}
