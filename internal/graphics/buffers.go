package graphics

import "github.com/go-gl/gl/v4.1-core/gl"

// GL entry points used by ReleaseVertexArray; tests swap them out.
var (
	deleteBuffers      = gl.DeleteBuffers
	deleteVertexArrays = gl.DeleteVertexArrays
)

// ReleaseVertexArray deletes a VBO and its VAO and zeroes both handles, so a
// second call is a no-op.
func ReleaseVertexArray(vao, vbo *uint32) {
	if *vbo != 0 {
		deleteBuffers(1, vbo)
		*vbo = 0
	}
	if *vao != 0 {
		deleteVertexArrays(1, vao)
		*vao = 0
	}
}
