package blocks

import "mini-voxel/internal/meshing"

// uploadCache remembers what is currently in the VBO. Vertex buffers are never
// mutated once built, so holding on to the last one is safe.
type uploadCache struct {
	valid    bool
	revision uint64
	last     meshing.VertexBuffer
	hash     uint64
	hashed   bool
}

// changed reports whether buf, built from grid revision rev, differs from the
// last upload and records it. Contents are hashed only when a new revision
// keeps the same length, so an edit undone within a frame skips the upload.
func (c *uploadCache) changed(rev uint64, buf meshing.VertexBuffer) bool {
	if c.valid && len(buf) == len(c.last) {
		if rev == c.revision {
			return false
		}
		if !c.hashed {
			c.hash, c.hashed = c.last.Hash(), true
		}
		h := buf.Hash()
		if h == c.hash {
			c.revision, c.last = rev, buf
			return false
		}
		c.record(rev, buf)
		c.hash, c.hashed = h, true
		return true
	}
	c.record(rev, buf)
	return true
}

func (c *uploadCache) record(rev uint64, buf meshing.VertexBuffer) {
	c.valid = true
	c.revision = rev
	c.last = buf
	c.hashed = false
}

func (c *uploadCache) vertexCount() int32 {
	return int32(c.last.VertexCount())
}
