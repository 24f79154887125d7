package meshing

import (
	"encoding/binary"
	"math"

	"mini-voxel/internal/profiling"
	"mini-voxel/internal/world"

	"github.com/cespare/xxhash/v2"
)

const (
	// VertexStride is number of float32 per vertex (pos.xyz + color.rgb)
	VertexStride = 6
	// VerticesPerFace is two triangles, no index buffer
	VerticesPerFace = 6
	FloatsPerFace   = VertexStride * VerticesPerFace
)

// VertexBuffer is an interleaved triangle list ready for upload.
type VertexBuffer []float32

// VertexCount returns the number of vertices to draw.
func (vb VertexBuffer) VertexCount() int {
	return len(vb) / VertexStride
}

// FaceCount returns the number of emitted quads.
func (vb VertexBuffer) FaceCount() int {
	return len(vb) / FloatsPerFace
}

// Vertex returns position and color of vertex i.
func (vb VertexBuffer) Vertex(i int) (pos, color [3]float32) {
	o := i * VertexStride
	copy(pos[:], vb[o:o+3])
	copy(color[:], vb[o+3:o+6])
	return pos, color
}

// Hash returns a content digest of the buffer.
func (vb VertexBuffer) Hash() uint64 {
	d := xxhash.New()
	var chunk [4096]byte
	n := 0
	for _, f := range vb {
		binary.LittleEndian.PutUint32(chunk[n:], math.Float32bits(f))
		n += 4
		if n == len(chunk) {
			d.Write(chunk[:])
			n = 0
		}
	}
	d.Write(chunk[:n])
	return d.Sum64()
}

// BuildMesh walks the whole grid and emits one quad for every face of a solid
// cell whose neighbor is transparent. Cells are unit cubes centered on their
// integer coordinates, so vertex positions are world positions.
func BuildMesh(g *world.Grid) VertexBuffer {
	defer profiling.Track("meshing.BuildMesh")()

	var vertices VertexBuffer
	w, h, d := g.Width(), g.Height(), g.Depth()
	for y := 0; y < h; y++ {
		for z := 0; z < d; z++ {
			for x := 0; x < w; x++ {
				bt := g.Get(x, y, z)
				if bt == world.BlockTypeAir {
					continue
				}
				color := bt.Color()
				for f := range faceCount {
					n := f.Normal()
					if !g.IsTransparent(x+n[0], y+n[1], z+n[2]) {
						continue
					}
					vertices = appendFace(vertices, f, float32(x), float32(y), float32(z), color)
				}
			}
		}
	}
	return vertices
}

func appendFace(vertices VertexBuffer, f Face, cx, cy, cz float32, color [3]float32) VertexBuffer {
	const s = float32(world.BlockHalfSize)
	corners := &faceDefs[f].corners
	for _, ci := range quadOrder {
		c := corners[ci]
		vertices = append(vertices,
			cx+c[0]*s, cy+c[1]*s, cz+c[2]*s,
			color[0], color[1], color[2],
		)
	}
	return vertices
}
