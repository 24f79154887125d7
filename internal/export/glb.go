package export

import (
	"errors"
	"fmt"
	"math"

	"mini-voxel/internal/meshing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var ErrEmptyMesh = errors.New("export: mesh has no vertices")

// EncodeDocument converts a triangle-list vertex buffer into a glTF document
// with a single non-indexed primitive.
func EncodeDocument(buf meshing.VertexBuffer) (*gltf.Document, error) {
	n := buf.VertexCount()
	if n == 0 {
		return nil, ErrEmptyMesh
	}
	if n%3 != 0 {
		return nil, fmt.Errorf("export: %d vertices is not a triangle list", n)
	}

	positions := make([][3]float32, n)
	colors := make([][4]float32, n)
	for i := range n {
		pos, color := buf.Vertex(i)
		positions[i] = pos
		colors[i] = [4]float32{color[0], color[1], color[2], 1}
	}

	// flat normals per face
	normals := make([][3]float32, n)
	for i := 0; i < n; i += 3 {
		p0, p1, p2 := positions[i], positions[i+1], positions[i+2]
		e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		e2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		normal := normalize([3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		})
		normals[i], normals[i+1], normals[i+2] = normal, normal, normal
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "mini-voxel"

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)

	prim := &gltf.Primitive{
		Mode: gltf.PrimitiveTriangles,
		Attributes: gltf.PrimitiveAttributes{
			gltf.POSITION: posAccessor,
			gltf.NORMAL:   normalAccessor,
			gltf.COLOR_0:  colorAccessor,
		},
		Material: gltf.Index(0),
	}

	doc.Materials = []*gltf.Material{{
		Name: "voxel",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
		AlphaMode: gltf.AlphaOpaque,
	}}
	doc.Meshes = []*gltf.Mesh{{Name: "World", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Name: "World", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc, nil
}

// WriteGLB writes the mesh as a binary glTF file.
func WriteGLB(path string, buf meshing.VertexBuffer) error {
	doc, err := EncodeDocument(buf)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
