package meshing

import (
	"encoding/binary"
	"math"
	"testing"

	"mini-voxel/internal/world"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl32"
)

func mustGrid(t testing.TB, w, h, d int) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(w, h, d)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestEmptyGridMesh(t *testing.T) {
	g := mustGrid(t, 4, 4, 4)
	verts := BuildMesh(g)
	if len(verts) != 0 {
		t.Fatalf("empty grid: got %d floats, want 0", len(verts))
	}
	if verts.VertexCount() != 0 {
		t.Fatalf("empty grid: got %d vertices", verts.VertexCount())
	}
}

func TestSingleBlockMesh(t *testing.T) {
	g := mustGrid(t, 3, 3, 3)
	g.Set(1, 1, 1, world.BlockTypeDirt)
	verts := BuildMesh(g)
	if n := verts.VertexCount(); n != 36 {
		t.Fatalf("single block: got %d vertices, want 36", n)
	}
	if len(verts) != 36*VertexStride {
		t.Fatalf("single block: got %d floats, want %d", len(verts), 36*VertexStride)
	}
	if verts.FaceCount() != 6 {
		t.Fatalf("single block: got %d faces, want 6", verts.FaceCount())
	}
}

func TestBlockAtGridEdgeUsesOutsideAir(t *testing.T) {
	g := mustGrid(t, 1, 1, 1)
	g.Set(0, 0, 0, world.BlockTypeGrass)
	if n := BuildMesh(g).FaceCount(); n != 6 {
		t.Fatalf("1x1x1 solid grid: got %d faces, want 6", n)
	}
}

func TestTwoBlocksTouching(t *testing.T) {
	g := mustGrid(t, 4, 4, 4)
	g.Set(1, 1, 1, world.BlockTypeGrass)
	g.Set(2, 1, 1, world.BlockTypeGrass)
	// no face merging: 12 faces minus the two shared ones
	if n := BuildMesh(g).FaceCount(); n != 10 {
		t.Fatalf("two touching blocks: got %d faces, want 10", n)
	}
}

func TestSolidGridOnlyBoundaryFaces(t *testing.T) {
	w, h, d := 5, 3, 4
	g := mustGrid(t, w, h, d)
	g.Fill(world.BlockTypeDirt)
	verts := BuildMesh(g)

	want := 2 * (w*h + w*d + h*d)
	if n := verts.FaceCount(); n != want {
		t.Fatalf("solid grid: got %d faces, want %d", n, want)
	}

	// every vertex sits on the outer hull
	for i := 0; i < verts.VertexCount(); i++ {
		p, _ := verts.Vertex(i)
		onHull := p[0] == -0.5 || p[0] == float32(w)-0.5 ||
			p[1] == -0.5 || p[1] == float32(h)-0.5 ||
			p[2] == -0.5 || p[2] == float32(d)-0.5
		if !onHull {
			t.Fatalf("vertex %d at %v is inside the volume", i, p)
		}
	}
}

func TestFlatWorldFaceCount(t *testing.T) {
	g, err := world.Generate(4, 8, 4, world.NewFlatGenerator())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// 4x2x4 slab
	if n := BuildMesh(g).FaceCount(); n != 64 {
		t.Fatalf("flat world: got %d faces, want 64", n)
	}
}

func TestWindingFacesOutward(t *testing.T) {
	g := mustGrid(t, 3, 3, 3)
	g.Set(1, 1, 1, world.BlockTypeDirt)
	verts := BuildMesh(g)
	center := mgl32.Vec3{1, 1, 1}

	for tri := 0; tri < verts.VertexCount()/3; tri++ {
		a, _ := verts.Vertex(tri * 3)
		b, _ := verts.Vertex(tri*3 + 1)
		c, _ := verts.Vertex(tri*3 + 2)
		va, vb, vc := mgl32.Vec3(a), mgl32.Vec3(b), mgl32.Vec3(c)

		normal := vb.Sub(va).Cross(vc.Sub(va))
		centroid := va.Add(vb).Add(vc).Mul(1.0 / 3.0)
		if normal.Dot(centroid.Sub(center)) <= 0 {
			t.Errorf("triangle %d is wound inward (normal %v)", tri, normal)
		}
	}
}

func TestFaceColors(t *testing.T) {
	g := mustGrid(t, 3, 1, 1)
	g.Set(0, 0, 0, world.BlockTypeGrass)
	g.Set(2, 0, 0, world.BlockTypeDirt)
	verts := BuildMesh(g)

	for i := 0; i < verts.VertexCount(); i++ {
		p, c := verts.Vertex(i)
		want := world.BlockTypeDirt.Color()
		if p[0] < 1 {
			want = world.BlockTypeGrass.Color()
		}
		if mgl32.Vec3(c) != want {
			t.Fatalf("vertex %d at %v: color %v, want %v", i, p, c, want)
		}
	}
}

func TestHashTracksContent(t *testing.T) {
	g := mustGrid(t, 3, 3, 3)
	g.Set(1, 1, 1, world.BlockTypeDirt)
	a := BuildMesh(g)
	b := BuildMesh(g)
	if a.Hash() != b.Hash() {
		t.Errorf("identical meshes hashed differently")
	}
	g.Set(1, 1, 1, world.BlockTypeGrass)
	if BuildMesh(g).Hash() == a.Hash() {
		t.Errorf("color change did not change hash")
	}
}

func TestHashMatchesFloatBytes(t *testing.T) {
	// large enough to span several write chunks plus a partial one
	g, err := world.Generate(16, 8, 16, world.NewFlatGenerator())
	if err != nil {
		t.Fatal(err)
	}
	for _, vb := range []VertexBuffer{nil, BuildMesh(g), BuildMesh(g)[:1030]} {
		raw := make([]byte, 0, len(vb)*4)
		for _, f := range vb {
			raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(f))
		}
		if got, want := vb.Hash(), xxhash.Sum64(raw); got != want {
			t.Errorf("len %d: hash %x, want %x", len(vb), got, want)
		}
	}
}

func BenchmarkHash_FlatWorld(b *testing.B) {
	g, _ := world.Generate(32, 8, 32, world.NewFlatGenerator())
	vb := BuildMesh(g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vb.Hash()
	}
}

func BenchmarkBuildMesh_FlatWorld(b *testing.B) {
	g, _ := world.Generate(32, 8, 32, world.NewFlatGenerator())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildMesh(g)
	}
}
